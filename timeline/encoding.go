package timeline

import (
	"time"

	"github.com/disgoorg/json"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pathrec/oerror"
)

type vec3Data struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type pointData struct {
	Position  vec3Data `json:"position"`
	Yaw       float32  `json:"yaw"`
	Pitch     float32  `json:"pitch"`
	Timestamp int64    `json:"timestamp"`
	Velocity  vec3Data `json:"velocity"`
}

type recordData struct {
	Name string `json:"name"`
	// CreatedAt is stored as milliseconds since the Unix epoch.
	CreatedAt int64       `json:"createdAt"`
	Points    []pointData `json:"points"`
}

func toVec3Data(v mgl64.Vec3) vec3Data {
	return vec3Data{X: v[0], Y: v[1], Z: v[2]}
}

func (v vec3Data) vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// MarshalJSON encodes the record in its persisted form.
func (r Record) MarshalJSON() ([]byte, error) {
	dat := recordData{
		Name:      r.Name,
		CreatedAt: r.CreatedAt.UnixMilli(),
		Points:    make([]pointData, len(r.Points)),
	}
	for i, p := range r.Points {
		dat.Points[i] = pointData{
			Position:  toVec3Data(p.Position),
			Yaw:       p.Yaw,
			Pitch:     p.Pitch,
			Timestamp: p.Timestamp,
			Velocity:  toVec3Data(p.Velocity),
		}
	}
	return json.Marshal(dat)
}

// UnmarshalJSON decodes a record from its persisted form.
func (r *Record) UnmarshalJSON(b []byte) error {
	var dat recordData
	if err := json.Unmarshal(b, &dat); err != nil {
		return err
	}

	r.Name = dat.Name
	r.CreatedAt = time.UnixMilli(dat.CreatedAt)
	r.Points = make([]Point, len(dat.Points))
	for i, p := range dat.Points {
		r.Points[i] = Point{
			Position:  p.Position.vec3(),
			Yaw:       p.Yaw,
			Pitch:     p.Pitch,
			Timestamp: p.Timestamp,
			Velocity:  p.Velocity.vec3(),
		}
	}
	return nil
}

// Encode encodes a record into the bytes that are persisted for it.
func Encode(r Record) ([]byte, error) {
	dat, err := json.Marshal(r)
	if err != nil {
		return nil, oerror.Wrap(err, "unable to encode record %s", r.Name)
	}
	return dat, nil
}

// Decode decodes and validates a persisted record.
func Decode(dat []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(dat, &r); err != nil {
		return Record{}, oerror.Wrap(err, "unable to decode record")
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}
