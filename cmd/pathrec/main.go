package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pathrec/event"
	"github.com/oomph-ac/pathrec/game"
	"github.com/oomph-ac/pathrec/notify"
	"github.com/oomph-ac/pathrec/session"
	"github.com/oomph-ac/pathrec/settings"
	"github.com/oomph-ac/pathrec/storage"
	"github.com/oomph-ac/pathrec/timeline"
	"github.com/sirupsen/logrus"
)

const usage = `Usage: ./pathrec <command> [args]

Commands:
  list                     list all saved paths
  show <name>              show a saved path and its points
  delete <name>            delete a saved path
  simulate <name> [loops]  record a circular path and replay it`

// The following program manages the paths saved on disk and can simulate recording and
// replaying a path with a synthetic agent.
func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true, FullTimestamp: true}
	log.Level = logrus.DebugLevel

	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}

	s, err := settings.LoadOrCreate("config.toml")
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}
	store, err := storage.New(log, s.Storage.Directory, s.Storage.QueueSize)
	if err != nil {
		log.Fatalf("unable to open record store: %v", err)
	}
	defer store.Close()

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "list":
		list(store)
	case "show":
		if len(args) < 1 {
			fmt.Println(usage)
			return
		}
		show(log, store, args[0])
	case "delete":
		if len(args) < 1 {
			fmt.Println(usage)
			return
		}
		if !store.Delete(args[0]) {
			log.Warnf("no path named %s", args[0])
			return
		}
		log.Infof("deleted path %s", args[0])
	case "simulate":
		if len(args) < 1 {
			fmt.Println(usage)
			return
		}
		loops := 1
		if len(args) > 1 {
			if loops, err = strconv.Atoi(args[1]); err != nil || loops < 1 {
				log.Fatalf("invalid loop count %q", args[1])
			}
		}
		simulate(log, s, store, args[0], loops)
	default:
		fmt.Println(usage)
	}
}

func list(store *storage.Store) {
	records := store.LoadAll()
	if len(records) == 0 {
		fmt.Printf("no paths saved in %s\n", store.Dir())
		return
	}
	for _, rec := range records {
		st := rec.Stats()
		fmt.Printf("%-32s %s  %4d points  %6.2fs  %7.2f blocks\n",
			rec.Name, rec.CreatedAt.Format(time.DateTime), st.Points, float64(st.Duration)/1000, st.Length)
	}
}

func show(log *logrus.Logger, store *storage.Store, name string) {
	rec, err := store.Load(name)
	if err != nil {
		log.Errorf("unable to load path %s: %v", name, err)
		return
	}

	st := rec.Stats()
	fmt.Printf("%s (created %s)\n", rec.Name, rec.CreatedAt.Format(time.DateTime))
	fmt.Printf("  points:   %d\n", st.Points)
	fmt.Printf("  duration: %.2fs\n", float64(st.Duration)/1000)
	fmt.Printf("  length:   %.2f blocks\n", st.Length)
	fmt.Printf("  speed:    %.3f avg, %.3f top (blocks/tick)\n", st.AverageSpeed, st.TopSpeed)
	fmt.Printf("  bounds:   %v -> %v\n", game.RoundVec64(st.Bounds.Min(), 2), game.RoundVec64(st.Bounds.Max(), 2))
	for i, p := range rec.Points {
		fmt.Printf("  %4d  %7dms  (%.2f, %.2f, %.2f)  yaw %.1f pitch %.1f\n",
			i, p.Timestamp, p.Position.X(), p.Position.Y(), p.Position.Z(), p.Yaw, p.Pitch)
	}
}

// simAgent is an agent that walks wherever it is put.
type simAgent struct {
	pose timeline.Pose
}

func (a *simAgent) Pose() timeline.Pose {
	return a.pose
}

func (a *simAgent) SetPose(pose timeline.Pose) {
	a.pose = pose
}

// circle returns the pose at progress t in [0, 1] along a circle of radius 8 around the origin.
// The path is closed: circle(1) is the same pose as circle(0).
func circle(t float64) timeline.Pose {
	angle := math.Mod(t, 1) * 2 * math.Pi
	pos := mgl64.Vec3{math.Cos(angle) * 8, 64, math.Sin(angle) * 8}
	return timeline.Pose{
		Position: pos,
		Yaw:      float32(mgl64.RadToDeg(angle) + 90),
		Velocity: mgl64.Vec3{-math.Sin(angle), 0, math.Cos(angle)}.Mul(8 * 2 * math.Pi / 100),
	}
}

func simulate(log *logrus.Logger, s settings.Settings, store *storage.Store, name string, loops int) {
	// The simulation advances its own clock instead of following the wall clock.
	var now int64
	agent := &simAgent{}
	completed := 0
	c := session.New(session.Opts{
		Log:      log,
		Settings: s,
		Clock:    session.ClockFunc(func() int64 { return now }),
		Agent:    agent,
		Store:    store,
		Handler: event.MultiHandler{
			event.LogHandler{Log: log},
			notify.Handler{Sink: notify.SinkFunc(func(n notify.Notification) {
				log.Infof("[chat] %s", n.Message)
				if n.Sound != "" {
					log.Debugf("[sound] %s (pitch %.1f)", n.Sound, n.Pitch)
				}
			})},
			event.HandlerFunc(func(ev event.Event) {
				if _, ok := ev.(*event.ReplayCompletedEvent); ok {
					completed++
				}
			}),
		},
	})

	if err := c.ValidateName(name); err != nil {
		log.Errorf("unable to record %s: %v", name, err)
		return
	}

	const ticks = 100
	agent.pose = circle(0)
	if err := c.StartRecording(name); err != nil {
		log.Errorf("unable to record %s: %v", name, err)
		return
	}
	for tick := 0; tick <= ticks; tick++ {
		agent.pose = circle(float64(tick) / ticks)
		c.Tick()
		now += s.Recording.SampleInterval
	}
	c.StopRecording()

	rec, err := store.Load(name)
	if err != nil {
		log.Errorf("unable to load %s: %v", name, err)
		return
	}

	agent.pose = circle(0)
	if err := c.StartReplay(rec, loops > 1); err != nil {
		var tooFar *session.TooFarError
		if errors.As(err, &tooFar) {
			origin, target, _ := c.GuideLine()
			log.Warnf("guide from %v to %v", origin, target)
		}
		log.Errorf("unable to replay %s: %v", name, err)
		return
	}

	// Each tick is followed by a render frame halfway to the next tick.
	half := s.Recording.SampleInterval / 2
	for c.State() == session.StateReplaying && completed < loops {
		now += half
		c.Render(0.5)
		now += s.Recording.SampleInterval - half
		c.Tick()
	}
	c.StopReplay()

	log.Infof("simulation of %s finished at (%.2f, %.2f, %.2f) after %d replay(s)",
		name, agent.pose.Position.X(), agent.pose.Position.Y(), agent.pose.Position.Z(), completed)
}
