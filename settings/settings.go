package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/pathrec/game"
	"github.com/pelletier/go-toml"
)

// Settings contains all settings that can be configured for recording and replaying paths.
type Settings struct {
	Recording struct {
		// SampleInterval is the minimum time in milliseconds between two recorded points.
		SampleInterval int64 `toml:"sample_interval" env:"SAMPLE_INTERVAL"`
	} `toml:"recording"`
	Replay struct {
		// MaxStartDistance is the maximum distance from the agent to the nearest point of a
		// record for a replay to start.
		MaxStartDistance float64 `toml:"max_start_distance" env:"MAX_START_DISTANCE"`
		// MaxHorizontalDeviation and MaxVerticalDeviation are the maximum distances between
		// the interpolated position and the agent before a replay is aborted.
		MaxHorizontalDeviation float64 `toml:"max_horizontal_deviation" env:"MAX_HORIZONTAL_DEVIATION"`
		MaxVerticalDeviation   float64 `toml:"max_vertical_deviation" env:"MAX_VERTICAL_DEVIATION"`
		// RestartDelay is the time in milliseconds a looping replay waits before restarting
		// after it was aborted for deviating from the path.
		RestartDelay int64 `toml:"restart_delay" env:"RESTART_DELAY"`
		// TicksPerSecond is the tick rate of the host, used to scale the sub-frame fraction
		// of render frames.
		TicksPerSecond float64 `toml:"ticks_per_second" env:"TICKS_PER_SECOND"`
	} `toml:"replay"`
	Guide struct {
		// Duration is the time in milliseconds the guide line stays visible after a replay
		// was rejected for being too far away.
		Duration int64 `toml:"duration" env:"GUIDE_DURATION"`
	} `toml:"guide"`
	Storage struct {
		// Directory is the directory records are stored in.
		Directory string `toml:"directory" env:"RECORDS_DIR"`
		// QueueSize is the amount of queued asynchronous writes before further saves are deferred.
		QueueSize int `toml:"queue_size" env:"QUEUE_SIZE"`
	} `toml:"storage"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Recording.SampleInterval = 50

	s.Replay.MaxStartDistance = 1.0
	s.Replay.MaxHorizontalDeviation = 3.5
	s.Replay.MaxVerticalDeviation = 2.5
	s.Replay.RestartDelay = 1000
	s.Replay.TicksPerSecond = game.TicksPerSecond

	s.Guide.Duration = 3000

	s.Storage.Directory = "path-records"
	s.Storage.QueueSize = 16
	return s
}

// Validate returns an error if any of the settings are out of range.
func (s Settings) Validate() error {
	switch {
	case s.Recording.SampleInterval <= 0:
		return fmt.Errorf("recording.sample_interval must be positive, got %d", s.Recording.SampleInterval)
	case s.Replay.MaxStartDistance < 0:
		return fmt.Errorf("replay.max_start_distance must not be negative, got %v", s.Replay.MaxStartDistance)
	case s.Replay.MaxHorizontalDeviation <= 0 || s.Replay.MaxVerticalDeviation <= 0:
		return fmt.Errorf("replay deviations must be positive, got %v/%v", s.Replay.MaxHorizontalDeviation, s.Replay.MaxVerticalDeviation)
	case s.Replay.RestartDelay < 0:
		return fmt.Errorf("replay.restart_delay must not be negative, got %d", s.Replay.RestartDelay)
	case s.Replay.TicksPerSecond <= 0:
		return fmt.Errorf("replay.ticks_per_second must be positive, got %v", s.Replay.TicksPerSecond)
	case s.Guide.Duration < 0:
		return fmt.Errorf("guide.duration must not be negative, got %d", s.Guide.Duration)
	case s.Storage.Directory == "":
		return errors.New("storage.directory must not be empty")
	case s.Storage.QueueSize <= 0:
		return fmt.Errorf("storage.queue_size must be positive, got %d", s.Storage.QueueSize)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Settings missing from the file keep their default value.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return settings, nil
}

// LoadOrCreate loads the settings at path, creating the file with the default settings first
// if it does not exist. Environment overrides are applied on top of the file, and the result
// is validated.
func LoadOrCreate(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
	}

	s, err := Load(path)
	if err != nil {
		return Settings{}, err
	}
	if err := ApplyEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}
