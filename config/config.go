package config

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/void191/v0-game-engine/vmath"
)

// Config is the runtime configuration for the player binary: simulation
// timing, gravity, and asset locations. Zero or missing fields fall back to
// defaults during Load, so a partial file stays valid.
type Config struct {
	// PhysicsFPS is the fixed simulation rate; the timestep is its inverse.
	PhysicsFPS int `json:"physics_fps"`

	// MaxCatchUpSteps caps fixed steps per frame after a stall.
	MaxCatchUpSteps int `json:"max_catch_up_steps"`

	// TimeScale multiplies wall time fed to the simulation.
	TimeScale float64 `json:"time_scale"`

	Gravity [3]float64 `json:"gravity"`

	// ScenePath is the scene loaded at startup.
	ScenePath string `json:"scene_path"`

	// PrefabDir holds *.prefab.json templates available to scripts.
	PrefabDir string `json:"prefab_dir,omitempty"`

	// LogPath receives the debug log; empty disables file logging.
	LogPath string `json:"log_path,omitempty"`

	Audio AudioConfig `json:"audio"`
}

// AudioConfig controls the tone-cue playback in the player.
type AudioConfig struct {
	Enabled      bool    `json:"enabled"`
	MasterVolume float64 `json:"master_volume"`
	SampleRate   int     `json:"sample_rate"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		PhysicsFPS:      60,
		MaxCatchUpSteps: 5,
		TimeScale:       1.0,
		Gravity:         [3]float64{0, -9.81, 0},
		ScenePath:       "scenes/main.scene.json",
		PrefabDir:       "prefabs",
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.7,
			SampleRate:   44100,
		},
	}
}

// FixedDelta returns the fixed timestep in seconds.
func (c Config) FixedDelta() float64 {
	return 1.0 / float64(c.PhysicsFPS)
}

// GravityVec returns gravity as a vector.
func (c Config) GravityVec() vmath.Vec3 {
	return vmath.Vec3{X: c.Gravity[0], Y: c.Gravity[1], Z: c.Gravity[2]}
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	if c.PhysicsFPS <= 0 {
		return eris.Errorf("physics_fps must be positive, got %d", c.PhysicsFPS)
	}
	if c.MaxCatchUpSteps <= 0 {
		return eris.Errorf("max_catch_up_steps must be positive, got %d", c.MaxCatchUpSteps)
	}
	if c.TimeScale < 0 {
		return eris.Errorf("time_scale must be non-negative, got %v", c.TimeScale)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return eris.Errorf("master_volume must be in [0,1], got %v", c.Audio.MasterVolume)
	}
	return nil
}

// Load reads a config file over the defaults. Fields the file leaves at zero
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, eris.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, eris.Wrapf(err, "parse config %s", path)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.PhysicsFPS == 0 {
		cfg.PhysicsFPS = def.PhysicsFPS
	}
	if cfg.MaxCatchUpSteps == 0 {
		cfg.MaxCatchUpSteps = def.MaxCatchUpSteps
	}
	if cfg.TimeScale == 0 {
		cfg.TimeScale = def.TimeScale
	}
	if cfg.Audio.SampleRate == 0 {
		cfg.Audio.SampleRate = def.Audio.SampleRate
	}
}

// Save writes the configuration to disk.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return eris.Wrapf(err, "write config %s", path)
	}
	return nil
}
