// Package config handles viewer configuration loading and management.
package config

import "path/filepath"

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds the scene part files to load.
type SceneConfig struct {
	ModelDir string            `yaml:"model_dir"`
	Parts    map[string]string `yaml:"parts"` // part name -> file name within ModelDir
}

// PartPaths returns the part name -> full file path mapping.
func (s SceneConfig) PartPaths() map[string]string {
	paths := make(map[string]string, len(s.Parts))
	for name, file := range s.Parts {
		paths[name] = filepath.Join(s.ModelDir, file)
	}
	return paths
}

// ControlsConfig holds navigation settings.
type ControlsConfig struct {
	// Distance one movement keypress covers.
	MoveStep float32 `yaml:"move_step"`
	// Degrees one look event turns. A single constant drives both the
	// yaw counter and the rendered rotation.
	LookStepDegrees float32 `yaml:"look_step_degrees"`
	// Fraction of the window width near each edge where the pointer is
	// warped back toward the center.
	PointerEdgeMargin float32 `yaml:"pointer_edge_margin"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			ModelDir: "models",
			Parts: map[string]string{
				"bottom": "mezzanine_bottom.obj",
				"stairs": "mezzanine_stairs.obj",
				"top":    "mezzanine_top.obj",
			},
		},
		Controls: ControlsConfig{
			MoveStep:          1.0,
			LookStepDegrees:   1.0,
			PointerEdgeMargin: 0.125,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
