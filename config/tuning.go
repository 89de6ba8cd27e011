package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuning points at the live config sections so a partial YAML document only
// overwrites the fields it names.
type tuning struct {
	Physics   *PhysicsConfig   `yaml:"physics"`
	Character *CharacterConfig `yaml:"character"`
	Layers    *LayerConfig     `yaml:"layers"`
	Shadow    *ShadowConfig    `yaml:"shadow"`
	Camera    *CameraConfig    `yaml:"camera"`
}

// LoadTuning reads a YAML tuning file onto the global config sections.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return ApplyTuning(data)
}

// ApplyTuning decodes YAML onto the global config sections. On error the
// sections are left untouched.
func ApplyTuning(data []byte) error {
	physics, character, layers, shadow, camera := Physics, Character, Layers, Shadow, Camera
	t := tuning{
		Physics:   &physics,
		Character: &character,
		Layers:    &layers,
		Shadow:    &shadow,
		Camera:    &camera,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if layers.Step <= 0 {
		return fmt.Errorf("config: layers.step must be positive, got %d", layers.Step)
	}

	Physics, Character, Layers, Shadow, Camera = physics, character, layers, shadow, camera
	return nil
}
