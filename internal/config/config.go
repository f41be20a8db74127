// Package config loads and saves the default field values the calculators
// start with. The file is optional; DefaultConfig matches the values the
// exercises ship with.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Planeta    PlanetaConfig    `yaml:"planeta"`
	Astronauta AstronautaConfig `yaml:"astronauta"`
	Camion     CamionConfig     `yaml:"camion"`
	Mensajero  MensajeroConfig  `yaml:"mensajero"`
}

type PlanetaConfig struct {
	InitialVelocity float64 `yaml:"initial_velocity"`
	Angle           float64 `yaml:"angle"`
	Distance        float64 `yaml:"distance"`
}

type AstronautaConfig struct {
	Height          float64 `yaml:"height"`
	Gravity         float64 `yaml:"gravity"`
	Angle           float64 `yaml:"angle"`
	InitialVelocity float64 `yaml:"initial_velocity"`
	HoopHeight      float64 `yaml:"hoop_height"`
}

type CamionConfig struct {
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type MensajeroConfig struct {
	Angle        float64 `yaml:"angle"`
	Height       float64 `yaml:"height"`
	Friction     float64 `yaml:"friction"`
	Acceleration float64 `yaml:"acceleration"`
	Mass         float64 `yaml:"mass"`
}

func DefaultConfig() *Config {
	return &Config{
		Planeta: PlanetaConfig{
			InitialVelocity: 10,
			Angle:           45,
			Distance:        10,
		},
		Astronauta: AstronautaConfig{
			Height:          2.0,
			Gravity:         1.62,
			Angle:           45,
			InitialVelocity: 5,
			HoopHeight:      3.05,
		},
		Camion: CamionConfig{
			Mass:     3000,
			Friction: 0.7,
		},
		Mensajero: MensajeroConfig{
			Angle:        25,
			Height:       1.2,
			Friction:     0.3,
			Acceleration: 1,
			Mass:         4,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FieldDefaults returns the configured start values for a panel, keyed by
// its schema field names.
func (c *Config) FieldDefaults(panel string) map[string]float64 {
	switch panel {
	case "planeta":
		return map[string]float64{
			"v0":       c.Planeta.InitialVelocity,
			"angle":    c.Planeta.Angle,
			"distance": c.Planeta.Distance,
		}
	case "astronauta":
		return map[string]float64{
			"height":  c.Astronauta.Height,
			"gravity": c.Astronauta.Gravity,
			"angle":   c.Astronauta.Angle,
			"v0":      c.Astronauta.InitialVelocity,
			"hoop":    c.Astronauta.HoopHeight,
		}
	case "camion":
		return map[string]float64{
			"mass":     c.Camion.Mass,
			"friction": c.Camion.Friction,
		}
	case "mensajero":
		return map[string]float64{
			"angle":    c.Mensajero.Angle,
			"height":   c.Mensajero.Height,
			"friction": c.Mensajero.Friction,
			"accel":    c.Mensajero.Acceleration,
			"mass":     c.Mensajero.Mass,
		}
	default:
		return nil
	}
}
