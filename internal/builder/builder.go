// Package builder turns a declarative vehicle configuration into an unlocked
// design with all elements constructed and posed. Locking stays with the
// caller, which may still reposition static parts first.
package builder

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rocketsim/internal/design"
	"github.com/san-kum/rocketsim/internal/element"
	"github.com/san-kum/rocketsim/internal/spatial"
)

type VehicleConfig struct {
	Name     string          `yaml:"name"`
	Elements []ElementConfig `yaml:"elements"`
}

// ElementConfig is one element definition. Kind selects the geometry; only
// the dimension fields that kind needs are read.
type ElementConfig struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Static bool    `yaml:"static"`
	Mass   float64 `yaml:"mass"`

	Radius float64 `yaml:"radius"`
	Inner  float64 `yaml:"inner"`
	Outer  float64 `yaml:"outer"`
	Height float64 `yaml:"height"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`

	Position [3]float64 `yaml:"position"`
	Axis     [3]float64 `yaml:"axis"`
	Angle    float64    `yaml:"angle"` // degrees about Axis
}

func Load(path string) (*VehicleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &VehicleConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *VehicleConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultVehicle is a small TVC test vehicle: airframe tube, nose cone,
// avionics sled, and a dynamic propellant grain.
func DefaultVehicle() *VehicleConfig {
	return &VehicleConfig{
		Name: "testbed",
		Elements: []ElementConfig{
			{Name: "airframe", Kind: "tube", Static: true, Mass: 0.42,
				Outer: 0.051, Inner: 0.049, Height: 0.6, Position: [3]float64{0, 0, 0.3}},
			{Name: "nose", Kind: "cone", Static: true, Mass: 0.09,
				Radius: 0.051, Height: 0.15, Position: [3]float64{0, 0, 0.6375}},
			{Name: "avionics", Kind: "box", Static: true, Mass: 0.15,
				X: 0.04, Y: 0.04, Z: 0.08, Position: [3]float64{0, 0, 0.45}},
			{Name: "motor", Kind: "cylinder", Static: false, Mass: 0.18,
				Radius: 0.036, Height: 0.12, Position: [3]float64{0, 0, 0.06}},
		},
	}
}

// Build constructs every configured element and registers it in a fresh,
// unlocked design, applying the configured poses.
func Build(cfg *VehicleConfig) (*design.Design, error) {
	d := design.New()
	for _, ec := range cfg.Elements {
		geo, err := geometryFor(ec)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", ec.Name, err)
		}
		el, err := element.New(geo, ec.Mass, ec.Static)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", ec.Name, err)
		}
		if err := d.AddElement(ec.Name, el); err != nil {
			return nil, err
		}

		pos := spatial.NewVec3(ec.Position[0], ec.Position[1], ec.Position[2])
		att := spatial.IdentityQuat()
		if ec.Angle != 0 {
			axis := spatial.NewVec3(ec.Axis[0], ec.Axis[1], ec.Axis[2])
			att = spatial.FromAxisAngle(axis, ec.Angle*math.Pi/180)
		}
		if err := d.ManipulateElement(ec.Name, pos, att); err != nil {
			return nil, fmt.Errorf("element %q: %w", ec.Name, err)
		}
	}
	return d, nil
}

func geometryFor(ec ElementConfig) (element.Geometry, error) {
	switch ec.Kind {
	case "cylinder":
		return element.Cylinder{Radius: ec.Radius, Height: ec.Height}, nil
	case "tube":
		return element.Tube{Outer: ec.Outer, Inner: ec.Inner, Height: ec.Height}, nil
	case "cone":
		return element.Cone{Radius: ec.Radius, Height: ec.Height}, nil
	case "sphere":
		return element.Sphere{Radius: ec.Radius}, nil
	case "box":
		return element.Box{X: ec.X, Y: ec.Y, Z: ec.Z}, nil
	case "point":
		return element.Point{}, nil
	default:
		return nil, fmt.Errorf("unknown geometry kind %q", ec.Kind)
	}
}
