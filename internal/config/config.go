package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/topograph/internal/graph"
	"github.com/san-kum/topograph/internal/layout"
	"github.com/san-kum/topograph/internal/render"
)

const (
	DefaultWidth      = 960.0
	DefaultHeight     = 600.0
	DefaultScale      = render.DefaultScale
	DefaultPickRadius = 30.0
	DefaultMaxTicks   = 3000
	DefaultFPS        = 60
)

var ErrInvalid = errors.New("invalid config")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type Config struct {
	Width      float64      `yaml:"width" toml:"width" validate:"gt=0"`
	Height     float64      `yaml:"height" toml:"height" validate:"gt=0"`
	Scale      float64      `yaml:"scale" toml:"scale" validate:"gt=0"`
	PickRadius float64      `yaml:"pick_radius" toml:"pick_radius" validate:"gte=0"`
	MaxTicks   int          `yaml:"max_ticks" toml:"max_ticks" validate:"gte=0"`
	FPS        int          `yaml:"fps" toml:"fps" validate:"gte=0,lte=240"`
	Layout     Layout       `yaml:"layout" toml:"layout"`
	Style      render.Style `yaml:"style" toml:"style"`
	Nodes      NodeDefaults `yaml:"nodes" toml:"nodes"`
}

// Layout parameterises the force simulation.
type Layout struct {
	LinkDistance      float64 `yaml:"link_distance" toml:"link_distance" validate:"gte=0"`
	ChargeStrength    float64 `yaml:"charge_strength" toml:"charge_strength"`
	ChargeDistanceMax float64 `yaml:"charge_distance_max" toml:"charge_distance_max" validate:"gte=0"`
	XStrength         float64 `yaml:"x_strength" toml:"x_strength"`
	YStrength         float64 `yaml:"y_strength" toml:"y_strength"`
	CollideIterations int     `yaml:"collide_iterations" toml:"collide_iterations" validate:"gte=1"`
	// CollidePadding multiplies node radius to get the collision radius.
	CollidePadding float64 `yaml:"collide_padding" toml:"collide_padding" validate:"gte=0"`
	VelocityDecay  float64 `yaml:"velocity_decay" toml:"velocity_decay" validate:"gt=0,lte=1"`
	Reheat         float64 `yaml:"reheat" toml:"reheat" validate:"gt=0,lte=1"`
	AlphaMin       float64 `yaml:"alpha_min" toml:"alpha_min" validate:"gt=0,lt=1"`
	AlphaDecay     float64 `yaml:"alpha_decay" toml:"alpha_decay" validate:"gt=0,lt=1"`
	Seed           int64   `yaml:"seed" toml:"seed"`
}

type NodeDefaults struct {
	Radius    float64 `yaml:"radius" toml:"radius" validate:"gte=0"`
	NodeColor string  `yaml:"node_color" toml:"node_color" validate:"omitempty,hexcolor"`
	LinkColor string  `yaml:"link_color" toml:"link_color" validate:"omitempty,hexcolor"`
}

func (n NodeDefaults) Graph() graph.Defaults {
	return graph.Defaults{Radius: n.Radius, NodeColor: n.NodeColor, LinkColor: n.LinkColor}
}

func DefaultLayout() Layout {
	return Layout{
		LinkDistance:      80,
		ChargeStrength:    -120,
		ChargeDistanceMax: 300,
		XStrength:         0.02,
		YStrength:         0.06,
		CollideIterations: 3,
		CollidePadding:    2,
		VelocityDecay:     0.4,
		Reheat:            0.3,
		AlphaMin:          layout.DefaultAlphaMin,
		AlphaDecay:        layout.DefaultAlphaDecay,
		Seed:              1,
	}
}

func DefaultConfig() *Config {
	d := graph.DefaultDefaults()
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Scale:      DefaultScale,
		PickRadius: DefaultPickRadius,
		MaxTicks:   DefaultMaxTicks,
		FPS:        DefaultFPS,
		Layout:     DefaultLayout(),
		Style:      render.DefaultStyle(),
		Nodes:      NodeDefaults{Radius: d.Radius, NodeColor: d.NodeColor, LinkColor: d.LinkColor},
	}
}

// Load reads a YAML or TOML file (chosen by extension) over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate reports every out-of-range field at once, naming fields by
// their file keys.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func fieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", field, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "lt":
		return fmt.Sprintf("%s must be less than %s, got %v", field, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex colour, got %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// View is the logical view described by the config.
func (c *Config) View() render.View {
	return render.View{Width: c.Width, Height: c.Height, Scale: c.Scale}
}
