package motion

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

// PoseConfig is a pose in simulator units and radians.
type PoseConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Theta float64 `yaml:"theta"`
}

// Config holds the motion constants, fixed once the driver starts.
type Config struct {
	TurtleName string     `yaml:"turtle_name"`
	Spawn      PoseConfig `yaml:"spawn"`
	Origin     PoseConfig `yaml:"origin"`

	// LinearSpeed is in units/s.
	LinearSpeed float64 `yaml:"linear_speed"`
	// AngularSpeed is in degrees/s.
	AngularSpeed   float64 `yaml:"angular_speed"`
	SideLength     float64 `yaml:"side_length"`
	DiagonalLength float64 `yaml:"diagonal_length"`

	// LinearRate and AngularRate are tick rates (Hz) of the primitives.
	// Rotation ticks faster to keep the angular estimate finer.
	LinearRate  float64 `yaml:"linear_rate"`
	AngularRate float64 `yaml:"angular_rate"`

	// SquareThreshold is how close to the origin (on both axes) the
	// turtle must be for the square to be considered closed.
	SquareThreshold float64 `yaml:"square_threshold"`
	// MaxSquareLaps bounds the square loop, 0 means unbounded.
	MaxSquareLaps int `yaml:"max_square_laps"`

	ServiceTimeout time.Duration `yaml:"service_timeout"`
}

// Defaults
const (
	DefaultTurtleName      = "Turtle_Leonardo"
	DefaultLinearSpeed     = 1.0
	DefaultAngularSpeed    = 15.0
	DefaultSideLength      = 11.088889
	DefaultDiagonalLength  = 15.682057
	DefaultLinearRate      = 10.0
	DefaultAngularRate     = 100.0
	DefaultSquareThreshold = 1.0
	DefaultMaxSquareLaps   = 8
	DefaultServiceTimeout  = 2 * time.Second
)

var defaultConfig = Config{
	TurtleName:      DefaultTurtleName,
	Spawn:           PoseConfig{X: 5.45, Y: 5.45},
	LinearSpeed:     DefaultLinearSpeed,
	AngularSpeed:    DefaultAngularSpeed,
	SideLength:      DefaultSideLength,
	DiagonalLength:  DefaultDiagonalLength,
	LinearRate:      DefaultLinearRate,
	AngularRate:     DefaultAngularRate,
	SquareThreshold: DefaultSquareThreshold,
	MaxSquareLaps:   DefaultMaxSquareLaps,
	ServiceTimeout:  DefaultServiceTimeout,
}

var configFile string

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "shape-config", configFile, "YAML file overriding motion constants (applied after flags).")
	flag.StringVar(&defaultConfig.TurtleName, "turtle", defaultConfig.TurtleName, "Name of the turtle to spawn and drive.")
	flag.Float64Var(&defaultConfig.LinearSpeed, "linear-speed", defaultConfig.LinearSpeed, "Forward speed (units/s).")
	flag.Float64Var(&defaultConfig.AngularSpeed, "angular-speed", defaultConfig.AngularSpeed, "Turning speed (degrees/s).")
	flag.Float64Var(&defaultConfig.SideLength, "side", defaultConfig.SideLength, "Side length of square and triangle.")
	flag.Float64Var(&defaultConfig.DiagonalLength, "diagonal", defaultConfig.DiagonalLength, "Hypotenuse of the triangle.")
	flag.Float64Var(&defaultConfig.LinearRate, "linear-rate", defaultConfig.LinearRate, "Tick rate (Hz) of straight moves.")
	flag.Float64Var(&defaultConfig.AngularRate, "angular-rate", defaultConfig.AngularRate, "Tick rate (Hz) of rotations.")
	flag.IntVar(&defaultConfig.MaxSquareLaps, "max-square-laps", defaultConfig.MaxSquareLaps, "Give up the square after this many sides, 0 for unbounded.")
	flag.DurationVar(&defaultConfig.ServiceTimeout, "service-timeout", defaultConfig.ServiceTimeout, "Timeout of spawn and teleport calls.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults, with the file from
// -shape-config applied if specified.
func NewConfig() (*Config, error) {
	conf := defaultConfig
	if configFile != "" {
		if err := conf.LoadFile(configFile); err != nil {
			return nil, err
		}
	}
	return &conf, conf.Validate()
}

// LoadFile overrides the config with values present in a YAML file.
func (c *Config) LoadFile(fn string) error {
	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", fn, err)
	}
	return nil
}

// Validate checks the constants can drive the primitives.
func (c *Config) Validate() error {
	switch {
	case c.TurtleName == "":
		return errors.New("turtle name is required")
	case c.LinearSpeed <= 0:
		return fmt.Errorf("linear speed must be positive: %v", c.LinearSpeed)
	case c.AngularSpeed <= 0:
		return fmt.Errorf("angular speed must be positive: %v", c.AngularSpeed)
	case c.LinearRate <= 0 || c.AngularRate <= 0:
		return fmt.Errorf("tick rates must be positive: %v, %v", c.LinearRate, c.AngularRate)
	case c.SideLength < 0 || c.DiagonalLength < 0:
		return fmt.Errorf("lengths must not be negative: %v, %v", c.SideLength, c.DiagonalLength)
	case c.MaxSquareLaps < 0:
		return fmt.Errorf("max square laps must not be negative: %d", c.MaxSquareLaps)
	}
	return nil
}
