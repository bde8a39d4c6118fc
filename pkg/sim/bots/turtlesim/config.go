package turtlesim

import (
	"flag"
	"time"

	env "github.com/robotalks/turtle.go/pkg/l1/env/controller"
	"github.com/robotalks/turtle.go/pkg/sim"
)

// Config defines the configuration for the simulator.
type Config struct {
	WorldSize    float64
	TurtleSize   float64
	SpawnDefault bool
	PoseInterval time.Duration
}

// Defaults
const (
	// DefaultWorldSize is the side of the square world, the turtle can
	// travel from 0 to DefaultWorldSize on both axes.
	DefaultWorldSize  float64 = 11.088889
	DefaultTurtleSize float64 = 0.45
	// DefaultPoseInterval publishes poses at about 62.5Hz.
	DefaultPoseInterval = 16 * time.Millisecond
	// DefaultTurtleName is the turtle spawned on start.
	DefaultTurtleName = "turtle1"
)

// ControllerType is the type the simulator registers as.
const ControllerType = "turtlesim"

var defaultConfig = Config{
	WorldSize:    DefaultWorldSize,
	TurtleSize:   DefaultTurtleSize,
	SpawnDefault: true,
	PoseInterval: DefaultPoseInterval,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.WorldSize, "world-size", defaultConfig.WorldSize, "Side of the square world.")
	flag.Float64Var(&defaultConfig.TurtleSize, "turtle-size", defaultConfig.TurtleSize, "Size of a turtle, it's square.")
	flag.BoolVar(&defaultConfig.SpawnDefault, "spawn-default", defaultConfig.SpawnDefault, "Spawn "+DefaultTurtleName+" in the center on start.")
	flag.DurationVar(&defaultConfig.PoseInterval, "pose-interval", defaultConfig.PoseInterval, "Interval of simulation steps and pose events.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// World returns the area turtles are confined in.
func (c *Config) World() sim.Rect {
	return sim.Rect{Size2D: sim.Size2D{CX: c.WorldSize, CY: c.WorldSize}}
}

// NewController creates the Controller.
func (c *Config) NewController(e *env.Env) *Controller {
	ctl := NewController(e, c.World())
	ctl.TurtleSize = c.TurtleSize
	if c.SpawnDefault {
		center := c.WorldSize / 2
		ctl.Spawn(DefaultTurtleName, sim.Pose2D{Pos2D: sim.Pos2D{X: center, Y: center}})
	}
	return ctl
}
