package turtle

import (
	"fmt"
	"math"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/turtle.go/pkg/cli/sh"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
	"github.com/robotalks/turtle.go/pkg/sim"
)

// parseFloats parses args in order, the ones after required are optional.
func parseFloats(args []string, required int, names ...string) ([]float64, error) {
	if len(args) < required {
		return nil, fmt.Errorf("%s required", names[len(args)])
	}
	vals := make([]float64, len(names))
	for n := range names {
		if n >= len(args) {
			break
		}
		val, err := strconv.ParseFloat(args[n], 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid %s: %v", names[n], err)
		}
		vals[n] = val
	}
	return vals, nil
}

// heading converts degrees to a normalized heading in radians.
func heading(deg float64) float64 {
	return sim.AngleFromDegrees(deg).Radians()
}

// rate converts degrees/s to radians/s, not normalized.
func rate(deg float64) float64 {
	return deg * math.Pi / 180
}

func nameArg(c *ishell.Context) (string, bool) {
	if len(c.Args) < 1 {
		c.Err(fmt.Errorf("NAME required"))
		return "", false
	}
	return c.Args[0], true
}

var (
	// SpawnCmd exposes Spawn command.
	SpawnCmd = ishell.Cmd{
		Name:    "turtle.spawn",
		Aliases: []string{"ts"},
		Help:    "X Y [THETA(degrees)] [NAME]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			args := c.Args
			var msg msgs.Spawn
			if len(args) > 3 {
				msg.Name, args = args[3], args[:3]
			}
			vals, err := parseFloats(args, 2, "X", "Y", "THETA")
			if err != nil {
				c.Err(err)
				return
			}
			msg.X, msg.Y, msg.Theta = vals[0], vals[1], heading(vals[2])
			sh.DoCommand(c, &msg)
		}),
	}

	// TeleportCmd exposes TeleportAbsolute command.
	TeleportCmd = ishell.Cmd{
		Name:    "turtle.teleport",
		Aliases: []string{"tt"},
		Help:    "NAME X Y [THETA(degrees)]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			name, ok := nameArg(c)
			if !ok {
				return
			}
			vals, err := parseFloats(c.Args[1:], 2, "X", "Y", "THETA")
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.TeleportAbsolute{Name: name, X: vals[0], Y: vals[1], Theta: heading(vals[2])})
		}),
	}

	// TwistCmd exposes Twist command.
	TwistCmd = ishell.Cmd{
		Name:    "turtle.twist",
		Aliases: []string{"tw"},
		Help:    "NAME LINEAR(units/s) [ANGULAR(degrees/s)]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			name, ok := nameArg(c)
			if !ok {
				return
			}
			vals, err := parseFloats(c.Args[1:], 1, "LINEAR", "ANGULAR")
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, msgs.NewTwist(name, vals[0], rate(vals[1])))
		}),
	}

	// StopCmd sends a zero Twist.
	StopCmd = ishell.Cmd{
		Name:    "turtle.stop",
		Aliases: []string{"tx"},
		Help:    "NAME",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if name, ok := nameArg(c); ok {
				sh.DoCommand(c, msgs.NewTwist(name, 0, 0))
			}
		}),
	}

	// KillCmd exposes Kill command.
	KillCmd = ishell.Cmd{
		Name:    "turtle.kill",
		Aliases: []string{"tk"},
		Help:    "NAME",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if name, ok := nameArg(c); ok {
				sh.DoCommand(c, &msgs.Kill{Name: name})
			}
		}),
	}

	// PoseCmd exposes PoseQuery command.
	PoseCmd = ishell.Cmd{
		Name:    "turtle.pose",
		Aliases: []string{"tp"},
		Help:    "NAME",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			name, ok := nameArg(c)
			if !ok {
				return
			}
			if sh.ShellFrom(c).OutputJSON {
				sh.DoCommand(c, &msgs.PoseQuery{Name: name})
				return
			}
			res, err := sh.Call(c, &msgs.PoseQuery{Name: name})
			if err != nil {
				c.Err(err)
				return
			}
			if pose, ok := res.(*msgs.Pose); ok {
				c.Printf("%s: x=%.3f y=%.3f theta=%.1f° linear=%.3f angular=%.1f°/s\n",
					pose.Name, pose.X, pose.Y,
					sim.AngleFromRadians(pose.Theta).Degrees(),
					pose.LinearVelocity,
					pose.AngularVelocity*180/math.Pi)
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&SpawnCmd,
		&TeleportCmd,
		&TwistCmd,
		&StopCmd,
		&KillCmd,
		&PoseCmd,
	)
}
