package physics

import (
	"context"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/sim"
)

// Context provides the simulation context.
type Context interface {
	fx.TimeSource
	Context() context.Context
}

// Kinematics simulates a planar body driven by velocity commands.
type Kinematics interface {
	// Twist replaces the commanded velocity, linear in units/s
	// and angular in rad/s. It stays in effect until replaced.
	Twist(ctx Context, linear, angular float64)
	// Teleport places the body at the pose, keeping its velocity.
	Teleport(ctx Context, pose sim.Pose2D)
	// Update advances the body to ctx.Time().
	Update(ctx Context)
}
