package kinematics

import (
	"github.com/golang/glog"

	"github.com/robotalks/turtle.go/pkg/sim"
	"github.com/robotalks/turtle.go/pkg/sim/physics"
)

// Body is a named object the engine moves.
type Body interface {
	sim.Object
	sim.Placeable2D
}

// Engine implements physics.Kinematics.
type Engine struct {
	Object Body
	// Bounds confines positions, unbounded if empty.
	Bounds sim.Rect

	state  *twistState
	atWall bool
}

// New creates the engine.
func New(obj Body, bounds sim.Rect) *Engine {
	return &Engine{Object: obj, Bounds: bounds}
}

// Twist implements physics.Kinematics.
func (e *Engine) Twist(ctx physics.Context, linear, angular float64) {
	pose := e.estimatePose(ctx)
	e.state = newTwistState(pose, ctx.Time(), linear, angular)
}

// Teleport implements physics.Kinematics.
func (e *Engine) Teleport(ctx physics.Context, pose sim.Pose2D) {
	pose = e.Object.SetPose2D(e.confine(pose))
	if s := e.state; s != nil {
		e.state = newTwistState(pose, ctx.Time(), s.linear, s.angular)
	}
}

// Update implements physics.Kinematics.
func (e *Engine) Update(ctx physics.Context) {
	if e.state != nil {
		e.estimatePose(ctx)
	}
}

// Velocity returns the commanded linear and angular velocity.
func (e *Engine) Velocity() (linear, angular float64) {
	if s := e.state; s != nil {
		return s.linear, s.angular
	}
	return 0, 0
}

func (e *Engine) estimatePose(ctx physics.Context) sim.Pose2D {
	if s := e.state; s != nil {
		return e.Object.SetPose2D(e.confine(s.estimate(ctx.Time())))
	}
	return e.Object.Position2D()
}

func (e *Engine) confine(pose sim.Pose2D) sim.Pose2D {
	if e.Bounds.IsEmpty() {
		return pose
	}
	clamped := e.Bounds.Clamp(&pose.Pos2D)
	if clamped && !e.atWall {
		glog.Warningf("%s hit the wall at (%.3f, %.3f)", e.Object.Name(), pose.X, pose.Y)
	}
	e.atWall = clamped
	return pose
}
