package turtlesim

import (
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
	"github.com/robotalks/turtle.go/pkg/sim"
	"github.com/robotalks/turtle.go/pkg/sim/physics/kinematics"
)

// Turtle is a simulated turtle.
type Turtle struct {
	Outline sim.Rect
	Pose    sim.Pose2D
	Engine  *kinematics.Engine

	name    string
	changed bool
}

func newTurtle(name string, size float64, pose sim.Pose2D, world sim.Rect) *Turtle {
	t := &Turtle{name: name, changed: true}
	t.Outline.CX, t.Outline.CY = size, size
	t.Outline.X, t.Outline.Y = -size/2, -size/2
	t.Engine = kinematics.New(t, world)
	t.Pose = pose
	world.Clamp(&t.Pose.Pos2D)
	return t
}

// Name implements Named.
func (t *Turtle) Name() string {
	return t.name
}

// OutlineRect implements Rectangular.
func (t *Turtle) OutlineRect() sim.Rect {
	return t.Outline
}

// Position2D implements Placeable2D.
func (t *Turtle) Position2D() sim.Pose2D {
	return t.Pose
}

// SetPose2D implements Placeable2D.
func (t *Turtle) SetPose2D(pose sim.Pose2D) sim.Pose2D {
	if pose != t.Pose {
		t.Pose = pose
		t.changed = true
	}
	return t.Pose
}

// PoseMsg converts current pose to message.
func (t *Turtle) PoseMsg() *msgs.Pose {
	linear, angular := t.Engine.Velocity()
	return &msgs.Pose{
		Name:            t.name,
		X:               t.Pose.X,
		Y:               t.Pose.Y,
		Theta:           t.Pose.Orientation.Radians(),
		LinearVelocity:  linear,
		AngularVelocity: angular,
	}
}
