package sim

import (
	fx "github.com/robotalks/turtle.go/pkg/framework"
)

// Size2D defines the rectangular size in 2D.
type Size2D struct {
	CX, CY float64
}

// Pos2D defines the position in 2D.
type Pos2D struct {
	X, Y float64
}

// Rect defines a rectangle in 2D.
type Rect struct {
	Pos2D
	Size2D
}

// Pose2D defines the pose in 2D.
type Pose2D struct {
	Pos2D
	Orientation Angle
}

// Rectangular object provides an rectangluar outline dimension.
type Rectangular interface {
	OutlineRect() Rect
}

// Positionable2D object maintains a 2D position.
type Positionable2D interface {
	Position2D() Pose2D
}

// Placeable2D object can be moved with a new pose on a 2D plane.
type Placeable2D interface {
	Positionable2D
	SetPose2D(Pose2D) Pose2D
}

// Object represents an object in the world.
type Object interface {
	fx.Named
}

// ObjectsChangeListener listens for object changes.
type ObjectsChangeListener interface {
	ObjectsChanged(fx.ControlContext, ...Object)
	ObjectsRemoved(fx.ControlContext, ...Object)
}

// ObjectsChangeSubscriber subscribes objects change notifications.
type ObjectsChangeSubscriber interface {
	SubscribeObjectsChange(ObjectsChangeListener)
}

// Add is a helper to add Pos2D.
func (p Pos2D) Add(p1 Pos2D) Pos2D {
	return Pos2D{X: p.X + p1.X, Y: p.Y + p1.Y}
}

// OffsetBy performs Add in-place.
func (p *Pos2D) OffsetBy(p1 Pos2D) *Pos2D {
	p.X += p1.X
	p.Y += p1.Y
	return p
}

// Contains tells if the position is inside the rectangle, edges included.
func (r Rect) Contains(p Pos2D) bool {
	return p.X >= r.X && p.X <= r.X+r.CX && p.Y >= r.Y && p.Y <= r.Y+r.CY
}

// Clamp moves the position onto the nearest point inside the rectangle.
// It returns true if the position was outside.
func (r Rect) Clamp(p *Pos2D) bool {
	clamped := false
	if p.X < r.X {
		p.X, clamped = r.X, true
	} else if hi := r.X + r.CX; p.X > hi {
		p.X, clamped = hi, true
	}
	if p.Y < r.Y {
		p.Y, clamped = r.Y, true
	} else if hi := r.Y + r.CY; p.Y > hi {
		p.Y, clamped = hi, true
	}
	return clamped
}

// IsEmpty tells if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.CX <= 0 || r.CY <= 0
}
