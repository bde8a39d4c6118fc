package motion

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

// LapLimitError is returned when the square doesn't close within
// MaxSquareLaps sides.
type LapLimitError struct {
	Laps int
	Last msgs.Pose
}

func (e *LapLimitError) Error() string {
	return fmt.Sprintf("square not closed after %d sides, last pose (%.3f, %.3f)",
		e.Laps, e.Last.X, e.Last.Y)
}

// TraceSquare repeats side-and-turn at least once, until the latest
// pose is within SquareThreshold of the origin on both axes.
func (d *Driver) TraceSquare(ctx context.Context) error {
	conf := d.Config
	for lap := 1; ; lap++ {
		if err := d.MoveStraight(ctx, conf.SideLength); err != nil {
			return err
		}
		if err := d.Rotate(ctx, 90); err != nil {
			return err
		}
		pose := d.latestPose()
		glog.V(1).Infof("square side %d done at (%.3f, %.3f)", lap, pose.X, pose.Y)
		if pose.X <= conf.SquareThreshold && pose.Y <= conf.SquareThreshold {
			return nil
		}
		if conf.MaxSquareLaps > 0 && lap >= conf.MaxSquareLaps {
			return &LapLimitError{Laps: lap, Last: pose}
		}
	}
}

// TraceTriangle draws the right isosceles triangle on the square's
// first side: side, left 90, side, left 135, hypotenuse.
func (d *Driver) TraceTriangle(ctx context.Context) error {
	conf := d.Config
	steps := []func() error{
		func() error { return d.MoveStraight(ctx, conf.SideLength) },
		func() error { return d.Rotate(ctx, 90) },
		func() error { return d.MoveStraight(ctx, conf.SideLength) },
		func() error { return d.Rotate(ctx, 135) },
		func() error { return d.MoveStraight(ctx, conf.DiagonalLength) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Run draws the square and then the triangle. A square that fails to
// close is reported and the triangle is still drawn.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.TraceSquare(ctx); err != nil {
		var lapErr *LapLimitError
		if !errors.As(err, &lapErr) {
			return err
		}
		glog.Warningf("%v, drawing triangle anyway", err)
	} else {
		glog.Info("square done")
	}
	if err := d.TraceTriangle(ctx); err != nil {
		return err
	}
	glog.Info("triangle done")
	return nil
}

func (d *Driver) latestPose() msgs.Pose {
	d.poll()
	if d.Pose == nil {
		return msgs.Pose{}
	}
	pose, ok := d.Pose.Latest()
	if !ok {
		glog.Warning("no pose received yet, assuming origin")
	}
	return pose
}
