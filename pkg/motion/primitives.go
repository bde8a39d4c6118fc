package motion

import (
	"context"
	"errors"
	"math"

	"github.com/golang/glog"

	fx "github.com/robotalks/turtle.go/pkg/framework"
)

var (
	// ErrInvalidDistance indicates a negative or NaN distance.
	ErrInvalidDistance = errors.New("invalid distance")
	// ErrInvalidAngle indicates a NaN or infinite angle.
	ErrInvalidAngle = errors.New("invalid angle")
)

// Driver moves a turtle open-loop: progress is estimated from the
// commanded speed and elapsed time, never from pose feedback.
type Driver struct {
	Config *Config
	Clock  fx.Clock
	Cmd    CommandPublisher
	Pose   *PoseSink
}

// NewDriver creates a Driver on the system clock.
func NewDriver(conf *Config, cmd CommandPublisher, pose *PoseSink) *Driver {
	return &Driver{Config: conf, Clock: fx.SystemClock{}, Cmd: cmd, Pose: pose}
}

// MoveStraight drives forward by distance at the configured speed.
// The turtle is always stopped on return, including on error.
func (d *Driver) MoveStraight(ctx context.Context, distance float64) error {
	if !(distance >= 0) || math.IsInf(distance, 1) {
		return ErrInvalidDistance
	}
	speed := d.Config.LinearSpeed
	glog.V(1).Infof("move %.6f at %.3f/s", distance, speed)
	defer d.stop()

	rate := fx.NewRate(d.Clock, d.Config.LinearRate)
	t0 := d.Clock.Time()
	for covered := 0.0; covered <= distance; {
		d.Cmd.Publish(speed, 0)
		covered = speed * d.Clock.Time().Sub(t0).Seconds()
		if err := rate.Sleep(ctx); err != nil {
			return err
		}
		d.poll()
	}
	return nil
}

// Rotate turns in place by degrees, counter-clockwise if positive.
// The turtle is always stopped on return, including on error.
func (d *Driver) Rotate(ctx context.Context, degrees float64) error {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return ErrInvalidAngle
	}
	speed := degToRad(d.Config.AngularSpeed)
	target := degToRad(math.Abs(degrees))
	velocity := math.Copysign(speed, degrees)
	glog.V(1).Infof("rotate %.3f deg at %.3f deg/s", degrees, d.Config.AngularSpeed)
	defer d.stop()

	rate := fx.NewRate(d.Clock, d.Config.AngularRate)
	t0 := d.Clock.Time()
	for covered := 0.0; covered < target; {
		d.Cmd.Publish(0, velocity)
		covered = speed * d.Clock.Time().Sub(t0).Seconds()
		if err := rate.Sleep(ctx); err != nil {
			return err
		}
		d.poll()
	}
	return nil
}

func (d *Driver) stop() {
	d.Cmd.Publish(0, 0)
}

func (d *Driver) poll() {
	if d.Pose != nil {
		d.Pose.Poll()
	}
}

func degToRad(deg float64) float64 {
	return deg * 2 * math.Pi / 360
}
