package kinematics

import (
	"math"
	"time"

	"github.com/robotalks/turtle.go/pkg/sim"
)

// twistState integrates a constant twist from a start pose
// using the unicycle model.
type twistState struct {
	startPose sim.Pose2D
	startTime time.Time
	linear    float64
	angular   float64
}

func newTwistState(pose sim.Pose2D, now time.Time, linear, angular float64) *twistState {
	if linear == 0 && angular == 0 {
		return nil
	}
	return &twistState{
		startPose: pose,
		startTime: now,
		linear:    linear,
		angular:   angular,
	}
}

func (s *twistState) estimate(now time.Time) sim.Pose2D {
	pose := s.startPose
	secs := now.Sub(s.startTime).Seconds()
	if secs <= 0 {
		return pose
	}
	if s.angular == 0 {
		pose.Pos2D.OffsetBy(pose.Orientation.Project(s.linear * secs))
		return pose
	}
	theta0 := pose.Orientation.Radians()
	theta1 := theta0 + s.angular*secs
	if s.linear != 0 {
		r := s.linear / s.angular
		pose.Pos2D.OffsetBy(sim.Pos2D{
			X: r * (math.Sin(theta1) - math.Sin(theta0)),
			Y: -r * (math.Cos(theta1) - math.Cos(theta0)),
		})
	}
	pose.Orientation = sim.AngleFromRadians(theta1)
	return pose
}
