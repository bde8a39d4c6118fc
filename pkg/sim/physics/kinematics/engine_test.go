package kinematics

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/turtle.go/pkg/sim"
)

type testBody struct {
	pose sim.Pose2D
}

func (b *testBody) Name() string { return "test" }

func (b *testBody) Position2D() sim.Pose2D { return b.pose }

func (b *testBody) SetPose2D(pose sim.Pose2D) sim.Pose2D {
	b.pose = pose
	return pose
}

type atTime time.Time

func (t atTime) Time() time.Time          { return time.Time(t) }
func (t atTime) Context() context.Context { return context.Background() }

func TestTwistEstimate(t *testing.T) {
	testCases := []struct {
		name    string
		linear  float64
		angular float64
		after   time.Duration
		expect  sim.Pose2D
	}{
		{
			name:   "straight",
			linear: 1,
			after:  2 * time.Second,
			expect: sim.Pose2D{Pos2D: sim.Pos2D{X: 2}},
		},
		{
			name:   "reverse",
			linear: -1,
			after:  time.Second,
			expect: sim.Pose2D{Pos2D: sim.Pos2D{X: -1}},
		},
		{
			name:    "turn in place",
			angular: math.Pi / 2,
			after:   time.Second,
			expect:  sim.Pose2D{Orientation: sim.AngleFromDegrees(90)},
		},
		{
			name:    "quarter arc",
			linear:  math.Pi / 2,
			angular: math.Pi / 2,
			after:   time.Second,
			expect:  sim.Pose2D{Pos2D: sim.Pos2D{X: 1, Y: 1}, Orientation: sim.AngleFromDegrees(90)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var baseTime time.Time
			pose := newTwistState(sim.Pose2D{}, baseTime, tc.linear, tc.angular).
				estimate(baseTime.Add(tc.after))
			require.InDelta(t, tc.expect.X, pose.X, 1e-9)
			require.InDelta(t, tc.expect.Y, pose.Y, 1e-9)
			require.InDelta(t, tc.expect.Orientation.Radians(), pose.Orientation.Radians(), 1e-9)
		})
	}
}

func TestTwistZeroIsNoState(t *testing.T) {
	require.Nil(t, newTwistState(sim.Pose2D{}, time.Time{}, 0, 0))
}

func TestEngineLevelTriggered(t *testing.T) {
	body := &testBody{}
	e := New(body, sim.Rect{})
	var base time.Time
	e.Twist(atTime(base), 1, 0)
	e.Update(atTime(base.Add(time.Second)))
	require.InDelta(t, 1, body.pose.X, 1e-9)
	e.Update(atTime(base.Add(3 * time.Second)))
	require.InDelta(t, 3, body.pose.X, 1e-9, "keeps moving until overridden")

	e.Twist(atTime(base.Add(3*time.Second)), 0, 0)
	e.Update(atTime(base.Add(5 * time.Second)))
	require.InDelta(t, 3, body.pose.X, 1e-9)
	linear, angular := e.Velocity()
	require.Zero(t, linear)
	require.Zero(t, angular)
}

func TestEngineBounds(t *testing.T) {
	body := &testBody{}
	world := sim.Rect{Size2D: sim.Size2D{CX: 11.088889, CY: 11.088889}}
	e := New(body, world)
	var base time.Time
	e.Twist(atTime(base), 1, 0)
	e.Update(atTime(base.Add(12 * time.Second)))
	require.Equal(t, 11.088889, body.pose.X)
	require.Zero(t, body.pose.Y)

	e.Teleport(atTime(base.Add(12*time.Second)), sim.Pose2D{Pos2D: sim.Pos2D{X: -3, Y: 4}})
	require.Zero(t, body.pose.X)
	require.Equal(t, 4.0, body.pose.Y)
	linear, _ := e.Velocity()
	require.Equal(t, 1.0, linear, "teleport keeps velocity")
}
