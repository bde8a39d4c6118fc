package motion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/turtle.go/pkg/l1/msgs"
	"github.com/robotalks/turtle.go/pkg/sim"
	"github.com/robotalks/turtle.go/pkg/sim/bots/turtlesim"
)

// simWorld drives a simulated turtle with the recorded commands and
// feeds its pose back to the driver.
type simWorld struct {
	*recorder
	sim  *turtlesim.Controller
	name string
}

func (w *simWorld) Time() time.Time          { return w.clock.now }
func (w *simWorld) Context() context.Context { return context.Background() }

func newSimWorld(t *testing.T, d *Driver, rec *recorder) *simWorld {
	conf := turtlesim.NewConfig()
	w := &simWorld{
		recorder: rec,
		sim:      turtlesim.NewController(nil, conf.World()),
		name:     d.Config.TurtleName,
	}
	_, err := w.sim.Spawn(w.name, sim.Pose2D{})
	require.NoError(t, err)
	rec.onPublish = func(linear, angular float64) {
		require.NoError(t, w.sim.Twist(w, w.name, linear, angular))
		d.Pose.Deliver(*w.sim.Turtle(w.name).PoseMsg())
	}
	return w
}

func kinds(segs []segment) (out []string) {
	for _, seg := range segs {
		if seg.rotate {
			out = append(out, "rotate")
		} else {
			out = append(out, "move")
		}
	}
	return
}

func TestSquareCloses(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	w := newSimWorld(t, d, rec)
	require.NoError(t, d.TraceSquare(context.Background()))

	segs := segments(t, rec.cmds)
	require.Len(t, segs, 8)
	for n, seg := range segs {
		require.Equal(t, n%2 == 1, seg.rotate)
	}
	pose := w.sim.Turtle(w.name).Pose
	require.True(t, pose.X <= 1 && pose.Y <= 1, "ended at %v", pose.Pos2D)
}

func TestSquareRunsOnceWithoutFeedback(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	require.NoError(t, d.TraceSquare(context.Background()))
	require.Equal(t, []string{"move", "rotate"}, kinds(segments(t, rec.cmds)))
}

func TestSquareLapLimit(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	d.Config.MaxSquareLaps = 3
	rec.onPublish = func(float64, float64) {
		d.Pose.Deliver(msgs.Pose{Name: d.Config.TurtleName, X: 5, Y: 0.5})
	}
	err := d.TraceSquare(context.Background())
	var lapErr *LapLimitError
	require.True(t, errors.As(err, &lapErr))
	require.Equal(t, 3, lapErr.Laps)
	require.Equal(t, 5.0, lapErr.Last.X)
	require.Len(t, segments(t, rec.cmds), 6)
}

func TestTriangle(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	require.NoError(t, d.TraceTriangle(context.Background()))

	segs := segments(t, rec.cmds)
	require.Equal(t, []string{"move", "rotate", "move", "rotate", "move"}, kinds(segs))
	require.Equal(t, 112, segs[0].ticks)
	require.Equal(t, 112, segs[2].ticks)
	require.Equal(t, 158, segs[4].ticks)
	require.True(t, segs[1].ticks < segs[3].ticks)
}

func TestRunDrawsTriangleAfterLapLimit(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	d.Config.MaxSquareLaps = 2
	rec.onPublish = func(float64, float64) {
		d.Pose.Deliver(msgs.Pose{Name: d.Config.TurtleName, X: 5, Y: 5})
	}
	require.NoError(t, d.Run(context.Background()))
	require.Len(t, segments(t, rec.cmds), 4+5)
}

func TestRunInSimulator(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	w := newSimWorld(t, d, rec)
	require.NoError(t, d.Run(context.Background()))
	require.Len(t, segments(t, rec.cmds), 8+5)
	pose := w.sim.Turtle(w.name).Pose
	require.True(t, pose.X < 1 && pose.Y < 1, "ended at %v", pose.Pos2D)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := newRecorder()
	rec.onPublish = func(float64, float64) {
		if len(rec.cmds) == 300 {
			cancel()
		}
	}
	d := newTestDriver(rec)
	require.True(t, errors.Is(d.Run(ctx), context.Canceled))
	require.True(t, rec.last().isStop())
}
