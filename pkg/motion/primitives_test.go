package motion

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Unix(1000, 0)}
}

func (c *manualClock) Time() time.Time { return c.now }

func (c *manualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	return nil
}

type command struct {
	linear  float64
	angular float64
	at      time.Duration
}

func (c command) isStop() bool { return c.linear == 0 && c.angular == 0 }

// recorder is a CommandPublisher remembering commands with their
// time since start.
type recorder struct {
	clock     *manualClock
	start     time.Time
	cmds      []command
	onPublish func(linear, angular float64)
}

func newRecorder() *recorder {
	clock := newManualClock()
	return &recorder{clock: clock, start: clock.now}
}

func (r *recorder) Publish(linear, angular float64) {
	r.cmds = append(r.cmds, command{linear: linear, angular: angular, at: r.clock.now.Sub(r.start)})
	if r.onPublish != nil {
		r.onPublish(linear, angular)
	}
}

func (r *recorder) last() command {
	return r.cmds[len(r.cmds)-1]
}

type segment struct {
	rotate bool
	ticks  int
	// last is the time of the last non-stop command.
	last time.Duration
}

// segments groups commands into moves and rotations, each of which
// must be closed by a stop.
func segments(t *testing.T, cmds []command) []segment {
	var segs []segment
	var cur *segment
	for _, cmd := range cmds {
		if cmd.isStop() {
			if cur != nil {
				segs = append(segs, *cur)
				cur = nil
			}
			continue
		}
		rotate := cmd.angular != 0
		require.True(t, cur == nil || cur.rotate == rotate, "segment not stopped before switching")
		if cur == nil {
			cur = &segment{rotate: rotate}
		}
		cur.ticks++
		cur.last = cmd.at
	}
	require.Nil(t, cur, "last segment not stopped")
	return segs
}

func testConfig() *Config {
	conf := defaultConfig
	return &conf
}

func newTestDriver(rec *recorder) *Driver {
	conf := testConfig()
	d := NewDriver(conf, rec, NewPoseSink(conf.TurtleName))
	d.Clock = rec.clock
	return d
}

func TestMoveStraightTicks(t *testing.T) {
	tests := []struct {
		distance float64
		speed    float64
		ticks    int
	}{
		{distance: 11.088889, speed: 1, ticks: 112},
		{distance: 15.682057, speed: 1, ticks: 158},
		{distance: 0.35, speed: 1, ticks: 5},
		{distance: 11.088889, speed: 2, ticks: 57},
		{distance: 0, speed: 1, ticks: 2},
	}
	for _, test := range tests {
		rec := newRecorder()
		d := newTestDriver(rec)
		d.Config.LinearSpeed = test.speed
		require.NoError(t, d.MoveStraight(context.Background(), test.distance))

		segs := segments(t, rec.cmds)
		require.Len(t, segs, 1, "distance %v", test.distance)
		require.False(t, segs[0].rotate)
		require.Equal(t, test.ticks, segs[0].ticks, "distance %v", test.distance)
		require.True(t, rec.last().isStop())
		for _, cmd := range rec.cmds[:len(rec.cmds)-1] {
			require.Equal(t, test.speed, cmd.linear)
			require.Zero(t, cmd.angular)
		}
		require.True(t, segs[0].last.Seconds() >= test.distance/test.speed)
	}
}

func TestMoveStraightPacing(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	require.NoError(t, d.MoveStraight(context.Background(), 1))
	for n, cmd := range rec.cmds {
		require.Equal(t, time.Duration(n)*100*time.Millisecond, cmd.at)
	}
}

func TestMoveStraightInvalid(t *testing.T) {
	for _, distance := range []float64{-1, math.NaN(), math.Inf(1)} {
		rec := newRecorder()
		d := newTestDriver(rec)
		require.Equal(t, ErrInvalidDistance, d.MoveStraight(context.Background(), distance))
		require.Empty(t, rec.cmds)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		degrees float64
		minTick int
		maxTick int
	}{
		{degrees: 90, minTick: 601, maxTick: 602},
		{degrees: -90, minTick: 601, maxTick: 602},
		{degrees: 135, minTick: 901, maxTick: 902},
		{degrees: 1.5, minTick: 11, maxTick: 12},
	}
	for _, test := range tests {
		rec := newRecorder()
		d := newTestDriver(rec)
		require.NoError(t, d.Rotate(context.Background(), test.degrees))

		segs := segments(t, rec.cmds)
		require.Len(t, segs, 1)
		require.True(t, segs[0].rotate)
		require.True(t, segs[0].ticks >= test.minTick && segs[0].ticks <= test.maxTick,
			"%v degrees took %d ticks", test.degrees, segs[0].ticks)
		speed := 15 * math.Pi / 180
		for _, cmd := range rec.cmds[:len(rec.cmds)-1] {
			require.Zero(t, cmd.linear)
			require.InDelta(t, math.Copysign(speed, test.degrees), cmd.angular, 1e-12)
		}
		require.True(t, segs[0].last.Seconds()*15 >= math.Abs(test.degrees)-1e-9)
		require.Equal(t, 10*time.Millisecond, rec.cmds[1].at)
	}
}

func TestRotateZero(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	require.NoError(t, d.Rotate(context.Background(), 0))
	require.Len(t, rec.cmds, 1)
	require.True(t, rec.cmds[0].isStop())
}

func TestRotateInvalid(t *testing.T) {
	rec := newRecorder()
	d := newTestDriver(rec)
	require.Equal(t, ErrInvalidAngle, d.Rotate(context.Background(), math.NaN()))
	require.Empty(t, rec.cmds)
}

func TestCanceledStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := newRecorder()
	rec.onPublish = func(float64, float64) {
		if len(rec.cmds) == 5 {
			cancel()
		}
	}
	d := newTestDriver(rec)
	err := d.MoveStraight(ctx, 10)
	require.True(t, errors.Is(err, context.Canceled))
	require.Len(t, rec.cmds, 6)
	require.True(t, rec.last().isStop())

	rec.cmds = nil
	err = d.Rotate(ctx, 90)
	require.True(t, errors.Is(err, context.Canceled))
	require.Len(t, rec.cmds, 2)
	require.True(t, rec.last().isStop())
}
