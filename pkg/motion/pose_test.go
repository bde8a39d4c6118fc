package motion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

func TestPoseSinkLatestWins(t *testing.T) {
	s := NewPoseSink("t1")
	_, ok := s.Latest()
	require.False(t, ok)
	require.False(t, s.Poll())

	s.Deliver(msgs.Pose{Name: "t1", X: 1})
	s.Deliver(msgs.Pose{Name: "t1", X: 2})
	s.Deliver(msgs.Pose{Name: "t1", X: 3})
	require.True(t, s.Poll())
	pose, ok := s.Latest()
	require.True(t, ok)
	require.Equal(t, 3.0, pose.X)

	require.False(t, s.Poll())
	pose, _ = s.Latest()
	require.Equal(t, 3.0, pose.X)
}

func TestPoseSinkInLoop(t *testing.T) {
	s := NewPoseSink("t1")
	loop := fx.NewLoop().WithInterval(5 * time.Millisecond).Add(s)
	leftover := make(chan fx.Message, 4)
	loop.AddController(fx.PrLvIdle, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			leftover <- mctx.CurrentMessage()
		}))
		return nil
	}))
	stop := loop.Start(context.Background())
	defer stop()

	loop.PostMessage(&msgs.PoseEvent{Pose: &msgs.Pose{Name: "t2", X: 9}})
	loop.PostMessage(&msgs.PoseEvent{Pose: &msgs.Pose{Name: "t1", X: 4}})
	loop.TriggerNext()

	deadline := time.Now().Add(time.Second)
	for !s.Poll() {
		require.True(t, time.Now().Before(deadline), "pose not delivered")
		time.Sleep(time.Millisecond)
	}
	pose, _ := s.Latest()
	require.Equal(t, "t1", pose.Name)
	require.Equal(t, 4.0, pose.X)
	require.Empty(t, leftover)
}
