package framework

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type numMsg int

func (numMsg) NewMessage() Message { return numMsg(0) }

func TestLoopProcessMessages(t *testing.T) {
	seen := make(chan []numMsg, 1)
	loop := NewLoop().WithInterval(time.Hour).
		AddController(PrLvSense, ControlFunc(func(cc ControlContext) error {
			cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
				if mctx.CurrentMessage().(numMsg) == 1 {
					mctx.MessageTaken()
					mctx.StopProcessing()
				}
			}))
			return nil
		})).
		AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
			var msgs []numMsg
			cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
				msgs = append(msgs, mctx.CurrentMessage().(numMsg))
			}))
			seen <- msgs
			return nil
		}))
	for n := 0; n < 4; n++ {
		loop.PostMessage(numMsg(n))
	}
	stop := loop.Start(context.Background())
	defer stop()
	loop.TriggerNext()

	select {
	case msgs := <-seen:
		require.Equal(t, []numMsg{0, 2, 3}, msgs)
	case <-time.After(2 * time.Second):
		t.Fatal("iteration not triggered")
	}
}

func TestLoopStartStop(t *testing.T) {
	started := make(chan struct{})
	stop := NewLoop().AddRunnable(RunFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})).Start(context.Background())
	<-started
	require.NoError(t, stop())
}

func TestLoopClock(t *testing.T) {
	clock := &stepClock{now: time.Unix(100, 0)}
	times := make(chan time.Time, 1)
	loop := NewLoop().WithInterval(time.Hour).
		AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
			times <- cc.Time()
			return nil
		}))
	loop.Clock = clock
	stop := loop.Start(context.Background())
	defer stop()
	loop.TriggerNext()

	select {
	case now := <-times:
		require.Equal(t, clock.now, now)
	case <-time.After(2 * time.Second):
		t.Fatal("iteration not triggered")
	}
}
