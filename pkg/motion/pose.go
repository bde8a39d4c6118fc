package motion

import (
	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

// PoseSink keeps the most recent pose of one turtle.
// Deliver runs on the connection loop, Poll and Latest on the
// goroutine driving the turtle. Unpolled samples are overwritten,
// only the newest one is ever observed.
type PoseSink struct {
	Name string

	ch       chan msgs.Pose
	latest   msgs.Pose
	received bool
}

// NewPoseSink creates a PoseSink for the named turtle.
func NewPoseSink(name string) *PoseSink {
	return &PoseSink{Name: name, ch: make(chan msgs.Pose, 1)}
}

// Deliver hands over a new sample, replacing any unpolled one.
func (s *PoseSink) Deliver(pose msgs.Pose) {
	for {
		select {
		case s.ch <- pose:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Poll takes the delivered sample, if any, as the latest pose.
// It never blocks.
func (s *PoseSink) Poll() bool {
	select {
	case pose := <-s.ch:
		s.latest, s.received = pose, true
		return true
	default:
		return false
	}
}

// Latest returns the last polled pose, zero before the first one
// arrives, in which case ok is false.
func (s *PoseSink) Latest() (pose msgs.Pose, ok bool) {
	return s.latest, s.received
}

// Control implements Controller, taking pose events from the loop.
// Events of other turtles are dropped.
func (s *PoseSink) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		ev, ok := mctx.CurrentMessage().(*msgs.PoseEvent)
		if !ok {
			return
		}
		mctx.MessageTaken()
		if ev.Pose != nil && ev.Pose.Name == s.Name {
			s.Deliver(*ev.Pose)
		}
	}))
	return nil
}

// AddToLoop implements LoopAdder.
func (s *PoseSink) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvSense, s)
}
