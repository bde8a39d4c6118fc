package motion

import (
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/turtle.go/pkg/l1"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

// CommandPublisher publishes velocity commands to the turtle.
// Commands are level-triggered: the turtle keeps executing the last
// one, so a zero command is needed to stop.
type CommandPublisher interface {
	Publish(linearX, angularZ float64)
}

// Emitter publishes Twist commands over a controller connection,
// fire-and-forget. Failed deliveries are logged, never returned.
type Emitter struct {
	Conn l1.ControllerConn
	Name string

	pending []l1.CommandFuture
	failing bool
}

// NewEmitter creates an Emitter for the named turtle.
func NewEmitter(conn l1.ControllerConn, name string) *Emitter {
	return &Emitter{Conn: conn, Name: name}
}

// Publish implements CommandPublisher.
func (e *Emitter) Publish(linearX, angularZ float64) {
	e.reap()
	f := e.Conn.DoCommand(msgs.NewTwist(e.Name, linearX, angularZ))
	e.pending = append(e.pending, f)
}

// Flush waits for outstanding commands to be answered or expire.
func (e *Emitter) Flush(ctx context.Context) error {
	for n, f := range e.pending {
		select {
		case res, ok := <-f.ResultChan():
			if ok {
				e.report(res.Err)
			}
		case <-ctx.Done():
			e.pending = e.pending[n:]
			return ctx.Err()
		}
	}
	e.pending = nil
	return nil
}

// reap collects finished commands without blocking.
func (e *Emitter) reap() {
	remains := e.pending[:0]
	for _, f := range e.pending {
		select {
		case res, ok := <-f.ResultChan():
			if ok {
				e.report(res.Err)
			}
		default:
			remains = append(remains, f)
		}
	}
	for n := len(remains); n < len(e.pending); n++ {
		e.pending[n] = nil
	}
	e.pending = remains
}

// report logs transitions between delivering and failing, so a
// simulator going away doesn't flood the log at the tick rate.
func (e *Emitter) report(err error) {
	switch {
	case err != nil && !e.failing:
		e.failing = true
		glog.Warningf("velocity command to %s failed: %v", e.Name, err)
	case err == nil && e.failing:
		e.failing = false
		glog.Infof("velocity commands to %s delivered again", e.Name)
	}
}
