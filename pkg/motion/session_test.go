package motion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

type resultFuture chan l1.Result

func (f resultFuture) ResultChan() <-chan l1.Result { return f }

// fakeConn answers every command at once, pending ones never.
type fakeConn struct {
	sent    []fx.Message
	reply   func(fx.Message) l1.Result
	pending bool
}

func (c *fakeConn) DoCommand(msg fx.Message) l1.CommandFuture {
	c.sent = append(c.sent, msg)
	f := make(resultFuture, 1)
	if c.pending {
		return f
	}
	res := l1.Result{Msg: msgs.NewCommandOK()}
	if c.reply != nil {
		res = c.reply(msg)
	}
	f <- res
	close(f)
	return f
}

func TestSessionBootstrap(t *testing.T) {
	conn := &fakeConn{reply: func(msg fx.Message) l1.Result {
		if spawn, ok := msg.(*msgs.Spawn); ok {
			return l1.Result{Msg: &msgs.SpawnReply{Name: spawn.Name}}
		}
		return l1.Result{Msg: msgs.NewCommandOK()}
	}}
	s := NewSession(testConfig(), conn)
	require.NoError(t, s.Bootstrap(context.Background()))
	require.Equal(t, []fx.Message{
		&msgs.Spawn{X: 5.45, Y: 5.45, Name: "Turtle_Leonardo"},
		&msgs.TeleportAbsolute{Name: "Turtle_Leonardo"},
	}, conn.sent)
}

func TestSessionBootstrapContinuesOnFailure(t *testing.T) {
	conn := &fakeConn{reply: func(msg fx.Message) l1.Result {
		err := msgs.NewCommandErr(msgs.ErrTurtleExists)
		return l1.Result{Msg: err, Err: err}
	}}
	s := NewSession(testConfig(), conn)
	err := s.Bootstrap(context.Background())
	require.Error(t, err)
	require.Len(t, err.(*fx.AggregatedError).Errors, 2)
	require.Len(t, conn.sent, 2)
}

func TestSessionCallTimeout(t *testing.T) {
	conf := testConfig()
	conf.ServiceTimeout = 1
	s := NewSession(conf, &fakeConn{pending: true})
	require.True(t, errors.Is(s.Spawn(context.Background()), context.DeadlineExceeded))
}

func TestEmitter(t *testing.T) {
	conn := &fakeConn{}
	e := NewEmitter(conn, "t1")
	e.Publish(1, 0)
	e.Publish(0, 0.5)
	require.Equal(t, []fx.Message{
		msgs.NewTwist("t1", 1, 0),
		msgs.NewTwist("t1", 0, 0.5),
	}, conn.sent)
	require.Len(t, e.pending, 1)

	conn.reply = func(fx.Message) l1.Result { return l1.Result{Err: context.DeadlineExceeded} }
	e.Publish(0, 0)
	e.Publish(0, 0)
	require.True(t, e.failing)

	conn.reply = nil
	e.Publish(0, 0)
	e.Publish(0, 0)
	require.False(t, e.failing)
	require.Len(t, e.pending, 1)
}

func TestEmitterKeepsUnanswered(t *testing.T) {
	conn := &fakeConn{pending: true}
	e := NewEmitter(conn, "t1")
	for i := 0; i < 3; i++ {
		e.Publish(1, 0)
	}
	require.Len(t, e.pending, 3)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	require.Equal(t, context.DeadlineExceeded, e.Flush(ctx))
	require.Len(t, e.pending, 3)
}

func TestEmitterFlush(t *testing.T) {
	e := NewEmitter(&fakeConn{}, "t1")
	e.Publish(1, 0)
	e.Publish(0, 0)
	require.NoError(t, e.Flush(context.Background()))
	require.Empty(t, e.pending)
}

func TestSessionRunDrivesAfterBootstrapFailure(t *testing.T) {
	conn := &fakeConn{reply: func(fx.Message) l1.Result {
		err := msgs.NewCommandErr(msgs.ErrUnknownTurtle)
		return l1.Result{Msg: err, Err: err}
	}}
	s := NewSession(testConfig(), conn)
	rec := newRecorder()
	s.Driver.Cmd, s.Driver.Clock = rec, rec.clock

	require.NoError(t, s.Run(context.Background()))
	require.Len(t, conn.sent, 2)
	// one square side without pose feedback, then the triangle
	require.Len(t, segments(t, rec.cmds), 7)
}
