package comm

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1"
	"github.com/robotalks/turtle.go/pkg/l1/comm/stream"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

type pipeTestEnv struct {
	registrar Registrar
	conn      ControllerConn
	events    chan *msgs.PoseEvent
	stops     []func() error
	closers   []net.Conn
}

func newPipeTestEnv(t *testing.T) *pipeTestEnv {
	ctlSide, connSide := net.Pipe()
	env := &pipeTestEnv{
		events:  make(chan *msgs.PoseEvent, 16),
		closers: []net.Conn{ctlSide, connSide},
	}
	env.registrar.Init(stream.New(ctlSide))
	env.conn.Init(stream.New(connSide))

	ctlLoop := fx.NewLoop().WithInterval(10*time.Millisecond).Add(&env.registrar)
	ctlLoop.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			if cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg); ok {
				if q, ok := cmdMsg.Command.Msg().(*msgs.PoseQuery); ok {
					mctx.MessageTaken()
					cmdMsg.Command.Done(&msgs.Pose{Name: q.Name, X: 1, Y: 2})
				}
			}
		}))
		return nil
	}))
	ctlLoop.Add(&UnsupportedCommands{})

	connLoop := fx.NewLoop().WithInterval(10*time.Millisecond).Add(&env.conn)
	connLoop.AddController(fx.PrLvSense, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			if ev, ok := mctx.CurrentMessage().(*msgs.PoseEvent); ok {
				mctx.MessageTaken()
				env.events <- ev
			}
		}))
		return nil
	}))

	env.stops = append(env.stops,
		ctlLoop.Start(context.Background()),
		connLoop.Start(context.Background()))
	return env
}

func (e *pipeTestEnv) close() {
	for _, stop := range e.stops {
		stop()
	}
}

func TestPipeCommandReply(t *testing.T) {
	env := newPipeTestEnv(t)
	defer env.close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := l1.Call(ctx, &env.conn, &msgs.PoseQuery{Name: "t1"})
	require.NoError(t, err)
	pose, ok := res.(*msgs.Pose)
	require.True(t, ok)
	require.Equal(t, "t1", pose.Name)
	require.Equal(t, 1.0, pose.X)
	require.Equal(t, 2.0, pose.Y)
	require.Zero(t, env.conn.Pending())
}

func TestPipeUnsupportedCommand(t *testing.T) {
	env := newPipeTestEnv(t)
	defer env.close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := l1.Call(ctx, &env.conn, &msgs.Kill{Name: "t1"})
	require.Error(t, err)
	require.Equal(t, msgs.ErrUnsupportedCommand.Error(), err.Error())
}

func TestPipeEvent(t *testing.T) {
	env := newPipeTestEnv(t)
	defer env.close()

	require.NoError(t, env.registrar.SendEvent(context.Background(),
		&msgs.PoseEvent{Pose: &msgs.Pose{Name: "t1", X: 3}}))
	select {
	case ev := <-env.events:
		require.Equal(t, "t1", ev.Pose.Name)
		require.Equal(t, 3.0, ev.Pose.X)
	case <-time.After(time.Second):
		t.Fatal("event not received")
	}
}

func TestPipeRejectsWrongKind(t *testing.T) {
	p := NewPipe(nil)
	require.Equal(t, ErrNotEvent, p.SendEventMsg(&msgs.Twist{}))
	require.Equal(t, ErrNotCommand, p.SendCommandMsg(&msgs.PoseEvent{}, 1))
}

func TestConnClosedFailsCommands(t *testing.T) {
	env := newPipeTestEnv(t)
	defer env.close()

	env.closers[0].Close()
	var err error
	for i := 0; i < 100; i++ {
		res := <-env.conn.DoCommand(&msgs.PoseQuery{Name: "t1"}).ResultChan()
		if err = res.Err; err == ErrConnClosed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, ErrConnClosed, err)
	require.Zero(t, env.conn.Pending())
}
