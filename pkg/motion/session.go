package motion

import (
	"context"

	"github.com/golang/glog"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

// Session binds a turtle on a simulator connection: it spawns and
// places the turtle, then drives it.
type Session struct {
	Config *Config
	Conn   l1.ControllerConn

	Emitter *Emitter
	Pose    *PoseSink
	Driver  *Driver
}

// NewSession creates a session for conf.TurtleName.
func NewSession(conf *Config, conn l1.ControllerConn) *Session {
	s := &Session{
		Config:  conf,
		Conn:    conn,
		Emitter: NewEmitter(conn, conf.TurtleName),
		Pose:    NewPoseSink(conf.TurtleName),
	}
	s.Driver = NewDriver(conf, s.Emitter, s.Pose)
	return s
}

// AddToLoop implements LoopAdder. The loop hosts the connection
// and the pose sink, the driver runs on its own goroutine.
func (s *Session) AddToLoop(l *fx.Loop) {
	if adder, ok := s.Conn.(fx.LoopAdder); ok {
		l.Add(adder)
	}
	l.Add(s.Pose)
}

// Spawn creates the turtle at the configured spawn pose.
func (s *Session) Spawn(ctx context.Context) error {
	p := s.Config.Spawn
	res, err := s.call(ctx, &msgs.Spawn{X: p.X, Y: p.Y, Theta: p.Theta, Name: s.Config.TurtleName})
	if err != nil {
		return err
	}
	if reply, ok := res.(*msgs.SpawnReply); ok {
		glog.Infof("spawned %s", reply.Name)
	}
	return nil
}

// Teleport places the turtle at the configured origin.
func (s *Session) Teleport(ctx context.Context) error {
	p := s.Config.Origin
	_, err := s.call(ctx, &msgs.TeleportAbsolute{Name: s.Config.TurtleName, X: p.X, Y: p.Y, Theta: p.Theta})
	if err == nil {
		glog.Infof("teleported %s to (%.3f, %.3f, %.3f)", s.Config.TurtleName, p.X, p.Y, p.Theta)
	}
	return err
}

// Bootstrap spawns and teleports. Failures are logged and returned
// but don't prevent the later step.
func (s *Session) Bootstrap(ctx context.Context) error {
	var errs fx.AggregatedError
	if err := s.Spawn(ctx); err != nil {
		glog.Errorf("spawn %s: %v", s.Config.TurtleName, err)
		errs.Add(err)
	}
	if err := s.Teleport(ctx); err != nil {
		glog.Errorf("teleport %s: %v", s.Config.TurtleName, err)
		errs.Add(err)
	}
	return errs.Aggregate()
}

// Prepare bootstraps the turtle, best-effort: a turtle that already
// exists or can't be teleported is still driven from where it is.
func (s *Session) Prepare(ctx context.Context) {
	if err := s.Bootstrap(ctx); err != nil {
		glog.V(1).Infof("bootstrap incomplete, driving anyway: %v", err)
	}
}

// Run bootstraps the turtle and draws the shapes.
func (s *Session) Run(ctx context.Context) error {
	s.Prepare(ctx)
	return s.Driver.Run(ctx)
}

func (s *Session) call(ctx context.Context, msg fx.Message) (fx.Message, error) {
	if timeout := s.Config.ServiceTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return l1.Call(ctx, s.Conn, msg)
}
