package turtlesim

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1"
	env "github.com/robotalks/turtle.go/pkg/l1/env/controller"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
	"github.com/robotalks/turtle.go/pkg/sim"
	"github.com/robotalks/turtle.go/pkg/sim/physics"
)

// Controller is the L1 controller hosting turtles.
type Controller struct {
	Env        *env.Env
	World      sim.Rect
	TurtleSize float64

	sim.ChangeListeners

	turtles map[string]*Turtle
	order   []string
	removed []sim.Object
}

// NewController creates the controller.
func NewController(e *env.Env, world sim.Rect) *Controller {
	return &Controller{
		Env:        e,
		World:      world,
		TurtleSize: DefaultTurtleSize,
		turtles:    make(map[string]*Turtle),
	}
}

// Name implements Named.
func (c *Controller) Name() string {
	return c.Env.Config.Info.Ref.Name()
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvControl, fx.ControlFunc(c.HandleCommand))
	l.AddController(fx.PrLvAcuate, fx.ControlFunc(c.Execute))
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.PublishPoses))
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.NotifyChanges))
}

// Turtle gets a turtle by name.
func (c *Controller) Turtle(name string) *Turtle {
	return c.turtles[name]
}

// Turtles returns all turtles in spawn order.
func (c *Controller) Turtles() []*Turtle {
	turtles := make([]*Turtle, 0, len(c.order))
	for _, name := range c.order {
		turtles = append(turtles, c.turtles[name])
	}
	return turtles
}

// Spawn creates a turtle. An empty name is replaced by the
// first free "turtleN".
func (c *Controller) Spawn(name string, pose sim.Pose2D) (*Turtle, error) {
	if name == "" {
		name = c.freeName()
	}
	if _, exists := c.turtles[name]; exists {
		return nil, fmt.Errorf("%w: %s", msgs.ErrTurtleExists, name)
	}
	t := newTurtle(name, c.TurtleSize, pose, c.World)
	c.turtles[name] = t
	c.order = append(c.order, name)
	glog.Infof("spawned %s at (%.3f, %.3f, %.3f)", name, t.Pose.X, t.Pose.Y, t.Pose.Orientation.Radians())
	return t, nil
}

// Teleport moves a turtle to the pose.
func (c *Controller) Teleport(ctx physics.Context, name string, pose sim.Pose2D) error {
	t, err := c.find(name)
	if err != nil {
		return err
	}
	t.Engine.Teleport(ctx, pose)
	return nil
}

// Twist updates the velocity of a turtle.
func (c *Controller) Twist(ctx physics.Context, name string, linear, angular float64) error {
	t, err := c.find(name)
	if err != nil {
		return err
	}
	t.Engine.Twist(ctx, linear, angular)
	return nil
}

// Kill removes a turtle.
func (c *Controller) Kill(name string) error {
	t, err := c.find(name)
	if err != nil {
		return err
	}
	delete(c.turtles, name)
	for n, item := range c.order {
		if item == name {
			c.order = append(c.order[:n], c.order[n+1:]...)
			break
		}
	}
	c.removed = append(c.removed, t)
	glog.Infof("killed %s", name)
	return nil
}

// HandleCommand is a controller processing commands.
func (c *Controller) HandleCommand(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		reply, handled := c.execCommand(cc, cmdMsg.Command.Msg())
		if !handled {
			return
		}
		mctx.MessageTaken()
		if err := cmdMsg.Command.Done(reply); err != nil {
			glog.Errorf("reply %T error: %v", cmdMsg.Command.Msg(), err)
		}
	}))
	return nil
}

func (c *Controller) execCommand(ctx physics.Context, cmd fx.Message) (fx.Message, bool) {
	var err error
	switch m := cmd.(type) {
	case *msgs.Twist:
		err = c.Twist(ctx, m.Name, m.LinearX(), m.AngularZ())
	case *msgs.Spawn:
		var t *Turtle
		if t, err = c.Spawn(m.Name, poseOf(m.X, m.Y, m.Theta)); err == nil {
			return &msgs.SpawnReply{Name: t.Name()}, true
		}
	case *msgs.TeleportAbsolute:
		err = c.Teleport(ctx, m.Name, poseOf(m.X, m.Y, m.Theta))
	case *msgs.Kill:
		err = c.Kill(m.Name)
	case *msgs.PoseQuery:
		var t *Turtle
		if t, err = c.find(m.Name); err == nil {
			return t.PoseMsg(), true
		}
	default:
		return nil, false
	}
	if err != nil {
		glog.Warningf("%T: %v", cmd, err)
		return msgs.NewCommandErr(err), true
	}
	return msgs.NewCommandOK(), true
}

// Execute is a controller for acuation.
func (c *Controller) Execute(cc fx.ControlContext) error {
	for _, name := range c.order {
		c.turtles[name].Engine.Update(cc)
	}
	return nil
}

// PublishPoses sends a pose event for every turtle.
func (c *Controller) PublishPoses(cc fx.ControlContext) error {
	var errs fx.AggregatedError
	for _, name := range c.order {
		errs.Add(c.Env.Registrar.SendEvent(cc.Context(), &msgs.PoseEvent{Pose: c.turtles[name].PoseMsg()}))
	}
	return errs.Aggregate()
}

// NotifyChanges notifies object changes.
func (c *Controller) NotifyChanges(cc fx.ControlContext) error {
	var changed []sim.Object
	for _, name := range c.order {
		if t := c.turtles[name]; t.changed {
			t.changed = false
			changed = append(changed, t)
		}
	}
	c.ObjectsChanged(cc, changed...)
	removed := c.removed
	c.removed = nil
	c.ObjectsRemoved(cc, removed...)
	return nil
}

func (c *Controller) find(name string) (*Turtle, error) {
	if t := c.turtles[name]; t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", msgs.ErrUnknownTurtle, name)
}

func (c *Controller) freeName() string {
	for n := len(c.turtles) + 1; ; n++ {
		name := "turtle" + strconv.Itoa(n)
		if _, exists := c.turtles[name]; !exists {
			return name
		}
	}
}

func poseOf(x, y, theta float64) sim.Pose2D {
	return sim.Pose2D{Pos2D: sim.Pos2D{X: x, Y: y}, Orientation: sim.AngleFromRadians(theta)}
}
