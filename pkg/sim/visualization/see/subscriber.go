// Package see is the adapter to visualize a 2D world in
// github.com/robotalks/see.
package see

import (
	"encoding/json"
	"io"
	"os"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/sim"
)

// Adapter is the visualization adapter to visualize using
// github.com/robotalks/see.
type Adapter struct {
	Config *Config
	Mapper ObjectMapper
	Output io.Writer

	initial    bool
	updated    map[string]sim.Object
	removedIDs map[string]bool
	trails     map[string][]Pos
}

// NewAdapter creates the adapter.
func NewAdapter(config *Config) *Adapter {
	return &Adapter{
		Config:  config,
		Mapper:  MapObjectFunc(DefaultMapObject),
		Output:  os.Stdout,
		initial: true,
	}
}

// Subscribe is a helper to subscribe object changes.
func (a *Adapter) Subscribe(sub sim.ObjectsChangeSubscriber) *Adapter {
	sub.SubscribeObjectsChange(a)
	return a
}

// ObjectsChanged implements ObjectsChangeListener.
func (a *Adapter) ObjectsChanged(cc fx.ControlContext, objs ...sim.Object) {
	if a.updated == nil {
		a.updated = make(map[string]sim.Object)
	}
	for _, obj := range objs {
		a.updated[obj.Name()] = obj
		if a.removedIDs != nil {
			delete(a.removedIDs, obj.Name())
		}
	}
}

// track appends the current position to the object trail, and
// reports whether the trail grew.
func (a *Adapter) track(vo VisibleObject) bool {
	if a.Config.Trail <= 0 {
		return false
	}
	if a.trails == nil {
		a.trails = make(map[string][]Pos)
	}
	po := vo.Position2D()
	pos := Pos{X: po.X, Y: po.Y}
	trail := a.trails[vo.Name()]
	if n := len(trail); n > 0 && trail[n-1] == pos {
		return false
	}
	if len(trail) >= a.Config.Trail {
		trail = trail[1:]
	}
	a.trails[vo.Name()] = append(trail, pos)
	return true
}

// ObjectsRemoved implements ObjectsChangeListener.
func (a *Adapter) ObjectsRemoved(cc fx.ControlContext, objs ...sim.Object) {
	if a.removedIDs == nil {
		a.removedIDs = make(map[string]bool)
	}
	for _, obj := range objs {
		a.removedIDs[obj.Name()] = true
		if a.updated != nil {
			delete(a.updated, obj.Name())
		}
		delete(a.trails, obj.Name())
	}
}

// AddToLoop implements LoopAdder.
func (a *Adapter) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(a.ReportChanges))
}

// ReportChanges is a controller to report changes.
func (a *Adapter) ReportChanges(cc fx.ControlContext) error {
	var msgs []Message
	if a.initial {
		msgs = []Message{
			{Action: ActionReset},
			{Action: ActionObject, Object: NewObject("corner", "corner-lt").With("loc", "lt").At(0, a.Config.H).Radius(0.1)},
			{Action: ActionObject, Object: NewObject("corner", "corner-lb").With("loc", "lb").At(0, 0).Radius(0.1)},
			{Action: ActionObject, Object: NewObject("corner", "corner-rt").With("loc", "rt").At(a.Config.W, a.Config.H).Radius(0.1)},
			{Action: ActionObject, Object: NewObject("corner", "corner-rb").With("loc", "rb").At(a.Config.W, 0).Radius(0.1)},
		}
		a.initial = false
		a.removedIDs = nil
	}

	for name, obj := range a.updated {
		vo, ok := obj.(VisibleObject)
		if !ok {
			continue
		}
		for _, mapped := range a.Mapper.MapObject(vo) {
			if mapped != nil {
				msgs = append(msgs, Message{Action: ActionObject, Object: mapped})
			}
		}
		if a.track(vo) {
			msgs = append(msgs, Message{Action: ActionObject, Object: TrailOf(name, a.trails[name])})
		}
	}

	for name := range a.removedIDs {
		msgs = append(msgs,
			Message{Action: ActionRemove, RemoveID: ObjectID(name)},
			Message{Action: ActionRemove, RemoveID: ObjectID(name) + TrailSuffix})
	}

	a.updated, a.removedIDs = nil, nil
	if len(msgs) > 0 {
		return json.NewEncoder(a.Output).Encode(msgs)
	}
	return nil
}
