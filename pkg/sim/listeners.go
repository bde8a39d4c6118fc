package sim

import fx "github.com/robotalks/turtle.go/pkg/framework"

// ChangeListeners fans object change notifications out to every
// subscribed listener, in subscription order.
type ChangeListeners []ObjectsChangeListener

// SubscribeObjectsChange implements ObjectsChangeSubscriber.
func (l *ChangeListeners) SubscribeObjectsChange(ln ObjectsChangeListener) {
	*l = append(*l, ln)
}

// ObjectsChanged implements ObjectsChangeListener.
func (l ChangeListeners) ObjectsChanged(cc fx.ControlContext, objs ...Object) {
	if len(objs) == 0 {
		return
	}
	for _, ln := range l {
		ln.ObjectsChanged(cc, objs...)
	}
}

// ObjectsRemoved implements ObjectsChangeListener.
func (l ChangeListeners) ObjectsRemoved(cc fx.ControlContext, objs ...Object) {
	if len(objs) == 0 {
		return
	}
	for _, ln := range l {
		ln.ObjectsRemoved(cc, objs...)
	}
}
