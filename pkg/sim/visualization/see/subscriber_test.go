package see

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/turtle.go/pkg/sim"
)

type testObject struct {
	name string
	pose sim.Pose2D
}

func (o *testObject) Name() string           { return o.name }
func (o *testObject) OutlineRect() sim.Rect  { return sim.Rect{Size2D: sim.Size2D{CX: 0.45, CY: 0.45}} }
func (o *testObject) Position2D() sim.Pose2D { return o.pose }

func decodeReport(t *testing.T, out *bytes.Buffer) []Message {
	var msgs []Message
	require.NoError(t, json.NewDecoder(out).Decode(&msgs))
	return msgs
}

func TestReportChanges(t *testing.T) {
	var out bytes.Buffer
	a := NewConfig().NewAdapter()
	a.Output = &out

	turtle := &testObject{name: "sim/Turtle_Leonardo", pose: sim.Pose2D{Pos2D: sim.Pos2D{X: 1, Y: 2}}}
	a.ObjectsChanged(nil, turtle)
	require.NoError(t, a.ReportChanges(nil))
	msgs := decodeReport(t, &out)
	require.Len(t, msgs, 7)
	require.Equal(t, ActionReset, msgs[0].Action)
	obj := msgs[5]
	require.Equal(t, ActionObject, obj.Action)
	require.Equal(t, "sim.Turtle_Leonardo", obj.Object[PropID])
	require.Equal(t, "turtle", obj.Object[PropType])
	require.Equal(t, "sim.Turtle_Leonardo.trail", msgs[6].Object[PropID])

	require.NoError(t, a.ReportChanges(nil))
	require.Zero(t, out.Len(), "nothing changed")

	a.ObjectsRemoved(nil, turtle)
	require.NoError(t, a.ReportChanges(nil))
	msgs = decodeReport(t, &out)
	require.Equal(t, []Message{
		{Action: ActionRemove, RemoveID: "sim.Turtle_Leonardo"},
		{Action: ActionRemove, RemoveID: "sim.Turtle_Leonardo.trail"},
	}, msgs)
}

func TestTrail(t *testing.T) {
	var out bytes.Buffer
	conf := NewConfig()
	conf.Trail = 2
	a := conf.NewAdapter()
	a.Output = &out
	a.initial = false

	turtle := &testObject{name: "Turtle_Leonardo"}
	for _, x := range []float64{1, 2, 2, 3} {
		turtle.pose.X = x
		a.ObjectsChanged(nil, turtle)
		require.NoError(t, a.ReportChanges(nil))
	}
	require.Equal(t, []Pos{{X: 2}, {X: 3}}, a.trails["Turtle_Leonardo"])

	conf.Trail = 0
	a.trails = nil
	a.ObjectsChanged(nil, turtle)
	out.Reset()
	require.NoError(t, a.ReportChanges(nil))
	require.Len(t, decodeReport(t, &out), 1)
}
