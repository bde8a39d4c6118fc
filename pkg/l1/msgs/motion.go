package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/turtle.go/pkg/framework"
)

// Vector3 is a 3D vector.
type Vector3 struct {
	X float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Z float64 `protobuf:"fixed64,3,opt,name=z,proto3" json:"z,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Vector3) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Vector3) Reset() { *m = Vector3{} }

// String implements proto.Message.
func (m *Vector3) String() string { return proto.CompactTextString(m) }

// Twist commands linear (units/s) and angular (rad/s) velocity of a turtle.
// It stays in effect until the next Twist for the same turtle.
type Twist struct {
	Name    string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Linear  *Vector3 `protobuf:"bytes,2,opt,name=linear,proto3" json:"linear,omitempty"`
	Angular *Vector3 `protobuf:"bytes,3,opt,name=angular,proto3" json:"angular,omitempty"`
}

// NewTwist creates a planar Twist, the only axes a turtle can use.
func NewTwist(name string, linearX, angularZ float64) *Twist {
	return &Twist{
		Name:    name,
		Linear:  &Vector3{X: linearX},
		Angular: &Vector3{Z: angularZ},
	}
}

// LinearX gets forward speed.
func (m *Twist) LinearX() float64 {
	if m.Linear == nil {
		return 0
	}
	return m.Linear.X
}

// AngularZ gets yaw rate.
func (m *Twist) AngularZ() float64 {
	if m.Angular == nil {
		return 0
	}
	return m.Angular.Z
}

// NewMessage implements Message.
func (m *Twist) NewMessage() fx.Message { return &Twist{} }

// TypeID implements SerializableMessage.
func (m *Twist) TypeID() uint32 { return TwistTypeID }

// Serializable implements SerializableMessage.
func (m *Twist) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *Twist) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Twist) Reset() { *m = Twist{} }

// String implements proto.Message.
func (m *Twist) String() string { return proto.CompactTextString(m) }

// PoseQuery queries current pose of a turtle.
type PoseQuery struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

// NewMessage implements Message.
func (m *PoseQuery) NewMessage() fx.Message { return &PoseQuery{} }

// TypeID implements SerializableMessage.
func (m *PoseQuery) TypeID() uint32 { return PoseQueryTypeID }

// Serializable implements SerializableMessage.
func (m *PoseQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PoseQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PoseQuery) Reset() { *m = PoseQuery{} }

// String implements proto.Message.
func (m *PoseQuery) String() string { return proto.CompactTextString(m) }

// Pose is the position and orientation of a turtle, and the
// velocity it is currently executing.
type Pose struct {
	Name            string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	X               float64 `protobuf:"fixed64,2,opt,name=x,proto3" json:"x"`
	Y               float64 `protobuf:"fixed64,3,opt,name=y,proto3" json:"y"`
	Theta           float64 `protobuf:"fixed64,4,opt,name=theta,proto3" json:"theta"`
	LinearVelocity  float64 `protobuf:"fixed64,5,opt,name=linear_velocity,proto3" json:"linear_velocity,omitempty"`
	AngularVelocity float64 `protobuf:"fixed64,6,opt,name=angular_velocity,proto3" json:"angular_velocity,omitempty"`
}

// NewMessage implements Message.
func (m *Pose) NewMessage() fx.Message { return &Pose{} }

// TypeID implements SerializableMessage.
func (m *Pose) TypeID() uint32 { return PoseTypeID }

// Serializable implements SerializableMessage.
func (m *Pose) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *Pose) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Pose) Reset() { *m = Pose{} }

// String implements proto.Message.
func (m *Pose) String() string { return proto.CompactTextString(m) }

// PoseEvent is published by the simulator for every turtle
// on each iteration.
type PoseEvent struct {
	Pose *Pose `protobuf:"bytes,1,opt,name=pose,proto3" json:"pose,omitempty"`
}

// NewMessage implements Message.
func (m *PoseEvent) NewMessage() fx.Message { return &PoseEvent{} }

// TypeID implements SerializableMessage.
func (m *PoseEvent) TypeID() uint32 { return PoseEventTypeID }

// Serializable implements SerializableMessage.
func (m *PoseEvent) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PoseEvent) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PoseEvent) Reset() { *m = PoseEvent{} }

// String implements proto.Message.
func (m *PoseEvent) String() string { return proto.CompactTextString(m) }
