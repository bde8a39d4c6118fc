package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/turtle.go/pkg/framework"
)

// Spawn creates a named turtle at the given pose.
// An empty name lets the simulator pick one.
type Spawn struct {
	X     float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x"`
	Y     float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y"`
	Theta float64 `protobuf:"fixed64,3,opt,name=theta,proto3" json:"theta"`
	Name  string  `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
}

// NewMessage implements Message.
func (m *Spawn) NewMessage() fx.Message { return &Spawn{} }

// TypeID implements SerializableMessage.
func (m *Spawn) TypeID() uint32 { return SpawnTypeID }

// Serializable implements SerializableMessage.
func (m *Spawn) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *Spawn) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Spawn) Reset() { *m = Spawn{} }

// String implements proto.Message.
func (m *Spawn) String() string { return proto.CompactTextString(m) }

// SpawnReply returns the name of the spawned turtle.
type SpawnReply struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

// NewMessage implements Message.
func (m *SpawnReply) NewMessage() fx.Message { return &SpawnReply{} }

// TypeID implements SerializableMessage.
func (m *SpawnReply) TypeID() uint32 { return SpawnReplyTypeID }

// Serializable implements SerializableMessage.
func (m *SpawnReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *SpawnReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *SpawnReply) Reset() { *m = SpawnReply{} }

// String implements proto.Message.
func (m *SpawnReply) String() string { return proto.CompactTextString(m) }

// TeleportAbsolute moves a turtle to the pose instantly.
type TeleportAbsolute struct {
	Name  string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	X     float64 `protobuf:"fixed64,2,opt,name=x,proto3" json:"x"`
	Y     float64 `protobuf:"fixed64,3,opt,name=y,proto3" json:"y"`
	Theta float64 `protobuf:"fixed64,4,opt,name=theta,proto3" json:"theta"`
}

// NewMessage implements Message.
func (m *TeleportAbsolute) NewMessage() fx.Message { return &TeleportAbsolute{} }

// TypeID implements SerializableMessage.
func (m *TeleportAbsolute) TypeID() uint32 { return TeleportAbsoluteTypeID }

// Serializable implements SerializableMessage.
func (m *TeleportAbsolute) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *TeleportAbsolute) ProtoMessage() {}

// Reset implements proto.Message.
func (m *TeleportAbsolute) Reset() { *m = TeleportAbsolute{} }

// String implements proto.Message.
func (m *TeleportAbsolute) String() string { return proto.CompactTextString(m) }

// Kill removes a turtle.
type Kill struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

// NewMessage implements Message.
func (m *Kill) NewMessage() fx.Message { return &Kill{} }

// TypeID implements SerializableMessage.
func (m *Kill) TypeID() uint32 { return KillTypeID }

// Serializable implements SerializableMessage.
func (m *Kill) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *Kill) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Kill) Reset() { *m = Kill{} }

// String implements proto.Message.
func (m *Kill) String() string { return proto.CompactTextString(m) }
