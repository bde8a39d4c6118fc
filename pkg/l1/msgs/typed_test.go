package msgs

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestTypedKinds(t *testing.T) {
	testCases := []struct {
		name    string
		typeID  uint32
		command bool
		event   bool
		reply   bool
	}{
		{name: "twist", typeID: TwistTypeID, command: true},
		{name: "spawn", typeID: SpawnTypeID, command: true},
		{name: "spawn reply", typeID: SpawnReplyTypeID, command: true, reply: true},
		{name: "command error", typeID: CommandErrTypeID, command: true, reply: true},
		{name: "pose", typeID: PoseTypeID, command: true, reply: true},
		{name: "pose event", typeID: PoseEventTypeID, event: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typed := &Typed{TypeId: tc.typeID}
			require.Equal(t, tc.command, typed.IsCommand())
			require.Equal(t, tc.event, typed.IsEvent())
			require.Equal(t, tc.reply, typed.IsReply())
		})
	}
}

func TestTypedTwistOverTheWire(t *testing.T) {
	typed, err := TypedFrom(NewTwist("Turtle_Leonardo", 1, 0.2617993877991494))
	require.NoError(t, err)
	typed.Sequence = 7
	data, err := typed.Encode()
	require.NoError(t, err)

	decoded, err := DecodeTyped(data)
	require.NoError(t, err)
	require.Equal(t, uint32(7), decoded.Sequence)
	msg, err := decoded.Decode()
	require.NoError(t, err)
	twist, ok := msg.(*Twist)
	require.True(t, ok)
	require.Equal(t, "Turtle_Leonardo", twist.Name)
	require.Equal(t, 1.0, twist.LinearX())
	require.Equal(t, 0.2617993877991494, twist.AngularZ())
}

func TestTypedDecodeUnknownType(t *testing.T) {
	_, err := (&Typed{TypeId: GroupCustom | 0x1234}).Decode()
	require.Error(t, err)
	unknown, ok := err.(*ErrUnknownType)
	require.True(t, ok)
	require.Equal(t, GroupCustom|0x1234, unknown.TypeID)
}

func TestTypedFromNonSerializable(t *testing.T) {
	_, err := TypedFrom(nil)
	require.Equal(t, ErrNotSerializable, err)
}

func TestTwistAxesDefaultToZero(t *testing.T) {
	var twist Twist
	require.Zero(t, twist.LinearX())
	require.Zero(t, twist.AngularZ())
}

func TestSpawnWireFormat(t *testing.T) {
	data, err := proto.Marshal(&Spawn{X: 1, Name: "a"})
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x09, 0, 0, 0, 0, 0, 0, 0xf0, 0x3f, // x: fixed64 field 1
		0x22, 0x01, 'a', // name: bytes field 4
	}, data)

	var spawn Spawn
	require.NoError(t, proto.Unmarshal(data, &spawn))
	require.Equal(t, Spawn{X: 1, Name: "a"}, spawn)
}
