package messages

import (
	"bytes"
	"net/netip"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/msgc/pkg/wire"
)

// readBack decodes a full encoded message, identifier included.
func readBack(t *testing.T, data []byte) Message {
	t.Helper()
	r := wire.NewReader(bytes.NewReader(data))
	number := r.MessageNumber()
	require.NoError(t, r.Error())
	m, err := ReadMessage(r, number)
	require.NoError(t, err)
	return m
}

func roundTrip(t *testing.T, m Message) Message {
	t.Helper()
	data, err := wire.Marshal(m)
	require.NoError(t, err)

	got := readBack(t, data)
	assert.Equal(t, m.MessageType(), got.MessageType())

	again, err := wire.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, data, again, "re-encoding must reproduce the bytes")
	return got
}

func TestTestMessageBytes(t *testing.T) {
	m := &TestMessage{TestBlock1: TestMessageTestBlock1{Test1: 0x01020304}}
	for i := range m.NeighborBlock {
		m.NeighborBlock[i] = TestMessageNeighborBlock{Test0: uint32(i), Test1: 0, Test2: 0xff}
	}

	data, err := wire.Marshal(m)
	require.NoError(t, err)
	require.Len(t, data, 4+4+4*12)
	assert.Equal(t, []byte{0xff, 0xff, 0x00, 0x01, 0x04, 0x03, 0x02, 0x01}, data[:8])
	assert.Equal(t, []byte{0x03, 0, 0, 0, 0, 0, 0, 0, 0xff, 0, 0, 0}, data[len(data)-12:])

	assert.Equal(t, m, roundTrip(t, m))
}

func TestVariableBlockCountPrefix(t *testing.T) {
	m := &PacketAck{Packets: []PacketAckPackets{{ID: 1}, {ID: 2}, {ID: 3}}}

	data, err := wire.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xff, 0xff, 0xff, 0xfb,
		0x03,
		0x01, 0, 0, 0,
		0x02, 0, 0, 0,
		0x03, 0, 0, 0,
	}, data)

	assert.Equal(t, m, roundTrip(t, m))
}

func TestEmptyVariableBlock(t *testing.T) {
	m := &CoarseLocationUpdate{Index: CoarseLocationUpdateIndex{You: -1, Prey: 2}}

	data, err := wire.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x06, 0x00, 0xff, 0xff, 0x02, 0x00, 0x00}, data)

	got := roundTrip(t, m).(*CoarseLocationUpdate)
	assert.Nil(t, got.Location)
	assert.Nil(t, got.AgentData)
}

func TestAgentUpdateRoundTrip(t *testing.T) {
	m := &AgentUpdate{AgentData: AgentUpdateAgentData{
		AgentID:      uuid.MustParse("8c4e9d1a-6d2b-4a47-9f3e-2b1c0d9e8f7a"),
		SessionID:    uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		BodyRotation: wire.Identity,
		CameraCenter: wire.Vector3{X: 128, Y: 128.5, Z: 22},
		ControlFlags: 0x80000001,
		Far:          64,
		Flags:        3,
	}}

	data, err := wire.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, byte(0x04), data[0])
	assert.Len(t, data, 1+16+16+12+12+4+4+1)

	assert.Equal(t, m, roundTrip(t, m))
}

func TestQuaternionDecodesUnitW(t *testing.T) {
	m := &AgentUpdate{AgentData: AgentUpdateAgentData{
		BodyRotation: wire.Quaternion{X: 0, Y: 0, Z: 3, W: 4},
	}}
	data, err := wire.Marshal(m)
	require.NoError(t, err)
	got := readBack(t, data).(*AgentUpdate)

	q := got.AgentData.BodyRotation
	assert.InDelta(t, 0.6, q.Z, 1e-6)
	assert.Equal(t, float32(1), q.W)
}

func TestChatFromViewerRoundTrip(t *testing.T) {
	m := &ChatFromViewer{
		AgentData: ChatFromViewerAgentData{AgentID: uuid.New(), SessionID: uuid.New()},
		ChatData: ChatFromViewerChatData{
			Message: []byte("hello\x00"),
			Type:    1,
			Channel: -42,
		},
	}
	got := roundTrip(t, m).(*ChatFromViewer)
	assert.Equal(t, m, got)

	data, err := wire.Marshal(m)
	require.NoError(t, err)
	// Two byte length prefix after the identifier and AgentData.
	assert.Equal(t, []byte{0x06, 0x00}, data[4+32:4+34])
}

func TestObjectPlacementRoundTrip(t *testing.T) {
	m := &ObjectPlacement{ObjectData: []ObjectPlacementObjectData{
		{
			Handle:    0x0003e80000003e80,
			Position:  wire.Vector3d{X: 256000.5, Y: 1000.25, Z: 21.75},
			Color:     wire.Vector4{X: 1, Y: 0.5, Z: 0.25, W: 1},
			Offset:    -9,
			Scale:     2.5,
			Visible:   true,
			Name:      []byte("box"),
			TextColor: [4]byte{0xff, 0x80, 0x00, 0xff},
			Twist:     -100,
			Begin:     50000,
		},
		{Name: nil},
	}}
	assert.Equal(t, m, roundTrip(t, m))
}

func TestOpenCircuitRoundTrip(t *testing.T) {
	m := &OpenCircuit{CircuitInfo: OpenCircuitCircuitInfo{
		IP:   wire.IPAddr{192, 168, 1, 20},
		Port: 13005,
	}}

	data, err := wire.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xfc, 192, 168, 1, 20, 0xcd, 0x32}, data)
	assert.Equal(t, m, roundTrip(t, m))
}

func TestOpenCircuitFromNetip(t *testing.T) {
	ip, err := wire.IPAddrFrom(netip.MustParseAddr("::ffff:10.0.0.7"))
	require.NoError(t, err)
	m := &OpenCircuit{CircuitInfo: OpenCircuitCircuitInfo{IP: ip, Port: 9000}}

	got := roundTrip(t, m).(*OpenCircuit)
	assert.Equal(t, netip.MustParseAddr("10.0.0.7"), got.CircuitInfo.IP.Addr())

	_, err = wire.IPAddrFrom(netip.MustParseAddr("2001:db8::1"))
	assert.ErrorIs(t, err, wire.ErrNotIPv4)
}

func TestZeroValueRoundTrip(t *testing.T) {
	rotated := &AgentUpdate{}
	rotated.AgentData.BodyRotation = wire.Identity

	tests := []struct {
		name string
		in   Message
		want Message
	}{
		{"TestMessage", &TestMessage{}, &TestMessage{}},
		// A zero rotation decodes as the unit quaternion.
		{"AgentUpdate", &AgentUpdate{}, rotated},
		{"CoarseLocationUpdate", &CoarseLocationUpdate{}, &CoarseLocationUpdate{}},
		{"ChatFromViewer", &ChatFromViewer{}, &ChatFromViewer{}},
		{"ObjectPlacement", &ObjectPlacement{}, &ObjectPlacement{}},
		{"OpenCircuit", &OpenCircuit{}, &OpenCircuit{}},
		{"PacketAck", &PacketAck{}, &PacketAck{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundTrip(t, tt.in))
		})
	}
}

func TestVariableBlockOverflow(t *testing.T) {
	m := &PacketAck{Packets: make([]PacketAckPackets, 256)}
	_, err := wire.Marshal(m)
	assert.ErrorIs(t, err, wire.ErrCountOverflow)
}

func TestReadMessageUnknownNumber(t *testing.T) {
	r := wire.NewReader(bytes.NewReader([]byte{0xff, 0xff, 0x12, 0x34}))
	number := r.MessageNumber()
	require.NoError(t, r.Error())

	_, err := ReadMessage(r, number)
	assert.ErrorIs(t, err, wire.ErrUnknownMessageNumber)

	var unknown *wire.UnknownMessageNumberError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint32(0xffff1234), unknown.Number)
}

func TestReadMessageTruncated(t *testing.T) {
	data, err := wire.Marshal(&TestMessage{})
	require.NoError(t, err)

	r := wire.NewReader(bytes.NewReader(data[:len(data)-1]))
	_, err = ReadMessage(r, r.MessageNumber())
	assert.ErrorIs(t, err, wire.ErrTruncated)
}

func TestMessageNumbersMatchIdentifiers(t *testing.T) {
	for _, m := range []Message{
		&TestMessage{}, &AgentUpdate{}, &CoarseLocationUpdate{}, &ChatFromViewer{},
		&ObjectPlacement{}, &OpenCircuit{}, &PacketAck{},
	} {
		data, err := wire.Marshal(m)
		require.NoError(t, err)
		r := wire.NewReader(bytes.NewReader(data))
		assert.Equal(t, m.MessageNumber(), r.MessageNumber(), m.MessageType().String())
	}
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "ChatFromViewer", MessageTypeChatFromViewer.String())
	assert.Equal(t, "Unknown", MessageType(0).String())
}

func TestSameBlockNameDistinctTypes(t *testing.T) {
	a := reflect.TypeOf(AgentUpdate{}.AgentData)
	b := reflect.TypeOf(ChatFromViewer{}.AgentData)
	c := reflect.TypeOf(CoarseLocationUpdate{}.AgentData).Elem()
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.Equal(t, reflect.Array, reflect.TypeOf(TestMessage{}.NeighborBlock).Kind())
	assert.Equal(t, 4, reflect.TypeOf(TestMessage{}.NeighborBlock).Len())
}
