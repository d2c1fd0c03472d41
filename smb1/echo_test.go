package smb1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEchoRequest_RoundTrip(t *testing.T) {
	req := &EchoRequest{
		Header:    NewHeader(CommandEcho),
		EchoCount: 3,
		Payload:   []byte("ping"),
	}
	frame, err := req.Compose()
	require.NoError(t, err)

	msg, err := ParseSMB1(frame)
	require.NoError(t, err)
	body, ok := msg.Body.(*EchoRequest)
	require.True(t, ok)
	require.Equal(t, uint16(3), body.EchoCount)
	require.Equal(t, []byte("ping"), body.Payload)
}

func TestEchoResponse_RoundTrip(t *testing.T) {
	resp := &EchoResponse{
		Header:    NewHeader(CommandEcho),
		SeqNumber: 2,
		Payload:   []byte("pong"),
	}
	frame, err := resp.Compose()
	require.NoError(t, err)

	msg, err := ParseSMB1(frame)
	require.NoError(t, err)
	require.True(t, msg.Header.IsReply())
	body, ok := msg.Body.(*EchoResponse)
	require.True(t, ok)
	require.Equal(t, uint16(2), body.SeqNumber)
	require.Equal(t, []byte("pong"), body.Payload)
}

func TestEchoRequest_ChecksumIsCached(t *testing.T) {
	req := &EchoRequest{Header: NewHeader(CommandEcho), Payload: []byte("same bytes")}
	first := req.Checksum()
	second := req.Checksum()
	require.Equal(t, first, second)
}

func TestEchoRequest_RejectsOversizedPayload(t *testing.T) {
	req := &EchoRequest{Header: NewHeader(CommandEcho), Payload: make([]byte, 70000)}
	_, err := req.Compose()
	require.Error(t, err)
}
