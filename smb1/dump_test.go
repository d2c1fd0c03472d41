package smb1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderDump(t *testing.T) {
	h := NewHeader(CommandNegotiate)
	h.SetPid(4242)
	var buf strings.Builder
	require.NoError(t, h.Dump(&buf, 0))
	require.Contains(t, buf.String(), "PID: 4242")
}

func TestEchoRequestDump(t *testing.T) {
	e := &EchoRequest{Header: NewHeader(CommandEcho), EchoCount: 1, Payload: []byte("ping")}
	var buf strings.Builder
	require.NoError(t, e.Dump(&buf, 0))
	out := buf.String()
	require.Contains(t, out, "EchoCount: 1")
	require.Contains(t, out, "Payload (4 bytes):")
}

func TestNegProtRequestBodyDump(t *testing.T) {
	frame := NegProtRequest(NewHeader(CommandNegotiate), nil)
	msg, err := ParseSMB1(frame)
	require.NoError(t, err)
	body := msg.Body.(*NegProtRequestBody)
	var buf strings.Builder
	require.NoError(t, body.Dump(&buf, 0))
	require.Contains(t, buf.String(), "2.002")
}
