package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func zeroScopeName(t *testing.T, name string) *Name {
	t.Helper()
	n, err := FromNetBIOS(name)
	require.NoError(t, err)
	return n
}

func TestSessionRequest_RoundTrip(t *testing.T) {
	called := zeroScopeName(t, "SERVER")
	calling := zeroScopeName(t, "CLIENT")

	frame, err := SessionRequest(called, calling)
	require.NoError(t, err)

	parsed, err := ParseMsg(frame)
	require.NoError(t, err)
	require.Equal(t, byte(SSSessionRequest), parsed.Type)
	require.Equal(t, 68, parsed.Len)

	gotCalled, gotCalling, err := ParseCNames(frame[4:])
	require.NoError(t, err)
	require.Equal(t, "SERVER", gotCalled.NBName())
	require.Equal(t, "CLIENT", gotCalling.NBName())
}

func TestSessionRequest_RejectsNonEmptyScope(t *testing.T) {
	called, err := FromNetBIOS("SERVER", WithScope("example.com"))
	require.NoError(t, err)
	calling := zeroScopeName(t, "CLIENT")

	_, err = SessionRequest(called, calling)
	require.Error(t, err)
}

func TestPositiveResponse_RoundTrip(t *testing.T) {
	frame := PositiveResponse()
	parsed, err := ParseMsg(frame)
	require.NoError(t, err)
	require.Equal(t, byte(SSPositiveResponse), parsed.Type)
	require.Equal(t, 0, parsed.Len)
}

func TestNegativeResponse_RoundTrip(t *testing.T) {
	frame := NegativeResponse(SSErrorCalledNotPresent)
	parsed, err := ParseMsg(frame)
	require.NoError(t, err)
	code, err := ParseErrCode(frame[4:])
	require.NoError(t, err)
	require.Equal(t, byte(SSErrorCalledNotPresent), code)
	_ = parsed
}

func TestParseErrCode_RejectsUnrecognizedCode(t *testing.T) {
	_, err := ParseErrCode([]byte{0x00})
	require.Error(t, err)
	_, err = ParseErrCode([]byte{0xFF})
	require.Error(t, err)
}

func TestRetargetResponse_RoundTrip(t *testing.T) {
	frame := RetargetResponse([4]byte{10, 0, 0, 9}, 445)
	parsed, err := ParseMsg(frame)
	require.NoError(t, err)
	require.Equal(t, byte(SSRetargetResponse), parsed.Type)

	ip, port, err := ParseRetarget(frame[4:])
	require.NoError(t, err)
	require.Equal(t, [4]byte{10, 0, 0, 9}, ip)
	require.Equal(t, uint16(445), port)
}

func TestKeepalive_RoundTrip(t *testing.T) {
	frame := Keepalive()
	parsed, err := ParseMsg(frame)
	require.NoError(t, err)
	require.Equal(t, byte(SSKeepalive), parsed.Type)
	require.Equal(t, 0, parsed.Len)
}

func TestSessionMessage_ArbitraryLength(t *testing.T) {
	payload := []byte("smb over nbt session")
	frame := SessionMessage(payload)
	parsed, err := ParseMsg(frame)
	require.NoError(t, err)
	require.Equal(t, byte(SSSessionMessage), parsed.Type)
	require.Equal(t, len(payload), parsed.Len)
	require.Equal(t, payload, frame[4:])
}

func TestParseMsg_UnrecognizedType(t *testing.T) {
	_, err := ParseMsg([]byte{0xFF, 0x00, 0x00, 0x00})
	require.Error(t, err)
}

func TestParseMsg_WrongFixedLength(t *testing.T) {
	_, err := ParseMsg([]byte{SSPositiveResponse, 0x00, 0x00, 0x01})
	require.Error(t, err)
}

func TestParseMsg_ReservedFlagBitsRejected(t *testing.T) {
	_, err := ParseMsg([]byte{SSKeepalive, 0x80, 0x00, 0x00})
	require.Error(t, err)
}
