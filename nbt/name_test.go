package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromNetBIOS_L1RoundTrip(t *testing.T) {
	n, err := FromNetBIOS("FRED")
	require.NoError(t, err)
	require.Equal(t, "FRED", n.NBName())
	require.Equal(t, byte(' '), n.Pad())
	require.Equal(t, byte(' '), n.Suffix())

	l1 := n.L1Form()
	require.Len(t, l1, 32)
	lana, err := decodeL1(l1)
	require.NoError(t, err)
	gotName, gotPad, gotSuffix := decodeLANA(lana)
	require.Equal(t, "FRED", gotName)
	require.Equal(t, byte(' '), gotPad)
	require.Equal(t, byte(' '), gotSuffix)
}

func TestFromNetBIOS_WildcardDefaultsToNULPad(t *testing.T) {
	n, err := FromNetBIOS("*")
	require.NoError(t, err)
	require.Equal(t, byte(0x00), n.Pad())
	require.Equal(t, byte(0x00), n.Suffix())
}

func TestFromNetBIOS_NameTooLong(t *testing.T) {
	_, err := FromNetBIOS("THIS-NAME-IS-WAY-TOO-LONG-FOR-NETBIOS")
	require.Error(t, err)
}

func TestFromNetBIOS_LSPRangeValidation(t *testing.T) {
	_, err := FromNetBIOS("FRED", WithLSP(0x4000))
	require.Error(t, err)

	n, err := FromNetBIOS("FRED", WithLSP(0x3FFF))
	require.NoError(t, err)
	offset, ok := n.LSP()
	require.True(t, ok)
	require.Equal(t, 0x3FFF, offset)
}

func TestSetL2_RoundTripWithScope(t *testing.T) {
	n, err := FromNetBIOS("FRED", WithScope("example.com"))
	require.NoError(t, err)

	l2 := n.L2Form()
	parsed, consumed, err := SetL2(l2)
	require.NoError(t, err)
	require.Equal(t, len(l2), consumed)
	require.Equal(t, "FRED", parsed.NBName())
	require.Equal(t, "example.com", parsed.Scope())
}

func TestSetL2_LabelStringPointerSignal(t *testing.T) {
	n, err := FromNetBIOS("FRED", WithLSP(0x0020))
	require.NoError(t, err)

	l2 := n.L2Form()
	parsed, _, err := SetL2(l2)
	require.Error(t, err)
	require.True(t, IsLabelStringPointer(err))
	offset, ok := parsed.LSP()
	require.True(t, ok)
	require.Equal(t, 0x0020, offset)
}

func TestSetL2_AppendL2ResolvesScope(t *testing.T) {
	n, err := FromNetBIOS("FRED", WithLSP(0))
	require.NoError(t, err)
	l2 := n.L2Form()

	partial, _, err := SetL2(l2)
	require.True(t, IsLabelStringPointer(err))

	tail := []byte{byte(len("example")), 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0x00}
	resolved, consumed, err := partial.AppendL2(tail)
	require.NoError(t, err)
	require.Equal(t, len(tail), consumed)
	require.Equal(t, "example", resolved.Scope())
}

func TestSetL2_EmptyInput(t *testing.T) {
	_, _, err := SetL2(nil)
	require.Error(t, err)
}

func TestSetL2_InitialLengthByteMalformed(t *testing.T) {
	_, _, err := SetL2([]byte{0x10, 0x00})
	require.Error(t, err)
}

func TestSetL2_ReservedLengthBitPatternRejected(t *testing.T) {
	n, err := FromNetBIOS("FRED")
	require.NoError(t, err)
	l1 := n.L1Form()

	// A reserved top-bit pattern (01) where a scope label length should be.
	data := append([]byte{byte(len(l1))}, l1...)
	data = append(data, 0x40, 0x00)

	_, _, err = SetL2(data)
	require.Error(t, err)
}

func TestSetL2_LabelLengthPastEndOfInput(t *testing.T) {
	n, err := FromNetBIOS("FRED")
	require.NoError(t, err)
	l1 := n.L1Form()
	data := append([]byte{byte(len(l1))}, l1...)
	data = append(data, 0x05, 'a', 'b') // claims 5 octets, only 2 present

	_, _, err = SetL2(data)
	require.Error(t, err)
}

func TestName_String(t *testing.T) {
	n, err := FromNetBIOS("FRED", WithSuffix(0x20))
	require.NoError(t, err)
	require.Equal(t, "FRED<20>", n.String())
}
