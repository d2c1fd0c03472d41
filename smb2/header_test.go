package smb2

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ubiqx-org/carnaval/ntstatus"
)

func TestHeader_ComposeParseRoundTrip_SyncResponse(t *testing.T) {
	h := &Header{
		StructureSize: HeaderLen,
		CreditCharge:  1,
		Command:       0x0003, // SMB2 NEGOTIATE
		Credit:        1,
		Flags:         FlagServerToRedir,
		MessageID:     42,
		SessionID:     0xCAFEBABE,
	}
	h.SetStatus(ntstatus.StatusSuccess)
	h.SetTreeID(7)

	frame := h.Compose()
	require.Len(t, frame, HeaderLen)

	parsed, err := ParseHeader(frame, Dialect311)
	require.NoError(t, err)
	require.Equal(t, ntstatus.StatusSuccess, parsed.Status())
	require.Equal(t, uint32(7), parsed.TreeID())
	require.False(t, parsed.IsAsync())
	require.True(t, parsed.IsResponse())
	require.Equal(t, uint64(42), parsed.MessageID)
}

func TestHeader_ChannelSequenceOverload_SMB3Request(t *testing.T) {
	h := &Header{StructureSize: HeaderLen, Command: 0x0005}
	h.SetChannelSequence(3)
	h.SetTreeID(9)

	frame := h.Compose()
	parsed, err := ParseHeader(frame, Dialect300)
	require.NoError(t, err)
	require.Equal(t, uint16(3), parsed.ChannelSequence())
	require.Equal(t, uint32(9), parsed.TreeID())
}

func TestHeader_AsyncIDOverload(t *testing.T) {
	h := &Header{StructureSize: HeaderLen, Command: 0x0005, Flags: FlagServerToRedir}
	h.SetAsyncID(0x1122334455667788)

	frame := h.Compose()
	parsed, err := ParseHeader(frame, Dialect311)
	require.NoError(t, err)
	require.True(t, parsed.IsAsync())
	require.Equal(t, uint64(0x1122334455667788), parsed.AsyncID())
}

// Literal scenario from spec.md §8.2.6: an SMB3 LOGOFF request under dialect
// 0x0302 with the given field values compares field-for-field equal after a
// compose/parse round trip.
func TestHeader_LiteralScenario_SMB3LogoffOverloads(t *testing.T) {
	h := &Header{
		StructureSize: HeaderLen,
		CreditCharge:  213,
		Command:       0x0002, // SMB2 LOGOFF
		Credit:        42,
		NextCommand:   0x87654321,
		Flags:         FlagDFSOperations,
	}
	h.SetChannelSequence(42607)
	h.SetPriority(5)
	h.SetTreeID(0x00BEADED)

	frame := h.Compose()
	require.Len(t, frame, HeaderLen)

	parsed, err := ParseHeader(frame, Dialect302)
	require.NoError(t, err)
	require.Equal(t, *h, *parsed)
}

func TestHeader_RejectsBadSignature(t *testing.T) {
	h := &Header{StructureSize: HeaderLen}
	frame := h.Compose()
	frame[0] = 0x00
	_, err := ParseHeader(frame, Dialect311)
	require.Error(t, err)
}

func TestHeader_RejectsShortInput(t *testing.T) {
	_, err := ParseHeader(make([]byte, 10), Dialect311)
	require.Error(t, err)
}

func TestHeader_RejectsNonzeroChannelSequenceBelowSMB3Request(t *testing.T) {
	h := &Header{StructureSize: HeaderLen}
	h.SetChannelSequence(5) // not a response, dialect < 3.0: field must be reserved-zero
	frame := h.Compose()
	_, err := ParseHeader(frame, Dialect210)
	require.Error(t, err)
}

func TestHeader_PriorityField(t *testing.T) {
	h := &Header{}
	h.SetPriority(5)
	require.Equal(t, uint8(5), h.Priority())
	require.Equal(t, uint32(0x50), h.Flags&FlagPriorityMask)
}

func TestDialect_SupportedAndString(t *testing.T) {
	require.True(t, Dialect311.IsSupported())
	require.Equal(t, "3.1.1", Dialect311.String())
	require.False(t, Dialect(0x9999).IsSupported())
}
