package smb2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ubiqx-org/carnaval/ntstatus"
)

func TestHeaderDump_SyncResponse(t *testing.T) {
	h := &Header{StructureSize: HeaderLen, Flags: FlagServerToRedir, MessageID: 42}
	h.SetStatus(ntstatus.StatusSuccess)
	h.SetTreeID(7)

	var buf strings.Builder
	require.NoError(t, h.Dump(&buf, 0))
	out := buf.String()
	require.Contains(t, out, "Status:")
	require.Contains(t, out, "TreeID:")
}

func TestHeaderDump_AsyncRequest(t *testing.T) {
	h := &Header{StructureSize: HeaderLen, MessageID: 1}
	h.SetAsyncID(0xABCD)

	var buf strings.Builder
	require.NoError(t, h.Dump(&buf, 0))
	out := buf.String()
	require.Contains(t, out, "ChannelSequence:")
	require.Contains(t, out, "AsyncID:")
}
