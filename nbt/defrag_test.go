package nbt

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefrag_SingleFrameNeedsNoReassembly(t *testing.T) {
	src, dst := testNames(t)
	d := Datagram{
		Header:   DSHeader{MsgType: DSDirectUnique, DgmID: 1, SrcIP: net.IPv4(10, 0, 0, 1), SrcPort: DSPort},
		SrcName:  src,
		DstName:  dst,
		UserData: []byte("one frame"),
	}
	frames, err := d.ComposeList(DSDefaultMaxData)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	frag, err := ParseFragment(frames[0])
	require.NoError(t, err)

	pool := NewDefrag(WithTimeout(200*time.Millisecond), WithCheckCount(2))
	now := time.Unix(0, 0)
	out, err := pool.AddFrag(frag, now)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, []byte("one frame"), out.UserData)
}

func TestDefrag_ReassemblesFragmentsInRandomOrder(t *testing.T) {
	src, dst := testNames(t)
	payload := make([]byte, 478)
	for i := range payload {
		payload[i] = byte(i % 256)
	}
	d := Datagram{
		Header:   DSHeader{MsgType: DSDirectGroup, DgmID: 26, SrcIP: net.IPv4(172, 16, 0, 9), SrcPort: DSPort},
		SrcName:  src,
		DstName:  dst,
		UserData: payload,
	}
	frames, err := d.ComposeList(16)
	require.NoError(t, err)
	require.Len(t, frames, 30)

	order := []int{
		14, 2, 29, 0, 7, 19, 5, 22, 11, 27, 3, 16, 9, 24, 1, 20, 13, 28, 6, 18,
		10, 25, 4, 21, 15, 8, 26, 12, 23, 17,
	}
	require.Len(t, order, len(frames))

	pool := NewDefrag(WithTimeout(200*time.Millisecond), WithCheckCount(2))
	now := time.Unix(0, 0)

	var completed *Datagram
	for _, idx := range order {
		frag, err := ParseFragment(frames[idx])
		require.NoError(t, err)
		out, err := pool.AddFrag(frag, now)
		require.NoError(t, err)
		if out != nil {
			completed = out
		}
	}

	require.NotNil(t, completed)
	require.Equal(t, byte(DSDirectGroup), completed.Header.MsgType)
	require.Equal(t, uint16(26), completed.Header.DgmID)
	require.Equal(t, payload, completed.UserData)
	require.Equal(t, 0, pool.Len())
}

func TestDefrag_EvictsIdleFragmentSetAfterTimeout(t *testing.T) {
	src, dst := testNames(t)
	payload := make([]byte, 40)
	d := Datagram{
		Header:   DSHeader{MsgType: DSDirectUnique, DgmID: 5, SrcIP: net.IPv4(10, 0, 0, 5), SrcPort: DSPort},
		SrcName:  src,
		DstName:  dst,
		UserData: payload,
	}
	frames, err := d.ComposeList(16)
	require.NoError(t, err)
	require.Len(t, frames, 3)

	pool := NewDefrag(WithTimeout(250*time.Millisecond), WithCheckCount(2))
	t0 := time.Unix(0, 0)

	first, err := ParseFragment(frames[0])
	require.NoError(t, err)
	_, err = pool.AddFrag(first, t0)
	require.NoError(t, err)
	require.Equal(t, 1, pool.Len())

	// A later, unrelated fragment arriving after the idle timeout should
	// evict the stale set instead of growing the pool unbounded.
	other, err := FromNetBIOS("OTHER")
	require.NoError(t, err)
	unrelated := Datagram{
		Header:   DSHeader{MsgType: DSDirectUnique, DgmID: 99, SrcIP: net.IPv4(10, 0, 0, 6), SrcPort: DSPort},
		SrcName:  other,
		DstName:  other,
		UserData: []byte("short"),
	}
	unrelatedFrames, err := unrelated.ComposeList(DSDefaultMaxData)
	require.NoError(t, err)
	unrelatedFrag, err := ParseFragment(unrelatedFrames[0])
	require.NoError(t, err)

	tLater := t0.Add(500 * time.Millisecond)
	out, err := pool.AddFrag(unrelatedFrag, tLater)
	require.NoError(t, err)
	require.NotNil(t, out) // single-frame, completes immediately
	require.Equal(t, 0, pool.Len())
}

type recordingLogger struct {
	debugs, warns []string
}

func (r *recordingLogger) Debug(format string, args ...any) {
	r.debugs = append(r.debugs, format)
}
func (r *recordingLogger) Info(format string, args ...any)  {}
func (r *recordingLogger) Warn(format string, args ...any)  { r.warns = append(r.warns, format) }
func (r *recordingLogger) Error(format string, args ...any) {}

func TestDefrag_WithLoggerTracesCompletionAndEviction(t *testing.T) {
	src, dst := testNames(t)
	log := &recordingLogger{}
	pool := NewDefrag(WithTimeout(200*time.Millisecond), WithLogger(log))

	d := Datagram{
		Header:   DSHeader{MsgType: DSDirectUnique, DgmID: 1, SrcIP: net.IPv4(10, 0, 0, 1), SrcPort: DSPort},
		SrcName:  src,
		DstName:  dst,
		UserData: []byte("one frame"),
	}
	frames, err := d.ComposeList(DSDefaultMaxData)
	require.NoError(t, err)
	frag, err := ParseFragment(frames[0])
	require.NoError(t, err)

	_, err = pool.AddFrag(frag, time.Unix(0, 0))
	require.NoError(t, err)
	require.Len(t, log.debugs, 1)

	// The first fragment of a second datagram starts a fragment set; a later
	// arrival past the timeout evicts it.
	multi := d
	multi.Header.DgmID = 2
	multi.UserData = make([]byte, 40)
	multiFrames, err := multi.ComposeList(16)
	require.NoError(t, err)
	firstFrag, err := ParseFragment(multiFrames[0])
	require.NoError(t, err)
	_, err = pool.AddFrag(firstFrag, time.Unix(0, 0))
	require.NoError(t, err)
	require.Equal(t, 1, pool.Len())

	_, err = pool.AddFrag(frag, time.Unix(1, 0))
	require.NoError(t, err)
	require.Len(t, log.warns, 1)
	require.Equal(t, 0, pool.Len())
}

func TestFsAddFrag_OverlapIsRejected(t *testing.T) {
	existing := []fragTuple{{offset: 0, nextOffset: 16, data: make([]byte, 16)}}
	_, ok := fsAddFrag(existing, fragTuple{offset: 8, nextOffset: 0, data: make([]byte, 8)})
	require.False(t, ok)
}

// A new terminal tuple must be rejected whenever it has an immediate
// right-hand neighbor already in the set, even when their byte ranges don't
// overlap at all — two disjoint terminal fragments can never belong to the
// same datagram (spec.md §4.2; NBT_DatagramService.py's _fsAddFrag).
func TestFsAddFrag_DisjointTerminalNeighborIsRejected(t *testing.T) {
	existing := []fragTuple{{offset: 20, nextOffset: 28, data: make([]byte, 8)}}
	_, ok := fsAddFrag(existing, fragTuple{offset: 0, nextOffset: 0, data: make([]byte, 8)})
	require.False(t, ok)
}

// Mirror of the above: the existing terminal tuple is on the left and the
// new tuple lies to its right, past its terminus.
func TestFsAddFrag_NewTupleBesideExistingTerminalIsRejected(t *testing.T) {
	existing := []fragTuple{{offset: 0, nextOffset: 0, data: make([]byte, 8)}}
	_, ok := fsAddFrag(existing, fragTuple{offset: 20, nextOffset: 28, data: make([]byte, 8)})
	require.False(t, ok)
}
