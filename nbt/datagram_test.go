package nbt

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func testNames(t *testing.T) (src, dst *Name) {
	t.Helper()
	src, err := FromNetBIOS("SENDER")
	require.NoError(t, err)
	dst, err = FromNetBIOS("RECEIVER")
	require.NoError(t, err)
	return src, dst
}

func TestDatagram_ComposeList_SingleFrame(t *testing.T) {
	src, dst := testNames(t)
	d := Datagram{
		Header:   DSHeader{MsgType: DSDirectUnique, DgmID: 7, SrcIP: net.IPv4(10, 0, 0, 1), SrcPort: DSPort},
		SrcName:  src,
		DstName:  dst,
		UserData: []byte("hello"),
	}
	frames, err := d.ComposeList(DSDefaultMaxData)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	frag, err := ParseFragment(frames[0])
	require.NoError(t, err)
	require.True(t, frag.Header.First)
	require.False(t, frag.Header.More)
	require.Equal(t, []byte("hello"), frag.Fragment)
	require.Equal(t, "SENDER", frag.SrcName.NBName())
	require.Equal(t, "RECEIVER", frag.DstName.NBName())
}

func TestDatagram_ComposeList_Fragments(t *testing.T) {
	src, dst := testNames(t)
	payload := make([]byte, 30)
	for i := range payload {
		payload[i] = byte(i)
	}
	d := Datagram{
		Header:   DSHeader{MsgType: DSDirectGroup, DgmID: 26, SrcIP: net.IPv4(192, 168, 1, 1), SrcPort: DSPort},
		SrcName:  src,
		DstName:  dst,
		UserData: payload,
	}
	frames, err := d.ComposeList(16)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	first, err := ParseFragment(frames[0])
	require.NoError(t, err)
	require.True(t, first.Header.First)
	require.True(t, first.Header.More)
	require.Equal(t, uint16(0), first.Offset)
	require.Equal(t, payload[:16], first.Fragment)

	second, err := ParseFragment(frames[1])
	require.NoError(t, err)
	require.False(t, second.Header.First)
	require.False(t, second.Header.More)
	require.Equal(t, uint16(16), second.Offset)
	require.Equal(t, payload[16:], second.Fragment)
}

func TestErrorDatagram_RoundTrip(t *testing.T) {
	e := ErrorDatagram{
		Header:    DSHeader{DgmID: 1, SrcIP: net.IPv4(1, 2, 3, 4), SrcPort: DSPort},
		ErrorCode: DSErrorBadDatagram,
	}
	frame := e.Compose()
	parsed, err := ParseErrorDatagram(frame)
	require.NoError(t, err)
	require.Equal(t, byte(DSDatagramError), parsed.Header.MsgType)
	require.Equal(t, byte(DSErrorBadDatagram), parsed.ErrorCode)
}

func TestQuery_RoundTrip(t *testing.T) {
	name, err := FromNetBIOS("BROWSER")
	require.NoError(t, err)
	q := Query{
		Header: DSHeader{MsgType: DSQueryRequest, DgmID: 2, SrcIP: net.IPv4(10, 0, 0, 2), SrcPort: DSPort},
		Name:   name,
	}
	frame := q.Compose()
	parsed, err := ParseQuery(frame)
	require.NoError(t, err)
	require.Equal(t, "BROWSER", parsed.Name.NBName())
}

func TestParseDatagram_UnrecognizedType(t *testing.T) {
	_, err := ParseDatagram([]byte{0xFF})
	require.Error(t, err)
}

func TestParseDatagram_EmptyInput(t *testing.T) {
	_, err := ParseDatagram(nil)
	require.Error(t, err)
}
