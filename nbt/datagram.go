package nbt

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/ubiqx-org/carnaval/internal/wire"
)

// Datagram Service wire constants, grounded on
// original_source/carnaval/nbt/NBT_DatagramService.py.
const (
	DSPort = 138

	DSDirectUnique        = 0x10
	DSDirectGroup         = 0x11
	DSBroadcast           = 0x12
	DSDatagramError       = 0x13
	DSQueryRequest        = 0x14
	DSPositiveResponse    = 0x15
	DSNegativeResponse    = 0x16

	dsFlagsMask = 0x0F
	dsSNTMask   = 0x0C
	dsSNTB      = 0x00
	dsSNTP      = 0x04
	dsSNTM      = 0x08
	dsSNTH      = 0x0C
	dsFirstFlag = 0x02
	dsMoreFlag  = 0x01
	dsFMMask    = 0x03

	// DSDefaultMaxData is the default per-fragment user-data ceiling
	// (spec.md §6.4); callers may lower it (never above 512) through
	// ComposeList's maxData argument.
	DSDefaultMaxData = 512
	dsMaxDataCeiling = 512
)

// Datagram Service error codes (ERROR_DATAGRAM's one-byte body).
const (
	DSErrorNameNotRegistered = 0x82
	DSErrorDuplicateName     = 0x83
	DSErrorBadDatagram       = 0x84
)

// DSHeader is the Datagram Service's 10-byte fixed header (spec.md §3.2,
// §6.1).
type DSHeader struct {
	MsgType byte
	SNT     byte
	First   bool
	More    bool
	DgmID   uint16
	SrcIP   net.IP
	SrcPort uint16
}

func (h DSHeader) flags() byte {
	f := h.SNT & dsSNTMask
	if h.First {
		f |= dsFirstFlag
	}
	if h.More {
		f |= dsMoreFlag
	}
	return f & dsFlagsMask
}

// fragKey is the LRU/fragment-set lookup key: everything in the header
// except the First/More flag bits, which vary fragment to fragment within
// the same logical message (spec.md §3.3).
func (h DSHeader) fragKey() string {
	ip4 := h.SrcIP.To4()
	if ip4 == nil {
		ip4 = make(net.IP, 4)
	}
	return fmt.Sprintf("%02x%02x%04x%s%04x", h.MsgType, h.SNT&dsSNTMask, h.DgmID, ip4, h.SrcPort)
}

func encodeDSHeader(w *wire.Writer, h DSHeader) {
	w.WriteByte(h.MsgType)
	w.WriteByte(h.flags())
	w.WriteUint16(h.DgmID)
	var ip4 [4]byte
	copy(ip4[:], h.SrcIP.To4())
	w.WriteBytes(ip4[:])
	w.WriteUint16(h.SrcPort)
}

func decodeDSHeader(r *wire.Reader) (DSHeader, error) {
	msgType, ok := r.ReadByte()
	if !ok {
		return DSHeader{}, errSyntax("datagram header truncated", nil)
	}
	flags, ok := r.ReadByte()
	if !ok {
		return DSHeader{}, errSyntax("datagram header truncated", nil)
	}
	dgmID, ok := r.ReadUint16()
	if !ok {
		return DSHeader{}, errSyntax("datagram header truncated", nil)
	}
	ipBytes := r.ReadBytes(4)
	if ipBytes == nil {
		return DSHeader{}, errSyntax("datagram header truncated", nil)
	}
	srcPort, ok := r.ReadUint16()
	if !ok {
		return DSHeader{}, errSyntax("datagram header truncated", nil)
	}
	return DSHeader{
		MsgType: msgType,
		SNT:     flags & dsSNTMask,
		First:   flags&dsFirstFlag != 0,
		More:    flags&dsMoreFlag != 0,
		DgmID:   dgmID,
		SrcIP:   net.IP(append([]byte(nil), ipBytes...)),
		SrcPort: srcPort,
	}, nil
}

// Datagram is a fully assembled (i.e. never a raw on-wire fragment)
// DIRECT_UNIQUE/DIRECT_GROUP/BROADCAST datagram: a header, a source and
// destination name, and a user-data payload.
type Datagram struct {
	Header   DSHeader
	SrcName  *Name
	DstName  *Name
	UserData []byte
}

// ComposeList fragments a Datagram into the on-wire frames needed to carry
// it, honoring maxData (clamped to [1, 512] — spec.md §6.4). If the payload
// fits in a single frame, ComposeList returns exactly one. Grounded on
// NBT_DatagramService.py's Datagram.composeList.
func (d Datagram) ComposeList(maxData int) ([][]byte, error) {
	if maxData < 1 {
		maxData = 1
	}
	if maxData > dsMaxDataCeiling {
		maxData = dsMaxDataCeiling
	}
	noms := append(append([]byte{}, d.SrcName.L2Form()...), d.DstName.L2Form()...)
	if len(d.UserData) <= maxData {
		return [][]byte{composeDSFrame(d.Header, true, false, 0, noms, d.UserData)}, nil
	}

	var frames [][]byte
	offset := 0
	for offset < len(d.UserData) {
		end := offset + maxData
		if end > len(d.UserData) {
			end = len(d.UserData)
		}
		first := offset == 0
		more := end < len(d.UserData)
		frames = append(frames, composeDSFrame(d.Header, first, more, offset, noms, d.UserData[offset:end]))
		offset = end
	}
	return frames, nil
}

func composeDSFrame(h DSHeader, first, more bool, offset int, noms, frag []byte) []byte {
	h.First, h.More = first, more
	w := wire.NewWriter(binary.BigEndian, 10+4+len(noms)+len(frag))
	encodeDSHeader(w, h)
	w.WriteUint16(uint16(len(noms) + len(frag)))
	w.WriteUint16(uint16(offset))
	w.WriteBytes(noms)
	w.WriteBytes(frag)
	return w.Bytes()
}

// DSFragment is a single raw on-wire Datagram Service frame, as read off
// the network before defragmentation.
type DSFragment struct {
	Header   DSHeader
	Offset   uint16
	SrcName  *Name
	DstName  *Name
	Fragment []byte
}

// ParseFragment parses one raw Datagram Service frame: header, length,
// offset, source/destination names, and the remaining fragment bytes. It
// does not attempt reassembly — see Defrag for that.
func ParseFragment(data []byte) (*DSFragment, error) {
	r := wire.NewReader(data, binary.BigEndian)
	hdr, err := decodeDSHeader(r)
	if err != nil {
		return nil, err
	}
	switch hdr.MsgType {
	case DSDatagramError:
		return nil, errSemantic("ERROR_DATAGRAM has no name/fragment body; use ParseErrorDatagram", hdr.MsgType)
	case DSQueryRequest, DSPositiveResponse, DSNegativeResponse:
		return nil, errSemantic("NBDD query datagram has no name/fragment body; use ParseQuery", hdr.MsgType)
	case DSDirectUnique, DSDirectGroup, DSBroadcast:
		// fall through
	default:
		return nil, errMalformed("unrecognized datagram message type", hdr.MsgType)
	}

	length, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("datagram length field truncated", nil)
	}
	offset, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("datagram offset field truncated", nil)
	}
	body := r.ReadBytes(int(length))
	if body == nil {
		return nil, errMalformed("datagram length field extends past end of input", length)
	}

	srcName, consumed, err := SetL2(body)
	if err != nil && !IsLabelStringPointer(err) {
		return nil, err
	}
	dstName, consumed2, err := SetL2(body[consumed:])
	if err != nil && !IsLabelStringPointer(err) {
		return nil, err
	}
	frag := body[consumed+consumed2:]

	return &DSFragment{Header: hdr, Offset: offset, SrcName: srcName, DstName: dstName, Fragment: frag}, nil
}

// ErrorDatagram is the ERROR_DATAGRAM message: a header plus a single error
// code byte.
type ErrorDatagram struct {
	Header    DSHeader
	ErrorCode byte
}

// Compose encodes an ERROR_DATAGRAM frame.
func (e ErrorDatagram) Compose() []byte {
	e.Header.MsgType = DSDatagramError
	w := wire.NewWriter(binary.BigEndian, 11)
	encodeDSHeader(w, e.Header)
	w.WriteByte(e.ErrorCode)
	return w.Bytes()
}

// ParseErrorDatagram parses an ERROR_DATAGRAM frame.
func ParseErrorDatagram(data []byte) (*ErrorDatagram, error) {
	r := wire.NewReader(data, binary.BigEndian)
	hdr, err := decodeDSHeader(r)
	if err != nil {
		return nil, err
	}
	if hdr.MsgType != DSDatagramError {
		return nil, errSemantic("not an ERROR_DATAGRAM message", hdr.MsgType)
	}
	code, ok := r.ReadByte()
	if !ok {
		return nil, errSyntax("ERROR_DATAGRAM missing error code byte", nil)
	}
	return &ErrorDatagram{Header: hdr, ErrorCode: code}, nil
}

// Query is one of the three NBDD query/response datagrams
// (DATAGRAM_QUERY_REQUEST, DATAGRAM_POSITIVE_RESPONSE,
// DATAGRAM_NEGATIVE_RESPONSE), all of which share a header plus a single
// name body.
type Query struct {
	Header DSHeader
	Name   *Name
}

// Compose encodes a Query frame using Header.MsgType.
func (q Query) Compose() []byte {
	w := wire.NewWriter(binary.BigEndian, 10+32)
	encodeDSHeader(w, q.Header)
	w.WriteBytes(q.Name.L2Form())
	return w.Bytes()
}

// ParseQuery parses a NBDD query/response datagram.
func ParseQuery(data []byte) (*Query, error) {
	r := wire.NewReader(data, binary.BigEndian)
	hdr, err := decodeDSHeader(r)
	if err != nil {
		return nil, err
	}
	switch hdr.MsgType {
	case DSQueryRequest, DSPositiveResponse, DSNegativeResponse:
	default:
		return nil, errSemantic("not an NBDD query/response message", hdr.MsgType)
	}
	name, _, err := SetL2(r.ReadBytes(r.Remaining()))
	if err != nil && !IsLabelStringPointer(err) {
		return nil, err
	}
	return &Query{Header: hdr, Name: name}, nil
}

// ParseDatagram dispatches a raw Datagram Service frame to the appropriate
// parser based on its message-type byte, without consuming it (peeks only).
func ParseDatagram(data []byte) (any, error) {
	if len(data) < 1 {
		return nil, errSyntax("datagram frame too short to contain a message type", len(data))
	}
	switch data[0] {
	case DSDirectUnique, DSDirectGroup, DSBroadcast:
		return ParseFragment(data)
	case DSDatagramError:
		return ParseErrorDatagram(data)
	case DSQueryRequest, DSPositiveResponse, DSNegativeResponse:
		return ParseQuery(data)
	default:
		return nil, errMalformed("unrecognized datagram message type", data[0])
	}
}
