// Package smb2 implements the SMB2/3 message header (spec.md §3.6, §4.5,
// §6.1): a 64-byte little-endian layout with two dialect-conditional
// overload axes — Status vs ChannelSequence, and TreeId vs AsyncId — and no
// command payload of any kind (spec.md §1's Non-goals exclude every SMB2+
// command body).
//
// Grounded on the teacher's smb2_types.go SMB2Header/Marshal, whose flat
// struct assumed a single always-Status, always-TreeId layout; this
// package generalizes it to the two overloads the wire format actually
// has.
package smb2

import (
	"encoding/binary"

	"github.com/ubiqx-org/carnaval/internal/wire"
	"github.com/ubiqx-org/carnaval/ntstatus"
)

// HeaderLen is the fixed size of an SMB2/3 message header.
const HeaderLen = 64

// ProtocolID is the 4-byte signature that opens every SMB2/3 message,
// distinguishing it from the SMB1 "\xFFSMB" signature.
var ProtocolID = [4]byte{0xFE, 'S', 'M', 'B'}

// Dialect identifies a negotiated SMB2/3 protocol dialect.
type Dialect uint16

// Supported dialects (spec.md §3.6).
const (
	Dialect202 Dialect = 0x0202
	Dialect210 Dialect = 0x0210
	Dialect300 Dialect = 0x0300
	Dialect302 Dialect = 0x0302
	Dialect311 Dialect = 0x0311
)

// SupportedDialects lists the dialects this codec understands, highest to
// lowest preference.
var SupportedDialects = []Dialect{Dialect311, Dialect302, Dialect300, Dialect210, Dialect202}

// String renders the dialect the way Windows documentation names it.
func (d Dialect) String() string {
	switch d {
	case Dialect202:
		return "2.0.2"
	case Dialect210:
		return "2.1"
	case Dialect300:
		return "3.0"
	case Dialect302:
		return "3.0.2"
	case Dialect311:
		return "3.1.1"
	default:
		return "unknown"
	}
}

// IsSupported reports whether d is one of SupportedDialects.
func (d Dialect) IsSupported() bool {
	for _, s := range SupportedDialects {
		if s == d {
			return true
		}
	}
	return false
}

// Header flags (the 4-byte Flags field at offset 16).
const (
	FlagServerToRedir     uint32 = 0x00000001
	FlagAsyncCommand      uint32 = 0x00000002
	FlagRelatedOperations uint32 = 0x00000004
	FlagSigned            uint32 = 0x00000008
	FlagPriorityMask      uint32 = 0x00000070
	FlagDFSOperations     uint32 = 0x10000000
	FlagReplayOperation   uint32 = 0x20000000
)

// Header is an SMB2/3 message header. Two of its fields are overloaded by
// wire convention rather than by a discriminant byte:
//
//   - statusOrSeq (offset 8, 4 bytes): an NTSTATUS in any response, or in
//     an SMB 3.x *request* a 2-byte ChannelSequence followed by 2 reserved
//     bytes. In an SMB2/2.1 request this field is reserved and should read
//     as zero.
//   - treeOrAsync (offset 32, 8 bytes): a 4-byte Reserved field followed by
//     a 4-byte TreeId in a synchronous message, or a single 8-byte AsyncId
//     when FlagAsyncCommand is set.
//
// Both pairs are stored in their raw combined form and split by accessor
// methods, since a little-endian multi-byte field's low/high halves are
// exactly its first/second sub-fields read independently.
type Header struct {
	StructureSize uint16
	CreditCharge  uint16
	statusOrSeq   uint32
	Command       uint16
	Credit        uint16 // CreditRequest on a request, CreditResponse on a response
	Flags         uint32
	NextCommand   uint32
	MessageID     uint64
	treeOrAsync   uint64
	SessionID     uint64
	Signature     [16]byte
}

// IsResponse reports whether FlagServerToRedir is set.
func (h *Header) IsResponse() bool { return h.Flags&FlagServerToRedir != 0 }

// IsAsync reports whether FlagAsyncCommand is set.
func (h *Header) IsAsync() bool { return h.Flags&FlagAsyncCommand != 0 }

// Status returns the statusOrSeq field interpreted as an NTSTATUS. Valid on
// any response, and on a request for dialects below 3.0 (where the field
// is reserved-as-zero, i.e. ntstatus.StatusSuccess).
func (h *Header) Status() ntstatus.NTStatus { return ntstatus.NTStatus(h.statusOrSeq) }

// SetStatus sets the statusOrSeq field as an NTSTATUS.
func (h *Header) SetStatus(s ntstatus.NTStatus) { h.statusOrSeq = uint32(s) }

// ChannelSequence returns the statusOrSeq field's low 16 bits interpreted
// as a ChannelSequence. Valid only on an SMB 3.x (dialect >= Dialect300)
// request.
func (h *Header) ChannelSequence() uint16 { return uint16(h.statusOrSeq) }

// SetChannelSequence sets the statusOrSeq field as a ChannelSequence,
// zeroing the trailing reserved 16 bits.
func (h *Header) SetChannelSequence(seq uint16) { h.statusOrSeq = uint32(seq) }

// AsyncID returns the treeOrAsync field as a single 8-byte AsyncId. Valid
// only when IsAsync().
func (h *Header) AsyncID() uint64 { return h.treeOrAsync }

// SetAsyncID sets the treeOrAsync field as an AsyncId and sets
// FlagAsyncCommand.
func (h *Header) SetAsyncID(id uint64) {
	h.treeOrAsync = id
	h.Flags |= FlagAsyncCommand
}

// TreeID returns the treeOrAsync field's high 32 bits interpreted as a
// TreeId. Valid only when !IsAsync().
func (h *Header) TreeID() uint32 { return uint32(h.treeOrAsync >> 32) }

// SetTreeID sets the treeOrAsync field as a (Reserved=0, TreeId) pair and
// clears FlagAsyncCommand.
func (h *Header) SetTreeID(id uint32) {
	h.treeOrAsync = uint64(id) << 32
	h.Flags &^= FlagAsyncCommand
}

// Priority returns the 3-bit Priority subfield packed into Flags
// (FlagPriorityMask).
func (h *Header) Priority() uint8 { return uint8(h.Flags&FlagPriorityMask) >> 4 }

// SetPriority sets the Priority subfield (0..7).
func (h *Header) SetPriority(p uint8) {
	h.Flags = (h.Flags &^ FlagPriorityMask) | (uint32(p&0x07) << 4)
}

// Compose encodes the header as 64 bytes. It takes no dialect: it writes
// whatever statusOrSeq currently holds, so the caller picks the
// interpretation beforehand — SetChannelSequence for an SMB 3.x request,
// SetStatus otherwise.
func (h *Header) Compose() []byte {
	w := wire.NewWriter(binary.LittleEndian, HeaderLen)
	w.WriteBytes(ProtocolID[:])
	w.WriteUint16(h.StructureSize)
	w.WriteUint16(h.CreditCharge)
	w.WriteUint32(h.statusOrSeq)
	w.WriteUint16(h.Command)
	w.WriteUint16(h.Credit)
	w.WriteUint32(h.Flags)
	w.WriteUint32(h.NextCommand)
	w.WriteUint64(h.MessageID)
	w.WriteUint32(uint32(h.treeOrAsync))
	w.WriteUint32(uint32(h.treeOrAsync >> 32))
	w.WriteUint64(h.SessionID)
	w.WriteBytes(h.Signature[:])
	return w.Bytes()
}

// ParseHeader parses a 64-byte SMB2/3 header from the front of data.
// dialect is used only to decide which failure-mode checks apply (e.g.
// rejecting a request below dialect 3.0 whose ChannelSequence, the low 16
// bits of statusOrSeq, is nonzero); it does not change how the bytes are
// read, since both
// overloaded fields are stored raw and split by accessor methods.
func ParseHeader(data []byte, dialect Dialect) (*Header, error) {
	if len(data) < HeaderLen {
		return nil, errMalformed("message shorter than the 64-byte SMB2 header", len(data))
	}
	r := wire.NewReader(data, binary.LittleEndian)
	sig := r.ReadBytes(4)
	if sig == nil || sig[0] != ProtocolID[0] || sig[1] != ProtocolID[1] ||
		sig[2] != ProtocolID[2] || sig[3] != ProtocolID[3] {
		return nil, errProtocolMismatch("missing \\xFESMB protocol signature", sig)
	}

	h := &Header{}
	var ok bool
	if h.StructureSize, ok = r.ReadUint16(); !ok {
		return nil, errSyntax("header truncated reading StructureSize", nil)
	}
	if h.CreditCharge, ok = r.ReadUint16(); !ok {
		return nil, errSyntax("header truncated reading CreditCharge", nil)
	}
	if h.statusOrSeq, ok = r.ReadUint32(); !ok {
		return nil, errSyntax("header truncated reading Status/ChannelSequence", nil)
	}
	if h.Command, ok = r.ReadUint16(); !ok {
		return nil, errSyntax("header truncated reading Command", nil)
	}
	if h.Credit, ok = r.ReadUint16(); !ok {
		return nil, errSyntax("header truncated reading Credit", nil)
	}
	if h.Flags, ok = r.ReadUint32(); !ok {
		return nil, errSyntax("header truncated reading Flags", nil)
	}
	if h.NextCommand, ok = r.ReadUint32(); !ok {
		return nil, errSyntax("header truncated reading NextCommand", nil)
	}
	if h.MessageID, ok = r.ReadUint64(); !ok {
		return nil, errSyntax("header truncated reading MessageId", nil)
	}
	low, ok := r.ReadUint32()
	if !ok {
		return nil, errSyntax("header truncated reading Reserved/TreeId or AsyncId", nil)
	}
	high, ok := r.ReadUint32()
	if !ok {
		return nil, errSyntax("header truncated reading Reserved/TreeId or AsyncId", nil)
	}
	h.treeOrAsync = uint64(low) | uint64(high)<<32
	if h.SessionID, ok = r.ReadUint64(); !ok {
		return nil, errSyntax("header truncated reading SessionId", nil)
	}
	sigBytes := r.ReadBytes(16)
	if sigBytes == nil {
		return nil, errSyntax("header truncated reading Signature", nil)
	}
	copy(h.Signature[:], sigBytes)

	if h.StructureSize != HeaderLen {
		return nil, errSemantic("StructureSize must be 64", h.StructureSize)
	}
	if !h.IsResponse() && dialect < Dialect300 && h.ChannelSequence() != 0 {
		return nil, errSemantic("ChannelSequence must be zero below dialect 3.0", dialect)
	}
	return h, nil
}
