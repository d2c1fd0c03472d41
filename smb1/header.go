package smb1

import (
	"encoding/binary"

	"github.com/ubiqx-org/carnaval/internal/wire"
)

// Wire constants grounded on SMB1_Messages.py.
const (
	headerLen = 32

	CommandNegotiate = 0x72
	CommandEcho      = 0x2B
	// CommandInvalid (SMB_COM_INVALID) is not a real command; any message
	// presenting it is malformed by definition.
	CommandInvalid = 0xFE

	flagsMask  = 0xFB
	flags2Mask = 0xFC5F

	// FlagReply marks a message as a server response rather than a client
	// request.
	FlagReply = 0x80
)

var protocolSignature = [4]byte{0xFF, 'S', 'M', 'B'}

// Header is the 32-byte SMB1 message header (spec.md §3.5, §6.1).
//
// Grounded on SMB1_Messages.py's _SMB1_Header, whose Python property
// setters validated and masked each field on assignment; here that becomes
// a constructor plus typed Set* methods that return errors instead of
// raising exceptions.
type Header struct {
	Command          byte
	Status           uint32
	Flags            byte
	Flags2           uint16
	PIDHigh          uint16
	SecurityFeatures [8]byte
	TID              uint16
	PIDLow           uint16
	UID              uint16
	MID              uint16
}

// NewHeader builds a Header for command with every other field zero.
// SetFlags and SetFlags2 mask those fields to their defined bits, as the
// original's property setters did.
func NewHeader(command byte) *Header {
	return &Header{Command: command}
}

// SetFlags masks and stores the one-byte Flags field.
func (h *Header) SetFlags(flags byte) { h.Flags = flags & flagsMask }

// SetFlags2 masks and stores the two-byte Flags2 field.
func (h *Header) SetFlags2(flags2 uint16) { h.Flags2 = flags2 & flags2Mask }

// Pid returns the 32-bit process ID recovered from PIDHigh/PIDLow.
func (h *Header) Pid() uint32 { return uint32(h.PIDHigh)<<16 | uint32(h.PIDLow) }

// SetPid splits a 32-bit process ID across PIDHigh/PIDLow.
func (h *Header) SetPid(pid uint32) {
	h.PIDHigh = uint16(pid >> 16)
	h.PIDLow = uint16(pid)
}

// IsReply reports whether the Reply bit is set in Flags.
func (h *Header) IsReply() bool { return h.Flags&FlagReply != 0 }

// compose writes the 32-byte header into w.
func (h *Header) compose(w *wire.Writer) {
	w.WriteBytes(protocolSignature[:])
	w.WriteByte(h.Command)
	w.WriteUint32(h.Status)
	w.WriteByte(h.Flags & flagsMask)
	w.WriteUint16(h.Flags2 & flags2Mask)
	w.WriteUint16(h.PIDHigh)
	w.WriteBytes(h.SecurityFeatures[:])
	w.WriteZeros(2) // Reserved
	w.WriteUint16(h.TID)
	w.WriteUint16(h.PIDLow)
	w.WriteUint16(h.UID)
	w.WriteUint16(h.MID)
}

// parseHeader reads a 32-byte SMB1 header from the front of r, validating
// the protocol signature.
func parseHeader(r *wire.Reader) (*Header, error) {
	sig := r.ReadBytes(4)
	if sig == nil || sig[0] != protocolSignature[0] || sig[1] != protocolSignature[1] ||
		sig[2] != protocolSignature[2] || sig[3] != protocolSignature[3] {
		return nil, errProtocolMismatch("missing \\xFFSMB protocol signature", sig)
	}
	command, ok := r.ReadByte()
	if !ok {
		return nil, errSyntax("header truncated reading command", nil)
	}
	status, ok := r.ReadUint32()
	if !ok {
		return nil, errSyntax("header truncated reading status", nil)
	}
	flags, ok := r.ReadByte()
	if !ok {
		return nil, errSyntax("header truncated reading flags", nil)
	}
	flags2, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("header truncated reading flags2", nil)
	}
	pidHigh, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("header truncated reading pidHigh", nil)
	}
	secFeatures := r.ReadBytes(8)
	if secFeatures == nil {
		return nil, errSyntax("header truncated reading security features", nil)
	}
	if r.ReadBytes(2) == nil {
		return nil, errSyntax("header truncated reading reserved field", nil)
	}
	tid, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("header truncated reading tid", nil)
	}
	pidLow, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("header truncated reading pidLow", nil)
	}
	uid, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("header truncated reading uid", nil)
	}
	mid, ok := r.ReadUint16()
	if !ok {
		return nil, errSyntax("header truncated reading mid", nil)
	}

	h := &Header{
		Command: command,
		Status:  status,
		Flags:   flags & flagsMask,
		Flags2:  flags2 & flags2Mask,
		PIDHigh: pidHigh,
		TID:     tid,
		PIDLow:  pidLow,
		UID:     uid,
		MID:     mid,
	}
	copy(h.SecurityFeatures[:], secFeatures)
	return h, nil
}

func newWriter(capacity int) *wire.Writer {
	return wire.NewWriter(binary.LittleEndian, capacity)
}

func newReader(data []byte) *wire.Reader {
	return wire.NewReader(data, binary.LittleEndian)
}
