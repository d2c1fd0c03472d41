// Package nbt implements the NetBIOS-over-TCP/IP (IETF STD 19 / RFC 1001,
// 1002) Name, Datagram, and Session service codecs: wire-exact composition
// and parsing, with no socket I/O and no node-level semantics (name
// registration/defense, NBNS/NBDD) — those remain explicit Non-goals.
//
// Grounded on original_source/carnaval/nbt/NBT_NameService.py's Name class,
// NBT_DatagramService.py, and NBT_SessionService.py, reworked from Python's
// property-based validated setters into Go constructors and typed accessors
// that return errors instead of raising exceptions.
package nbt

import (
	"errors"
	"fmt"
	"strings"
)

// Name is an immutable NetBIOS name: the (nb_name, pad, suffix) triple of
// spec.md §3.1 plus an optional scope and, when constructed from a partially
// resolved L2 form, a pending Label String Pointer offset.
type Name struct {
	nbName string
	pad    byte
	suffix byte
	scope  string
	hasLSP bool
	lsp    int
}

const (
	maxNBNameLen = 15
	maxLSP       = 0x3FFF
	maxL2Len     = 255

	lenNormalMask = 0x3F
	lenTopMask    = 0xC0
	lenTopNormal  = 0x00
	lenTopLSP     = 0xC0
)

var letterAP = "ABCDEFGHIJKLMNOP"

// NameOption configures an optional field of FromNetBIOS.
type NameOption func(*nameOpts)

type nameOpts struct {
	pad     *byte
	suffix  *byte
	scope   string
	lsp     int
	hasLSP  bool
}

// WithPad overrides the default pad octet.
func WithPad(pad byte) NameOption { return func(o *nameOpts) { o.pad = &pad } }

// WithSuffix overrides the default suffix ("type") octet.
func WithSuffix(suffix byte) NameOption { return func(o *nameOpts) { o.suffix = &suffix } }

// WithScope attaches a dotted scope. Matching the original's permissiveness
// (spec.md §9 Open Questions / SPEC_FULL.md §7.3), the only normalization
// applied is stripping leading/trailing " ." characters — arbitrary octets,
// including NUL, are passed through uninterpreted.
func WithScope(scope string) NameOption {
	return func(o *nameOpts) { o.scope = strings.Trim(scope, " .") }
}

// WithLSP attaches a pending Label String Pointer offset (0..0x3FFF) to a
// name built directly rather than parsed from the wire. Rarely used outside
// tests.
func WithLSP(offset int) NameOption {
	return func(o *nameOpts) { o.lsp = offset; o.hasLSP = true }
}

// FromNetBIOS constructs a Name from its (name, pad, suffix, scope, lsp)
// parts, computing the derived L1/L2 forms eagerly so construction fails
// fast on any invariant violation (spec.md §4.1).
func FromNetBIOS(name string, opts ...NameOption) (*Name, error) {
	if len(name) > maxNBNameLen {
		return nil, fmt.Errorf("nbt: name %q exceeds %d octets", name, maxNBNameLen)
	}
	o := nameOpts{}
	for _, opt := range opts {
		opt(&o)
	}
	pad := byte(' ')
	if name == "*" {
		pad = 0x00
	}
	if o.pad != nil {
		pad = *o.pad
	}
	suffix := byte(' ')
	if pad == 0x00 {
		suffix = 0x00
	}
	if o.suffix != nil {
		suffix = *o.suffix
	}
	if o.hasLSP && (o.lsp < 0 || o.lsp > maxLSP) {
		return nil, fmt.Errorf("nbt: lsp offset 0x%04X out of range 0..0x%04X", o.lsp, maxLSP)
	}
	n := &Name{
		nbName: name,
		pad:    pad,
		suffix: suffix,
		scope:  o.scope,
		hasLSP: o.hasLSP,
		lsp:    o.lsp,
	}
	if _, err := n.encodeL2(); err != nil {
		return nil, err
	}
	return n, nil
}

// NBName returns the 0-15 octet NetBIOS name.
func (n *Name) NBName() string { return n.nbName }

// Pad returns the pad octet.
func (n *Name) Pad() byte { return n.pad }

// Suffix returns the suffix ("type") octet.
func (n *Name) Suffix() byte { return n.suffix }

// Scope returns the dotted scope, or "" if none.
func (n *Name) Scope() string { return n.scope }

// LSP returns the pending Label String Pointer offset and whether one is
// set. A name returned from SetL2 with LSP() true is partially resolved;
// call AppendL2 with the bytes at that offset to complete it.
func (n *Name) LSP() (offset int, ok bool) { return n.lsp, n.hasLSP }

// LANAForm returns the 16-octet LANA-form encoding: nb_name right-padded to
// 15 octets with pad, followed by the suffix octet.
func (n *Name) LANAForm() []byte {
	buf := make([]byte, maxNBNameLen+1)
	copy(buf, n.nbName)
	for i := len(n.nbName); i < maxNBNameLen; i++ {
		buf[i] = n.pad
	}
	buf[maxNBNameLen] = n.suffix
	return buf
}

// L1Form returns the 32-octet half-ASCII encoding of the LANA form.
func (n *Name) L1Form() []byte {
	return encodeL1(n.LANAForm())
}

// L2Form returns the label-encoded wire form (§3.1), including its
// terminator (zero-length label, or the 2-octet LSP field if one is
// pending).
func (n *Name) L2Form() []byte {
	b, _ := n.encodeL2()
	return b
}

func (n *Name) encodeL2() ([]byte, error) {
	var out []byte
	out = append(out, byte(len(n.L1Form())))
	out = append(out, n.L1Form()...)
	if n.scope != "" {
		for _, label := range strings.Split(n.scope, ".") {
			if len(label) > lenNormalMask {
				return nil, fmt.Errorf("nbt: scope label %q exceeds 63 octets", label)
			}
			out = append(out, byte(len(label)))
			out = append(out, label...)
		}
	}
	if n.hasLSP {
		out = append(out, byte(lenTopLSP|((n.lsp>>8)&0x3F)), byte(n.lsp&0xFF))
	} else {
		out = append(out, 0x00)
	}
	if len(out) > maxL2Len {
		return nil, fmt.Errorf("nbt: encoded L2 name exceeds %d octets", maxL2Len)
	}
	return out, nil
}

// String renders the NetBIOS name, then the suffix as two hex digits in
// angle brackets, then ".scope" when a scope is set and "[0xNNNN]" when a
// Label String Pointer is pending, e.g. "FRED<20>.example.com[0x000C]".
func (n *Name) String() string {
	s := fmt.Sprintf("%s<%02X>", n.nbName, n.suffix)
	if n.scope != "" {
		s += "." + n.scope
	}
	if n.hasLSP {
		s += fmt.Sprintf("[0x%04X]", n.lsp)
	}
	return s
}

func encodeL1(lana []byte) []byte {
	out := make([]byte, 0, len(lana)*2)
	for _, b := range lana {
		out = append(out, letterAP[b>>4], letterAP[b&0x0F])
	}
	return out
}

// decodeL1 reverses encodeL1. Every input byte must be in 'A'..'P'.
func decodeL1(l1 []byte) ([]byte, error) {
	if len(l1) != 32 {
		return nil, errSyntax("L1 name must be exactly 32 octets", len(l1))
	}
	out := make([]byte, 16)
	for i := 0; i < 16; i++ {
		hi, err := letterNibble(l1[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := letterNibble(l1[2*i+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func letterNibble(c byte) (byte, error) {
	if c < 'A' || c > 'P' {
		return 0, errSyntax("L1 octet not in A..P", c)
	}
	return c - 'A', nil
}

// decodeLANA recovers (nbName, pad, suffix) from a 16-octet LANA form using
// the pad/suffix recovery heuristic of spec.md §4.1: the pad is NUL only
// when the name is the wildcard "*" with a NUL second byte and NUL suffix;
// otherwise the pad is treated as space.
func decodeLANA(lana []byte) (nbName string, pad, suffix byte) {
	suffix = lana[15]
	pad = byte(' ')
	if lana[0] == '*' && lana[1] == 0x00 && suffix == 0x00 {
		pad = 0x00
	}
	trimmed := lana[:15]
	end := 15
	for end > 0 && trimmed[end-1] == pad {
		end--
	}
	return string(trimmed[:end]), pad, suffix
}

// SetL2 parses an L2-encoded name from the start of data, returning the
// constructed Name and the number of octets consumed. If the name's
// terminator is a Label String Pointer rather than a zero-length label, the
// returned error satisfies IsLabelStringPointer and the Name is still valid
// but partially resolved (Name.LSP() reports the offset) — the caller
// should fetch the bytes at that offset in the enclosing message and pass
// them to AppendL2.
func SetL2(data []byte) (*Name, int, error) {
	if len(data) == 0 {
		return nil, 0, errors.New("nbt: empty L2 name")
	}
	if data[0] != 0x20 && data[0] < 0x40 {
		return nil, 0, errMalformed("initial length byte neither 0x20 nor >=0x40", data[0])
	}

	labels, lsp, hasLSP, consumed, err := parseL2Labels(data, true)
	if err != nil {
		return nil, 0, err
	}
	if len(labels) == 0 {
		return nil, 0, errMalformed("L2 name has no labels", nil)
	}
	lana, err := decodeL1(labels[0])
	if err != nil {
		return nil, 0, err
	}
	nbName, pad, suffix := decodeLANA(lana)
	scope := strings.Join(stringsFromBytes(labels[1:]), ".")

	n := &Name{nbName: nbName, pad: pad, suffix: suffix, scope: scope, hasLSP: hasLSP, lsp: lsp}
	if hasLSP {
		return n, consumed, errLSP("L2 name terminated with a Label String Pointer", lsp)
	}
	return n, consumed, nil
}

// AppendL2 resolves a Name previously returned by SetL2 (or a prior AppendL2
// call) with a pending LSP, by parsing additional scope labels out of tail
// (the bytes found at the message offset the pending LSP pointed to). If
// tail itself ends in another LSP, AppendL2 returns an error satisfying
// IsLabelStringPointer again and the caller repeats the process.
func (n *Name) AppendL2(tail []byte) (*Name, int, error) {
	if !n.hasLSP {
		return nil, 0, errNoLSP("name has no pending Label String Pointer to resolve", nil)
	}
	labels, lsp, hasLSP, consumed, err := parseL2Labels(tail, false)
	if err != nil {
		return nil, 0, err
	}
	newScope := n.scope
	if tailScope := strings.Join(stringsFromBytes(labels), "."); tailScope != "" {
		if newScope != "" {
			newScope += "." + tailScope
		} else {
			newScope = tailScope
		}
	}
	next := &Name{nbName: n.nbName, pad: n.pad, suffix: n.suffix, scope: newScope, hasLSP: hasLSP, lsp: lsp}
	if hasLSP {
		return next, consumed, errLSP("appended L2 tail terminated with another Label String Pointer", lsp)
	}
	return next, consumed, nil
}

// parseL2Labels walks a run of length-prefixed labels starting at data[0],
// stopping at a zero-length label or an LSP. firstIsName indicates whether
// the very first label is the fixed 32-octet L1 name (true for SetL2's
// top-level call; false for AppendL2's scope-only continuation).
func parseL2Labels(data []byte, firstIsName bool) (labels [][]byte, lsp int, hasLSP bool, consumed int, err error) {
	pos := 0
	first := firstIsName
	for {
		if pos >= len(data) {
			return nil, 0, false, 0, errMalformed("label length field extends past end of input", pos)
		}
		lenByte := data[pos]
		top := lenByte & lenTopMask
		switch top {
		case lenTopLSP:
			if first {
				return nil, 0, false, 0, errMalformed("Label String Pointer encountered before first full label", nil)
			}
			if pos+2 > len(data) {
				return nil, 0, false, 0, errMalformed("Label String Pointer second byte past end of input", nil)
			}
			lsp = int(lenByte&0x3F)<<8 | int(data[pos+1])
			return labels, lsp, true, pos + 2, nil
		case lenTopNormal:
			length := int(lenByte & lenNormalMask)
			if pos+1+length > len(data) {
				return nil, 0, false, 0, errMalformed("label length field extends past end of input", length)
			}
			if length == 0 {
				return labels, 0, false, pos + 1, nil
			}
			labels = append(labels, data[pos+1:pos+1+length])
			pos += 1 + length
			first = false
		default:
			return nil, 0, false, 0, errMalformed("reserved label-length bit pattern", top)
		}
	}
}

func stringsFromBytes(labels [][]byte) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}
