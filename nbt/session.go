package nbt

import (
	"encoding/binary"

	"github.com/ubiqx-org/carnaval/internal/wire"
)

// Session Service wire constants, grounded on
// original_source/carnaval/nbt/NBT_SessionService.py.
const (
	SSPort = 139

	SSSessionMessage    = 0x00
	SSSessionRequest    = 0x81
	SSPositiveResponse  = 0x82
	SSNegativeResponse  = 0x83
	SSRetargetResponse  = 0x84
	SSKeepalive         = 0x85

	ssLengthMask = 0x0001FFFF
)

// Session Service error codes (SESSION_NEGATIVE_RESPONSE's one-byte body).
const (
	SSErrorNotListeningOnCalled  = 0x80
	SSErrorNotListeningForCaller = 0x81
	SSErrorCalledNotPresent      = 0x82
	SSErrorInsufficientResources = 0x83
	SSErrorUnspecified           = 0x8F
)

// ssFixedLen maps each non-SESSION_MESSAGE type to its fixed body length in
// bytes (excluding the 4-byte frame header).
var ssFixedLen = map[byte]int{
	SSSessionRequest:   68,
	SSPositiveResponse: 0,
	SSNegativeResponse: 1,
	SSRetargetResponse: 6,
	SSKeepalive:        0,
}

func encodeSSHeader(msgType byte, bodyLen int) []byte {
	w := wire.NewWriter(binary.BigEndian, 4)
	w.WriteByte(msgType)
	w.WriteByte(byte((bodyLen >> 16) & 0x01))
	w.WriteUint16(uint16(bodyLen & 0xFFFF))
	return w.Bytes()
}

// SessionMessage composes a SESSION_MESSAGE frame carrying payload as its
// body. The length field carries len(payload) masked to 17 bits (spec.md
// §3.4).
func SessionMessage(payload []byte) []byte {
	return append(encodeSSHeader(SSSessionMessage, len(payload)&ssLengthMask), payload...)
}

// SessionRequest composes a SESSION_REQUEST frame. called and calling must
// each be zero-scope L2 names (34 bytes: 0x20 length byte, 32 half-ASCII
// octets, terminating NUL) per spec.md §3.4.
func SessionRequest(called, calling *Name) ([]byte, error) {
	c, err := zeroScopeL2(called)
	if err != nil {
		return nil, err
	}
	k, err := zeroScopeL2(calling)
	if err != nil {
		return nil, err
	}
	body := append(append([]byte{}, c...), k...)
	return append(encodeSSHeader(SSSessionRequest, len(body)), body...), nil
}

func zeroScopeL2(n *Name) ([]byte, error) {
	if n.Scope() != "" {
		return nil, errSemantic("session service names must have an empty scope", n.Scope())
	}
	b := n.L2Form()
	if len(b) != 34 {
		return nil, errSemantic("session service name must encode to exactly 34 octets", len(b))
	}
	return b, nil
}

// PositiveResponse composes a SESSION_POSITIVE_RESPONSE frame (zero-length
// body).
func PositiveResponse() []byte {
	return encodeSSHeader(SSPositiveResponse, 0)
}

// NegativeResponse composes a SESSION_NEGATIVE_RESPONSE frame carrying a
// single error-code byte.
func NegativeResponse(errorCode byte) []byte {
	return append(encodeSSHeader(SSNegativeResponse, 1), errorCode)
}

// RetargetResponse composes a SESSION_RETARGET_RESPONSE frame: a 4-octet
// IPv4 address and a 2-octet port.
func RetargetResponse(ip [4]byte, port uint16) []byte {
	w := wire.NewWriter(binary.BigEndian, 6)
	w.WriteBytes(ip[:])
	w.WriteUint16(port)
	return append(encodeSSHeader(SSRetargetResponse, 6), w.Bytes()...)
}

// Keepalive composes a SESSION_KEEPALIVE frame (zero-length body).
func Keepalive() []byte {
	return encodeSSHeader(SSKeepalive, 0)
}

// ParsedMsg is the decoded 4-byte Session Service frame header.
type ParsedMsg struct {
	Type byte
	Len  int
}

// ParseMsg decodes a Session Service frame header and validates its length
// field, returning the message type and body length. For fixed-length
// message types, Len is checked against ssFixedLen; for SESSION_MESSAGE any
// length is accepted.
func ParseMsg(data []byte) (ParsedMsg, error) {
	if len(data) < 4 {
		return ParsedMsg{}, errSyntax("session service frame header truncated", len(data))
	}
	mType := data[0]
	if data[1]&0xFE != 0 {
		return ParsedMsg{}, errSyntax("session service frame header has nonzero reserved flag bits", data[1])
	}
	mLen := int(data[1]&0x01)<<16 | int(data[2])<<8 | int(data[3])

	if mType != SSSessionMessage {
		want, known := ssFixedLen[mType]
		if !known {
			return ParsedMsg{}, errMalformed("unrecognized session service message type", mType)
		}
		if mLen != want {
			return ParsedMsg{}, errSyntax("session service message has wrong fixed body length", mLen)
		}
	}
	if 4+mLen > len(data) {
		return ParsedMsg{}, errMalformed("session service body length extends past end of input", mLen)
	}
	return ParsedMsg{Type: mType, Len: mLen}, nil
}

// ParseCNames parses a SESSION_REQUEST body into its called and calling
// names.
func ParseCNames(body []byte) (called, calling *Name, err error) {
	if len(body) != 68 {
		return nil, nil, errSyntax("session request body must be 68 octets", len(body))
	}
	called, _, err = SetL2(body[:34])
	if err != nil {
		return nil, nil, errSemantic("malformed called name in session request", err)
	}
	calling, _, err = SetL2(body[34:])
	if err != nil {
		return nil, nil, errSemantic("malformed calling name in session request", err)
	}
	return called, calling, nil
}

// ParseErrCode parses a SESSION_NEGATIVE_RESPONSE body into its error code,
// validating it against the fixed set of error codes spec.md §4.3 defines
// (SSErrorNotListeningOnCalled, SSErrorNotListeningForCaller,
// SSErrorCalledNotPresent, SSErrorInsufficientResources,
// SSErrorUnspecified).
func ParseErrCode(body []byte) (byte, error) {
	if len(body) != 1 {
		return 0, errSyntax("session negative response body must be 1 octet", len(body))
	}
	switch body[0] {
	case SSErrorNotListeningOnCalled, SSErrorNotListeningForCaller, SSErrorCalledNotPresent,
		SSErrorInsufficientResources, SSErrorUnspecified:
		return body[0], nil
	default:
		return 0, errSyntax("unrecognized session negative response error code", body[0])
	}
}

// ParseRetarget parses a SESSION_RETARGET_RESPONSE body into its IPv4
// address and port.
func ParseRetarget(body []byte) (ip [4]byte, port uint16, err error) {
	if len(body) != 6 {
		return ip, 0, errSyntax("session retarget response body must be 6 octets", len(body))
	}
	copy(ip[:], body[:4])
	port = binary.BigEndian.Uint16(body[4:6])
	return ip, port, nil
}
