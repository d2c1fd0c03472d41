package smb1

import "github.com/ubiqx-org/carnaval/internal/wire"

// Message bundles a parsed Header together with its command-specific body.
// Body is one of *NegProtRequestBody, *NegProtResponseBody, *EchoRequest,
// or *EchoResponse.
type Message struct {
	Header *Header
	Body   any
}

// ParseSMB1 parses an SMB1 message: header plus the body of whichever
// command the header names. Only SMB_COM_NEGOTIATE and SMB_COM_ECHO are in
// scope (spec.md §1's Non-goals exclude every other SMB1 command);
// SMB_COM_INVALID (0xFE) and any other command code are rejected.
//
// Grounded on SMB1_Messages.py's ParseSMB1, which required at least 35
// bytes (32-byte header + WordCount + 2-byte ByteCount) before even
// attempting to read a command-specific body.
func ParseSMB1(data []byte) (*Message, error) {
	if len(data) < headerLen+3 {
		return nil, errSemantic("message too short to be a well-formed SMB1 message", len(data))
	}
	r := newReader(data)
	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	switch h.Command {
	case CommandNegotiate:
		return parseNegProt(h, r)
	case CommandEcho:
		return parseEcho(h, r)
	case CommandInvalid:
		return nil, errSemantic("SMB_COM_INVALID is not a real command", CommandInvalid)
	default:
		return nil, errSemantic("command not supported by this codec", h.Command)
	}
}

func parseNegProt(h *Header, r *wire.Reader) (*Message, error) {
	wordCount, ok := r.ReadByte()
	if !ok {
		return nil, errSyntax("message truncated reading WordCount", nil)
	}
	rest := r.ReadBytes(r.Remaining())

	if h.IsReply() {
		if wordCount == 0 {
			return &Message{Header: h, Body: &NegProtResponseBody{}}, nil
		}
		if wordCount != 1 || len(rest) < 2 {
			return nil, errSemantic("negotiate response WordCount must be 0 or 1", wordCount)
		}
		idx := uint16(rest[0]) | uint16(rest[1])<<8
		return &Message{Header: h, Body: &NegProtResponseBody{DialectIndex: &idx}}, nil
	}

	if wordCount != 0 {
		return nil, errSemantic("negotiate request WordCount must be 0", wordCount)
	}
	if len(rest) < 2 {
		return nil, errSyntax("message truncated reading ByteCount", nil)
	}
	byteCount := uint16(rest[0]) | uint16(rest[1])<<8
	body, err := parseNegProtRequest(byteCount, rest[2:])
	if err != nil {
		return nil, err
	}
	return &Message{Header: h, Body: body}, nil
}

func parseEcho(h *Header, r *wire.Reader) (*Message, error) {
	wordCount, ok := r.ReadByte()
	if !ok {
		return nil, errSyntax("message truncated reading WordCount", nil)
	}
	rest := r.ReadBytes(r.Remaining())

	if h.IsReply() {
		body, err := parseEchoResponse(wordCount, rest)
		if err != nil {
			return nil, err
		}
		body.Header = h
		return &Message{Header: h, Body: body}, nil
	}
	body, err := parseEchoRequest(wordCount, rest)
	if err != nil {
		return nil, err
	}
	body.Header = h
	return &Message{Header: h, Body: body}, nil
}
