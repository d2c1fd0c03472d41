package smb1

import "strings"

// DefaultDialects is the dialect list NegProtRequest uses when none is
// supplied, matching SMB1_Messages.py's SMB1_NegProt_Request default.
var DefaultDialects = []string{"2.002", "2.???"}

// NegProtRequest composes an SMB_COM_NEGOTIATE request: header, zero-word
// parameter block, and a byte-count-prefixed list of dialect strings, each
// encoded as 0x02 + ASCII + NUL.
func NegProtRequest(h *Header, dialects []string) []byte {
	h.Command = CommandNegotiate
	if dialects == nil {
		dialects = DefaultDialects
	}
	var body []byte
	for _, d := range dialects {
		body = append(body, 0x02)
		body = append(body, d...)
		body = append(body, 0x00)
	}

	w := newWriter(headerLen + 1 + 2 + len(body))
	h.compose(w)
	w.WriteByte(0) // WordCount
	w.WriteUint16(uint16(len(body)))
	w.WriteBytes(body)
	return w.Bytes()
}

// NegProtResponse composes an SMB_COM_NEGOTIATE response. If dIndex is nil,
// the response carries no dialect index (none of the offered dialects were
// acceptable); otherwise it carries the one-word index of the chosen
// dialect.
func NegProtResponse(h *Header, dIndex *uint16) []byte {
	h.Command = CommandNegotiate
	h.Flags |= FlagReply

	if dIndex == nil {
		w := newWriter(headerLen + 3)
		h.compose(w)
		w.WriteByte(0) // WordCount
		w.WriteUint16(0)
		return w.Bytes()
	}

	w := newWriter(headerLen + 1 + 2 + 2)
	h.compose(w)
	w.WriteByte(1) // WordCount
	w.WriteUint16(*dIndex)
	w.WriteUint16(0) // ByteCount
	return w.Bytes()
}

// NegProtRequestBody is the parsed body of an SMB_COM_NEGOTIATE request.
type NegProtRequestBody struct {
	Dialects []string
}

func parseNegProtRequest(byteCount uint16, data []byte) (*NegProtRequestBody, error) {
	if byteCount < 3 {
		return nil, errSemantic("negotiate request byte count too small to hold a dialect", byteCount)
	}
	if len(data) < int(byteCount) {
		return nil, errSyntax("negotiate request byte count extends past end of input", byteCount)
	}
	body := data[:byteCount]
	if body[0] != 0x02 || body[len(body)-1] != 0x00 {
		return nil, errSyntax("negotiate request dialect list missing 0x02/NUL framing", nil)
	}
	dialects := strings.Split(string(body[1:len(body)-1]), "\x00\x02")
	return &NegProtRequestBody{Dialects: dialects}, nil
}

// NegProtResponseBody is the parsed body of an SMB_COM_NEGOTIATE response.
type NegProtResponseBody struct {
	DialectIndex *uint16
}
