package smb1

import (
	"fmt"
	"io"

	"github.com/ubiqx-org/carnaval/internal/hexutil"
)

// Dump writes a labeled field dump of h, grounded on SMB1_Messages.py's
// _SMB1_Header.dump(indent).
func (h *Header) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	_, err := fmt.Fprintf(w,
		"%sCommand: %s\n%sStatus: %s\n%sFlags: %s Flags2: %s\n%sPID: %d TID: %d UID: %d MID: %d\n",
		pad, hexutil.Byte(h.Command),
		pad, hexutil.Num(uint64(h.Status), 8),
		pad, hexutil.Byte(h.Flags), hexutil.Num(uint64(h.Flags2), 4),
		pad, h.Pid(), h.TID, h.UID, h.MID)
	return err
}

// Dump writes a labeled field dump of a parsed SMB_COM_NEGOTIATE request.
func (b *NegProtRequestBody) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sDialects:\n", pad); err != nil {
		return err
	}
	for _, d := range b.Dialects {
		if _, err := fmt.Fprintf(w, "%s  %s\n", pad, d); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes a labeled field dump of a parsed SMB_COM_NEGOTIATE response.
func (b *NegProtResponseBody) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	if b.DialectIndex == nil {
		_, err := fmt.Fprintf(w, "%sDialectIndex: none\n", pad)
		return err
	}
	_, err := fmt.Fprintf(w, "%sDialectIndex: %d\n", pad, *b.DialectIndex)
	return err
}

// Dump writes a labeled field dump of an SMB_COM_ECHO request.
func (e *EchoRequest) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sEchoCount: %d\n%sChecksum: %s\n%sPayload (%d bytes):\n", pad, e.EchoCount, pad, hexutil.Num(uint64(e.Checksum()), 8), pad, len(e.Payload)); err != nil {
		return err
	}
	_, err := io.WriteString(w, hexutil.Dump(e.Payload, indent+2))
	return err
}

// Dump writes a labeled field dump of an SMB_COM_ECHO response.
func (e *EchoResponse) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sSeqNumber: %d\n%sChecksum: %s\n%sPayload (%d bytes):\n", pad, e.SeqNumber, pad, hexutil.Num(uint64(e.Checksum()), 8), pad, len(e.Payload)); err != nil {
		return err
	}
	_, err := io.WriteString(w, hexutil.Dump(e.Payload, indent+2))
	return err
}

func indentStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
