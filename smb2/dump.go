package smb2

import (
	"fmt"
	"io"

	"github.com/ubiqx-org/carnaval/internal/hexutil"
)

// Dump writes a labeled field dump of h, resolving the two
// dialect-conditional overloads into whichever interpretation applies
// (a response always shows Status; an async message shows AsyncID instead
// of TreeID).
func (h *Header) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sCommand: %s\n%sMessageID: %d\n%sFlags: %s\n",
		pad, hexutil.Num(uint64(h.Command), 4), pad, h.MessageID, pad, hexutil.Num(uint64(h.Flags), 8)); err != nil {
		return err
	}
	if h.IsResponse() {
		if _, err := fmt.Fprintf(w, "%sStatus: %s\n", pad, h.Status()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%sChannelSequence: %s\n", pad, hexutil.Num(uint64(h.ChannelSequence()), 4)); err != nil {
			return err
		}
	}
	if h.IsAsync() {
		_, err := fmt.Fprintf(w, "%sAsyncID: %s\n%sSessionID: %s\n", pad, hexutil.Num(h.AsyncID(), 16), pad, hexutil.Num(h.SessionID, 16))
		return err
	}
	_, err := fmt.Fprintf(w, "%sTreeID: %s\n%sSessionID: %s\n", pad, hexutil.Num(uint64(h.TreeID()), 8), pad, hexutil.Num(h.SessionID, 16))
	return err
}

func indentStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
