package nbt

import (
	"fmt"
	"io"

	"github.com/ubiqx-org/carnaval/internal/hexutil"
)

// Dump writes a labeled field dump of n, in the style of
// NBT_NameService.py's Name.dump(indent). A convenience over String() for
// callers that want per-field breakout rather than the compact notation.
func (n *Name) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sName: %s\n", pad, n.nbName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%sSuffix: %s\n", pad, hexutil.Byte(n.suffix)); err != nil {
		return err
	}
	if n.scope != "" {
		if _, err := fmt.Fprintf(w, "%sScope: %s\n", pad, n.scope); err != nil {
			return err
		}
	}
	if n.hasLSP {
		if _, err := fmt.Fprintf(w, "%sLabel String Pointer: %s\n", pad, hexutil.Num(uint64(n.lsp), 4)); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes a labeled field dump of h, grounded on
// NBT_DatagramService.py's _DS_Header.dump(indent).
func (h DSHeader) Dump(w io.Writer, indent int) error {
	pad := indentStr(indent)
	_, err := fmt.Fprintf(w, "%sMsgType: %s\n%sFlags: SNT=%s First=%v More=%v\n%sDgmID: %s\n%sSrcIP: %s\n%sSrcPort: %d\n",
		pad, hexutil.Byte(h.MsgType),
		pad, hexutil.Byte(h.SNT), h.First, h.More,
		pad, hexutil.Num(uint64(h.DgmID), 4),
		pad, h.SrcIP,
		pad, h.SrcPort)
	return err
}

// Dump writes a labeled field dump of an assembled Datagram: its header,
// names, and a hex/ASCII dump of the user data.
func (d Datagram) Dump(w io.Writer, indent int) error {
	if err := d.Header.Dump(w, indent); err != nil {
		return err
	}
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sSrcName: %s\n%sDstName: %s\n%sUserData (%d bytes):\n", pad, d.SrcName, pad, d.DstName, pad, len(d.UserData)); err != nil {
		return err
	}
	_, err := io.WriteString(w, hexutil.Dump(d.UserData, indent+2))
	return err
}

// Dump writes a labeled field dump of a raw on-wire fragment.
func (f DSFragment) Dump(w io.Writer, indent int) error {
	if err := f.Header.Dump(w, indent); err != nil {
		return err
	}
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sOffset: %d\n%sSrcName: %s\n%sDstName: %s\n%sFragment (%d bytes):\n", pad, f.Offset, pad, f.SrcName, pad, f.DstName, pad, len(f.Fragment)); err != nil {
		return err
	}
	_, err := io.WriteString(w, hexutil.Dump(f.Fragment, indent+2))
	return err
}

// Dump writes a labeled field dump of an ERROR_DATAGRAM message.
func (e ErrorDatagram) Dump(w io.Writer, indent int) error {
	if err := e.Header.Dump(w, indent); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%sErrorCode: %s\n", indentStr(indent), hexutil.Byte(e.ErrorCode))
	return err
}

// Dump writes a labeled field dump of an NBDD query/response datagram.
func (q Query) Dump(w io.Writer, indent int) error {
	if err := q.Header.Dump(w, indent); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%sName: %s\n", indentStr(indent), q.Name)
	return err
}

// DumpSessionFrame writes a labeled field dump of a parsed Session Service
// frame, grounded on NBT_SessionService.py's per-message dump(indent)
// methods. body is the frame's raw body bytes (data[4:4+msg.Len]).
func DumpSessionFrame(msg ParsedMsg, body []byte, w io.Writer, indent int) error {
	pad := indentStr(indent)
	if _, err := fmt.Fprintf(w, "%sType: %s\n%sLen: %d\n", pad, hexutil.Byte(msg.Type), pad, msg.Len); err != nil {
		return err
	}
	switch msg.Type {
	case SSSessionRequest:
		called, calling, err := ParseCNames(body)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%sCalled: %s\n%sCalling: %s\n", pad, called, pad, calling)
		return err
	case SSNegativeResponse:
		code, err := ParseErrCode(body)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%sErrorCode: %s\n", pad, hexutil.Byte(code))
		return err
	case SSRetargetResponse:
		ip, port, err := ParseRetarget(body)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%sRetargetIP: %d.%d.%d.%d\n%sRetargetPort: %d\n", pad, ip[0], ip[1], ip[2], ip[3], pad, port)
		return err
	default:
		_, err := io.WriteString(w, hexutil.Dump(body, indent+2))
		return err
	}
}

func indentStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
