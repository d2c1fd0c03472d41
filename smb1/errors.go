// Package smb1 implements the SMB1 (CIFS) message header and the NegProt and
// Echo command bodies — wire composition and parsing only, no session state
// machine or any other SMB1 command (spec.md §1's explicit Non-goals).
//
// Grounded on original_source/carnaval/smb/SMB_Core.py and
// SMB1_Messages.py.
package smb1

import "github.com/ubiqx-org/carnaval/internal/codederr"

// Error codes for the SMB1 family, grounded on SMB_Core.py's
// SMBerror.error_dict. Only one version of SMB_Core.py / SMB1_Messages.py
// was recovered under original_source/ — this module implements exactly
// that baseline (SPEC_FULL.md §7).
const (
	codeSemantic         = 1001
	codeSyntax           = 1002
	codeProtocolMismatch = 1003
)

var kinds = map[int]string{
	codeSemantic:         "SMB Semantic Error",
	codeSyntax:           "SMB Syntax Error",
	codeProtocolMismatch: "SMB Protocol Mismatch",
}

// Error is the SMB1 family's coded error type.
type Error = codederr.Coded

func errSemantic(msg string, value any) *Error {
	return codederr.New(kinds, codeSemantic, msg, value)
}
func errSyntax(msg string, value any) *Error { return codederr.New(kinds, codeSyntax, msg, value) }
func errProtocolMismatch(msg string, value any) *Error {
	return codederr.New(kinds, codeProtocolMismatch, msg, value)
}
