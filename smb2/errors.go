package smb2

import "github.com/ubiqx-org/carnaval/internal/codederr"

// Error codes for the SMB2/3 header codec, grounded on the same
// SMB_Core.py-derived taxonomy as smb1's errors.go, given its own code
// range to avoid colliding with smb1's or nbt's.
const (
	codeSemantic         = 2001
	codeSyntax           = 2002
	codeProtocolMismatch = 2003
	codeMalformed        = 2004
)

var kinds = map[int]string{
	codeSemantic:         "SMB2 Semantic Error",
	codeSyntax:           "SMB2 Syntax Error",
	codeProtocolMismatch: "SMB2 Protocol Mismatch",
	codeMalformed:        "SMB2 Malformed Message",
}

// Error is the SMB2/3 family's coded error type.
type Error = codederr.Coded

func errSemantic(msg string, value any) *Error {
	return codederr.New(kinds, codeSemantic, msg, value)
}
func errSyntax(msg string, value any) *Error { return codederr.New(kinds, codeSyntax, msg, value) }
func errProtocolMismatch(msg string, value any) *Error {
	return codederr.New(kinds, codeProtocolMismatch, msg, value)
}
func errMalformed(msg string, value any) *Error {
	return codederr.New(kinds, codeMalformed, msg, value)
}
