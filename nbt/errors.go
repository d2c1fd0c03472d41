package nbt

import "github.com/ubiqx-org/carnaval/internal/codederr"

// Error codes for the NBT service family, grounded on
// original_source/carnaval/nbt/NBT_Core.py's NBTerror.error_dict.
const (
	codeSemantic     = 1001
	codeSyntax       = 1002
	codeLSP          = 1003
	codeNoLSP        = 1004
	codeMalformed    = 1005
)

var kinds = map[int]string{
	codeSemantic:  "NBT Semantic Error",
	codeSyntax:    "NBT Syntax Error",
	codeLSP:       "Label String Pointer",
	codeNoLSP:     "No Label String Pointer",
	codeMalformed: "Malformed Message",
}

// Error is the NBT family's coded error type (spec.md §7's NBT-Semantic,
// NBT-Syntax, LabelStringPointer, NoLabelStringPointer, and Malformed
// kinds).
type Error = codederr.Coded

func errSemantic(msg string, value any) *Error { return codederr.New(kinds, codeSemantic, msg, value) }
func errSyntax(msg string, value any) *Error   { return codederr.New(kinds, codeSyntax, msg, value) }
func errLSP(msg string, value any) *Error      { return codederr.New(kinds, codeLSP, msg, value) }
func errNoLSP(msg string, value any) *Error    { return codederr.New(kinds, codeNoLSP, msg, value) }
func errMalformed(msg string, value any) *Error {
	return codederr.New(kinds, codeMalformed, msg, value)
}

// IsLabelStringPointer reports whether err is the LabelStringPointer "info"
// signal raised when SetL2 or AppendL2 resolves a name that ends in an LSP
// rather than a terminating zero-length label (spec.md §4.1's
// "Label-string-pointer policy": not a hard error, a partial-result signal).
func IsLabelStringPointer(err error) bool {
	c, ok := err.(*Error)
	return ok && c.Code == codeLSP
}
