package smburl

import "github.com/ubiqx-org/carnaval/internal/codederr"

// Error codes for the SMB URL family, grounded on SMB_URL.py's use of
// SMBerror(1001) for URL syntax errors. Given its own range since this
// package has no dependency on smb1's error family.
const codeSyntax = 3001

var kinds = map[int]string{codeSyntax: "SMB URL Syntax Error"}

// Error is the smburl package's coded error type.
type Error = codederr.Coded

func errSyntax(msg string, value any) *Error { return codederr.New(kinds, codeSyntax, msg, value) }
