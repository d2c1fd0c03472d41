package smb2

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/hkdf"
)

// Signature field location within the 64-byte header (spec.md §3.6, §6.1).
const (
	SignatureOffset = 48
	SignatureLength = 16
)

// DeriveSigningKey derives a per-session signing key from a session key,
// using HKDF-Expand over SHA-256 with the given label and context as the
// HKDF "info" parameter. Real SMB 3.x derives its signing key with NIST
// SP800-108 counter-mode KDF rather than HKDF; this codec uses HKDF-Expand
// as a close stand-in since it is not implementing the authentication
// handshake that would produce a session key in the first place (spec.md
// §1's Non-goals exclude session establishment).
//
// Grounded on the teacher's smb2_signing.go key-handling shape, ported from
// its hand-rolled HMAC-SHA256 key padding to golang.org/x/crypto/hkdf.
func DeriveSigningKey(sessionKey []byte, label, context string) ([]byte, error) {
	info := append([]byte(label), []byte(context)...)
	kdf := hkdf.Expand(sha256.New, sessionKey, info)
	key := make([]byte, 16)
	if _, err := kdf.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// SignMessage computes the 16-byte signature for an SMB2 message: HMAC-
// SHA256 of the message with its signature field zeroed, truncated to 16
// bytes. message must be at least HeaderLen bytes.
func SignMessage(message []byte, signingKey []byte) []byte {
	if len(signingKey) == 0 || len(message) < HeaderLen {
		return nil
	}
	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)
	for i := SignatureOffset; i < SignatureOffset+SignatureLength; i++ {
		msgCopy[i] = 0
	}

	h := hmac.New(sha256.New, signingKey)
	h.Write(msgCopy)
	return h.Sum(nil)[:SignatureLength]
}

// VerifySignature reports whether message's embedded signature matches the
// signature computed with signingKey.
func VerifySignature(message []byte, signingKey []byte) bool {
	if len(signingKey) == 0 || len(message) < SignatureOffset+SignatureLength {
		return false
	}
	existing := message[SignatureOffset : SignatureOffset+SignatureLength]
	expected := SignMessage(message, signingKey)
	return expected != nil && hmac.Equal(existing, expected)
}
