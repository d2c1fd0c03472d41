package commands

import (
	"encoding/hex"
	"fmt"
)

// hexDecode decodes a contiguous hex string (as produced by internal/hexutil
// and accepted back by these subcommands), reporting a CLI-friendly error.
func hexDecode(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
