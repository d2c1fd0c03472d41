// Command carnavalctl is a small demonstration harness over this module's
// NBT/SMB codec packages — not part of the core library, and not a protocol
// client or server (spec.md §2's Non-goals exclude both). It exists to
// exercise the wire formats end to end the way the example repos' own cmd/
// entry points exercise their libraries.
//
// Grounded on marmos91-dittofs/cmd/dittofs's cobra root-command layout
// (commands package, Execute() exported to main) and
// krisarmstrong-niac-go's cmd/niac for the general shape of a flag-driven
// CLI over a simulation library.
package main

import (
	"fmt"
	"os"

	"github.com/ubiqx-org/carnaval/cmd/carnavalctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "carnavalctl:", err)
		os.Exit(1)
	}
}
