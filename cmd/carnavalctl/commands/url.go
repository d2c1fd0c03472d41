package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ubiqx-org/carnaval/smburl"
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Parse and compose SMB URLs (spec.md §3.8)",
}

var urlParseCmd = &cobra.Command{
	Use:   "parse <smb-url>",
	Short: "Parse an smb:// URL and print its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("url-parse")
		u, warn, err := smburl.Parse(args[0])
		if err != nil {
			log.Error("parse failed: %v", err)
			return err
		}
		if err := u.Dump(os.Stdout, 0); err != nil {
			return err
		}
		if warn != nil {
			fmt.Printf("Warning:    %s\n", warn.Error())
			log.Warn("parse warning: %s", warn.Error())
		}
		log.Info("parsed %q", args[0])
		return nil
	},
}

func init() {
	urlCmd.AddCommand(urlParseCmd)
}
