package commands

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"
	"github.com/ubiqx-org/carnaval/internal/hexutil"
	"github.com/ubiqx-org/carnaval/nbt"
)

var (
	dgramSrcIP   string
	dgramSrcName string
	dgramDstName string
	dgramMaxData int
	dgramGroup   bool
)

var dgramCmd = &cobra.Command{
	Use:   "dgram",
	Short: "Compose NBT Datagram Service messages (spec.md §3.2, §3.3)",
}

var dgramComposeCmd = &cobra.Command{
	Use:   "compose <payload>",
	Short: "Compose a DIRECT_UNIQUE or DIRECT_GROUP datagram, fragmenting if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("dgram-compose")
		ip := net.ParseIP(dgramSrcIP)
		if ip == nil {
			return fmt.Errorf("invalid --src-ip %q", dgramSrcIP)
		}
		src, err := nbt.FromNetBIOS(dgramSrcName)
		if err != nil {
			return err
		}
		dst, err := nbt.FromNetBIOS(dgramDstName)
		if err != nil {
			return err
		}
		msgType := byte(nbt.DSDirectUnique)
		if dgramGroup {
			msgType = nbt.DSDirectGroup
		}
		d := nbt.Datagram{
			Header:   nbt.DSHeader{MsgType: msgType, SrcIP: ip, SrcPort: nbt.DSPort},
			SrcName:  src,
			DstName:  dst,
			UserData: []byte(args[0]),
		}
		frames, err := d.ComposeList(dgramMaxData)
		if err != nil {
			log.Error("compose failed: %v", err)
			return err
		}
		for i, f := range frames {
			fmt.Printf("frame %d (%d bytes): %s\n", i, len(f), hexutil.Str(f))
		}
		fmt.Println("---")
		if err := d.Dump(os.Stdout, 0); err != nil {
			return err
		}
		log.Info("composed %d fragment(s) for %d byte payload", len(frames), len(args[0]))
		return nil
	},
}

func init() {
	dgramComposeCmd.Flags().StringVar(&dgramSrcIP, "src-ip", "127.0.0.1", "source IPv4 address")
	dgramComposeCmd.Flags().StringVar(&dgramSrcName, "src-name", "SENDER", "source NetBIOS name")
	dgramComposeCmd.Flags().StringVar(&dgramDstName, "dst-name", "RECEIVER", "destination NetBIOS name")
	dgramComposeCmd.Flags().IntVar(&dgramMaxData, "max-data", nbt.DSDefaultMaxData, "maximum per-fragment payload (1..512)")
	dgramComposeCmd.Flags().BoolVar(&dgramGroup, "group", false, "compose DIRECT_GROUP instead of DIRECT_UNIQUE")
	dgramCmd.AddCommand(dgramComposeCmd)
}
