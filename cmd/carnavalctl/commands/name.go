package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ubiqx-org/carnaval/internal/hexutil"
	"github.com/ubiqx-org/carnaval/nbt"
)

var (
	nameSuffix byte
	nameScope  string
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Encode or decode NetBIOS names (spec.md §3.1)",
}

var nameEncodeCmd = &cobra.Command{
	Use:   "encode <nbname>",
	Short: "Encode a NetBIOS name into its L1 and L2 wire forms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("name-encode")
		var opts []nbt.NameOption
		if nameSuffix != 0 {
			opts = append(opts, nbt.WithSuffix(nameSuffix))
		}
		if nameScope != "" {
			opts = append(opts, nbt.WithScope(nameScope))
		}
		n, err := nbt.FromNetBIOS(args[0], opts...)
		if err != nil {
			log.Error("encode failed: %v", err)
			return err
		}
		fmt.Printf("String:  %s\n", n.String())
		fmt.Printf("L1 form: %s\n", n.L1Form())
		fmt.Printf("L2 form: %s\n", hexutil.Str(n.L2Form()))
		log.Info("encoded %q into %d L2 octets", args[0], len(n.L2Form()))
		return nil
	},
}

var nameDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a hex-encoded L2 NetBIOS name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("name-decode")
		data, err := hexDecode(args[0])
		if err != nil {
			return err
		}
		n, consumed, err := nbt.SetL2(data)
		if err != nil && !nbt.IsLabelStringPointer(err) {
			log.Error("decode failed: %v", err)
			return err
		}
		fmt.Printf("Name:     %s\n", n.String())
		fmt.Printf("Consumed: %d octets\n", consumed)
		if off, ok := n.LSP(); ok {
			fmt.Printf("Pending Label String Pointer at offset 0x%04X\n", off)
		}
		if err := n.Dump(os.Stdout, 2); err != nil {
			return err
		}
		log.Info("decoded %d octets into %q", consumed, n.String())
		return nil
	},
}

func init() {
	nameEncodeCmd.Flags().Uint8Var(&nameSuffix, "suffix", 0, "suffix (\"type\") octet, 0 for the default")
	nameEncodeCmd.Flags().StringVar(&nameScope, "scope", "", "dotted NetBIOS scope")
	nameCmd.AddCommand(nameEncodeCmd, nameDecodeCmd)
}
