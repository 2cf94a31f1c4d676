package commands

import (
	"fmt"
	"os"

	"github.com/perchworks/restock/pkg/shipping"
	"github.com/spf13/cobra"
)

var (
	outgoingPath string
	manifestPath string
)

var ManifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Generate a carrier-import CSV for unshipped orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := shipping.LoadOutgoing(outgoingPath)
		if err != nil {
			return err
		}

		f, err := os.Create(manifestPath)
		if err != nil {
			return err
		}
		defer f.Close()

		summary, err := shipping.WriteManifest(orders, f)
		if err != nil {
			return err
		}

		fmt.Printf("Manifest written to %s (%d shipments, %d skipped)\n",
			manifestPath, summary.Written, summary.Skipped)
		for _, name := range summary.Oversized {
			fmt.Printf("  [WARN] %s ordered above XL; may need a bigger box\n", name)
		}
		for _, addr := range summary.Unparsable {
			fmt.Printf("  [WARN] could not parse address: %s\n", addr)
		}
		return nil
	},
}

func init() {
	ManifestCmd.Flags().StringVarP(&outgoingPath, "outgoing", "o", "outgoing.csv", "Fulfillment queue CSV")
	ManifestCmd.Flags().StringVar(&manifestPath, "out", "manifest.csv", "Manifest CSV to write")
}
