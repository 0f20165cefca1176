package inspect

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/consensys/huffzip"
	"github.com/consensys/huffzip/bitstream"
	"github.com/consensys/huffzip/internal/cli"
)

var against string

var InspectCmd = &cobra.Command{
	Use:   "inspect [input]",
	Short: "Describe a compressed file",
	Long:  "Print the code table of a compressed file as CSV, along with its size, ratio and entropy bound.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := cli.ReadInput(args[0])
		if err != nil {
			return err
		}
		r, err := huffzip.Inspect(in)
		if err != nil {
			return err
		}

		if err = r.WriteCSV(cmd.OutOrStdout()); err != nil {
			return err
		}
		log.Info().
			Uint64("length", r.Header.Length).
			Int("compressed", r.CompressedSize()).
			Int("header", r.HeaderSize).
			Uint64("payloadBits", r.PayloadBits).
			Float64("entropyBits", r.Entropy()).
			Int("depth", r.Depth).
			Msg(fmt.Sprintf("ratio %.2f", r.Ratio()))

		if against == "" {
			return nil
		}
		other, err := cli.ReadInput(against)
		if err != nil {
			return err
		}
		nbBits := 8 * uint64(min(len(in), len(other)))
		diff := bitstream.Diff(in, other, nbBits)
		log.Info().
			Str("against", against).
			Int("differingBits", bitstream.PopCount(diff, nbBits)).
			Int("sizeDelta", len(other)-len(in)).
			Msg("compared")
		return nil
	},
}

func init() {
	InspectCmd.Flags().StringVar(&against, "against", "", "Another compressed file to compare bit by bit")
}
