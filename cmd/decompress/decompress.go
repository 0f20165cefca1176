package decompress

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/consensys/huffzip"
	"github.com/consensys/huffzip/internal/cli"
)

var output cli.OutputFlags

var DecompressCmd = &cobra.Command{
	Use:   "decompress [input]",
	Short: "Decompress a file",
	Long:  "Decompress a file produced by huffzip compress. The output defaults to the input name without its " + cli.Extension + " extension.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := cli.ReadInput(args[0])
		if err != nil {
			return err
		}

		out, err := huffzip.Decompress(in)
		if err != nil {
			return err
		}
		log.Debug().Int("in", len(in)).Int("out", len(out)).Msg("decompressed")

		return output.Emit(cmd.OutOrStdout(), args[0], out, true, len(in), len(out))
	},
}

func init() {
	DecompressCmd.Flags().StringVarP(&output.Output, "output", "o", "", "Output file")
	DecompressCmd.Flags().BoolVar(&output.NoOut, "no-out", false, "Do not write any output")
	DecompressCmd.Flags().BoolVarP(&output.Report, "report", "r", false, "Report the compression ratio")
	DecompressCmd.MarkFlagsMutuallyExclusive("output", "no-out")
}
