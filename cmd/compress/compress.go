package compress

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/consensys/huffzip"
	"github.com/consensys/huffzip/internal/cli"
)

var (
	output   cli.OutputFlags
	capacity int
	fixed    bool
)

var CompressCmd = &cobra.Command{
	Use:   "compress [input]",
	Short: "Compress a file",
	Long:  "Compress a file with a static Huffman code. The output defaults to the input name with the " + cli.Extension + " extension.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := cli.ReadInput(args[0])
		if err != nil {
			return err
		}

		var opts []huffzip.Option
		if capacity > 0 {
			opts = append(opts, huffzip.WithQueueCapacity(capacity))
		}
		if fixed {
			opts = append(opts, huffzip.WithFixedQueue())
		}

		out, err := huffzip.NewCompressor(opts...).Compress(in)
		if err != nil {
			return err
		}
		log.Debug().Int("in", len(in)).Int("out", len(out)).Msg("compressed")

		return output.Emit(cmd.OutOrStdout(), args[0], out, false, len(out), len(in))
	},
}

func init() {
	CompressCmd.Flags().StringVarP(&output.Output, "output", "o", "", "Output file")
	CompressCmd.Flags().BoolVar(&output.NoOut, "no-out", false, "Do not write any output")
	CompressCmd.Flags().BoolVarP(&output.Report, "report", "r", false, "Report the compression ratio")
	CompressCmd.Flags().IntVar(&capacity, "capacity", 0, "Initial priority queue capacity (0 = number of distinct bytes)")
	CompressCmd.Flags().BoolVar(&fixed, "fixed", false, "Do not let the priority queue grow past its capacity")
	CompressCmd.MarkFlagsMutuallyExclusive("output", "no-out")
}
