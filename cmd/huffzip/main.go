package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/consensys/huffzip/cmd/compress"
	"github.com/consensys/huffzip/cmd/decompress"
	"github.com/consensys/huffzip/cmd/inspect"
	"github.com/consensys/huffzip/cmd/version"
	"github.com/consensys/huffzip/internal/cli"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "huffzip",
	Short:         "Huffman file compressor",
	Long:          "huffzip compresses files with a static Huffman code built from their byte frequencies.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetupLogging(verbose)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information")
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("huffzip failed")
		os.Exit(1)
	}
}
