package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consensys/huffzip"
)

const Version = "0.1.0"

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the huffzip version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "huffzip v%s (format version %d)\n", Version, huffzip.Version)
		return err
	},
}
