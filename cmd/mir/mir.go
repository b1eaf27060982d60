package mir

import (
	"github.com/spf13/cobra"
)

var MirCmd = &cobra.Command{
	Use:   "mir",
	Short: "Inspect machine instruction sequences",
}
