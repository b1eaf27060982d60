package target

import (
	"github.com/spf13/cobra"
)

var TargetCmd = &cobra.Command{
	Use:   "target",
	Short: "Inspect target descriptions",
}
