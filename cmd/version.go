package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("winsweep %s (%s) built %s\n", appVersion, appCommit, appDate)
		fmt.Println(core.WindowsVersionString())
	},
}
