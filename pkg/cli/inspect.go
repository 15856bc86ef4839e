package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the resolved capability table for a fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := resolveFixture()
		if err != nil {
			return err
		}

		cmd.Printf("capabilities: %d\n", rt.Len())
		for i, c := range rt.Capabilities() {
			cmd.Printf("  %2d. %-8s %s\n", i+1, c.Verbs().String(), c.BasePath())
		}
		cmd.Printf("fallback: %d %s\n", rt.FallbackStatus(), http.StatusText(rt.FallbackStatus()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
