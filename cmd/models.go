package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harou24/nano-banana-cli/internal/providers"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models the CLI can target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		models := providers.Models(cfg.TextModel)
		w := cmd.OutOrStdout()

		if jsonOutput {
			jsonData, err := json.MarshalIndent(models, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(jsonData))
			return nil
		}

		printModelTable(w, models)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func printModelTable(w io.Writer, models []providers.Model) {
	fmt.Fprintln(w, "┌────────────────┬────────────────────────────────┬─────────────┬─────────┐")
	fmt.Fprintln(w, "│ Alias          │ Model ID                       │ Modalities  │ Default │")
	fmt.Fprintln(w, "├────────────────┼────────────────────────────────┼─────────────┼─────────┤")
	for _, m := range models {
		fmt.Fprintf(w, "│ %-14s │ %-30s │ %-11s │ %-7v │\n",
			truncate(m.Alias, 14),
			truncate(m.ID, 30),
			truncate(strings.Join(m.Modalities, "+"), 11),
			m.Default)
	}
	fmt.Fprintln(w, "└────────────────┴────────────────────────────────┴─────────────┴─────────┘")
}

func truncate(s string, length int) string {
	if len(s) > length {
		return s[:length-3] + "..."
	}
	return s
}
