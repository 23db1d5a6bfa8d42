package cmd

import (
	"fmt"
	"os"

	"github.com/harou24/nano-banana-cli/internal/config"
	"github.com/harou24/nano-banana-cli/internal/credentials"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		path := cfg.Path
		if path == "" {
			path = config.DefaultPath() + " (not found)"
		}

		fmt.Fprintf(w, "Config file:  %s\n", path)
		fmt.Fprintf(w, "API key:      %s\n", describeAPIKey())
		fmt.Fprintf(w, "Image model:  %s\n", cfg.Model)
		fmt.Fprintf(w, "Text model:   %s\n", cfg.TextModel)
		fmt.Fprintf(w, "Output:       %s\n", cfg.Output)
		fmt.Fprintf(w, "Endpoint:     %s/%s\n", cfg.BaseURL, cfg.APIVersion)
		if cfg.Timeout > 0 {
			fmt.Fprintf(w, "Timeout:      %s\n", cfg.Timeout)
		} else {
			fmt.Fprintln(w, "Timeout:      none")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// describeAPIKey reports where the key would come from without running the
// secrets manager.
func describeAPIKey() string {
	switch {
	case apiKeyFlag != "":
		return credentials.Mask(apiKeyFlag) + " (flag)"
	case os.Getenv(config.APIKeyEnv) != "":
		return credentials.Mask(os.Getenv(config.APIKeyEnv)) + " (" + config.APIKeyEnv + ")"
	case cfg.APIKey != "":
		return credentials.Mask(cfg.APIKey) + " (config file)"
	case cfg.SecretsTool != "" && cfg.SecretName != "":
		return credentials.Command{Tool: cfg.SecretsTool, Secret: cfg.SecretName}.Name()
	default:
		return "(not set)"
	}
}
