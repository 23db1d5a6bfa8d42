package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harou24/nano-banana-cli/internal/config"
	"github.com/harou24/nano-banana-cli/internal/credentials"
	"github.com/harou24/nano-banana-cli/internal/output"
	"github.com/harou24/nano-banana-cli/internal/providers"
	"github.com/spf13/cobra"
)

type CLIOutput struct {
	Success  bool   `json:"success"`
	Model    string `json:"model,omitempty"`
	Content  string `json:"content,omitempty"`
	Path     string `json:"path,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Error    string `json:"error,omitempty"`
}

var textCmd = &cobra.Command{
	Use:   "text <prompt>",
	Short: "Generate text using Gemini",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := CLIOutput{Model: cfg.TextModel}

		provider, err := getProvider(ctx)
		if err != nil {
			return formatOutput(cmd, out, fmt.Errorf("provider setup failed: %w", err))
		}

		stop := startSpinner(cmd, "Generating text...")
		text, err := provider.GenerateText(ctx, args[0])
		stop()
		if err != nil {
			return formatOutput(cmd, out, err)
		}

		out.Content = text
		return formatOutput(cmd, out, nil)
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func formatOutput(cmd *cobra.Command, out CLIOutput, err error) error {
	w := cmd.OutOrStdout()

	if jsonOutput {
		out.Success = err == nil
		if err != nil {
			out.Error = err.Error()
		}
		jsonData, _ := json.Marshal(out)
		fmt.Fprintln(w, string(jsonData))
		return err
	}

	if err != nil {
		return err
	}

	switch {
	case out.Path != "":
		fmt.Fprintf(w, "Image saved to: %s\n", out.Path)
		fmt.Fprintf(w, "Mime type: %s\n", out.MimeType)
	default:
		fmt.Fprintln(w, out.Content)
	}
	return nil
}

func startSpinner(cmd *cobra.Command, msg string) func() {
	if quiet || jsonOutput {
		return func() {}
	}
	return output.StartSpinner(cmd.ErrOrStderr(), msg)
}

func getProvider(ctx context.Context) (providers.Provider, error) {
	key, err := getAPIKey(ctx)
	if err != nil {
		return nil, err
	}

	return providers.NewGemini(providers.Config{
		APIKey:     key,
		BaseURL:    cfg.BaseURL,
		APIVersion: cfg.APIVersion,
		TextModel:  cfg.TextModel,
		Timeout:    cfg.Timeout,
		Logger:     logger,
	}), nil
}

func getAPIKey(ctx context.Context) (string, error) {
	resolver := credentials.NewResolver(logger,
		credentials.Explicit(apiKeyFlag),
		credentials.Env(config.APIKeyEnv),
		credentials.Static{Label: "config file", Value: cfg.APIKey},
		credentials.Command{Tool: cfg.SecretsTool, Secret: cfg.SecretName},
	)
	return resolver.Resolve(ctx)
}
