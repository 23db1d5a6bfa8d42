package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/harou24/nano-banana-cli/internal/config"
	"github.com/harou24/nano-banana-cli/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	apiKeyFlag string
	configFlag string
	verbose    bool
	quiet      bool
	jsonOutput bool

	cfg    = config.Defaults()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "nano-banana",
	Short: "CLI for Google Gemini text and image generation",
	Long: `Send prompts to the Gemini API and print the generated text or save the generated image.

The API key is taken from --api-key, then ` + config.APIKeyEnv + ` (a .env file is
loaded first), then the config file, and finally from the configured secrets
manager ("<tool> secrets get <name>").

Examples:
  $ nano-banana text "Explain quantum computing"
  $ nano-banana image "A banana wearing sunglasses" -o banana.png
  $ nano-banana image "A watercolor fox" --model nano-banana-1`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.New(cmd.ErrOrStderr(), verbose || cfg.Debug)
		if cfg.Path != "" {
			logger.Debug("config loaded", zap.String("path", cfg.Path))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "API key (defaults to "+config.APIKeyEnv+")")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()
	stop()
	if err != nil {
		os.Exit(1)
	}
}
