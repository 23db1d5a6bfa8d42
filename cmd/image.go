package cmd

import (
	"fmt"

	"github.com/harou24/nano-banana-cli/internal/output"
	"github.com/harou24/nano-banana-cli/internal/providers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFlag string
	modelFlag  providers.ImageModel
)

var imageCmd = &cobra.Command{
	Use:   "image <prompt>",
	Short: "Generate an image using Nano Banana",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		model := modelFlag
		if model == "" {
			var err error
			if model, err = providers.ParseImageModel(cfg.Model); err != nil {
				return formatOutput(cmd, CLIOutput{}, fmt.Errorf("config: %w", err))
			}
		}

		path := outputFlag
		if path == "" {
			path = cfg.Output
		}
		out := CLIOutput{Model: model.ID()}

		provider, err := getProvider(ctx)
		if err != nil {
			return formatOutput(cmd, out, fmt.Errorf("provider setup failed: %w", err))
		}

		stop := startSpinner(cmd, "Generating image...")
		img, err := provider.GenerateImage(ctx, args[0], model)
		stop()
		if err != nil {
			return formatOutput(cmd, out, err)
		}

		if err := output.WriteFile(path, img.Data); err != nil {
			return formatOutput(cmd, out, err)
		}
		logger.Debug("image written",
			zap.String("path", path),
			zap.String("mime", img.MimeType),
			zap.Int("bytes", len(img.Data)))

		out.Path = path
		out.MimeType = img.MimeType
		return formatOutput(cmd, out, nil)
	},
}

func init() {
	imageCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default output.png)")
	imageCmd.Flags().VarP(&modelFlag, "model", "m", "Image model (nano-banana-1|nano-banana-2, default nano-banana-2)")
	rootCmd.AddCommand(imageCmd)
}
