package providers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Provider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string, model ImageModel) (Image, error)
}

// Image is a decoded inline-data payload.
type Image struct {
	MimeType string
	Data     []byte
}

type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	TextModel  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}
