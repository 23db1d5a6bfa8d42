package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harou24/nano-banana-cli/internal/credentials"
	"go.uber.org/zap"
)

const (
	geminiBaseURL    = "https://generativelanguage.googleapis.com"
	geminiAPIVersion = "v1beta"
)

type Gemini struct {
	config Config
	client *http.Client
	logger *zap.Logger
}

func NewGemini(config Config) *Gemini {
	config.BaseURL = strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if config.BaseURL == "" {
		config.BaseURL = geminiBaseURL
	}
	config.APIVersion = strings.Trim(strings.TrimSpace(config.APIVersion), "/")
	if config.APIVersion == "" {
		config.APIVersion = geminiAPIVersion
	}
	if config.TextModel == "" {
		config.TextModel = DefaultTextModel
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Gemini{
		config: config,
		client: client,
		logger: logger,
	}
}

func (p *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := p.generateContent(ctx, p.config.TextModel, NewTextRequest(prompt))
	if err != nil {
		return "", err
	}
	return FirstText(resp)
}

func (p *Gemini) GenerateImage(ctx context.Context, prompt string, model ImageModel) (Image, error) {
	id := model.ID()
	if id == "" {
		return Image{}, fmt.Errorf("%w %q", ErrUnknownModel, model)
	}

	resp, err := p.generateContent(ctx, id, NewImageRequest(prompt))
	if err != nil {
		return Image{}, err
	}

	inline, err := FirstInlineData(resp)
	if err != nil {
		return Image{}, err
	}
	data, err := inline.Decode()
	if err != nil {
		return Image{}, err
	}

	return Image{MimeType: inline.MimeType, Data: data}, nil
}

func (p *Gemini) endpoint(model, key string) string {
	return fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		p.config.BaseURL, p.config.APIVersion, model, url.QueryEscape(key))
}

func (p *Gemini) generateContent(ctx context.Context, model string, payload GenerateContentRequest) (GenerateContentResponse, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return GenerateContentResponse{}, fmt.Errorf("marshal error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(model, p.config.APIKey), bytes.NewReader(jsonData))
	if err != nil {
		return GenerateContentResponse{}, fmt.Errorf("%w: request creation failed: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.logger.Debug("sending request",
		zap.String("url", p.endpoint(model, credentials.Mask(p.config.APIKey))),
		zap.String("model", model),
		zap.Int("bytes", len(jsonData)))

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return GenerateContentResponse{}, fmt.Errorf("%w: API request failed: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return GenerateContentResponse{}, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	p.logger.Debug("received response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
		zap.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return GenerateContentResponse{}, newAPIError(resp, body)
	}

	var response GenerateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return GenerateContentResponse{}, fmt.Errorf("%w: response parsing failed: %w", ErrDeserialization, err)
	}
	if response.Error != nil {
		return GenerateContentResponse{}, &APIError{
			StatusCode: resp.StatusCode,
			Status:     response.Error.Status,
			Message:    response.Error.Message,
		}
	}

	return response, nil
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Message:    strings.TrimSpace(string(body)),
	}

	var decoded GenerateContentResponse
	if json.Unmarshal(body, &decoded) == nil && decoded.Error != nil && decoded.Error.Message != "" {
		apiErr.Message = decoded.Error.Message
		if decoded.Error.Status != "" {
			apiErr.Status = decoded.Error.Status
		}
	}
	return apiErr
}
