package providers

import (
	"encoding/base64"
	"fmt"
)

var imageModalities = []string{"TEXT", "IMAGE"}

type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type GenerationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *apiStatus  `json:"error,omitempty"`
}

type Candidate struct {
	Content CandidateContent `json:"content"`
}

type CandidateContent struct {
	Parts []ResponsePart `json:"parts"`
}

// ResponsePart carries either text or inline data. Both fields are optional.
type ResponsePart struct {
	Text       *string     `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type apiStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func NewTextRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}
}

func NewImageRequest(prompt string) GenerateContentRequest {
	req := NewTextRequest(prompt)
	req.GenerationConfig = &GenerationConfig{
		ResponseModalities: append([]string(nil), imageModalities...),
	}
	return req
}

// FirstText returns the text of the first part of the first candidate.
func FirstText(resp GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrNoTextData
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == nil {
		return "", ErrNoTextData
	}
	return *parts[0].Text, nil
}

// FirstInlineData scans every candidate and part in order and returns the
// first inline-data payload found.
func FirstInlineData(resp GenerateContentResponse) (InlineData, error) {
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil {
				return *part.InlineData, nil
			}
		}
	}
	return InlineData{}, ErrNoImageData
}

func (d InlineData) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(d.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return data, nil
}
