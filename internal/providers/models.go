package providers

import (
	"fmt"
	"strings"
)

const DefaultTextModel = "gemini-2.0-flash"

// ImageModel selects the upstream image generation model. It implements
// pflag.Value so it can be bound directly to a command flag.
type ImageModel string

const (
	NanoBanana1 ImageModel = "nano-banana-1"
	NanoBanana2 ImageModel = "nano-banana-2"

	DefaultImageModel = NanoBanana2
)

var imageModelIDs = map[ImageModel]string{
	NanoBanana1: "gemini-2.5-flash-image",
	NanoBanana2: "gemini-3.1-flash-image-preview",
}

var imageModelDescriptions = map[ImageModel]string{
	NanoBanana1: "Nano Banana image generation",
	NanoBanana2: "Nano Banana 2 image generation",
}

// ImageModels returns the selectable image models, oldest first.
func ImageModels() []ImageModel {
	return []ImageModel{NanoBanana1, NanoBanana2}
}

// ParseImageModel maps a selector name to an ImageModel. An empty name
// selects DefaultImageModel.
func ParseImageModel(name string) (ImageModel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultImageModel, nil
	}
	m := ImageModel(name)
	if _, ok := imageModelIDs[m]; !ok {
		return "", fmt.Errorf("%w %q (valid: %s, %s)", ErrUnknownModel, name, NanoBanana1, NanoBanana2)
	}
	return m, nil
}

// ID returns the upstream model identifier used in the endpoint path.
func (m ImageModel) ID() string {
	return imageModelIDs[m]
}

func (m ImageModel) String() string {
	return string(m)
}

func (m *ImageModel) Set(value string) error {
	parsed, err := ParseImageModel(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *ImageModel) Type() string {
	return "model"
}

type Model struct {
	Alias       string   `json:"alias"`
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Modalities  []string `json:"modalities"`
	Default     bool     `json:"default"`
}

// Models describes every model the CLI can target. textModel overrides
// DefaultTextModel when non-empty.
func Models(textModel string) []Model {
	if textModel == "" {
		textModel = DefaultTextModel
	}
	models := []Model{
		{
			Alias:       "text",
			ID:          textModel,
			Description: "Text generation",
			Modalities:  []string{"TEXT"},
			Default:     true,
		},
	}
	for _, m := range ImageModels() {
		models = append(models, Model{
			Alias:       string(m),
			ID:          m.ID(),
			Description: imageModelDescriptions[m],
			Modalities:  append([]string(nil), imageModalities...),
			Default:     m == DefaultImageModel,
		})
	}
	return models
}
