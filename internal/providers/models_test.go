package providers_test

import (
	"testing"

	"github.com/harou24/nano-banana-cli/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageModel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want providers.ImageModel
	}{
		{"", providers.NanoBanana2},
		{"nano-banana-1", providers.NanoBanana1},
		{"nano-banana-2", providers.NanoBanana2},
		{" Nano-Banana-1 ", providers.NanoBanana1},
	}
	for _, tt := range tests {
		got, err := providers.ParseImageModel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := providers.ParseImageModel("nano-banana-3")
	assert.ErrorIs(t, err, providers.ErrUnknownModel)
}

func TestImageModel_IDs(t *testing.T) {
	t.Parallel()
	models := providers.ImageModels()
	require.Len(t, models, 2)

	seen := map[string]bool{}
	for _, m := range models {
		assert.NotEmpty(t, m.ID(), m)
		seen[m.ID()] = true
	}
	assert.Len(t, seen, 2)
	assert.Equal(t, providers.NanoBanana2, providers.DefaultImageModel)
	assert.Empty(t, providers.ImageModel("bogus").ID())
}

func TestImageModel_FlagValue(t *testing.T) {
	t.Parallel()
	var m providers.ImageModel
	require.NoError(t, m.Set("nano-banana-1"))
	assert.Equal(t, "nano-banana-1", m.String())
	assert.Equal(t, "model", m.Type())
	assert.Error(t, m.Set("flash"))
	assert.Equal(t, providers.NanoBanana1, m)
}

func TestModels(t *testing.T) {
	t.Parallel()
	models := providers.Models("")
	require.Len(t, models, 3)
	assert.Equal(t, providers.DefaultTextModel, models[0].ID)

	var defaults []string
	for i, m := range models[1:] {
		assert.Equal(t, providers.ImageModels()[i].ID(), m.ID)
		assert.Equal(t, []string{"TEXT", "IMAGE"}, m.Modalities)
		assert.NotEmpty(t, m.Description)
		if m.Default {
			defaults = append(defaults, m.Alias)
		}
	}
	assert.Equal(t, []string{"nano-banana-2"}, defaults)

	assert.Equal(t, "custom-text", providers.Models("custom-text")[0].ID)
}
