package providers_test

import (
	"encoding/json"
	"testing"

	"github.com/harou24/nano-banana-cli/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextRequest_Serialization(t *testing.T) {
	t.Parallel()
	for _, prompt := range []string{"Hello", "", "quotes \" and\nnewlines", "ünïcödé 🍌"} {
		got, err := json.Marshal(providers.NewTextRequest(prompt))
		require.NoError(t, err)

		want, err := json.Marshal(map[string]any{
			"contents": []any{
				map[string]any{"parts": []any{map[string]any{"text": prompt}}},
			},
		})
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestNewImageRequest_Serialization(t *testing.T) {
	t.Parallel()
	got, err := json.Marshal(providers.NewImageRequest("A cat"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"contents": [{"parts": [{"text": "A cat"}]}],
		"generationConfig": {"responseModalities": ["TEXT", "IMAGE"]}
	}`, string(got))
}

func TestTextResponse_Deserialization(t *testing.T) {
	t.Parallel()
	var resp providers.GenerateContentResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"candidates": [{"content": {"parts": [{"text": "Hello back!"}]}}]
	}`), &resp))

	require.Len(t, resp.Candidates, 1)
	require.NotNil(t, resp.Candidates[0].Content.Parts[0].Text)
	assert.Equal(t, "Hello back!", *resp.Candidates[0].Content.Parts[0].Text)

	text, err := providers.FirstText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Hello back!", text)
}

func TestImageResponse_Deserialization(t *testing.T) {
	t.Parallel()
	var resp providers.GenerateContentResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"candidates": [{"content": {"parts": [{
			"inlineData": {"mimeType": "image/png", "data": "iVBORw0KGgo="}
		}]}}]
	}`), &resp))

	require.Len(t, resp.Candidates, 1)
	inline := resp.Candidates[0].Content.Parts[0].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/png", inline.MimeType)
	assert.Equal(t, "iVBORw0KGgo=", inline.Data)
	assert.Nil(t, resp.Candidates[0].Content.Parts[0].Text)

	data, err := inline.Decode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, data)
}

func TestFirstText_UsesFirstPartOnly(t *testing.T) {
	t.Parallel()
	first, second := "first", "second"
	resp := providers.GenerateContentResponse{Candidates: []providers.Candidate{
		{Content: providers.CandidateContent{Parts: []providers.ResponsePart{{Text: &first}, {Text: &second}}}},
		{Content: providers.CandidateContent{Parts: []providers.ResponsePart{{Text: &second}}}},
	}}
	text, err := providers.FirstText(resp)
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestFirstText_NoText(t *testing.T) {
	t.Parallel()
	later := "later"
	tests := map[string]providers.GenerateContentResponse{
		"no candidates": {},
		"no parts":      {Candidates: []providers.Candidate{{}}},
		"first part has no text": {Candidates: []providers.Candidate{{Content: providers.CandidateContent{
			Parts: []providers.ResponsePart{{InlineData: &providers.InlineData{}}, {Text: &later}},
		}}}},
	}
	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := providers.FirstText(resp)
			assert.ErrorIs(t, err, providers.ErrNoTextData)
		})
	}
}

func TestFirstText_EmptyTextIsPresent(t *testing.T) {
	t.Parallel()
	empty := ""
	resp := providers.GenerateContentResponse{Candidates: []providers.Candidate{
		{Content: providers.CandidateContent{Parts: []providers.ResponsePart{{Text: &empty}}}},
	}}
	text, err := providers.FirstText(resp)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestFirstInlineData_ScansCandidatesInOrder(t *testing.T) {
	t.Parallel()
	caption := "here you go"
	resp := providers.GenerateContentResponse{Candidates: []providers.Candidate{
		{Content: providers.CandidateContent{Parts: []providers.ResponsePart{{Text: &caption}}}},
		{Content: providers.CandidateContent{Parts: []providers.ResponsePart{
			{Text: &caption},
			{InlineData: &providers.InlineData{MimeType: "image/jpeg", Data: "AAAA"}},
			{InlineData: &providers.InlineData{MimeType: "image/png", Data: "BBBB"}},
		}}},
	}}
	inline, err := providers.FirstInlineData(resp)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", inline.MimeType)
	assert.Equal(t, "AAAA", inline.Data)
}

func TestFirstInlineData_None(t *testing.T) {
	t.Parallel()
	caption := "sorry"
	_, err := providers.FirstInlineData(providers.GenerateContentResponse{})
	assert.ErrorIs(t, err, providers.ErrNoImageData)

	_, err = providers.FirstInlineData(providers.GenerateContentResponse{Candidates: []providers.Candidate{
		{Content: providers.CandidateContent{Parts: []providers.ResponsePart{{Text: &caption}}}},
	}})
	assert.ErrorIs(t, err, providers.ErrNoImageData)
}

func TestInlineData_DecodeInvalid(t *testing.T) {
	t.Parallel()
	_, err := providers.InlineData{MimeType: "image/png", Data: "not base64!!"}.Decode()
	assert.ErrorIs(t, err, providers.ErrDecode)
}
