package huggingface_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/config"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/huggingface"
)

func newClient(t *testing.T, url string) *huggingface.Client {
	t.Helper()
	cfg := &config.Config{
		GenerationAPIURL: url,
		GenerationAPIKey: "hf_test",
	}
	return huggingface.NewClient(cfg, zerolog.Nop())
}

func TestGenerateSendsInferencePayload(t *testing.T) {
	var captured struct {
		Inputs     string `json:"inputs"`
		Parameters struct {
			NegativePrompt    string  `json:"negative_prompt"`
			NumInferenceSteps int     `json:"num_inference_steps"`
			GuidanceScale     float64 `json:"guidance_scale"`
			Seed              int64   `json:"seed"`
			Width             int     `json:"width"`
			Height            int     `json:"height"`
		} `json:"parameters"`
	}

	pngPayload := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, []byte("rest-of-image")...)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer hf_test" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write(pngPayload)
	}))
	defer server.Close()

	client := newClient(t, server.URL)
	data, err := client.Generate(context.Background(), generation.ComposedPrompt{
		FinalPrompt:    "a fox, watercolor painting",
		NegativePrompt: "blurry",
		Width:          1280,
		Height:         768,
		Seed:           42,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !bytes.Equal(data, pngPayload) {
		t.Errorf("body = %q", data)
	}
	if captured.Inputs != "a fox, watercolor painting" {
		t.Errorf("inputs = %q", captured.Inputs)
	}
	if captured.Parameters.NumInferenceSteps != generation.InferenceSteps {
		t.Errorf("steps = %d, want %d", captured.Parameters.NumInferenceSteps, generation.InferenceSteps)
	}
	if captured.Parameters.GuidanceScale != generation.GuidanceScale {
		t.Errorf("guidance = %v, want %v", captured.Parameters.GuidanceScale, generation.GuidanceScale)
	}
	if captured.Parameters.Seed != 42 || captured.Parameters.Width != 1280 || captured.Parameters.Height != 768 {
		t.Errorf("parameters = %+v", captured.Parameters)
	}
}

func TestGenerateRejectsNonImagePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"estimated_time":42.0}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL)
	_, err := client.Generate(context.Background(), generation.ComposedPrompt{FinalPrompt: "a fox"})
	if err == nil {
		t.Fatal("expected an error on a JSON body with a 200 status")
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model is loading"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newClient(t, server.URL)
	_, err := client.Generate(context.Background(), generation.ComposedPrompt{FinalPrompt: "a fox"})
	if err == nil {
		t.Fatal("expected an error on a 503 response")
	}
}
