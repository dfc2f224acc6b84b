package huggingface

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/config"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/metrics"
)

// Client calls a HuggingFace-style inference endpoint that answers a JSON
// prompt payload with raw image bytes.
type Client struct {
	httpClient *resty.Client
	endpoint   string
	apiKey     string
	log        zerolog.Logger
}

var _ generation.Generator = (*Client)(nil)

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.GenerationTimeout).
		SetHeader("User-Agent", "ArtMinds/2.0")

	return &Client{
		httpClient: httpClient,
		endpoint:   cfg.GenerationAPIURL,
		apiKey:     cfg.GenerationAPIKey,
		log:        log.With().Str("component", "huggingface-client").Logger(),
	}
}

type inferenceParameters struct {
	NegativePrompt    string  `json:"negative_prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Seed              int64   `json:"seed"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

// Generate submits the composed prompt and returns the raw image bytes.
// Any transport failure or non-2xx response is an error; the caller
// decides what that means for the request.
func (c *Client) Generate(ctx context.Context, prompt generation.ComposedPrompt) ([]byte, error) {
	body := inferenceRequest{
		Inputs: prompt.FinalPrompt,
		Parameters: inferenceParameters{
			NegativePrompt:    prompt.NegativePrompt,
			NumInferenceSteps: generation.InferenceSteps,
			GuidanceScale:     generation.GuidanceScale,
			Seed:              prompt.Seed,
			Width:             prompt.Width,
			Height:            prompt.Height,
		},
	}

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		metrics.RecordProviderCall("generation", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("call image generation API: %w", err)
	}

	if resp.IsError() {
		metrics.RecordProviderCall("generation", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("image generation API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	// Some inference backends answer 200 with a JSON body (queue notice,
	// wrapped error) instead of image bytes; sniff before accepting.
	if detected := mimetype.Detect(resp.Body()); !strings.HasPrefix(detected.String(), "image/") {
		metrics.RecordProviderCall("generation", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("image generation API returned %s payload, not an image", detected.String())
	}
	metrics.RecordProviderCall("generation", "success", time.Since(start).Seconds())

	c.log.Debug().
		Int("bytes", len(resp.Body())).
		Int64("seed", prompt.Seed).
		Dur("duration", time.Since(start)).
		Msg("image generated")

	return resp.Body(), nil
}
