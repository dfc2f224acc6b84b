package imgbb

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/config"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/metrics"
)

// Client uploads image bytes to an imgbb-style hosting API and returns
// the durable public URL plus the optional deletion handle.
type Client struct {
	httpClient *resty.Client
	endpoint   string
	apiKey     string
	log        zerolog.Logger
}

var _ generation.Host = (*Client)(nil)

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.HostingTimeout).
		SetHeader("User-Agent", "ArtMinds/2.0")

	return &Client{
		httpClient: httpClient,
		endpoint:   cfg.HostingAPIURL,
		apiKey:     cfg.HostingAPIKey,
		log:        log.With().Str("component", "imgbb-client").Logger(),
	}
}

type uploadResponse struct {
	Data struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
		DeleteURL  string `json:"delete_url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Upload posts the image as a base64 form field and returns the hosted
// image references.
func (c *Client) Upload(ctx context.Context, data []byte) (*generation.HostedImage, error) {
	var result uploadResponse

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetFormData(map[string]string{
			"image": base64.StdEncoding.EncodeToString(data),
		}).
		SetResult(&result).
		Post(c.endpoint)
	if err != nil {
		metrics.RecordProviderCall("hosting", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("call image hosting API: %w", err)
	}

	if resp.IsError() || !result.Success {
		metrics.RecordProviderCall("hosting", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("image hosting API error (status %d): %s", resp.StatusCode(), resp.String())
	}
	if result.Data.URL == "" {
		metrics.RecordProviderCall("hosting", "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("image hosting API returned no URL")
	}
	metrics.RecordProviderCall("hosting", "success", time.Since(start).Seconds())

	c.log.Debug().
		Str("url", result.Data.URL).
		Dur("duration", time.Since(start)).
		Msg("image uploaded")

	return &generation.HostedImage{
		URL:        result.Data.URL,
		DisplayURL: result.Data.DisplayURL,
		DeleteURL:  result.Data.DeleteURL,
	}, nil
}
