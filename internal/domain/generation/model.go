package generation

import "time"

// Generation constants. Cost is charged uniformly regardless of aspect
// ratio or style; the model parameters match what the provider was tuned
// against.
const (
	Cost           = 3.5
	InferenceSteps = 60
	GuidanceScale  = 8.0
)

// DefaultNegativePrompt is the baseline avoid-list applied when the
// request carries no negative prompt of its own.
const DefaultNegativePrompt = "blurry, low quality, lowres, distorted, deformed, bad anatomy, extra limbs, watermark, signature, text"

// AspectRatio selects one of the fixed output dimension pairs.
type AspectRatio string

const (
	AspectRatioSquare    AspectRatio = "square"
	AspectRatioLandscape AspectRatio = "landscape"
	AspectRatioPortrait  AspectRatio = "portrait"
)

// Dimensions is a resolved (width, height) pair in pixels.
type Dimensions struct {
	Width  int
	Height int
}

var aspectRatioDimensions = map[AspectRatio]Dimensions{
	AspectRatioSquare:    {Width: 1024, Height: 1024},
	AspectRatioLandscape: {Width: 1280, Height: 768},
	AspectRatioPortrait:  {Width: 768, Height: 1280},
}

// RawRequest is the inbound, untrusted request payload. Field names match
// the wire contract consumed by the web client.
type RawRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt"`
	Style          string `json:"style"`
	AspectRatio    string `json:"aspectRatio"`
	Seed           *int64 `json:"seed"`
	UserID         string `json:"userId"`
}

// Request is the canonical, validated generation spec. Constructed per
// request, consumed once by the orchestrator, never persisted.
type Request struct {
	Prompt         string
	NegativePrompt string
	Style          string
	AspectRatio    AspectRatio
	Seed           *int64
	AccountID      string
}

// ComposedPrompt is the final model input derived from a canonical Request.
type ComposedPrompt struct {
	FinalPrompt    string
	NegativePrompt string
	Width          int
	Height         int
	Seed           int64
}

// HostedImage is what the hosting provider returns for an upload.
type HostedImage struct {
	URL        string
	DisplayURL string
	DeleteURL  string
}

// Result is returned to the caller after a fully successful generation.
type Result struct {
	ImageURL         string  `json:"imageUrl"`
	DisplayURL       string  `json:"displayUrl,omitempty"`
	DeleteURL        string  `json:"deleteUrl,omitempty"`
	Seed             int64   `json:"seed"`
	RemainingCredits float64 `json:"remainingCredits"`
}

// Record is the persisted history entry for a successful generation.
type Record struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	Prompt         string    `json:"prompt"`
	NegativePrompt string    `json:"negativePrompt"`
	Style          string    `json:"style"`
	Seed           int64     `json:"seed"`
	ImageURL       string    `json:"imageUrl"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	CreatedAt      time.Time `json:"createdAt"`
}
