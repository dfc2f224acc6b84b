package generation_test

import (
	"strings"
	"testing"

	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
)

func TestComposePromptOrderAndDimensions(t *testing.T) {
	composer := generation.NewComposer()

	tests := []struct {
		name       string
		ratio      generation.AspectRatio
		wantWidth  int
		wantHeight int
	}{
		{"square", generation.AspectRatioSquare, 1024, 1024},
		{"landscape", generation.AspectRatioLandscape, 1280, 768},
		{"portrait", generation.AspectRatioPortrait, 768, 1280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composed := composer.Compose(&generation.Request{
				Prompt:         "a lighthouse at dusk",
				NegativePrompt: "fog",
				Style:          "noir",
				AspectRatio:    tt.ratio,
			})

			fragment, _ := generation.StyleFragment("noir")
			want := "a lighthouse at dusk, " + fragment
			if composed.FinalPrompt != want {
				t.Errorf("final prompt = %q, want %q", composed.FinalPrompt, want)
			}
			if !strings.HasPrefix(composed.FinalPrompt, "a lighthouse at dusk") {
				t.Error("user prompt must come before the style fragment")
			}
			if composed.Width != tt.wantWidth || composed.Height != tt.wantHeight {
				t.Errorf("dimensions = %dx%d, want %dx%d", composed.Width, composed.Height, tt.wantWidth, tt.wantHeight)
			}
			if composed.NegativePrompt != "fog" {
				t.Errorf("negative prompt = %q, want passthrough", composed.NegativePrompt)
			}
		})
	}
}

func TestComposeSeedPassthrough(t *testing.T) {
	composer := generation.NewComposer()
	seed := int64(123456789)

	composed := composer.Compose(&generation.Request{
		Prompt:      "a lighthouse",
		Style:       "noir",
		AspectRatio: generation.AspectRatioSquare,
		Seed:        &seed,
	})

	if composed.Seed != seed {
		t.Errorf("seed = %d, want exact passthrough of %d", composed.Seed, seed)
	}
}

func TestComposeRandomSeedRange(t *testing.T) {
	composer := generation.NewComposer()
	req := &generation.Request{
		Prompt:      "a lighthouse",
		Style:       "noir",
		AspectRatio: generation.AspectRatioSquare,
	}

	const maxSeed = int64(1) << 32
	for i := 0; i < 1000; i++ {
		composed := composer.Compose(req)
		if composed.Seed < 0 || composed.Seed >= maxSeed {
			t.Fatalf("seed %d outside [0, 2^32)", composed.Seed)
		}
	}
}
