package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/metrics"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/responses"
)

func TestGenerate(t *testing.T) {
	env := newTestEnv()
	env.repo.seed("user-1", 10)

	rec := doRequest(t, env, http.MethodPost, "/generate",
		`{"prompt":"a fox in the snow","style":"watercolor","aspectRatio":"landscape","seed":777,"userId":"user-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp responses.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ImageURL != "https://img.example/abc" {
		t.Errorf("imageUrl = %q", resp.ImageURL)
	}
	if resp.Seed != 777 {
		t.Errorf("seed = %d, want passthrough of 777", resp.Seed)
	}
	if resp.RemainingCredits != 10-generation.Cost {
		t.Errorf("remainingCredits = %v, want %v", resp.RemainingCredits, 10-generation.Cost)
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env, http.MethodPost, "/generate", `{"prompt":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantKind string
	}{
		{
			name:     "missing prompt",
			body:     `{"style":"anime","userId":"user-1"}`,
			wantCode: http.StatusBadRequest,
			wantKind: "VALIDATION",
		},
		{
			name:     "unknown style",
			body:     `{"prompt":"a fox","style":"hologram","userId":"user-1"}`,
			wantCode: http.StatusBadRequest,
			wantKind: "VALIDATION",
		},
		{
			name:     "bad aspect ratio",
			body:     `{"prompt":"a fox","style":"anime","aspectRatio":"ultrawide","userId":"user-1"}`,
			wantCode: http.StatusBadRequest,
			wantKind: "VALIDATION",
		},
		{
			name:     "missing identity",
			body:     `{"prompt":"a fox","style":"anime"}`,
			wantCode: http.StatusUnauthorized,
			wantKind: "UNAUTHORIZED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.repo.seed("user-1", 10)

			rec := doRequest(t, env, http.MethodPost, "/generate", tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.wantCode, rec.Body.String())
			}

			var resp responses.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", resp.Kind, tt.wantKind)
			}
		})
	}
}

// Arbitrary request strings must never become metric label values; every
// style that fails validation lands on one sentinel series.
func TestGenerateRejectedStylesShareOneMetricSeries(t *testing.T) {
	env := newTestEnv()
	env.repo.seed("user-1", 10)

	seriesBefore := testutil.CollectAndCount(metrics.GenerationsTotal)
	invalidBefore := testutil.ToFloat64(metrics.GenerationsTotal.WithLabelValues("invalid", "VALIDATION"))

	for _, style := range []string{"bogus-style-one", "bogus-style-two", "bogus-style-three"} {
		rec := doRequest(t, env, http.MethodPost, "/generate",
			`{"prompt":"a fox","style":"`+style+`","userId":"user-1"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	}

	invalidAfter := testutil.ToFloat64(metrics.GenerationsTotal.WithLabelValues("invalid", "VALIDATION"))
	if got := invalidAfter - invalidBefore; got != 3 {
		t.Errorf("sentinel series grew by %v, want 3", got)
	}

	// The sentinel series above is the only one these requests may add.
	seriesAfter := testutil.CollectAndCount(metrics.GenerationsTotal)
	if seriesAfter > seriesBefore+1 {
		t.Errorf("series count grew from %d to %d, rejected styles leaked into labels", seriesBefore, seriesAfter)
	}
}

func TestGenerateInsufficientCredits(t *testing.T) {
	env := newTestEnv()
	env.repo.seed("user-1", 2)

	rec := doRequest(t, env, http.MethodPost, "/generate",
		`{"prompt":"a fox","style":"anime","userId":"user-1"}`)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want 402, body = %s", rec.Code, rec.Body.String())
	}

	var resp responses.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Kind != "INSUFFICIENT_CREDITS" {
		t.Errorf("kind = %q", resp.Kind)
	}
}

func TestGenerateUnknownUser(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env, http.MethodPost, "/generate",
		`{"prompt":"a fox","style":"anime","userId":"ghost"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	env := newTestEnv()
	env.repo.seed("user-1", 10)
	env.gen.GenerateFunc = func(ctx context.Context, prompt generation.ComposedPrompt) ([]byte, error) {
		return nil, errors.New("model loading")
	}

	rec := doRequest(t, env, http.MethodPost, "/generate",
		`{"prompt":"a fox","style":"anime","userId":"user-1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp responses.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Kind != "GENERATION_PROVIDER_ERROR" {
		t.Errorf("kind = %q", resp.Kind)
	}

	// The failed attempt must not have charged the account.
	acc, err := env.repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if acc.Credits != 10 {
		t.Errorf("credits = %v, want untouched 10", acc.Credits)
	}
}

func TestGenerateHostingFailure(t *testing.T) {
	env := newTestEnv()
	env.repo.seed("user-1", 10)
	env.host.UploadFunc = func(ctx context.Context, data []byte) (*generation.HostedImage, error) {
		return nil, errors.New("upload rejected")
	}

	rec := doRequest(t, env, http.MethodPost, "/generate",
		`{"prompt":"a fox","style":"anime","userId":"user-1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp responses.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Kind != "HOSTING_PROVIDER_ERROR" {
		t.Errorf("kind = %q", resp.Kind)
	}
}
