package generation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name      string
		raw       generation.RawRequest
		wantErr   platformerrors.ErrorType
		wantRatio generation.AspectRatio
		wantNeg   string
	}{
		{
			name: "valid request with explicit fields",
			raw: generation.RawRequest{
				Prompt:         "a castle on a hill",
				NegativePrompt: "fog",
				Style:          "anime",
				AspectRatio:    "landscape",
				Seed:           int64Ptr(42),
				UserID:         "user-1",
			},
			wantRatio: generation.AspectRatioLandscape,
			wantNeg:   "fog",
		},
		{
			name: "missing aspect ratio defaults to square",
			raw: generation.RawRequest{
				Prompt: "a castle",
				Style:  "realistic",
				UserID: "user-1",
			},
			wantRatio: generation.AspectRatioSquare,
			wantNeg:   generation.DefaultNegativePrompt,
		},
		{
			name: "missing negative prompt gets the default",
			raw: generation.RawRequest{
				Prompt:      "a castle",
				Style:       "realistic",
				AspectRatio: "portrait",
				UserID:      "user-1",
			},
			wantRatio: generation.AspectRatioPortrait,
			wantNeg:   generation.DefaultNegativePrompt,
		},
		{
			name: "whitespace-only negative prompt gets the default",
			raw: generation.RawRequest{
				Prompt:         "a castle",
				NegativePrompt: "   ",
				Style:          "realistic",
				UserID:         "user-1",
			},
			wantRatio: generation.AspectRatioSquare,
			wantNeg:   generation.DefaultNegativePrompt,
		},
		{
			name: "empty prompt",
			raw: generation.RawRequest{
				Style:  "realistic",
				UserID: "user-1",
			},
			wantErr: platformerrors.ErrorTypeValidation,
		},
		{
			name: "whitespace-only prompt",
			raw: generation.RawRequest{
				Prompt: "   ",
				Style:  "realistic",
				UserID: "user-1",
			},
			wantErr: platformerrors.ErrorTypeValidation,
		},
		{
			name: "unknown style",
			raw: generation.RawRequest{
				Prompt: "a castle",
				Style:  "baroque-hologram",
				UserID: "user-1",
			},
			wantErr: platformerrors.ErrorTypeValidation,
		},
		{
			name: "empty style",
			raw: generation.RawRequest{
				Prompt: "a castle",
				UserID: "user-1",
			},
			wantErr: platformerrors.ErrorTypeValidation,
		},
		{
			name: "unsupported aspect ratio",
			raw: generation.RawRequest{
				Prompt:      "a castle",
				Style:       "realistic",
				AspectRatio: "ultrawide",
				UserID:      "user-1",
			},
			wantErr: platformerrors.ErrorTypeValidation,
		},
		{
			name: "missing identity",
			raw: generation.RawRequest{
				Prompt: "a castle",
				Style:  "realistic",
			},
			wantErr: platformerrors.ErrorTypeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := generation.ValidateRequest(context.Background(), tt.raw)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected %s error, got request %+v", tt.wantErr, req)
				}
				if !platformerrors.IsErrorType(err, tt.wantErr) {
					t.Fatalf("expected %s error, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.AspectRatio != tt.wantRatio {
				t.Errorf("aspect ratio = %q, want %q", req.AspectRatio, tt.wantRatio)
			}
			if req.NegativePrompt != tt.wantNeg {
				t.Errorf("negative prompt = %q, want %q", req.NegativePrompt, tt.wantNeg)
			}
			if req.AccountID != tt.raw.UserID {
				t.Errorf("account id = %q, want %q", req.AccountID, tt.raw.UserID)
			}
		})
	}
}

func TestValidateRequestFieldOrder(t *testing.T) {
	// Both prompt and style are bad; the prompt rule runs first.
	_, err := generation.ValidateRequest(context.Background(), generation.RawRequest{
		Style:  "no-such-style",
		UserID: "user-1",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) && platformErr.Message != "prompt is required" {
		t.Errorf("message = %q, want prompt rule to fire first", platformErr.Message)
	}
}
