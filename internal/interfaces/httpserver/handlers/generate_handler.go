package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/infrastructure/metrics"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/requests"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/responses"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// GenerateHandler exposes the generation endpoint.
type GenerateHandler struct {
	service *generation.Service
	log     zerolog.Logger
}

func NewGenerateHandler(service *generation.Service, log zerolog.Logger) *GenerateHandler {
	return &GenerateHandler{
		service: service,
		log:     log.With().Str("component", "generate-handler").Logger(),
	}
}

// Generate godoc
// @Summary      Generate an image
// @Description  Validates the request, charges the account's credit balance and returns the hosted image URL. Credits are only deducted for a fully usable result.
// @Tags         generate
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GenerateRequest  true  "Generation request"
// @Success      200      {object}  responses.GenerateResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Failure      402      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req requests.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "d4f6a8b0-2c4e-4d6f-8a0b-2c4e6d8f0a2c")
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req.ToDomain())
	if err != nil {
		metrics.RecordGeneration(styleLabel(req.Style), errorStatus(err))
		h.log.Error().Err(err).Str("account_id", req.UserID).Msg("generation failed")
		responses.HandleError(c, err, "failed to generate image")
		return
	}

	metrics.RecordGeneration(styleLabel(req.Style), "success")
	metrics.RecordCreditsSpent(generation.Cost)

	c.JSON(http.StatusOK, responses.BuildGenerateResponse(result))
}

// styleLabel keeps metric cardinality bounded: only catalog styles may
// become label values, everything else collapses to one sentinel.
func styleLabel(style string) string {
	if _, ok := generation.StyleFragment(style); ok {
		return style
	}
	return "invalid"
}

func errorStatus(err error) string {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return string(platformErr.GetErrorType())
	}
	return string(platformerrors.ErrorTypeInternal)
}
