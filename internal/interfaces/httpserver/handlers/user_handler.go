package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Friteabc/ArtMinds-2/internal/domain/account"
	"github.com/Friteabc/ArtMinds-2/internal/domain/generation"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/requests"
	"github.com/Friteabc/ArtMinds-2/internal/interfaces/httpserver/responses"
	"github.com/Friteabc/ArtMinds-2/internal/utils/platformerrors"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	accounts    *account.Service
	generations *generation.Service
	log         zerolog.Logger
}

func NewUserHandler(accounts *account.Service, generations *generation.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		accounts:    accounts,
		generations: generations,
		log:         log.With().Str("component", "user-handler").Logger(),
	}
}

// Register godoc
// @Summary      Upsert an account
// @Description  Creates the account on first sign-in with the starting balance; later calls return the existing record unchanged apart from an email re-sync.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      requests.RegisterUserRequest  true  "Account identity"
// @Success      200      {object}  responses.UserResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req requests.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "b2d4f6a8-0c2e-4b4d-8f6a-0c2e4b6d8f0a")
		return
	}

	acc, err := h.accounts.Register(c.Request.Context(), req.ID, req.Email)
	if err != nil {
		h.log.Error().Err(err).Str("account_id", req.ID).Msg("register failed")
		responses.HandleError(c, err, "failed to register account")
		return
	}

	c.JSON(http.StatusOK, responses.BuildUserResponse(acc))
}

// Get godoc
// @Summary      Fetch an account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  responses.UserResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	acc, err := h.accounts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to fetch account")
		return
	}

	c.JSON(http.StatusOK, responses.BuildUserResponse(acc))
}

// History godoc
// @Summary      List past generations for an account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  responses.HistoryResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /users/{id}/generations [get]
func (h *UserHandler) History(c *gin.Context) {
	records, err := h.generations.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to list generations")
		return
	}

	c.JSON(http.StatusOK, responses.BuildHistoryResponse(records))
}
