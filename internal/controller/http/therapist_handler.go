package http

import (
	"net/http"

	"vlog-hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TherapistHandler struct {
	therapistUseCase usecase.TherapistUseCase
}

func NewTherapistHandler(therapistUseCase usecase.TherapistUseCase) *TherapistHandler {
	return &TherapistHandler{
		therapistUseCase: therapistUseCase,
	}
}

// ListTherapists godoc
// @Summary      List therapists
// @Tags         therapists
// @Produce      json
// @Success      200  {array}   entity.Therapist
// @Failure      500  {object}  ErrorResponse
// @Router       /therapists [get]
func (h *TherapistHandler) ListTherapists(c *gin.Context) {
	therapists, err := h.therapistUseCase.ListTherapists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, therapists)
}
