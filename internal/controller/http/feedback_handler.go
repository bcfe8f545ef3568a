package http

import (
	"net/http"

	"vlog-hub/internal/usecase"
	"vlog-hub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUseCase usecase.FeedbackUseCase
}

func NewFeedbackHandler(feedbackUseCase usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUseCase: feedbackUseCase,
	}
}

type FeedbackRequest struct {
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback"`
	Therapist string `json:"therapist"`
	Anonymous bool   `json:"anonymous"`
}

func (r FeedbackRequest) input() usecase.FeedbackInput {
	return usecase.FeedbackInput{
		Rating:    r.Rating,
		Feedback:  r.Feedback,
		Therapist: r.Therapist,
		Anonymous: r.Anonymous,
	}
}

// CreateFeedback godoc
// @Summary      Submit feedback
// @Description  Rate a therapist. With anonymous set the entry is shown as "Anonymous".
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FeedbackRequest true "Feedback"
// @Success      201  {object}  entity.Feedback
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	feedback, err := h.feedbackUseCase.CreateFeedback(c.Request.Context(), middleware.ActorFrom(c), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback godoc
// @Summary      List feedback
// @Description  All feedback, newest first, optionally for one therapist
// @Tags         feedback
// @Produce      json
// @Param        therapist query string false "Therapist identifier"
// @Success      200  {array}   entity.Feedback
// @Failure      500  {object}  ErrorResponse
// @Router       /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	feedbacks, err := h.feedbackUseCase.ListFeedback(c.Request.Context(), c.Query("therapist"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

// ListMyFeedback godoc
// @Summary      List my feedback
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Feedback
// @Failure      401  {object}  ErrorResponse
// @Router       /feedback/my-feedbacks [get]
func (h *FeedbackHandler) ListMyFeedback(c *gin.Context) {
	feedbacks, err := h.feedbackUseCase.ListMyFeedback(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

// UpdateFeedback godoc
// @Summary      Update feedback
// @Description  Owner only. Replaces rating, text and therapist.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Feedback ID"
// @Param        request body FeedbackRequest true "Feedback"
// @Success      200  {object}  entity.Feedback
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /feedback/{id} [put]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	var req FeedbackRequest
	input := usecase.FeedbackInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		input.Invalid = err
	} else {
		input = req.input()
	}

	feedback, err := h.feedbackUseCase.UpdateFeedback(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

type DeleteFeedbackResponse struct {
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

// DeleteFeedback godoc
// @Summary      Delete feedback
// @Description  Allowed for the owner and for admins.
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Feedback ID"
// @Success      200  {object}  DeleteFeedbackResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	feedbackID := c.Param("id")
	if err := h.feedbackUseCase.DeleteFeedback(c.Request.Context(), middleware.ActorFrom(c), feedbackID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteFeedbackResponse{
		Message:   "Feedback deleted successfully",
		DeletedID: feedbackID,
	})
}
