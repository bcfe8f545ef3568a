package http

import (
	"net/http"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/usecase"
	"vlog-hub/pkg/apperror"
	"vlog-hub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type VlogHandler struct {
	vlogUseCase usecase.VlogUseCase
}

func NewVlogHandler(vlogUseCase usecase.VlogUseCase) *VlogHandler {
	return &VlogHandler{
		vlogUseCase: vlogUseCase,
	}
}

type CreateVlogRequest struct {
	Title      string `json:"title" binding:"required"`
	CoverImage string `json:"coverImage"`
	Content    string `json:"content" binding:"required"`
	Category   string `json:"category"`
}

// UpdateVlogRequest fields left empty keep their current value.
type UpdateVlogRequest struct {
	Title      string `json:"title"`
	CoverImage string `json:"coverImage"`
	Content    string `json:"content"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type CoverImageResponse struct {
	URL string `json:"url"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ListVlogs godoc
// @Summary      List approved vlogs
// @Description  Get approved vlogs, newest first, with an optional category filter
// @Tags         vlogs
// @Produce      json
// @Param        category query string false "Filter by category"
// @Success      200  {array}   VlogResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /vlogs [get]
func (h *VlogHandler) ListVlogs(c *gin.Context) {
	vlogs, err := h.vlogUseCase.ListApproved(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVlogListResponse(vlogs, middleware.ActorFrom(c)))
}

// ListPendingVlogs godoc
// @Summary      List pending vlogs
// @Description  Moderation queue, oldest first. Admin only.
// @Tags         vlogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   VlogResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /vlogs/pending [get]
func (h *VlogHandler) ListPendingVlogs(c *gin.Context) {
	vlogs, err := h.vlogUseCase.ListPending(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVlogListResponse(vlogs, middleware.ActorFrom(c)))
}

// GetVlog godoc
// @Summary      Get vlog by ID
// @Tags         vlogs
// @Produce      json
// @Param        id path string true "Vlog ID"
// @Success      200  {object}  VlogResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vlogs/{id} [get]
func (h *VlogHandler) GetVlog(c *gin.Context) {
	vlog, err := h.vlogUseCase.GetVlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVlogResponse(vlog, middleware.ActorFrom(c)))
}

// CreateVlog godoc
// @Summary      Create a vlog
// @Description  Submit a vlog for moderation. It starts in pending status.
// @Tags         vlogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateVlogRequest true "Vlog data"
// @Success      201  {object}  VlogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /vlogs [post]
func (h *VlogHandler) CreateVlog(c *gin.Context) {
	var req CreateVlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	vlog, err := h.vlogUseCase.CreateVlog(c.Request.Context(), middleware.ActorFrom(c), usecase.CreateVlogInput{
		Title:      req.Title,
		CoverImage: req.CoverImage,
		Content:    req.Content,
		Category:   req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newVlogResponse(vlog, middleware.ActorFrom(c)))
}

// UpdateVlog godoc
// @Summary      Update vlog
// @Description  Partial update. Only the author can update their own vlog.
// @Tags         vlogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vlog ID"
// @Param        request body UpdateVlogRequest true "Fields to change"
// @Success      200  {object}  VlogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vlogs/{id} [put]
func (h *VlogHandler) UpdateVlog(c *gin.Context) {
	var req UpdateVlogRequest
	update := entity.VlogUpdate{}
	if err := c.ShouldBindJSON(&req); err != nil {
		update.Invalid = err
	} else {
		update.Title = optional(req.Title)
		update.CoverImage = optional(req.CoverImage)
		update.Content = optional(req.Content)
	}

	vlog, err := h.vlogUseCase.UpdateVlog(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVlogResponse(vlog, middleware.ActorFrom(c)))
}

// DeleteVlog godoc
// @Summary      Delete vlog
// @Description  Only the author can delete their own vlog.
// @Tags         vlogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vlog ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vlogs/{id} [delete]
func (h *VlogHandler) DeleteVlog(c *gin.Context) {
	if err := h.vlogUseCase.DeleteVlog(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Vlog deleted successfully"})
}

// ChangeStatus godoc
// @Summary      Moderate vlog
// @Description  Move a pending vlog to approved or rejected. Admin only.
// @Tags         vlogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vlog ID"
// @Param        request body ChangeStatusRequest true "Target status" SchemaExample({"status":"approved"})
// @Success      200  {object}  VlogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /vlogs/{id}/status [patch]
func (h *VlogHandler) ChangeStatus(c *gin.Context) {
	// An undecodable body leaves Status empty, which the use case rejects
	// after checking the caller is an admin.
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Status = ""
	}

	vlog, err := h.vlogUseCase.ChangeStatus(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVlogResponse(vlog, middleware.ActorFrom(c)))
}

// ToggleLike godoc
// @Summary      Like or unlike a vlog
// @Description  Adds the caller to the like set, or removes them if already present
// @Tags         vlogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vlog ID"
// @Success      200  {object}  VlogResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vlogs/{id}/like [post]
func (h *VlogHandler) ToggleLike(c *gin.Context) {
	vlog, liked, err := h.vlogUseCase.ToggleLike(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := newVlogResponse(vlog, middleware.ActorFrom(c))
	response.Liked = &liked
	c.JSON(http.StatusOK, response)
}

// AddComment godoc
// @Summary      Comment on a vlog
// @Tags         vlogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vlog ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  VlogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vlogs/{id}/comment [post]
func (h *VlogHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	vlog, err := h.vlogUseCase.AddComment(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newVlogResponse(vlog, middleware.ActorFrom(c)))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Allowed for the comment author and the vlog author.
// @Tags         vlogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vlog ID"
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  VlogResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vlogs/{id}/comment/{commentId} [delete]
func (h *VlogHandler) DeleteComment(c *gin.Context) {
	vlog, err := h.vlogUseCase.DeleteComment(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVlogResponse(vlog, middleware.ActorFrom(c)))
}

// UploadCoverImage godoc
// @Summary      Upload a cover image
// @Description  Store an image (jpg, jpeg, png, gif, webp) and return its URL for use as coverImage
// @Tags         vlogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage formData file true "Image file"
// @Success      201  {object}  CoverImageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /vlogs/cover-image [post]
func (h *VlogHandler) UploadCoverImage(c *gin.Context) {
	file, err := c.FormFile("coverImage")
	if err != nil {
		respondError(c, apperror.Validation("coverImage file is required"))
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, apperror.Validation("failed to read uploaded file"))
		return
	}
	defer src.Close()

	url, err := h.vlogUseCase.UploadCoverImage(c.Request.Context(), middleware.ActorFrom(c), file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CoverImageResponse{URL: url})
}
