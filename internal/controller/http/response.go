package http

import (
	"vlog-hub/internal/entity"
	"vlog-hub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// VlogResponse is a vlog with its like count. Liked is set when the request
// carries an actor.
type VlogResponse struct {
	*entity.Vlog
	LikeCount int   `json:"likeCount"`
	Liked     *bool `json:"liked,omitempty"`
}

func newVlogResponse(vlog *entity.Vlog, viewer *entity.Actor) VlogResponse {
	response := VlogResponse{Vlog: vlog, LikeCount: vlog.LikeCount()}
	if viewer != nil {
		liked := vlog.IsLikedBy(viewer.ID)
		response.Liked = &liked
	}
	return response
}

func newVlogListResponse(vlogs []*entity.Vlog, viewer *entity.Actor) []VlogResponse {
	response := make([]VlogResponse, len(vlogs))
	for i, vlog := range vlogs {
		response[i] = newVlogResponse(vlog, viewer)
	}
	return response
}

// respondError renders err with the status its code maps to. Internal
// causes never reach the client.
func respondError(c *gin.Context, err error) {
	code := apperror.CodeOf(err)
	c.JSON(code.HTTPStatus(), ErrorResponse{
		Error: apperror.PublicMessage(err),
		Code:  string(code),
	})
}

func respondBindError(c *gin.Context, err error) {
	respondError(c, apperror.Validation(err.Error()))
}
