package http

import (
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth      *AuthHandler
	Vlog      *VlogHandler
	Feedback  *FeedbackHandler
	Therapist *TherapistHandler
}

// RegisterRoutes mounts the API on api. requireAuth guards every route that
// needs an actor and extra middleware runs after it. optionalAuth runs on
// public vlog reads so signed-in callers see whether they liked a vlog.
func RegisterRoutes(api *gin.RouterGroup, h Handlers, requireAuth, optionalAuth gin.HandlerFunc, extra ...gin.HandlerFunc) {
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(extra)+2)
		chain = append(chain, requireAuth)
		chain = append(chain, extra...)
		return append(chain, handler)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", guarded(h.Auth.Logout)...)
		auth.GET("/profile", guarded(h.Auth.Profile)...)
	}

	vlogs := api.Group("/vlogs")
	{
		vlogs.GET("", optionalAuth, h.Vlog.ListVlogs)
		vlogs.GET("/pending", guarded(h.Vlog.ListPendingVlogs)...)
		vlogs.POST("", guarded(h.Vlog.CreateVlog)...)
		vlogs.POST("/cover-image", guarded(h.Vlog.UploadCoverImage)...)
		vlogs.GET("/:id", optionalAuth, h.Vlog.GetVlog)
		vlogs.PUT("/:id", guarded(h.Vlog.UpdateVlog)...)
		vlogs.DELETE("/:id", guarded(h.Vlog.DeleteVlog)...)
		vlogs.PATCH("/:id/status", guarded(h.Vlog.ChangeStatus)...)
		vlogs.POST("/:id/like", guarded(h.Vlog.ToggleLike)...)
		vlogs.POST("/:id/comment", guarded(h.Vlog.AddComment)...)
		vlogs.DELETE("/:id/comment/:commentId", guarded(h.Vlog.DeleteComment)...)
	}

	feedback := api.Group("/feedback")
	{
		feedback.GET("", h.Feedback.ListFeedback)
		feedback.POST("", guarded(h.Feedback.CreateFeedback)...)
		feedback.GET("/my-feedbacks", guarded(h.Feedback.ListMyFeedback)...)
		feedback.PUT("/:id", guarded(h.Feedback.UpdateFeedback)...)
		feedback.DELETE("/:id", guarded(h.Feedback.DeleteFeedback)...)
	}

	api.GET("/therapists", h.Therapist.ListTherapists)
}
