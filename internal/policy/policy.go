// Package policy provides the authorization decisions that gate every
// mutation on vlogs, comments and feedback.
//
// Decisions are pure: they look only at the actor and a snapshot of the
// resource and never touch storage.
package policy

import (
	"vlog-hub/internal/entity"
	"vlog-hub/pkg/apperror"
)

// Action identifies an operation an actor attempts.
type Action int

const (
	ActionCreateVlog Action = iota + 1
	ActionListPendingVlogs
	ActionChangeVlogStatus
	ActionEditVlog
	ActionDeleteVlog
	ActionLikeVlog
	ActionAddComment
	ActionDeleteComment
	ActionCreateFeedback
	ActionEditFeedback
	ActionDeleteFeedback
)

func (a Action) String() string {
	switch a {
	case ActionCreateVlog:
		return "create vlog"
	case ActionListPendingVlogs:
		return "list pending vlogs"
	case ActionChangeVlogStatus:
		return "change vlog status"
	case ActionEditVlog:
		return "edit vlog"
	case ActionDeleteVlog:
		return "delete vlog"
	case ActionLikeVlog:
		return "like vlog"
	case ActionAddComment:
		return "add comment"
	case ActionDeleteComment:
		return "delete comment"
	case ActionCreateFeedback:
		return "create feedback"
	case ActionEditFeedback:
		return "edit feedback"
	case ActionDeleteFeedback:
		return "delete feedback"
	default:
		return "unknown action"
	}
}

// Resource is the ownership snapshot a decision needs. OwnerID is the vlog
// author, the comment author or the feedback owner. ParentOwnerID is the
// author of the vlog a comment belongs to.
type Resource struct {
	OwnerID       string
	ParentOwnerID string
}

func VlogResource(v *entity.Vlog) Resource {
	return Resource{OwnerID: v.Author.ID}
}

func CommentResource(v *entity.Vlog, c *entity.Comment) Resource {
	return Resource{OwnerID: c.UserID, ParentOwnerID: v.Author.ID}
}

func FeedbackResource(f *entity.Feedback) Resource {
	return Resource{OwnerID: f.UserID}
}

// Can reports whether the actor may perform the action on the resource.
func Can(actor entity.Actor, action Action, res Resource) bool {
	if actor.ID == "" {
		return false
	}
	isOwner := res.OwnerID != "" && actor.ID == res.OwnerID

	switch action {
	case ActionCreateVlog, ActionLikeVlog, ActionAddComment, ActionCreateFeedback:
		return true
	case ActionListPendingVlogs, ActionChangeVlogStatus:
		return actor.IsAdmin()
	case ActionEditVlog, ActionDeleteVlog, ActionEditFeedback:
		return isOwner
	case ActionDeleteComment:
		return isOwner || (res.ParentOwnerID != "" && actor.ID == res.ParentOwnerID)
	case ActionDeleteFeedback:
		return isOwner || actor.IsAdmin()
	default:
		return false
	}
}

// Authorize turns a decision into an error: Unauthorized when there is no
// actor, Forbidden when the decision denies.
func Authorize(actor *entity.Actor, action Action, res Resource) error {
	if actor == nil || actor.ID == "" {
		return apperror.ErrUnauthorized
	}
	if !Can(*actor, action, res) {
		return apperror.Forbidden(deniedMessage(action))
	}
	return nil
}

func deniedMessage(action Action) string {
	switch action {
	case ActionListPendingVlogs:
		return "only admins can view pending vlogs"
	case ActionChangeVlogStatus:
		return "only admins can change vlog status"
	case ActionEditVlog:
		return "you are not authorized to edit this vlog"
	case ActionDeleteVlog:
		return "you are not authorized to delete this vlog"
	case ActionDeleteComment:
		return "not authorized to delete this comment"
	case ActionEditFeedback:
		return "you don't have permission to update this feedback"
	case ActionDeleteFeedback:
		return "you don't have permission to delete this feedback"
	default:
		return "you are not allowed to " + action.String()
	}
}
