package usecase

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/policy"
	"vlog-hub/internal/repo/persistent"
	"vlog-hub/pkg/apperror"
	"vlog-hub/pkg/logger"

	"github.com/google/uuid"
)

// ObjectStorage stores uploaded files and returns their public URL.
type ObjectStorage interface {
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

var coverImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type CreateVlogInput struct {
	Title      string
	CoverImage string
	Content    string
	Category   string
}

type VlogUseCase interface {
	CreateVlog(ctx context.Context, actor *entity.Actor, input CreateVlogInput) (*entity.Vlog, error)
	ListApproved(ctx context.Context, category string) ([]*entity.Vlog, error)
	ListPending(ctx context.Context, actor *entity.Actor) ([]*entity.Vlog, error)
	GetVlog(ctx context.Context, vlogID string) (*entity.Vlog, error)
	UpdateVlog(ctx context.Context, actor *entity.Actor, vlogID string, update entity.VlogUpdate) (*entity.Vlog, error)
	DeleteVlog(ctx context.Context, actor *entity.Actor, vlogID string) error
	ChangeStatus(ctx context.Context, actor *entity.Actor, vlogID, status string) (*entity.Vlog, error)
	ToggleLike(ctx context.Context, actor *entity.Actor, vlogID string) (*entity.Vlog, bool, error)
	AddComment(ctx context.Context, actor *entity.Actor, vlogID, text string) (*entity.Vlog, error)
	DeleteComment(ctx context.Context, actor *entity.Actor, vlogID, commentID string) (*entity.Vlog, error)
	UploadCoverImage(ctx context.Context, actor *entity.Actor, filename, contentType string, body io.Reader) (string, error)
}

type vlogUseCase struct {
	vlogRepo persistent.VlogRepository
	storage  ObjectStorage
	logger   *logger.Logger
}

// NewVlogUseCase builds the vlog workflow. storage may be nil when cover
// image uploads are not configured.
func NewVlogUseCase(vlogRepo persistent.VlogRepository, storage ObjectStorage, logger *logger.Logger) VlogUseCase {
	return &vlogUseCase{
		vlogRepo: vlogRepo,
		storage:  storage,
		logger:   logger,
	}
}

// CreateVlog stores a new vlog authored by actor. The status always starts
// at pending.
func (uc *vlogUseCase) CreateVlog(ctx context.Context, actor *entity.Actor, input CreateVlogInput) (*entity.Vlog, error) {
	if err := authorize(uc.logger, actor, policy.ActionCreateVlog, policy.Resource{}, ""); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperror.Validation("title and content are required")
	}

	vlog := &entity.Vlog{
		Title:      title,
		CoverImage: strings.TrimSpace(input.CoverImage),
		Content:    input.Content,
		Category:   strings.TrimSpace(input.Category),
		Author:     entity.UserRef{ID: actor.ID, Name: actor.Name},
		Status:     entity.StatusPending,
	}

	if err := uc.vlogRepo.Create(ctx, vlog); err != nil {
		return nil, classify(uc.logger, "create vlog", err)
	}

	uc.logger.Info("Vlog created: vlog_id=%s, author_id=%s", vlog.ID, actor.ID)
	return vlog, nil
}

func (uc *vlogUseCase) ListApproved(ctx context.Context, category string) ([]*entity.Vlog, error) {
	vlogs, err := uc.vlogRepo.List(ctx, persistent.VlogFilter{
		Status:   entity.StatusApproved,
		Category: strings.TrimSpace(category),
	})
	if err != nil {
		return nil, classify(uc.logger, "list vlogs", err)
	}
	return vlogs, nil
}

func (uc *vlogUseCase) ListPending(ctx context.Context, actor *entity.Actor) ([]*entity.Vlog, error) {
	if err := authorize(uc.logger, actor, policy.ActionListPendingVlogs, policy.Resource{}, ""); err != nil {
		return nil, err
	}

	vlogs, err := uc.vlogRepo.List(ctx, persistent.VlogFilter{
		Status:      entity.StatusPending,
		OldestFirst: true,
	})
	if err != nil {
		return nil, classify(uc.logger, "list pending vlogs", err)
	}
	return vlogs, nil
}

// GetVlog returns the vlog whatever its status.
func (uc *vlogUseCase) GetVlog(ctx context.Context, vlogID string) (*entity.Vlog, error) {
	vlog, err := uc.vlogRepo.GetByID(ctx, vlogID)
	if err != nil {
		return nil, classify(uc.logger, "get vlog", err)
	}
	return vlog, nil
}

func (uc *vlogUseCase) UpdateVlog(ctx context.Context, actor *entity.Actor, vlogID string, update entity.VlogUpdate) (*entity.Vlog, error) {
	vlog, err := uc.loadForActor(ctx, actor, vlogID)
	if err != nil {
		return nil, err
	}
	if err := authorize(uc.logger, actor, policy.ActionEditVlog, policy.VlogResource(vlog), vlogID); err != nil {
		return nil, err
	}
	if update.Invalid != nil {
		return nil, apperror.Validation(update.Invalid.Error())
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, apperror.Validation("title cannot be empty")
		}
		update.Title = &title
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return nil, apperror.Validation("content cannot be empty")
	}

	if err := uc.vlogRepo.Update(ctx, vlogID, update); err != nil {
		return nil, classify(uc.logger, "update vlog", err)
	}
	return uc.reload(ctx, "update vlog", vlogID)
}

func (uc *vlogUseCase) DeleteVlog(ctx context.Context, actor *entity.Actor, vlogID string) error {
	vlog, err := uc.loadForActor(ctx, actor, vlogID)
	if err != nil {
		return err
	}
	if err := authorize(uc.logger, actor, policy.ActionDeleteVlog, policy.VlogResource(vlog), vlogID); err != nil {
		return err
	}

	if err := uc.vlogRepo.Delete(ctx, vlogID); err != nil {
		return classify(uc.logger, "delete vlog", err)
	}

	uc.logger.Info("Vlog deleted: vlog_id=%s, author_id=%s", vlogID, actor.ID)
	return nil
}

// ChangeStatus moderates a pending vlog to approved or rejected.
func (uc *vlogUseCase) ChangeStatus(ctx context.Context, actor *entity.Actor, vlogID, status string) (*entity.Vlog, error) {
	if err := authorize(uc.logger, actor, policy.ActionChangeVlogStatus, policy.Resource{}, vlogID); err != nil {
		return nil, err
	}

	target, ok := entity.ParseModerationStatus(status)
	if !ok {
		return nil, apperror.New(apperror.CodeInvalidStatus, "invalid status")
	}

	if err := uc.vlogRepo.UpdateStatus(ctx, vlogID, target); err != nil {
		return nil, classify(uc.logger, "change vlog status", err)
	}

	uc.logger.Info("Vlog moderated: vlog_id=%s, status=%s, admin_id=%s", vlogID, target, actor.ID)
	return uc.reload(ctx, "change vlog status", vlogID)
}

// ToggleLike flips actor's membership in the like set and reports whether
// actor likes the vlog afterwards.
func (uc *vlogUseCase) ToggleLike(ctx context.Context, actor *entity.Actor, vlogID string) (*entity.Vlog, bool, error) {
	if err := authorize(uc.logger, actor, policy.ActionLikeVlog, policy.Resource{}, vlogID); err != nil {
		return nil, false, err
	}

	liked, err := uc.vlogRepo.ToggleLike(ctx, vlogID, actor.ID)
	if err != nil {
		return nil, false, classify(uc.logger, "toggle like", err)
	}

	vlog, err := uc.reload(ctx, "toggle like", vlogID)
	if err != nil {
		return nil, false, err
	}
	return vlog, liked, nil
}

// AddComment appends a comment carrying a snapshot of actor's display name.
func (uc *vlogUseCase) AddComment(ctx context.Context, actor *entity.Actor, vlogID, text string) (*entity.Vlog, error) {
	if err := authorize(uc.logger, actor, policy.ActionAddComment, policy.Resource{}, vlogID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Validation("comment text is required")
	}

	comment := &entity.Comment{
		Text:     text,
		UserID:   actor.ID,
		Username: actor.Name,
	}
	if err := uc.vlogRepo.AddComment(ctx, vlogID, comment); err != nil {
		return nil, classify(uc.logger, "add comment", err)
	}
	return uc.reload(ctx, "add comment", vlogID)
}

func (uc *vlogUseCase) DeleteComment(ctx context.Context, actor *entity.Actor, vlogID, commentID string) (*entity.Vlog, error) {
	vlog, err := uc.loadForActor(ctx, actor, vlogID)
	if err != nil {
		return nil, err
	}

	comment, ok := vlog.FindComment(commentID)
	if !ok {
		return nil, apperror.NotFound("comment not found")
	}
	if err := authorize(uc.logger, actor, policy.ActionDeleteComment, policy.CommentResource(vlog, comment), commentID); err != nil {
		return nil, err
	}

	if err := uc.vlogRepo.DeleteComment(ctx, vlogID, commentID); err != nil {
		return nil, classify(uc.logger, "delete comment", err)
	}
	return uc.reload(ctx, "delete comment", vlogID)
}

// UploadCoverImage stores an image for use as a vlog cover and returns its
// URL.
func (uc *vlogUseCase) UploadCoverImage(ctx context.Context, actor *entity.Actor, filename, contentType string, body io.Reader) (string, error) {
	if err := authorize(uc.logger, actor, policy.ActionCreateVlog, policy.Resource{}, ""); err != nil {
		return "", err
	}
	if uc.storage == nil {
		return "", apperror.New(apperror.CodeUnavailable, "cover image storage is not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !coverImageExtensions[ext] {
		return "", apperror.Validation("only jpg, jpeg, png, gif and webp images are allowed")
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(ext)
	}

	key := fmt.Sprintf("vlogs/covers/%s/%s%s", actor.ID, uuid.New().String(), ext)
	url, err := uc.storage.UploadFile(ctx, key, body, contentType)
	if err != nil {
		return "", classify(uc.logger, "upload cover image", err)
	}

	uc.logger.Info("Cover image uploaded: key=%s, user_id=%s", key, actor.ID)
	return url, nil
}

// loadForActor rejects anonymous callers before touching the store.
func (uc *vlogUseCase) loadForActor(ctx context.Context, actor *entity.Actor, vlogID string) (*entity.Vlog, error) {
	if actor == nil || actor.ID == "" {
		return nil, apperror.ErrUnauthorized
	}
	vlog, err := uc.vlogRepo.GetByID(ctx, vlogID)
	if err != nil {
		return nil, classify(uc.logger, "get vlog", err)
	}
	return vlog, nil
}

func (uc *vlogUseCase) reload(ctx context.Context, op, vlogID string) (*entity.Vlog, error) {
	vlog, err := uc.vlogRepo.GetByID(ctx, vlogID)
	if err != nil {
		return nil, classify(uc.logger, op, err)
	}
	return vlog, nil
}
