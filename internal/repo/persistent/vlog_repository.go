package persistent

import (
	"context"
	"time"

	"vlog-hub/internal/entity"
	"vlog-hub/pkg/apperror"
	"vlog-hub/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VlogFilter selects vlogs for a listing.
type VlogFilter struct {
	Status   entity.VlogStatus
	Category string
	// OldestFirst orders the result by ascending creation time. The default
	// is newest first.
	OldestFirst bool
}

// VlogRepository stores vlogs together with their like set and comment
// sequence. Every mutation is a targeted statement on the affected rows;
// nothing is read, modified in memory and written back.
type VlogRepository interface {
	Create(ctx context.Context, vlog *entity.Vlog) error
	GetByID(ctx context.Context, id string) (*entity.Vlog, error)
	List(ctx context.Context, filter VlogFilter) ([]*entity.Vlog, error)
	Update(ctx context.Context, id string, update entity.VlogUpdate) error
	UpdateStatus(ctx context.Context, id string, status entity.VlogStatus) error
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, vlogID, userID string) (bool, error)
	AddComment(ctx context.Context, vlogID string, comment *entity.Comment) error
	DeleteComment(ctx context.Context, vlogID, commentID string) error
}

type vlogRepository struct {
	db *gorm.DB
}

func NewVlogRepository(db *gorm.DB) VlogRepository {
	return &vlogRepository{db: db}
}

func preloadVlog(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("vlog_likes.created_at ASC, vlog_likes.user_id ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("vlog_comments.created_at ASC, vlog_comments.id ASC")
		})
}

func (r *vlogRepository) Create(ctx context.Context, vlog *entity.Vlog) error {
	vlogModel := ToVlogModel(vlog)
	if vlogModel.ID == "" {
		vlogModel.ID = uuid.New().String()
	}
	if vlogModel.Status == "" {
		vlogModel.Status = models.StatusPending
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(vlogModel).Error; err != nil {
		return err
	}

	vlog.ID = vlogModel.ID
	vlog.Status = entity.VlogStatus(vlogModel.Status)
	vlog.CreatedAt = vlogModel.CreatedAt
	vlog.UpdatedAt = vlogModel.UpdatedAt
	if vlog.Likes == nil {
		vlog.Likes = []string{}
	}
	if vlog.Comments == nil {
		vlog.Comments = []entity.Comment{}
	}
	return nil
}

func (r *vlogRepository) GetByID(ctx context.Context, id string) (*entity.Vlog, error) {
	if err := checkID(id, "vlog not found"); err != nil {
		return nil, err
	}
	var vlogModel models.Vlog
	if err := preloadVlog(r.db.WithContext(ctx)).Where("id = ?", id).First(&vlogModel).Error; err != nil {
		return nil, notFound(err, "vlog not found")
	}
	return ToVlogEntity(&vlogModel), nil
}

func (r *vlogRepository) List(ctx context.Context, filter VlogFilter) ([]*entity.Vlog, error) {
	var vlogModels []models.Vlog
	query := preloadVlog(r.db.WithContext(ctx)).Where("status = ?", string(filter.Status))

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.OldestFirst {
		query = query.Order("created_at ASC").Order("id ASC")
	} else {
		query = query.Order("created_at DESC").Order("id ASC")
	}

	if err := query.Find(&vlogModels).Error; err != nil {
		return nil, err
	}

	vlogs := make([]*entity.Vlog, len(vlogModels))
	for i := range vlogModels {
		vlogs[i] = ToVlogEntity(&vlogModels[i])
	}
	return vlogs, nil
}

// Update writes only the columns present in update.
func (r *vlogRepository) Update(ctx context.Context, id string, update entity.VlogUpdate) error {
	if err := checkID(id, "vlog not found"); err != nil {
		return err
	}
	columns := map[string]interface{}{}
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.CoverImage != nil {
		columns["cover_image"] = *update.CoverImage
	}
	if update.Content != nil {
		columns["content"] = *update.Content
	}

	db := r.db.WithContext(ctx)
	if len(columns) == 0 {
		return r.exists(db, id)
	}

	columns["updated_at"] = time.Now()
	result := db.Model(&models.Vlog{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("vlog not found")
	}
	return nil
}

// UpdateStatus moves a pending vlog to status. A vlog that already left
// pending is reported as ErrInvalidTransition.
func (r *vlogRepository) UpdateStatus(ctx context.Context, id string, status entity.VlogStatus) error {
	if err := checkID(id, "vlog not found"); err != nil {
		return err
	}
	db := r.db.WithContext(ctx)
	result := db.Model(&models.Vlog{}).
		Where("id = ? AND status = ?", id, string(models.StatusPending)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if err := r.exists(db, id); err != nil {
		return err
	}
	return apperror.New(apperror.CodeInvalidTransition, "vlog has already been moderated")
}

// Delete removes the vlog with its likes and comments.
func (r *vlogRepository) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "vlog not found"); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vlog_id = ?", id).Delete(&models.VlogLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vlog_id = ?", id).Delete(&models.VlogComment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Vlog{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.NotFound("vlog not found")
		}
		return nil
	})
}

// ToggleLike removes userID from the like set if present and adds it
// otherwise. It reports whether the user likes the vlog afterwards.
func (r *vlogRepository) ToggleLike(ctx context.Context, vlogID, userID string) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lock(tx, vlogID); err != nil {
			return err
		}

		result := tx.Where("vlog_id = ? AND user_id = ?", vlogID, userID).Delete(&models.VlogLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			liked = false
			return nil
		}

		like := &models.VlogLike{VlogID: vlogID, UserID: userID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// AddComment appends comment to the vlog's comment sequence. The id and
// creation time are assigned here.
func (r *vlogRepository) AddComment(ctx context.Context, vlogID string, comment *entity.Comment) error {
	db := r.db.WithContext(ctx)
	if err := r.exists(db, vlogID); err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	comment.ID = id.String()
	comment.CreatedAt = time.Now()

	return db.Create(ToCommentModel(vlogID, comment)).Error
}

func (r *vlogRepository) DeleteComment(ctx context.Context, vlogID, commentID string) error {
	if err := checkID(vlogID, "vlog not found"); err != nil {
		return err
	}
	if err := checkID(commentID, "comment not found"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Where("id = ? AND vlog_id = ?", commentID, vlogID).
		Delete(&models.VlogComment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("comment not found")
	}
	return nil
}

// lock takes a row lock on the vlog for the rest of tx, so toggles on the
// same vlog run one after another and each sees the previous result.
func (r *vlogRepository) lock(tx *gorm.DB, id string) error {
	if err := checkID(id, "vlog not found"); err != nil {
		return err
	}
	var vlogModel models.Vlog
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Take(&vlogModel).Error
	return notFound(err, "vlog not found")
}

func (r *vlogRepository) exists(db *gorm.DB, id string) error {
	if err := checkID(id, "vlog not found"); err != nil {
		return err
	}
	var count int64
	if err := db.Model(&models.Vlog{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperror.NotFound("vlog not found")
	}
	return nil
}
