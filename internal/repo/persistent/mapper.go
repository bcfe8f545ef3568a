package persistent

import (
	"vlog-hub/internal/entity"
	"vlog-hub/pkg/models"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.NormalizeRole(string(m.Role)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         models.UserRole(e.Role),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToVlogEntity expects Author, Likes and Comments to be preloaded; missing
// associations map to empty collections.
func ToVlogEntity(m *models.Vlog) *entity.Vlog {
	if m == nil {
		return nil
	}

	vlog := &entity.Vlog{
		ID:         m.ID,
		Title:      m.Title,
		CoverImage: m.CoverImage,
		Content:    m.Content,
		Author: entity.UserRef{
			ID:   m.AuthorID,
			Name: m.Author.Name,
		},
		Status:    entity.VlogStatus(m.Status),
		Category:  m.Category,
		Likes:     make([]string, len(m.Likes)),
		Comments:  make([]entity.Comment, len(m.Comments)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	for i, like := range m.Likes {
		vlog.Likes[i] = like.UserID
	}
	for i := range m.Comments {
		vlog.Comments[i] = ToCommentEntity(&m.Comments[i])
	}

	return vlog
}

// ToVlogModel maps the root row only; likes and comments are written
// through their own statements.
func ToVlogModel(e *entity.Vlog) *models.Vlog {
	if e == nil {
		return nil
	}

	return &models.Vlog{
		ID:         e.ID,
		Title:      e.Title,
		CoverImage: e.CoverImage,
		Content:    e.Content,
		AuthorID:   e.Author.ID,
		Status:     models.VlogStatus(e.Status),
		Category:   e.Category,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToCommentEntity(m *models.VlogComment) entity.Comment {
	if m == nil {
		return entity.Comment{}
	}

	return entity.Comment{
		ID:        m.ID,
		Text:      m.Text,
		UserID:    m.UserID,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(vlogID string, e *entity.Comment) *models.VlogComment {
	if e == nil {
		return nil
	}

	return &models.VlogComment{
		ID:        e.ID,
		VlogID:    vlogID,
		UserID:    e.UserID,
		Username:  e.Username,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}

func ToFeedbackEntity(m *models.Feedback) *entity.Feedback {
	if m == nil {
		return nil
	}

	return &entity.Feedback{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Rating:    m.Rating,
		Feedback:  m.Feedback,
		Therapist: m.Therapist,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToFeedbackModel(e *entity.Feedback) *models.Feedback {
	if e == nil {
		return nil
	}

	return &models.Feedback{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		Rating:    e.Rating,
		Feedback:  e.Feedback,
		Therapist: e.Therapist,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTherapistEntity(m *models.Therapist) *entity.Therapist {
	if m == nil {
		return nil
	}

	return &entity.Therapist{
		ID:             m.ID,
		Name:           m.Name,
		Specialization: m.Specialization,
	}
}

func ToTherapistModel(e *entity.Therapist) *models.Therapist {
	if e == nil {
		return nil
	}

	return &models.Therapist{
		ID:             e.ID,
		Name:           e.Name,
		Specialization: e.Specialization,
	}
}
