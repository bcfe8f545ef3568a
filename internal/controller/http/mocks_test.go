package http

import (
	"context"
	"io"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/usecase"
	"vlog-hub/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) ResolveActor(ctx context.Context, token string) (*entity.Actor, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockAuthUseCase) Profile(ctx context.Context, actor *entity.Actor) (*entity.User, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockVlogUseCase is a mock implementation of VlogUseCase
type MockVlogUseCase struct {
	mock.Mock
}

func (m *MockVlogUseCase) CreateVlog(ctx context.Context, actor *entity.Actor, input usecase.CreateVlogInput) (*entity.Vlog, error) {
	args := m.Called(actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) ListApproved(ctx context.Context, category string) ([]*entity.Vlog, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) ListPending(ctx context.Context, actor *entity.Actor) ([]*entity.Vlog, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) GetVlog(ctx context.Context, vlogID string) (*entity.Vlog, error) {
	args := m.Called(vlogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) UpdateVlog(ctx context.Context, actor *entity.Actor, vlogID string, update entity.VlogUpdate) (*entity.Vlog, error) {
	args := m.Called(actor, vlogID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) DeleteVlog(ctx context.Context, actor *entity.Actor, vlogID string) error {
	args := m.Called(actor, vlogID)
	return args.Error(0)
}

func (m *MockVlogUseCase) ChangeStatus(ctx context.Context, actor *entity.Actor, vlogID, status string) (*entity.Vlog, error) {
	args := m.Called(actor, vlogID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) ToggleLike(ctx context.Context, actor *entity.Actor, vlogID string) (*entity.Vlog, bool, error) {
	args := m.Called(actor, vlogID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Vlog), args.Bool(1), args.Error(2)
}

func (m *MockVlogUseCase) AddComment(ctx context.Context, actor *entity.Actor, vlogID, text string) (*entity.Vlog, error) {
	args := m.Called(actor, vlogID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) DeleteComment(ctx context.Context, actor *entity.Actor, vlogID, commentID string) (*entity.Vlog, error) {
	args := m.Called(actor, vlogID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vlog), args.Error(1)
}

func (m *MockVlogUseCase) UploadCoverImage(ctx context.Context, actor *entity.Actor, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(actor, filename, contentType)
	return args.String(0), args.Error(1)
}

var _ usecase.VlogUseCase = (*MockVlogUseCase)(nil)

// MockFeedbackUseCase is a mock implementation of FeedbackUseCase
type MockFeedbackUseCase struct {
	mock.Mock
}

func (m *MockFeedbackUseCase) CreateFeedback(ctx context.Context, actor *entity.Actor, input usecase.FeedbackInput) (*entity.Feedback, error) {
	args := m.Called(actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackUseCase) ListFeedback(ctx context.Context, therapist string) ([]*entity.Feedback, error) {
	args := m.Called(therapist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackUseCase) ListMyFeedback(ctx context.Context, actor *entity.Actor) ([]*entity.Feedback, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackUseCase) UpdateFeedback(ctx context.Context, actor *entity.Actor, feedbackID string, input usecase.FeedbackInput) (*entity.Feedback, error) {
	args := m.Called(actor, feedbackID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackUseCase) DeleteFeedback(ctx context.Context, actor *entity.Actor, feedbackID string) error {
	args := m.Called(actor, feedbackID)
	return args.Error(0)
}

var _ usecase.FeedbackUseCase = (*MockFeedbackUseCase)(nil)

// MockTherapistUseCase is a mock implementation of TherapistUseCase
type MockTherapistUseCase struct {
	mock.Mock
}

func (m *MockTherapistUseCase) ListTherapists(ctx context.Context) ([]*entity.Therapist, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Therapist), args.Error(1)
}

func (m *MockTherapistUseCase) SeedTherapists(ctx context.Context, therapists []entity.Therapist) error {
	args := m.Called(therapists)
	return args.Error(0)
}

var _ usecase.TherapistUseCase = (*MockTherapistUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// as runs handler with actor attached, the way the auth middleware would.
func as(actor *entity.Actor, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor, "token-"+actor.ID)
		handler(c)
	}
}
