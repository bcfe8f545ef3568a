package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/usecase"
	"vlog-hub/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	alice = &entity.Actor{ID: "alice", Name: "Alice", Role: entity.RoleCustomer}
	admin = &entity.Actor{ID: "admin", Name: "Admin", Role: entity.RoleAdmin}
)

func sampleVlog() *entity.Vlog {
	return &entity.Vlog{
		ID:       "vlog-123",
		Title:    "Hello",
		Content:  "<p>hi</p>",
		Author:   entity.UserRef{ID: "alice", Name: "Alice"},
		Status:   entity.StatusApproved,
		Likes:    []string{"bob", "carol"},
		Comments: []entity.Comment{},
	}
}

func TestListVlogs(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/vlogs", handler.ListVlogs)

	mockUseCase.On("ListApproved", "sleep").Return([]*entity.Vlog{sampleVlog()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vlogs?category=sleep", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 1)
	assert.Equal(t, "vlog-123", response[0]["id"])
	assert.Equal(t, float64(2), response[0]["likeCount"])
	assert.Equal(t, "Alice", response[0]["author"].(map[string]interface{})["name"])
	_, hasLiked := response[0]["liked"]
	assert.False(t, hasLiked)
}

func TestListVlogs_InternalErrorHidesCause(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/vlogs", handler.ListVlogs)

	mockUseCase.On("ListApproved", "").Return(nil, apperror.Internal("list vlogs failed", errors.New("dial tcp: connection refused")))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vlogs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestListPendingVlogs_Forbidden(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/vlogs/pending", as(alice, handler.ListPendingVlogs))

	mockUseCase.On("ListPending", alice).Return(nil, apperror.Forbidden("only admins can view pending vlogs"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vlogs/pending", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetVlog_NotFound(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/vlogs/:id", handler.GetVlog)

	mockUseCase.On("GetVlog", "missing").Return(nil, apperror.NotFound("vlog not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vlogs/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "vlog not found", response.Error)
	assert.Equal(t, "NOT_FOUND", response.Code)
}

func TestCreateVlog_Success(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/vlogs", as(alice, handler.CreateVlog))

	input := usecase.CreateVlogInput{Title: "Hello", Content: "<p>hi</p>", CoverImage: "https://img"}
	created := sampleVlog()
	created.Status = entity.StatusPending
	mockUseCase.On("CreateVlog", alice, input).Return(created, nil)

	body := `{"title":"Hello","content":"<p>hi</p>","coverImage":"https://img","status":"approved","author":"mallory"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/vlogs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "pending", response["status"])
	mockUseCase.AssertExpectations(t)
}

func TestCreateVlog_MissingContent(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/vlogs", as(alice, handler.CreateVlog))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/vlogs", bytes.NewBufferString(`{"title":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateVlog", mock.Anything, mock.Anything)
}

func TestUpdateVlog_OmitsEmptyFields(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/vlogs/:id", as(alice, handler.UpdateVlog))

	title := "New Title"
	update := entity.VlogUpdate{Title: &title}
	mockUseCase.On("UpdateVlog", alice, "vlog-123", update).Return(sampleVlog(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/vlogs/vlog-123", bytes.NewBufferString(`{"title":"New Title","content":""}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateVlog_Forbidden(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/vlogs/:id", as(alice, handler.UpdateVlog))

	mockUseCase.On("UpdateVlog", alice, "vlog-123", mock.Anything).
		Return(nil, apperror.Forbidden("you are not authorized to edit this vlog"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/vlogs/vlog-123", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteVlog_Success(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/vlogs/:id", as(alice, handler.DeleteVlog))

	mockUseCase.On("DeleteVlog", alice, "vlog-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/vlogs/vlog-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"approved", nil, http.StatusOK},
		{"invalid status", apperror.New(apperror.CodeInvalidStatus, "invalid status"), http.StatusBadRequest},
		{"already moderated", apperror.New(apperror.CodeInvalidTransition, "vlog has already been moderated"), http.StatusConflict},
		{"not admin", apperror.Forbidden("only admins can change vlog status"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockVlogUseCase)
			handler := NewVlogHandler(mockUseCase)

			router := setupTestRouter()
			router.PATCH("/vlogs/:id/status", as(admin, handler.ChangeStatus))

			if tt.err == nil {
				mockUseCase.On("ChangeStatus", admin, "vlog-123", "approved").Return(sampleVlog(), nil)
			} else {
				mockUseCase.On("ChangeStatus", admin, "vlog-123", "approved").Return(nil, tt.err)
			}

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("PATCH", "/vlogs/vlog-123/status", bytes.NewBufferString(`{"status":"approved"}`))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestToggleLike(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/vlogs/:id/like", as(alice, handler.ToggleLike))

	mockUseCase.On("ToggleLike", alice, "vlog-123").Return(sampleVlog(), true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/vlogs/vlog-123/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(2), response["likeCount"])
}

func TestAddComment(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/vlogs/:id/comment", as(alice, handler.AddComment))

	mockUseCase.On("AddComment", alice, "vlog-123", "nice").Return(sampleVlog(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/vlogs/vlog-123/comment", bytes.NewBufferString(`{"text":"nice"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/vlogs/:id/comment/:commentId", as(alice, handler.DeleteComment))

	mockUseCase.On("DeleteComment", alice, "vlog-123", "c-1").Return(nil, apperror.NotFound("comment not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/vlogs/vlog-123/comment/c-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadCoverImage(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/vlogs/cover-image", as(alice, handler.UploadCoverImage))

	mockUseCase.On("UploadCoverImage", alice, "cover.png", "application/octet-stream").Return("https://cdn/cover.png", nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("coverImage", "cover.png")
	part.Write([]byte("png-bytes"))
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/vlogs/cover-image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response CoverImageResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "https://cdn/cover.png", response.URL)
}

func TestUploadCoverImage_MissingFile(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/vlogs/cover-image", as(alice, handler.UploadCoverImage))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/vlogs/cover-image", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateVlog_MalformedBodyStillAuthorized(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/vlogs/:id", as(alice, handler.UpdateVlog))

	undecodable := mock.MatchedBy(func(u entity.VlogUpdate) bool { return u.Invalid != nil && u.IsEmpty() })
	mockUseCase.On("UpdateVlog", alice, "vlog-123", undecodable).
		Return(nil, apperror.Forbidden("you are not authorized to edit this vlog"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/vlogs/vlog-123", bytes.NewBufferString(`not json`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestChangeStatus_EmptyBodyStillAuthorized(t *testing.T) {
	mockUseCase := new(MockVlogUseCase)
	handler := NewVlogHandler(mockUseCase)

	router := setupTestRouter()
	router.PATCH("/vlogs/:id/status", as(alice, handler.ChangeStatus))

	mockUseCase.On("ChangeStatus", alice, "vlog-123", "").
		Return(nil, apperror.Forbidden("only admins can change vlog status"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/vlogs/vlog-123/status", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}
