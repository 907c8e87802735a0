package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

const (
	postID   = "65f1a2b3c4d5e6f708192a3b"
	authorID = "507f1f77bcf86cd799439011"
)

type fakeRepository struct {
	findAll  func(ctx context.Context) (*post.PostDTOList, error)
	findByID func(ctx context.Context, id string) (*post.PostDTO, error)
	create   func(ctx context.Context, dto post.PostCreateDTO) (*post.PostDTO, error)
	update   func(ctx context.Context, id string, dto post.PostUpdateDTO) (*post.PostDTO, error)
	delete   func(ctx context.Context, id string) error

	calls int
}

func (f *fakeRepository) FindAll(ctx context.Context) (*post.PostDTOList, error) {
	f.calls++
	return f.findAll(ctx)
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*post.PostDTO, error) {
	f.calls++
	return f.findByID(ctx, id)
}

func (f *fakeRepository) Create(ctx context.Context, dto post.PostCreateDTO) (*post.PostDTO, error) {
	f.calls++
	return f.create(ctx, dto)
}

func (f *fakeRepository) Update(ctx context.Context, id string, dto post.PostUpdateDTO) (*post.PostDTO, error) {
	f.calls++
	return f.update(ctx, id, dto)
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	f.calls++
	return f.delete(ctx, id)
}

func setup(repo post.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false), middleware.Recovery())
	NewPostHandler(repo).RegisterRoutes(r)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func samplePost() post.PostDTO {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return post.PostDTO{
		ID:          postID,
		Title:       "Hello",
		Description: "A first post.",
		Content:     "Lorem ipsum dolor sit amet.",
		Author: author.AuthorDTO{
			ID:        authorID,
			FirstName: "John",
			LastName:  "Doe",
			Biography: "An amazing author.",
		},
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}

func TestPostHandler_List(t *testing.T) {
	repo := &fakeRepository{
		findAll: func(context.Context) (*post.PostDTOList, error) {
			return &post.PostDTOList{Posts: []post.PostDTO{samplePost()}}, nil
		},
	}

	w := do(setup(repo), http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got post.PostDTOList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []post.PostDTO{samplePost()}, got.Posts)
}

func TestPostHandler_GetByIDNotFound(t *testing.T) {
	repo := &fakeRepository{
		findByID: func(context.Context, string) (*post.PostDTO, error) {
			return nil, apperror.NotFound
		},
	}

	w := do(setup(repo), http.MethodGet, "/posts/"+postID, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, apperror.NotFound, body.Key)
	assert.Equal(t, "Error when get post by id "+postID, body.Message)
}

func TestPostHandler_GetByIDInvalidID(t *testing.T) {
	repo := &fakeRepository{}

	w := do(setup(repo), http.MethodGet, "/posts/invalid-id", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, apperror.InvalidInput, body.Key)
	assert.Equal(t, "Invalid post ID", body.Message)
	assert.Zero(t, repo.calls)
}

func TestPostHandler_Create(t *testing.T) {
	repo := &fakeRepository{
		create: func(_ context.Context, dto post.PostCreateDTO) (*post.PostDTO, error) {
			out := samplePost()
			out.Title = *dto.Title
			return &out, nil
		},
	}

	w := do(setup(repo), http.MethodPost, "/posts",
		`{"title":"Hello","description":"A first post.","content":"Lorem ipsum dolor sit amet.","authorId":"`+authorID+`"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got post.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, samplePost(), got)
}

func TestPostHandler_CreateRejectsLongTitle(t *testing.T) {
	repo := &fakeRepository{}
	body := `{"title":"` + strings.Repeat("t", 101) + `","description":"d","content":"c","authorId":"` + authorID + `"}`

	w := do(setup(repo), http.MethodPost, "/posts", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title is too long", errorBody(t, w).Message)
	assert.Zero(t, repo.calls)
}

func TestPostHandler_CreateUnknownAuthor(t *testing.T) {
	repo := &fakeRepository{
		create: func(context.Context, post.PostCreateDTO) (*post.PostDTO, error) {
			return nil, apperror.Validation
		},
	}

	w := do(setup(repo), http.MethodPost, "/posts",
		`{"title":"Hello","description":"d","content":"c","authorId":"`+authorID+`"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, post.CreateErrorMessage, errorBody(t, w).Message)
}

func TestPostHandler_Update(t *testing.T) {
	repo := &fakeRepository{
		update: func(_ context.Context, id string, dto post.PostUpdateDTO) (*post.PostDTO, error) {
			require.Equal(t, postID, id)
			out := samplePost()
			out.Content = *dto.Content
			return &out, nil
		},
	}

	w := do(setup(repo), http.MethodPatch, "/posts/"+postID, `{"content":"Rewritten"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var got post.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Rewritten", got.Content)
}

func TestPostHandler_UpdateRejectsBadAuthor(t *testing.T) {
	repo := &fakeRepository{}

	w := do(setup(repo), http.MethodPatch, "/posts/"+postID, `{"authorId":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid author ID", errorBody(t, w).Message)
	assert.Zero(t, repo.calls)
}

func TestPostHandler_Delete(t *testing.T) {
	repo := &fakeRepository{
		delete: func(context.Context, string) error { return nil },
	}

	w := do(setup(repo), http.MethodDelete, "/posts/"+postID, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPostHandler_DeleteUnexpectedError(t *testing.T) {
	repo := &fakeRepository{
		delete: func(context.Context, string) error { return errors.New("not primary") },
	}

	w := do(setup(repo), http.MethodDelete, "/posts/"+postID, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, apperror.InternalServer, body.Key)
	assert.Equal(t, "not primary", body.Error)
}
