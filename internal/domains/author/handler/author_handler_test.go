package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

const validID = "507f1f77bcf86cd799439011"

type fakeRepository struct {
	findAll  func(ctx context.Context) (*author.AuthorDTOList, error)
	findByID func(ctx context.Context, id string) (*author.AuthorDTO, error)
	create   func(ctx context.Context, dto author.AuthorCreateDTO) (*author.AuthorDTO, error)
	update   func(ctx context.Context, id string, dto author.AuthorUpdateDTO) (*author.AuthorDTO, error)
	delete   func(ctx context.Context, id string) error

	calls int
}

func (f *fakeRepository) FindAll(ctx context.Context) (*author.AuthorDTOList, error) {
	f.calls++
	return f.findAll(ctx)
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*author.AuthorDTO, error) {
	f.calls++
	return f.findByID(ctx, id)
}

func (f *fakeRepository) Create(ctx context.Context, dto author.AuthorCreateDTO) (*author.AuthorDTO, error) {
	f.calls++
	return f.create(ctx, dto)
}

func (f *fakeRepository) Update(ctx context.Context, id string, dto author.AuthorUpdateDTO) (*author.AuthorDTO, error) {
	f.calls++
	return f.update(ctx, id, dto)
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	f.calls++
	return f.delete(ctx, id)
}

func setup(repo author.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false), middleware.Recovery())
	NewAuthorHandler(repo).RegisterRoutes(r)
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

var john = author.AuthorDTO{
	ID:        validID,
	FirstName: "John",
	LastName:  "Doe",
	Biography: "An amazing author.",
}

func TestAuthorHandler_List(t *testing.T) {
	repo := &fakeRepository{
		findAll: func(context.Context) (*author.AuthorDTOList, error) {
			return &author.AuthorDTOList{Authors: []author.AuthorDTO{john}}, nil
		},
	}

	w := do(setup(repo), http.MethodGet, "/authors", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authors":[{"id":"507f1f77bcf86cd799439011","firstName":"John","lastName":"Doe","biography":"An amazing author."}]}`, w.Body.String())
}

func TestAuthorHandler_ListEmpty(t *testing.T) {
	repo := &fakeRepository{
		findAll: func(context.Context) (*author.AuthorDTOList, error) {
			return &author.AuthorDTOList{Authors: []author.AuthorDTO{}}, nil
		},
	}

	w := do(setup(repo), http.MethodGet, "/authors", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authors":[]}`, w.Body.String())
}

func TestAuthorHandler_Create(t *testing.T) {
	var received author.AuthorCreateDTO
	repo := &fakeRepository{
		create: func(_ context.Context, dto author.AuthorCreateDTO) (*author.AuthorDTO, error) {
			received = dto
			out := john
			return &out, nil
		},
	}

	w := do(setup(repo), http.MethodPost, "/authors",
		`{"firstName":"John","lastName":"Doe","biography":"An amazing author."}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, received.FirstName)
	assert.Equal(t, "John", *received.FirstName)

	var got author.AuthorDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, john, got)
}

func TestAuthorHandler_CreateRejectsInvalidBody(t *testing.T) {
	repo := &fakeRepository{}

	w := do(setup(repo), http.MethodPost, "/authors", `{"firstName":"","lastName":"Doe","biography":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, apperror.InvalidInput, body.Key)
	assert.Equal(t, "First name is too short", body.Message)
	assert.Zero(t, repo.calls)
}

func TestAuthorHandler_CreateConflict(t *testing.T) {
	repo := &fakeRepository{
		create: func(context.Context, author.AuthorCreateDTO) (*author.AuthorDTO, error) {
			return nil, apperror.Conflict
		},
	}

	w := do(setup(repo), http.MethodPost, "/authors",
		`{"firstName":"John","lastName":"Doe","biography":"An amazing author."}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, author.CreateErrorMessage, errorBody(t, w).Message)
}

func TestAuthorHandler_GetByID(t *testing.T) {
	repo := &fakeRepository{
		findByID: func(_ context.Context, id string) (*author.AuthorDTO, error) {
			if id != validID {
				return nil, apperror.NotFound
			}
			out := john
			return &out, nil
		},
	}

	w := do(setup(repo), http.MethodGet, "/authors/"+validID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got author.AuthorDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, john, got)
}

func TestAuthorHandler_GetByIDInvalidID(t *testing.T) {
	repo := &fakeRepository{}

	w := do(setup(repo), http.MethodGet, "/authors/invalid-id", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, apperror.InvalidInput, body.Key)
	assert.Equal(t, "Invalid author ID", body.Message)
	assert.Zero(t, repo.calls)
}

func TestAuthorHandler_GetByIDNotFound(t *testing.T) {
	repo := &fakeRepository{
		findByID: func(context.Context, string) (*author.AuthorDTO, error) {
			return nil, apperror.NotFound
		},
	}

	w := do(setup(repo), http.MethodGet, "/authors/"+validID, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, apperror.NotFound, body.Key)
	assert.Equal(t, "Error when get author by id "+validID, body.Message)
}

func TestAuthorHandler_GetByIDValidationFailure(t *testing.T) {
	repo := &fakeRepository{
		findByID: func(context.Context, string) (*author.AuthorDTO, error) {
			return nil, apperror.Validation
		},
	}

	w := do(setup(repo), http.MethodGet, "/authors/"+validID, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, apperror.Validation, errorBody(t, w).Key)
}

func TestAuthorHandler_UnexpectedError(t *testing.T) {
	repo := &fakeRepository{
		findAll: func(context.Context) (*author.AuthorDTOList, error) {
			return nil, errors.New("server selection timeout")
		},
	}

	w := do(setup(repo), http.MethodGet, "/authors", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, apperror.InternalServer, body.Key)
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.Equal(t, "server selection timeout", body.Error)
}

func TestAuthorHandler_Update(t *testing.T) {
	var received author.AuthorUpdateDTO
	repo := &fakeRepository{
		update: func(_ context.Context, id string, dto author.AuthorUpdateDTO) (*author.AuthorDTO, error) {
			received = dto
			out := john
			out.FirstName = *dto.FirstName
			return &out, nil
		},
	}

	w := do(setup(repo), http.MethodPatch, "/authors/"+validID, `{"firstName":"Johnny"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, received.LastName)
	var got author.AuthorDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Johnny", got.FirstName)
}

func TestAuthorHandler_UpdateNotFound(t *testing.T) {
	repo := &fakeRepository{
		update: func(context.Context, string, author.AuthorUpdateDTO) (*author.AuthorDTO, error) {
			return nil, apperror.NotFound
		},
	}

	w := do(setup(repo), http.MethodPatch, "/authors/"+validID, `{"lastName":"Roe"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Error when update author with id "+validID, errorBody(t, w).Message)
}

func TestAuthorHandler_Delete(t *testing.T) {
	var deleted string
	repo := &fakeRepository{
		delete: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	w := do(setup(repo), http.MethodDelete, "/authors/"+validID, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, validID, deleted)
}

func TestAuthorHandler_DeleteNotFound(t *testing.T) {
	repo := &fakeRepository{
		delete: func(context.Context, string) error { return apperror.NotFound },
	}

	w := do(setup(repo), http.MethodDelete, "/authors/"+validID, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Error when delete author with id "+validID, errorBody(t, w).Message)
}
