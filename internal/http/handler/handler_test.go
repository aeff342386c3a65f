package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studygeni/internal/model"
	"studygeni/internal/service"
	serviceMocks "studygeni/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response wrapper for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.False(t, env.Success)
		assert.Equal(t, "dependency unavailable", env.Message)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// multipartUpload builds a multipart body with the standard upload fields.
func multipartUpload(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		part.Write([]byte("file content"))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/documents", UploadDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, ct := multipartUpload(t, map[string]string{
			"title":       "Algebra Basics",
			"subject":     "Math",
			"description": "Intro to variables",
		}, "notes.pdf")

		expectedDoc := &model.Document{ID: uuid.New().String(), Title: "Algebra Basics", FileType: "pdf"}
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.Title == "Algebra Basics" &&
				in.Subject == "Math" &&
				in.OriginalFilename == "notes.pdf" &&
				in.LocalPath != ""
		})).Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.True(t, env.Success)
		assert.Equal(t, "Document uploaded successfully", env.Message)

		var result model.Document
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, expectedDoc.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		body, ct := multipartUpload(t, map[string]string{"subject": "Math"}, "notes.pdf")

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrTitleRequired.Error(), env.Message)
	})

	t.Run("missing subject", func(t *testing.T) {
		body, ct := multipartUpload(t, map[string]string{"title": "Algebra Basics"}, "notes.pdf")

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrSubjectRequired.Error(), env.Message)
	})

	t.Run("no file", func(t *testing.T) {
		body, ct := multipartUpload(t, map[string]string{
			"title":   "Algebra Basics",
			"subject": "Math",
		}, "")

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrFileRequired.Error(), env.Message)
	})

	t.Run("disallowed file type", func(t *testing.T) {
		body, ct := multipartUpload(t, map[string]string{
			"title":   "Algebra Basics",
			"subject": "Math",
		}, "notes.zip")

		mockSvc.On("Upload", mock.Anything, mock.Anything).
			Return(nil, service.ErrFileTypeNotAllowed).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrFileTypeNotAllowed.Error(), env.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage error", func(t *testing.T) {
		body, ct := multipartUpload(t, map[string]string{
			"title":   "Algebra Basics",
			"subject": "Math",
		}, "notes.pdf")

		mockSvc.On("Upload", mock.Anything, mock.Anything).
			Return(nil, service.ErrStorage).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrStorage.Error(), env.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.DocumentListResult{
			Items: []model.Document{{ID: uuid.New().String(), Title: "Algebra Basics"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expectedRes, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.True(t, env.Success)

		var result service.DocumentListResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("default returns all", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 0, 0).
			Return(&service.DocumentListResult{Items: []model.Document{}, Total: 0}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, "invalid limit", env.Message)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 0, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		expectedDoc := &model.Document{
			ID:    id,
			Title: "Algebra Basics",
			Owner: &model.OwnerInfo{Name: "Ada", Email: "ada@example.com"},
		}
		mockSvc.On("Get", mock.Anything, id).Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		var result model.Document
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, id, result.ID)
		if assert.NotNil(t, result.Owner) {
			assert.Equal(t, "Ada", result.Owner.Name)
		}
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrNotFound.Error(), env.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, "invalid id format", env.Message)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetSummary(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyAidService)
	app := fiber.New()
	app.Get("/documents/:id/summary", GetSummary(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		expected := &service.SummaryResult{
			FileID:      id,
			Title:       "Algebra Basics",
			Subject:     "Math",
			Summary:     "A short summary.",
			GeneratedAt: time.Now().UTC(),
		}
		mockSvc.On("Summary", mock.Anything, id).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/summary", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		var result service.SummaryResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, id, result.FileID)
		assert.Equal(t, "A short summary.", result.Summary)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Summary", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/summary", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("generation failure yields generic message", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Summary", mock.Anything, id).Return(nil, service.ErrGeneration).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/summary", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, genericGenerationMessage, env.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents/not-a-uuid/summary", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetQuiz(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyAidService)
	app := fiber.New()
	app.Get("/documents/:id/quiz", GetQuiz(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		questions := make([]model.QuizQuestion, 5)
		for i := range questions {
			questions[i] = model.QuizQuestion{
				Question:      "Q?",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: "A",
				Explanation:   "Because.",
			}
		}
		expected := &service.QuizResult{
			FileID:         id,
			Title:          "Algebra Basics",
			Subject:        "Math",
			Quiz:           questions,
			TotalQuestions: 5,
			GeneratedAt:    time.Now().UTC(),
		}
		mockSvc.On("Quiz", mock.Anything, id).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/quiz", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		var result service.QuizResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Len(t, result.Quiz, 5)
		assert.Equal(t, 5, result.TotalQuestions)
		mockSvc.AssertExpectations(t)
	})

	t.Run("generation failure yields generic message", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Quiz", mock.Anything, id).Return(nil, service.ErrGeneration).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id+"/quiz", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, genericGenerationMessage, env.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestRegister(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/register", Register(mockSvc))

	postJSON := func(t *testing.T, payload any) *http.Response {
		t.Helper()
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		expected := &model.User{ID: uuid.New().String(), Name: "Ada", Email: "ada@example.com", Role: "teacher"}
		mockSvc.On("Register", mock.Anything, service.RegisterInput{
			Name: "Ada", Email: "ada@example.com", Password: "supersecret", Role: "teacher",
		}).Return(expected, nil).Once()

		resp := postJSON(t, map[string]string{
			"name": "Ada", "email": "ada@example.com", "password": "supersecret", "role": "teacher",
		})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Account created successfully", env.Message)

		var result model.User
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, expected.ID, result.ID)
		// Password hash is never serialized.
		assert.NotContains(t, string(env.Data), "password")
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, service.ErrPasswordTooShort).Once()

		resp := postJSON(t, map[string]string{
			"name": "Ada", "email": "ada@example.com", "password": "short", "role": "teacher",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrPasswordTooShort.Error(), env.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, service.ErrEmailTaken).Once()

		resp := postJSON(t, map[string]string{
			"name": "Ada", "email": "taken@example.com", "password": "supersecret", "role": "teacher",
		})

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/login", Login(mockSvc))

	postJSON := func(t *testing.T, payload any) *http.Response {
		t.Helper()
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		user := &model.User{ID: uuid.New().String(), Email: "ada@example.com", Role: "teacher"}
		mockSvc.On("Login", mock.Anything, "ada@example.com", "supersecret").
			Return("signed-token", user, nil).Once()

		resp := postJSON(t, map[string]string{"email": "ada@example.com", "password": "supersecret"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		var result struct {
			Token string     `json:"token"`
			User  model.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, user.ID, result.User.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "ada@example.com", "wrongpass").
			Return("", nil, service.ErrInvalidCredentials).Once()

		resp := postJSON(t, map[string]string{"email": "ada@example.com", "password": "wrongpass"})

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.Equal(t, service.ErrInvalidCredentials.Error(), env.Message)
		mockSvc.AssertExpectations(t)
	})
}
