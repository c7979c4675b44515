package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mamta-server/internal/domain/files"
	"mamta-server/internal/interfaces/httpserver/handlers"
	"mamta-server/internal/utils/platformerrors"
)

// MockFilesService is a mock implementation of files.Service for testing.
type MockFilesService struct {
	UploadFunc func(ctx context.Context, params files.UploadParams) (*files.UploadResult, error)
	ListFunc   func(ctx context.Context) ([]files.Info, error)
}

func (m *MockFilesService) Upload(ctx context.Context, params files.UploadParams) (*files.UploadResult, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockFilesService) List(ctx context.Context) ([]files.Info, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func setupFileTestRouter(handler *handlers.FileHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload-file", handler.Upload)
	r.GET("/list-files", handler.List)
	return r
}

func multipartUpload(t *testing.T, fieldName, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("Failed to build multipart body: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("Failed to write multipart body: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart body: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestFileHandler_Upload(t *testing.T) {
	var gotParams files.UploadParams
	mockService := &MockFilesService{
		UploadFunc: func(_ context.Context, params files.UploadParams) (*files.UploadResult, error) {
			gotParams = params
			return &files.UploadResult{
				Filename: params.Filename,
				FileURI:  "https://generativelanguage.googleapis.com/v1beta/files/abc",
				MimeType: params.MimeType,
			}, nil
		},
	}

	handler := handlers.NewFileHandler(mockService, zerolog.Nop())
	router := setupFileTestRouter(handler)

	body, contentType := multipartUpload(t, "file", "report.pdf", []byte("%PDF-1.4 fake"))
	req, _ := http.NewRequest("POST", "/upload-file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
	if response["filename"] != "report.pdf" {
		t.Errorf("Expected filename report.pdf, got %v", response["filename"])
	}
	if response["fileUri"] == "" {
		t.Error("Expected a file uri in the response")
	}

	if gotParams.Filename != "report.pdf" {
		t.Errorf("Expected filename to reach the service, got %q", gotParams.Filename)
	}
	if gotParams.MimeType != "application/pdf" {
		t.Errorf("Expected mime type inferred from extension, got %q", gotParams.MimeType)
	}
	if string(gotParams.Data) != "%PDF-1.4 fake" {
		t.Errorf("Expected file bytes to reach the service, got %q", gotParams.Data)
	}
}

func TestFileHandler_UploadRequiresFile(t *testing.T) {
	handler := handlers.NewFileHandler(&MockFilesService{}, zerolog.Nop())
	router := setupFileTestRouter(handler)

	body, contentType := multipartUpload(t, "wrong_field", "report.pdf", []byte("data"))
	req, _ := http.NewRequest("POST", "/upload-file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["success"] != false {
		t.Errorf("Expected success false, got %v", response["success"])
	}
}

func TestFileHandler_UploadMapsServiceError(t *testing.T) {
	mockService := &MockFilesService{
		UploadFunc: func(ctx context.Context, _ files.UploadParams) (*files.UploadResult, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeUpload, "file relay failed", nil)
		},
	}

	handler := handlers.NewFileHandler(mockService, zerolog.Nop())
	router := setupFileTestRouter(handler)

	body, contentType := multipartUpload(t, "file", "report.pdf", []byte("data"))
	req, _ := http.NewRequest("POST", "/upload-file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestFileHandler_List(t *testing.T) {
	mockService := &MockFilesService{
		ListFunc: func(context.Context) ([]files.Info, error) {
			return []files.Info{
				{Name: "files/a", URI: "uri-a", MimeType: "image/png"},
			}, nil
		},
	}

	handler := handlers.NewFileHandler(mockService, zerolog.Nop())
	router := setupFileTestRouter(handler)

	req, _ := http.NewRequest("GET", "/list-files", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
	items, ok := response["files"].([]interface{})
	if !ok {
		t.Fatalf("Expected files array, got %T", response["files"])
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 file, got %d", len(items))
	}
}

func TestFileHandler_ListMapsServiceError(t *testing.T) {
	mockService := &MockFilesService{
		ListFunc: func(ctx context.Context) ([]files.Info, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeUpstream, "list files failed", nil)
		},
	}

	handler := handlers.NewFileHandler(mockService, zerolog.Nop())
	router := setupFileTestRouter(handler)

	req, _ := http.NewRequest("GET", "/list-files", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
}
