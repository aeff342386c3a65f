package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"studygeni/internal/model"
	"studygeni/internal/repository"
	"studygeni/internal/storage"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("document not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrSubjectRequired    = errors.New("subject is required")
	ErrFileRequired       = errors.New("file is required")
	ErrFileTypeNotAllowed = errors.New("invalid file type: only pdf, docx, ppt and pptx files are allowed")
	ErrStorage            = errors.New("failed to upload file to storage")
)

// storageFolder is the logical grouping all uploaded objects live under.
const storageFolder = "studygeni"

// UploadInput describes one staged upload. LocalPath points at the transient
// local copy written by the HTTP layer; the service deletes it on every exit
// path, success or failure.
type UploadInput struct {
	Title            string
	Description      string
	Subject          string
	LocalPath        string
	OriginalFilename string
	ContentType      string
	OwnerID          string
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload validates the staged file, transfers it to object storage, and
	// persists the document record. Storage is rolled back if the record
	// write fails; the transient local file never survives the call.
	Upload(ctx context.Context, in UploadInput) (*model.Document, error)

	// List returns documents newest-first. Limit <= 0 returns all.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	// The staged temp file must not leak regardless of which stage fails.
	defer removeIfExists(in.LocalPath)

	// Cheapest checks first: required fields before any storage or network work.
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Subject == "" {
		return nil, ErrSubjectRequired
	}
	if in.LocalPath == "" || in.OriginalFilename == "" {
		return nil, ErrFileRequired
	}

	fileType, ok := model.FileTypeForFilename(in.OriginalFilename)
	if !ok {
		return nil, ErrFileTypeNotAllowed
	}
	if !model.IsAllowedMIME(in.ContentType) {
		return nil, ErrFileTypeNotAllowed
	}

	res, err := s.store.UploadFile(ctx, in.LocalPath, storage.UploadOptions{
		Folder:      storageFolder,
		ContentType: in.ContentType,
	})
	if err != nil {
		log.Printf("storage upload failed: %v", err)
		return nil, ErrStorage
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Subject:     in.Subject,
		FileURL:     res.URL,
		FileType:    fileType,
		StorageID:   res.StorageID,
		CreatedBy:   in.OwnerID,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: remove the object so no orphaned remote copy remains.
		if delErr := s.store.Remove(ctx, res.StorageID); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns paginated documents without exposing repository types.
func (s *documentService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// removeIfExists deletes the transient local file, tolerating it being gone.
func removeIfExists(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to remove temp file %s: %v", path, err)
	}
}
