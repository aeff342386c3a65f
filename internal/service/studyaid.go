package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"studygeni/internal/genai"
	"studygeni/internal/model"
	"studygeni/internal/repository"
)

// ErrGeneration signals that the generation backend call failed or returned
// output that could not be parsed. The underlying cause is logged for
// operators and never surfaced to callers.
var ErrGeneration = errors.New("failed to generate study aid")

// SummaryResult is the transient summary artifact shaped for the API response.
type SummaryResult struct {
	FileID      string    `json:"fileId"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// QuizResult is the transient quiz artifact shaped for the API response.
type QuizResult struct {
	FileID         string               `json:"fileId"`
	Title          string               `json:"title"`
	Subject        string               `json:"subject"`
	Quiz           []model.QuizQuestion `json:"quiz"`
	TotalQuestions int                  `json:"totalQuestions"`
	GeneratedAt    time.Time            `json:"generatedAt"`
}

// StudyAidService generates study aids from a document's metadata. Artifacts
// are recomputed on every call; nothing is cached or persisted.
type StudyAidService interface {
	// Summary generates a prose summary for the document.
	Summary(ctx context.Context, docID string) (*SummaryResult, error)

	// Quiz generates a validated 5-question multiple-choice quiz.
	Quiz(ctx context.Context, docID string) (*QuizResult, error)
}

type studyAidService struct {
	repo repository.DocumentRepository
	gen  genai.Client
}

// NewStudyAidService constructs a new StudyAidService.
func NewStudyAidService(repo repository.DocumentRepository, gen genai.Client) StudyAidService {
	return &studyAidService{repo: repo, gen: gen}
}

func (s *studyAidService) Summary(ctx context.Context, docID string) (*SummaryResult, error) {
	doc, err := s.loadDocument(ctx, docID)
	if err != nil {
		return nil, err
	}

	prompt := genai.BuildPrompt(genai.ModeSummary, doc.Title, doc.Subject, doc.Description)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("summary generation failed for document %s: %v", doc.ID, err)
		return nil, ErrGeneration
	}

	return &SummaryResult{
		FileID:      doc.ID,
		Title:       doc.Title,
		Subject:     doc.Subject,
		Summary:     text,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *studyAidService) Quiz(ctx context.Context, docID string) (*QuizResult, error) {
	doc, err := s.loadDocument(ctx, docID)
	if err != nil {
		return nil, err
	}

	prompt := genai.BuildPrompt(genai.ModeQuiz, doc.Title, doc.Subject, doc.Description)
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("quiz generation failed for document %s: %v", doc.ID, err)
		return nil, ErrGeneration
	}

	questions, err := genai.ParseQuiz(raw)
	if err != nil {
		// Garbage output is reported the same way as a backend failure.
		log.Printf("quiz parsing failed for document %s: %v", doc.ID, err)
		return nil, ErrGeneration
	}

	return &QuizResult{
		FileID:         doc.ID,
		Title:          doc.Title,
		Subject:        doc.Subject,
		Quiz:           questions,
		TotalQuestions: len(questions),
		GeneratedAt:    time.Now().UTC(),
	}, nil
}

func (s *studyAidService) loadDocument(ctx context.Context, docID string) (*model.Document, error) {
	if docID == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, docID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
