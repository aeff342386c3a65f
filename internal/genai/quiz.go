package genai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"studygeni/internal/model"
)

// ErrUnparsableQuiz signals that the generation backend returned output that
// could not be decoded or validated as a quiz. It is never silently coerced
// into a partial or empty quiz.
var ErrUnparsableQuiz = errors.New("generation produced unparsable output")

const (
	quizQuestionCount = 5
	quizOptionCount   = 4
)

// ParseQuiz decodes the raw text reply of the generation backend into a
// validated quiz. The backend is untrusted: despite the prompt's instructions
// it may wrap the payload in code fences or return garbage, so the payload is
// stripped of incidental formatting and then fully validated. Any structural
// violation fails closed with ErrUnparsableQuiz.
func ParseQuiz(raw string) ([]model.QuizQuestion, error) {
	s := stripCodeFences(strings.TrimSpace(raw))

	var questions []model.QuizQuestion
	if err := json.Unmarshal([]byte(s), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableQuiz, err)
	}
	if err := validateQuiz(questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableQuiz, err)
	}
	return questions, nil
}

// stripCodeFences removes a surrounding markdown code fence, including a
// language tag immediately after the opening fence ("```json").
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func validateQuiz(questions []model.QuizQuestion) error {
	if len(questions) != quizQuestionCount {
		return fmt.Errorf("expected %d questions, got %d", quizQuestionCount, len(questions))
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("question %d: empty question text", i+1)
		}
		if len(q.Options) != quizOptionCount {
			return fmt.Errorf("question %d: expected %d options, got %d", i+1, quizOptionCount, len(q.Options))
		}
		switch q.CorrectAnswer {
		case "A", "B", "C", "D":
		default:
			return fmt.Errorf("question %d: correctAnswer %q is not one of A, B, C, D", i+1, q.CorrectAnswer)
		}
		if strings.TrimSpace(q.Explanation) == "" {
			return fmt.Errorf("question %d: empty explanation", i+1)
		}
	}
	return nil
}
