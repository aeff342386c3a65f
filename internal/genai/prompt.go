package genai

import (
	"fmt"
	"strings"
)

// Mode selects what kind of study aid a prompt asks for.
type Mode string

const (
	ModeSummary Mode = "summary"
	ModeQuiz    Mode = "quiz"
)

const summaryTemplate = `You are a helpful study assistant. Create a clear and concise summary of the following study material for students.

Title: %s
Subject: %s
Description: %s

Provide:
1. A brief overview (2-3 sentences)
2. Key concepts covered (bullet points)
3. Important points to remember (bullet points)
4. Learning objectives

Keep the language simple and student-friendly.`

const quizTemplate = `You are a helpful study assistant. Create a multiple-choice quiz based on the following study material.

Title: %s
Subject: %s
Description: %s

Generate exactly 5 multiple-choice questions. Respond with ONLY a JSON array and nothing else: no prose, no markdown, no code fences. The array must contain exactly 5 objects, each with this shape:
{
  "question": "the question text",
  "options": ["A) first option", "B) second option", "C) third option", "D) fourth option"],
  "correctAnswer": "A",
  "explanation": "why this answer is correct"
}`

// BuildPrompt renders the instruction sent to the generation backend for the
// given mode. It performs no I/O and is deterministic: the same inputs always
// produce a byte-identical prompt, which keeps generation reproducible for
// testing with a stubbed backend.
func BuildPrompt(mode Mode, title, subject, description string) string {
	if strings.TrimSpace(description) == "" {
		description = "Not provided"
	}
	switch mode {
	case ModeQuiz:
		return fmt.Sprintf(quizTemplate, title, subject, description)
	default:
		return fmt.Sprintf(summaryTemplate, title, subject, description)
	}
}
