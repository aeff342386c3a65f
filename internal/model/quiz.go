package model

// QuizQuestion is one multiple-choice question of a generated quiz.
// Options holds exactly four labeled choices ("A) ..." through "D) ...") and
// CorrectAnswer is the single letter of the right option.
//
// Quiz content is transient: it is regenerated on every request and never
// persisted.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}
