package dto

import "autoworld/internal/domain"

// AnswerRequest represents the answer a visitor clicked
// @Description Request body for locking in an answer
type AnswerRequest struct {
	Choice *int `json:"choice" validate:"required,min=0,max=3"`
}

// QuizStateResponse represents the quiz as the page should render it
// @Description Current question, or the final summary once finished
type QuizStateResponse struct {
	Phase    domain.QuizPhase     `json:"phase"`
	Score    int                  `json:"score"`
	Question *domain.QuestionView `json:"question,omitempty"`
	Summary  *domain.Summary      `json:"summary,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
