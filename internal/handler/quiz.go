package handler

import (
	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/logger"
	"autoworld/internal/middleware"
	"autoworld/internal/service"
	"autoworld/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, v *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: v,
	}
}

// GetCurrent godoc
// @Summary Get the current quiz view
// @Description Returns the active question, or the final summary once the quiz is finished
// @Tags quiz
// @Security SessionToken
// @Produce json
// @Success 200 {object} dto.QuizStateResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /quiz [get]
func (h *QuizHandler) GetCurrent(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.Current(c.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// SubmitAnswer godoc
// @Summary Lock in an answer
// @Description Locks the chosen option in for the current question. A second answer is ignored.
// @Tags quiz
// @Security SessionToken
// @Accept json
// @Produce json
// @Param request body dto.AnswerRequest true "Chosen option (0-3)"
// @Success 200 {object} domain.SelectionOutcome
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /quiz/answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}

	outcome, err := h.service.SelectAnswer(c.UserContext(), sessionID, *req.Choice)
	if err != nil {
		return err
	}
	if outcome.Summary != nil && outcome.Accepted {
		logger.Get().Info("Quiz finished",
			zap.String("sessionID", sessionID),
			zap.Int("percentage", outcome.Summary.Percentage))
	}
	return c.JSON(outcome)
}

// Advance godoc
// @Summary Move to the next question
// @Tags quiz
// @Security SessionToken
// @Produce json
// @Success 200 {object} domain.AdvanceOutcome
// @Failure 409 {object} middleware.ErrorResponse "The current question has not been answered"
// @Router /quiz/advance [post]
func (h *QuizHandler) Advance(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	outcome, err := h.service.Advance(c.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(outcome)
}

// Restart godoc
// @Summary Restart the quiz
// @Tags quiz
// @Security SessionToken
// @Produce json
// @Success 200 {object} dto.QuizStateResponse
// @Router /quiz/restart [post]
func (h *QuizHandler) Restart(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.Restart(c.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}
