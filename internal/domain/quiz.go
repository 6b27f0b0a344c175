package domain

import (
	"fmt"
	"math"
	"strings"
)

// AnswerCount is the number of options every question offers.
const AnswerCount = 4

// NoSelection marks a question that has not been answered yet.
const NoSelection = -1

// Question is one immutable multiple-choice question of the quiz bank.
type Question struct {
	Prompt  string   `json:"prompt"`
	Answers []string `json:"answers"`
	Correct int      `json:"correct"` // 0-based index into Answers
}

// Validate validates the question
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return NewInvalidInputError("question prompt is required")
	}
	if len(q.Answers) != AnswerCount {
		return NewInvalidInputError(fmt.Sprintf("question %q must have exactly %d answers, got %d", q.Prompt, AnswerCount, len(q.Answers)))
	}
	if q.Correct < 0 || q.Correct >= len(q.Answers) {
		return NewInvalidInputError(fmt.Sprintf("question %q has correct index %d out of range", q.Prompt, q.Correct))
	}
	return nil
}

// QuestionBank is the ordered, load-time list of questions.
type QuestionBank []Question

// Validate checks every question of the bank.
func (b QuestionBank) Validate() error {
	if len(b) == 0 {
		return NewInvalidInputError("question bank is empty")
	}
	for _, q := range b {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultQuestionBank returns the automotive quiz shipped with the site.
func DefaultQuestionBank() QuestionBank {
	return QuestionBank{
		{
			Prompt:  "What does 'MPG' stand for in automotive terms?",
			Answers: []string{"Miles Per Gallon", "Maximum Power Generated", "Motor Performance Grade", "Manual Power Gear"},
			Correct: 0,
		},
		{
			Prompt:  "Which type of engine typically provides better fuel efficiency?",
			Answers: []string{"V8 Engine", "V6 Engine", "4-Cylinder Engine", "V12 Engine"},
			Correct: 2,
		},
		{
			Prompt:  "What is the primary advantage of hybrid vehicles?",
			Answers: []string{"Higher top speed", "Better fuel economy", "Louder engine sound", "More cargo space"},
			Correct: 1,
		},
		{
			Prompt:  "What does 'ABS' stand for in automotive safety?",
			Answers: []string{"Automatic Brake System", "Anti-lock Braking System", "Advanced Brake Support", "Air Bag Safety"},
			Correct: 1,
		},
		{
			Prompt:  "Which component is responsible for converting fuel into motion?",
			Answers: []string{"Transmission", "Engine", "Differential", "Alternator"},
			Correct: 1,
		},
	}
}

// QuizPhase is the state of the quiz state machine.
type QuizPhase string

const (
	PhaseAwaitingAnswer QuizPhase = "awaiting_answer"
	PhaseAnswered       QuizPhase = "answered"
	PhaseFinished       QuizPhase = "finished"
)

// QuizSession is the mutable progress of one quiz run.
type QuizSession struct {
	Index    int       `json:"index"`
	Score    int       `json:"score"`
	Selected int       `json:"selected"`
	Phase    QuizPhase `json:"phase"`
}

// NewQuizSession returns a session positioned on the first question.
func NewQuizSession() QuizSession {
	return QuizSession{Index: 0, Score: 0, Selected: NoSelection, Phase: PhaseAwaitingAnswer}
}

// Locked reports whether an answer is locked in for the current question.
func (s QuizSession) Locked() bool {
	return s.Selected != NoSelection
}

// OptionMark is how one answer option is rendered.
type OptionMark string

const (
	MarkNone      OptionMark = ""
	MarkCorrect   OptionMark = "correct"
	MarkIncorrect OptionMark = "incorrect"
)

// Tone colours the inline result text.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

type AnswerOption struct {
	Index    int        `json:"index"`
	Text     string     `json:"text"`
	Mark     OptionMark `json:"mark,omitempty"`
	Disabled bool       `json:"disabled"`
}

type Feedback struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// QuestionView is the render description of the active question.
type QuestionView struct {
	Number      int            `json:"number"` // 1-based
	Total       int            `json:"total"`
	Prompt      string         `json:"prompt"`
	Options     []AnswerOption `json:"options"`
	Result      *Feedback      `json:"result,omitempty"`
	ShowAdvance bool           `json:"show_advance"`
}

// ScoreTier groups final percentages into messages.
type ScoreTier string

const (
	TierTop ScoreTier = "top"
	TierMid ScoreTier = "mid"
	TierLow ScoreTier = "low"
)

type Summary struct {
	Score          int       `json:"score"`
	Total          int       `json:"total"`
	Percentage     int       `json:"percentage"`
	Tier           ScoreTier `json:"tier"`
	Message        string    `json:"message"`
	RestartOffered bool      `json:"restart_offered"`
}

// SelectionOutcome describes what a SelectAnswer call changed.
type SelectionOutcome struct {
	Accepted        bool         `json:"accepted"`
	AlreadyAnswered bool         `json:"already_answered"`
	Correct         bool         `json:"correct"`
	Message         string       `json:"message,omitempty"`
	View            QuestionView `json:"view"`
	Summary         *Summary     `json:"summary,omitempty"`
}

// AdvanceOutcome describes what an Advance call changed.
type AdvanceOutcome struct {
	Finished bool          `json:"finished"`
	View     *QuestionView `json:"view,omitempty"`
	Summary  *Summary      `json:"summary,omitempty"`
}

// AlreadyAnsweredMessage is the inline message for a second answer on the same question.
const AlreadyAnsweredMessage = "Answer already locked for this question"

// DisplayCurrentQuestion renders the question at the session's index.
// A locked selection is rendered with its marks so the view survives a reload of the session.
func DisplayCurrentQuestion(bank QuestionBank, s QuizSession) QuestionView {
	q := bank[s.Index]
	view := QuestionView{
		Number:  s.Index + 1,
		Total:   len(bank),
		Prompt:  q.Prompt,
		Options: make([]AnswerOption, len(q.Answers)),
	}
	for i, text := range q.Answers {
		view.Options[i] = AnswerOption{Index: i, Text: text}
	}
	if !s.Locked() {
		return view
	}

	for i := range view.Options {
		view.Options[i].Disabled = true
		if i == q.Correct {
			view.Options[i].Mark = MarkCorrect
		} else if i == s.Selected {
			view.Options[i].Mark = MarkIncorrect
		}
	}
	if s.Selected == q.Correct {
		view.Result = &Feedback{Text: "✅ Correct!", Tone: ToneSuccess}
	} else {
		view.Result = &Feedback{
			Text: fmt.Sprintf("❌ Incorrect! The correct answer is: %s", q.Answers[q.Correct]),
			Tone: ToneError,
		}
	}
	view.ShowAdvance = s.Phase == PhaseAnswered
	return view
}

// SelectAnswer locks choice in for the current question.
// A second call for the same question is a no-op reported through AlreadyAnswered.
func SelectAnswer(bank QuestionBank, s QuizSession, choice int) (QuizSession, SelectionOutcome, error) {
	q := bank[s.Index]
	if choice < 0 || choice >= len(q.Answers) {
		return s, SelectionOutcome{}, NewInvalidInputError(
			fmt.Sprintf("choice must be between 0 and %d", len(q.Answers)-1)).WithContext("choice", choice)
	}

	if s.Locked() || s.Phase != PhaseAwaitingAnswer {
		out := SelectionOutcome{
			AlreadyAnswered: true,
			Correct:         s.Selected == q.Correct,
			Message:         AlreadyAnsweredMessage,
			View:            DisplayCurrentQuestion(bank, s),
		}
		if s.Phase == PhaseFinished {
			sum := FinalSummary(bank, s)
			out.Summary = &sum
		}
		return s, out, nil
	}

	next := s
	next.Selected = choice
	correct := choice == q.Correct
	if correct {
		next.Score++
	}
	if next.Index < len(bank)-1 {
		next.Phase = PhaseAnswered
	} else {
		next.Phase = PhaseFinished
	}

	out := SelectionOutcome{
		Accepted: true,
		Correct:  correct,
		View:     DisplayCurrentQuestion(bank, next),
	}
	if next.Phase == PhaseFinished {
		sum := FinalSummary(bank, next)
		out.Summary = &sum
	}
	return next, out, nil
}

// Advance moves past an answered question.
func Advance(bank QuestionBank, s QuizSession) (QuizSession, AdvanceOutcome, error) {
	switch s.Phase {
	case PhaseAwaitingAnswer:
		return s, AdvanceOutcome{}, NewAnswerRequiredError(s.Index + 1)
	case PhaseFinished:
		sum := FinalSummary(bank, s)
		return s, AdvanceOutcome{Finished: true, Summary: &sum}, nil
	}

	next := s
	next.Index++
	if next.Index < len(bank) {
		next.Selected = NoSelection
		next.Phase = PhaseAwaitingAnswer
		view := DisplayCurrentQuestion(bank, next)
		return next, AdvanceOutcome{View: &view}, nil
	}

	// Past the end: stay on the last answered question.
	next.Index = len(bank) - 1
	next.Phase = PhaseFinished
	sum := FinalSummary(bank, next)
	return next, AdvanceOutcome{Finished: true, Summary: &sum}, nil
}

// Percentage returns round(score / total * 100), rounding halves away from zero.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// TierFor maps a percentage to its message tier.
func TierFor(percentage int) ScoreTier {
	switch {
	case percentage >= 80:
		return TierTop
	case percentage >= 60:
		return TierMid
	default:
		return TierLow
	}
}

// FinalSummary computes the closing score message.
func FinalSummary(bank QuestionBank, s QuizSession) Summary {
	total := len(bank)
	pct := Percentage(s.Score, total)
	tier := TierFor(pct)

	var prefix string
	switch tier {
	case TierTop:
		prefix = "🏆 Excellent!"
	case TierMid:
		prefix = "👍 Good job!"
	default:
		prefix = "📚 Keep learning!"
	}

	return Summary{
		Score:          s.Score,
		Total:          total,
		Percentage:     pct,
		Tier:           tier,
		Message:        fmt.Sprintf("%s You scored %d/%d (%d%%)", prefix, s.Score, total, pct),
		RestartOffered: true,
	}
}

// Restart returns the initial session.
func Restart() QuizSession {
	return NewQuizSession()
}
