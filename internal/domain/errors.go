package domain

import "errors"

var (
	// ErrSessionNotFound is returned when an assessment session does not exist.
	ErrSessionNotFound = errors.New("assessment session not found")
	// ErrInvalidGrade is returned for grades outside the supported 1-12 range.
	ErrInvalidGrade = errors.New("grade must be between 1 and 12")
	// ErrInvalidRating is returned for Likert values outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrAssessmentNotStarted indicates no question set has been drawn yet.
	ErrAssessmentNotStarted = errors.New("assessment not started")
	// ErrAssessmentComplete indicates the session already produced a result.
	ErrAssessmentComplete = errors.New("assessment already completed")
	// ErrAssessmentInProgress indicates results were requested before the final answer.
	ErrAssessmentInProgress = errors.New("assessment still in progress")
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
)
