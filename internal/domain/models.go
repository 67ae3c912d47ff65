package domain

import "time"

// Question is one prompt from the assessment bank. Questions are defined at
// build time (or loaded from the question_bank table) and never mutated.
type Question struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	Grades  []int  `json:"grades"`
}

// AppliesTo reports whether the question is eligible for a grade level.
func (q Question) AppliesTo(grade int) bool {
	for _, g := range q.Grades {
		if g == grade {
			return true
		}
	}
	return false
}

// Answer records the Likert rating (1-5) a student gave for a question.
type Answer struct {
	Question Question
	Value    int
}

// StreamProfile describes one academic stream (grades 9-12): the subjects
// that contribute to it, their relative weights, and example careers.
type StreamProfile struct {
	Name     string             `json:"name"`
	Subjects []string           `json:"subjects"`
	Weights  map[string]float64 `json:"weights"`
	Careers  []string           `json:"careers"`
}

// RankedResult is one entry of the ranked recommendation list.
type RankedResult struct {
	Name         string   `json:"name"`
	MatchPercent int      `json:"matchPercent"`
	Careers      []string `json:"careers,omitempty"`
}

// SubjectStrength is a per-subject strength percentage shown alongside the
// stream/domain recommendations.
type SubjectStrength struct {
	Subject string `json:"subject"`
	Percent int    `json:"percent"`
}

// AssessmentResult is the outcome of a completed assessment session.
type AssessmentResult struct {
	Grade           int                `json:"grade"`
	SubjectScores   map[string]float64 `json:"subjectScores"`
	TopSubjects     []SubjectStrength  `json:"topSubjects"`
	Recommendations []RankedResult     `json:"recommendations"`
	CompletedAt     time.Time          `json:"completedAt"`
}

// HistoryEntry is a persisted assessment outcome, keyed by user.
type HistoryEntry struct {
	UserID          string         `json:"userId"`
	Grade           int            `json:"grade"`
	Recommendations []RankedResult `json:"recommendations"`
	CreatedAt       time.Time      `json:"createdAt"`
}
