package assessment

import (
	"sync"
	"time"

	"guidance-service/internal/domain"
)

// State is the lifecycle of an assessment session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

// topSubjectCount is how many subject strengths the result reports.
const topSubjectCount = 5

// streamGradeMin is the first grade that receives stream recommendations;
// lower grades get learning-domain strengths instead.
const streamGradeMin = 9

// Session holds one student's assessment from question draw to result. The
// mutex guards against the transport goroutine and store callbacks touching
// the session concurrently; a session is never shared between students.
type Session struct {
	mu        sync.Mutex
	id        string
	userID    string
	grade     int
	preferred []string
	boosted   map[string]struct{}
	questions []domain.Question
	answers   map[int]int
	current   int
	state     State
	result    *domain.AssessmentResult
	now       func() time.Time
}

// NewSession creates a session in StateNotStarted. preferred holds the
// display names of the student's declared curriculum subjects; boosted the
// canonical subject keys derived from them.
func NewSession(id, userID string, grade int, preferred []string, boosted map[string]struct{}) *Session {
	return NewSessionWithClock(id, userID, grade, preferred, boosted, time.Now)
}

// NewSessionWithClock is test-only for deterministic timestamps.
func NewSessionWithClock(id, userID string, grade int, preferred []string, boosted map[string]struct{}, now func() time.Time) *Session {
	if boosted == nil {
		boosted = make(map[string]struct{})
	}
	return &Session{
		id:        id,
		userID:    userID,
		grade:     grade,
		preferred: preferred,
		boosted:   boosted,
		answers:   make(map[int]int),
		now:       now,
	}
}

func (s *Session) ID() string     { return s.id }
func (s *Session) UserID() string { return s.userID }
func (s *Session) Grade() int     { return s.grade }

// Start draws the question set and moves to StateInProgress.
func (s *Session) Start(sel *Selector, poolSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted {
		return domain.ErrAssessmentComplete
	}
	questions, err := sel.Select(s.grade, s.preferred, poolSize)
	if err != nil {
		return err
	}
	s.questions = questions
	s.current = 0
	s.state = StateInProgress
	return nil
}

// Current returns the active question, its zero-based index, and the total
// question count.
func (s *Session) Current() (domain.Question, int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return domain.Question{}, 0, 0, s.notInProgressErr()
	}
	return s.questions[s.current], s.current, len(s.questions), nil
}

// Answer records a rating for the current question and advances. Recording
// the final answer aggregates scores, ranks the catalog and completes the
// session; done reports that transition.
func (s *Session) Answer(value int) (done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return false, s.notInProgressErr()
	}
	if value < 1 || value > likertMax {
		return false, domain.ErrInvalidRating
	}
	s.answers[s.current] = value
	if s.current+1 < len(s.questions) {
		s.current++
		return false, nil
	}
	s.finalizeLocked()
	return true, nil
}

// Previous steps back one question without erasing the answer already
// recorded for it. Stepping back from the first question is a no-op.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return s.notInProgressErr()
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

// Results returns the outcome of a completed session.
func (s *Session) Results() (domain.AssessmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		return domain.AssessmentResult{}, domain.ErrAssessmentInProgress
	}
	return *s.result, nil
}

// Retake resets the session and redraws questions (a fresh random draw).
func (s *Session) Retake(sel *Selector, poolSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	questions, err := sel.Select(s.grade, s.preferred, poolSize)
	if err != nil {
		return err
	}
	s.questions = questions
	s.answers = make(map[int]int)
	s.current = 0
	s.result = nil
	s.state = StateInProgress
	return nil
}

func (s *Session) finalizeLocked() {
	answers := make([]domain.Answer, 0, len(s.answers))
	for idx, value := range s.answers {
		answers = append(answers, domain.Answer{Question: s.questions[idx], Value: value})
	}
	scores := Aggregate(answers)

	var recs []domain.RankedResult
	if s.grade >= streamGradeMin {
		recs = RankStreams(scores, Streams(), s.boosted)
	} else {
		recs = RankDomains(scores)
	}

	s.result = &domain.AssessmentResult{
		Grade:           s.grade,
		SubjectScores:   scores,
		TopSubjects:     TopSubjects(scores, topSubjectCount),
		Recommendations: recs,
		CompletedAt:     s.now(),
	}
	s.state = StateCompleted
}

func (s *Session) notInProgressErr() error {
	if s.state == StateCompleted {
		return domain.ErrAssessmentComplete
	}
	return domain.ErrAssessmentNotStarted
}
