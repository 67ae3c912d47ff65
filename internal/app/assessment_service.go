package app

import (
	"context"
	"log"
	"math/rand"
	"time"

	"guidance-service/internal/assessment"
	"guidance-service/internal/domain"
	"github.com/google/uuid"
)

// SessionRepository abstracts how assessment sessions are stored (in-memory, Redis-backed, etc).
type SessionRepository interface {
	Put(session *assessment.Session)
	Get(sessionID string) (*assessment.Session, bool)
	Delete(sessionID string)
}

// BankRepository loads the question bank (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context) (assessment.Bank, error)
}

// HistoryRepository persists completed assessment outcomes per user.
type HistoryRepository interface {
	Save(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context, userID string) ([]domain.HistoryEntry, error)
}

// Prompt is the client-facing view of the question a session is waiting on.
type Prompt struct {
	Index   int    `json:"index"`
	Total   int    `json:"total"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// AssessmentService contains the guidance assessment use cases.
type AssessmentService struct {
	sessions SessionRepository
	bank     BankRepository
	history  HistoryRepository
	poolSize int
	newRand  func() *rand.Rand
	newID    func() string
	now      func() time.Time
}

func NewAssessmentService(sessions SessionRepository, bank BankRepository, history HistoryRepository, poolSize int) *AssessmentService {
	if poolSize <= 0 {
		poolSize = assessment.DefaultPoolSize
	}
	return &AssessmentService{
		sessions: sessions,
		bank:     bank,
		history:  history,
		poolSize: poolSize,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// WithRand is test-only: it fixes the random source used for question draws.
func (s *AssessmentService) WithRand(newRand func() *rand.Rand) *AssessmentService {
	s.newRand = newRand
	return s
}

// Start creates a session for the student, draws its question set and
// returns the session ID with the first prompt. subjectIDs are the
// curriculum subject-selection IDs; unknown IDs are ignored.
func (s *AssessmentService) Start(ctx context.Context, userID string, grade int, subjectIDs []string) (string, Prompt, error) {
	bank, err := s.bank.GetBank(ctx)
	if err != nil {
		return "", Prompt{}, err
	}

	names := assessment.SubjectDisplayNames(subjectIDs)
	session := assessment.NewSessionWithClock(s.newID(), userID, grade, names, assessment.BoostSet(names), s.now)
	if err := session.Start(assessment.NewSelector(bank, s.newRand()), s.poolSize); err != nil {
		return "", Prompt{}, err
	}

	s.sessions.Put(session)
	prompt, err := s.prompt(session)
	if err != nil {
		return "", Prompt{}, err
	}
	return session.ID(), prompt, nil
}

// Answer records a rating for the session's current question. It returns
// either the next prompt or, after the final answer, the assessment result.
// A completed result is handed to the history store best-effort: persistence
// failures are logged and never propagated.
func (s *AssessmentService) Answer(ctx context.Context, sessionID string, value int) (Prompt, *domain.AssessmentResult, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Prompt{}, nil, domain.ErrSessionNotFound
	}

	done, err := session.Answer(value)
	if err != nil {
		return Prompt{}, nil, err
	}
	if !done {
		prompt, err := s.prompt(session)
		return prompt, nil, err
	}

	result, err := session.Results()
	if err != nil {
		return Prompt{}, nil, err
	}
	if s.history != nil {
		entry := domain.HistoryEntry{
			UserID:          session.UserID(),
			Grade:           result.Grade,
			Recommendations: result.Recommendations,
			CreatedAt:       result.CompletedAt,
		}
		if err := s.history.Save(ctx, entry); err != nil {
			log.Printf("saving assessment history for user %s: %v", session.UserID(), err)
		}
	}
	return Prompt{}, &result, nil
}

// Previous steps the session back one question.
func (s *AssessmentService) Previous(sessionID string) (Prompt, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Prompt{}, domain.ErrSessionNotFound
	}
	if err := session.Previous(); err != nil {
		return Prompt{}, err
	}
	return s.prompt(session)
}

// Retake resets the session with a fresh random question draw.
func (s *AssessmentService) Retake(ctx context.Context, sessionID string) (Prompt, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Prompt{}, domain.ErrSessionNotFound
	}
	bank, err := s.bank.GetBank(ctx)
	if err != nil {
		return Prompt{}, err
	}
	if err := session.Retake(assessment.NewSelector(bank, s.newRand()), s.poolSize); err != nil {
		return Prompt{}, err
	}
	return s.prompt(session)
}

// History returns the user's saved assessment outcomes, newest first.
func (s *AssessmentService) History(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, userID)
}

// Abandon drops a session. Abandoning is the only cleanup an assessment needs.
func (s *AssessmentService) Abandon(sessionID string) {
	s.sessions.Delete(sessionID)
}

func (s *AssessmentService) prompt(session *assessment.Session) (Prompt, error) {
	q, idx, total, err := session.Current()
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{Index: idx, Total: total, Subject: q.Subject, Text: q.Text}, nil
}
