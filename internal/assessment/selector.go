package assessment

import (
	"math/rand"
	"strings"

	"guidance-service/internal/domain"
)

// DefaultPoolSize is the number of questions drawn for one assessment.
const DefaultPoolSize = 12

// Selector draws a diversified question set from a bank. The random source
// is injected so tests can fix the seed.
type Selector struct {
	bank Bank
	rnd  *rand.Rand
}

func NewSelector(bank Bank, rnd *rand.Rand) *Selector {
	return &Selector{bank: bank, rnd: rnd}
}

// Select picks at most poolSize questions eligible for the grade, one per
// subject. Subjects in preferred (matched case-insensitively) come first;
// ordering within each bucket is randomized. Grades outside 1-12 are
// rejected rather than clamped.
func (s *Selector) Select(grade int, preferred []string, poolSize int) ([]domain.Question, error) {
	if grade < 1 || grade > 12 {
		return nil, domain.ErrInvalidGrade
	}
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}

	bySubject := make(map[string][]domain.Question)
	for _, q := range s.bank.ForGrade(grade) {
		bySubject[q.Subject] = append(bySubject[q.Subject], q)
	}

	preferredSet := make(map[string]struct{}, len(preferred))
	for _, name := range preferred {
		preferredSet[strings.ToLower(name)] = struct{}{}
	}

	var preferredPicks, otherPicks []domain.Question
	for subject, qs := range bySubject {
		pick := qs[s.rnd.Intn(len(qs))]
		if _, ok := preferredSet[strings.ToLower(subject)]; ok {
			preferredPicks = append(preferredPicks, pick)
		} else {
			otherPicks = append(otherPicks, pick)
		}
	}

	s.shuffle(preferredPicks)
	s.shuffle(otherPicks)

	out := append(preferredPicks, otherPicks...)
	if len(out) > poolSize {
		out = out[:poolSize]
	}
	return out, nil
}

func (s *Selector) shuffle(qs []domain.Question) {
	s.rnd.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
