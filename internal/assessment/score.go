package assessment

import (
	"math"
	"sort"

	"guidance-service/internal/domain"
)

const (
	// likertMax is the highest rating on the answer scale.
	likertMax = 5
	// boostMultiplier rewards subjects the student actually studies.
	boostMultiplier = 1.6
)

// Aggregate computes the mean rating per subject over the answered set.
// Subjects without answers are absent from the result.
func Aggregate(answers []domain.Answer) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range answers {
		totals[a.Question.Subject] += float64(a.Value)
		counts[a.Question.Subject]++
	}
	means := make(map[string]float64, len(totals))
	for subject, total := range totals {
		means[subject] = total / float64(counts[subject])
	}
	return means
}

// RankStreams scores every catalog entry against the subject means and
// returns them ordered by match percent, catalog order breaking ties.
// Unanswered subjects count as zero; an entirely unanswered stream stays in
// the output at 0%. Subjects in boosted get their weight multiplied by
// boostMultiplier in both the total and the maximum.
func RankStreams(scores map[string]float64, catalog []domain.StreamProfile, boosted map[string]struct{}) []domain.RankedResult {
	results := make([]domain.RankedResult, 0, len(catalog))
	for _, stream := range catalog {
		var total, maxTotal float64
		for subject, weight := range stream.Weights {
			multiplier := 1.0
			if _, ok := boosted[subject]; ok {
				multiplier = boostMultiplier
			}
			total += scores[subject] * weight * multiplier
			maxTotal += likertMax * weight * multiplier
		}
		pct := 0
		if maxTotal > 0 {
			pct = int(math.Round(100 * total / maxTotal))
		}
		results = append(results, domain.RankedResult{
			Name:         stream.Name,
			MatchPercent: pct,
			Careers:      stream.Careers,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercent > results[j].MatchPercent
	})
	return results
}

// RankDomains averages subject means within each learning domain, unweighted
// and without boosting. Every domain appears in the output; scored subjects
// outside the domain table collect into a trailing "Other" entry.
func RankDomains(scores map[string]float64) []domain.RankedResult {
	results := make([]domain.RankedResult, 0, len(learningDomains)+1)
	claimed := make(map[string]struct{})
	for _, d := range learningDomains {
		var total float64
		var count int
		for _, subject := range d.Subjects {
			claimed[subject] = struct{}{}
			if mean, ok := scores[subject]; ok {
				total += mean
				count++
			}
		}
		pct := 0
		if count > 0 {
			pct = int(math.Round(100 * (total / float64(count)) / likertMax))
		}
		results = append(results, domain.RankedResult{Name: d.Name, MatchPercent: pct})
	}

	var otherTotal float64
	var otherCount int
	for subject, mean := range scores {
		if _, ok := claimed[subject]; !ok {
			otherTotal += mean
			otherCount++
		}
	}
	if otherCount > 0 {
		pct := int(math.Round(100 * (otherTotal / float64(otherCount)) / likertMax))
		results = append(results, domain.RankedResult{Name: "Other", MatchPercent: pct})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercent > results[j].MatchPercent
	})
	return results
}

// TopSubjects returns the n strongest subjects as percentages, highest first.
// Ties order alphabetically so output is deterministic.
func TopSubjects(scores map[string]float64, n int) []domain.SubjectStrength {
	subjects := make([]string, 0, len(scores))
	for subject := range scores {
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if scores[subjects[i]] != scores[subjects[j]] {
			return scores[subjects[i]] > scores[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})
	if len(subjects) > n {
		subjects = subjects[:n]
	}
	out := make([]domain.SubjectStrength, 0, len(subjects))
	for _, subject := range subjects {
		out = append(out, domain.SubjectStrength{
			Subject: subject,
			Percent: int(math.Round(100 * scores[subject] / likertMax)),
		})
	}
	return out
}
