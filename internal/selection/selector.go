package selection

import (
	"math/rand"
	"sync"

	"github.com/talentflow/ats-service/internal/models"
)

// Filter restricts the question pool by category and difficulty. Empty sets
// mean "no restriction" for that dimension.
type Filter struct {
	Categories   []string
	Difficulties []models.DifficultyLevel
}

// Matches reports whether a question passes the filter.
func (f Filter) Matches(q *models.Question) bool {
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if q.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Difficulties) > 0 {
		found := false
		for _, d := range f.Difficulties {
			if q.Difficulty == d {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Selector draws bounded, unbiased random samples from a question pool.
// The randomness source is injected so tests can pin the seed while
// production seeds from entropy. A Selector is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Selector backed by the given source.
func New(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// Pick filters the pool and returns a random sample of size
// min(count, matches) without replacement. Order of the returned slice is
// randomized on every call; identical inputs may yield different output,
// which is intentional so repeated attempts do not see predictable sets.
// Zero matches or a non-positive count yield an empty slice, never an error.
func (s *Selector) Pick(pool []*models.Question, filter Filter, count int) []*models.Question {
	if count <= 0 {
		return []*models.Question{}
	}

	matched := make([]*models.Question, 0, len(pool))
	for _, q := range pool {
		if filter.Matches(q) {
			matched = append(matched, q)
		}
	}

	if count > len(matched) {
		count = len(matched)
	}

	// Partial Fisher-Yates: after i swaps the first i entries are a uniform
	// sample of the matched set.
	s.mu.Lock()
	for i := 0; i < count; i++ {
		j := i + s.rng.Intn(len(matched)-i)
		matched[i], matched[j] = matched[j], matched[i]
	}
	s.mu.Unlock()

	return matched[:count:count]
}
