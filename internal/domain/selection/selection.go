package selection

import "github.com/phrazzld/triage-api/internal/domain"

// Select returns the index in pool of the task that should replace ref.
//
// Rules by mode:
//   - Category: first task whose category equals ref's, else index 0
//   - Length: first task whose length equals ref's, else index 0
//   - Chaos: src.IntN(len(pool))
//   - anything else: index 0
//
// It returns (-1, false) for an empty pool. A nil src in Chaos mode falls
// back to index 0.
func Select(
	pool []domain.Task,
	ref domain.Task,
	mode domain.SelectionMode,
	src RandomSource,
) (int, bool) {
	if len(pool) == 0 {
		return -1, false
	}

	switch mode {
	case domain.ModeCategory:
		return firstMatch(pool, func(t *domain.Task) bool { return t.Category == ref.Category }), true
	case domain.ModeLength:
		return firstMatch(pool, func(t *domain.Task) bool { return t.Length == ref.Length }), true
	case domain.ModeChaos:
		if src == nil {
			return 0, true
		}
		return clampIndex(src.IntN(len(pool)), len(pool)), true
	default:
		return 0, true
	}
}

// firstMatch returns the first index satisfying match, or 0 when nothing does.
func firstMatch(pool []domain.Task, match func(*domain.Task) bool) int {
	for i := range pool {
		if match(&pool[i]) {
			return i
		}
	}
	return 0
}

// clampIndex keeps a misbehaving source from indexing outside the pool.
func clampIndex(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}
