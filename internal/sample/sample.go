// Package sample builds the two halves of a comparison corpus from a
// question dump: the questions carrying a target tag, and a random sample of
// questions that do not.
//
// Nothing here affects scoring semantics; it is pure selection over document
// metadata. Sampling is driven by a caller-supplied rand.Rand so runs are
// reproducible under a fixed seed.
package sample

import (
	"log/slog"
	"math/rand"

	"github.com/chriscorrea/winnow/internal/loader"
)

// Partition splits questions into those carrying tag and the rest, both in
// input order.
func Partition(questions []loader.Question, tag string) (tagged, rest []loader.Question) {
	for _, q := range questions {
		if q.HasTag(tag) {
			tagged = append(tagged, q)
		} else {
			rest = append(rest, q)
		}
	}

	slog.Debug("partitioned questions", "tag", tag, "tagged", len(tagged), "rest", len(rest))
	return tagged, rest
}

// Pick draws up to n questions from pool uniformly without replacement. The
// pool itself is never mutated. When n is zero or exceeds the pool size, a
// copy of the whole pool is returned in its original order.
func Pick(pool []loader.Question, n int, rng *rand.Rand) []loader.Question {
	if n <= 0 || n >= len(pool) {
		picked := make([]loader.Question, len(pool))
		copy(picked, pool)
		return picked
	}

	// partial Fisher-Yates over index permutation; only the first n draws
	// are materialized
	indexes := make([]int, len(pool))
	for i := range indexes {
		indexes[i] = i
	}

	picked := make([]loader.Question, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		picked = append(picked, pool[indexes[i]])
	}

	return picked
}
