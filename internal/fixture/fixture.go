// Package fixture synthesizes mock provider content (articles and videos)
// and reads/writes the two fixture files the mock API serves.
package fixture

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Content types shared by both fixture formats.
const (
	TypeVideo   = "video"
	TypeArticle = "article"
)

// Fixture file names under the mocks directory.
const (
	JSONFixtureFile = "provider1.json"
	XMLFixtureFile  = "provider2.xml"
)

// startDate is the base publication date; every generated date is this plus
// a random offset of 0-31 days.
var startDate = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// TagsPool holds the candidate tags for JSON content records.
var TagsPool = []string{
	"programming", "tutorial", "go", "docker", "cloud",
	"backend", "concurrency", "performance", "testing",
}

// CategoriesPool holds the candidate categories for XML feed items.
var CategoriesPool = []string{
	"devops", "kubernetes", "ci-cd", "cloud",
	"security", "monitoring", "architecture", "programming",
}

// typeCode returns the single-letter id component for a content type.
func typeCode(contentType string) string {
	if contentType == TypeVideo {
		return "v"
	}
	return "a"
}

// intBetween returns a uniform random int in [lo, hi], both ends inclusive.
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// sample picks k distinct entries from pool, in random order.
func sample(r *rand.Rand, pool []string, k int) []string {
	idx := r.Perm(len(pool))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// duration renders a video duration as "M:SS" with two-digit seconds.
func duration(r *rand.Rand, minLo, minHi int) string {
	return fmt.Sprintf("%d:%02d", intBetween(r, minLo, minHi), intBetween(r, 10, 59))
}
