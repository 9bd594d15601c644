package fixture

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Content is one record in the provider-1 JSON fixture.
type Content struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Metrics     Metrics  `json:"metrics"`
	PublishedAt string   `json:"published_at"`
	Tags        []string `json:"tags"`
}

// Metrics is the type-discriminated metric set of a Content record. Videos
// carry views/likes/duration, articles carry reading_time/reactions; the
// other fields stay nil so they never appear in the encoded output.
type Metrics struct {
	Views       *int64 `json:"views,omitempty"`
	Likes       *int32 `json:"likes,omitempty"`
	Duration    string `json:"duration,omitempty"`
	ReadingTime *int32 `json:"reading_time,omitempty"`
	Reactions   *int32 `json:"reactions,omitempty"`
}

// ContentDocument is the root object of the provider-1 fixture.
type ContentDocument struct {
	Contents []Content `json:"contents"`
}

// ContentGenerator produces random Content records. All randomness flows
// through the injected source so a fixed seed reproduces the same batch.
type ContentGenerator struct {
	rand  *rand.Rand
	start time.Time
}

// NewContentGenerator creates a generator backed by r.
func NewContentGenerator(r *rand.Rand) *ContentGenerator {
	return &ContentGenerator{rand: r, start: startDate}
}

// Generate produces count records. IDs are numbered from 1; every third
// record is an article, the rest are videos.
func (g *ContentGenerator) Generate(count int) []Content {
	contents := make([]Content, 0, count)
	for i := 1; i <= count; i++ {
		contents = append(contents, g.record(i))
	}
	return contents
}

func (g *ContentGenerator) record(i int) Content {
	contentType := TypeVideo
	if i%3 == 0 {
		contentType = TypeArticle
	}

	// The trailing "Z" is a literal suffix the legacy fixtures carry, not a
	// computed timezone; downstream parsers expect it verbatim.
	published := g.start.AddDate(0, 0, intBetween(g.rand, 0, 31))
	publishedAt := published.Format("2006-01-02T15:04:05") + "Z"

	tag := TagsPool[g.rand.IntN(len(TagsPool))]

	return Content{
		ID:          fmt.Sprintf("json-%s%d", typeCode(contentType), i),
		Title:       fmt.Sprintf("JSON Content %d: Learning %s", i, capitalize(tag)),
		Type:        contentType,
		Metrics:     g.metrics(contentType),
		PublishedAt: publishedAt,
		Tags:        sample(g.rand, TagsPool, intBetween(g.rand, 1, 3)),
	}
}

func (g *ContentGenerator) metrics(contentType string) Metrics {
	if contentType == TypeVideo {
		views := int64(intBetween(g.rand, 1000, 50000))
		likes := int32(intBetween(g.rand, 100, 5000))
		return Metrics{
			Views:    &views,
			Likes:    &likes,
			Duration: duration(g.rand, 5, 45),
		}
	}

	readingTime := int32(intBetween(g.rand, 5, 20))
	reactions := int32(intBetween(g.rand, 50, 600))
	return Metrics{
		ReadingTime: &readingTime,
		Reactions:   &reactions,
	}
}
