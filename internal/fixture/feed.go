package fixture

import (
	"encoding/xml"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// FeedItem is one record in the provider-2 XML fixture.
type FeedItem struct {
	ID              string     `xml:"id"`
	Headline        string     `xml:"headline"`
	Type            string     `xml:"type"`
	Stats           FeedStats  `xml:"stats"`
	PublicationDate string     `xml:"publication_date"`
	Categories      Categories `xml:"categories"`
}

// FeedStats is the type-discriminated stat set of a FeedItem. Videos carry
// views/likes/duration, articles carry reading_time/reactions/comments.
type FeedStats struct {
	Views       *int64 `xml:"views,omitempty"`
	Likes       *int32 `xml:"likes,omitempty"`
	Duration    string `xml:"duration,omitempty"`
	ReadingTime *int32 `xml:"reading_time,omitempty"`
	Reactions   *int32 `xml:"reactions,omitempty"`
	Comments    *int32 `xml:"comments,omitempty"`
}

// Categories wraps the <category> children of a feed item.
type Categories struct {
	Categories []string `xml:"category"`
}

// FeedItems wraps the <item> children of the feed root.
type FeedItems struct {
	Items []FeedItem `xml:"item"`
}

// FeedDocument is the root element of the provider-2 fixture.
type FeedDocument struct {
	XMLName xml.Name  `xml:"feed"`
	Items   FeedItems `xml:"items"`
}

// FeedGenerator produces random FeedItem records from an injected source.
type FeedGenerator struct {
	rand  *rand.Rand
	start time.Time
}

// NewFeedGenerator creates a generator backed by r.
func NewFeedGenerator(r *rand.Rand) *FeedGenerator {
	return &FeedGenerator{rand: r, start: startDate}
}

// Generate produces count items. IDs are numbered from 1; every fourth item
// is an article, the rest are videos.
func (g *FeedGenerator) Generate(count int) []FeedItem {
	items := make([]FeedItem, 0, count)
	for i := 1; i <= count; i++ {
		items = append(items, g.item(i))
	}
	return items
}

func (g *FeedGenerator) item(i int) FeedItem {
	contentType := TypeVideo
	if i%4 == 0 {
		contentType = TypeArticle
	}

	pubDate := g.start.AddDate(0, 0, intBetween(g.rand, 0, 31)).Format("2006-01-02")
	category := CategoriesPool[g.rand.IntN(len(CategoriesPool))]

	return FeedItem{
		ID:              fmt.Sprintf("xml-%s%d", typeCode(contentType), i),
		Headline:        fmt.Sprintf("XML Content %d: Modern %s Guide", i, capitalize(category)),
		Type:            contentType,
		Stats:           g.stats(contentType),
		PublicationDate: pubDate,
		Categories:      Categories{Categories: sample(g.rand, CategoriesPool, intBetween(g.rand, 1, 2))},
	}
}

func (g *FeedGenerator) stats(contentType string) FeedStats {
	if contentType == TypeVideo {
		views := int64(intBetween(g.rand, 5000, 30000))
		likes := int32(intBetween(g.rand, 200, 2000))
		return FeedStats{
			Views:    &views,
			Likes:    &likes,
			Duration: duration(g.rand, 10, 60),
		}
	}

	readingTime := int32(intBetween(g.rand, 5, 20))
	reactions := int32(intBetween(g.rand, 50, 600))
	comments := int32(intBetween(g.rand, 5, 100))
	return FeedStats{
		ReadingTime: &readingTime,
		Reactions:   &reactions,
		Comments:    &comments,
	}
}

// RenderFeed assembles the fixture document from pre-indented literal lines,
// matching the byte layout of the legacy generator. Interpolated text is
// written verbatim, without XML escaping: the pools contain no markup
// characters, and downstream consumers expect this exact layout.
func RenderFeed(items []FeedItem) []byte {
	lines := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		"<feed>",
		"  <items>",
	}

	for _, item := range items {
		lines = append(lines,
			"    <item>",
			"      <id>"+item.ID+"</id>",
			"      <headline>"+item.Headline+"</headline>",
			"      <type>"+item.Type+"</type>",
			"      <stats>",
		)

		if item.Type == TypeVideo {
			lines = append(lines,
				fmt.Sprintf("        <views>%d</views>", *item.Stats.Views),
				fmt.Sprintf("        <likes>%d</likes>", *item.Stats.Likes),
				"        <duration>"+item.Stats.Duration+"</duration>",
			)
		} else {
			lines = append(lines,
				fmt.Sprintf("        <reading_time>%d</reading_time>", *item.Stats.ReadingTime),
				fmt.Sprintf("        <reactions>%d</reactions>", *item.Stats.Reactions),
				fmt.Sprintf("        <comments>%d</comments>", *item.Stats.Comments),
			)
		}

		lines = append(lines,
			"      </stats>",
			"      <publication_date>"+item.PublicationDate+"</publication_date>",
			"      <categories>",
		)
		for _, category := range item.Categories.Categories {
			lines = append(lines, "        <category>"+category+"</category>")
		}
		lines = append(lines,
			"      </categories>",
			"    </item>",
		)
	}

	lines = append(lines, "  </items>", "</feed>")
	return []byte(strings.Join(lines, "\n"))
}
