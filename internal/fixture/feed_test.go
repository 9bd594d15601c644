package fixture

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFeedGenerator(t *testing.T) {
	items := NewFeedGenerator(newTestRand()).Generate(115)

	if len(items) != 115 {
		t.Fatalf("Generate(115) produced %d items", len(items))
	}

	t.Run("TypeByIndex", func(t *testing.T) {
		for i, item := range items {
			want := TypeVideo
			if (i+1)%4 == 0 {
				want = TypeArticle
			}
			if item.Type != want {
				t.Errorf("item %d: type %q, want %q", i+1, item.Type, want)
			}
		}
	})

	t.Run("IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i, item := range items {
			want := fmt.Sprintf("xml-%s%d", typeCode(item.Type), i+1)
			if item.ID != want {
				t.Errorf("item %d: id %q, want %q", i+1, item.ID, want)
			}
			if seen[item.ID] {
				t.Errorf("duplicate id %q", item.ID)
			}
			seen[item.ID] = true
		}
	})

	t.Run("StatsMatchType", func(t *testing.T) {
		for i, item := range items {
			st := item.Stats
			if item.Type == TypeVideo {
				if st.Views == nil || st.Likes == nil || st.Duration == "" {
					t.Errorf("item %d: video missing video stats: %+v", i+1, st)
				}
				if st.ReadingTime != nil || st.Reactions != nil || st.Comments != nil {
					t.Errorf("item %d: video carries article stats: %+v", i+1, st)
				}
			} else {
				if st.ReadingTime == nil || st.Reactions == nil || st.Comments == nil {
					t.Errorf("item %d: article missing article stats: %+v", i+1, st)
				}
				if st.Views != nil || st.Likes != nil || st.Duration != "" {
					t.Errorf("item %d: article carries video stats: %+v", i+1, st)
				}
			}
		}
	})

	t.Run("StatRanges", func(t *testing.T) {
		for i, item := range items {
			st := item.Stats
			if item.Type == TypeVideo {
				if *st.Views < 5000 || *st.Views > 30000 {
					t.Errorf("item %d: views %d out of range", i+1, *st.Views)
				}
				if *st.Likes < 200 || *st.Likes > 2000 {
					t.Errorf("item %d: likes %d out of range", i+1, *st.Likes)
				}
				var minutes, seconds int
				if _, err := fmt.Sscanf(st.Duration, "%d:%d", &minutes, &seconds); err != nil {
					t.Errorf("item %d: bad duration %q", i+1, st.Duration)
				} else if minutes < 10 || minutes > 60 || seconds < 10 || seconds > 59 {
					t.Errorf("item %d: duration %q out of range", i+1, st.Duration)
				}
			} else {
				if *st.ReadingTime < 5 || *st.ReadingTime > 20 {
					t.Errorf("item %d: reading_time %d out of range", i+1, *st.ReadingTime)
				}
				if *st.Reactions < 50 || *st.Reactions > 600 {
					t.Errorf("item %d: reactions %d out of range", i+1, *st.Reactions)
				}
				if *st.Comments < 5 || *st.Comments > 100 {
					t.Errorf("item %d: comments %d out of range", i+1, *st.Comments)
				}
			}
		}
	})

	t.Run("Categories", func(t *testing.T) {
		for i, item := range items {
			cats := item.Categories.Categories
			if len(cats) < 1 || len(cats) > 2 {
				t.Errorf("item %d: %d categories", i+1, len(cats))
			}
			seen := make(map[string]bool)
			for _, c := range cats {
				if !inPool(CategoriesPool, c) {
					t.Errorf("item %d: category %q not in pool", i+1, c)
				}
				if seen[c] {
					t.Errorf("item %d: duplicate category %q", i+1, c)
				}
				seen[c] = true
			}
		}
	})

	t.Run("PublicationDate", func(t *testing.T) {
		for i, item := range items {
			ts, err := time.Parse("2006-01-02", item.PublicationDate)
			if err != nil {
				t.Fatalf("item %d: bad publication_date %q: %v", i+1, item.PublicationDate, err)
			}
			days := int(ts.Sub(startDate).Hours() / 24)
			if days < 0 || days > 31 {
				t.Errorf("item %d: publication_date %q is %d days from start", i+1, item.PublicationDate, days)
			}
		}
	})

	t.Run("ExampleIndexFour", func(t *testing.T) {
		item := items[3]
		if item.ID != "xml-a4" || item.Type != TypeArticle {
			t.Errorf("item 4: id %q type %q, want xml-a4 article", item.ID, item.Type)
		}
		st := item.Stats
		if st.ReadingTime == nil || st.Reactions == nil || st.Comments == nil {
			t.Errorf("item 4: missing article stats: %+v", st)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		again := NewFeedGenerator(newTestRand()).Generate(115)
		if !reflect.DeepEqual(items, again) {
			t.Error("same seed produced different batches")
		}
	})
}

func TestRenderFeed(t *testing.T) {
	items := NewFeedGenerator(newTestRand()).Generate(8)
	rendered := RenderFeed(items)

	t.Run("Layout", func(t *testing.T) {
		out := string(rendered)
		if !strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<feed>\n  <items>\n") {
			t.Errorf("unexpected document head: %.80q", out)
		}
		if !strings.HasSuffix(out, "\n  </items>\n</feed>") {
			t.Errorf("unexpected document tail: %.80q", out[len(out)-40:])
		}
		if strings.Count(out, "    <item>\n") != 8 {
			t.Errorf("expected 8 opening item lines, got %d", strings.Count(out, "    <item>\n"))
		}
	})

	t.Run("WellFormed", func(t *testing.T) {
		var doc FeedDocument
		if err := xml.Unmarshal(rendered, &doc); err != nil {
			t.Fatalf("rendered output does not parse: %v", err)
		}
		if len(doc.Items.Items) != 8 {
			t.Fatalf("parsed %d items, want 8", len(doc.Items.Items))
		}
		if !reflect.DeepEqual(doc.Items.Items, items) {
			t.Error("parse of rendered output changed the items")
		}
	})
}

func TestFeedStore(t *testing.T) {
	t.Run("SaveRenderedAndLoad", func(t *testing.T) {
		store := NewFeedStore(filepath.Join(t.TempDir(), XMLFixtureFile))

		items := NewFeedGenerator(newTestRand()).Generate(115)
		if err := store.SaveRendered(items); err != nil {
			t.Fatalf("SaveRendered failed: %v", err)
		}

		doc, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(doc.Items.Items) != 115 {
			t.Errorf("loaded %d items, want 115", len(doc.Items.Items))
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewFeedStore(filepath.Join(t.TempDir(), XMLFixtureFile))

		items := NewFeedGenerator(newTestRand()).Generate(5)
		if err := store.Save(&FeedDocument{Items: FeedItems{Items: items}}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		doc, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(doc.Items.Items, items) {
			t.Error("round trip changed the items")
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		store := NewFeedStore(filepath.Join(t.TempDir(), XMLFixtureFile))
		g := NewFeedGenerator(newTestRand())

		if err := store.SaveRendered(g.Generate(10)); err != nil {
			t.Fatalf("first SaveRendered failed: %v", err)
		}
		if err := store.SaveRendered(g.Generate(3)); err != nil {
			t.Fatalf("second SaveRendered failed: %v", err)
		}

		doc, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(doc.Items.Items) != 3 {
			t.Errorf("got %d items after overwrite, want 3", len(doc.Items.Items))
		}
	})
}
