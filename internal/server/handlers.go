package server

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/onurerdog4n/mock-provider-api/internal/fixture"
	"github.com/onurerdog4n/mock-provider-api/pkg/httpx"
)

// pageSize is the fixed number of records per page on both providers.
const pageSize = 10

var errItemNotFound = errors.New("item not found")

// pagination is the paging envelope of the provider-1 response.
type pagination struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// contentPage is one page of the provider-1 response.
type contentPage struct {
	Contents   []fixture.Content `json:"contents"`
	Pagination pagination        `json:"pagination"`
}

// feedMeta is the paging envelope of the provider-2 response.
type feedMeta struct {
	TotalCount   int `xml:"total_count"`
	CurrentPage  int `xml:"current_page"`
	ItemsPerPage int `xml:"items_per_page"`
}

// feedPage is one page of the provider-2 response.
type feedPage struct {
	XMLName xml.Name          `xml:"feed"`
	Items   fixture.FeedItems `xml:"items"`
	Meta    feedMeta          `xml:"meta"`
}

// UpdateItemRequest is the body of POST /update-item. The metric fields that
// match the target's type are applied; the others are cleared.
type UpdateItemRequest struct {
	Provider    string   `json:"provider"` // "provider-1" or "provider-2"
	ID          string   `json:"id"`
	Views       int64    `json:"views"`
	Likes       int32    `json:"likes"`
	ReadingTime int32    `json:"reading_time"`
	Reactions   int32    `json:"reactions"`
	Date        string   `json:"date"` // YYYY-MM-DD or RFC3339
	Tags        []string `json:"tags"`
}

// pageParam reads the page query parameter, coercing anything below 1 to 1.
func pageParam(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// pageBounds returns the slice bounds of the requested page, clamped so a
// page past the end yields an empty slice.
func pageBounds(page, total int) (int, int) {
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

func (s *Server) handleProvider1(w http.ResponseWriter, r *http.Request) error {
	doc, err := s.contents.Load()
	if err != nil {
		log.Printf("[MOCKAPI] provider-1: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "fixture not available")
		return nil
	}

	page := pageParam(r)
	total := len(doc.Contents)
	start, end := pageBounds(page, total)

	httpx.JSON(w, http.StatusOK, contentPage{
		Contents: doc.Contents[start:end],
		Pagination: pagination{
			Total:   total,
			Page:    page,
			PerPage: pageSize,
		},
	})
	return nil
}

func (s *Server) handleProvider2(w http.ResponseWriter, r *http.Request) error {
	doc, err := s.feed.Load()
	if err != nil {
		log.Printf("[MOCKAPI] provider-2: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "fixture not available")
		return nil
	}

	page := pageParam(r)
	total := len(doc.Items.Items)
	start, end := pageBounds(page, total)

	httpx.XML(w, http.StatusOK, feedPage{
		Items: fixture.FeedItems{Items: doc.Items.Items[start:end]},
		Meta: feedMeta{
			TotalCount:   total,
			CurrentPage:  page,
			ItemsPerPage: pageSize,
		},
	})
	return nil
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) error {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return nil
	}

	var err error
	switch req.Provider {
	case "provider-1":
		err = s.updateContent(&req)
	case "provider-2":
		err = s.updateFeedItem(&req)
	default:
		httpx.Error(w, http.StatusBadRequest, "invalid provider")
		return nil
	}

	if errors.Is(err, errItemNotFound) {
		httpx.Error(w, http.StatusNotFound, "item not found")
		return nil
	}
	if err != nil {
		return err
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "success"})
	return nil
}

func (s *Server) updateContent(req *UpdateItemRequest) error {
	doc, err := s.contents.Load()
	if err != nil {
		return err
	}

	for i := range doc.Contents {
		c := &doc.Contents[i]
		if c.ID != req.ID {
			continue
		}

		if c.Type == fixture.TypeVideo {
			c.Metrics.Views = &req.Views
			c.Metrics.Likes = &req.Likes
			c.Metrics.ReadingTime = nil
			c.Metrics.Reactions = nil
		} else {
			c.Metrics.ReadingTime = &req.ReadingTime
			c.Metrics.Reactions = &req.Reactions
			c.Metrics.Views = nil
			c.Metrics.Likes = nil
			c.Metrics.Duration = ""
		}

		if req.Date != "" {
			c.PublishedAt = req.Date
		}
		if len(req.Tags) > 0 {
			c.Tags = req.Tags
		}
		return s.contents.Save(doc)
	}
	return errItemNotFound
}

func (s *Server) updateFeedItem(req *UpdateItemRequest) error {
	doc, err := s.feed.Load()
	if err != nil {
		return err
	}

	for i := range doc.Items.Items {
		item := &doc.Items.Items[i]
		if item.ID != req.ID {
			continue
		}

		if item.Type == fixture.TypeVideo {
			item.Stats.Views = &req.Views
			item.Stats.Likes = &req.Likes
			item.Stats.ReadingTime = nil
			item.Stats.Reactions = nil
			item.Stats.Comments = nil
		} else {
			item.Stats.ReadingTime = &req.ReadingTime
			item.Stats.Reactions = &req.Reactions
			item.Stats.Views = nil
			item.Stats.Likes = nil
			item.Stats.Duration = ""
		}

		if req.Date != "" {
			item.PublicationDate = req.Date
		}
		if len(req.Tags) > 0 {
			item.Categories.Categories = req.Tags
		}
		return s.feed.Save(doc)
	}
	return errItemNotFound
}

// healthResponse reports fixture availability.
type healthResponse struct {
	Status   string          `json:"status"`
	Fixtures map[string]bool `json:"fixtures"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) error {
	resp := healthResponse{Status: "ok", Fixtures: map[string]bool{}}

	for name, path := range map[string]string{
		fixture.JSONFixtureFile: s.contents.Path(),
		fixture.XMLFixtureFile:  s.feed.Path(),
	} {
		_, err := os.Stat(path)
		resp.Fixtures[name] = err == nil
		if err != nil {
			resp.Status = "degraded"
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
	return nil
}
