package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/rest"

	"github.com/umputun/newsnet/pkg/domain"
)

const dateLayout = "2006-01-02"

// statusHandler returns server status with the last collection report
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, rest.JSON{
		"status":      "ok",
		"version":     s.version,
		"time":        time.Now().UTC(),
		"running":     s.engine.Running(),
		"cache_valid": s.engine.CacheValid(r.Context()),
		"last_report": s.engine.LastReport(),
	})
}

// articlesHandler returns articles matching q, source, from, to and favorites query params
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	articles := s.engine.Articles(f)
	renderJSON(w, r, http.StatusOK, rest.JSON{"articles": articles, "count": len(articles)})
}

// favoriteHandler toggles favorite flag of an article
func (s *Server) favoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	if !s.engine.ToggleFavorite(r.Context(), id) {
		renderError(w, r, fmt.Errorf("article %d not found", id), http.StatusNotFound)
		return
	}

	favorite := false
	for _, a := range s.engine.Articles(domain.Filter{FavoritesOnly: true}) {
		if a.ID == id {
			favorite = true
			break
		}
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"id": id, "is_favorite": favorite})
}

// collectHandler runs a collection cycle over max feeds, the configured default if not set
func (s *Server) collectHandler(w http.ResponseWriter, r *http.Request) {
	maxFeeds := s.maxFeeds
	if v := r.URL.Query().Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			renderError(w, r, fmt.Errorf("invalid max value %q", v), http.StatusBadRequest)
			return
		}
		maxFeeds = n
	}

	if s.engine.Running() {
		renderError(w, r, errors.New("collection already in progress"), http.StatusConflict)
		return
	}

	// client disconnect must not abort the cycle
	articles := s.engine.Collect(context.WithoutCancel(r.Context()), maxFeeds)
	log.Printf("[INFO] manual collection done, %d articles", len(articles))
	renderJSON(w, r, http.StatusOK, rest.JSON{"count": len(articles), "report": s.engine.LastReport()})
}

// keywordsHandler returns keyword frequencies
func (s *Server) keywordsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.KeywordStats())
}

// networkHandler returns keyword co-occurrence graph
func (s *Server) networkHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.Network())
}

func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.Sources())
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.Stats())
}

// parseFilter makes article filter from query params. Dates are RFC3339 or YYYY-MM-DD,
// a date-only "to" covers the whole day.
func parseFilter(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()
	f := domain.Filter{Search: q.Get("q"), Source: q.Get("source")}

	if v := q.Get("from"); v != "" {
		from, _, err := parseDate(v)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("invalid from date %q: %w", v, err)
		}
		f.From = &from
	}

	if v := q.Get("to"); v != "" {
		to, dateOnly, err := parseDate(v)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("invalid to date %q: %w", v, err)
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = &to
	}

	if v := q.Get("favorites"); v != "" {
		fav, err := strconv.ParseBool(v)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("invalid favorites value %q", v)
		}
		f.FavoritesOnly = fav
	}
	return f, nil
}

func parseDate(v string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, v); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse(dateLayout, v); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, errors.New("expected RFC3339 or YYYY-MM-DD")
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
