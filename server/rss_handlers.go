package server

import (
	"log"
	"net/http"

	"github.com/umputun/newsnet/pkg/domain"
)

// rssHandler serves current articles as RSS, optionally narrowed by q and source
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	f := domain.Filter{Search: r.URL.Query().Get("q"), Source: r.URL.Query().Get("source")}

	title := ""
	switch {
	case f.Source != "" && f.Source != "all":
		title = "newsnet - " + f.Source
	case f.Search != "":
		title = "newsnet - " + f.Search
	}

	rss, err := s.generator.GenerateRSS(s.engine.Articles(f), title)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// opmlHandler exports the feed catalog
func (s *Server) opmlHandler(w http.ResponseWriter, r *http.Request) {
	opml, err := s.generator.GenerateOPML(s.feeds)
	if err != nil {
		log.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	if _, err := w.Write([]byte(opml)); err != nil {
		log.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}
