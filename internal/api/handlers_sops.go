package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/sopdex/internal/catalog"
	"github.com/dgallion1/sopdex/internal/section"
	"github.com/dgallion1/sopdex/internal/sopstore"
)

// handleListSOPs lists all SOPs in the library.
func (s *Server) handleListSOPs(w http.ResponseWriter, r *http.Request) {
	sops := s.catalog.Documents()
	if sops == nil {
		sops = []sopstore.SOP{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sops": sops})
}

// handleSections returns every numbered section of one SOP. A document
// with no recognizable numbered headings is not an error: the response
// says so explicitly and points at the raw text fallback.
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	sopID := chi.URLParam(r, "sopID")

	sections, err := s.catalog.Sections(sopID)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		jsonError(w, "sop not found", http.StatusNotFound)
		return
	case errors.Is(err, catalog.ErrNoSections):
		writeJSON(w, http.StatusOK, map[string]any{
			"sop_id":             sopID,
			"sections":           []section.Section{},
			"sections_found":     false,
			"raw_text_available": true,
		})
		return
	case err != nil:
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sop_id":         sopID,
		"sections":       sections,
		"sections_found": true,
	})
}

// handleSection returns one section by number, with suggested
// calculators for its text.
func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	sopID := chi.URLParam(r, "sopID")
	number := chi.URLParam(r, "number")

	sec, err := s.catalog.Section(sopID, number)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		jsonError(w, "sop not found", http.StatusNotFound)
		return
	case errors.Is(err, catalog.ErrNoSections), errors.Is(err, catalog.ErrSectionNotFound):
		jsonError(w, "section not found", http.StatusNotFound)
		return
	case err != nil:
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	calculators := section.Calculators(sec.Title, sec.Content)
	if calculators == nil {
		calculators = []string{}
	}

	writeJSON(w, http.StatusOK, struct {
		SOPID string `json:"sop_id"`
		section.Section
		SuggestedCalculators []string `json:"suggested_calculators"`
	}{
		SOPID:                sopID,
		Section:              sec,
		SuggestedCalculators: calculators,
	})
}

// handleRawText returns the full decoded text of an SOP.
func (s *Server) handleRawText(w http.ResponseWriter, r *http.Request) {
	sopID := chi.URLParam(r, "sopID")

	text, err := s.catalog.RawText(sopID)
	if err != nil {
		jsonError(w, "sop not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sop_id": sopID,
		"text":   text,
	})
}

type searchResult struct {
	SOPID                string   `json:"sop_id"`
	Filename             string   `json:"sop_filename"`
	SectionNumber        string   `json:"section_number"`
	Title                string   `json:"title"`
	Content              string   `json:"content"`
	FullHeading          string   `json:"full_heading"`
	SuggestedCalculators []string `json:"suggested_calculators"`
}

// handleSearch runs a cross-document section search. Section content is
// truncated to a preview; calculator suggestions are computed on the
// full text before truncation.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		jsonError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}

	results := []searchResult{}
	for _, match := range s.catalog.Search(query) {
		calculators := section.Calculators(match.Title, match.Content)
		if calculators == nil {
			calculators = []string{}
		}
		results = append(results, searchResult{
			SOPID:                match.SOPID,
			Filename:             match.Filename,
			SectionNumber:        match.Number,
			Title:                match.Title,
			Content:              preview(match.Content, s.cfg.SearchPreviewChars),
			FullHeading:          match.FullHeading,
			SuggestedCalculators: calculators,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// preview truncates content to at most n runes, marking the cut.
func preview(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n]) + "..."
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
