// Package catalog exposes section lookup, browsing, and cross-document
// search over the SOP store. Sections are re-derived from the cached
// decoded text on every call; decoding is the only expensive step and
// the store already caches that.
package catalog

import (
	"errors"
	"strings"

	"github.com/dgallion1/sopdex/internal/section"
	"github.com/dgallion1/sopdex/internal/sopstore"
)

var (
	// ErrNotFound means the SOP ID resolves to no known document, or
	// its document could not be decoded.
	ErrNotFound = errors.New("sop not found")

	// ErrNoSections means the document decoded but contains no
	// recognizable numbered headings. The raw text is still available.
	ErrNoSections = errors.New("no numbered sections detected")

	// ErrSectionNotFound means the document has sections but none with
	// the requested number.
	ErrSectionNotFound = errors.New("section not found")
)

// SearchResult is a section matched by a cross-document search.
type SearchResult struct {
	SOPID    string `json:"sop_id"`
	Filename string `json:"sop_filename"`
	section.Section
}

type Catalog struct {
	store *sopstore.Store
}

func New(store *sopstore.Store) *Catalog {
	return &Catalog{store: store}
}

// Documents lists all known SOPs in store enumeration order.
func (c *Catalog) Documents() []sopstore.SOP {
	return c.store.List()
}

// Sections extracts the numbered sections of one SOP, in document order.
func (c *Catalog) Sections(id string) ([]section.Section, error) {
	text, ok := c.store.Resolve(id)
	if !ok {
		return nil, ErrNotFound
	}
	sections := section.Parse(text)
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	return sections, nil
}

// Section returns the first section whose number equals the query
// exactly. Numbers are compared as strings: "2.10" and "2.1" are
// distinct, and "02" never matches "2".
func (c *Catalog) Section(id, number string) (section.Section, error) {
	sections, err := c.Sections(id)
	if err != nil {
		return section.Section{}, err
	}
	for _, sec := range sections {
		if sec.Number == number {
			return sec, nil
		}
	}
	return section.Section{}, ErrSectionNotFound
}

// Search scans every known SOP for sections whose title or content
// contains the query, case-insensitively. Results are unranked: store
// enumeration order, then section order within each document. SOPs that
// fail to decode or have no sections are skipped.
func (c *Catalog) Search(query string) []SearchResult {
	q := strings.ToLower(query)

	var results []SearchResult
	for _, sop := range c.store.List() {
		text, ok := c.store.Resolve(sop.ID)
		if !ok {
			continue
		}
		for _, sec := range section.Parse(text) {
			if strings.Contains(strings.ToLower(sec.Title), q) ||
				strings.Contains(strings.ToLower(sec.Content), q) {
				results = append(results, SearchResult{
					SOPID:    sop.ID,
					Filename: sop.Filename,
					Section:  sec,
				})
			}
		}
	}
	return results
}

// RawText returns the full decoded text of an SOP. Useful as a fallback
// when no numbered sections were detected.
func (c *Catalog) RawText(id string) (string, error) {
	text, ok := c.store.Resolve(id)
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}
