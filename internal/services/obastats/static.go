package obastats

import (
	"context"
	"fmt"
	"sync"
)

// StaticSource is a PageSource serving a fixed URL-to-body map. Tests use it
// in place of the live site.
type StaticSource struct {
	mu      sync.Mutex
	pages   map[string]string
	fetched []string
}

// NewStaticSource builds a source from the provided pages. The map is used
// directly; callers should not mutate it afterward.
func NewStaticSource(pages map[string]string) *StaticSource {
	if pages == nil {
		pages = make(map[string]string)
	}
	return &StaticSource{pages: pages}
}

// FetchPage returns the canned body for pageURL or ErrPageUnavailable.
func (s *StaticSource) FetchPage(_ context.Context, pageURL string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetched = append(s.fetched, pageURL)
	body, ok := s.pages[pageURL]
	if !ok {
		return "", fmt.Errorf("%w: no page for %s", ErrPageUnavailable, pageURL)
	}
	return body, nil
}

// Fetched returns the URLs requested so far, in order.
func (s *StaticSource) Fetched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.fetched...)
}
