// Package autocomplete drives one location-search input: it debounces
// keystrokes, dispatches lookups, and manages the suggestion dropdown.
package autocomplete

import (
	"context"
	"log"
	"sync"
	"time"

	"skysearch/internal/models"
)

// Searcher is the external location-lookup collaborator.
type Searcher interface {
	SearchLocations(ctx context.Context, keyword string) ([]models.Location, error)
}

const (
	DefaultDebounce      = 300 * time.Millisecond
	defaultLookupTimeout = 10 * time.Second
	minQueryLength       = 2
)

type Config struct {
	Searcher Searcher
	// OnSelect receives the resolved IATA code when a suggestion is picked,
	// or "" when the input is cleared.
	OnSelect      func(code string)
	Debounce      time.Duration
	LookupTimeout time.Duration
}

// Controller holds the state of one autocomplete input. At most one debounce
// timer is pending at any instant; arming a new one replaces it. Every
// lookup is tagged with a sequence number and responses that lost the race
// to a newer event are dropped.
type Controller struct {
	mu sync.Mutex

	searcher      Searcher
	onSelect      func(string)
	debounce      time.Duration
	lookupTimeout time.Duration

	text        string
	suggestions []models.Location
	open        bool

	// suppressNext swallows exactly one text-change cycle after a
	// programmatic selection wrote the input text back.
	suppressNext bool

	timer *time.Timer
	seq   uint64
}

func NewController(cfg Config) *Controller {
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.LookupTimeout == 0 {
		cfg.LookupTimeout = defaultLookupTimeout
	}
	return &Controller{
		searcher:      cfg.Searcher,
		onSelect:      cfg.OnSelect,
		debounce:      cfg.Debounce,
		lookupTimeout: cfg.LookupTimeout,
	}
}

// SetText handles one text-change event from the input.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	c.seq++
	c.cancelTimerLocked()

	if c.suppressNext {
		c.suppressNext = false
		return
	}

	if len(text) < minQueryLength {
		c.suggestions = nil
		c.open = false
		if text == "" && c.onSelect != nil {
			c.onSelect("")
		}
		return
	}

	seq := c.seq
	c.timer = time.AfterFunc(c.debounce, func() {
		c.lookup(text, seq)
	})
}

func (c *Controller) lookup(keyword string, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), c.lookupTimeout)
	defer cancel()

	results, err := c.searcher.SearchLocations(ctx, keyword)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer keystroke or selection superseded this lookup.
	if seq != c.seq {
		return
	}

	if err != nil {
		log.Printf("Location lookup failed: %v", err)
		c.suggestions = nil
		c.open = false
		return
	}

	if len(results) == 0 {
		c.suggestions = nil
		c.open = false
		return
	}

	c.suggestions = results
	c.open = true
}

// Select applies a suggestion: the input text becomes "name (CODE)", the
// code is emitted, the dropdown closes, and the next text-change event is
// treated as selection-originated.
func (c *Controller) Select(location models.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.cancelTimerLocked()

	c.text = location.Display()
	c.open = false
	c.suggestions = nil
	c.suppressNext = true

	if c.onSelect != nil {
		c.onSelect(location.IATACode)
	}
}

// Focus reopens the dropdown only when a suggestion list already exists.
func (c *Controller) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.suggestions) > 0 {
		c.open = true
	}
}

// Dismiss handles a click outside the control: close without clearing
// suggestions or text.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Controller) State() models.AutocompleteResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.AutocompleteResponse{
		Text:        c.text,
		Suggestions: append([]models.Location(nil), c.suggestions...),
		Open:        c.open,
	}
}

func (c *Controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
