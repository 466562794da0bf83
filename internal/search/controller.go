// Package search owns the submission lifecycle: validate the form, fetch
// offers from the provider (or the freshness cache), and expose the result
// as one of four mutually exclusive phases.
package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"skysearch/internal/amadeus"
	"skysearch/internal/cache"
	"skysearch/internal/models"
	"skysearch/internal/pipeline"
	"skysearch/internal/store"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseSuccess Phase = "success"
)

// Flights is the external flight-search collaborator.
type Flights interface {
	SearchFlights(ctx context.Context, query models.SearchQuery) (*amadeus.Result, error)
}

type Controller struct {
	mu sync.Mutex

	flights Flights
	cache   cache.Cache
	store   *store.Store
	now     func() time.Time

	phase    Phase
	query    models.SearchQuery
	result   *amadeus.Result
	errMsg   string
	cacheHit bool
	tookMs   int64

	// seq tags each accepted submission; a fetch whose sequence is no
	// longer the latest must not overwrite fresher state.
	seq uint64
}

func NewController(flights Flights, c cache.Cache, s *store.Store) *Controller {
	return &Controller{
		flights: flights,
		cache:   c,
		store:   s,
		now:     time.Now,
		phase:   PhaseIdle,
	}
}

// Submit validates and, when the form is clean, fetches. The returned field
// errors are non-empty exactly when no fetch was attempted. Identical
// queries inside the freshness window are served from the cache.
func (c *Controller) Submit(ctx context.Context, query models.SearchQuery) models.FieldErrors {
	if errs := query.Validate(c.now()); len(errs) > 0 {
		return errs
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.phase = PhaseLoading
	c.query = query
	c.errMsg = ""
	c.cacheHit = false
	c.mu.Unlock()

	started := c.now()

	if cached, found := c.cache.Get(ctx, query); found {
		c.finish(seq, cached, nil, true, started)
		return nil
	}

	result, err := c.flights.SearchFlights(ctx, query)
	if err == nil {
		_ = c.cache.Set(ctx, query, result)
	}
	c.finish(seq, result, err, false, started)
	return nil
}

func (c *Controller) finish(seq uint64, result *amadeus.Result, err error, cacheHit bool, started time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// Superseded by a newer submission.
		return
	}

	c.tookMs = c.now().Sub(started).Milliseconds()
	c.cacheHit = cacheHit

	if err != nil {
		c.phase = PhaseError
		c.errMsg = displayMessage(err)
		c.result = nil
		return
	}

	c.phase = PhaseSuccess
	c.result = result

	// The new collection replaces the old one wholesale and re-bounds the
	// filter panel's price range to its observed maximum.
	if c.store != nil && len(result.Offers) > 0 {
		_, maxPrice := pipeline.PriceRange(result.Offers)
		c.store.SetMaxPrice(maxPrice)
		c.store.SetPriceRange(0, maxPrice)
	}
}

// State is a consistent snapshot of the lifecycle.
type State struct {
	Phase    Phase
	Query    models.SearchQuery
	Offers   []models.Offer
	Carriers models.Carriers
	Error    string
	CacheHit bool
	TookMs   int64
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Phase:    c.phase,
		Query:    c.query,
		Error:    c.errMsg,
		CacheHit: c.cacheHit,
		TookMs:   c.tookMs,
	}
	if c.result != nil {
		s.Offers = c.result.Offers
		s.Carriers = c.result.Carriers
	}
	return s
}

const genericFailure = "Failed to search flights"

// displayMessage reduces any collaborator failure to a single readable line.
func displayMessage(err error) string {
	var searchErr *amadeus.SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Message()
	}

	var authErr *amadeus.AuthError
	if errors.As(err, &authErr) {
		return "Failed to authenticate with flight provider"
	}

	return genericFailure
}
