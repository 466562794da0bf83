// Package store holds the process-wide UI state: theme mode, the search
// form, and the filter criteria. Each partition is mutated only through the
// named operations below; reads return copies.
package store

import (
	"context"
	"log"
	"sync"

	"skysearch/internal/models"
)

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ThemePersister carries the theme mode across process restarts.
type ThemePersister interface {
	Load(ctx context.Context) (ThemeMode, bool)
	Save(ctx context.Context, mode ThemeMode) error
}

type Store struct {
	mu sync.RWMutex

	theme  ThemeMode
	search models.SearchQuery
	filter models.FilterCriteria

	persister  ThemePersister
	applyTheme func(ThemeMode)
}

// New builds a store seeded from the persisted theme. applyTheme is the
// global presentation hook; it runs under the same lock as the state change
// so observers never see the two out of sync. Either argument may be nil.
func New(persister ThemePersister, applyTheme func(ThemeMode)) *Store {
	s := &Store{
		theme:      ThemeLight,
		search:     defaultSearch(),
		filter:     models.DefaultFilterCriteria(),
		persister:  persister,
		applyTheme: applyTheme,
	}

	if persister != nil {
		if mode, ok := persister.Load(context.Background()); ok {
			s.theme = mode
		}
	}
	if s.applyTheme != nil {
		s.applyTheme(s.theme)
	}

	return s
}

func defaultSearch() models.SearchQuery {
	return models.SearchQuery{
		Passengers: 1,
		CabinClass: models.CabinEconomy,
	}
}

// --- theme partition ---

func (s *Store) Theme() ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) ToggleTheme(ctx context.Context) ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	s.commitTheme(ctx)
	return s.theme
}

func (s *Store) SetTheme(ctx context.Context, mode ThemeMode) {
	if mode != ThemeLight && mode != ThemeDark {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = mode
	s.commitTheme(ctx)
}

func (s *Store) commitTheme(ctx context.Context) {
	if s.applyTheme != nil {
		s.applyTheme(s.theme)
	}
	if s.persister != nil {
		if err := s.persister.Save(ctx, s.theme); err != nil {
			log.Printf("Failed to persist theme: %v", err)
		}
	}
}

// --- search partition ---

func (s *Store) Search() models.SearchQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func (s *Store) SetOrigin(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.Origin = code
}

func (s *Store) SetDestination(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.Destination = code
}

func (s *Store) SetDepartureDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.DepartureDate = date
}

func (s *Store) SetReturnDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.ReturnDate = date
}

func (s *Store) SetPassengers(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.Passengers = n
}

func (s *Store) SetCabinClass(c models.CabinClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.CabinClass = c
}

// ToggleTripType flips the round-trip flag; turning round-trip off clears
// the return date in the same operation.
func (s *Store) ToggleTripType() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search.RoundTrip = !s.search.RoundTrip
	if !s.search.RoundTrip {
		s.search.ReturnDate = ""
	}
}

// SwapLocations exchanges origin and destination atomically.
func (s *Store) SwapLocations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.Origin, s.search.Destination = s.search.Destination, s.search.Origin
}

func (s *Store) ResetSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = defaultSearch()
}

// --- filter partition ---

func (s *Store) Filter() models.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCriteria(s.filter)
}

// SetPriceRange clamps both bounds into [0, MaxPrice] and rejects inverted
// ranges, keeping the min <= max invariant.
func (s *Store) SetPriceRange(low, high float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	low = clamp(low, 0, s.filter.MaxPrice)
	high = clamp(high, 0, s.filter.MaxPrice)
	if low > high {
		return
	}
	s.filter.PriceMin = low
	s.filter.PriceMax = high
}

// SetMaxPrice re-bounds the price range to a newly observed maximum.
func (s *Store) SetMaxPrice(maxPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.MaxPrice = maxPrice
	s.filter.PriceMin = clamp(s.filter.PriceMin, 0, maxPrice)
	s.filter.PriceMax = clamp(s.filter.PriceMax, 0, maxPrice)
}

func (s *Store) ToggleStop(cat models.StopCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.filter.Stops {
		if existing == cat {
			s.filter.Stops = append(s.filter.Stops[:i], s.filter.Stops[i+1:]...)
			return
		}
	}
	s.filter.Stops = append(s.filter.Stops, cat)
}

func (s *Store) ToggleAirline(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.filter.Airlines {
		if existing == code {
			s.filter.Airlines = append(s.filter.Airlines[:i], s.filter.Airlines[i+1:]...)
			return
		}
	}
	s.filter.Airlines = append(s.filter.Airlines, code)
}

func (s *Store) SetSortBy(key models.SortKey) {
	if !key.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SortBy = key
}

func (s *Store) SetAirlineQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.AirlineQuery = query
}

// ResetFilters restores the price range to [0, MaxPrice] and clears every
// other filter field. The observed MaxPrice survives the reset.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = models.FilterCriteria{
		PriceMin: 0,
		PriceMax: s.filter.MaxPrice,
		MaxPrice: s.filter.MaxPrice,
		SortBy:   models.SortByPrice,
	}
}

func copyCriteria(f models.FilterCriteria) models.FilterCriteria {
	out := f
	out.Stops = append([]models.StopCategory(nil), f.Stops...)
	out.Airlines = append([]string(nil), f.Airlines...)
	return out
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
