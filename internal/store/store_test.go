package store

import (
	"context"
	"testing"

	"skysearch/internal/models"
)

type fakePersister struct {
	saved []ThemeMode
	load  ThemeMode
	ok    bool
}

func (f *fakePersister) Load(ctx context.Context) (ThemeMode, bool) {
	return f.load, f.ok
}

func (f *fakePersister) Save(ctx context.Context, mode ThemeMode) error {
	f.saved = append(f.saved, mode)
	return nil
}

func TestSwapLocationsIsItsOwnInverse(t *testing.T) {
	s := New(nil, nil)
	s.SetOrigin("DEL")
	s.SetDestination("BOM")

	s.SwapLocations()
	q := s.Search()
	if q.Origin != "BOM" || q.Destination != "DEL" {
		t.Fatalf("after swap: origin=%s destination=%s", q.Origin, q.Destination)
	}

	s.SwapLocations()
	q = s.Search()
	if q.Origin != "DEL" || q.Destination != "BOM" {
		t.Fatalf("swap twice is not identity: origin=%s destination=%s", q.Origin, q.Destination)
	}
}

func TestToggleTripTypeClearsReturnDate(t *testing.T) {
	s := New(nil, nil)

	s.ToggleTripType()
	if !s.Search().RoundTrip {
		t.Fatal("expected round trip after first toggle")
	}
	s.SetReturnDate("2024-03-20")

	s.ToggleTripType()
	q := s.Search()
	if q.RoundTrip {
		t.Fatal("expected one-way after second toggle")
	}
	if q.ReturnDate != "" {
		t.Fatalf("return date survived toggle off: %q", q.ReturnDate)
	}
}

func TestResetSearch(t *testing.T) {
	s := New(nil, nil)
	s.SetOrigin("DEL")
	s.SetPassengers(4)
	s.SetCabinClass(models.CabinBusiness)

	s.ResetSearch()
	q := s.Search()
	if q.Origin != "" || q.Passengers != 1 || q.CabinClass != models.CabinEconomy {
		t.Fatalf("reset left state behind: %+v", q)
	}
}

func TestResetFiltersRestoresPriceRangeAndClearsRest(t *testing.T) {
	s := New(nil, nil)
	s.SetMaxPrice(800)
	s.SetPriceRange(100, 500)
	s.ToggleStop(models.StopsDirect)
	s.ToggleAirline("AI")
	s.SetSortBy(models.SortByDuration)
	s.SetAirlineQuery("indigo")

	s.ResetFilters()
	f := s.Filter()
	if f.PriceMin != 0 || f.PriceMax != 800 {
		t.Fatalf("price range = [%v, %v], want [0, 800]", f.PriceMin, f.PriceMax)
	}
	if f.MaxPrice != 800 {
		t.Fatalf("max price = %v, want 800", f.MaxPrice)
	}
	if len(f.Stops) != 0 || len(f.Airlines) != 0 || f.AirlineQuery != "" {
		t.Fatalf("reset left filters behind: %+v", f)
	}
	if f.SortBy != models.SortByPrice {
		t.Fatalf("sort key = %s, want price", f.SortBy)
	}
}

func TestSetPriceRangeKeepsInvariant(t *testing.T) {
	s := New(nil, nil)
	s.SetMaxPrice(1000)

	t.Run("clamps into bounds", func(t *testing.T) {
		s.SetPriceRange(-50, 5000)
		f := s.Filter()
		if f.PriceMin != 0 || f.PriceMax != 1000 {
			t.Fatalf("range = [%v, %v], want [0, 1000]", f.PriceMin, f.PriceMax)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		s.SetPriceRange(100, 400)
		s.SetPriceRange(600, 200)
		f := s.Filter()
		if f.PriceMin != 100 || f.PriceMax != 400 {
			t.Fatalf("inverted range was applied: [%v, %v]", f.PriceMin, f.PriceMax)
		}
	})
}

func TestToggleStopAndAirline(t *testing.T) {
	s := New(nil, nil)

	s.ToggleStop(models.StopsDirect)
	s.ToggleStop(models.StopsOne)
	s.ToggleStop(models.StopsDirect)

	f := s.Filter()
	if len(f.Stops) != 1 || f.Stops[0] != models.StopsOne {
		t.Fatalf("stops = %v, want [1-stop]", f.Stops)
	}

	s.ToggleAirline("AI")
	s.ToggleAirline("AI")
	if got := s.Filter().Airlines; len(got) != 0 {
		t.Fatalf("airlines = %v, want empty", got)
	}
}

func TestThemeToggleAppliesAndPersists(t *testing.T) {
	persister := &fakePersister{}
	var applied []ThemeMode
	s := New(persister, func(mode ThemeMode) {
		applied = append(applied, mode)
	})

	if s.Theme() != ThemeLight {
		t.Fatalf("default theme = %s", s.Theme())
	}
	if len(applied) != 1 || applied[0] != ThemeLight {
		t.Fatalf("presentation flag not applied at startup: %v", applied)
	}

	mode := s.ToggleTheme(context.Background())
	if mode != ThemeDark {
		t.Fatalf("toggle = %s, want dark", mode)
	}
	if len(persister.saved) != 1 || persister.saved[0] != ThemeDark {
		t.Fatalf("persisted = %v", persister.saved)
	}
	if applied[len(applied)-1] != ThemeDark {
		t.Fatalf("presentation flag = %v", applied)
	}
}

func TestThemeLoadsPersistedValue(t *testing.T) {
	s := New(&fakePersister{load: ThemeDark, ok: true}, nil)
	if s.Theme() != ThemeDark {
		t.Fatalf("theme = %s, want persisted dark", s.Theme())
	}
}

func TestSetThemeRejectsUnknownMode(t *testing.T) {
	s := New(nil, nil)
	s.SetTheme(context.Background(), ThemeMode("sepia"))
	if s.Theme() != ThemeLight {
		t.Fatalf("theme = %s, want light", s.Theme())
	}
}
