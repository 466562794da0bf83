package models

import (
	"testing"
	"time"
)

var validationNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func validQuery() SearchQuery {
	return SearchQuery{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2024-03-15",
		Passengers:    1,
		CabinClass:    CabinEconomy,
	}
}

func TestValidateAcceptsCleanQuery(t *testing.T) {
	if errs := validQuery().Validate(validationNow); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*SearchQuery)
		wantKey string
	}{
		{"missing origin", func(q *SearchQuery) { q.Origin = "" }, "origin"},
		{"missing destination", func(q *SearchQuery) { q.Destination = "" }, "destination"},
		{"same origin and destination", func(q *SearchQuery) { q.Destination = "DEL" }, "destination"},
		{"missing departure date", func(q *SearchQuery) { q.DepartureDate = "" }, "departureDate"},
		{"departure in the past", func(q *SearchQuery) { q.DepartureDate = "2024-02-01" }, "departureDate"},
		{"round trip without return date", func(q *SearchQuery) { q.RoundTrip = true }, "returnDate"},
		{"return before departure", func(q *SearchQuery) {
			q.RoundTrip = true
			q.ReturnDate = "2024-03-10"
		}, "returnDate"},
		{"zero passengers", func(q *SearchQuery) { q.Passengers = 0 }, "passengers"},
		{"too many passengers", func(q *SearchQuery) { q.Passengers = 10 }, "passengers"},
		{"unknown cabin class", func(q *SearchQuery) { q.CabinClass = "COACH" }, "cabinClass"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuery()
			tc.mutate(&q)

			errs := q.Validate(validationNow)
			if _, ok := errs[tc.wantKey]; !ok {
				t.Fatalf("expected error under %q, got %v", tc.wantKey, errs)
			}
		})
	}
}

func TestValidateAcceptsRoundTrip(t *testing.T) {
	q := validQuery()
	q.RoundTrip = true
	q.ReturnDate = "2024-03-20"

	if errs := q.Validate(validationNow); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateAcceptsSameDayReturn(t *testing.T) {
	q := validQuery()
	q.RoundTrip = true
	q.ReturnDate = q.DepartureDate

	if errs := q.Validate(validationNow); len(errs) != 0 {
		t.Fatalf("return == departure should validate, got %v", errs)
	}
}

func TestQueryDistinctnessIsStructEquality(t *testing.T) {
	a := validQuery()
	b := validQuery()
	if a != b {
		t.Fatal("identical queries compare unequal")
	}

	b.Passengers = 2
	if a == b {
		t.Fatal("distinct queries compare equal")
	}
}
