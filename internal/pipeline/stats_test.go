package pipeline

import (
	"testing"
	"time"

	"skysearch/internal/models"
)

func pricedOffers(prices ...float64) []models.Offer {
	offers := make([]models.Offer, len(prices))
	for i, p := range prices {
		offers[i] = offer("x", p, "AI", "PT1H", 1, time.Now())
	}
	return offers
}

func TestSummarize(t *testing.T) {
	s := Summarize(pricedOffers(450, 520, 380))

	if s.Total != 3 {
		t.Fatalf("total = %d, want 3", s.Total)
	}
	if s.MinPrice != 380 {
		t.Fatalf("min price = %v, want 380", s.MinPrice)
	}
	if s.AvgPrice != 450 {
		t.Fatalf("avg price = %v, want 450", s.AvgPrice)
	}
	if s.MinPriceFormatted != "$380" {
		t.Fatalf("formatted min = %q", s.MinPriceFormatted)
	}
}

func TestHistogramIsExhaustiveAndDisjoint(t *testing.T) {
	prices := []float64{0, 199.99, 200, 399, 450, 650, 801, 999.5, 1000, 5000}
	s := Summarize(pricedOffers(prices...))

	sum := 0
	for _, b := range s.Buckets {
		sum += b.Count
	}
	if sum != s.Total {
		t.Fatalf("bucket counts sum to %d, total is %d", sum, s.Total)
	}

	wantCounts := []int{2, 2, 1, 1, 2, 2}
	for i, want := range wantCounts {
		if s.Buckets[i].Count != want {
			t.Fatalf("bucket %s count = %d, want %d", s.Buckets[i].Label, s.Buckets[i].Count, want)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 {
		t.Fatalf("empty total = %d", s.Total)
	}
	if len(s.Buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(s.Buckets))
	}
}

func TestPriceRange(t *testing.T) {
	low, high := PriceRange(pricedOffers(380.4, 520.2, 450))
	if low != 380 || high != 521 {
		t.Fatalf("range = [%v, %v], want [380, 521]", low, high)
	}

	low, high = PriceRange(nil)
	if low != 0 || high != 1000 {
		t.Fatalf("empty range = [%v, %v], want [0, 1000]", low, high)
	}
}
