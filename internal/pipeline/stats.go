package pipeline

import (
	"math"

	"skysearch/internal/models"
	"skysearch/pkg/currency"
)

// Bucket is one bar of the price-distribution chart. Max is exclusive;
// the last bucket is open-ended (Max = +Inf).
type Bucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"-"`
	Count int     `json:"count"`
}

type Summary struct {
	Total             int      `json:"total"`
	MinPrice          float64  `json:"min_price"`
	AvgPrice          float64  `json:"avg_price"`
	MinPriceFormatted string   `json:"min_price_formatted"`
	AvgPriceFormatted string   `json:"avg_price_formatted"`
	Buckets           []Bucket `json:"buckets"`
}

func histogramBuckets() []Bucket {
	return []Bucket{
		{Label: "$0-200", Min: 0, Max: 200},
		{Label: "$200-400", Min: 200, Max: 400},
		{Label: "$400-600", Min: 400, Max: 600},
		{Label: "$600-800", Min: 600, Max: 800},
		{Label: "$800-1000", Min: 800, Max: 1000},
		{Label: "$1000+", Min: 1000, Max: math.Inf(1)},
	}
}

// Summarize aggregates the full, unfiltered collection: count, minimum
// price, mean price rounded to whole units, and a six-bucket histogram.
// The buckets are disjoint and cover every non-negative price.
func Summarize(offers []models.Offer) Summary {
	buckets := histogramBuckets()

	if len(offers) == 0 {
		return Summary{Buckets: buckets}
	}

	minPrice := offers[0].Price.Amount
	sum := 0.0
	for _, o := range offers {
		p := o.Price.Amount
		if p < minPrice {
			minPrice = p
		}
		sum += p

		for i := range buckets {
			if p >= buckets[i].Min && p < buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}

	avg := math.Round(sum / float64(len(offers)))

	return Summary{
		Total:             len(offers),
		MinPrice:          minPrice,
		AvgPrice:          avg,
		MinPriceFormatted: currency.FormatUSD(minPrice),
		AvgPriceFormatted: currency.FormatUSD(avg),
		Buckets:           buckets,
	}
}

// PriceRange reports [floor(min), ceil(max)] over a collection; the filter
// panel's price slider is re-bounded to this range after each fetch.
func PriceRange(offers []models.Offer) (float64, float64) {
	if len(offers) == 0 {
		return 0, 1000
	}

	minPrice := offers[0].Price.Amount
	maxPrice := offers[0].Price.Amount
	for _, o := range offers[1:] {
		if o.Price.Amount < minPrice {
			minPrice = o.Price.Amount
		}
		if o.Price.Amount > maxPrice {
			maxPrice = o.Price.Amount
		}
	}

	return math.Floor(minPrice), math.Ceil(maxPrice)
}
