// Package pipeline derives the display list from a fetched offer collection
// and the current filter criteria. Everything here is pure: no side effects,
// no network access, inputs are never mutated.
package pipeline

import (
	"sort"
	"strings"

	"skysearch/internal/models"
)

// Apply runs the three pipeline stages in order: filter, airline text
// search, sort. The airline search matches against the carrier dictionary,
// so it must run on its own stage rather than be folded into the filter
// predicate, and the sort runs last to fix the final ordering.
func Apply(offers []models.Offer, criteria models.FilterCriteria, carriers models.Carriers) []models.Offer {
	filtered := applyFilters(offers, criteria)
	filtered = searchByAirline(filtered, criteria.AirlineQuery, carriers)
	return applySort(filtered, criteria.SortBy)
}

func applyFilters(offers []models.Offer, criteria models.FilterCriteria) []models.Offer {
	result := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		if matchesFilters(o, criteria) {
			result = append(result, o)
		}
	}
	return result
}

func matchesFilters(o models.Offer, criteria models.FilterCriteria) bool {
	price := o.Price.Amount
	if price < criteria.PriceMin || price > criteria.PriceMax {
		return false
	}
	if !criteria.AcceptsStops(o.StopCategory()) {
		return false
	}
	if !criteria.AcceptsAirline(o.AirlineCode) {
		return false
	}
	return true
}

func searchByAirline(offers []models.Offer, query string, carriers models.Carriers) []models.Offer {
	if query == "" {
		return offers
	}

	q := strings.ToLower(query)
	result := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		name := strings.ToLower(carriers.NameFor(o.AirlineCode))
		code := strings.ToLower(o.AirlineCode)
		if strings.Contains(name, q) || strings.Contains(code, q) {
			result = append(result, o)
		}
	}
	return result
}

func applySort(offers []models.Offer, sortBy models.SortKey) []models.Offer {
	if len(offers) == 0 {
		return offers
	}

	switch sortBy {
	case models.SortByDuration:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DurationMinutes() < offers[j].DurationMinutes()
		})

	case models.SortByDeparture:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DepartureTime().Before(offers[j].DepartureTime())
		})

	default:
		// price ascending
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].Price.Amount < offers[j].Price.Amount
		})
	}

	return offers
}

// UniqueAirlines lists the distinct validating airline codes of a collection,
// in first-seen order. Feeds the filter panel's airline checkboxes.
func UniqueAirlines(offers []models.Offer) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, o := range offers {
		if o.AirlineCode == "" || seen[o.AirlineCode] {
			continue
		}
		seen[o.AirlineCode] = true
		result = append(result, o.AirlineCode)
	}
	return result
}
