package models

import (
	"time"

	"skysearch/pkg/duration"
)

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Stop struct {
	IATACode string    `json:"iata_code"`
	At       time.Time `json:"at"`
}

type Segment struct {
	Departure    Stop    `json:"departure"`
	Arrival      Stop    `json:"arrival"`
	CarrierCode  string  `json:"carrier_code"`
	FlightNumber string  `json:"flight_number"`
	Aircraft     *string `json:"aircraft,omitempty"`
}

type Itinerary struct {
	// Duration is the provider's ISO-8601-style string, e.g. "PT5H30M".
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Offer struct {
	ID            string      `json:"id"`
	Price         Price       `json:"price"`
	Itineraries   []Itinerary `json:"itineraries"`
	AirlineCode   string      `json:"airline_code"`
	BookableSeats int         `json:"bookable_seats,omitempty"`
}

type StopCategory string

const (
	StopsDirect  StopCategory = "direct"
	StopsOne     StopCategory = "1-stop"
	StopsTwoPlus StopCategory = "2+-stops"
)

// Stops reports the stop count of the outbound itinerary: segment count - 1.
func (o Offer) Stops() int {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return 0
	}
	return len(o.Itineraries[0].Segments) - 1
}

func StopCategoryOf(stops int) StopCategory {
	switch {
	case stops == 0:
		return StopsDirect
	case stops == 1:
		return StopsOne
	default:
		return StopsTwoPlus
	}
}

func (o Offer) StopCategory() StopCategory {
	return StopCategoryOf(o.Stops())
}

// DurationMinutes parses the outbound itinerary's duration string.
func (o Offer) DurationMinutes() int {
	if len(o.Itineraries) == 0 {
		return 0
	}
	return duration.Minutes(o.Itineraries[0].Duration)
}

// DepartureTime returns the departure timestamp of the first segment of the
// outbound itinerary, or the zero time when the offer carries no segments.
func (o Offer) DepartureTime() time.Time {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return time.Time{}
	}
	return o.Itineraries[0].Segments[0].Departure.At
}

// Carriers maps airline codes to display names, as returned alongside a
// result set by the provider.
type Carriers map[string]string

// NameFor falls back to the raw code when the dictionary has no entry.
func (c Carriers) NameFor(code string) string {
	if name, ok := c[code]; ok && name != "" {
		return name
	}
	return code
}
