package models

import "time"

type CabinClass string

const (
	CabinEconomy        CabinClass = "ECONOMY"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinFirst          CabinClass = "FIRST"
)

func (c CabinClass) Valid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

const DateLayout = "2006-01-02"

// SearchQuery is the search form's value at submission time. All fields are
// comparable, so query distinctness is plain struct equality.
type SearchQuery struct {
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departure_date"`
	ReturnDate    string     `json:"return_date,omitempty"`
	Passengers    int        `json:"passengers"`
	CabinClass    CabinClass `json:"cabin_class"`
	RoundTrip     bool       `json:"round_trip"`
}

// FieldErrors maps a form field name to a display-ready message.
type FieldErrors map[string]string

// Validate checks the form invariants without touching the network. An empty
// result means the query may be submitted.
func (q SearchQuery) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if q.Origin == "" {
		errs["origin"] = "Please select origin"
	}
	if q.Destination == "" {
		errs["destination"] = "Please select destination"
	} else if q.Destination == q.Origin {
		errs["destination"] = "Origin and destination must be different"
	}

	if q.DepartureDate == "" {
		errs["departureDate"] = "Please select departure date"
	} else if dep, err := time.Parse(DateLayout, q.DepartureDate); err != nil {
		errs["departureDate"] = "Invalid departure date"
	} else if dep.Before(truncateToDay(now)) {
		errs["departureDate"] = "Departure date cannot be in the past"
	}

	if q.RoundTrip && q.ReturnDate == "" {
		errs["returnDate"] = "Please select return date"
	}
	if q.ReturnDate != "" && q.DepartureDate != "" {
		ret, retErr := time.Parse(DateLayout, q.ReturnDate)
		dep, depErr := time.Parse(DateLayout, q.DepartureDate)
		if retErr != nil {
			errs["returnDate"] = "Invalid return date"
		} else if depErr == nil && ret.Before(dep) {
			errs["returnDate"] = "Return date must be after departure"
		}
	}

	if q.Passengers < 1 {
		errs["passengers"] = "At least 1 passenger required"
	} else if q.Passengers > 9 {
		errs["passengers"] = "Maximum 9 passengers"
	}

	if !q.CabinClass.Valid() {
		errs["cabinClass"] = "Invalid cabin class"
	}

	return errs
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
