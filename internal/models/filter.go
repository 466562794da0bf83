package models

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	}
	return false
}

// FilterCriteria narrows and orders a fetched offer collection. Price bounds
// live inside [0, MaxPrice]; MaxPrice tracks the observed maximum of the
// current result set.
type FilterCriteria struct {
	PriceMin     float64        `json:"price_min"`
	PriceMax     float64        `json:"price_max"`
	MaxPrice     float64        `json:"max_price"`
	Stops        []StopCategory `json:"stops"`
	Airlines     []string       `json:"airlines"`
	SortBy       SortKey        `json:"sort_by"`
	AirlineQuery string         `json:"airline_query"`
}

const defaultMaxPrice = 10000

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		PriceMin: 0,
		PriceMax: defaultMaxPrice,
		MaxPrice: defaultMaxPrice,
		SortBy:   SortByPrice,
	}
}

func (f FilterCriteria) AcceptsStops(cat StopCategory) bool {
	if len(f.Stops) == 0 {
		return true
	}
	for _, s := range f.Stops {
		if s == cat {
			return true
		}
	}
	return false
}

func (f FilterCriteria) AcceptsAirline(code string) bool {
	if len(f.Airlines) == 0 {
		return true
	}
	for _, a := range f.Airlines {
		if a == code {
			return true
		}
	}
	return false
}
