package amadeus

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"skysearch/internal/models"
	"skysearch/pkg/currency"
)

const (
	searchCurrency = "USD"
	searchMax      = "50"
)

// Result is one fetched result set: the offer collection plus the carrier
// dictionary that arrived with it. Replaced wholesale on each fetch.
type Result struct {
	Offers   []models.Offer  `json:"offers"`
	Carriers models.Carriers `json:"carriers"`
}

type offersEnvelope struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				Departure struct {
					IATACode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					IATACode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"arrival"`
				CarrierCode string `json:"carrierCode"`
				Number      string `json:"number"`
				Aircraft    struct {
					Code string `json:"code"`
				} `json:"aircraft"`
			} `json:"segments"`
		} `json:"itineraries"`
		NumberOfBookableSeats  int      `json:"numberOfBookableSeats"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

// SearchFlights fetches priced offers for a validated query. Results are
// always requested in USD with a 50-offer cap.
func (c *Client) SearchFlights(ctx context.Context, query models.SearchQuery) (*Result, error) {
	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("adults", strconv.Itoa(query.Passengers))
	params.Set("travelClass", string(query.CabinClass))
	params.Set("currencyCode", searchCurrency)
	params.Set("max", searchMax)
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}

	var envelope offersEnvelope
	err := c.doWithRetry(ctx, EndpointFlights, func() error {
		envelope = offersEnvelope{}
		return c.getJSON(ctx, c.config.BaseURL+"/v2/shopping/flight-offers?"+params.Encode(), &envelope)
	})
	if err != nil {
		if _, ok := err.(*AuthError); ok {
			return nil, err
		}
		return nil, newSearchError(err)
	}

	result := &Result{
		Offers:   make([]models.Offer, 0, len(envelope.Data)),
		Carriers: models.Carriers(envelope.Dictionaries.Carriers),
	}
	if result.Carriers == nil {
		result.Carriers = models.Carriers{}
	}

	for _, d := range envelope.Data {
		amount, err := strconv.ParseFloat(d.Price.Total, 64)
		if err != nil {
			continue
		}

		offer := models.Offer{
			ID: d.ID,
			Price: models.Price{
				Amount:    amount,
				Currency:  d.Price.Currency,
				Formatted: currency.Format(amount, d.Price.Currency),
			},
			BookableSeats: d.NumberOfBookableSeats,
		}
		if len(d.ValidatingAirlineCodes) > 0 {
			offer.AirlineCode = d.ValidatingAirlineCodes[0]
		}

		for _, it := range d.Itineraries {
			itinerary := models.Itinerary{Duration: it.Duration}
			for _, s := range it.Segments {
				segment := models.Segment{
					Departure: models.Stop{
						IATACode: s.Departure.IATACode,
						At:       parseSegmentTime(s.Departure.At),
					},
					Arrival: models.Stop{
						IATACode: s.Arrival.IATACode,
						At:       parseSegmentTime(s.Arrival.At),
					},
					CarrierCode:  s.CarrierCode,
					FlightNumber: s.Number,
				}
				if s.Aircraft.Code != "" {
					code := s.Aircraft.Code
					segment.Aircraft = &code
				}
				itinerary.Segments = append(itinerary.Segments, segment)
			}
			offer.Itineraries = append(offer.Itineraries, itinerary)
		}

		result.Offers = append(result.Offers, offer)
	}

	return result, nil
}

var segmentTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// parseSegmentTime handles the provider's local timestamps, with and
// without zone offsets. Unparseable input yields the zero time.
func parseSegmentTime(s string) time.Time {
	for _, format := range segmentTimeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
