package amadeus

import (
	"context"
	"net/url"

	"skysearch/internal/models"
)

const locationPageLimit = "10"

type locationsEnvelope struct {
	Data []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		IATACode string `json:"iataCode"`
		SubType  string `json:"subType"`
		Address  struct {
			CityName    string `json:"cityName"`
			CountryName string `json:"countryName"`
		} `json:"address"`
	} `json:"data"`
}

// SearchLocations looks up cities and airports matching a keyword, capped at
// 10 results per call.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]models.Location, error) {
	params := url.Values{}
	params.Set("subType", "CITY,AIRPORT")
	params.Set("keyword", keyword)
	params.Set("page[limit]", locationPageLimit)

	var envelope locationsEnvelope
	err := c.doWithRetry(ctx, EndpointLocations, func() error {
		envelope = locationsEnvelope{}
		return c.getJSON(ctx, c.config.BaseURL+"/v1/reference-data/locations?"+params.Encode(), &envelope)
	})
	if err != nil {
		if _, ok := err.(*AuthError); ok {
			return nil, err
		}
		return nil, &LookupError{Keyword: keyword, Err: err}
	}

	locations := make([]models.Location, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		locations = append(locations, models.Location{
			ID:          d.ID,
			Name:        d.Name,
			IATACode:    d.IATACode,
			CityName:    d.Address.CityName,
			CountryName: d.Address.CountryName,
		})
	}

	return locations, nil
}
