package amadeus

import (
	"context"
	"log"
	"net/url"
)

type airlinesEnvelope struct {
	Data []struct {
		IATACode     string `json:"iataCode"`
		BusinessName string `json:"businessName"`
		CommonName   string `json:"commonName"`
	} `json:"data"`
}

// AirlineName resolves an airline code to its display name. Enrichment
// only: on any failure the code itself is returned.
func (c *Client) AirlineName(ctx context.Context, code string) string {
	params := url.Values{}
	params.Set("airlineCodes", code)

	var envelope airlinesEnvelope
	err := c.doWithRetry(ctx, EndpointAirlines, func() error {
		envelope = airlinesEnvelope{}
		return c.getJSON(ctx, c.config.BaseURL+"/v1/reference-data/airlines?"+params.Encode(), &envelope)
	})
	if err != nil {
		log.Printf("Airline lookup for %s failed: %v", code, err)
		return code
	}

	if len(envelope.Data) == 0 {
		return code
	}
	if name := envelope.Data[0].BusinessName; name != "" {
		return name
	}
	if name := envelope.Data[0].CommonName; name != "" {
		return name
	}
	return code
}
