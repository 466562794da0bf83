package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type providerStub struct {
	tokenRequests  int64
	expiresIn      int
	tokenStatus    int
	locationsBody  string
	locationsCode  int
	flightsBody    string
	flightsCode    int
	airlinesBody   string
	airlinesCode   int
	lastLocationsQ string
}

func newProviderStub() *providerStub {
	return &providerStub{
		expiresIn:     1799,
		tokenStatus:   http.StatusOK,
		locationsCode: http.StatusOK,
		locationsBody: `{"data":[]}`,
		flightsCode:   http.StatusOK,
		flightsBody:   `{"data":[]}`,
		airlinesCode:  http.StatusOK,
		airlinesBody:  `{"data":[]}`,
	}
}

func (s *providerStub) server() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.tokenRequests, 1)
		if s.tokenStatus != http.StatusOK {
			w.WriteHeader(s.tokenStatus)
			fmt.Fprint(w, `{"errors":[{"detail":"invalid credentials"}]}`)
			return
		}
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":%d}`, atomic.LoadInt64(&s.tokenRequests), s.expiresIn)
	})

	mux.HandleFunc("/v1/reference-data/locations", func(w http.ResponseWriter, r *http.Request) {
		s.lastLocationsQ = r.URL.Query().Get("keyword")
		w.WriteHeader(s.locationsCode)
		fmt.Fprint(w, s.locationsBody)
	})

	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(s.flightsCode)
		fmt.Fprint(w, s.flightsBody)
	})

	mux.HandleFunc("/v1/reference-data/airlines", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(s.airlinesCode)
		fmt.Fprint(w, s.airlinesBody)
	})

	return httptest.NewServer(mux)
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:      baseURL,
		ClientID:     "key",
		ClientSecret: "secret",
		Timeout:      2 * time.Second,
		MaxRetries:   0,
	})
}

func TestTokenIsCachedAcrossCalls(t *testing.T) {
	stub := newProviderStub()
	srv := stub.server()
	defer srv.Close()

	client := newTestClient(srv.URL)
	ctx := context.Background()

	if _, err := client.SearchLocations(ctx, "del"); err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	if _, err := client.SearchLocations(ctx, "bom"); err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}

	if got := atomic.LoadInt64(&stub.tokenRequests); got != 1 {
		t.Fatalf("token requested %d times, want 1", got)
	}
}

func TestTokenRefreshesAfterExpiryMargin(t *testing.T) {
	stub := newProviderStub()
	stub.expiresIn = 1799
	srv := stub.server()
	defer srv.Close()

	client := newTestClient(srv.URL)
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	client.token.now = func() time.Time { return clock }

	ctx := context.Background()
	if _, err := client.SearchLocations(ctx, "del"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	// Inside expires_in - 300s: cached token still valid.
	clock = clock.Add(1498 * time.Second)
	if _, err := client.SearchLocations(ctx, "del"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got := atomic.LoadInt64(&stub.tokenRequests); got != 1 {
		t.Fatalf("token refreshed early: %d requests", got)
	}

	// Past the margin: a fresh token is fetched transparently.
	clock = clock.Add(2 * time.Second)
	if _, err := client.SearchLocations(ctx, "del"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got := atomic.LoadInt64(&stub.tokenRequests); got != 2 {
		t.Fatalf("token not refreshed after margin: %d requests", got)
	}
}

func TestTokenFailureSurfacesAsAuthError(t *testing.T) {
	stub := newProviderStub()
	stub.tokenStatus = http.StatusUnauthorized
	srv := stub.server()
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.SearchLocations(context.Background(), "del")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestSearchLocationsParsesResults(t *testing.T) {
	stub := newProviderStub()
	stub.locationsBody = `{"data":[
		{"id":"CDEL","name":"Delhi","iataCode":"DEL","subType":"CITY","address":{"cityName":"Delhi","countryName":"India"}},
		{"id":"ABOM","name":"Chhatrapati Shivaji Intl","iataCode":"BOM","subType":"AIRPORT","address":{"cityName":"Mumbai","countryName":"India"}}
	]}`
	srv := stub.server()
	defer srv.Close()

	client := newTestClient(srv.URL)
	locations, err := client.SearchLocations(context.Background(), "del")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if len(locations) != 2 {
		t.Fatalf("got %d locations, want 2", len(locations))
	}
	if locations[0].IATACode != "DEL" || locations[0].CityName != "Delhi" {
		t.Fatalf("first location = %+v", locations[0])
	}
	if got := locations[0].Display(); got != "Delhi (DEL)" {
		t.Fatalf("display = %q", got)
	}
	if stub.lastLocationsQ != "del" {
		t.Fatalf("keyword sent = %q", stub.lastLocationsQ)
	}
}

func TestSearchLocationsFailureWrapsLookupError(t *testing.T) {
	stub := newProviderStub()
	stub.locationsCode = http.StatusInternalServerError
	stub.locationsBody = `{}`
	srv := stub.server()
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.SearchLocations(context.Background(), "del")

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
}
