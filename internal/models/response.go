package models

type ResultsMetadata struct {
	TotalOffers  int   `json:"total_offers"`
	ShownOffers  int   `json:"shown_offers"`
	CacheHit     bool  `json:"cache_hit"`
	SearchTimeMs int64 `json:"search_time_ms"`
}

type ResultsResponse struct {
	Query    SearchQuery     `json:"query"`
	Metadata ResultsMetadata `json:"metadata"`
	Offers   []Offer         `json:"offers"`
	Carriers Carriers        `json:"carriers"`
	Airlines []string        `json:"airlines"`
}

type AutocompleteResponse struct {
	Text        string     `json:"text"`
	Suggestions []Location `json:"suggestions"`
	Open        bool       `json:"open"`
}

type ValidationErrorResponse struct {
	Error  string      `json:"error"`
	Fields FieldErrors `json:"fields"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
