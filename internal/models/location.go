package models

// Location is a searchable city or airport produced by the autocomplete
// lookup. Transient: never persisted.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IATACode    string `json:"iata_code"`
	CityName    string `json:"city_name,omitempty"`
	CountryName string `json:"country_name,omitempty"`
}

// Display is the text shown in the input after selecting the location.
func (l Location) Display() string {
	return l.Name + " (" + l.IATACode + ")"
}
