package dto

// LookupResult is one candidate record from the external product database.
// Any field may be absent.
type LookupResult struct {
	Name        string            `json:"name"`
	Brand       string            `json:"brand"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Images      []string          `json:"images"`
	Price       float64           `json:"price"`
	OfferURL    string            `json:"offer_url"`
	Specs       map[string]string `json:"specs"`
}

// LookupResponse is the wire envelope returned by the lookup API.
type LookupResponse struct {
	Products []LookupResult `json:"products"`
}
