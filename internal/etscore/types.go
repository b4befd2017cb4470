// Package etscore provides a client for the ETS Score hotel content and
// search APIs. It exposes hotel search, hotel-detail extraction, and
// location autocomplete resolution for the MCP tool layer.
package etscore

// API endpoint paths
const (
	autocompletePath     = "/content-service/autocomplete/search"
	hotelDetailPath      = "/content-service/hotel-detail" // + /{language}/{hotelCode}
	searchByLocationPath = "/generic-api-service/royal/hotel/search-by-location"
)

// Autocomplete request constants. The language and page size are fixed by
// the vendor contract, independent of the configured content language.
const (
	autocompleteLanguage = "tr"
	autocompleteSize     = 30
)

// locationTypeCity is the only autocomplete result type eligible for
// search-by-location resolution.
const locationTypeCity = "CITY"

// reservationURL is the fixed checkout link returned by the reservation
// tool. The booking identifier is baked into the vendor URL.
const reservationURL = "https://www.etstur.com/checkout/checkout/hotel/step1?bookingUuid=de8af0a4-4134-4a09-96c2-9316e89cbed1"

// RoomOccupancy describes one requested room in a hotel search.
type RoomOccupancy struct {
	Adults    int   `json:"adults"`
	ChildAges []int `json:"childAges,omitempty"`
}

// SearchRequest is the body POSTed to the search-by-location endpoint.
// It is composed from tool parameters plus the injected feed id, result
// window, and resolved location id. Constructed fresh per call, never
// persisted.
type SearchRequest struct {
	CheckIn           string          `json:"checkIn"`
	CheckOut          string          `json:"checkOut"`
	ClientNationality string          `json:"clientNationality"`
	Rooms             []RoomOccupancy `json:"rooms"`
	AllPricesFlag     bool            `json:"allPricesFlag"`
	Limit             int             `json:"limit"`
	Offset            int             `json:"offset"`
	FeedID            string          `json:"feedId"`
	LocationID        int             `json:"locationId"`
}

// AutocompleteRequest is the body POSTed to the autocomplete endpoint.
type AutocompleteRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	Size     int    `json:"size"`
}
