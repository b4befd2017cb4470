package etscore

// RoomArgs describes one requested room in the search tool input.
type RoomArgs struct {
	Adults       int   `json:"adults" jsonschema:"required" jsonschema_description:"Number of adults in the room"`
	ChildrenAges []int `json:"children_ages,omitempty" jsonschema_description:"Ages of children in the room, one entry per child"`
}

// SearchByLocationArgs contains parameters for the hotel search tool.
// The feed id and result window are injected internally and are not
// user-supplied.
type SearchByLocationArgs struct {
	City              string     `json:"city" jsonschema:"required" jsonschema_description:"City name to search hotels in (free text, e.g. Kayseri)"`
	CheckIn           string     `json:"check_in" jsonschema:"required" jsonschema_description:"Check-in date (YYYY-MM-DD)"`
	CheckOut          string     `json:"check_out" jsonschema:"required" jsonschema_description:"Check-out date (YYYY-MM-DD)"`
	ClientNationality string     `json:"client_nationality" jsonschema:"required" jsonschema_description:"Guest nationality code (e.g. TR, DE)"`
	Rooms             []RoomArgs `json:"rooms" jsonschema:"required" jsonschema_description:"Requested rooms with occupancy"`
	AllPricesFlag     bool       `json:"all_prices_flag,omitempty" jsonschema_description:"Request all price variants instead of the best price only"`
}

// HotelCodeArgs contains the hotel identifier shared by the detail, image,
// description, and facility tools.
type HotelCodeArgs struct {
	HotelCode string `json:"hotel_code" jsonschema:"required" jsonschema_description:"Vendor hotel code identifying the property"`
}

// ReservationArgs contains parameters for the reservation link tool.
type ReservationArgs struct {
	HotelCode string `json:"hotel_code" jsonschema:"required" jsonschema_description:"Vendor hotel code to reserve"`
}
