package tools

// AllTools contains all tool specifications for the ETS Score MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "hotel_search_by_location",
		Method:   "SearchByLocation",
		Title:    "Search Hotels by Location",
		Category: "search",
		Description: `Search for available hotels in a city for given dates and occupancy.

USE WHEN: User asks "find hotels in X", "what hotels are available in Kayseri", "search for a hotel for 2 adults".

NOT FOR: Looking up a specific hotel you already have a code for (use hotel_details instead).

PARAMETERS:
- city: City name, free text (required)
- check_in: Check-in date YYYY-MM-DD (required)
- check_out: Check-out date YYYY-MM-DD (required)
- client_nationality: Guest nationality code, e.g. TR (required)
- rooms: Requested rooms with adults and children ages (required)
- all_prices_flag: Request all price variants (default false)

RETURNS: Raw hotel availability payload from the vendor, including hotel codes usable with the other tools. If the city cannot be resolved to a location, returns a message saying so.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// DETAIL TOOLS
	// ==========================================================================
	{
		Name:     "hotel_details",
		Method:   "HotelDetails",
		Title:    "Get Hotel Details",
		Category: "detail",
		Description: `Get a summary of a specific hotel: name, location, address, coordinates, phone, and star rating.

USE WHEN: User asks "tell me about hotel X", "where is this hotel", "what's the hotel's phone number or star rating".

NOT FOR: Photos (use hotel_images), long descriptions (use hotel_description), or amenities (use hotel_facility_check).

PARAMETERS:
- hotel_code: Vendor hotel code from search results (required)

RETURNS: Multi-line hotel summary with name, location, address, coordinates, phone, and star rating.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "hotel_images",
		Method:   "HotelImages",
		Title:    "Get Hotel Images",
		Category: "detail",
		Description: `List all image URLs for a hotel, including room photos.

USE WHEN: User asks "show me photos of the hotel", "what does the hotel look like", "pictures of the rooms".

NOT FOR: Textual hotel information (use hotel_details or hotel_description).

PARAMETERS:
- hotel_code: Vendor hotel code from search results (required)

RETURNS: Bullet list of image URLs, or a message when the hotel has no images.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "hotel_description",
		Method:   "HotelDescription",
		Title:    "Get Hotel Description",
		Category: "detail",
		Description: `Get the hotel's full marketing description text in all available languages.

USE WHEN: User asks "describe the hotel", "what does the hotel say about itself", "read the hotel description".

NOT FOR: Structured facts like address or phone (use hotel_details).

PARAMETERS:
- hotel_code: Vendor hotel code from search results (required)

RETURNS: Description text grouped by language, or a message when no description exists.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "hotel_facility_check",
		Method:   "HotelFacilityCheck",
		Title:    "Check Hotel Facilities",
		Category: "detail",
		Description: `List the hotel's facilities and amenities.

USE WHEN: User asks "does the hotel have a pool", "is there wifi", "what amenities are available".

NOT FOR: General hotel information (use hotel_details).

PARAMETERS:
- hotel_code: Vendor hotel code from search results (required)

RETURNS: Bullet list of facility names, or a message when the hotel lists no facilities.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// RESERVATION TOOLS
	// ==========================================================================
	{
		Name:     "hotel_reservation",
		Method:   "HotelReservation",
		Title:    "Get Reservation Link",
		Category: "reservation",
		Description: `Produce a checkout link to reserve a hotel.

USE WHEN: User says "book this hotel", "I want to reserve", "give me the booking link".

NOT FOR: Checking availability or prices (use hotel_search_by_location).

PARAMETERS:
- hotel_code: Vendor hotel code to reserve (required)

RETURNS: A reservation checkout URL with a short confirmation message. No booking is made by this tool.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
