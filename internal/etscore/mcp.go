package etscore

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/kaanyildiz/etscore-mcp-server/internal/errors"
)

// MCP tool wrapper methods.
//
// Every wrapper follows the same state machine: validate, resolve if needed,
// call upstream, extract, render. Each one returns the final user-facing
// text alongside a structured error used only for metrics and logging; the
// tool layer never surfaces the error as a protocol fault, so the calling
// agent always receives actionable text.

// SearchByLocationMCP searches hotels by city name, dates, and occupancy.
// On success the upstream response body is passed through verbatim.
func (c *Client) SearchByLocationMCP(ctx context.Context, args SearchByLocationArgs) (string, error) {
	if err := ValidateSearchArgs(args); err != nil {
		return "Hotel search failed: " + err.Error(), err
	}

	locationID, ok := c.ResolveLocationID(ctx, args.City)
	if !ok {
		err := apperrors.NewNotFoundError("location", args.City)
		return fmt.Sprintf("No location ID found for city: %s", args.City), err
	}

	rooms := make([]RoomOccupancy, 0, len(args.Rooms))
	for _, room := range args.Rooms {
		rooms = append(rooms, RoomOccupancy{
			Adults:    room.Adults,
			ChildAges: room.ChildrenAges,
		})
	}

	req := SearchRequest{
		CheckIn:           args.CheckIn,
		CheckOut:          args.CheckOut,
		ClientNationality: args.ClientNationality,
		Rooms:             rooms,
		AllPricesFlag:     args.AllPricesFlag,
		Limit:             c.config.SearchLimit,
		Offset:            c.config.SearchOffset,
		FeedID:            c.config.FeedID,
		LocationID:        locationID,
	}

	body, err := c.SearchByLocation(ctx, req)
	if err != nil {
		return err.Error(), err
	}

	return string(body), nil
}

// HotelDetailsMCP returns a formatted multi-line summary for a hotel.
func (c *Client) HotelDetailsMCP(ctx context.Context, args HotelCodeArgs) (string, error) {
	if err := ValidateHotelCode(args.HotelCode); err != nil {
		return "Hotel details failed: hotelCode is missing.", err
	}

	body, err := c.HotelDetail(ctx, args.HotelCode)
	if err != nil {
		return fmt.Sprintf("Error retrieving hotel details for %s: %s", args.HotelCode, err), err
	}

	summary, err := ExtractHotelSummary(body)
	if err != nil {
		return "Error parsing hotel details", err
	}

	return summary, nil
}

// HotelImagesMCP returns the hotel's image URLs as a newline bullet list.
func (c *Client) HotelImagesMCP(ctx context.Context, args HotelCodeArgs) (string, error) {
	if err := ValidateHotelCode(args.HotelCode); err != nil {
		return "Hotel images failed: hotelCode is missing.", err
	}

	body, err := c.HotelDetail(ctx, args.HotelCode)
	if err != nil {
		return fmt.Sprintf("Error retrieving hotel images for %s: %s", args.HotelCode, err), err
	}

	urls, err := ExtractImageURLs(body)
	if err != nil {
		return fmt.Sprintf("Error retrieving hotel images for %s: %s", args.HotelCode, err), err
	}
	if len(urls) == 0 {
		return fmt.Sprintf("No images found for hotelCode %s.", args.HotelCode), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Images for hotelCode %s:\n", args.HotelCode)
	for _, url := range urls {
		b.WriteString("- ")
		b.WriteString(url)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// HotelDescriptionMCP returns the hotel's description text across all
// available languages.
func (c *Client) HotelDescriptionMCP(ctx context.Context, args HotelCodeArgs) (string, error) {
	if err := ValidateHotelCode(args.HotelCode); err != nil {
		return "Hotel description failed: hotelCode is missing.", err
	}

	body, err := c.HotelDetail(ctx, args.HotelCode)
	if err != nil {
		return fmt.Sprintf("Error retrieving hotel description for %s: %s", args.HotelCode, err), err
	}

	description, err := ExtractDescription(body)
	if err != nil {
		return fmt.Sprintf("Error retrieving hotel description for %s: %s", args.HotelCode, err), err
	}
	if description == "" {
		return fmt.Sprintf("No description found for hotelCode %s.", args.HotelCode), nil
	}

	return fmt.Sprintf("Description for hotelCode %s:\n%s", args.HotelCode, description), nil
}

// HotelFacilityCheckMCP returns the hotel's facility names as a newline
// bullet list.
func (c *Client) HotelFacilityCheckMCP(ctx context.Context, args HotelCodeArgs) (string, error) {
	if err := ValidateHotelCode(args.HotelCode); err != nil {
		return "Facility check failed: hotelCode is missing.", err
	}

	body, err := c.HotelDetail(ctx, args.HotelCode)
	if err != nil {
		return fmt.Sprintf("Error retrieving facilities for hotelCode %s: %s", args.HotelCode, err), err
	}

	names, err := ExtractFacilityNames(body)
	if err != nil {
		return fmt.Sprintf("Error retrieving facilities for hotelCode %s: %s", args.HotelCode, err), err
	}
	if len(names) == 0 {
		return fmt.Sprintf("No facilities found for hotelCode %s.", args.HotelCode), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Facilities for hotelCode %s:\n", args.HotelCode)
	for _, name := range names {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// HotelReservationMCP renders the fixed checkout link for a hotel. No
// upstream call is made; the booking identifier is part of the vendor URL
// and the hotel code appears only in the surrounding message.
func (c *Client) HotelReservationMCP(ctx context.Context, args ReservationArgs) (string, error) {
	if strings.TrimSpace(args.HotelCode) == "" {
		err := apperrors.NewValidationError("hotelCode", "", "is required")
		return "Reservation failed: hotelCode is missing.", err
	}

	return fmt.Sprintf("%s here is the link to the reservation for hotel %s. Have a wonderful stay with ETSTUR!",
		reservationURL, args.HotelCode), nil
}
