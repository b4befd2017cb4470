package etscore

import (
	"fmt"
	"strings"

	apperrors "github.com/kaanyildiz/etscore-mcp-server/internal/errors"
)

// ValidateHotelCode validates a hotel code tool parameter. Hotel codes are
// opaque vendor identifiers; the only requirement is presence.
func ValidateHotelCode(hotelCode string) error {
	if strings.TrimSpace(hotelCode) == "" {
		return apperrors.NewValidationError("hotelCode", "", "is required")
	}
	return nil
}

// ValidateSearchArgs checks that every semantically required search field is
// present. Dates, nationality, and the price flag are forwarded verbatim to
// the vendor, so no range or format validation is applied beyond presence.
func ValidateSearchArgs(args SearchByLocationArgs) error {
	if strings.TrimSpace(args.City) == "" {
		return apperrors.NewValidationError("city", "", "is required")
	}
	if strings.TrimSpace(args.CheckIn) == "" {
		return apperrors.NewValidationError("checkIn", "", "is required")
	}
	if strings.TrimSpace(args.CheckOut) == "" {
		return apperrors.NewValidationError("checkOut", "", "is required")
	}
	if strings.TrimSpace(args.ClientNationality) == "" {
		return apperrors.NewValidationError("clientNationality", "", "is required")
	}
	if len(args.Rooms) == 0 {
		return apperrors.NewValidationError("rooms", "", "at least one room is required")
	}
	for i, room := range args.Rooms {
		if room.Adults < 1 {
			return apperrors.NewValidationError(
				fmt.Sprintf("rooms[%d].adults", i), "", "must be at least 1")
		}
	}
	return nil
}
