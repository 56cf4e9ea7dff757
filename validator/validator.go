package validator

import (
	"fmt"
	"strings"
	"unicode"

	"hotel-client/constants"
	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"

	"github.com/fiam/gounidecode/unidecode"
	playground "github.com/go-playground/validator/v10"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// maxTypoDistance is how far a typed room type may be from a known one
// and still get a suggestion.
const maxTypoDistance = 3

var (
	validate      = playground.New()
	roomTypeMatch = closestmatch.New(constants.RoomTypes, []int{2, 3})
)

func isKnownStatus(status string) bool {
	for _, s := range constants.RoomStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidateAvailabilityPayload rejects events that cannot be reconciled.
// The status is the backend's and is passed through as is.
func ValidateAvailabilityPayload(p *dto.AvailabilityPayload) error {
	if p == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "empty availability event", nil)
	}
	if err := validate.Struct(p); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid availability event", err)
	}
	return nil
}

// ValidateRoomInput checks an admin room payload and normalises its type.
// Defaults available to true when the payload leaves it out.
func ValidateRoomInput(room *dto.RoomRequest) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room number is required", nil)
	}

	roomType, err := NormalizeRoomType(room.Type)
	if err != nil {
		return err
	}
	room.Type = roomType

	if room.Price != nil && *room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "price cannot be negative", nil)
	}
	if room.BasePrice != nil && *room.BasePrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "base price cannot be negative", nil)
	}
	if room.Status != "" && !isKnownStatus(room.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("unknown room status %q", room.Status), nil)
	}
	if room.Available == nil {
		available := true
		room.Available = &available
	}
	return nil
}

// NormalizeRoomType maps free text like " suíte " to SUITE. Unknown types
// fail, with a suggestion when one is close enough.
func NormalizeRoomType(input string) (string, error) {
	normalized := normalizeInput(input)
	if normalized == "" {
		return "", errors.NewAppError(errors.ErrCodeRequiredField, "room type is required", nil)
	}
	for _, t := range constants.RoomTypes {
		if t == normalized {
			return t, nil
		}
	}

	msg := fmt.Sprintf("unknown room type %q, expected one of %s", input, strings.Join(constants.RoomTypes, ", "))
	if suggestion := suggestRoomType(normalized); suggestion != "" {
		msg = fmt.Sprintf("unknown room type %q, did you mean %s?", input, suggestion)
	}
	return "", errors.NewAppError(errors.ErrCodeInvalidRoomType, msg, nil)
}

func suggestRoomType(normalized string) string {
	closest := roomTypeMatch.Closest(normalized)
	if closest == "" {
		return ""
	}
	distance := levenshtein.DistanceForStrings([]rune(normalized), []rune(closest), levenshtein.DefaultOptions)
	if distance > maxTypoDistance {
		return ""
	}
	return closest
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = norm.NFC.String(input)
	input = unidecode.Unidecode(input)
	input = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	return strings.ToUpper(input)
}

// ValidateBookingDates parses guest-typed dates; check-out must come after check-in.
func ValidateBookingDates(checkIn, checkOut string) (models.Date, models.Date, error) {
	in, err := models.ParseUserDate(checkIn)
	if err != nil {
		return models.Date{}, models.Date{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid check-in date", err)
	}
	out, err := models.ParseUserDate(checkOut)
	if err != nil {
		return models.Date{}, models.Date{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid check-out date", err)
	}
	if !out.After(in) {
		return models.Date{}, models.Date{}, errors.NewAppError(errors.ErrCodeInvalidDate, "check-out must be after check-in", nil)
	}
	return in, out, nil
}

// ValidateBookingStatus accepts the three booking statuses only
func ValidateBookingStatus(status string) error {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed, constants.BookingStatusCancelled:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("unknown booking status %q", status), nil)
}
