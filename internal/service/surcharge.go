package service

import (
	"strconv"
	"strings"
)

// Flat surcharges in currency units. The out-of-hours fee applies once per
// endpoint (pickup and return independently); the different-location fee is
// a single one-time charge.
const (
	OutOfHoursFee        = 30.0
	DifferentLocationFee = 25.0
)

// OperatingHours contains the staffed-hours configuration for agencies.
type OperatingHours struct {
	Open  int // first staffed hour, inclusive
	Close int // first unstaffed hour
}

// DefaultOperatingHours returns the default staffed hours (08:00-20:00).
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{
		Open:  8,
		Close: 20,
	}
}

// IsOutOfHours reports whether a "HH:MM" wall-clock time falls outside
// staffed hours. Only the hour component matters: "07:59" is out, "19:59"
// is in. A time that does not parse counts as in-hours.
func (h OperatingHours) IsOutOfHours(t string) bool {
	hourPart, _, _ := strings.Cut(t, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return false
	}
	return hour < h.Open || hour >= h.Close
}

// OutOfHoursSurcharge sums the flat fee once for each endpoint that falls
// outside staffed hours: 0, 30 or 60, never scaled by day count.
func (h OperatingHours) OutOfHoursSurcharge(startTime, endTime string) float64 {
	var surcharge float64
	if h.IsOutOfHours(startTime) {
		surcharge += OutOfHoursFee
	}
	if h.IsOutOfHours(endTime) {
		surcharge += OutOfHoursFee
	}
	return surcharge
}

// IsDifferentReturnLocation reports whether the vehicle is returned to a
// different agency: both ids set and unequal.
func IsDifferentReturnLocation(pickupID, returnID string) bool {
	return pickupID != "" && returnID != "" && pickupID != returnID
}

// DifferentLocationSurcharge returns the flat one-time fee for returning
// the vehicle to a different agency, or 0.
func DifferentLocationSurcharge(pickupID, returnID string) float64 {
	if IsDifferentReturnLocation(pickupID, returnID) {
		return DifferentLocationFee
	}
	return 0
}
