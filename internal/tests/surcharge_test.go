package tests

import (
	"testing"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/service"
)

func TestIsOutOfHours(t *testing.T) {
	t.Parallel()

	hours := service.DefaultOperatingHours()

	testCases := []struct {
		name     string
		time     string
		expected bool
	}{
		{name: "minute before opening", time: "07:59", expected: true},
		{name: "exactly at opening", time: "08:00", expected: false},
		{name: "mid morning", time: "10:30", expected: false},
		{name: "last staffed minute", time: "19:59", expected: false},
		{name: "exactly at close", time: "20:00", expected: true},
		{name: "late evening", time: "23:00", expected: true},
		{name: "midnight", time: "00:00", expected: true},
		{name: "unparsable time counts as in-hours", time: "soon", expected: false},
		{name: "empty time counts as in-hours", time: "", expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := hours.IsOutOfHours(tc.time); got != tc.expected {
				t.Errorf("IsOutOfHours(%q) = %v, expected %v", tc.time, got, tc.expected)
			}
		})
	}
}

func TestOutOfHoursSurcharge(t *testing.T) {
	t.Parallel()

	hours := service.DefaultOperatingHours()

	testCases := []struct {
		name      string
		startTime string
		endTime   string
		expected  float64
	}{
		{name: "both in hours", startTime: "09:00", endTime: "18:00", expected: 0},
		{name: "pickup out of hours", startTime: "07:00", endTime: "18:00", expected: 30},
		{name: "return out of hours", startTime: "09:00", endTime: "21:00", expected: 30},
		{name: "both out of hours", startTime: "06:00", endTime: "22:00", expected: 60},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := hours.OutOfHoursSurcharge(tc.startTime, tc.endTime)
			if got != tc.expected {
				t.Errorf("OutOfHoursSurcharge(%q, %q) = %v, expected %v",
					tc.startTime, tc.endTime, got, tc.expected)
			}
		})
	}
}

func TestDifferentLocationSurcharge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		pickup   string
		ret      string
		expected float64
	}{
		{name: "same location", pickup: "loc-1", ret: "loc-1", expected: 0},
		{name: "different locations", pickup: "loc-1", ret: "loc-2", expected: 25},
		{name: "missing return location", pickup: "loc-1", ret: "", expected: 0},
		{name: "missing pickup location", pickup: "", ret: "loc-2", expected: 0},
		{name: "both missing", pickup: "", ret: "", expected: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := service.DifferentLocationSurcharge(tc.pickup, tc.ret)
			if got != tc.expected {
				t.Errorf("DifferentLocationSurcharge(%q, %q) = %v, expected %v",
					tc.pickup, tc.ret, got, tc.expected)
			}
		})
	}
}
