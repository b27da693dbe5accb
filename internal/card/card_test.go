package card

import (
	"errors"
	"math"
	"testing"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		name string
		in   *int
		want string
	}{
		{"nil", nil, "N/A"},
		{"zero", IntPtr(0), "N/A"},
		{"one", IntPtr(1), "1"},
		{"below thousand", IntPtr(999), "999"},
		{"exact thousand", IntPtr(1000), "1.0K+"},
		{"thousands", IntPtr(1500), "1.5K+"},
		{"rounds to one decimal", IntPtr(12_345), "12.3K+"},
		{"just below million", IntPtr(999_999), "1000.0K+"},
		{"exact million", IntPtr(1_000_000), "1.0M+"},
		{"millions", IntPtr(2_500_000), "2.5M+"},
		{"large", IntPtr(120_000_000), "120.0M+"},
		{"thousands tie rounds up", IntPtr(1250), "1.3K+"},
		{"another thousands tie", IntPtr(3250), "3.3K+"},
		{"millions tie rounds up", IntPtr(2_250_000), "2.3M+"},
		{"below tie in binary", IntPtr(1150), "1.1K+"},
		{"below tie in binary again", IntPtr(1450), "1.4K+"},
		{"millions below tie in binary", IntPtr(2_150_000), "2.1M+"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCount(tc.in); got != tc.want {
				t.Errorf("FormatCount() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatRating(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{4.5, "4.5"},
		{-3.25, "-3.25"},
		{math.Copysign(0, -1), "0"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{1e21, "1e+21"},
		{1.5e22, "1.5e+22"},
		{123456789012345680000, "123456789012345680000"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
	}
	for _, tc := range cases {
		if got := FormatRating(tc.in); got != tc.want {
			t.Errorf("FormatRating(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBadgeFor(t *testing.T) {
	cases := []struct {
		status Status
		label  string
		class  string
		tone   Tone
	}{
		{StatusUpcoming, "Upcoming", "bg-yellow-500", TonePending},
		{StatusActive, "Active", "bg-green-600", ToneSuccess},
		{StatusCompleted, "Completed", "bg-gray-600", ToneNeutral},
		{Status("paused"), "Paused", "bg-gray-600", ToneNeutral},
		{Status(""), "", "bg-gray-600", ToneNeutral},
	}
	for _, tc := range cases {
		got := BadgeFor(tc.status)
		if got.Label != tc.label {
			t.Errorf("BadgeFor(%q).Label = %q, want %q", tc.status, got.Label, tc.label)
		}
		if got.Class != tc.class {
			t.Errorf("BadgeFor(%q).Class = %q, want %q", tc.status, got.Class, tc.class)
		}
		if got.Tone != tc.tone {
			t.Errorf("BadgeFor(%q).Tone = %d, want %d", tc.status, got.Tone, tc.tone)
		}
	}
}

func TestBadgeFor_OnlyFirstCharacterChanges(t *testing.T) {
	got := BadgeFor(Status("early ACCESS"))
	if got.Label != "Early ACCESS" {
		t.Errorf("Label %q, want %q", got.Label, "Early ACCESS")
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"upcoming", "active", "completed", " active "} {
		if _, err := ParseStatus(raw); err != nil {
			t.Errorf("ParseStatus(%q): %v", raw, err)
		}
	}
	_, err := ParseStatus("Active")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ParseStatus(Active) err = %v, want ErrInvalidStatus", err)
	}
	_, err = ParseStatus("")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ParseStatus(\"\") err = %v, want ErrInvalidStatus", err)
	}
}
