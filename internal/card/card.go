// Package card holds the game info card view-model and the pure helpers the
// renderers share: count formatting and status badge selection.
package card

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"
)

// Status is the lifecycle stage shown on the card badge.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// ErrInvalidStatus is returned by ParseStatus for values outside the three known stages.
var ErrInvalidStatus = errors.New("invalid status")

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.TrimSpace(raw)); s {
	case StatusUpcoming, StatusActive, StatusCompleted:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Developer identifies the studio behind a game.
type Developer struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Logo string `json:"logo" yaml:"logo"`
}

// GameInfo is everything a game info card displays. It is owned by the caller
// and never modified by the renderers. Zero values are the defaults: no
// platforms, no feedback control, no trailing actions.
type GameInfo struct {
	Image        string
	Title        string
	Developer    Developer
	Rating       float64
	Status       Status
	Description  string
	Players      *int
	Community    *int
	Categories   []string
	Platforms    []string
	ShowFeedback bool

	// AdditionalActions is placed verbatim after the footer when set.
	AdditionalActions templ.Component
}

// FormatCount abbreviates a count for display: 1500 -> "1.5K+", 2500000 -> "2.5M+".
// A nil or zero count renders as "N/A".
func FormatCount(n *int) string {
	// Zero is indistinguishable from "no data" here; callers relying on a
	// literal "0" need to special-case it themselves.
	if n == nil || *n == 0 {
		return "N/A"
	}
	v := *n
	switch {
	case v >= 1_000_000:
		return oneDecimal(float64(v)/1_000_000) + "M+"
	case v >= 1_000:
		return oneDecimal(float64(v)/1_000) + "K+"
	default:
		return strconv.Itoa(v)
	}
}

// oneDecimal rounds the exact value of a non-negative x to one decimal,
// ties away from zero. 1250/1000 is exactly 1.25 and gives "1.3"; 1150/1000
// is stored just below 1.15 and gives "1.1".
func oneDecimal(x float64) string {
	r := new(big.Rat).SetFloat64(x)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	q := new(big.Int).Quo(r.Num(), r.Denom()).Int64()
	return strconv.FormatInt(q/10, 10) + "." + strconv.FormatInt(q%10, 10)
}

// FormatRating renders a rating the way a browser prints a number: shortest
// round-trip digits, "0" for negative zero, "Infinity"/"NaN" for the
// non-finite values, and exponent form outside [1e-6, 1e21).
func FormatRating(r float64) string {
	switch {
	case math.IsNaN(r):
		return "NaN"
	case math.IsInf(r, 1):
		return "Infinity"
	case math.IsInf(r, -1):
		return "-Infinity"
	case r == 0:
		return "0"
	}
	if abs := math.Abs(r); abs >= 1e21 || abs < 1e-6 {
		// Go pads the exponent to two digits ("1e-07"); browsers do not.
		mant, exp, _ := strings.Cut(strconv.FormatFloat(r, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Tone is the visual emphasis of a status badge.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	TonePending
)

// Badge is the label and styling chosen for a status.
type Badge struct {
	Label string
	Class string
	Tone  Tone
}

// BadgeFor selects the badge for a status. Unknown values get the neutral treatment.
func BadgeFor(s Status) Badge {
	b := Badge{Label: capitalize(string(s))}
	switch s {
	case StatusActive:
		b.Class, b.Tone = "bg-green-600", ToneSuccess
	case StatusUpcoming:
		b.Class, b.Tone = "bg-yellow-500", TonePending
	default:
		b.Class, b.Tone = "bg-gray-600", ToneNeutral
	}
	return b
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IntPtr is a convenience for building optional counts.
func IntPtr(v int) *int {
	return &v
}
