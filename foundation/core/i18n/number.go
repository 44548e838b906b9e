// File: number.go
// Title: Locale Number Formats
// Description: Formats floating-point values with a locale's separators and
//              parses such text back through the C-locale strnum parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package i18n

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
	"github.com/msto63/numcore/foundation/numeric/strnum"
)

// DefaultMaxFractionDigits is used when Format is called with a negative count
const DefaultMaxFractionDigits = 12

// scientificAbove is the magnitude from which Format switches to exponent form
const scientificAbove = 1e15

// NumberFormat formats and parses numbers for one locale
type NumberFormat struct {
	mu      sync.Mutex
	tag     language.Tag
	printer *message.Printer
	decimal string
	group   string
}

// NewNumberFormat creates a number format for locale. The separators are
// taken from the locale's CLDR data.
func NewNumberFormat(locale string) (*NumberFormat, error) {
	if err := ValidateLocale(locale); err != nil {
		return nil, err
	}
	tag, _ := parseTag(locale)

	nf := &NumberFormat{
		tag:     tag,
		printer: message.NewPrinter(tag),
		decimal: ".",
		group:   ",",
	}
	nf.deriveSeparators()
	return nf, nil
}

// deriveSeparators formats a probe value and reads the separators off the
// result: the first non-digit run groups, the last one is the decimal point
func (nf *NumberFormat) deriveSeparators() {
	probe := nf.printer.Sprint(number.Decimal(1234567.5, number.MaxFractionDigits(1)))

	var runs []string
	var current strings.Builder
	for _, r := range probe {
		if unicode.IsDigit(r) {
			if current.Len() > 0 {
				runs = append(runs, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}

	switch len(runs) {
	case 0:
	case 1:
		nf.decimal, nf.group = runs[0], ""
	default:
		nf.decimal, nf.group = runs[len(runs)-1], runs[0]
	}
}

// Locale returns the canonical locale of the format
func (nf *NumberFormat) Locale() string { return nf.tag.String() }

// DecimalSeparator returns the locale's decimal separator
func (nf *NumberFormat) DecimalSeparator() string { return nf.decimal }

// GroupSeparator returns the locale's digit grouping separator, which may be
// empty
func (nf *NumberFormat) GroupSeparator() string { return nf.group }

// Format writes v with at most maxFrac fraction digits. Magnitudes of 1e15 and
// above, and non-zero magnitudes that would round to zero, use scientific
// notation.
func (nf *NumberFormat) Format(v float64, maxFrac int) string {
	if maxFrac < 0 {
		maxFrac = DefaultMaxFractionDigits
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	abs := math.Abs(v)
	if abs >= scientificAbove || (abs != 0 && abs < math.Pow(10, -float64(maxFrac))) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		return strings.Replace(s, ".", nf.decimal, 1)
	}
	nf.mu.Lock()
	defer nf.mu.Unlock()
	return nf.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFrac)))
}

// normalize turns locale text into the C-locale form strnum understands
func (nf *NumberFormat) normalize(s string) string {
	t := strings.TrimSpace(s)
	t = strings.ReplaceAll(t, "−", "-")
	if nf.group != "" {
		t = strings.ReplaceAll(t, nf.group, "")
	}
	if nf.decimal != "." {
		t = strings.ReplaceAll(t, nf.decimal, ".")
	}
	return t
}

// Parse reads a number written with the locale's separators. Group separators
// are dropped wherever they appear.
func (nf *NumberFormat) Parse(s string) (float64, error) {
	v, err := strnum.ParseFloat64(nf.normalize(s))
	if err != nil {
		return 0, mdwerrors.FormatError(mdwerrors.ModuleI18n, s, "number in locale "+nf.Locale()).
			WithOperation("i18n.Parse")
	}
	return v, nil
}

// Valid reports whether Parse would accept s
func (nf *NumberFormat) Valid(s string) bool {
	return strnum.IsFloat64(nf.normalize(s))
}
