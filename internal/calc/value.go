package calc

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/msto63/numcore/foundation/core/i18n"
)

// Bits is an unsigned result of a given width, printed in hexadecimal
type Bits struct {
	Value uint64
	Width int
}

func (b Bits) String() string {
	return fmt.Sprintf("0x%0*X", b.Width/4, b.Value)
}

// Text is a multi-line result such as a listing
type Text string

// FormatValue renders a handler result for display. Floats use the locale's
// separators; float32 values are printed with their shortest representation.
func FormatValue(v interface{}, nf *i18n.NumberFormat, maxFrac int) string {
	switch x := v.(type) {
	case float64:
		return nf.Format(x, maxFrac)
	case float32:
		shortest, _ := strconv.ParseFloat(strconv.FormatFloat(float64(x), 'g', -1, 32), 64)
		return nf.Format(shortest, maxFrac)
	case *big.Float:
		if x == nil {
			return "<nil>"
		}
		return x.Text('g', 20)
	case bool:
		return strconv.FormatBool(x)
	case Text:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
