package planerect

import (
	"fmt"
	"math"
	"strconv"
)

// FormatDMS renders decimal degrees as D°MM'SS". Seconds are printed with
// prec decimals, or with the fewest digits that represent them exactly when
// prec is negative. Degrees and minutes are floored, so negative angles read
// as a negative degree plus positive minutes: -0.5 is -1°30'0".
func FormatDMS(deg float64, prec int) string {
	d := math.Floor(deg)
	frac := deg - d
	m := math.Floor(frac * 60)
	s := (frac*60 - m) * 60
	return fmt.Sprintf("%d°%02d'%s\"", int(d), int(m), strconv.FormatFloat(s, 'f', prec, 64))
}
