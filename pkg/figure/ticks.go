package figure

import (
	"math"
	"strconv"
)

// MaxTicks bounds the number of ticks per axis.
const MaxTicks = 7

var niceSteps = []float64{1, 2, 2.5, 5, 10}

// Ticks returns evenly spaced round values inside [lo, hi]. The step is
// 1, 2, 2.5 or 5 times a power of ten, picked as the smallest that yields at
// most maxTicks values.
func Ticks(lo, hi float64, maxTicks int) []float64 {
	span := hi - lo
	if !finite(lo) || !finite(hi) || span <= 0 || maxTicks < 2 {
		return nil
	}
	raw := span / float64(maxTicks-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag * 10
	for _, s := range niceSteps {
		if span/(s*mag) <= float64(maxTicks-1) {
			step = s * mag
			break
		}
	}

	const eps = 1e-9
	first := math.Ceil(lo/step - eps)
	last := math.Floor(hi/step + eps)
	// Far from the origin the tick index loses integer precision.
	if !finite(first) || !finite(last) || first+1 == first || last < first || last-first > float64(2*maxTicks) {
		return nil
	}
	n := int(last-first) + 1
	out := make([]float64, 0, n)
	for i := range n {
		v := (first + float64(i)) * step
		if math.Abs(v) < step*eps {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// FormatTick renders a tick value with up to ten significant digits.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
