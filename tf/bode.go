package tf

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/polykit/poly"
)

// BodePoint is one frequency response sample: the angular frequency, the
// magnitude (absolute and in decibels) and the phase (radians and
// degrees) of G(jw).
type BodePoint struct {
	AngularFreq float64
	Magnitude   float64
	MagnitudeDb float64
	Phase       float64
	PhaseDeg    float64
}

// Frequency returns the sample frequency in hertz.
func (b BodePoint) Frequency() float64 {
	return b.AngularFreq / (2 * math.Pi)
}

// Bode samples the frequency response of g on a logarithmic angular
// frequency grid from wmin to wmax. The step is in logarithmic scale: use
// 0.1 for ten points per decade. It panics when the step or wmin is not
// strictly positive or the interval is empty.
func Bode[T poly.Float](g Tf[T], wmin, wmax, step float64) []BodePoint {
	if step <= 0 {
		panic("tf: bode step must be strictly positive")
	}
	if wmin <= 0 {
		panic("tf: bode frequencies must be strictly positive")
	}
	if wmin >= wmax {
		panic("tf: bode interval is empty")
	}

	base := math.Log10(wmin)
	intervals := int(math.Floor((math.Log10(wmax) - base) / step))

	points := make([]BodePoint, 0, intervals+1)
	for i := 0; i <= intervals; i++ {
		omega := math.Pow(10, base+step*float64(i))
		resp := g.Eval(complex(0, omega))
		mag := cmplx.Abs(resp)
		phase := cmplx.Phase(resp)
		points = append(points, BodePoint{
			AngularFreq: omega,
			Magnitude:   mag,
			MagnitudeDb: 20 * math.Log10(mag),
			Phase:       phase,
			PhaseDeg:    phase * 180 / math.Pi,
		})
	}
	return points
}
