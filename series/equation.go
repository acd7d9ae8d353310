package series

import (
	"fmt"
	"math"
	"strings"
)

// zeroTermThreshold elides terms whose coefficient magnitude falls
// below it when rendering equation strings.
const zeroTermThreshold = 1e-10

func significant(c float64) bool {
	return math.Abs(c) >= zeroTermThreshold
}

// renderPolynomial renders "y = c·x^d + ... + c" from ascending-power
// coefficients, highest power first, omitting near-zero terms.
func renderPolynomial(coeffs []float64) string {
	var terms []string
	for i := len(coeffs) - 1; i >= 0; i-- {
		if !significant(coeffs[i]) {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%.4f", coeffs[i]))
		case 1:
			terms = append(terms, fmt.Sprintf("%.4fx", coeffs[i]))
		default:
			terms = append(terms, fmt.Sprintf("%.4fx^%d", coeffs[i], i))
		}
	}
	if len(terms) == 0 {
		return "y = 0"
	}
	return "y = " + strings.Join(terms, " + ")
}

// renderTrig renders the trigonometric series from the packed
// [c0, a1, b1, ...] parameter vector.
func renderTrig(params []float64) string {
	var terms []string
	if significant(params[0]) {
		terms = append(terms, fmt.Sprintf("%.4f", params[0]))
	}
	for i := 1; 2*i < len(params); i++ {
		if a := params[2*i-1]; significant(a) {
			terms = append(terms, fmt.Sprintf("%.4fsin(%dπx)", a, i))
		}
		if b := params[2*i]; significant(b) {
			terms = append(terms, fmt.Sprintf("%.4fcos(%dπx)", b, i))
		}
	}
	if len(terms) == 0 {
		return "y = 0"
	}
	return "y = " + strings.Join(terms, " + ")
}

// renderFourier renders the Fourier series in its index parameter t.
func renderFourier(d FourierSeries) string {
	var terms []string
	if significant(d.A0) {
		terms = append(terms, fmt.Sprintf("%.4f", d.A0))
	}
	for n := 1; n <= d.Terms; n++ {
		if c := d.Cos[n-1]; significant(c) {
			terms = append(terms, fmt.Sprintf("%.4fcos(%dt)", c, n))
		}
		if s := d.Sin[n-1]; significant(s) {
			terms = append(terms, fmt.Sprintf("%.4fsin(%dt)", s, n))
		}
	}
	if len(terms) == 0 {
		return "y = 0"
	}
	return "y = " + strings.Join(terms, " + ")
}
