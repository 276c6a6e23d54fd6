package projectile

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	rad2deg = 180 / math.Pi
	deg2rad = math.Pi / 180
	// eps absorbs floating-point error at boundaries: discriminants and
	// tangents within eps of zero count as zero.
	eps = 1e-9
)

// ErrInvalidInput flags a parameter outside its physical domain. The absence
// of a physical solution is NOT an invalid input, see LaunchAngles.
var ErrInvalidInput = errors.New("invalid input")

// HorizontalVelocity returns the initial horizontal speed, in m/s, needed for
// a projectile released horizontally at height h to land at horizontal
// distance d under gravity g. The fall time is t = sqrt(2h/g), so v = d/t.
func HorizontalVelocity(d, h, g float64) (float64, error) {
	if h <= 0 {
		return 0, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidInput, h)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: distance must not be negative, got %v", ErrInvalidInput, d)
	}
	if g <= 0 {
		return 0, fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidInput, g)
	}
	return d / math.Sqrt(2*h/g), nil
}

// LaunchAngles returns the launch angles, in degrees sorted ascending, at
// which a projectile launched at speed v0 from height h under gravity g lands
// (at height zero) after covering horizontal distance d. At most two angles
// exist; an empty result means the range is unreachable at that speed, which
// is a normal outcome, not an error.
//
// Setting y(d) = 0 in the trajectory equation gives a quadratic in T = tan θ:
// aT² + bT + c = 0 with a = g·d²/(2v0²), b = -d, c = a - h. Degenerate
// zero-range cases are fixed by convention: d=0, h=0 yields {0, 90}; d=0 with
// h>0 yields {90}, the only angle without horizontal motion.
func LaunchAngles(v0, d, h, g float64) ([]float64, error) {
	if v0 <= 0 {
		return nil, fmt.Errorf("%w: initial speed must be positive, got %v", ErrInvalidInput, v0)
	}
	if d < 0 {
		return nil, fmt.Errorf("%w: distance must not be negative, got %v", ErrInvalidInput, d)
	}
	if h < 0 {
		return nil, fmt.Errorf("%w: height must not be negative, got %v", ErrInvalidInput, h)
	}
	if g <= 0 {
		return nil, fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidInput, g)
	}
	if d == 0 {
		if h == 0 {
			return []float64{0, 90}, nil
		}
		return []float64{90}, nil
	}
	a := g * d * d / (2 * v0 * v0)
	b := -d
	c := a - h
	disc := b*b - 4*a*c
	if disc < 0 {
		if !scalar.EqualWithinAbs(disc, 0, eps) {
			return nil, nil
		}
		disc = 0
	}
	sq := math.Sqrt(disc)
	// a > 0 here, so the roots come out ascending.
	angles := make([]float64, 0, 2)
	for _, tan := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if tan < 0 {
			if !scalar.EqualWithinAbs(tan, 0, eps) {
				continue
			}
			tan = 0
		}
		angles = append(angles, math.Atan(tan)*rad2deg)
	}
	if len(angles) == 2 && scalar.EqualWithinAbs(angles[0], angles[1], eps) {
		angles = angles[:1]
	}
	return angles, nil
}

// Range returns the horizontal distance, in meters, covered by a projectile
// launched at speed v0 and angle θ (degrees from horizontal) from height h
// under gravity g, landing at height zero.
func Range(v0, angle, h, g float64) (float64, error) {
	if v0 <= 0 {
		return 0, fmt.Errorf("%w: initial speed must be positive, got %v", ErrInvalidInput, v0)
	}
	if h < 0 {
		return 0, fmt.Errorf("%w: height must not be negative, got %v", ErrInvalidInput, h)
	}
	if g <= 0 {
		return 0, fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidInput, g)
	}
	if angle < 0 || angle > 90 {
		return 0, fmt.Errorf("%w: angle must be within [0°, 90°], got %v", ErrInvalidInput, angle)
	}
	vx := v0 * math.Cos(angle*deg2rad)
	vy := v0 * math.Sin(angle*deg2rad)
	return vx / g * (vy + math.Sqrt(vy*vy+2*g*h)), nil
}
