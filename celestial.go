package projectile

import (
	"fmt"
	"strings"
)

// CelestialBody defines a celestial body by its surface gravity.
type CelestialBody struct {
	Name string
	G    float64 // surface gravitational acceleration in m/s²
}

func (b CelestialBody) String() string {
	return fmt.Sprintf("%s (g=%.3f m/s²)", b.Name, b.G)
}

// Equals returns whether the provided body is the same.
func (b CelestialBody) Equals(o CelestialBody) bool {
	return b.Name == o.Name && b.G == o.G
}

// CelestialBodyFromString returns the body associated with the given name,
// case insensitively. Bodies added through the configuration file are
// searched after the builtin table.
func CelestialBodyFromString(name string) (CelestialBody, error) {
	switch strings.ToLower(name) {
	case "mercury":
		return Mercury, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "ganymede":
		return Ganymede, nil
	case "ceres":
		return Ceres, nil
	}
	for _, body := range loadExtraBodies() {
		if strings.EqualFold(body.Name, name) {
			return body, nil
		}
	}
	return CelestialBody{}, fmt.Errorf("unknown celestial body %q", name)
}

// Bodies returns the comparison table in display order: the builtin bodies
// followed by any configured extras.
func Bodies() []CelestialBody {
	builtin := []CelestialBody{Mercury, Earth, Moon, Mars, Ganymede, Ceres}
	return append(builtin, loadExtraBodies()...)
}

// Surface gravities from the Wikipedia physical-characteristics table of
// each body.

// Mercury is the innermost one.
var Mercury = CelestialBody{"Mercury", 3.70}

// Earth is home.
var Earth = CelestialBody{"Earth", 9.81}

// Moon is the obvious place to throw things on.
var Moon = CelestialBody{"Moon", 1.62}

// Mars is the vacation place.
var Mars = CelestialBody{"Mars", 3.71}

// Ganymede is the largest moon out there.
var Ganymede = CelestialBody{"Ganymede", 1.425}

// Ceres barely holds on to anything.
var Ceres = CelestialBody{"Ceres", 0.27}
