package projectile

import (
	"strings"
	"testing"
)

func TestBodiesTable(t *testing.T) {
	bodies := Bodies()
	if len(bodies) < 6 {
		t.Fatalf("expected at least the six builtin bodies, got %d", len(bodies))
	}
	seen := make(map[string]bool)
	for _, body := range bodies {
		if body.Name == "" {
			t.Fatal("body with empty name")
		}
		if body.G <= 0 {
			t.Fatalf("%s has non-positive gravity %v", body.Name, body.G)
		}
		if seen[body.Name] {
			t.Fatalf("duplicate body %s", body.Name)
		}
		seen[body.Name] = true
	}
	if !bodies[0].Equals(Mercury) || !bodies[1].Equals(Earth) {
		t.Fatalf("unexpected table order: %v", bodies)
	}
}

func TestCelestialBodyFromString(t *testing.T) {
	for _, exp := range []struct {
		name string
		body CelestialBody
	}{
		{"Earth", Earth},
		{"earth", Earth},
		{"MOON", Moon},
		{"ganymede", Ganymede},
	} {
		body, err := CelestialBodyFromString(exp.name)
		if err != nil {
			t.Fatalf("lookup of %q failed: %s", exp.name, err)
		}
		if !body.Equals(exp.body) {
			t.Fatalf("lookup of %q\ngot %s\nexp %s", exp.name, body, exp.body)
		}
	}
	if _, err := CelestialBodyFromString("Krypton"); err == nil {
		t.Fatal("expected an error for an unknown body")
	}
}

func TestCelestialBodyString(t *testing.T) {
	if s := Moon.String(); !strings.Contains(s, "Moon") || !strings.Contains(s, "1.620") {
		t.Fatalf("unexpected String(): %q", s)
	}
}
