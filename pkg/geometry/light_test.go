package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

func TestSphereLight_PDFValue(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 0, -5), 1.0, nil)
	origin := core.NewVec3(0, 0, 0)

	// Solid angle of a radius-1 sphere at distance 5
	cosThetaMax := math.Sqrt(1.0 - 1.0/25.0)
	expected := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	got := light.PDFValue(origin, core.NewVec3(0, 0, -1))
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected PDF %f toward center, got %f", expected, got)
	}

	// Direction that misses the sphere contributes nothing
	if got := light.PDFValue(origin, core.NewVec3(0, 1, 0)); got != 0 {
		t.Errorf("Expected PDF 0 for missing direction, got %f", got)
	}

	// Direction pointing away entirely
	if got := light.PDFValue(origin, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("Expected PDF 0 for opposite direction, got %f", got)
	}
}

func TestSphereLight_InsideUsesFullSphere(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 0, 0), 2.0, nil)
	origin := core.NewVec3(0.5, 0, 0)

	expected := 1.0 / (4.0 * math.Pi)
	if got := light.PDFValue(origin, core.NewVec3(1, 0, 0)); math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected uniform PDF %f from inside, got %f", expected, got)
	}
}

func TestSphereLight_RandomDirectionHitsSphere(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 3, -4), 0.5, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		direction := light.RandomDirection(origin, sampler)
		ray := core.NewRay(origin, direction)
		if _, hit := light.Hit(ray, core.NewInterval(0.001, math.Inf(1))); !hit {
			t.Fatalf("Sample %d: sampled direction %v misses the sphere", i, direction)
		}
	}
}

func TestQuadLight_PDFValue(t *testing.T) {
	// Unit quad at z=-2 facing the origin
	light := NewQuadLight(core.NewVec3(0, 0, -2), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)
	origin := core.NewVec3(0.5, 0.5, 0)

	// Perpendicular direction: distance 2, cos = 1, area 1, so PDF = 4
	got := light.PDFValue(origin, core.NewVec3(0, 0, -1))
	if math.Abs(got-4.0) > 1e-9 {
		t.Errorf("Expected PDF 4 for perpendicular hit, got %f", got)
	}

	// Direction that misses the quad
	if got := light.PDFValue(origin, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("Expected PDF 0 for missing direction, got %f", got)
	}

	// Grazing direction in the quad's plane
	if got := light.PDFValue(core.NewVec3(-1, 0.5, -2), core.NewVec3(1, 0, 0)); got != 0 {
		t.Errorf("Expected PDF 0 for in-plane direction, got %f", got)
	}
}

func TestQuadLight_RandomDirectionHitsQuad(t *testing.T) {
	light := NewQuadLight(core.NewVec3(-1, 4, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		direction := light.RandomDirection(origin, sampler)
		ray := core.NewRay(origin, direction)
		if _, hit := light.Hit(ray, core.NewInterval(0.001, math.Inf(1))); !hit {
			t.Fatalf("Sample %d: sampled direction %v misses the quad", i, direction)
		}
	}
}
