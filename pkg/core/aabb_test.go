package core

import (
	"math"
	"testing"
)

func TestAABB_SlabHit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name string
		ray  Ray
		want bool
	}{
		{"Straight through center", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), true},
		{"Misses above", NewRay(NewVec3(-5, 2, 0), NewVec3(1, 0, 0)), false},
		{"Diagonal through corner region", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"Pointing away", NewRay(NewVec3(-5, 0, 0), NewVec3(-1, 0, 0)), false},
		{"Parallel inside slab", NewRay(NewVec3(-5, 0.5, 0.5), NewVec3(1, 0, 0)), true},
		{"Parallel outside slab", NewRay(NewVec3(-5, 1.5, 0.5), NewVec3(1, 0, 0)), false},
		{"Origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, NewInterval(0.001, math.Inf(1))); got != tt.want {
				t.Errorf("Expected hit=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestAABB_HitRespectsInterval(t *testing.T) {
	box := NewAABB(NewVec3(9, -1, -1), NewVec3(11, 1, 1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))

	if !box.Hit(ray, NewInterval(0.001, 100)) {
		t.Error("Box at distance ~9 should be hit with a generous interval")
	}
	// Upper bound tighter than the box entry point rejects the hit
	if box.Hit(ray, NewInterval(0.001, 5)) {
		t.Error("Box should be rejected when the interval ends before it")
	}
	// Lower bound past the box exit point rejects the hit
	if box.Hit(ray, NewInterval(12, 100)) {
		t.Error("Box should be rejected when the interval starts after it")
	}
}

func TestAABB_EmptyIsUnionIdentity(t *testing.T) {
	empty := EmptyAABB()
	box := NewAABB(NewVec3(-1, 2, -3), NewVec3(4, 5, 6))

	if got := empty.Union(box); !got.Min.Equals(box.Min) || !got.Max.Equals(box.Max) {
		t.Errorf("Empty union box should equal box, got %v", got)
	}
	if got := box.Union(empty); !got.Min.Equals(box.Min) || !got.Max.Equals(box.Max) {
		t.Errorf("Box union empty should equal box, got %v", got)
	}

	// The empty box is never hit
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	if empty.Hit(ray, NewInterval(0.001, math.Inf(1))) {
		t.Error("Empty box should never be hit")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, -1, 0), NewVec3(3, 0.5, 2))

	got := a.Union(b)
	if !got.Min.Equals(NewVec3(0, -1, 0)) {
		t.Errorf("Union min: expected (0,-1,0), got %v", got.Min)
	}
	if !got.Max.Equals(NewVec3(3, 1, 2)) {
		t.Errorf("Union max: expected (3,1,2), got %v", got.Max)
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name string
		box  AABB
		want int
	}{
		{"X longest", NewAABB(NewVec3(0, 0, 0), NewVec3(10, 1, 1)), 0},
		{"Y longest", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 10, 1)), 1},
		{"Z longest", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 10)), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.want {
				t.Errorf("Expected axis %d, got %d", tt.want, got)
			}
		})
	}
}
