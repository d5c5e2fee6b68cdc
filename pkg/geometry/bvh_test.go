package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// bruteForceHit scans all objects linearly for the closest hit
func bruteForceHit(objects []core.Hittable, ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	for _, object := range objects {
		if hit, isHit := object.Hit(ray, t); isHit {
			closest = hit
			t.Max = hit.T
		}
	}
	return closest, closest != nil
}

func randomSpheres(random *rand.Rand, count int) []core.Hittable {
	objects := make([]core.Hittable, count)
	for i := range objects {
		center := core.NewVec3(
			20*random.Float64()-10,
			20*random.Float64()-10,
			20*random.Float64()-10,
		)
		objects[i] = NewSphere(center, 0.2+random.Float64(), nil)
	}
	return objects
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for _, count := range []int{1, 2, 3, 4, 5, 17, 100} {
		objects := randomSpheres(random, count)
		bvh := NewBVH(objects)

		for trial := 0; trial < 200; trial++ {
			origin := core.NewVec3(
				30*random.Float64()-15,
				30*random.Float64()-15,
				30*random.Float64()-15,
			)
			direction := core.NewVec3(
				2*random.Float64()-1,
				2*random.Float64()-1,
				2*random.Float64()-1,
			)
			if direction.NearZero() {
				continue
			}
			ray := core.NewRay(origin, direction)
			interval := core.NewInterval(0.001, math.Inf(1))

			bvhHit, bvhFound := bvh.Hit(ray, interval)
			bruteHit, bruteFound := bruteForceHit(objects, ray, interval)

			if bvhFound != bruteFound {
				t.Fatalf("count=%d trial=%d: BVH found=%v, brute force found=%v",
					count, trial, bvhFound, bruteFound)
			}
			if bvhFound && math.Abs(bvhHit.T-bruteHit.T) > 1e-9 {
				t.Fatalf("count=%d trial=%d: BVH t=%f, brute force t=%f",
					count, trial, bvhHit.T, bruteHit.T)
			}
		}
	}
}

func TestBVH_NormalAlwaysOpposesRay(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	objects := randomSpheres(random, 50)
	bvh := NewBVH(objects)

	for trial := 0; trial < 500; trial++ {
		origin := core.NewVec3(30*random.Float64()-15, 30*random.Float64()-15, 30*random.Float64()-15)
		direction := core.NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		if direction.NearZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		if hit, isHit := bvh.Hit(ray, core.NewInterval(0.001, math.Inf(1))); isHit {
			if hit.Normal.Dot(ray.Direction) > 0 {
				t.Fatalf("trial %d: normal %v does not oppose ray %v", trial, hit.Normal, ray.Direction)
			}
		}
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	bvh := NewBVH([]core.Hittable{sphere})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected hit on single-object BVH")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t = 4, got %f", hit.T)
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := bvh.Hit(ray, core.NewInterval(0.001, math.Inf(1))); isHit {
		t.Error("Empty BVH should never report a hit")
	}
}

func TestBVH_BoundingBoxEnclosesChildren(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	objects := randomSpheres(random, 30)
	bvh := NewBVH(objects)

	box := bvh.BoundingBox()
	for i, object := range objects {
		ob := object.BoundingBox()
		union := box.Union(ob)
		if !union.Min.Equals(box.Min) || !union.Max.Equals(box.Max) {
			t.Errorf("Object %d box %v escapes BVH box %v", i, ob, box)
		}
	}
}

func TestBVH_InputSliceNotReordered(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	objects := randomSpheres(random, 20)
	before := make([]core.Hittable, len(objects))
	copy(before, objects)

	NewBVH(objects)

	for i := range objects {
		if objects[i] != before[i] {
			t.Fatal("NewBVH should not reorder the caller's slice")
		}
	}
}

func TestNothing_NeverHits(t *testing.T) {
	nothing := NewNothing()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	if _, isHit := nothing.Hit(ray, core.UniverseInterval()); isHit {
		t.Error("Nothing should never hit")
	}
	if nothing.BoundingBox().IsValid() {
		t.Error("Nothing's box should be empty")
	}
}
