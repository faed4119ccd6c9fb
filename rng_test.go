package sandcore

import "testing"

func TestChanceClampsToBounds(t *testing.T) {
	rng := newSeededRNG(1, 2)
	if rng.Chance(-1) {
		t.Error("Chance(-1) should always be false")
	}
	if !rng.Chance(2) {
		t.Error("Chance(2) should always be true")
	}
}

func TestDirectionIsPlusOrMinusOne(t *testing.T) {
	rng := newSeededRNG(5, 6)
	for i := 0; i < 50; i++ {
		d := rng.Direction()
		if d != -1 && d != 1 {
			t.Fatalf("Direction() = %d, want -1 or 1", d)
		}
	}
}

func TestIntInclusiveRange(t *testing.T) {
	rng := newSeededRNG(3, 4)
	for i := 0; i < 200; i++ {
		v := rng.Int(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("Int(2,5) = %d, out of range", v)
		}
	}
	if got := rng.Int(5, 5); got != 5 {
		t.Errorf("Int(5,5) = %d, want 5", got)
	}
}

func TestFloatRange(t *testing.T) {
	rng := newSeededRNG(9, 10)
	for i := 0; i < 200; i++ {
		v := rng.Float(1.0, 2.0)
		if v < 1.0 || v >= 2.0 {
			t.Fatalf("Float(1,2) = %f, out of range", v)
		}
	}
}

func TestPermutationIsBijection(t *testing.T) {
	rng := newSeededRNG(11, 12)
	perm := permutation(nil, 10, rng)
	seen := make([]bool, 10)
	for _, v := range perm {
		if v < 0 || v >= 10 || seen[v] {
			t.Fatalf("permutation not a bijection: value %d repeated or out of range", v)
		}
		seen[v] = true
	}
}

func TestPermutationReusesBuffer(t *testing.T) {
	rng := newSeededRNG(13, 14)
	buf := make([]int, 0, 20)
	perm := permutation(buf, 10, rng)
	if len(perm) != 10 || &perm[0] != &buf[:1][0] {
		t.Fatal("permutation should return n values in the caller's buffer when it already has capacity")
	}
}
