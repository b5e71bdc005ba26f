package glm

import "testing"

func TestVec2(t *testing.T) {
	a := Vec2f{3, 4}

	if got := a.Add(Vec2f{1, 1}); got != (Vec2f{4, 5}) {
		t.Fatalf("unexpected sum %v", got)
	}

	if got := a.Sub(Vec2f{1, 6}); got != (Vec2f{2, -2}) {
		t.Fatalf("unexpected difference %v", got)
	}

	if x, y := a.XY(); x != 3 || y != 4 {
		t.Fatalf("unexpected components %v, %v", x, y)
	}
}

func TestVec2Unsigned(t *testing.T) {
	size := Vec2u{640, 480}

	if got := size.Sub(Vec2u{40, 80}); got != (Vec2u{600, 400}) {
		t.Fatalf("unexpected difference %v", got)
	}
}

func TestVec4(t *testing.T) {
	v := Vec4f{1, 2, 3, 4}

	if got := v.Mul(Vec4f{2, 2, 2, 0.5}); got != (Vec4f{2, 4, 6, 2}) {
		t.Fatalf("unexpected product %v", got)
	}

	x, y, z, w := v.XYZW()
	if x != 1 || y != 2 || z != 3 || w != 4 {
		t.Fatalf("unexpected components %v %v %v %v", x, y, z, w)
	}
}
