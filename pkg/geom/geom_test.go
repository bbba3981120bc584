package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if r.Right() != 110 {
		t.Errorf("Right = %g, want 110", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom = %g, want 70", r.Bottom())
	}
	if r.Origin() != (Point{X: 10, Y: 20}) {
		t.Errorf("Origin = %v, want (10, 20)", r.Origin())
	}
	if r.Size() != (Size{Width: 100, Height: 50}) {
		t.Errorf("Size = %v, want 100x50", r.Size())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	in := Insets{Top: 10, Right: 20, Bottom: 30, Left: 40}

	got := r.Inset(in)
	want := NewRect(40, 10, 40, 60)
	if got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}

	// Zero insets are the identity.
	if r.Inset(Insets{}) != r {
		t.Error("Inset with zero insets should return the same rect")
	}
}

func TestRectInsetCollapse(t *testing.T) {
	// Insets larger than the rect collapse to zero size, never negative.
	r := NewRect(0, 0, 10, 10)
	got := r.Inset(Insets{Top: 20, Right: 20, Bottom: 20, Left: 20})

	if got.Width != 0 || got.Height != 0 {
		t.Errorf("over-inset rect = %v, want zero size", got)
	}
	if got.IsEmpty() != true {
		t.Error("collapsed rect should be empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 30, 10, 10)

	got := a.Union(b)
	want := NewRect(0, 0, 30, 40)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}

	// Union is commutative.
	if b.Union(a) != got {
		t.Error("Union should be commutative")
	}

	// Empty rects do not contribute.
	if a.Union(Rect{}) != a {
		t.Error("Union with empty rect should return the non-empty rect")
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	got := r.Translate(Point{X: 10, Y: 20})
	want := NewRect(11, 22, 3, 4)
	if got != want {
		t.Errorf("Translate = %v, want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	cases := []struct {
		p    Point
		want bool
	}{
		{Point{5, 5}, true},
		{Point{0, 0}, true},   // edges inclusive
		{Point{10, 10}, true}, // edges inclusive
		{Point{-1, 5}, false},
		{Point{5, 11}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestInsetsArithmetic(t *testing.T) {
	a := Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	b := Insets{Top: 10, Right: 20, Bottom: 30, Left: 40}

	sum := a.Add(b)
	want := Insets{Top: 11, Right: 22, Bottom: 33, Left: 44}
	if sum != want {
		t.Errorf("Add = %v, want %v", sum, want)
	}
	if a.Horizontal() != 6 {
		t.Errorf("Horizontal = %g, want 6", a.Horizontal())
	}
	if a.Vertical() != 4 {
		t.Errorf("Vertical = %g, want 4", a.Vertical())
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 1, Y: 2}

	if p.Add(q) != (Point{X: 4, Y: 6}) {
		t.Errorf("Add = %v", p.Add(q))
	}
	if p.Sub(q) != (Point{X: 2, Y: 2}) {
		t.Errorf("Sub = %v", p.Sub(q))
	}
}
