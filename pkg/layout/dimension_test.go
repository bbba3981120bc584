package layout

import (
	"testing"

	"github.com/grzegorzj/easel/pkg/errors"
)

func TestDimensionResolve(t *testing.T) {
	if got := Fixed(120).Resolve(999, 0); got != 120 {
		t.Errorf("fixed = %v, want 120", got)
	}
	if got := Percent(25).Resolve(200, 0); got != 50 {
		t.Errorf("percent = %v, want 50", got)
	}
	// A percent of an auto parent sees a zero span.
	if got := Percent(50).Resolve(0, 7); got != 0 {
		t.Errorf("percent of zero span = %v, want 0", got)
	}
	if got := Auto().Resolve(200, 33); got != 33 {
		t.Errorf("auto = %v, want fallback 33", got)
	}
	if !Auto().IsAuto() || Fixed(5).IsAuto() || Percent(5).IsAuto() {
		t.Error("IsAuto should hold for Auto dimensions only")
	}
}

func TestDimensionValidate(t *testing.T) {
	for _, d := range []Dimension{Auto(), Fixed(0), Fixed(120), Percent(0), Percent(50)} {
		if err := d.Validate(); err != nil {
			t.Errorf("Validate(%v) = %v, want nil", d, err)
		}
	}
	for _, d := range []Dimension{Fixed(-5), Percent(-10)} {
		err := d.Validate()
		if !errors.Is(err, errors.ErrCodeInvalidDimension) {
			t.Errorf("Validate(%v) = %v, want INVALID_DIMENSION", d, err)
		}
	}
}

func TestAddRejectsNegativeDimensions(t *testing.T) {
	a := NewArtboard(400, 400)
	bad := NewLeaf(LeafConfig{ElementConfig: ElementConfig{
		ID:     "bad",
		Width:  Fixed(-5),
		Height: Fixed(40),
	}})
	err := a.Add(bad)
	if !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Fatalf("Add = %v, want INVALID_DIMENSION", err)
	}
	if _, ok := a.Element("bad"); ok {
		t.Error("rejected element should not be attached")
	}
}

func TestParseAlignment(t *testing.T) {
	cases := map[string]Alignment{
		"start":  AlignStart,
		"center": AlignCenter,
		"end":    AlignEnd,
	}
	for in, want := range cases {
		got, ok := ParseAlignment(in)
		if !ok || got != want {
			t.Errorf("ParseAlignment(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseAlignment("middle"); ok {
		t.Error("unknown alignment should not parse")
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("horizontal"); !ok || d != Horizontal {
		t.Errorf("horizontal: %v, %v", d, ok)
	}
	if d, ok := ParseDirection("vertical"); !ok || d != Vertical {
		t.Errorf("vertical: %v, %v", d, ok)
	}
	if _, ok := ParseDirection("diagonal"); ok {
		t.Error("unknown direction should not parse")
	}
}

func TestAlignmentRoundTrip(t *testing.T) {
	for _, a := range []Alignment{AlignStart, AlignCenter, AlignEnd} {
		got, ok := ParseAlignment(a.String())
		if !ok || got != a {
			t.Errorf("round trip %v -> %q -> %v, %v", a, a.String(), got, ok)
		}
	}
	if AlignStart.Factor() != 0 || AlignCenter.Factor() != 0.5 || AlignEnd.Factor() != 1 {
		t.Error("alignment factors should be 0, 0.5, 1")
	}
}
