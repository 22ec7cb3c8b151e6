package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestAngleQuadrants(t *testing.T) {
	origin := Pt(10, 10)
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"right", Pt(20, 10), 0},
		{"left", Pt(0, 10), math.Pi},
		{"down", Pt(10, 20), math.Pi / 2},
		{"up", Pt(10, 0), -math.Pi / 2},
		{"down-right", Pt(20, 20), math.Pi / 4},
		{"up-left", Pt(0, 0), -3 * math.Pi / 4},
		{"coincident", Pt(10, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(origin, tt.to); !near(got, tt.want) {
				t.Errorf("Angle(%v, %v) = %f, want %f", origin, tt.to, got, tt.want)
			}
		})
	}
}

func TestBoundaryOffset(t *testing.T) {
	p := BoundaryOffset(Pt(5, 5), 2, math.Pi/2)
	if !near(p.X, 5) || !near(p.Y, 7) {
		t.Errorf("expected (5, 7), got %v", p)
	}
}

func TestTrimmedEndpointsHorizontal(t *testing.T) {
	src := Circle{C: Pt(100, 100), R: 10}
	dst := Circle{C: Pt(200, 100), R: 10}

	start := TrimmedSource(src, dst)
	end := TrimmedTarget(src, dst)

	if !near(start.X, 110) || !near(start.Y, 100) {
		t.Errorf("expected source trim (110, 100), got %v", start)
	}
	if !near(end.X, 190) || !near(end.Y, 100) {
		t.Errorf("expected target trim (190, 100), got %v", end)
	}
	if a := Angle(src.C, dst.C); a != 0 {
		t.Errorf("expected angle 0, got %f", a)
	}
}

func TestTrimmedTargetOnRim(t *testing.T) {
	pairs := [][2]Circle{
		{{Pt(0, 0), 4}, {Pt(30, 40), 7}},
		{{Pt(300, 20), 12}, {Pt(-50, 20), 3}},
		{{Pt(7, 90), 5}, {Pt(7, -10), 9}},
		{{Pt(-3, -3), 1}, {Pt(-40, 25), 15}},
	}

	for _, p := range pairs {
		src, dst := p[0], p[1]
		tip := TrimmedTarget(src, dst)

		if d := tip.Dist(dst.C); !near(d, dst.R) {
			t.Errorf("tip %v is %f from target center, want %f", tip, d, dst.R)
		}

		// tip must lie on the segment between the centres
		along := src.C.Dist(tip) + tip.Dist(dst.C)
		if !near(along, src.C.Dist(dst.C)) {
			t.Errorf("tip %v is off the line %v -> %v", tip, src.C, dst.C)
		}
	}
}

func TestArrowheadShape(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 3, 2.5} {
		tip := Pt(50, 60)
		tri := Arrowhead(tip, angle, 6)

		if tri[0] != tip {
			t.Fatalf("first vertex should be the tip, got %v", tri[0])
		}
		if !near(tri[1].Dist(tip), 6) || !near(tri[2].Dist(tip), 6) {
			t.Errorf("angle %f: legs should have length 6", angle)
		}

		// the base midpoint sits behind the tip, opposite to the link direction
		mid := Pt((tri[1].X+tri[2].X)/2, (tri[1].Y+tri[2].Y)/2)
		back := Angle(tip, mid)
		diff := math.Remainder(back-(angle+math.Pi), 2*math.Pi)
		if !near(diff, 0) {
			t.Errorf("angle %f: base points along %f, want %f", angle, back, angle+math.Pi)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want Point
	}{
		{Pt(-5, 10), Pt(0, 10)},
		{Pt(50, 700), Pt(50, 600)},
		{Pt(1000, -1), Pt(960, 0)},
		{Pt(30, 40), Pt(30, 40)},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in, 960, 600); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
