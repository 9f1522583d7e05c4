package foil_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil"
	"github.com/foilkit/foil/sampling"
)

// naca4 generates TE-first counter-clockwise NACA four-digit coordinates.
// closed selects the zero-thickness trailing edge variant.
func naca4(m, p, t float64, n int, closed bool) []r2.Vec {
	a4 := -0.1015
	if closed {
		a4 = -0.1036
	}
	yt := func(x float64) float64 {
		return 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x + a4*x*x*x*x)
	}
	camber := func(x float64) (yc, slope float64) {
		if m == 0 {
			return 0, 0
		}
		if x < p {
			return m / (p * p) * (2*p*x - x*x), 2 * m / (p * p) * (p - x)
		}
		return m / ((1 - p) * (1 - p)) * (1 - 2*p + 2*p*x - x*x), 2 * m / ((1 - p) * (1 - p)) * (p - x)
	}
	station := func(i int) float64 {
		return 0.5 * (1 + math.Cos(math.Pi*float64(i)/float64(n-1)))
	}

	coords := make([]r2.Vec, 0, 2*n-1)
	for i := 0; i < n; i++ {
		x := station(i)
		yc, slope := camber(x)
		theta := math.Atan(slope)
		coords = append(coords, r2.Vec{X: x - yt(x)*math.Sin(theta), Y: yc + yt(x)*math.Cos(theta)})
	}
	for i := n - 2; i >= 0; i-- {
		x := station(i)
		yc, slope := camber(x)
		theta := math.Atan(slope)
		coords = append(coords, r2.Vec{X: x + yt(x)*math.Sin(theta), Y: yc - yt(x)*math.Cos(theta)})
	}
	if closed {
		// the residual of the quartic thickness polynomial at x=1 is a few
		// ulps, close the loop exactly
		coords[len(coords)-1] = coords[0]
	}
	return coords
}

func naca0012(t *testing.T, closed bool) *foil.Airfoil {
	t.Helper()
	a, err := foil.New(naca4(0, 0, 0.12, 61, closed))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func naca2412(t *testing.T) *foil.Airfoil {
	t.Helper()
	a, err := foil.New(naca4(0.02, 0.4, 0.12, 61, true))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNewBasicFeatures(t *testing.T) {
	a := naca0012(t, true)
	if !a.IsClosed() {
		t.Error("sharp NACA 0012 should be closed")
	}
	if math.Abs(a.Chord()-1) > 1e-3 {
		t.Errorf("chord %v, want 1", a.Chord())
	}
	if math.Abs(a.Twist()) > 0.1 {
		t.Errorf("twist %v, want 0", a.Twist())
	}
	if le := a.LE(); math.Abs(le.X) > 1e-3 || math.Abs(le.Y) > 1e-3 {
		t.Errorf("LE %v, want origin", le)
	}
	if te := a.TE(); math.Abs(te.X-1) > 1e-6 || math.Abs(te.Y) > 1e-6 {
		t.Errorf("TE %v, want {1 0}", te)
	}
	if s := a.SLE(); s < 0.3 || s > 0.7 {
		t.Errorf("sLE %v outside [0.3, 0.7]", s)
	}
}

func TestBluntFeatures(t *testing.T) {
	a := naca0012(t, false)
	if a.IsClosed() {
		t.Error("blunt NACA 0012 should be open")
	}
	// the open four-digit TE gap is 2*0.0021*5*0.12
	want := 2 * 5 * 0.12 * 0.0021
	if got := a.TEThickness(); math.Abs(got-want) > 2e-4 {
		t.Errorf("TE thickness %v, want %v", got, want)
	}
}

func TestTEAngleBound(t *testing.T) {
	for name, a := range map[string]*foil.Airfoil{
		"closed symmetric": naca0012(t, true),
		"blunt symmetric":  naca0012(t, false),
		"cambered":         naca2412(t),
	} {
		angle := a.TEAngle()
		if angle < 0 || angle > 180 {
			t.Errorf("%s: TE angle %v outside [0, 180]", name, angle)
		}
	}
}

func TestLERadius(t *testing.T) {
	a := naca0012(t, true)
	// four-digit LE radius is 1.1019*t^2, approximate for a fitted spline
	want := 1.1019 * 0.12 * 0.12
	if got := a.LERadius(); math.Abs(got-want) > 0.5*want {
		t.Errorf("LE radius %v, want about %v", got, want)
	}
}

func TestOrientationIdempotence(t *testing.T) {
	coords := naca4(0.02, 0.4, 0.12, 41, true)
	reversed := make([]r2.Vec, len(coords))
	for i, c := range coords {
		reversed[len(coords)-1-i] = c
	}
	a, err := foil.New(coords)
	if err != nil {
		t.Fatal(err)
	}
	b, err := foil.New(reversed)
	if err != nil {
		t.Fatal(err)
	}
	if d := r2.Norm(r2.Sub(a.LE(), b.LE())); d > 1e-6 {
		t.Errorf("LE differs by %v", d)
	}
	if d := r2.Norm(r2.Sub(a.TE(), b.TE())); d > 1e-6 {
		t.Errorf("TE differs by %v", d)
	}
	if d := math.Abs(a.Chord() - b.Chord()); d > 1e-6 {
		t.Errorf("chord differs by %v", d)
	}
	if d := math.Abs(a.Twist() - b.Twist()); d > 1e-6 {
		t.Errorf("twist differs by %v", d)
	}
}

func TestRecomputeDeterminism(t *testing.T) {
	coords := naca4(0.02, 0.4, 0.12, 41, true)
	a, err := foil.New(coords)
	if err != nil {
		t.Fatal(err)
	}
	b, err := foil.New(coords)
	if err != nil {
		t.Fatal(err)
	}
	if a.Chord() != b.Chord() || a.Twist() != b.Twist() || a.SLE() != b.SLE() {
		t.Error("recompute is not deterministic")
	}
	if a.LE() != b.LE() || a.TE() != b.TE() {
		t.Error("edge points are not deterministic")
	}
}

func TestRigidMotionInvariance(t *testing.T) {
	a := naca2412(t)
	chord := a.Chord()
	twist := a.Twist()

	if err := a.Translate(r2.Vec{X: 0.7, Y: -1.3}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.Chord()-chord) > 1e-8 {
		t.Errorf("translation changed chord by %v", a.Chord()-chord)
	}
	if math.Abs(a.Twist()-twist) > 1e-6 {
		t.Errorf("translation changed twist by %v", a.Twist()-twist)
	}

	const theta = 5.0
	if err := a.Rotate(theta, r2.Vec{}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.Chord()-chord) > 1e-8 {
		t.Errorf("rotation changed chord by %v", a.Chord()-chord)
	}
	got := math.Mod(a.Twist()-twist+360, 360)
	if math.Abs(got-theta) > 1e-6 {
		t.Errorf("twist shifted by %v, want %v", got, theta)
	}
}

func TestNormalize(t *testing.T) {
	coords := naca4(0.02, 0.4, 0.12, 41, true)
	scaled := make([]r2.Vec, len(coords))
	for i, c := range coords {
		scaled[i] = r2.Add(r2.Vec{X: 0.3, Y: 0.8}, r2.Scale(2.5, c))
	}
	a, err := foil.New(scaled, foil.Normalized())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.Chord()-1) > 1e-6 {
		t.Errorf("chord %v after normalization", a.Chord())
	}
	if math.Abs(a.Twist()) > 1e-6 {
		t.Errorf("twist %v after normalization", a.Twist())
	}
	if le := a.LE(); r2.Norm(le) > 1e-6 {
		t.Errorf("LE %v after normalization", le)
	}
}

func TestSymmetricDetection(t *testing.T) {
	a := naca0012(t, true)
	sym, err := a.IsSymmetric(1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if !sym {
		t.Error("NACA 0012 not detected as symmetric")
	}
	if _, c, err := a.MaxCamber(); err != nil || math.Abs(c) > 1e-6 {
		t.Errorf("max camber %v (err %v), want 0", c, err)
	}
	if _, c, err := a.MinCamber(); err != nil || math.Abs(c) > 1e-6 {
		t.Errorf("min camber %v (err %v), want 0", c, err)
	}
}

func TestMaxThickness(t *testing.T) {
	a := naca0012(t, true)
	for _, typ := range []foil.ThicknessType{foil.British, foil.American} {
		x, thick, err := a.MaxThickness(typ)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if math.Abs(thick-0.12) > 0.005 {
			t.Errorf("%s: max thickness %v, want 0.12", typ, thick)
		}
		if math.Abs(x-0.30) > 0.03 {
			t.Errorf("%s: max thickness at x=%v, want 0.30", typ, x)
		}
	}
}

func TestMaxCamber(t *testing.T) {
	a := naca2412(t)
	x, c, err := a.MaxCamber()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c-0.02) > 0.003 {
		t.Errorf("max camber %v, want 0.02", c)
	}
	if math.Abs(x-0.40) > 0.05 {
		t.Errorf("max camber at x/c=%v, want 0.40", x)
	}
	if a.IsReflex() {
		t.Error("NACA 2412 misdetected as reflex")
	}
}

func TestReflexDetection(t *testing.T) {
	// thickness form on a camber line that turns upward at the TE
	n := 61
	yt := func(x float64) float64 {
		return 0.5 * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1036*x*x*x*x)
	}
	yc := func(x float64) float64 { return 0.25 * x * (1 - x) * (0.8 - x) }
	coords := make([]r2.Vec, 0, 2*n-1)
	for i := 0; i < n; i++ {
		x := 0.5 * (1 + math.Cos(math.Pi*float64(i)/float64(n-1)))
		coords = append(coords, r2.Vec{X: x, Y: yc(x) + yt(x)})
	}
	for i := n - 2; i >= 0; i-- {
		x := 0.5 * (1 + math.Cos(math.Pi*float64(i)/float64(n-1)))
		coords = append(coords, r2.Vec{X: x, Y: yc(x) - yt(x)})
	}
	a, err := foil.New(coords)
	if err != nil {
		t.Fatal(err)
	}
	if !a.IsReflex() {
		t.Error("upward-turning camber line not detected as reflex")
	}
}

func TestThicknessTypeErrors(t *testing.T) {
	a := naca0012(t, true)
	if _, _, err := a.MaxThickness(foil.ThicknessType("metric")); !errors.Is(err, foil.ErrThicknessType) {
		t.Errorf("got %v, want ErrThicknessType", err)
	}
	if _, err := a.Thickness(foil.ThicknessType("bogus")); !errors.Is(err, foil.ErrThicknessType) {
		t.Errorf("got %v, want ErrThicknessType", err)
	}
	if _, err := a.ThicknessPoints(40, foil.ThicknessType("")); !errors.Is(err, foil.ErrThicknessType) {
		t.Errorf("got %v, want ErrThicknessType", err)
	}
}

func TestCamberAndThicknessEndpoints(t *testing.T) {
	a := naca2412(t)
	const n = 25
	camber, err := a.CamberPoints(n)
	if err != nil {
		t.Fatal(err)
	}
	if len(camber) != n {
		t.Fatalf("got %d camber points, want %d", len(camber), n)
	}
	if camber[0] != a.LE() || camber[n-1] != a.TE() {
		t.Error("camber points do not span LE to TE")
	}
	thick, err := a.ThicknessPoints(n, foil.British)
	if err != nil {
		t.Fatal(err)
	}
	if len(thick) != n {
		t.Fatalf("got %d thickness points, want %d", len(thick), n)
	}
	if thick[0].X != a.LE().X || thick[0].Y != 0 {
		t.Errorf("first thickness row %v, want (LE.x, 0)", thick[0])
	}
	if thick[n-1].X != a.TE().X {
		t.Errorf("last thickness row %v, want x=TE.x", thick[n-1])
	}
}

func TestFindPoint(t *testing.T) {
	a := naca0012(t, true)
	pt, s, err := a.FindPoint(0.5, 0, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pt.X-0.5) > 1e-8 {
		t.Errorf("intersection x=%v, want 0.5", pt.X)
	}
	if s <= 0 || s >= a.SLE() {
		t.Errorf("s=%v not on the top surface", s)
	}
	if pt.Y < 0.04 {
		t.Errorf("intersection y=%v, want the upper surface", pt.Y)
	}
}

func TestSampleCache(t *testing.T) {
	a := naca0012(t, false)
	if a.SampledPoints() != nil {
		t.Fatal("fresh airfoil has sampled points")
	}
	pts := a.Sample(100, sampling.Cosine, 4, false)
	if a.SampledPoints() == nil {
		t.Fatal("sample did not populate the cache")
	}
	// blunt airfoil output closes the loop
	if pts[0] != pts[len(pts)-1] {
		t.Error("blunt sampling did not close the loop")
	}
	if err := a.Translate(r2.Vec{X: 1}); err != nil {
		t.Fatal(err)
	}
	if a.SampledPoints() != nil {
		t.Error("geometry change did not invalidate the sample cache")
	}
}

func TestSampleDefaultSpacing(t *testing.T) {
	a := naca0012(t, true)
	pts := a.Sample(80, nil, 0, false)
	if len(pts) != 80 {
		t.Errorf("got %d points, want 80", len(pts))
	}
}
