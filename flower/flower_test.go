package flower

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/scottkirkwood/posy/geom"
	"github.com/scottkirkwood/posy/internal/recorder"
	"github.com/scottkirkwood/posy/palette"
	"github.com/scottkirkwood/posy/rng"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Start:   geom.Pt(400, 1000),
		Palette: palette.Dark,
		Width:   800,
		Height:  1000,
	}
}

func TestSegmentCountBounded(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		f, err := New(r, testOptions())
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(f.Segments), MinSegments)
		require.LessOrEqual(t, len(f.Segments), MaxSegments)
		seen[len(f.Segments)] = true
	}
	require.True(t, seen[1])
	require.True(t, seen[2])
	require.True(t, seen[3])
}

func TestChainIsContinuous(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		f, err := New(r, testOptions())
		require.NoError(t, err)
		require.Equal(t, geom.Pt(400, 1000), f.Segments[0].A1)
		for j := 1; j < len(f.Segments); j++ {
			prev, next := f.Segments[j-1], f.Segments[j]
			require.Equal(t, prev.A2, next.A1)
			require.Equal(t, geom.Pt(2*next.A1.X-prev.C2.X, 2*next.A1.Y-prev.C2.Y), next.C1)
		}
	}
}

func TestFirstControlWithinStartCone(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		f, err := New(r, testOptions())
		require.NoError(t, err)
		d := f.Segments[0].C1.Sub(f.Segments[0].A1)
		// Pointing up, no more than 22.5 degrees off vertical, 75 to 200 away.
		require.Less(t, d.Y, 0.0)
		dist2 := d.X*d.X + d.Y*d.Y
		require.GreaterOrEqual(t, dist2, 75.0*75.0-1e-6)
		require.Less(t, dist2, 200.0*200.0)
	}
}

func TestLowestDraws(t *testing.T) {
	opts := testOptions()
	f, err := New(rng.Lowest{}, opts)
	require.NoError(t, err)

	require.Len(t, f.Segments, 1)
	s := f.Segments[0]
	require.Equal(t, opts.Start, s.A1)
	require.Equal(t, geom.Project(opts.Start, -22.5, 75), s.C1)
	require.Equal(t, geom.Pt(0, 0), s.A2)
	require.Equal(t, geom.Pt(0, 0), s.C2)

	require.Equal(t, "wild", f.StemLength)
	require.Equal(t, "daisy", f.Bulb)
	require.Equal(t, "yellow", f.PetalName)
	require.Equal(t, f.Petal, f.PetalColor())

	dark, _ := palette.Lookup(palette.Dark)
	require.Equal(t, dark.Stem, f.StrokeColor())
}

func TestReflectedJoint(t *testing.T) {
	// Two segments on a 100x100 canvas; the first ends at (5,5) with its
	// last control at (10,10).
	src := &rng.Fixed{
		Uniforms: []float64{
			0, 0, 0, // petal, stem length, bulb
			0, 0, // angle, length
			0.05, 0.05, // a2
			0.1, 0.1, // c2
			0.5, 0.5, 0.5, 0.5,
		},
		Normals: []float64{0}, // 2.5 segments, floored to 2
	}
	opts := testOptions()
	opts.Start, opts.Width, opts.Height = geom.Pt(50, 100), 100, 100
	f, err := New(src, opts)
	require.NoError(t, err)
	require.Len(t, f.Segments, 2)
	require.Equal(t, geom.Pt(5, 5), f.Segments[0].A2)
	require.Equal(t, geom.Pt(10, 10), f.Segments[0].C2)
	require.Equal(t, geom.Pt(5, 5), f.Segments[1].A1)
	require.Equal(t, geom.Pt(0, 0), f.Segments[1].C1)
}

func TestTintedColors(t *testing.T) {
	for _, id := range palette.IDs() {
		t.Run(id, func(t *testing.T) {
			pal, _ := palette.Lookup(palette.ID(id))
			opts := testOptions()
			opts.Palette = palette.ID(id)

			opts.Tint = 0
			f, err := New(rng.Lowest{}, opts)
			require.NoError(t, err)
			require.Equal(t, pal.Stem, f.StrokeColor())
			require.Equal(t, f.Petal, f.PetalColor())

			opts.Tint = 1
			f, err = New(rng.Lowest{}, opts)
			require.NoError(t, err)
			require.Equal(t, pal.Canvas, f.StrokeColor())
			require.Equal(t, pal.Canvas, f.PetalColor())
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	opts := testOptions()
	opts.Palette = "neon"
	_, err := New(rng.Lowest{}, opts)
	require.ErrorIs(t, err, palette.ErrUnknownPalette)

	opts = testOptions()
	opts.Width = 0
	_, err = New(rng.Lowest{}, opts)
	require.ErrorIs(t, err, ErrEmptyCanvas)

	opts = testOptions()
	opts.Tint = 1.5
	_, err = New(rng.Lowest{}, opts)
	require.ErrorIs(t, err, ErrTint)
}

func TestDraw(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	f, err := New(r, testOptions())
	require.NoError(t, err)

	rec := recorder.New(800, 1000)
	f.Draw(rec)
	require.Equal(t, 0, rec.Depth())

	require.Equal(t, "SetStrokeWidth", rec.Ops[0].Name)
	require.Equal(t, []float64{StemWeight}, rec.Ops[0].Args)
	require.Equal(t, f.StrokeColor(), rec.Ops[1].Color)
	require.Equal(t, "NoFill", rec.Ops[2].Name)

	curves := rec.Named("Bezier")
	require.Len(t, curves, len(f.Segments))
	for i, c := range curves {
		s := f.Segments[i]
		require.Equal(t, []geom.Point{s.A1, s.C1, s.C2, s.A2}, c.Points)
	}
}

func TestDrawIsRepeatable(t *testing.T) {
	f, err := New(rand.New(rand.NewSource(3)), testOptions())
	require.NoError(t, err)

	once := recorder.New(800, 1000)
	f.Draw(once)
	twice := recorder.New(800, 1000)
	f.Draw(twice)
	f.Draw(twice)
	require.Equal(t, append(once.Ops, once.Ops...), twice.Ops)
}

func TestDaisy(t *testing.T) {
	rec := recorder.New(800, 1000)
	petal := color.RGBA{245, 125, 98, 255}
	Daisy(rec, geom.Pt(120, 340), petal)

	names := rec.Names()
	require.Equal(t, []string{"Push", "NoStroke", "Translate", "SetFillColor", "Circle", "SetFillColor"}, names[:6])
	require.Equal(t, "Pop", names[len(names)-1])
	require.Equal(t, 0, rec.Depth())

	require.Equal(t, []float64{120, 340}, rec.Named("Translate")[0].Args)
	circle := rec.Named("Circle")[0]
	require.Equal(t, geom.Pt(0, 0), circle.Points[0])
	require.Equal(t, []float64{20}, circle.Args)

	fills := rec.Named("SetFillColor")
	require.Equal(t, color.Black, fills[0].Color)
	require.Equal(t, petal, fills[1].Color)

	petals := rec.Named("Ellipse")
	require.Len(t, petals, 10)
	for _, p := range petals {
		require.Equal(t, geom.Pt(15, 20), p.Points[0])
		require.Equal(t, []float64{40, 40}, p.Args)
		require.Equal(t, 1, p.Depth)
	}
	rotations := rec.Named("Rotate")
	require.Len(t, rotations, 10)
	for _, r := range rotations {
		require.Equal(t, []float64{60}, r.Args)
	}
}

func TestRegistries(t *testing.T) {
	require.Equal(t, []string{"wild"}, StemLengths())
	require.Equal(t, []string{"daisy"}, Bulbs())

	var reg registry[StemLength]
	reg.register("short", func(rng.Source) float64 { return 10 })
	reg.register("long", func(rng.Source) float64 { return 300 })
	reg.register("short", func(rng.Source) float64 { return 20 })
	require.Equal(t, []string{"short", "long"}, reg.list())
	fn, ok := reg.lookup("short")
	require.True(t, ok)
	require.Equal(t, 20.0, fn(rng.Lowest{}))
	_, ok = reg.lookup("medium")
	require.False(t, ok)
}
