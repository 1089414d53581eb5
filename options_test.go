package parametric

import (
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/parametric/function"
	"github.com/gogpu/parametric/pattern"
)

// mockRenderer is a test renderer for DI testing.
type mockRenderer struct {
	batches []*mockBatch
}

func (m *mockRenderer) NewBatch() pattern.Batch {
	b := &mockBatch{}
	m.batches = append(m.batches, b)
	return b
}

// last returns the most recently created batch.
func (m *mockRenderer) last() *mockBatch {
	if len(m.batches) == 0 {
		return nil
	}
	return m.batches[len(m.batches)-1]
}

type mockLine struct{ a, b gg.Point }

func (l *mockLine) SetEndpoints(a, b gg.Point) { l.a, l.b = a, b }

type mockBatch struct {
	lines  []*mockLine
	widths []float64
}

func (b *mockBatch) AddLine(a, c gg.Point, _ gg.RGBA) pattern.Line {
	l := &mockLine{a: a, b: c}
	b.lines = append(b.lines, l)
	return l
}

func (b *mockBatch) Draw(width float64) error {
	b.widths = append(b.widths, width)
	return nil
}

func (b *mockBatch) Reset() { b.lines = nil }

// TestNewEngineDefault tests that New creates its own registry with
// every function and all built-in patterns.
func TestNewEngineDefault(t *testing.T) {
	e := New(100, 80, &mockRenderer{})
	if e == nil {
		t.Fatal("New returned nil")
	}

	if w, h := e.Size(); w != 100 || h != 80 {
		t.Errorf("Size() = %d, %d, want 100, 80", w, h)
	}
	if e.Registry() == nil {
		t.Fatal("Registry() is nil")
	}
	if _, ok := e.Registry().Lookup("lissajous"); !ok {
		t.Error("default registry lacks advanced functions")
	}

	want := []string{"connect", "connectAll", "connectClosed", "connectToNext"}
	got := e.Patterns()
	if len(got) != len(want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Patterns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestNewEngineWithRegistry tests dependency injection of a registry.
func TestNewEngineWithRegistry(t *testing.T) {
	reg := function.NewRegistry(function.WithAdvanced(false))
	e := New(100, 100, &mockRenderer{}, WithRegistry(reg), WithAdvancedFunctions(true))

	if e.Registry() != reg {
		t.Error("Registry() is not the injected registry")
	}
	if _, ok := e.Registry().Lookup("rose"); ok {
		t.Error("WithAdvancedFunctions changed an injected registry")
	}
}

func TestWithAdvancedFunctionsDisabled(t *testing.T) {
	e := New(100, 100, &mockRenderer{}, WithAdvancedFunctions(false))
	if _, ok := e.Registry().Lookup("rose"); ok {
		t.Error("advanced functions registered despite WithAdvancedFunctions(false)")
	}
	if _, ok := e.Registry().Lookup("ngon"); !ok {
		t.Error("built-in functions missing")
	}
}

func TestWithClock(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := New(100, 100, &mockRenderer{}, WithClock(func() time.Time { return now }))

	now = now.Add(1500 * time.Millisecond)
	if got := e.Elapsed(); got != 1.5 {
		t.Errorf("Elapsed() = %v, want 1.5", got)
	}

	// nil keeps the default clock.
	e = New(100, 100, &mockRenderer{}, WithClock(nil))
	if got := e.Elapsed(); got < 0 || got > 60 {
		t.Errorf("Elapsed() with wall clock = %v", got)
	}
}

// spokes joins every point to the pattern center.
type spokes struct{}

func (spokes) Name() string          { return "spokes" }
func (spokes) DefaultWidth() float64 { return 1 }

func (spokes) Build(p *pattern.Pattern) {
	for n := 0; n < p.Config().Count; n++ {
		for i, pt := range p.Points(n, 0) {
			p.Add(pattern.PairRecipe{From: i, To: -1, N: n}, pt, p.Center())
		}
	}
}

func TestWithStrategy(t *testing.T) {
	e := New(100, 100, &mockRenderer{}, WithStrategy(spokes{}), WithStrategy(nil))

	cfg := pattern.DefaultConfig()
	cfg.Pattern = "spokes"
	cfg.Count = 4
	cfg.Points = []function.Config{{Func: "circle"}, {Func: "square"}, {Func: "ngon"}}
	e.LoadConfig(cfg)

	if got := e.PatternName(); got != "spokes" {
		t.Fatalf("PatternName() = %q, want spokes", got)
	}
	if got := e.LineCount(); got != 12 {
		t.Errorf("LineCount() = %d, want 12", got)
	}
}
