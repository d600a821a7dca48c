package app

import (
	"testing"

	"github.com/lexiq/lexiq/internal/engine"
	"github.com/lexiq/lexiq/internal/itembank"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	pool, err := itembank.NewPool(itembank.Item{ID: "q1", Difficulty: 0, Discrimination: 1})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	eng, err := engine.New(engine.Config{Source: pool})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return eng
}

func TestNewAppModel_OpensHomeByDefault(t *testing.T) {
	m := newAppModel(Options{Engine: testEngine(t)})

	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
	if m.router.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", m.router.Active().Title())
	}
}

func TestNewAppModel_StartPlacement(t *testing.T) {
	m := newAppModel(Options{Engine: testEngine(t), StartPlacement: true})

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 (home under placement)", m.router.Depth())
	}
	if m.router.Active().Title() != "Placement" {
		t.Errorf("active = %q, want Placement", m.router.Active().Title())
	}
	if m.Init() == nil {
		t.Error("expected the pushed screen's init command")
	}
}

func TestNewAppModel_StartPlacementNeedsEngine(t *testing.T) {
	m := newAppModel(Options{StartPlacement: true})

	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1 without an engine", m.router.Depth())
	}
}
