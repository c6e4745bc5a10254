package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ballsort/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Resize(int, int)          {}
func (g *stubGame) Render(*core.Screen)      {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || Exists("missing") {
		t.Error("Exists() mismatch")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "aa_stub" {
			found = true
			if info.Title != "Stub aa_stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("registered game missing from List()")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() of unknown game = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
