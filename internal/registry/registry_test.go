package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create(stub_b) error: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create(stub_b).ID() = %q, want %q", g.ID(), "stub_b")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	found := false
	for _, info := range games {
		if info.ID == "stub_m" {
			found = true
			if info.Title != "STUB_M" {
				t.Errorf("title = %q, want %q", info.Title, "STUB_M")
			}
		}
	}
	if !found {
		t.Error("List() missing stub_m")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
