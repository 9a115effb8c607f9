package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id string
}

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }
func (g stubGame) Description() string { return "a stub" }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false after Register")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create() built %q", g.ID())
	}

	var found *GameInfo
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("List() is missing stub_a")
	}
	if found.Title != "Stub stub_a" || found.Description != "a stub" {
		t.Errorf("info = %+v", *found)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"duplicate", func() {
			Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
			Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
		}},
		{"mismatched id", func() {
			Register("stub_x", func() Game { return stubGame{id: "stub_y"} })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			tt.run()
		})
	}
}

func TestListSorted(t *testing.T) {
	Register("stub_c", func() Game { return stubGame{id: "stub_c"} })
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
