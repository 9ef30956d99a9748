package registry

import (
	"testing"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

type stubGame struct {
	id, title, desc string
}

func (s *stubGame) ID() string {
	return s.id
}

func (s *stubGame) Title() string {
	return s.title
}

func (s *stubGame) Reset(core.RuntimeConfig) {}

func (s *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (s *stubGame) Render(*core.Screen) {}

func (s *stubGame) State() core.GameState {
	return core.GameState{}
}

type describedGame struct{ stubGame }

func (d *describedGame) Description() string {
	return d.desc
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })
	Register("zz_described", func() Game {
		return &describedGame{stubGame{id: "zz_described", title: "Described", desc: "has a summary"}}
	})

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist")
	}
	g, err := Create("zz_stub")
	if err != nil || g.ID() != "zz_stub" {
		t.Fatalf("Create() = %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	var found bool
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, info.ID)
		}
		if info.ID == "zz_described" {
			found = true
			if info.Title != "Described" || info.Description != "has a summary" {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("zz_described missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
