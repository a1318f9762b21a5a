package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// stubModule is a test double for Module
type stubModule struct {
	name          string
	commands      []*discordgo.ApplicationCommand
	handlers      map[string]InteractionHandler
	eventHandlers []EventHandler
	initErr       error
	shutErr       error
}

func (m *stubModule) Name() string                                   { return m.name }
func (m *stubModule) Commands() []*discordgo.ApplicationCommand      { return m.commands }
func (m *stubModule) CommandHandlers() map[string]InteractionHandler { return m.handlers }
func (m *stubModule) EventHandlers() []EventHandler                  { return m.eventHandlers }
func (m *stubModule) Init(deps ModuleDependencies) error             { return m.initErr }
func (m *stubModule) Shutdown() error                                { return m.shutErr }

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	reg.Register(&stubModule{name: "music"})

	modules := reg.Modules()
	if len(modules) != 1 {
		t.Fatalf("len(Modules()) = %d, want 1", len(modules))
	}
	if modules[0].Name() != "music" {
		t.Errorf("Name() = %q, want music", modules[0].Name())
	}
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()

	reg.Register(&stubModule{name: "music"})
	reg.Register(&stubModule{name: "status"})

	modules := reg.Modules()
	if len(modules) != 2 {
		t.Fatalf("len(Modules()) = %d, want 2", len(modules))
	}
	if modules[0].Name() != "music" || modules[1].Name() != "status" {
		t.Errorf("order = [%s %s], want [music status]", modules[0].Name(), modules[1].Name())
	}
}

func TestRegistry_DuplicateNamePanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubModule{name: "music"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate module name")
		}
	}()
	reg.Register(&stubModule{name: "music"})
}

func TestRegistry_ModulesReturnsSnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubModule{name: "music"})

	modules := reg.Modules()

	reg.Register(&stubModule{name: "status"})

	if len(modules) != 1 {
		t.Errorf("snapshot length = %d, want 1", len(modules))
	}
}

func TestGlobalRegistry(t *testing.T) {
	ResetGlobalRegistry()
	defer ResetGlobalRegistry()

	Register(&stubModule{name: "music"})

	modules := Modules()
	if len(modules) != 1 {
		t.Fatalf("len(Modules()) = %d, want 1", len(modules))
	}
	if modules[0].Name() != "music" {
		t.Errorf("Name() = %q, want music", modules[0].Name())
	}
}
