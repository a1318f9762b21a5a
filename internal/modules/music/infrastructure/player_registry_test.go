package infrastructure

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
)

func TestPlayerRegistry(t *testing.T) {
	registry := NewPlayerRegistry()

	if got := registry.ExistingPlayer(snowflake.ID(1)); got != nil {
		t.Errorf("ExistingPlayer = %v, want nil before creation", got)
	}

	player := registry.Player(snowflake.ID(1))
	if player == nil {
		t.Fatal("Player should create on demand")
	}
	if registry.Player(snowflake.ID(1)) != player {
		t.Error("Player should return the same instance")
	}
	if registry.ExistingPlayer(snowflake.ID(1)) != player {
		t.Error("ExistingPlayer should return the created instance")
	}

	registry.Player(snowflake.ID(2))
	if got := registry.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}

	registry.Remove(snowflake.ID(1))
	if got := registry.ExistingPlayer(snowflake.ID(1)); got != nil {
		t.Errorf("ExistingPlayer = %v, want nil after removal", got)
	}
}
