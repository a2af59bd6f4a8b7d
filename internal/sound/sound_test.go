package sound

import "testing"

func TestNewPlayerRespectsNoSound(t *testing.T) {
	t.Setenv("HIGHWAY_NO_SOUND", "1")
	if _, ok := NewPlayer().(Silent); !ok {
		t.Error("expected Silent player with HIGHWAY_NO_SOUND=1")
	}

	t.Setenv("HIGHWAY_NO_SOUND", "false")
	if _, ok := NewPlayer().(*Terminal); !ok {
		t.Error("expected Terminal player with HIGHWAY_NO_SOUND=false")
	}

	t.Setenv("HIGHWAY_NO_SOUND", "")
	if _, ok := NewPlayer().(*Terminal); !ok {
		t.Error("expected Terminal player by default")
	}
}

func TestSilentPlayIsNoOp(t *testing.T) {
	// Must not panic.
	Silent{}.Play(CueLevelUp)
}
