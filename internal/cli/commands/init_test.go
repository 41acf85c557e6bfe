package commands

import "testing"

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()

	if cmd.Use != "init" {
		t.Errorf("expected Use to be 'init', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Flags().Lookup("no-color") == nil {
		t.Error("expected --no-color flag to exist")
	}

	if cmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}
