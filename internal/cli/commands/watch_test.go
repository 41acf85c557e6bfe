package commands

import "testing"

func TestNewWatchCommand_Flags(t *testing.T) {
	cmd := NewWatchCommand()

	if cmd.Use != "watch <file>" {
		t.Errorf("expected Use to be 'watch <file>', got %s", cmd.Use)
	}

	for _, name := range []string{"preset", "patterns", "addr", "no-color"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}

	addrFlag := cmd.Flags().Lookup("addr")
	if addrFlag.DefValue != "localhost:4000" {
		t.Errorf("expected default addr localhost:4000, got %s", addrFlag.DefValue)
	}
}

func TestNewWatchCommand_RequiresFileArg(t *testing.T) {
	cmd := NewWatchCommand()
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected an error when no file argument is given")
	}
	if err := cmd.Args(cmd, []string{"one", "two"}); err == nil {
		t.Error("expected an error when more than one file argument is given")
	}
	if err := cmd.Args(cmd, []string{"one"}); err != nil {
		t.Errorf("expected a single file argument to be valid, got %v", err)
	}
}
