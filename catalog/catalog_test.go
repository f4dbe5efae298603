package catalog

import "testing"

func TestCommandsCoversEveryCommand(t *testing.T) {
	for c := Command(0); c < NumCommands; c++ {
		if _, ok := Commands[c]; !ok {
			t.Errorf("Commands missing entry for command %d", c)
		}
	}
	if got, want := len(Commands), int(NumCommands); got != want {
		t.Errorf("len(Commands) = %d, want %d", got, want)
	}
}

func TestModeListsMatchCommandForTables(t *testing.T) {
	for i := range BackledModes {
		if _, ok := Commands[BackledCommandFor(i)]; !ok {
			t.Errorf("BackledCommandFor(%d) returned an unknown command", i)
		}
	}
	for i := range FrontledModes {
		if _, ok := Commands[FrontledCommandFor(i, false)]; !ok {
			t.Errorf("FrontledCommandFor(%d, false) returned an unknown command", i)
		}
		if _, ok := Commands[FrontledCommandFor(i, true)]; !ok {
			t.Errorf("FrontledCommandFor(%d, true) returned an unknown command", i)
		}
	}
	for i := range PotledModes {
		if _, ok := Commands[PotledCommandFor(i)]; !ok {
			t.Errorf("PotledCommandFor(%d) returned an unknown command", i)
		}
	}
}

func TestCommandAliasesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range CommandAliases {
		if seen[a] {
			t.Errorf("duplicate alias %q", a)
		}
		seen[a] = true
	}
}

func TestGetCommandsForRelativeStateCoversRelativeStates(t *testing.T) {
	for _, pair := range RelativeStates {
		if cmds := GetCommandsForRelativeState(pair.A); len(cmds) == 0 {
			t.Errorf("GetCommandsForRelativeState(%q) returned nothing", pair.A)
		}
		if cmds := GetCommandsForRelativeState(pair.B); len(cmds) == 0 {
			t.Errorf("GetCommandsForRelativeState(%q) returned nothing", pair.B)
		}
	}
}

func TestConvertTargetStatePlayPause(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		want    string
	}{
		{"not yet paused", []string{"frontled on"}, "frontled paused"},
		{"already paused", []string{"frontled on", "frontled paused"}, "frontled unpaused"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ConvertTargetState("frontled playpause", test.initial); got != test.want {
				t.Errorf("ConvertTargetState(%q) = %q, want %q", test.name, got, test.want)
			}
		})
	}
}

func TestConvertTargetStateDIYDirection(t *testing.T) {
	got := ConvertTargetState("frontled rup", []string{"frontled diy3"})
	if want := "frontled diy3 rup"; got != want {
		t.Errorf("ConvertTargetState(frontled rup) = %q, want %q", got, want)
	}
}

func TestConvertTargetStateDimBrightRewriting(t *testing.T) {
	got := ConvertTargetState("backled dim", []string{"backled smooth"})
	if want := "backled slow"; got != want {
		t.Errorf("ConvertTargetState(backled dim, effect mode) = %q, want %q", got, want)
	}

	got = ConvertTargetState("backled dim", []string{"backled r2"})
	if want := "backled dim"; got != want {
		t.Errorf("ConvertTargetState(backled dim, color mode) = %q, want %q", got, want)
	}
}
