package state

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/ttahelenius/ir-command-overlap-solver/catalog"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []State{
		Initial(),
		{BackledOn: 1, FrontledOn: 0, PotledOn: 1, BackledMode: 19, FrontledMode: 31, PotledMode: 19},
		{BackledOn: 1, FrontledOn: 1, PotledOn: 1, FrontledDIY5RelRGB: 26, FrontledCalibration: 5},
		{BackledRelBrightness: 2, FrontledRelSpeed: 1, PotledRelBrightness: 1},
	}
	for _, want := range tests {
		encoded := want.Encode()
		got := Decode(encoded)
		if diff := deep.Equal(got, want); diff != nil {
			t.Errorf("Decode(Encode(s)) mismatch for %s\n%v", spew.Sdump(want), diff)
		}
	}
}

func TestEncodeNeverExceedsMaxEncoded(t *testing.T) {
	s := State{
		BackledOn: 1, FrontledOn: 1, PotledOn: 1, FrontledPaused: 1,
		BackledMode:  len(catalog.BackledModes) - 1,
		FrontledMode: len(catalog.FrontledModes) - 1,
		PotledMode:   len(catalog.PotledModes) - 1,
		BackledRelBrightness: 2, FrontledRelBrightness: 2, PotledRelBrightness: 2,
		BackledRelSpeed: 2, FrontledRelSpeed: 2, PotledRelSpeed: 2,
		FrontledDIY1RelRGB: 26, FrontledDIY2RelRGB: 26, FrontledDIY3RelRGB: 26,
		FrontledDIY4RelRGB: 26, FrontledDIY5RelRGB: 26, FrontledDIY6RelRGB: 26,
		FrontledCalibration: 5,
	}
	if got := s.Encode(); got != MaxEncoded {
		t.Errorf("Encode(max fields) = %d, want MaxEncoded %d", got, MaxEncoded)
	}
}

func TestEncodeDecodeRollover(t *testing.T) {
	if got := Decode(MaxEncoded).Encode(); got != MaxEncoded {
		t.Errorf("Encode(Decode(MaxEncoded)) = %d, want %d", got, MaxEncoded)
	}
	if got := Decode(MaxEncoded + 1).Encode(); got != 0 {
		t.Errorf("Encode(Decode(MaxEncoded+1)) = %d, want 0", got)
	}
	if got := Decode(MaxEncoded + 2).Encode(); got != 1 {
		t.Errorf("Encode(Decode(MaxEncoded+2)) = %d, want 1", got)
	}
}

func TestRGBTritPacking(t *testing.T) {
	encoded := 0
	encoded = SetR(encoded, 2)
	encoded = SetG(encoded, 1)
	encoded = SetB(encoded, 2)
	if got := GetR(encoded); got != 2 {
		t.Errorf("GetR = %d, want 2", got)
	}
	if got := GetG(encoded); got != 1 {
		t.Errorf("GetG = %d, want 1", got)
	}
	if got := GetB(encoded); got != 2 {
		t.Errorf("GetB = %d, want 2", got)
	}
}

func TestRGBSettersPreserveOtherChannels(t *testing.T) {
	for i := 0; i < 81; i++ {
		for trit := 0; trit <= 2; trit++ {
			if got := GetR(SetR(i, trit)); got != trit {
				t.Fatalf("GetR(SetR(%d, %d)) = %d", i, trit, got)
			}
			if got := GetG(SetG(i, trit)); got != trit {
				t.Fatalf("GetG(SetG(%d, %d)) = %d", i, trit, got)
			}
			if got := GetB(SetB(i, trit)); got != trit {
				t.Fatalf("GetB(SetB(%d, %d)) = %d", i, trit, got)
			}

			if got := GetR(SetG(i, trit)); got != GetR(i) {
				t.Fatalf("SetG(%d, %d) disturbed R: %d != %d", i, trit, got, GetR(i))
			}
			if got := GetR(SetB(i, trit)); got != GetR(i) {
				t.Fatalf("SetB(%d, %d) disturbed R: %d != %d", i, trit, got, GetR(i))
			}
			if got := GetG(SetR(i, trit)); got != GetG(i) {
				t.Fatalf("SetR(%d, %d) disturbed G: %d != %d", i, trit, got, GetG(i))
			}
			if got := GetG(SetB(i, trit)); got != GetG(i) {
				t.Fatalf("SetB(%d, %d) disturbed G: %d != %d", i, trit, got, GetG(i))
			}
			if got := GetB(SetR(i, trit)); got != GetB(i) {
				t.Fatalf("SetR(%d, %d) disturbed B: %d != %d", i, trit, got, GetB(i))
			}
			if got := GetB(SetG(i, trit)); got != GetB(i) {
				t.Fatalf("SetG(%d, %d) disturbed B: %d != %d", i, trit, got, GetB(i))
			}
		}
	}
}

func TestActiveDIYSlot(t *testing.T) {
	tests := []struct {
		mode int
		want int
	}{
		{19, 0},
		{20, 1},
		{25, 6},
		{26, 0},
	}
	for _, test := range tests {
		if got := ActiveDIYSlot(test.mode); got != test.want {
			t.Errorf("ActiveDIYSlot(%d) = %d, want %d", test.mode, got, test.want)
		}
	}
}

func TestReadStateDIYTritsAccumulateAdditively(t *testing.T) {
	s := ReadState(Initial(), []string{"frontled diy1 rup", "frontled diy1 rdown"})
	if got := s.FrontledDIY1RelRGB; got != 3 {
		t.Errorf("FrontledDIY1RelRGB after rup+rdown = %d, want 3 (additive, not clamped)", got)
	}
}

func TestReadStateModeTokens(t *testing.T) {
	s := ReadState(Initial(), []string{"backled r3", "frontled w2", "potled g4"})
	if s.BackledMode != 2 {
		t.Errorf("BackledMode = %d, want 2", s.BackledMode)
	}
	if s.FrontledMode != 16 {
		t.Errorf("FrontledMode = %d, want 16", s.FrontledMode)
	}
	if s.PotledMode != 8 {
		t.Errorf("PotledMode = %d, want 8", s.PotledMode)
	}
}

func TestIsSettingEffective(t *testing.T) {
	s := Initial()
	if IsSettingEffective(s, "backled on") {
		t.Errorf("backled on should not be effective on an already-on backled")
	}
	if !IsSettingEffective(s, "backled off") {
		t.Errorf("backled off should be effective on an on backled")
	}
	if !IsSettingEffective(s, "backled r2") {
		t.Errorf("a distinct mode token should be effective")
	}
}
