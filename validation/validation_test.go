package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState([]string{"backled r", "frontled on"}))
	assert.False(t, IsValidState([]string{"not a real token"}))
}

func TestAllModesDefined(t *testing.T) {
	assert.True(t, AllModesDefined([]string{"backled r", "frontled r", "potled r"}))
	assert.False(t, AllModesDefined([]string{"backled r", "frontled r"}))
}

func TestNoDuplicateModeDefinitions(t *testing.T) {
	assert.True(t, NoDuplicateModeDefinitions([]string{"backled r", "backled on"}))
	assert.False(t, NoDuplicateModeDefinitions([]string{"backled r", "backled r2"}))
}

func TestAbsoluteState(t *testing.T) {
	assert.True(t, AbsoluteState([]string{"backled r", "frontled r", "potled r"}))
	assert.False(t, AbsoluteState([]string{"backled r", "backled dim"}))
}

func TestNoOpposingRelatives(t *testing.T) {
	assert.True(t, NoOpposingRelatives([]string{"backled dim"}))
	assert.False(t, NoOpposingRelatives([]string{"backled dim", "backled bright"}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		desired  []string
		wantKind Kind
		wantOK   bool
	}{
		{"valid", []string{"backled r", "frontled r", "potled r"}, []string{"backled g2"}, 0, true},
		{"unknown initial token", []string{"not real"}, []string{"backled g2"}, InvalidInitialState, false},
		{"missing mode", []string{"backled r", "frontled r"}, []string{"backled g2"}, ModesNotDefined, false},
		{"duplicate initial modes", []string{"backled r", "backled r2", "frontled r", "potled r"}, []string{"backled g2"}, DuplicateModes, false},
		{"relative token in initial", []string{"backled r", "frontled r", "potled r", "backled dim"}, []string{"backled g2"}, RelativeInInitial, false},
		{"unknown desired token", []string{"backled r", "frontled r", "potled r"}, []string{"not real"}, InvalidDesiredState, false},
		{"opposing relatives in desired", []string{"backled r", "frontled r", "potled r"}, []string{"backled dim", "backled bright"}, OpposingRelatives, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Validate(test.initial, test.desired)
			if test.wantOK {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				ve, ok := err.(*ValidationError)
				if assert.True(t, ok, "error should be a *ValidationError") {
					assert.Equal(t, test.wantKind, ve.Kind)
				}
			}
		})
	}
}
