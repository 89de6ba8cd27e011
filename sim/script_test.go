package sim

import (
	"testing"

	"github.com/automoto/layerhop/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript(" right*3, right+jump*2 ,back,, wait*4 ")
	require.NoError(t, err)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, 10, s.Len())

	assert.Equal(t, Step{Intents: physics.Intents{MoveRight: true}, Ticks: 3}, s.Steps[0])
	assert.Equal(t, Step{Intents: physics.Intents{MoveRight: true, JumpPressed: true, JumpHeld: true}, Ticks: 2}, s.Steps[1])
	assert.Equal(t, Step{Intents: physics.Intents{LayerBack: true}, Ticks: 1}, s.Steps[2])
	assert.Equal(t, Step{Ticks: 4}, s.Steps[3])
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown action", "right,dash", `unknown action "dash"`},
		{"bad count", "left*x", "bad tick count"},
		{"zero count", "left*0", "bad tick count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestScriptPressesFireOnFirstTickOnly(t *testing.T) {
	s, err := ParseScript("jump+front*3,hold")
	require.NoError(t, err)

	var got []physics.Intents
	for {
		in, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, in)
	}

	held := physics.Intents{JumpHeld: true}
	assert.Equal(t, []physics.Intents{
		{JumpPressed: true, JumpHeld: true, LayerFront: true},
		held,
		held,
		held,
	}, got)

	_, ok := s.Next()
	assert.False(t, ok, "an exhausted script stays exhausted")
}

func TestEmptyScript(t *testing.T) {
	s, err := ParseScript("")
	require.NoError(t, err)
	assert.Zero(t, s.Len())

	_, ok := s.Next()
	assert.False(t, ok)
}
