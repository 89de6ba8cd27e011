package physics

import (
	"math"
	"testing"

	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flatFloor = []string{
	"......",
	"......",
	"......",
	"######",
}

func TestFrictionConvergesWithoutOvershoot(t *testing.T) {
	for _, dt := range []float64{0.008, 0.016, 0.033, 0.1} {
		for _, start := range []float64{300, -450, 1} {
			lvl := buildLevel(t, 70, flatFloor)
			h := newHarness(lvl, "player", 100, 160, 0, 0)
			h.settle(t, 20)

			h.c.Velocity.X = start
			prev := math.Abs(start)
			converged := false
			for i := 0; i < 500; i++ {
				h.c.Update(dt, Intents{})
				vx := h.c.Velocity.X
				require.LessOrEqual(t, math.Abs(vx), prev, "dt=%v start=%v tick=%d", dt, start, i)
				require.False(t, vx*start < 0, "velocity changed sign")
				prev = math.Abs(vx)
				if vx == 0 {
					converged = true
					break
				}
			}
			assert.True(t, converged, "dt=%v start=%v", dt, start)
		}
	}
}

func TestFallSpeedNeverExceedsGravity(t *testing.T) {
	rows := make([]string, 30)
	for i := range rows {
		rows[i] = "....."
	}
	lvl := buildLevel(t, 70, rows)
	h := newHarness(lvl, "player", 100, 0, 0, 900)

	for i := 0; i < 400 && !h.c.Dead; i++ {
		h.c.Update(testDt, Intents{})
		require.LessOrEqual(t, math.Abs(h.c.Velocity.Y), 900.0)
	}
	assert.True(t, h.c.Dead)
}

func TestLandingOnUpWall(t *testing.T) {
	rows := []string{
		"..........", "..........", "..........", "..........",
		"..........", "..........", "..........", "..........",
		"..........", "..........", "==========", "..........",
	}

	t.Run("touching the top for any downward velocity", func(t *testing.T) {
		for _, vy := range []float64{0, 1, 100, 400, 800, 2500} {
			lvl := buildLevel(t, 50, rows)
			h := newHarness(lvl, "player", 200, 450, 0, 800)
			require.Equal(t, 500, h.c.Position.Bottom())
			h.c.Velocity.Y = vy

			h.c.Update(testDt, Intents{})

			assert.True(t, h.c.Resting, "vy=%v", vy)
			assert.LessOrEqual(t, h.c.Velocity.Y, 0.0)
			assert.Equal(t, 500, h.c.Position.Bottom())
		}
	})

	t.Run("ten pixels above", func(t *testing.T) {
		lvl := buildLevel(t, 50, rows)
		h := newHarness(lvl, "player", 200, 440, 0, 800)
		h.c.Velocity = gamemath.Vec{X: 0, Y: 800}

		h.c.Update(testDt, Intents{})

		assert.Equal(t, 500, h.c.Position.Bottom())
		assert.True(t, h.c.Resting)
		assert.Equal(t, 0.0, h.c.Velocity.Y)
	})

	t.Run("slow fall takes several ticks", func(t *testing.T) {
		lvl := buildLevel(t, 50, rows)
		h := newHarness(lvl, "player", 200, 440, 0, 800)
		h.c.Velocity = gamemath.Vec{X: 0, Y: 100}

		h.c.Update(testDt, Intents{})
		assert.False(t, h.c.Resting)
		h.settle(t, 20)
		assert.Equal(t, 500, h.c.Position.Bottom())
		assert.Equal(t, 0.0, h.c.Velocity.Y)
	})
}

func TestUpWallIsOneWay(t *testing.T) {
	lvl := buildLevel(t, 70, []string{
		"......",
		"......",
		"......",
		"..==..",
		"######",
	})
	// standing inside the platform row, jumping up through it
	h := newHarness(lvl, "player", 150, 230, 0, 0)
	h.settle(t, 20)
	require.Equal(t, 280, h.c.Position.Bottom())
	require.True(t, h.c.Jump())

	sawAbove := false
	for i := 0; i < 60 && h.c.Jumping; i++ {
		h.c.Update(testDt, Intents{JumpHeld: true})
		if h.c.Position.Bottom() < 210 {
			sawAbove = true
		}
	}
	require.True(t, sawAbove, "up-wall should not stop an upward crossing")

	h.settle(t, 120)
	assert.Equal(t, 210, h.c.Position.Bottom(), "falling back lands on the platform")
}

func TestWorldClamp(t *testing.T) {
	lvl := buildLevel(t, 70, flatFloor)
	h := newHarness(lvl, "player", 5, 160, 0, 0)
	h.settle(t, 20)

	h.c.Velocity.X = -600
	h.c.Update(testDt, Intents{})
	assert.Equal(t, 0, h.c.Position.Left())
	assert.Equal(t, 0.0, h.c.Velocity.X)

	h.c.Position.SetRight(418)
	h.c.Velocity.X = 600
	h.c.Update(testDt, Intents{})
	assert.Equal(t, 420, h.c.Position.Right())
	assert.Equal(t, 0.0, h.c.Velocity.X)
}

func TestDeathBelowWorldIsTerminal(t *testing.T) {
	lvl := buildLevel(t, 70, []string{"....", "....", "....", "...."})
	_, height := lvl.WorldBounds()
	h := newHarness(lvl, "player", 100, height+240-50, 0, 1000)
	h.c.Velocity.Y = 1000

	h.c.Update(testDt, Intents{})
	require.Greater(t, h.c.Position.Bottom(), height+250)
	assert.True(t, h.c.Dead)
	require.Len(t, h.deaths.died, 1)
	assert.Same(t, h.c, h.deaths.died[0])

	pos := h.c.Position
	for i := 0; i < 5; i++ {
		h.c.Update(testDt, Intents{MoveLeft: true, JumpPressed: true, LayerFront: true})
	}
	h.c.Die()
	assert.True(t, h.c.Dead)
	assert.Equal(t, pos, h.c.Position)
	assert.Len(t, h.deaths.died, 1)

	h.c.Spawn()
	assert.False(t, h.c.Dead)
}

func TestDeathMarginMeasuredFromBottom(t *testing.T) {
	lvl := buildLevel(t, 70, []string{"....", "....", "....", "...."})
	_, height := lvl.WorldBounds()
	h := newHarness(lvl, "player", 100, height+250-50, 0, 1000)
	h.c.Velocity.Y = 0

	// bottom sits exactly on the margin: alive until it passes it
	h.c.Position.SetBottom(height + 250)
	h.c.clampToWorld()
	assert.False(t, h.c.Dead)
	h.c.Position.SetBottom(height + 251)
	h.c.clampToWorld()
	assert.True(t, h.c.Dead)
}

func TestSpawnIsIdempotent(t *testing.T) {
	lvl := buildLevel(t, 70, flatFloor)
	h := newHarness(lvl, "player", 100, 160, 0, 0)
	initial := h.c.State()

	h.settle(t, 20)
	h.tick(10, Intents{MoveLeft: true})
	h.c.Jump()
	h.tick(3, Intents{JumpHeld: true})
	require.NotEqual(t, initial, h.c.State())

	h.c.Spawn()
	first := h.c.State()
	h.c.Spawn()
	second := h.c.State()

	assert.Equal(t, first, second)
	assert.Equal(t, initial.Position, first.Position)
	assert.Equal(t, initial.Layer, first.Layer)
	assert.Equal(t, 1.0, first.SpeedModifier)
	assert.Equal(t, Right, first.Direction)
	assert.Equal(t, config.StandingRight, first.Status)
}

func TestJumpHoldAndRelease(t *testing.T) {
	lvl := buildLevel(t, 70, []string{
		"......", "......", "......", "......", "......", "######",
	})

	t.Run("held jump ends at the timer limit", func(t *testing.T) {
		h := newHarness(lvl, "player", 100, 300, 0, 0)
		h.settle(t, 20)
		require.True(t, h.c.Jump())
		assert.Equal(t, config.Character.JumpSpeed, h.c.Velocity.Y)

		ticks := 0
		for h.c.Jumping && ticks < 100 {
			h.c.Update(testDt, Intents{JumpHeld: true})
			require.LessOrEqual(t, h.c.JumpTimer, config.Character.JumpTimerLimit)
			ticks++
		}
		assert.False(t, h.c.Jumping)
		assert.Equal(t, 0.0, h.c.JumpTimer)
		assert.InDelta(t, config.Character.JumpTimerLimit/testDt, float64(ticks), 1.5)
	})

	t.Run("release ends the jump", func(t *testing.T) {
		h := newHarness(lvl, "player", 100, 300, 0, 0)
		h.settle(t, 20)
		require.True(t, h.c.Jump())
		h.c.Update(testDt, Intents{JumpHeld: true})
		require.True(t, h.c.Jumping)
		h.c.Update(testDt, Intents{})
		assert.False(t, h.c.Jumping)
		assert.Equal(t, 0.0, h.c.JumpTimer)
	})

	t.Run("no jump in mid air", func(t *testing.T) {
		h := newHarness(lvl, "player", 100, 0, 0, 0)
		h.c.Update(testDt, Intents{})
		assert.False(t, h.c.Jump())
		assert.False(t, h.c.Jumping)
	})
}
