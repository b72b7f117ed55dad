package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 40, cfg.CellWidth)
	assert.Equal(t, 40, cfg.CellHeight)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameDelay())
	assert.Equal(t, 500*time.Millisecond, cfg.RepathInterval())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero_rows", func(c *Config) { c.Rows = 0 }, false},
		{"zero_cell", func(c *Config) { c.CellWidth = 0 }, false},
		{"zero_fps", func(c *Config) { c.TargetFPS = 0 }, false},
		{"radius_too_small", func(c *Config) { c.CollisionRadius = 1 }, false},
		{"fast_entities_need_wider_radius", func(c *Config) { c.MaxSpeed = 41; c.CollisionRadius = 2 }, false},
		{"fast_entities_wide_radius", func(c *Config) { c.MaxSpeed = 41; c.CollisionRadius = 3 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfigNormalizeDerivesCells(t *testing.T) {
	cfg := Config{ScreenWidth: 320, ScreenHeight: 160, Rows: 5, Columns: 10}.Normalize()
	assert.Equal(t, 32, cfg.CellWidth)
	assert.Equal(t, 32, cfg.CellHeight)
	assert.Equal(t, 2, cfg.CollisionRadius)
	require.NoError(t, cfg.Validate())
}

func TestCellConversions(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		x, y int
		want Cell
	}{
		{0, 0, Cell{0, 0}},
		{39, 39, Cell{0, 0}},
		{40, 79, Cell{1, 1}},
		{-1, 0, Cell{-1, 0}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, cfg.CellOf(tc.x, tc.y))
	}
	x, y := cfg.CellOrigin(Cell{X: 3, Y: 2})
	assert.Equal(t, 120, x)
	assert.Equal(t, 80, y)
	assert.True(t, cfg.InBounds(Cell{29, 19}))
	assert.False(t, cfg.InBounds(Cell{30, 0}))
	assert.False(t, cfg.InBounds(Cell{0, -1}))
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, a.Intersects(Rect{X: 9, Y: 9, Width: 10, Height: 10}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}), "touching edges do not overlap")
	assert.False(t, a.Intersects(Rect{X: 0, Y: 10, Width: 10, Height: 10}))
}

func TestStartProfileModes(t *testing.T) {
	stop, err := StartProfile("", "")
	require.NoError(t, err)
	stop()

	_, err = StartProfile("heap-of-nonsense", "")
	assert.Error(t, err)
}
