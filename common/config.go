package common

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config holds the process-wide simulation constants. It is built once at
// startup and handed to every system by value; nothing mutates it afterwards.
type Config struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	Rows         int `yaml:"rows"`
	Columns      int `yaml:"columns"`
	// CellWidth and CellHeight default to the screen size divided by the
	// column and row counts.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	TargetFPS  int `yaml:"target_fps"`

	RepathIntervalMS int `yaml:"repath_interval_ms"`
	// CollisionRadius is the number of cells scanned around an entity in
	// each axis during the broad phase.
	CollisionRadius int `yaml:"collision_radius"`
	// MaxSpeed bounds the per-frame displacement of any entity in pixels.
	MaxSpeed      int  `yaml:"max_speed"`
	LogIntervalMS int  `yaml:"log_interval_ms"`
	GoalExempt    bool `yaml:"goal_exempt"`
}

// DefaultConfig returns a 1200x800 screen split into 30x20 cells at 20 FPS.
func DefaultConfig() Config {
	cfg := Config{
		ScreenWidth:      1200,
		ScreenHeight:     800,
		Rows:             20,
		Columns:          30,
		TargetFPS:        20,
		RepathIntervalMS: 500,
		CollisionRadius:  2,
		MaxSpeed:         1,
		LogIntervalMS:    3000,
		GoalExempt:       true,
	}
	cfg.fillDerived()
	return cfg
}

// Normalize fills derived and zero-valued fields from the defaults.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.ScreenWidth == 0 {
		c.ScreenWidth = def.ScreenWidth
	}
	if c.ScreenHeight == 0 {
		c.ScreenHeight = def.ScreenHeight
	}
	if c.Rows == 0 {
		c.Rows = def.Rows
	}
	if c.Columns == 0 {
		c.Columns = def.Columns
	}
	if c.TargetFPS == 0 {
		c.TargetFPS = def.TargetFPS
	}
	if c.RepathIntervalMS == 0 {
		c.RepathIntervalMS = def.RepathIntervalMS
	}
	if c.CollisionRadius == 0 {
		c.CollisionRadius = def.CollisionRadius
	}
	if c.MaxSpeed == 0 {
		c.MaxSpeed = def.MaxSpeed
	}
	if c.LogIntervalMS == 0 {
		c.LogIntervalMS = def.LogIntervalMS
	}
	c.fillDerived()
	return c
}

func (c *Config) fillDerived() {
	if c.CellWidth == 0 && c.Columns > 0 {
		c.CellWidth = c.ScreenWidth / c.Columns
	}
	if c.CellHeight == 0 && c.Rows > 0 {
		c.CellHeight = c.ScreenHeight / c.Rows
	}
}

// MinCollisionRadius is the smallest broad-phase radius that still sees
// every occupant an entity can reach in one frame.
func (c Config) MinCollisionRadius() int {
	cell := c.CellWidth
	if c.CellHeight < cell {
		cell = c.CellHeight
	}
	if cell <= 0 {
		return 1
	}
	return CeilDiv(c.MaxSpeed, cell) + 1
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Columns, c.Rows)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell %dx%d", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalidConfig, c.TargetFPS)
	}
	if c.RepathIntervalMS < 0 {
		return fmt.Errorf("%w: repath_interval_ms %d", ErrInvalidConfig, c.RepathIntervalMS)
	}
	if c.MaxSpeed < 0 {
		return fmt.Errorf("%w: max_speed %d", ErrInvalidConfig, c.MaxSpeed)
	}
	if min := c.MinCollisionRadius(); c.CollisionRadius < min {
		return fmt.Errorf("%w: collision_radius %d below %d for max_speed %d", ErrInvalidConfig, c.CollisionRadius, min, c.MaxSpeed)
	}
	return nil
}

func (c Config) FrameDelay() time.Duration {
	if c.TargetFPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TargetFPS)
}

func (c Config) RepathInterval() time.Duration {
	return time.Duration(c.RepathIntervalMS) * time.Millisecond
}

func (c Config) LogInterval() time.Duration {
	return time.Duration(c.LogIntervalMS) * time.Millisecond
}

// CellOf maps a screen position to its grid cell.
func (c Config) CellOf(x, y int) Cell {
	return Cell{X: FloorDiv(x, c.CellWidth), Y: FloorDiv(y, c.CellHeight)}
}

// CellOrigin returns the top-left screen position of a cell.
func (c Config) CellOrigin(cell Cell) (int, int) {
	return cell.X * c.CellWidth, cell.Y * c.CellHeight
}

func (c Config) InBounds(cell Cell) bool {
	return cell.X >= 0 && cell.Y >= 0 && cell.X < c.Columns && cell.Y < c.Rows
}
