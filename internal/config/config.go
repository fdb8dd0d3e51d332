// Package config provides YAML-based game configuration loading for the
// snake arcade.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	World    SnakeWorld    `yaml:"world"`
	Grid     SnakeGrid     `yaml:"grid"`
	Movement SnakeMovement `yaml:"movement"`
	Scoring  SnakeScoring  `yaml:"scoring"`
}

// SnakeWorld defines the playfield extents in world units.
type SnakeWorld struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeGrid defines the cell size and whether the grid overlay starts visible.
type SnakeGrid struct {
	CellSize int  `yaml:"cell_size"`
	ShowGrid bool `yaml:"show_grid"`
}

// SnakeMovement defines the fixed interval between movement ticks, in seconds.
type SnakeMovement struct {
	Interval float64 `yaml:"interval"`
}

// SnakeScoring defines the points awarded per apple.
type SnakeScoring struct {
	PointsPerApple int `yaml:"points_per_apple"`
}

// Validate checks that every value is usable. Grid geometry is checked again
// by the game when it builds its grid.
func (c SnakeConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world must be positive, got %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, c.Grid.CellSize)
	case c.World.Width%c.Grid.CellSize != 0 || c.World.Height%c.Grid.CellSize != 0:
		return fmt.Errorf("%w: cell_size %d does not divide world %dx%d",
			ErrInvalidConfig, c.Grid.CellSize, c.World.Width, c.World.Height)
	case (c.World.Width/c.Grid.CellSize-1)*(c.World.Height/c.Grid.CellSize-1) < 2:
		// Apples never spawn in the last column or row, and never on the head.
		return fmt.Errorf("%w: world %dx%d with cell_size %d leaves no room for apples",
			ErrInvalidConfig, c.World.Width, c.World.Height, c.Grid.CellSize)
	case c.Movement.Interval <= 0:
		return fmt.Errorf("%w: movement interval must be positive, got %v", ErrInvalidConfig, c.Movement.Interval)
	case c.Scoring.PointsPerApple < 0:
		return fmt.Errorf("%w: points_per_apple must not be negative, got %d", ErrInvalidConfig, c.Scoring.PointsPerApple)
	}
	return nil
}
