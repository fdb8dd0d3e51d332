package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		World: SnakeWorld{
			Width:  640,
			Height: 480,
		},
		Grid: SnakeGrid{
			CellSize: 32,
			ShowGrid: false,
		},
		Movement: SnakeMovement{
			Interval: 0.2,
		},
		Scoring: SnakeScoring{
			PointsPerApple: 20,
		},
	}
}
