package config

import (
	_ "embed"
)

//go:embed defaults/chickenrun.yaml
var defaultGameYAML []byte

// fallbackGame mirrors defaults/chickenrun.yaml and is used only if the embedded
// file cannot be parsed.
func fallbackGame() Game {
	return Game{
		Window:  Window{Title: "Chicken Run", Width: 300, Height: 400},
		Bars:    Bars{Height: 20},
		Player:  Player{Size: 20, Speed: 15},
		Enemies: Enemies{Count: 13, Size: 20, Speed: 1, StartY: 50, StepY: 25},
		Loop:    Loop{FrameDelayMS: 16},
		Assets: Assets{
			Background: "resources/background.bmp",
			Bar:        "resources/bar.bmp",
			Enemy:      "resources/enemy.bmp",
			Player:     "resources/player.bmp",
		},
		Render: Render{CellWidth: 10, CellHeight: 20},
	}
}
