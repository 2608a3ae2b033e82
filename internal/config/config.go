// Package config provides the YAML-backed game constants for Chicken Run.
package config

import "time"

// Game contains all constants that define the playfield and its rules.
type Game struct {
	Window  Window  `yaml:"window"`
	Bars    Bars    `yaml:"bars"`
	Player  Player  `yaml:"player"`
	Enemies Enemies `yaml:"enemies"`
	Loop    Loop    `yaml:"loop"`
	Assets  Assets  `yaml:"assets"`
	Render  Render  `yaml:"render"`
}

// Window defines the playfield size in pixels.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Bars defines the top and bottom boundary bars.
type Bars struct {
	Height int `yaml:"height"`
}

// Player defines the player sprite.
type Player struct {
	Size  int `yaml:"size"`
	Speed int `yaml:"speed"` // Position delta applied per key press
}

// Enemies defines the patrolling enemy population.
type Enemies struct {
	Count  int `yaml:"count"`
	Size   int `yaml:"size"`
	Speed  int `yaml:"speed"`
	StartY int `yaml:"start_y"`
	StepY  int `yaml:"step_y"`
}

// Loop defines frame pacing.
type Loop struct {
	FrameDelayMS int `yaml:"frame_delay_ms"`
}

// FrameDelay returns the fixed sleep between frames.
func (l Loop) FrameDelay() time.Duration {
	return time.Duration(l.FrameDelayMS) * time.Millisecond
}

// Assets lists image files, relative to the assets directory.
type Assets struct {
	Background string `yaml:"background"`
	Bar        string `yaml:"bar"`
	Enemy      string `yaml:"enemy"`
	Player     string `yaml:"player"`
}

// Render defines how window pixels map to terminal cells.
type Render struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}
