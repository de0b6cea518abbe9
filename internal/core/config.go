package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// World units covered by one terminal cell.
// Cells are roughly twice as tall as wide, hence the asymmetry.
const (
	UnitsPerCellX = 15.0
	UnitsPerCellY = 25.0
)

// Viewport is the visible playfield in world units.
type Viewport struct {
	Width        float64
	Height       float64
	GroundHeight float64
}

// GroundLevel is the y coordinate of the ground surface.
func (v Viewport) GroundLevel() float64 {
	return v.Height - v.GroundHeight
}

// ViewportFor derives the playfield from a terminal size in cells.
func ViewportFor(cols, rows int, groundHeight float64) Viewport {
	return Viewport{
		Width:        float64(cols) * UnitsPerCellX,
		Height:       float64(rows) * UnitsPerCellY,
		GroundHeight: groundHeight,
	}
}

// ToCellX maps a world x coordinate to a screen column.
func (v Viewport) ToCellX(x float64) int {
	return int(x / UnitsPerCellX)
}

// ToCellY maps a world y coordinate to a screen row.
func (v Viewport) ToCellY(y float64) int {
	return int(y / UnitsPerCellY)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the session
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the game is paused
	InMenu    bool // Whether the start screen is shown
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// RunEnded is set on the single tick where a run finishes.
	RunEnded bool
}
