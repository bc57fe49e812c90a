package breakout

// GameState is the coordinator's current phase. Exactly one is active.
type GameState int

const (
	StateStartMenu     GameState = iota // Title screen, waiting for Confirm
	StatePlaying                        // Objects update and render
	StatePaused                         // Frozen until the pause key is pressed again
	StateLevelComplete                  // Grid cleared, next level pending
	StateGameOver                       // No lives left, final score shown
)

// String returns the string representation of the game state.
func (s GameState) String() string {
	switch s {
	case StateStartMenu:
		return "StartMenu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Events is how owned objects report back to the coordinator.
// Collaborators hold this interface, never the coordinator itself.
type Events interface {
	// LoseLife is raised when the ball falls past the paddle.
	LoseLife()
	// IncreaseScore is raised once per destroyed brick.
	IncreaseScore()
	// LevelComplete is raised when the last brick is destroyed.
	LevelComplete()
}
