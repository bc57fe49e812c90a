package breakout

import "math"

// Snapshot captures the coordinator state for determinism testing.
// Floats are stored as their IEEE-754 bits so equal runs hash equally.
type Snapshot struct {
	Frames     uint64
	State      string
	Mode       int
	Score      int
	FinalScore int
	Lives      int
	Level      int
	Time       uint64

	PaddleX uint64
	PaddleW uint64

	// Ball: X, Y, DirX, DirY, Resting
	BallData []uint64

	// Pickups: Kind, X, Y per pickup
	PickupData []uint64

	EffectKind      int
	EffectRemaining uint64

	// One entry per brick: 1 alive, 0 destroyed
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current game state.
func (c *Coordinator) Snapshot() Snapshot {
	bits := math.Float64bits

	bricks := c.bricks.Bricks()
	brickData := make([]int, len(bricks))
	for i, br := range bricks {
		if br.Alive {
			brickData[i] = 1
		}
	}

	pickups := c.powerups.Pickups()
	pickupData := make([]uint64, 0, len(pickups)*3)
	for _, p := range pickups {
		pickupData = append(pickupData, uint64(p.Kind), bits(p.Box.X), bits(p.Box.Y)) //#nosec G115 -- kind is small and positive
	}

	ball := c.ball
	ballData := []uint64{bits(ball.box.X), bits(ball.box.Y), bits(ball.dirX), bits(ball.dirY), bits(ball.resting)}

	var rngState uint64
	if r, ok := c.rng.(*SimpleRNG); ok {
		rngState = r.State()
	}

	effect := c.powerups.InEffect()
	paddle := c.paddle.Box()

	return Snapshot{
		Frames:     c.frames,
		State:      c.state.String(),
		Mode:       int(c.mode),
		Score:      c.score,
		FinalScore: c.finalScore,
		Lives:      c.lives,
		Level:      c.level,
		Time:       bits(c.time),

		PaddleX: bits(paddle.X),
		PaddleW: bits(paddle.W),

		BallData:   ballData,
		PickupData: pickupData,

		EffectKind:      int(effect.Kind),
		EffectRemaining: bits(effect.Remaining),

		BrickData: brickData,
		RNGState:  rngState,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FinalScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + snap.Time
	h = h*31 + snap.PaddleX
	h = h*31 + snap.PaddleW

	for _, v := range snap.BallData {
		h = h*31 + v
	}

	for _, v := range snap.PickupData {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.EffectKind) //#nosec G115 -- hash computation
	h = h*31 + snap.EffectRemaining

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
