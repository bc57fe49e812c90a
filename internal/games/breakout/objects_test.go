package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// recorder counts events raised by owned objects.
type recorder struct {
	lost, scored, completed int
}

func (r *recorder) LoseLife()      { r.lost++ }
func (r *recorder) IncreaseScore() { r.scored++ }
func (r *recorder) LevelComplete() { r.completed++ }

func testArena() Arena {
	return NewArena(80, 24)
}

func testPaddle(arena Arena) *Paddle {
	return NewPaddle(arena, config.DefaultBreakoutConfig().Paddle, 45)
}

func TestPaddleMovement(t *testing.T) {
	arena := testArena()
	p := testPaddle(arena)

	start := p.Box().X
	assert.InDelta(t, 35.0, start, 1e-9, "centered")
	assert.InDelta(t, arena.Bottom-2, p.Box().Y, 1e-9)

	p.MoveRight(0.1)
	assert.InDelta(t, start+4.5, p.Box().X, 1e-9)
	p.MoveLeft(0.2)
	assert.InDelta(t, start-4.5, p.Box().X, 1e-9)

	// Clamped to the walls
	p.MoveLeft(10)
	assert.InDelta(t, arena.Left, p.Box().X, 1e-9)
	p.MoveRight(10)
	assert.InDelta(t, arena.Right, p.Box().Right(), 1e-9)
}

func TestPaddleResize(t *testing.T) {
	p := testPaddle(testArena())

	p.Resize(4)
	assert.InDelta(t, 14.0, p.Box().W, 1e-9)
	p.Resize(100)
	assert.InDelta(t, 20.0, p.Box().W, 1e-9, "max width")
	p.Resize(-100)
	assert.InDelta(t, 4.0, p.Box().W, 1e-9, "min width")
	p.ResetWidth()
	assert.InDelta(t, 10.0, p.Box().W, 1e-9)
}

func TestCreateBricksFitsArena(t *testing.T) {
	arena := testArena()
	f := NewBrickField(arena, 3, &recorder{})
	f.CreateBricks(5, 10, 0, 1, 1)

	require.Equal(t, 50, f.Total())
	assert.Equal(t, 50, f.Remaining())
	for _, br := range f.Bricks() {
		assert.GreaterOrEqual(t, br.Box.X, arena.Left)
		assert.LessOrEqual(t, br.Box.Right(), arena.Right)
		assert.GreaterOrEqual(t, br.Box.Y, 3.0)
	}

	first := f.Bricks()[0].Box
	last := f.Bricks()[9].Box
	assert.InDelta(t, first.X-arena.Left, arena.Right-last.Right(), 1.0, "centered")
	assert.InDelta(t, 7.0, f.Bricks()[49].Box.Y, 1e-9)
}

func TestBrickFieldEvents(t *testing.T) {
	rec := &recorder{}
	f := NewBrickField(testArena(), 5, rec)
	f.CreateBricks(1, 2, 4, 1, 1)

	first := f.Bricks()[0].Box
	hit, ok := f.Collide(first)
	require.True(t, ok)
	assert.Equal(t, first, hit)
	assert.Equal(t, 1, rec.scored)
	assert.Equal(t, 0, rec.completed)

	// Dead bricks are not hit twice
	_, ok = f.Collide(first)
	assert.False(t, ok)

	_, ok = f.Collide(f.Bricks()[1].Box)
	require.True(t, ok)
	assert.Equal(t, 2, rec.scored)
	assert.Equal(t, 1, rec.completed)
	assert.Zero(t, f.Remaining())
}

func TestBallLaunchesFromPaddle(t *testing.T) {
	arena := testArena()
	p := testPaddle(arena)
	b := NewBall(arena, 20, 45, p, nil, &recorder{})

	require.True(t, b.Resting())
	p.MoveRight(0.2)
	b.Update(0.5)
	assert.InDelta(t, p.Box().CenterX(), b.Box().CenterX(), 1e-9, "follows the paddle")

	b.Update(0.6)
	assert.False(t, b.Resting())
	_, vy := b.Velocity()
	assert.Less(t, vy, 0.0)
}

func TestBallLosesLife(t *testing.T) {
	arena := testArena()
	rec := &recorder{}
	b := NewBall(arena, 20, 45, testPaddle(arena), nil, rec)
	b.resting = 0
	b.box.X = arena.Left + 1
	b.box.Y = arena.Bottom - 1.2
	b.dirX, b.dirY = 0, 1

	b.Update(0.1)
	assert.Equal(t, 1, rec.lost)
	assert.True(t, b.Resting())
}

func TestBallBouncesOffPaddle(t *testing.T) {
	arena := testArena()
	p := testPaddle(arena)
	b := NewBall(arena, 20, 45, p, nil, &recorder{})
	b.resting = 0

	// Right of center, falling
	b.box.X = p.Box().CenterX() + 2
	b.box.Y = p.Box().Y - 1.2
	b.dirX, b.dirY = 0, 1

	b.Update(0.02)
	vx, vy := b.Velocity()
	assert.Less(t, vy, 0.0)
	assert.Greater(t, vx, 0.0, "deflected toward the side it hit")
	assert.InDelta(t, 20.0, b.Speed(), 1e-9)
}

func TestBallBouncesOffWalls(t *testing.T) {
	arena := testArena()
	b := NewBall(arena, 20, 45, testPaddle(arena), nil, &recorder{})
	b.resting = 0
	b.box.X = arena.Left + 0.1
	b.box.Y = 10
	b.dirX, b.dirY = -0.6, -0.8

	b.Update(0.02)
	vx, _ := b.Velocity()
	assert.Greater(t, vx, 0.0)
	assert.GreaterOrEqual(t, b.Box().X, arena.Left)
}

func TestBallBrickCollision(t *testing.T) {
	for _, fire := range []bool{false, true} {
		arena := testArena()
		rec := &recorder{}
		f := NewBrickField(arena, 5, rec)
		f.CreateBricks(1, 1, 6, 1, 0)
		b := NewBall(arena, 20, 45, testPaddle(arena), f, rec)
		b.resting = 0
		b.SetFireBall(fire)

		brick := f.Bricks()[0].Box
		b.box.X = brick.CenterX() - 0.5
		b.box.Y = brick.Bottom() + 0.2
		b.dirX, b.dirY = 0, -1

		b.Update(0.02)
		assert.Equal(t, 1, rec.scored)
		assert.Equal(t, 1, rec.completed)
		_, vy := b.Velocity()
		if fire {
			assert.Less(t, vy, 0.0, "fireball passes through")
		} else {
			assert.Greater(t, vy, 0.0, "bounced")
		}
	}
}

func TestBallSpeedFactor(t *testing.T) {
	arena := testArena()
	b := NewBall(arena, 20, 30, testPaddle(arena), nil, &recorder{})

	b.SetSpeedFactor(1.4)
	assert.InDelta(t, 28.0, b.Speed(), 1e-9)
	b.SetSpeedFactor(2)
	assert.InDelta(t, 30.0, b.Speed(), 1e-9, "capped")
	b.SetSpeedFactor(0)
	assert.InDelta(t, 20.0, b.Speed(), 1e-9)
}

func newTestPowerups(t *testing.T) (*PowerupManager, *Paddle, *Ball) {
	t.Helper()
	arena := testArena()
	p := testPaddle(arena)
	b := NewBall(arena, 20, 45, p, nil, &recorder{})
	return NewPowerupManager(arena, p, b, config.DefaultBreakoutConfig().Powerups, zeroRoller{}), p, b
}

func TestSpawnPowerup(t *testing.T) {
	pm, _, _ := newTestPowerups(t)

	pm.SpawnPowerup()
	require.Len(t, pm.Pickups(), 1)
	p := pm.Pickups()[0]
	assert.Equal(t, KindBigPaddle, p.Kind)
	assert.InDelta(t, pm.arena.Left, p.Box.X, 1e-9)
	assert.InDelta(t, pm.arena.Top, p.Box.Y, 1e-9)

	pm.Update(0.5)
	assert.InDelta(t, pm.arena.Top+4, pm.Pickups()[0].Box.Y, 1e-9)
}

func TestPowerupCatchAndExpire(t *testing.T) {
	pm, paddle, _ := newTestPowerups(t)

	pb := paddle.Box()
	pm.pickups = append(pm.pickups, &Pickup{
		Kind: KindBigPaddle,
		Box:  core.Box{X: pb.CenterX(), Y: pb.Y - 0.5, W: 1, H: 1},
	})
	pm.Update(0.01)

	assert.Empty(t, pm.Pickups())
	assert.Equal(t, KindBigPaddle, pm.InEffect().Kind)
	assert.InDelta(t, 6.0, pm.InEffect().Remaining, 1e-9)
	assert.InDelta(t, 14.0, paddle.Box().W, 1e-9)

	pm.Update(2)
	assert.InDelta(t, 4.0, pm.InEffect().Remaining, 1e-9)

	pm.Update(4)
	assert.Equal(t, KindNone, pm.InEffect().Kind)
	assert.InDelta(t, 10.0, paddle.Box().W, 1e-9, "reverted")
}

func TestPowerupReplacesActiveEffect(t *testing.T) {
	pm, _, ball := newTestPowerups(t)

	pm.activate(KindFastBall)
	assert.InDelta(t, 28.0, ball.Speed(), 1e-9)

	pm.activate(KindSlowBall)
	assert.InDelta(t, 12.0, ball.Speed(), 1e-9)
	assert.Equal(t, KindSlowBall, pm.InEffect().Kind)

	pm.activate(KindFireBall)
	assert.InDelta(t, 20.0, ball.Speed(), 1e-9)
	assert.True(t, ball.FireBall())

	pm.activate(KindSmallPaddle)
	assert.False(t, ball.FireBall())
	assert.InDelta(t, 6.0, pm.paddle.Box().W, 1e-9)
}

func TestPowerupMissed(t *testing.T) {
	pm, _, _ := newTestPowerups(t)

	pm.pickups = append(pm.pickups, &Pickup{
		Kind: KindFireBall,
		Box:  core.Box{X: pm.arena.Left, Y: pm.arena.Bottom - 0.5, W: 1, H: 1},
	})
	pm.Update(0.1)
	assert.Empty(t, pm.Pickups())
	assert.Equal(t, KindNone, pm.InEffect().Kind)
}

func TestMessagingOverlay(t *testing.T) {
	o := NewMessagingOverlay()
	assert.Empty(t, o.Current())

	o.Post("first", 1)
	o.Post("second", 0.5)
	assert.Equal(t, "second", o.Current())

	o.Update(0.75)
	assert.Equal(t, "first", o.Current())

	o.Update(0.5)
	assert.Empty(t, o.Current())
}

func TestScoreLivesDisplay(t *testing.T) {
	d := NewScoreLivesDisplay(3, 1)

	d.UpdatePowerupText(Effect{Kind: KindFastBall, Remaining: 3})
	assert.Equal(t, "Fast Ball 3.0s", d.PowerupText())

	d.UpdatePowerupText(Effect{})
	assert.Empty(t, d.PowerupText())

	d.LifeLost(2)
	assert.Equal(t, 2, d.Lives())

	screen := core.NewScreen(40, 3)
	d.Render(screen)
	assert.Contains(t, screen.Row(0), "♥♥ Level 1")
}
