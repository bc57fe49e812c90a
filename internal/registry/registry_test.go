package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                  { return g.id }
func (g stubGame) Title() string                               { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)                    {}
func (g stubGame) Step(float64, core.Keyboard) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                         {}
func (g stubGame) Status() core.Status                         { return core.Status{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	assert.True(t, Exists("stub_a"))
	assert.False(t, Exists("stub_missing"))

	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())

	_, err = Create("stub_missing")
	assert.Error(t, err)

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{"stub_a", "stub_b"}, ids)
	assert.Equal(t, "Stub stub_b", List()[1].Title)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	assert.Panics(t, func() {
		Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	})
}
