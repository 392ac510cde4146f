package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDirectionalInputRepeat(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := newDirectionalInput(300*time.Millisecond, 50*time.Millisecond, clock.now)

	assert.Equal(t, DirectionNone, d.Update())

	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	assert.True(t, d.IsHeld())

	clock.advance(299 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update(), "before the initial delay")

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionDown, d.Update(), "first repeat after the delay")

	clock.advance(49 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionDown, d.Update(), "later repeats use the interval")

	d.SetHeld(constants.VirtualButtonDown, false)
	clock.advance(time.Second)
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalInputIgnoresOtherButtons(t *testing.T) {
	d := NewDirectionalInput()

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, d.IsHeld())
}

func TestDirectionalInputPriority(t *testing.T) {
	d := NewDirectionalInput()
	d.SetHeld(constants.VirtualButtonRight, true)
	d.SetHeld(constants.VirtualButtonLeft, true)
	assert.Equal(t, DirectionLeft, d.HeldDirection())

	d.SetHeld(constants.VirtualButtonUp, true)
	assert.Equal(t, DirectionUp, d.HeldDirection())

	d.Reset()
	assert.Equal(t, DirectionNone, d.HeldDirection())
}

func TestDirectionButtons(t *testing.T) {
	for _, dir := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		assert.True(t, dir.VirtualButton().IsDirectional(), dir.String())
	}
	assert.Equal(t, constants.VirtualButtonUnassigned, DirectionNone.VirtualButton())
	assert.Empty(t, DirectionNone.String())
}
