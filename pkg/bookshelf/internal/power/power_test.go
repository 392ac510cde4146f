package power

import (
	"errors"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestHandler() (*Handler, *fakeClock, *[]string) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	var ran []string

	h := NewHandler(DefaultConfig("/dev/input/event1"), nil, nil)
	h.now = clock.now
	h.run = func(name string) error {
		ran = append(ran, name)
		return nil
	}
	return h, clock, &ran
}

func press(h *Handler, clock *fakeClock, held time.Duration) Action {
	h.HandleKey(evdev.KEY_POWER, 1)
	clock.advance(held)
	return h.HandleKey(evdev.KEY_POWER, 0)
}

func TestShortPressSuspends(t *testing.T) {
	h, clock, _ := newTestHandler()
	assert.Equal(t, ActionSuspend, press(h, clock, 300*time.Millisecond))
}

func TestLongPressShutsDown(t *testing.T) {
	h, clock, _ := newTestHandler()
	assert.Equal(t, ActionShutdown, press(h, clock, 3*time.Second))
}

func TestAutorepeatDoesNotResetPress(t *testing.T) {
	h, clock, _ := newTestHandler()

	h.HandleKey(evdev.KEY_POWER, 1)
	clock.advance(time.Second)
	assert.Equal(t, ActionNone, h.HandleKey(evdev.KEY_POWER, 2))
	h.HandleKey(evdev.KEY_POWER, 1)
	clock.advance(1500 * time.Millisecond)

	assert.Equal(t, ActionShutdown, h.HandleKey(evdev.KEY_POWER, 0))
}

func TestCoolDown(t *testing.T) {
	h, clock, _ := newTestHandler()

	require.Equal(t, ActionSuspend, press(h, clock, 100*time.Millisecond))
	assert.Equal(t, ActionNone, press(h, clock, 100*time.Millisecond))

	clock.advance(time.Second)
	assert.Equal(t, ActionSuspend, press(h, clock, 100*time.Millisecond))
}

func TestOtherKeysIgnored(t *testing.T) {
	h, _, _ := newTestHandler()

	assert.Equal(t, ActionNone, h.HandleKey(evdev.KEY_A, 1))
	assert.Equal(t, ActionNone, h.HandleKey(evdev.KEY_A, 0))
	assert.Equal(t, ActionNone, h.HandleKey(evdev.KEY_POWER, 0), "release without press")
}

func TestPerform(t *testing.T) {
	h, _, ran := newTestHandler()
	stopped := false
	h.onShutdown = func() { stopped = true }

	require.NoError(t, h.Perform(ActionSuspend))
	assert.False(t, stopped)
	require.NoError(t, h.Perform(ActionShutdown))
	assert.True(t, stopped)
	require.NoError(t, h.Perform(ActionNone))

	assert.Equal(t, []string{"/mnt/SDCARD/.system/tg5040/bin/suspend", "/sbin/poweroff"}, *ran)
}

func TestPerformWrapsErrors(t *testing.T) {
	h, _, _ := newTestHandler()
	boom := errors.New("boom")
	h.run = func(string) error { return boom }

	err := h.Perform(ActionSuspend)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "suspend")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "suspend", ActionSuspend.String())
	assert.Equal(t, "shutdown", ActionShutdown.String())
	assert.Equal(t, "none", ActionNone.String())
}
