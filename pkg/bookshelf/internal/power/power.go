// Package power watches the handheld power button. A short press suspends
// the device and a long press shuts it down.
package power

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/holoplot/go-evdev"
)

// Action is what a completed press asks for.
type Action int

const (
	ActionNone Action = iota
	ActionSuspend
	ActionShutdown
)

func (a Action) String() string {
	switch a {
	case ActionSuspend:
		return "suspend"
	case ActionShutdown:
		return "shutdown"
	}
	return "none"
}

// Config describes the power button device and what to run for each press.
type Config struct {
	ButtonCode      evdev.EvCode
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	SuspendCommand  string
	ShutdownCommand string
}

// DefaultConfig returns the settings used on NextUI handhelds.
func DefaultConfig(devicePath string) Config {
	return Config{
		ButtonCode:      evdev.KEY_POWER,
		DevicePath:      devicePath,
		ShortPressMax:   2 * time.Second,
		CoolDownTime:    1 * time.Second,
		SuspendCommand:  "/mnt/SDCARD/.system/tg5040/bin/suspend",
		ShutdownCommand: "/sbin/poweroff",
	}
}

// Handler turns key events into suspend and shutdown actions.
type Handler struct {
	cfg        Config
	logger     *slog.Logger
	now        func() time.Time
	run        func(name string) error
	onShutdown func()

	pressed    bool
	pressedAt  time.Time
	lastAction time.Time
}

// NewHandler creates a Handler. onShutdown, if set, runs before the shutdown
// command so the application can stop drawing.
func NewHandler(cfg Config, logger *slog.Logger, onShutdown func()) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		run:        runCommand,
		onShutdown: onShutdown,
	}
}

func runCommand(name string) error {
	return exec.Command(name).Run()
}

// HandleKey feeds one key event. value is 1 on press, 0 on release and 2 on
// autorepeat. The action is returned on release.
func (h *Handler) HandleKey(code evdev.EvCode, value int32) Action {
	if code != h.cfg.ButtonCode {
		return ActionNone
	}

	now := h.now()
	switch value {
	case 1:
		if !h.pressed {
			h.pressed = true
			h.pressedAt = now
		}
		return ActionNone
	case 0:
		if !h.pressed {
			return ActionNone
		}
		h.pressed = false
	default:
		return ActionNone
	}

	if !h.lastAction.IsZero() && now.Sub(h.lastAction) < h.cfg.CoolDownTime {
		h.logger.Debug("Power button press ignored during cool down")
		return ActionNone
	}
	h.lastAction = now

	if now.Sub(h.pressedAt) <= h.cfg.ShortPressMax {
		return ActionSuspend
	}
	return ActionShutdown
}

// Perform runs the command for action.
func (h *Handler) Perform(action Action) error {
	switch action {
	case ActionSuspend:
		h.logger.Info("Suspending")
		if err := h.run(h.cfg.SuspendCommand); err != nil {
			return fmt.Errorf("power: suspend: %w", err)
		}
	case ActionShutdown:
		h.logger.Info("Shutting down")
		if h.onShutdown != nil {
			h.onShutdown()
		}
		if err := h.run(h.cfg.ShutdownCommand); err != nil {
			return fmt.Errorf("power: shutdown: %w", err)
		}
	}
	return nil
}

// Run reads the device until ctx is cancelled or the device fails.
func (h *Handler) Run(ctx context.Context) error {
	dev, err := evdev.Open(h.cfg.DevicePath)
	if err != nil {
		return fmt.Errorf("power: open %s: %w", h.cfg.DevicePath, err)
	}

	// Closing the device unblocks ReadOne.
	stop := context.AfterFunc(ctx, func() {
		_ = dev.Close()
	})
	defer func() {
		if stop() {
			_ = dev.Close()
		}
	}()

	h.logger.Debug("Watching power button", "device", h.cfg.DevicePath)

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("power: read: %w", err)
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}

		if action := h.HandleKey(ev.Code, ev.Value); action != ActionNone {
			if err := h.Perform(action); err != nil {
				h.logger.Error("Power action failed", "action", action.String(), "error", err)
			}
		}
	}
}
