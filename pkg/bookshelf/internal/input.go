package internal

import (
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a physical input translated to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// Stick deflection past which an axis counts as a d-pad press.
const axisThreshold = 16000

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_l:         constants.VirtualButtonL1,
	sdl.K_r:         constants.VirtualButtonR1,
	sdl.K_s:         constants.VirtualButtonStart,
	sdl.K_SPACE:     constants.VirtualButtonSelect,
	sdl.K_ESCAPE:    constants.VirtualButtonMenu,
}

// SDL reports controller buttons by position. Handheld labels follow the
// Nintendo layout, so the face buttons are swapped unless flipped.
var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

var flippedFaceButtons = map[constants.VirtualButton]constants.VirtualButton{
	constants.VirtualButtonA: constants.VirtualButtonB,
	constants.VirtualButtonB: constants.VirtualButtonA,
	constants.VirtualButtonX: constants.VirtualButtonY,
	constants.VirtualButtonY: constants.VirtualButtonX,
}

var hatMapping = map[uint8]constants.VirtualButton{
	sdl.HAT_UP:    constants.VirtualButtonUp,
	sdl.HAT_DOWN:  constants.VirtualButtonDown,
	sdl.HAT_LEFT:  constants.VirtualButtonLeft,
	sdl.HAT_RIGHT: constants.VirtualButtonRight,
}

// InputProcessor turns SDL events into virtual button events.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController

	// Held state of stick and hat directions, used to emit releases.
	axisHeld map[uint8]constants.VirtualButton
	hatHeld  constants.VirtualButton
}

var (
	processor       *InputProcessor
	flipFaceButtons bool
)

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B).
// Call before Init.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

// InitInputProcessor opens every connected game controller.
func InitInputProcessor() {
	processor = &InputProcessor{
		flipFaceButtons: flipFaceButtons,
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
		axisHeld:        make(map[uint8]constants.VirtualButton),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		processor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	return processor
}

func (ip *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		logging.GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}

	id := controller.Joystick().InstanceID()
	ip.controllers[id] = controller
	logging.GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

func (ip *InputProcessor) closeController(id sdl.JoystickID) {
	if controller, ok := ip.controllers[id]; ok {
		controller.Close()
		delete(ip.controllers, id)
	}
}

// CloseAllControllers releases every open controller.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id := range processor.controllers {
		processor.closeController(id)
	}
}

// ProcessSDLEvent translates event, or returns nil when it carries no
// button change.
func (ip *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		if ip.flipFaceButtons {
			if flipped, ok := flippedFaceButtons[button]; ok {
				button = flipped
			}
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerAxisEvent:
		return ip.processAxis(e.Axis, e.Value)

	case *sdl.JoyHatEvent:
		// Game controllers report the d-pad as buttons already.
		if _, ok := ip.controllers[e.Which]; ok {
			return nil
		}
		return ip.processHat(e.Value)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			ip.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			ip.closeController(e.Which)
		}
	}

	return nil
}

func (ip *InputProcessor) processAxis(axis uint8, value int16) *Event {
	var negative, positive constants.VirtualButton
	switch sdl.GameControllerAxis(axis) {
	case sdl.CONTROLLER_AXIS_LEFTX:
		negative, positive = constants.VirtualButtonLeft, constants.VirtualButtonRight
	case sdl.CONTROLLER_AXIS_LEFTY:
		negative, positive = constants.VirtualButtonUp, constants.VirtualButtonDown
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		negative, positive = constants.VirtualButtonUnassigned, constants.VirtualButtonL2
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		negative, positive = constants.VirtualButtonUnassigned, constants.VirtualButtonR2
	default:
		return nil
	}

	next := constants.VirtualButtonUnassigned
	switch {
	case value <= -axisThreshold:
		next = negative
	case value >= axisThreshold:
		next = positive
	}

	held := ip.axisHeld[axis]
	if next == held {
		return nil
	}

	if next == constants.VirtualButtonUnassigned {
		delete(ip.axisHeld, axis)
		return &Event{Button: held, Pressed: false}
	}

	// Swinging straight to the opposite side replaces the held direction.
	ip.axisHeld[axis] = next
	return &Event{Button: next, Pressed: true}
}

func (ip *InputProcessor) processHat(value uint8) *Event {
	next := hatMapping[value]
	if next == ip.hatHeld {
		return nil
	}

	held := ip.hatHeld
	ip.hatHeld = next
	if next == constants.VirtualButtonUnassigned {
		return &Event{Button: held, Pressed: false}
	}
	return &Event{Button: next, Pressed: true}
}
