package headless

import (
	"image"

	"codeberg.org/miketth/hyprinput/pkg/input"
	"codeberg.org/miketth/hyprinput/pkg/keysym"
	"go.uber.org/zap"
)

// Overlay is a debug overlay stand-in. It consumes the input classes it is
// told to want and logs what it gets.
type Overlay struct {
	log *zap.SugaredLogger

	Keyboard bool
	Pointer  bool

	Keys    []input.KeyHandle
	Buttons []uint32
	Scroll  [][2]float64
	Cursor  image.Point
	Devices map[string]input.Device
}

func NewOverlay(log *zap.SugaredLogger) *Overlay {
	return &Overlay{log: log, Devices: make(map[string]input.Device)}
}

func (o *Overlay) WantsKeyboard() bool { return o.Keyboard }
func (o *Overlay) WantsPointer() bool  { return o.Pointer }

func (o *Overlay) HandleKeyboard(key input.KeyHandle, pressed bool, mods keysym.Modifiers) {
	o.Keys = append(o.Keys, key)
	o.log.Debugw("overlay key", "keycode", key.Keycode, "pressed", pressed, "modifiers", mods.String())
}

func (o *Overlay) HandlePointerButton(button uint32, pressed bool, mods keysym.Modifiers) {
	o.Buttons = append(o.Buttons, button)
	o.log.Debugw("overlay button", "button", button, "pressed", pressed, "modifiers", mods.String())
}

func (o *Overlay) HandlePointerAxis(horizontal, vertical float64) {
	o.Scroll = append(o.Scroll, [2]float64{horizontal, vertical})
	o.log.Debugw("overlay scroll", "horizontal", horizontal, "vertical", vertical)
}

func (o *Overlay) HandlePointerMotion(p image.Point) {
	o.Cursor = p
}

func (o *Overlay) HandleDeviceAdded(dev input.Device) {
	o.Devices[dev.ID] = dev
}

func (o *Overlay) HandleDeviceRemoved(dev input.Device) {
	delete(o.Devices, dev.ID)
}

// Clipboard tracks which client holds data device focus on each seat.
type Clipboard struct {
	focus map[*input.Seat]string
}

func NewClipboard() *Clipboard {
	return &Clipboard{focus: make(map[*input.Seat]string)}
}

func (c *Clipboard) SetFocus(seat *input.Seat, client string) {
	c.focus[seat] = client
}

func (c *Clipboard) Focus(seat *input.Seat) string {
	return c.focus[seat]
}
