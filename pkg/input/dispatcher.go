package input

import (
	"codeberg.org/miketth/hyprinput/pkg/keysym"
	"go.uber.org/zap"
)

type Options struct {
	Shell      Shell
	Sink       Sink
	Spawner    Spawner
	DataDevice DataDevice

	Bindings []Binding
	Keyboard KeyboardConfig
	Keymap   func(KeyboardConfig) Keymap

	// Socket is the display socket name handed to spawned commands.
	Socket string

	// Interceptors form the debug overlay, tried in order.
	Interceptors []Interceptor

	// OnAction observes every executed action. It must not block.
	OnAction func(seat *Seat, a Action)
}

// Dispatcher routes raw device events to seats, bindings and clients. It is
// not safe for concurrent use, events are processed one at a time.
type Dispatcher struct {
	log  *zap.SugaredLogger
	opts Options

	seats      []*Seat
	lastActive *Seat
	serials    Serials

	overlayActive bool
	shouldStop    bool
}

func NewDispatcher(opts Options, log *zap.SugaredLogger) *Dispatcher {
	if opts.Keymap == nil {
		opts.Keymap = func(KeyboardConfig) Keymap {
			return keysym.NewUSKeymap()
		}
	}

	return &Dispatcher{
		log:  log,
		opts: opts,
	}
}

// AddSeat creates a seat. The first seat is the primary one and receives
// new devices until SetLastActive says otherwise.
func (d *Dispatcher) AddSeat(name string) *Seat {
	seat := newSeat(name, &d.serials)
	d.seats = append(d.seats, seat)
	if d.lastActive == nil {
		d.lastActive = seat
	}
	return seat
}

func (d *Dispatcher) SetLastActive(seat *Seat) {
	d.lastActive = seat
}

func (d *Dispatcher) Seats() []*Seat {
	return d.seats
}

func (d *Dispatcher) ShouldStop() bool {
	return d.shouldStop
}

func (d *Dispatcher) OverlayActive() bool {
	return d.overlayActive
}

func (d *Dispatcher) isPrimary(seat *Seat) bool {
	return len(d.seats) > 0 && d.seats[0] == seat
}

func (d *Dispatcher) seatFor(device string) (*Seat, bool) {
	for _, seat := range d.seats {
		if seat.devices.Has(device) {
			return seat, true
		}
	}
	return nil, false
}

func (d *Dispatcher) Process(ev Event) {
	switch e := ev.(type) {
	case DeviceAdded:
		recordEvent("device_added")
		d.deviceAdded(e.Device)
	case DeviceRemoved:
		recordEvent("device_removed")
		d.deviceRemoved(e.Device)
	case KeyboardKey:
		recordEvent("key")
		d.keyboardKey(e)
	case PointerMotion:
		recordEvent("motion")
		d.pointerMotion(e)
	case PointerMotionAbsolute:
		recordEvent("motion_absolute")
		d.pointerMotionAbsolute(e)
	case PointerButton:
		recordEvent("button")
		d.pointerButton(e)
	case PointerAxis:
		recordEvent("axis")
		d.pointerAxis(e)
	default:
		d.log.Debugw("ignoring unsupported input event", "device", ev.DeviceID())
	}
}

func (d *Dispatcher) deviceAdded(dev Device) {
	seat := d.lastActive
	if seat == nil {
		d.log.Warnw("no seat to attach device to", "device", dev.ID)
		return
	}

	activated, deactivated := seat.devices.Add(dev)
	d.dropCapabilities(seat, deactivated)
	for _, c := range activated {
		switch c {
		case CapabilityKeyboard:
			d.addKeyboard(seat)
		case CapabilityPointer:
			d.addPointer(seat)
		}
	}
	d.log.Infow("device added", "seat", seat.name, "device", dev.ID, "name", dev.Name)

	for _, ic := range d.opts.Interceptors {
		ic.HandleDeviceAdded(dev)
	}
}

func (d *Dispatcher) addKeyboard(seat *Seat) {
	cfg := d.opts.Keyboard
	seat.keyboard = newKeyboard(seat, d.opts.Sink, cfg, d.opts.Keymap(cfg), d.keyboardFocusChanged)
	d.pinFirstOutput(seat)
	d.log.Debugw("keyboard capability added", "seat", seat.name, "layout", cfg.Layout)
}

func (d *Dispatcher) keyboardFocusChanged(seat *Seat, focus Surface) {
	if d.opts.DataDevice == nil {
		return
	}
	var client string
	if focus != nil {
		client = focus.Client()
	}
	d.opts.DataDevice.SetFocus(seat, client)
}

func (d *Dispatcher) addPointer(seat *Seat) {
	seat.pointer = newPointer(seat, d.opts.Sink, func(status CursorStatus) {
		seat.cursor = status
	})
	d.pinFirstOutput(seat)
	d.log.Debugw("pointer capability added", "seat", seat.name)
}

func (d *Dispatcher) pinFirstOutput(seat *Seat) {
	if outputs := d.opts.Shell.Outputs(); len(outputs) > 0 {
		seat.pinOutput(outputs[0])
	}
}

func (d *Dispatcher) deviceRemoved(dev Device) {
	seat, ok := d.seatFor(dev.ID)
	if !ok {
		d.log.Debugw("removed device not attached to any seat", "device", dev.ID)
		return
	}

	d.dropCapabilities(seat, seat.devices.Remove(dev))
	d.log.Infow("device removed", "seat", seat.name, "device", dev.ID)

	for _, ic := range d.opts.Interceptors {
		ic.HandleDeviceRemoved(dev)
	}
}

func (d *Dispatcher) dropCapabilities(seat *Seat, caps []Capability) {
	for _, c := range caps {
		switch c {
		case CapabilityKeyboard:
			seat.keyboard = nil
		case CapabilityPointer:
			seat.pointer = nil
		}
		d.log.Debugw("capability removed", "seat", seat.name, "capability", c)
	}
}

// seatProviding returns the seat device is attached to, as long as the
// device provides c. Events from devices lacking c are dropped.
func (d *Dispatcher) seatProviding(device string, c Capability) (*Seat, bool) {
	seat, ok := d.seatFor(device)
	if !ok {
		return nil, false
	}
	if !seat.devices.Provides(device, c) {
		d.log.Debugw("dropping event from device without capability", "seat", seat.name, "device", device, "capability", c)
		return nil, false
	}
	return seat, true
}

func (d *Dispatcher) keyboardKey(e KeyboardKey) {
	seat, ok := d.seatProviding(e.Device, CapabilityKeyboard)
	if !ok {
		return
	}
	d.log.Debugw("key", "seat", seat.name, "keycode", e.Keycode, "state", e.State)

	serial := d.serials.Next()
	action, ok := seat.mustKeyboard().Input(e.Keycode, e.State, serial, e.Time, func(mods keysym.Modifiers, key KeyHandle) FilterResult {
		return d.filterKey(seat, e.State, mods, key)
	})
	if ok {
		d.execute(seat, action)
	}
}

func (d *Dispatcher) filterKey(seat *Seat, state KeyState, mods keysym.Modifiers, key KeyHandle) FilterResult {
	if state == KeyReleased && seat.suppressed.Filter(key.Keycode) {
		recordIntercept()
		return FilterResult{Intercept: true}
	}

	if d.overlayActive && d.isPrimary(seat) {
		for _, ic := range d.opts.Interceptors {
			if !ic.WantsKeyboard() {
				continue
			}
			ic.HandleKeyboard(key, state == KeyPressed, mods)
			if state == KeyPressed {
				seat.suppressed.Add(key.Keycode)
			}
			recordIntercept()
			return FilterResult{Intercept: true}
		}
	}

	if state == KeyPressed {
		if action, ok := ResolveBinding(mods, key, d.opts.Bindings); ok {
			seat.suppressed.Add(key.Keycode)
			recordIntercept()
			return FilterResult{Intercept: true, Action: &action}
		}
	}

	return FilterResult{}
}

func (d *Dispatcher) pointerMotion(e PointerMotion) {
	seat, ok := d.seatProviding(e.Device, CapabilityPointer)
	if !ok {
		return
	}
	ptr := seat.mustPointer()

	outputs := d.opts.Shell.Outputs()
	current := seat.ActiveOutput(outputs)
	if current == nil {
		return
	}

	position := ptr.Location().Add(e.Delta)
	output := current
	for _, o := range outputs {
		if position.In(o.Geometry) {
			output = o
			break
		}
	}
	if output != current {
		seat.SetActiveOutput(output)
		d.log.Debugw("pointer changed output", "seat", seat.name, "output", output.Name)
	}
	position = position.Clamp(output.Geometry)

	d.motion(seat, ptr, output, position, d.serials.Next(), e.Time)
}

func (d *Dispatcher) pointerMotionAbsolute(e PointerMotionAbsolute) {
	seat, ok := d.seatProviding(e.Device, CapabilityPointer)
	if !ok {
		return
	}
	ptr := seat.mustPointer()

	output := seat.ActiveOutput(d.opts.Shell.Outputs())
	if output == nil {
		return
	}
	geo := output.Geometry
	position := PointFrom(geo.Min).Add(Point{
		X: e.X * float64(geo.Dx()),
		Y: e.Y * float64(geo.Dy()),
	})

	d.motion(seat, ptr, output, position, d.serials.Next(), e.Time)
}

func (d *Dispatcher) motion(seat *Seat, ptr *Pointer, output *Output, position Point, serial Serial, time uint32) {
	relative := d.opts.Shell.SpaceRelative(position, output)
	ws := d.opts.Shell.ActiveWorkspace(output)

	var under *Hit
	if hit, ok := SurfaceUnder(position, relative, output, d.opts.Shell.Layers(output), ws); ok {
		under = &hit
		if ws != nil {
			ws.ApplyPendingMove(hit.Surface)
		}
	}
	ptr.Motion(position, under, serial, time)

	if d.isPrimary(seat) {
		for _, ic := range d.opts.Interceptors {
			ic.HandlePointerMotion(position.Round())
		}
	}
}

func (d *Dispatcher) pointerButton(e PointerButton) {
	seat, ok := d.seatProviding(e.Device, CapabilityPointer)
	if !ok {
		return
	}
	ptr := seat.mustPointer()

	if ic, ok := d.pointerInterceptor(seat); ok {
		ic.HandlePointerButton(e.Button, e.State == ButtonPressed, d.modifiers(seat))
		return
	}

	serial := d.serials.Next()
	if e.State == ButtonPressed && !ptr.Grabbed() {
		d.focusUnderPointer(seat, ptr)
	}
	ptr.Button(e.Button, e.State, serial, e.Time)
}

// focusUnderPointer gives keyboard focus to the focusable surface under the
// pointer. Focus is left alone when there is none.
func (d *Dispatcher) focusUnderPointer(seat *Seat, ptr *Pointer) {
	output := seat.ActiveOutput(d.opts.Shell.Outputs())
	if output == nil {
		return
	}

	position := ptr.Location()
	relative := d.opts.Shell.SpaceRelative(position, output)
	target, ok := FocusTarget(position, relative, output, d.opts.Shell.Layers(output), d.opts.Shell.ActiveWorkspace(output))
	if !ok {
		return
	}

	if kbd := seat.Keyboard(); kbd != nil {
		kbd.SetFocus(target)
	}
	d.opts.Shell.Focus(seat, output, target)
}

func (d *Dispatcher) pointerAxis(e PointerAxis) {
	seat, ok := d.seatProviding(e.Device, CapabilityPointer)
	if !ok {
		return
	}
	ptr := seat.mustPointer()

	if ic, ok := d.pointerInterceptor(seat); ok {
		ic.HandlePointerAxis(e.Horizontal.overlayAmount(), e.Vertical.overlayAmount())
		return
	}

	ptr.Axis(NewAxisFrame(e))
}

func (d *Dispatcher) pointerInterceptor(seat *Seat) (Interceptor, bool) {
	if !d.overlayActive || !d.isPrimary(seat) {
		return nil, false
	}
	for _, ic := range d.opts.Interceptors {
		if ic.WantsPointer() {
			return ic, true
		}
	}
	return nil, false
}

func (d *Dispatcher) modifiers(seat *Seat) keysym.Modifiers {
	if kbd := seat.Keyboard(); kbd != nil {
		return kbd.Modifiers()
	}
	return 0
}
