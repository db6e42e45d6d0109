package backend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/miketth/hyprinput/pkg/input"
)

var ErrMalformed = errors.New("malformed event")

// Unsupported is an event kind the input core does not handle, such as
// touch or tablet input.
type Unsupported struct {
	Kind   string
	Device string
}

func (e Unsupported) DeviceID() string { return e.Device }

// ParseEvent decodes one line of the form "kind>>field,field,...".
func ParseEvent(line string) (input.Event, error) {
	kind, data, ok := strings.Cut(line, ">>")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	fields := strings.Split(data, ",")

	var ev input.Event
	var err error
	switch kind {
	case "deviceadded":
		ev, err = parseDeviceAdded(fields)
	case "deviceremoved":
		ev, err = parseDeviceRemoved(fields)
	case "key":
		ev, err = parseKey(fields)
	case "motion":
		ev, err = parseMotion(fields)
	case "motionabs":
		ev, err = parseMotionAbsolute(fields)
	case "button":
		ev, err = parseButton(fields)
	case "axis":
		ev, err = parseAxis(fields)
	default:
		return Unsupported{Kind: kind, Device: fields[0]}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s event %q: %w", kind, data, err)
	}
	return ev, nil
}

func wantFields(fields []string, n int) error {
	if len(fields) < n {
		return fmt.Errorf("%w: want %d fields, got %d", ErrMalformed, n, len(fields))
	}
	return nil
}

func parseDeviceAdded(fields []string) (input.Event, error) {
	if err := wantFields(fields, 2); err != nil {
		return nil, err
	}

	dev := input.Device{ID: fields[0]}
	if len(fields) > 2 {
		dev.Name = strings.Join(fields[2:], ",")
	}
	if fields[1] != "" {
		for _, c := range strings.Split(fields[1], "+") {
			capability, err := parseCapability(c)
			if err != nil {
				return nil, err
			}
			dev.Capabilities = append(dev.Capabilities, capability)
		}
	}
	return input.DeviceAdded{Device: dev}, nil
}

func parseCapability(s string) (input.Capability, error) {
	for _, c := range []input.Capability{input.CapabilityKeyboard, input.CapabilityPointer, input.CapabilityTouch, input.CapabilityTablet} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown capability %q", ErrMalformed, s)
}

func parseDeviceRemoved(fields []string) (input.Event, error) {
	if fields[0] == "" {
		return nil, fmt.Errorf("%w: missing device", ErrMalformed)
	}
	return input.DeviceRemoved{Device: input.Device{ID: fields[0]}}, nil
}

func parseKey(fields []string) (input.Event, error) {
	if err := wantFields(fields, 4); err != nil {
		return nil, err
	}
	time, err := parseTime(fields[1])
	if err != nil {
		return nil, err
	}
	code, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("keycode: %w", err)
	}
	pressed, err := parsePressed(fields[3])
	if err != nil {
		return nil, err
	}

	state := input.KeyReleased
	if pressed {
		state = input.KeyPressed
	}
	return input.KeyboardKey{Device: fields[0], Time: time, Keycode: uint32(code), State: state}, nil
}

func parseMotion(fields []string) (input.Event, error) {
	if err := wantFields(fields, 4); err != nil {
		return nil, err
	}
	time, err := parseTime(fields[1])
	if err != nil {
		return nil, err
	}
	p, err := parsePoint(fields[2], fields[3])
	if err != nil {
		return nil, err
	}
	return input.PointerMotion{Device: fields[0], Time: time, Delta: p}, nil
}

func parseMotionAbsolute(fields []string) (input.Event, error) {
	if err := wantFields(fields, 4); err != nil {
		return nil, err
	}
	time, err := parseTime(fields[1])
	if err != nil {
		return nil, err
	}
	p, err := parsePoint(fields[2], fields[3])
	if err != nil {
		return nil, err
	}
	return input.PointerMotionAbsolute{Device: fields[0], Time: time, X: p.X, Y: p.Y}, nil
}

func parseButton(fields []string) (input.Event, error) {
	if err := wantFields(fields, 4); err != nil {
		return nil, err
	}
	time, err := parseTime(fields[1])
	if err != nil {
		return nil, err
	}
	button, err := strconv.ParseUint(fields[2], 0, 32)
	if err != nil {
		return nil, fmt.Errorf("button: %w", err)
	}
	pressed, err := parsePressed(fields[3])
	if err != nil {
		return nil, err
	}

	state := input.ButtonReleased
	if pressed {
		state = input.ButtonPressed
	}
	return input.PointerButton{Device: fields[0], Time: time, Button: uint32(button), State: state}, nil
}

func parseAxis(fields []string) (input.Event, error) {
	if err := wantFields(fields, 7); err != nil {
		return nil, err
	}
	time, err := parseTime(fields[1])
	if err != nil {
		return nil, err
	}
	source, err := parseAxisSource(fields[2])
	if err != nil {
		return nil, err
	}

	var h, v input.AxisValue
	if h.Amount, h.HasAmount, err = optionalFloat(fields[3]); err != nil {
		return nil, err
	}
	if v.Amount, v.HasAmount, err = optionalFloat(fields[4]); err != nil {
		return nil, err
	}
	if h.Discrete, h.HasDiscrete, err = optionalFloat(fields[5]); err != nil {
		return nil, err
	}
	if v.Discrete, v.HasDiscrete, err = optionalFloat(fields[6]); err != nil {
		return nil, err
	}

	return input.PointerAxis{Device: fields[0], Time: time, Source: source, Horizontal: h, Vertical: v}, nil
}

func parseAxisSource(s string) (input.AxisSource, error) {
	for _, src := range []input.AxisSource{input.AxisSourceWheel, input.AxisSourceFinger, input.AxisSourceContinuous, input.AxisSourceWheelTilt} {
		if src.String() == s {
			return src, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown axis source %q", ErrMalformed, s)
}

func parseTime(s string) (uint32, error) {
	t, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("time: %w", err)
	}
	return uint32(t), nil
}

func parsePressed(s string) (bool, error) {
	switch s {
	case "pressed":
		return true, nil
	case "released":
		return false, nil
	}
	return false, fmt.Errorf("%w: unknown state %q", ErrMalformed, s)
}

func parsePoint(x, y string) (input.Point, error) {
	px, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return input.Point{}, fmt.Errorf("x: %w", err)
	}
	py, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return input.Point{}, fmt.Errorf("y: %w", err)
	}
	return input.Point{X: px, Y: py}, nil
}

func optionalFloat(s string) (float64, bool, error) {
	if s == "-" || s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("axis value: %w", err)
	}
	return f, true, nil
}
