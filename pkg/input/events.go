package input

// Event is a raw device event delivered by a backend.
type Event interface {
	DeviceID() string
}

type DeviceAdded struct {
	Device Device
}

type DeviceRemoved struct {
	Device Device
}

type KeyboardKey struct {
	Device  string
	Time    uint32
	Keycode uint32
	State   KeyState
}

type PointerMotion struct {
	Device string
	Time   uint32
	Delta  Point
}

// PointerMotionAbsolute carries a position normalized to [0, 1] on both
// axes of the device's mapped output.
type PointerMotionAbsolute struct {
	Device string
	Time   uint32
	X, Y   float64
}

type PointerButton struct {
	Device string
	Time   uint32
	Button uint32
	State  ButtonState
}

// AxisValue is what a device reports for one scroll axis. Devices provide
// a continuous amount, a discrete step count, both, or neither.
type AxisValue struct {
	Amount      float64
	HasAmount   bool
	Discrete    float64
	HasDiscrete bool
}

type PointerAxis struct {
	Device     string
	Time       uint32
	Source     AxisSource
	Horizontal AxisValue
	Vertical   AxisValue
}

func (e DeviceAdded) DeviceID() string           { return e.Device.ID }
func (e DeviceRemoved) DeviceID() string         { return e.Device.ID }
func (e KeyboardKey) DeviceID() string           { return e.Device }
func (e PointerMotion) DeviceID() string         { return e.Device }
func (e PointerMotionAbsolute) DeviceID() string { return e.Device }
func (e PointerButton) DeviceID() string         { return e.Device }
func (e PointerAxis) DeviceID() string           { return e.Device }
