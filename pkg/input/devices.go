package input

// tracked lists the capabilities a seat builds objects for.
var tracked = []Capability{CapabilityKeyboard, CapabilityPointer}

// Devices records which devices are attached to a seat and counts how many
// of them provide each capability.
type Devices struct {
	devices map[string][]Capability
	refs    map[Capability]int
}

func NewDevices() *Devices {
	return &Devices{
		devices: make(map[string][]Capability),
		refs:    make(map[Capability]int),
	}
}

// Add registers dev. It returns the capabilities that no device provided
// before, and the ones no device provides any more. The latter is only
// non-empty when a known device is re-added with fewer capabilities, its
// entry is replaced.
func (d *Devices) Add(dev Device) (activated, deactivated []Capability) {
	wasActive := make(map[Capability]bool, len(tracked))
	for _, c := range tracked {
		wasActive[c] = d.Active(c)
	}
	if _, ok := d.devices[dev.ID]; ok {
		d.release(dev.ID)
	}

	var caps []Capability
	for _, c := range tracked {
		if !dev.HasCapability(c) {
			continue
		}
		caps = append(caps, c)
		d.refs[c]++
	}
	d.devices[dev.ID] = caps

	for _, c := range tracked {
		switch {
		case !wasActive[c] && d.Active(c):
			activated = append(activated, c)
		case wasActive[c] && !d.Active(c):
			deactivated = append(deactivated, c)
		}
	}
	return activated, deactivated
}

// Remove unregisters dev and returns the capabilities no remaining device
// provides. Unknown devices are ignored.
func (d *Devices) Remove(dev Device) []Capability {
	if _, ok := d.devices[dev.ID]; !ok {
		return nil
	}
	return d.release(dev.ID)
}

func (d *Devices) release(id string) []Capability {
	var deactivated []Capability
	for _, c := range d.devices[id] {
		d.refs[c]--
		if d.refs[c] == 0 {
			delete(d.refs, c)
			deactivated = append(deactivated, c)
		}
	}
	delete(d.devices, id)
	return deactivated
}

func (d *Devices) Has(id string) bool {
	_, ok := d.devices[id]
	return ok
}

// Provides reports whether the device registered as id provides c.
func (d *Devices) Provides(id string, c Capability) bool {
	for _, have := range d.devices[id] {
		if have == c {
			return true
		}
	}
	return false
}

func (d *Devices) Active(c Capability) bool {
	return d.refs[c] > 0
}

func (d *Devices) Len() int {
	return len(d.devices)
}
