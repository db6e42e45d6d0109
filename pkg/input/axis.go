package input

// discreteStep is the continuous scroll distance of one wheel click.
const discreteStep = 3.0

// amount returns the continuous scroll distance of v, derived from the step
// count when the device reports steps only.
func (v AxisValue) amount() float64 {
	switch {
	case v.HasAmount:
		return v.Amount
	case v.HasDiscrete:
		return v.Discrete * discreteStep
	}
	return 0
}

// overlayAmount is the value handed to interceptors, which prefer steps.
func (v AxisValue) overlayAmount() float64 {
	switch {
	case v.HasDiscrete:
		return v.Discrete
	case v.HasAmount:
		return v.Amount * discreteStep
	}
	return 0
}

func frameSource(s AxisSource) AxisSource {
	if s == AxisSourceWheelTilt {
		return AxisSourceWheel
	}
	return s
}

// NewAxisFrame builds the scroll frame for one axis event. Finger scrolling
// ends with an explicit stop on an axis whose amount is zero.
func NewAxisFrame(e PointerAxis) AxisFrame {
	source := frameSource(e.Source)
	return AxisFrame{
		Source:     source,
		Time:       e.Time,
		Horizontal: scrollAxis(e.Horizontal, source),
		Vertical:   scrollAxis(e.Vertical, source),
	}
}

func scrollAxis(v AxisValue, source AxisSource) ScrollAxis {
	amount := v.amount()
	if amount == 0 {
		return ScrollAxis{Stop: source == AxisSourceFinger}
	}

	axis := ScrollAxis{Value: amount, HasValue: true}
	if v.HasDiscrete {
		axis.Discrete = int32(v.Discrete)
		axis.HasDiscrete = true
	}
	return axis
}
