package gamemath

// Remap linearly maps v from [inMin, inMax] onto [outMin, outMax]. Values
// outside the input range extrapolate.
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// SlopeFloorY returns the floor height of a slope tile at centerX.
// An up-right slope rises from the bottom-left corner to the top-right one;
// an up-left slope mirrors it and sits one pixel higher so both directions
// settle onto the same pixel row at the peak.
func SlopeFloorY(box Rect, centerX int, upRight bool) int {
	left, right := float64(box.Left()), float64(box.Right())
	bottom, top := float64(box.Bottom()), float64(box.Top())
	if upRight {
		return int(Remap(float64(centerX), left, right, bottom, top))
	}
	return int(Remap(float64(centerX), right, left, bottom, top)) - 1
}
