package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Scaled multiplies every side by factor.
func (p Padding) Scaled(factor float32) Padding {
	return Padding{
		Top:    int32(float32(p.Top) * factor),
		Right:  int32(float32(p.Right) * factor),
		Bottom: int32(float32(p.Bottom) * factor),
		Left:   int32(float32(p.Left) * factor),
	}
}

// ContentWidth is the width left inside the padding.
func (p Padding) ContentWidth(total int32) int32 {
	return total - p.Left - p.Right
}
