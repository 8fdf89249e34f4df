package board

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Darken subtracts amount from every channel, stopping at zero.
func (c Color) Darken(amount uint8) Color {
	return Color{
		R: sub(c.R, amount),
		G: sub(c.G, amount),
		B: sub(c.B, amount),
	}
}

func sub(v, amount uint8) uint8 {
	if v < amount {
		return 0
	}
	return v - amount
}
