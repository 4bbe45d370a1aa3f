package color

// Brighten returns c with its HSV value raised by amount, clamped to [0, 1].
// Hue and saturation are kept, so brightening black yields a gray.
func Brighten(c RGB, amount float64) RGB {
	hsv := c.HSV()
	return HSVToRGB(hsv.H, hsv.S, Clamp(hsv.V+amount, 0, 1))
}

// Darken returns c with its HSV value lowered by amount.
func Darken(c RGB, amount float64) RGB {
	return Brighten(c, -amount)
}
