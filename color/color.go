// Package color provides the fixed 4-byte color value exchanged with the
// rendering and serialization collaborators.
//
// The packed 32-bit representation is the one bit-exact compatibility
// surface of the core. Its layout is red in the low byte, then green, then
// blue, with the alpha channel stored inverted (255-alpha) in the high
// byte; [RgbaColor.ToPackedInt] and [FromPackedInt] round-trip exactly and
// must never change.
package color

import stdcolor "image/color"

// RgbaColor is a color with 8-bit red, green, blue and alpha channels.
type RgbaColor struct {
	Red, Green, Blue, Alpha uint8
}

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) RgbaColor {
	return RgbaColor{Red: r, Green: g, Blue: b, Alpha: 255}
}

// RGBA creates a color from 8-bit channels.
func RGBA(r, g, b, a uint8) RgbaColor {
	return RgbaColor{Red: r, Green: g, Blue: b, Alpha: a}
}

// RGBf creates an opaque color from float channels in [0, 1].
func RGBf(r, g, b float64) RgbaColor {
	return RGBAf(r, g, b, 1)
}

// RGBAf creates a color from float channels in [0, 1].
// The 255.1 factor makes sure a channel at exactly 1.0 lands on 255.
func RGBAf(r, g, b, a float64) RgbaColor {
	return RgbaColor{
		Red:   uint8(255.1 * r),
		Green: uint8(255.1 * g),
		Blue:  uint8(255.1 * b),
		Alpha: uint8(255.1 * a),
	}
}

// RedF returns the red channel as a float in [0, 1].
func (c RgbaColor) RedF() float64 { return float64(c.Red) / 255 }

// GreenF returns the green channel as a float in [0, 1].
func (c RgbaColor) GreenF() float64 { return float64(c.Green) / 255 }

// BlueF returns the blue channel as a float in [0, 1].
func (c RgbaColor) BlueF() float64 { return float64(c.Blue) / 255 }

// AlphaF returns the alpha channel as a float in [0, 1].
func (c RgbaColor) AlphaF() float64 { return float64(c.Alpha) / 255 }

// Equals reports exact channel equality.
func (c RgbaColor) Equals(d RgbaColor) bool {
	return c == d
}

// ToPackedInt packs the color into its 32-bit wire form: red | green<<8 |
// blue<<16 | (255-alpha)<<24.
func (c RgbaColor) ToPackedInt() uint32 {
	return uint32(c.Red) |
		uint32(c.Green)<<8 |
		uint32(c.Blue)<<16 |
		uint32(255-c.Alpha)<<24
}

// FromPackedInt unpacks a color from its 32-bit wire form; the exact
// inverse of [RgbaColor.ToPackedInt].
func FromPackedInt(w uint32) RgbaColor {
	return RgbaColor{
		Red:   uint8(w & 0xff),
		Green: uint8((w >> 8) & 0xff),
		Blue:  uint8((w >> 16) & 0xff),
		Alpha: uint8(255 - ((w >> 24) & 0xff)),
	}
}

// Color converts to the standard library color type, non-premultiplied.
func (c RgbaColor) Color() stdcolor.Color {
	return stdcolor.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: c.Alpha}
}

// FromColor converts from any standard library color.
func FromColor(c stdcolor.Color) RgbaColor {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RgbaColor{Red: n.R, Green: n.G, Blue: n.B, Alpha: n.A}
}
