package render

import "image/color"

// fillBinaryRGBA converts a binary cell frame (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var px [2][4]byte
	for i, c := range []color.Color{off, on} {
		r, g, b, a := c.RGBA()
		px[i] = [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
	}
	for i, c := range cells {
		v := 0
		if c != 0 {
			v = 1
		}
		copy(buf[i*4:i*4+4], px[v][:])
	}
}
