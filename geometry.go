package main

import "image"

// Rect is an integer rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H int
}

// Size is the width and height of something that has not been placed yet
type Size struct {
	W, H int
}

// Right returns the x coordinate one past the right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no pixels
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Size returns the extents of the rectangle
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether other lies entirely inside r
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Image converts to an image.Rectangle
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// RectFromImage converts an image.Rectangle
func RectFromImage(b image.Rectangle) Rect {
	return Rect{X: b.Min.X, Y: b.Min.Y, W: b.Dx(), H: b.Dy()}
}

// RectOf places a size at the origin
func RectOf(s Size) Rect {
	return Rect{W: s.W, H: s.H}
}

// SplitHorizontal splits space into a left and a right half.
// The halves cover space without overlapping; an odd pixel goes to the right half.
func SplitHorizontal(space Rect) (Rect, Rect) {
	leftW := space.W / 2
	left := Rect{X: space.X, Y: space.Y, W: leftW, H: space.H}
	right := Rect{X: space.X + leftW, Y: space.Y, W: space.W - leftW, H: space.H}
	return left, right
}

// SplitVertical splits space into an upper and a lower half.
// An odd pixel goes to the lower half.
func SplitVertical(space Rect) (Rect, Rect) {
	upperH := space.H / 2
	upper := Rect{X: space.X, Y: space.Y, W: space.W, H: upperH}
	lower := Rect{X: space.X, Y: space.Y + upperH, W: space.W, H: space.H - upperH}
	return upper, lower
}

// MinSpanning returns the smallest rectangle containing both a and b
//
//	------        --------
//	|    |        |      |
//	|  -----  ->  |      |
//	|  |   |      |      |
//	---|   |      |      |
//	   -----      --------
func MinSpanning(a, b Rect) Rect {
	left := min(a.X, b.X)
	top := min(a.Y, b.Y)
	right := max(a.Right(), b.Right())
	bottom := max(a.Bottom(), b.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// ScaleAspect scales src to the largest size with the same aspect ratio that
// fits inside dst, positioned at dst's origin. Sizes are truncated, never
// rounded up, so the result always fits.
func ScaleAspect(src, dst Rect) Rect {
	if src.W <= 0 || src.H <= 0 || dst.W <= 0 || dst.H <= 0 {
		return Rect{X: dst.X, Y: dst.Y}
	}

	sw, sh := int64(src.W), int64(src.H)
	dw, dh := int64(dst.W), int64(dst.H)

	// ratio = min(dw/sw, dh/sh), compared without division
	var w, h int64
	if dw*sh <= dh*sw {
		w = dw
		h = sh * dw / sw
	} else {
		w = sw * dh / sh
		h = dh
	}
	return Rect{X: dst.X, Y: dst.Y, W: int(w), H: int(h)}
}

// AlignToLeft moves src so its left edge is on dst's left edge
func AlignToLeft(src, dst Rect) Rect {
	src.X = dst.X
	return src
}

// AlignToRight moves src so its right edge is on dst's right edge
func AlignToRight(src, dst Rect) Rect {
	src.X += dst.Right() - src.Right()
	return src
}

// AlignToTop moves src so its top edge is on dst's top edge
func AlignToTop(src, dst Rect) Rect {
	src.Y = dst.Y
	return src
}

// AlignToBottom moves src so its bottom edge is on dst's bottom edge
func AlignToBottom(src, dst Rect) Rect {
	src.Y += dst.Bottom() - src.Bottom()
	return src
}

// AlignLeftAgainstRight puts src directly right of dst
//
//	dst|src
func AlignLeftAgainstRight(src, dst Rect) Rect {
	src.X = dst.Right()
	return src
}

// AlignRightAgainstLeft puts src directly left of dst
//
//	src|dst
func AlignRightAgainstLeft(src, dst Rect) Rect {
	src.X += dst.X - src.Right()
	return src
}

// AlignTopAgainstBottom puts src directly below dst
func AlignTopAgainstBottom(src, dst Rect) Rect {
	src.Y = dst.Bottom()
	return src
}

// AlignBottomAgainstTop puts src directly above dst
func AlignBottomAgainstTop(src, dst Rect) Rect {
	src.Y += dst.Y - src.Bottom()
	return src
}

// CenterHorizontal centers src horizontally within dst
func CenterHorizontal(src, dst Rect) Rect {
	src.X += (dst.X + dst.W/2) - (src.X + src.W/2)
	return src
}

// CenterVertically centers src vertically within dst
func CenterVertically(src, dst Rect) Rect {
	src.Y += (dst.Y + dst.H/2) - (src.Y + src.H/2)
	return src
}

// Expand grows r by fraction of its size, split evenly on both sides.
// Expand(r, 0.1) is the 110% backing rectangle used behind panels.
func Expand(r Rect, fraction float64) Rect {
	padX := int(float64(r.W) * fraction / 2)
	padY := int(float64(r.H) * fraction / 2)
	return Rect{
		X: r.X - padX,
		Y: r.Y - padY,
		W: int(float64(r.W) * (1 + fraction)),
		H: int(float64(r.H) * (1 + fraction)),
	}
}
