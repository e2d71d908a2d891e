// internal/utils/math.go
package utils

import "math"

// Distance returns the distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap reports whether two circles overlap. Touching is not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// ClosestOnSegment returns the point of segment (ax,ay)-(bx,by) closest to (px,py).
func ClosestOnSegment(px, py, ax, ay, bx, by float64) (float64, float64) {
	dx := bx - ax
	dy := by - ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return ax, ay
	}
	t := Clamp(((px-ax)*dx+(py-ay)*dy)/lenSq, 0, 1)
	return ax + t*dx, ay + t*dy
}

// PointSegmentDistance returns the distance from (px,py) to the segment.
func PointSegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	cx, cy := ClosestOnSegment(px, py, ax, ay, bx, by)
	return Distance(px, py, cx, cy)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle wraps an angle into (-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// LerpAngle moves from towards to by fraction t along the shorter arc.
func LerpAngle(from, to, t float64) float64 {
	return from + NormalizeAngle(to-from)*t
}

// Lerp is plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
