// internal/utils/coords.go
package utils

import "go-wave-shooter/internal/config"

// WorldToScreen maps a world point (origin centred, y up) to screen pixels
// (origin top-left, y down), offset by the camera shake.
func WorldToScreen(x, y, camX, camY float64) (float64, float64) {
	return x - camX + config.HalfWidth, config.HalfHeight - (y - camY)
}

// ScreenToWorld is the inverse of WorldToScreen with no camera offset.
func ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx - config.HalfWidth, config.HalfHeight - sy
}
