// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widget

import "math"

// EulerFromQuaternion converts a quaternion to roll, pitch, and yaw in
// radians using the ZYX (yaw-pitch-roll) convention: roll about X, pitch
// about Y, yaw about Z.
//
// The quaternion does not need to be normalized; a zero-length quaternion
// is coerced to identity. Pitch is clamped to ±π/2 at the gimbal-lock
// singularity.
func EulerFromQuaternion(x, y, z, w float64) (roll, pitch, yaw float64) {
	n := x*x + y*y + z*z + w*w
	if n <= 0 {
		return 0, 0, 0
	}
	s := 1 / math.Sqrt(n)
	x, y, z, w = x*s, y*s, z*s, w*s

	sinp := 2 * (w*y - z*x)
	switch {
	case sinp >= 1:
		pitch = math.Pi / 2
	case sinp <= -1:
		pitch = -math.Pi / 2
	default:
		pitch = math.Asin(sinp)
	}

	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}
