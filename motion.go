package sandcore

// Shared motion constants for the accumulator-based vertical descent used by
// powders, liquids, and the in-grid physics particle (spec.md §4.2.2/.3/.6).
const (
	gravityAccel    = 0.4
	maxFallVelocity = 10.0

	airResistance        = 0.98
	bounceDamping        = 0.4
	minVelocityThreshold = 0.05
)

// applyGravity advances a vertical-accumulator velocity by one step of
// gravity, clamps it, and returns the integer number of rows to move along
// with the remainder accumulator.
func applyGravity(velocity, accum float64) (newVelocity, newAccum float64, rows int) {
	newVelocity = velocity + gravityAccel
	if newVelocity > maxFallVelocity {
		newVelocity = maxFallVelocity
	}
	newAccum = accum + newVelocity
	rows = int(newAccum)
	newAccum -= float64(rows)
	return
}
