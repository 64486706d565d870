package game

// Cosmetic spin and tilt rates, in radians per tick.
const (
	cubeFallSpin = 0.15
	cubeRiseSpin = 0.1
	shipTiltGain = 0.05
	shipTiltEase = 0.2
)

// stepCube integrates one cube tick: velocity first, then position.
// OnGround is cleared; terrain resolution sets it again on contact.
func stepCube(a *Avatar, p Physics) {
	a.X += p.Speed
	a.VY += p.Gravity
	a.Y += a.VY

	switch {
	case a.VY > 0:
		a.Rotation += cubeFallSpin
	case a.VY < 0:
		a.Rotation -= cubeRiseSpin
	}

	a.OnGround = false
}

// stepShip integrates one ship tick. Thrust pushes toward ShipMaxRise while
// held, gravity pulls toward ShipMaxFall otherwise.
func stepShip(a *Avatar, p Physics, held bool) {
	a.X += p.Speed

	if held {
		a.ShipVelocity += p.ShipUpForce
		if a.ShipVelocity < p.ShipMaxRise {
			a.ShipVelocity = p.ShipMaxRise
		}
	} else {
		a.ShipVelocity += p.ShipGravity
		if a.ShipVelocity > p.ShipMaxFall {
			a.ShipVelocity = p.ShipMaxFall
		}
	}
	a.Y += a.ShipVelocity

	target := a.ShipVelocity * shipTiltGain
	a.ShipRotation += (target - a.ShipRotation) * shipTiltEase
}
