package common

const (
	BaseWidth  = 1024
	BaseHeight = 800
	TPS        = 60

	// Scale is pixels per physics unit.
	Scale = 30.0
	// MaxTimeStep is the largest step handed to the physics world.
	MaxTimeStep = 1.0 / TPS
)
