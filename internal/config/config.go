// Package config centralizes the fixed game parameters and shared
// configuration utilities.
package config

import "time"

// Screen resolution of the round panel, in pixels.
const (
	ScreenWidth  = 240
	ScreenHeight = 240
)

// Frame pacing. A frame never starts less than FrameBudget after the
// previous one; long frames are not caught up.
const (
	FrameBudget = 60 * time.Millisecond
)

// Screens
const (
	SplashPath       = "assets/splash.png"
	SplashDuration   = 3 * time.Second
	GameOverDuration = 3 * time.Second
	TimerBandHeight  = 20 // Bottom strip reserved for the elapsed-time display
)

// Ship physics, all per frame
const (
	AccelGain   = 0.9   // Velocity change per g of tilt
	DragGain    = 0.025 // Rotational drag coupling between the axes
	HeadingGain = 0.2   // Fraction of the heading error corrected each frame
	MaxVelocity = 3.0   // Pixels per frame on each axis
	Deadzone    = 0.1   // Axis speeds below this snap to zero
)

// Asteroids and explosion
const (
	AsteroidCount   = 3  // Large asteroids spawned when the field is empty
	ExplosionFrames = 25 // The flash ends once its frame count exceeds this
)
