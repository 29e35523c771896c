// Package spacetilt holds the assets shared by every build of the game.
package spacetilt

import "embed"

// Assets contains the splash screen at config.SplashPath.
//
//go:embed assets/splash.png
var Assets embed.FS
