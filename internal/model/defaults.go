package model

import "time"

// Shared defaults used by both the watch face and the control CLI.
const (
	DefaultIdleTimeout   = 180 * time.Second
	DefaultAnimDuration  = 500 * time.Millisecond
	DefaultAnimDelay     = 300 * time.Millisecond
	DefaultFrameInterval = 33 * time.Millisecond
	DefaultTimeFormat    = "24h"
	DefaultFont          = "block"
	DefaultSkin          = "default"
	DefaultAPIAddr       = "127.0.0.1:3900"
)
