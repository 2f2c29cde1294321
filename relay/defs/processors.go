package defs

// KillSwitch is closed (or written to) by the main routine to stop background processors.
type KillSwitch chan struct{}
