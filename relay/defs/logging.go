package defs

import "log"

const (
	// DebugLogLevelTag is used for debugf logger calls
	DebugLogLevelTag = "debug"

	// InfoLogLevelTag is used for infof logger calls
	InfoLogLevelTag = "info"

	// WarnLogLevelTag is used for warnf logger calls
	WarnLogLevelTag = "warn"

	// ErrorLogLevelTag is used for errorf logger calls
	ErrorLogLevelTag = "error"

	// MainLogPrefix is the log prefix for the main go routine
	MainLogPrefix = "[relay api] "

	// ServerRuntimeLogPrefix is the log prefix for the http server runtime
	ServerRuntimeLogPrefix = "[server runtime] "

	// WorkerDispatcherLogPrefix is the log prefix for the worker dispatcher
	WorkerDispatcherLogPrefix = "[worker dispatcher] "

	// WebLogQueueLogPrefix is the log prefix for the access log queue
	WebLogQueueLogPrefix = "[web log] "

	// PrimitivesAPILogPrefix is the log prefix used by the primitives api
	PrimitivesAPILogPrefix = "[primitives api] "

	// StreamsAPILogPrefix is the log prefix used by the streams api
	StreamsAPILogPrefix = "[streams api] "

	// DefaultLoggerFlags is the bitmask used to create default logging
	DefaultLoggerFlags = log.Ldate | log.Ltime
)
