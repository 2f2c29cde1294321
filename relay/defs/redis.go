package defs

const (
	// RedisWebLogKey is the list that completed request records are pushed onto.
	RedisWebLogKey = "weblog:events"
)
