package weblog

import "encoding/json"
import "github.com/garyburd/redigo/redis"

import "github.com/dadleyy/relay.api/relay/defs"

// RedisWriter pushes serialized events onto a redis list for external log tooling to consume.
type RedisWriter struct {
	redis.Conn
}

// WriteEvent marshals the event and LPUSHes it onto the web log key.
func (writer *RedisWriter) WriteEvent(event Event) error {
	data, e := json.Marshal(&event)

	if e != nil {
		return e
	}

	_, e = writer.Do("LPUSH", defs.RedisWebLogKey, data)
	return e
}
