package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// NewRedis returns the in-memory redis shared by every scenario.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
	})
	return redisServer
}

func ClearRedis(server *miniredis.Miniredis) {
	server.FlushAll()
}

// CloseRedis stops the shared server.
func CloseRedis() {
	if redisServer != nil {
		redisServer.Close()
	}
}
