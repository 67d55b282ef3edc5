package orderControllers

import (
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// Connections come and go on their own goroutines while request handlers
// broadcast; an unguarded map here panics the whole server.
func TestOrderFeedRegistryIsSafeForConcurrentUse(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				conn := new(websocket.Conn)
				registerWSClient(conn)
				wsClientSnapshot()
				unregisterWSClient(conn)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, wsClientSnapshot(), "every registered connection was unregistered")
}
