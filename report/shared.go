package report

import "sync"

// The renderer handle is process-wide: lazily initialized on first use,
// reused for every request, and never torn down before shutdown. The mutex
// guards publication only.
var shared struct {
	mu     sync.Mutex
	client *Client
}

// Shared returns the process-wide client for the endpoint, creating it on
// first use.
func Shared(baseURL string) *Client {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.client == nil {
		shared.client = NewClient(baseURL)
	}
	return shared.client
}
