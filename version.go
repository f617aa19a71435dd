package echoclient

import (
	"fmt"
	"sync"
)

// Version is the client version string, reported to the collector in the User-Agent header.
const Version = "0.5.0"

const clientName = "go-echo-client"

var (
	userAgentOnce  sync.Once
	userAgentValue string
)

// userAgent returns the process-wide User-Agent string, computed once on first use.
func userAgent() string {
	userAgentOnce.Do(func() {
		userAgentValue = fmt.Sprintf("%s/%s", clientName, Version)
	})
	return userAgentValue
}
