package constants

// Numeric limits and configuration defaults.
const (
	// DefaultBindAddress is the address the HTTP daemon listens on.
	DefaultBindAddress = ":8080"

	// DefaultMaxConnections bounds the number of concurrent searches the
	// daemon will service before returning 503 to new requests.
	DefaultMaxConnections = 64

	// DefaultTotal is applied when a request omits "total".
	DefaultTotal = 10

	// MaxTotal is the largest match quota a single request may request.
	MaxTotal = 1_000_000
)
