package sdp

const (
	// Unknown defines default public constant to use for "enum" like struct
	// comparisons when no value was defined.
	Unknown    = iota
	unknownStr = "unknown"

	// Largest value a port carried in an attribute may have.
	maxPort = 65535
)
