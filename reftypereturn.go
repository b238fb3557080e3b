package sdp

// RefUint32 returns a pointer to a newly created uint32.
func RefUint32(value uint32) *uint32 {
	return &value
}

// RefString returns a pointer to a newly created string.
func RefString(value string) *string {
	return &value
}
