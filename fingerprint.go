package sdp

import "strings"

// Fingerprint represents a certificate fingerprint declared by a fingerprint
// attribute. Neither the hash algorithm nor the fingerprint itself are
// validated any further.
type Fingerprint struct {
	HashAlgorithm string
	Fingerprint   string
}

func (f *Fingerprint) attributeValue() {}

func parseFingerprint(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 2 {
		return nil, &MalformedError{Err: errFingerprintTokens, Value: value}
	}

	return &Fingerprint{HashAlgorithm: tokens[0], Fingerprint: tokens[1]}, nil
}
