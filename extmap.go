package sdp

import (
	"strconv"
	"strings"
)

// ExtMap represents an RTP header extension mapping declared by an extmap
// attribute. Direction is only set when the id token carried a direction
// suffix.
type ExtMap struct {
	ID        uint32
	Direction Direction
	URL       string
}

func (e *ExtMap) attributeValue() {}

func parseExtMap(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 2 {
		return nil, &MalformedError{Err: errExtMapTokens, Value: value}
	}

	idToken, directionToken, hasDirection := strings.Cut(tokens[0], "/")

	id, err := strconv.ParseUint(idToken, 10, 32)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	extmap := &ExtMap{ID: uint32(id), URL: tokens[1]}
	if hasDirection {
		direction, err := NewDirection(directionToken)
		if err != nil {
			return nil, &MalformedError{Err: err, Value: value}
		}
		extmap.Direction = direction
	}

	return extmap, nil
}
