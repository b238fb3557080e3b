package sdp

import (
	"strconv"
	"strings"
)

// SSRC represents a synchronization source declared by an ssrc attribute.
// AttributeName and AttributeValue are only set when the line carried a
// source attribute token, anything after that token is ignored.
type SSRC struct {
	ID             uint32
	AttributeName  *string
	AttributeValue *string
}

func (s *SSRC) attributeValue() {}

func parseSSRC(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return nil, &MalformedError{Err: errSSRCIDMissing, Value: value}
	}

	id, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	ssrc := &SSRC{ID: uint32(id)}
	if len(tokens) > 1 {
		name, attrValue, found := strings.Cut(tokens[1], ":")
		ssrc.AttributeName = RefString(name)
		if found {
			ssrc.AttributeValue = RefString(attrValue)
		}
	}

	return ssrc, nil
}
