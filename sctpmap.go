package sdp

import (
	"strconv"
	"strings"
)

// SCTPMap represents an SCTP association declared by an sctpmap attribute.
// The only application token accepted is webrtc-datachannel.
type SCTPMap struct {
	Port     uint32
	Channels uint32
}

func (s *SCTPMap) attributeValue() {}

func parseSCTPMap(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 3 {
		return nil, &MalformedError{Err: errSCTPMapTokens, Value: value}
	}

	port, err := parsePort(tokens[0])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	if !strings.EqualFold(tokens[1], "webrtc-datachannel") {
		return nil, &MalformedError{Err: errSCTPMapTypeUnknown, Value: value}
	}

	channels, err := strconv.ParseUint(tokens[2], 10, 32)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	return &SCTPMap{Port: port, Channels: uint32(channels)}, nil
}

func parseSCTPPort(value string) (AttributeValue, error) {
	port, err := parsePort(value)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	return IntValue(port), nil
}
