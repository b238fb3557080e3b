package sdp

import (
	"strconv"
	"strings"
)

// RTPMap represents the codec mapping of a payload type declared by an
// rtpmap attribute. Frequency and Channels are only set when the codec
// token carried the corresponding subtokens.
type RTPMap struct {
	PayloadType uint32
	CodecName   string
	Frequency   *uint32
	Channels    *uint32
}

func (r *RTPMap) attributeValue() {}

func parseRTPMap(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 2 {
		return nil, &MalformedError{Err: errRTPMapTokens, Value: value}
	}

	payloadType, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	subTokens := strings.Split(tokens[1], "/")
	if len(subTokens) > 3 {
		return nil, &MalformedError{Err: errRTPMapSubTokens, Value: value}
	}

	rtpmap := &RTPMap{
		PayloadType: uint32(payloadType),
		CodecName:   subTokens[0],
	}

	if len(subTokens) > 1 {
		frequency, err := strconv.ParseUint(subTokens[1], 10, 32)
		if err != nil {
			return nil, &MalformedError{Err: err, Value: value}
		}
		rtpmap.Frequency = RefUint32(uint32(frequency))
	}

	if len(subTokens) > 2 {
		channels, err := strconv.ParseUint(subTokens[2], 10, 32)
		if err != nil {
			return nil, &MalformedError{Err: err, Value: value}
		}
		rtpmap.Channels = RefUint32(uint32(channels))
	}

	return rtpmap, nil
}
