package sdp

import (
	"strconv"
	"strings"
)

// FMTP represents the format parameters of a payload type declared by an
// fmtp attribute. The parameters are carried as raw segments split on ';',
// the first segment still holds the payload type prefix of the line.
type FMTP struct {
	PayloadType uint32
	Segments    []string
}

func (f *FMTP) attributeValue() {}

func parseFMTP(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 2 {
		return nil, &MalformedError{Err: errFMTPTokens, Value: value}
	}

	payloadType, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	return &FMTP{
		PayloadType: uint32(payloadType),
		Segments:    strings.Split(value, ";"),
	}, nil
}
