package sdp

import (
	"strconv"
	"strings"
	"unicode"
)

// RTCPFeedback signals additional RTCP packet types for one payload type,
// declared by an rtcp-fb attribute. FeedbackType carries everything after
// the payload type verbatim, for example "ccm fir" or "nack pli".
type RTCPFeedback struct {
	PayloadType  uint32
	FeedbackType string
}

func (r *RTCPFeedback) attributeValue() {}

func parseRTCPFeedback(value string) (AttributeValue, error) {
	split := strings.IndexFunc(value, unicode.IsSpace)
	if split < 0 {
		return nil, &MalformedError{Err: errRTCPFeedbackTokens, Value: value}
	}

	payloadType, err := strconv.ParseUint(value[:split], 10, 32)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	return &RTCPFeedback{
		PayloadType:  uint32(payloadType),
		FeedbackType: strings.TrimLeftFunc(value[split:], unicode.IsSpace),
	}, nil
}
