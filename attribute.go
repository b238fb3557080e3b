// Package sdp implements parsing of the attribute ("a=") lines of the
// Session Description Protocol as defined in RFC 4566.
package sdp

import (
	"strconv"
	"strings"
)

// Attribute is one parsed attribute line. Value is nil for flag attributes
// and holds the kind specific payload for every other kind.
type Attribute struct {
	Kind  AttributeKind
	Value AttributeValue
}

// AttributeValue is the payload carried by an attribute. Exactly one
// concrete type is produced per attribute kind.
type AttributeValue interface {
	attributeValue()
}

// StringValue is an opaque string payload, used by the attribute kinds
// whose value intentionally stays unparsed.
type StringValue string

func (v StringValue) attributeValue() {}

// TokenList is an ordered list of whitespace separated tokens.
type TokenList []string

func (v TokenList) attributeValue() {}

// IntValue is a plain unsigned integer payload.
type IntValue uint32

func (v IntValue) attributeValue() {}

// ParseAttribute parses the text of one attribute line. The line is the
// part after the "a=" prefix, the keyword runs up to the first ':' and
// everything after it is the value of the attribute.
func ParseAttribute(line string) (*Attribute, error) {
	name, value, _ := strings.Cut(line, ":")

	kind, err := NewAttributeKind(name)
	if err != nil {
		return nil, err
	}

	return ParseAttributeValue(kind, strings.TrimSpace(value))
}

// ParseAttributeValue parses value according to the grammar of kind.
// Surrounding whitespace must already be trimmed by the caller, the way
// ParseAttribute does it.
func ParseAttributeValue(kind AttributeKind, value string) (*Attribute, error) { //nolint:cyclop
	attribute := &Attribute{Kind: kind}

	var err error
	switch kind {
	case AttributeKindBundleOnly,
		AttributeKindEndOfCandidates,
		AttributeKindICELite,
		AttributeKindInactive,
		AttributeKindRecvonly,
		AttributeKindRTCPMux,
		AttributeKindRTCPRsize,
		AttributeKindSendonly,
		AttributeKindSendrecv:
		if len(value) > 0 {
			err = &MalformedError{Err: errFlagAttributeValue, Value: value}
		}
	case AttributeKindICEPwd,
		AttributeKindICEUfrag,
		AttributeKindMid,
		AttributeKindRID,
		AttributeKindMSIDSemantic,
		AttributeKindSSRCGroup:
		attribute.Value = StringValue(value)
	case AttributeKindICEOptions:
		attribute.Value = TokenList(strings.Fields(value))
	case AttributeKindCandidate:
		attribute.Value, err = parseCandidate(value)
	case AttributeKindExtMap:
		attribute.Value, err = parseExtMap(value)
	case AttributeKindFingerprint:
		attribute.Value, err = parseFingerprint(value)
	case AttributeKindFMTP:
		attribute.Value, err = parseFMTP(value)
	case AttributeKindGroup:
		attribute.Value, err = parseGroup(value)
	case AttributeKindMSID:
		attribute.Value, err = parseMSID(value)
	case AttributeKindRTCP:
		attribute.Value, err = parseRTCP(value)
	case AttributeKindRTCPFb:
		attribute.Value, err = parseRTCPFeedback(value)
	case AttributeKindRTPMap:
		attribute.Value, err = parseRTPMap(value)
	case AttributeKindSCTPMap:
		attribute.Value, err = parseSCTPMap(value)
	case AttributeKindSCTPPort:
		attribute.Value, err = parseSCTPPort(value)
	case AttributeKindSetup:
		attribute.Value, err = parseSetup(value)
	case AttributeKindSimulcast:
		attribute.Value, err = parseSimulcast(value)
	case AttributeKindSSRC:
		attribute.Value, err = parseSSRC(value)
	default:
		err = &UnsupportedError{Err: errAttributeNameUnknown, Value: kind.String()}
	}

	if err != nil {
		return nil, err
	}

	return attribute, nil
}

// parsePort parses token as an unsigned integer that fits a UDP or TCP
// port.
func parsePort(token string) (uint32, error) {
	port, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, err
	}

	if port > maxPort {
		return 0, errPortRange
	}

	return uint32(port), nil
}
