package sdp

import "strings"

// GroupSemantics indicates the semantics of a media stream grouping as
// carried in the first token of a group attribute.
type GroupSemantics int

const (
	// GroupSemanticsLipSynchronization indicates the LS grouping of RFC 5888.
	GroupSemanticsLipSynchronization GroupSemantics = iota + 1

	// GroupSemanticsFlowIdentification indicates the FID grouping of RFC 5888.
	GroupSemanticsFlowIdentification

	// GroupSemanticsSingleReservationFlow indicates the SRF grouping of RFC 3524.
	GroupSemanticsSingleReservationFlow

	// GroupSemanticsAlternateNetworkAddressType indicates the ANAT grouping
	// of RFC 4091.
	GroupSemanticsAlternateNetworkAddressType

	// GroupSemanticsForwardErrorCorrection indicates the FEC grouping of RFC 5956.
	GroupSemanticsForwardErrorCorrection

	// GroupSemanticsDecodingDependency indicates the DDP grouping of RFC 5583.
	GroupSemanticsDecodingDependency

	// GroupSemanticsBundle indicates the BUNDLE grouping of the JSEP
	// negotiation scheme.
	GroupSemanticsBundle
)

// This is done this way because of a linter.
const (
	groupSemanticsLipSynchronizationStr          = "LS"
	groupSemanticsFlowIdentificationStr          = "FID"
	groupSemanticsSingleReservationFlowStr       = "SRF"
	groupSemanticsAlternateNetworkAddressTypeStr = "ANAT"
	groupSemanticsForwardErrorCorrectionStr      = "FEC"
	groupSemanticsDecodingDependencyStr          = "DDP"
	groupSemanticsBundleStr                      = "BUNDLE"
)

// NewGroupSemantics defines a procedure for creating a new GroupSemantics
// from a raw string. Matching is case insensitive.
func NewGroupSemantics(raw string) (GroupSemantics, error) {
	switch strings.ToUpper(raw) {
	case groupSemanticsLipSynchronizationStr:
		return GroupSemanticsLipSynchronization, nil
	case groupSemanticsFlowIdentificationStr:
		return GroupSemanticsFlowIdentification, nil
	case groupSemanticsSingleReservationFlowStr:
		return GroupSemanticsSingleReservationFlow, nil
	case groupSemanticsAlternateNetworkAddressTypeStr:
		return GroupSemanticsAlternateNetworkAddressType, nil
	case groupSemanticsForwardErrorCorrectionStr:
		return GroupSemanticsForwardErrorCorrection, nil
	case groupSemanticsDecodingDependencyStr:
		return GroupSemanticsDecodingDependency, nil
	case groupSemanticsBundleStr:
		return GroupSemanticsBundle, nil
	default:
		return GroupSemantics(Unknown), errGroupSemanticsUnknown
	}
}

func (s GroupSemantics) String() string {
	switch s {
	case GroupSemanticsLipSynchronization:
		return groupSemanticsLipSynchronizationStr
	case GroupSemanticsFlowIdentification:
		return groupSemanticsFlowIdentificationStr
	case GroupSemanticsSingleReservationFlow:
		return groupSemanticsSingleReservationFlowStr
	case GroupSemanticsAlternateNetworkAddressType:
		return groupSemanticsAlternateNetworkAddressTypeStr
	case GroupSemanticsForwardErrorCorrection:
		return groupSemanticsForwardErrorCorrectionStr
	case GroupSemanticsDecodingDependency:
		return groupSemanticsDecodingDependencyStr
	case GroupSemanticsBundle:
		return groupSemanticsBundleStr
	default:
		return ErrUnknownType.Error()
	}
}

// Group describes a grouping of media streams declared by a group attribute.
type Group struct {
	Semantics GroupSemantics
	Tags      []string
}

func (g *Group) attributeValue() {}

func parseGroup(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return nil, &MalformedError{Err: errGroupSemanticsMissing, Value: value}
	}

	semantics, err := NewGroupSemantics(tokens[0])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	return &Group{Semantics: semantics, Tags: tokens[1:]}, nil
}
