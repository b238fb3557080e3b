package sdp

import "strings"

// AttributeKind indicates which attribute an "a=" line carries. Every kind
// has a canonical display spelling returned by String, and
// NewAttributeKind(k.String()) returns k again for every valid kind.
type AttributeKind int

const (
	// AttributeKindBundleOnly is the bundle-only flag attribute.
	AttributeKindBundleOnly AttributeKind = iota + 1

	// AttributeKindCandidate is the candidate attribute carrying one ICE
	// candidate.
	AttributeKindCandidate

	// AttributeKindEndOfCandidates is the end-of-candidates flag attribute.
	AttributeKindEndOfCandidates

	// AttributeKindExtMap is the extmap attribute mapping an RTP header
	// extension to an id.
	AttributeKindExtMap

	// AttributeKindFingerprint is the fingerprint attribute carrying a
	// certificate fingerprint.
	AttributeKindFingerprint

	// AttributeKindFMTP is the fmtp attribute carrying format parameters of
	// a payload type.
	AttributeKindFMTP

	// AttributeKindGroup is the group attribute tying media sections
	// together.
	AttributeKindGroup

	// AttributeKindICELite is the ice-lite flag attribute.
	AttributeKindICELite

	// AttributeKindICEOptions is the ice-options attribute listing ICE
	// option tokens.
	AttributeKindICEOptions

	// AttributeKindICEPwd is the ice-pwd attribute carrying the ICE
	// password.
	AttributeKindICEPwd

	// AttributeKindICEUfrag is the ice-ufrag attribute carrying the ICE
	// user fragment.
	AttributeKindICEUfrag

	// AttributeKindInactive is the inactive direction flag attribute.
	AttributeKindInactive

	// AttributeKindMid is the mid attribute naming a media section.
	AttributeKindMid

	// AttributeKindMSID is the msid attribute assigning a media stream id.
	AttributeKindMSID

	// AttributeKindMSIDSemantic is the msid-semantic attribute. Its value
	// stays unparsed.
	AttributeKindMSIDSemantic

	// AttributeKindRID is the rid attribute restricting one RTP stream. Its
	// value stays unparsed.
	AttributeKindRID

	// AttributeKindRecvonly is the recvonly direction flag attribute.
	AttributeKindRecvonly

	// AttributeKindRTCP is the rtcp attribute carrying an alternative RTCP
	// address.
	AttributeKindRTCP

	// AttributeKindRTCPFb is the rtcp-fb attribute enabling RTCP feedback
	// for a payload type.
	AttributeKindRTCPFb

	// AttributeKindRTCPMux is the rtcp-mux flag attribute.
	AttributeKindRTCPMux

	// AttributeKindRTCPRsize is the rtcp-rsize flag attribute.
	AttributeKindRTCPRsize

	// AttributeKindRTPMap is the rtpmap attribute mapping a payload type to
	// a codec.
	AttributeKindRTPMap

	// AttributeKindSCTPMap is the sctpmap attribute describing an SCTP
	// association.
	AttributeKindSCTPMap

	// AttributeKindSCTPPort is the sctp-port attribute carrying the SCTP
	// port.
	AttributeKindSCTPPort

	// AttributeKindSendonly is the sendonly direction flag attribute.
	AttributeKindSendonly

	// AttributeKindSendrecv is the sendrecv direction flag attribute.
	AttributeKindSendrecv

	// AttributeKindSetup is the setup attribute declaring the transport
	// setup role.
	AttributeKindSetup

	// AttributeKindSimulcast is the simulcast attribute declaring rid
	// alternatives per direction.
	AttributeKindSimulcast

	// AttributeKindSSRC is the ssrc attribute describing a synchronization
	// source.
	AttributeKindSSRC

	// AttributeKindSSRCGroup is the ssrc-group attribute. Its value stays
	// unparsed.
	AttributeKindSSRCGroup
)

// This is done this way because of a linter.
const (
	attributeKindBundleOnlyStr      = "bundle-only"
	attributeKindCandidateStr       = "candidate"
	attributeKindEndOfCandidatesStr = "end-of-candidates"
	attributeKindExtMapStr          = "extmap"
	attributeKindFingerprintStr     = "fingerprint"
	attributeKindFMTPStr            = "fmtp"
	attributeKindGroupStr           = "group"
	attributeKindICELiteStr         = "ice-lite"
	attributeKindICEOptionsStr      = "ice-options"
	attributeKindICEPwdStr          = "ice-pwd"
	attributeKindICEUfragStr        = "ice-ufrag"
	attributeKindInactiveStr        = "inactive"
	attributeKindMidStr             = "mid"
	attributeKindMSIDStr            = "msid"
	attributeKindMSIDSemanticStr    = "msid-semantic"
	attributeKindRIDStr             = "rid"
	attributeKindRecvonlyStr        = "recvonly"
	attributeKindRTCPStr            = "rtcp"
	attributeKindRTCPFbStr          = "rtcp-fb"
	attributeKindRTCPMuxStr         = "rtcp-mux"
	attributeKindRTCPRsizeStr       = "rtcp-rsize"
	attributeKindRTPMapStr          = "rtpmap"
	attributeKindSCTPMapStr         = "sctpmap"
	attributeKindSCTPPortStr        = "sctp-port"
	attributeKindSendonlyStr        = "sendonly"
	attributeKindSendrecvStr        = "sendrecv"
	attributeKindSetupStr           = "setup"
	attributeKindSimulcastStr       = "simulcast"
	attributeKindSSRCStr            = "ssrc"
	attributeKindSSRCGroupStr       = "ssrc-group"
)

// NewAttributeKind defines a procedure for creating a new AttributeKind
// from the keyword of an attribute line. Matching is case insensitive and
// exact. An unknown keyword yields an UnsupportedError carrying the raw
// keyword.
func NewAttributeKind(raw string) (AttributeKind, error) { //nolint:cyclop
	switch strings.ToLower(raw) {
	case attributeKindBundleOnlyStr:
		return AttributeKindBundleOnly, nil
	case attributeKindCandidateStr:
		return AttributeKindCandidate, nil
	case attributeKindEndOfCandidatesStr:
		return AttributeKindEndOfCandidates, nil
	case attributeKindExtMapStr:
		return AttributeKindExtMap, nil
	case attributeKindFingerprintStr:
		return AttributeKindFingerprint, nil
	case attributeKindFMTPStr:
		return AttributeKindFMTP, nil
	case attributeKindGroupStr:
		return AttributeKindGroup, nil
	case attributeKindICELiteStr:
		return AttributeKindICELite, nil
	case attributeKindICEOptionsStr:
		return AttributeKindICEOptions, nil
	case attributeKindICEPwdStr:
		return AttributeKindICEPwd, nil
	case attributeKindICEUfragStr:
		return AttributeKindICEUfrag, nil
	case attributeKindInactiveStr:
		return AttributeKindInactive, nil
	case attributeKindMidStr:
		return AttributeKindMid, nil
	case attributeKindMSIDStr:
		return AttributeKindMSID, nil
	case attributeKindMSIDSemanticStr:
		return AttributeKindMSIDSemantic, nil
	case attributeKindRIDStr:
		return AttributeKindRID, nil
	case attributeKindRecvonlyStr:
		return AttributeKindRecvonly, nil
	case attributeKindRTCPStr:
		return AttributeKindRTCP, nil
	case attributeKindRTCPFbStr:
		return AttributeKindRTCPFb, nil
	case attributeKindRTCPMuxStr:
		return AttributeKindRTCPMux, nil
	case attributeKindRTCPRsizeStr:
		return AttributeKindRTCPRsize, nil
	case attributeKindRTPMapStr:
		return AttributeKindRTPMap, nil
	case attributeKindSCTPMapStr:
		return AttributeKindSCTPMap, nil
	case attributeKindSCTPPortStr:
		return AttributeKindSCTPPort, nil
	case attributeKindSendonlyStr:
		return AttributeKindSendonly, nil
	case attributeKindSendrecvStr:
		return AttributeKindSendrecv, nil
	case attributeKindSetupStr:
		return AttributeKindSetup, nil
	case attributeKindSimulcastStr:
		return AttributeKindSimulcast, nil
	case attributeKindSSRCStr:
		return AttributeKindSSRC, nil
	case attributeKindSSRCGroupStr:
		return AttributeKindSSRCGroup, nil
	default:
		return AttributeKind(Unknown), &UnsupportedError{Err: errAttributeNameUnknown, Value: raw}
	}
}

func (k AttributeKind) String() string { //nolint:cyclop
	switch k {
	case AttributeKindBundleOnly:
		return "Bundle-Only"
	case AttributeKindCandidate:
		return "Candidate"
	case AttributeKindEndOfCandidates:
		return "End-Of-Candidates"
	case AttributeKindExtMap:
		return "Extmap"
	case AttributeKindFingerprint:
		return "Fingerprint"
	case AttributeKindFMTP:
		return "Fmtp"
	case AttributeKindGroup:
		return "Group"
	case AttributeKindICELite:
		return "Ice-Lite"
	case AttributeKindICEOptions:
		return "Ice-Options"
	case AttributeKindICEPwd:
		return "Ice-Pwd"
	case AttributeKindICEUfrag:
		return "Ice-Ufrag"
	case AttributeKindInactive:
		return "Inactive"
	case AttributeKindMid:
		return "Mid"
	case AttributeKindMSID:
		return "Msid"
	case AttributeKindMSIDSemantic:
		return "Msid-Semantic"
	case AttributeKindRID:
		return "Rid"
	case AttributeKindRecvonly:
		return "Recvonly"
	case AttributeKindRTCP:
		return "Rtcp"
	case AttributeKindRTCPFb:
		return "Rtcp-Fb"
	case AttributeKindRTCPMux:
		return "Rtcp-Mux"
	case AttributeKindRTCPRsize:
		return "Rtcp-Rsize"
	case AttributeKindRTPMap:
		return "Rtpmap"
	case AttributeKindSCTPMap:
		return "Sctpmap"
	case AttributeKindSCTPPort:
		return "Sctp-Port"
	case AttributeKindSendonly:
		return "Sendonly"
	case AttributeKindSendrecv:
		return "Sendrecv"
	case AttributeKindSetup:
		return "Setup"
	case AttributeKindSimulcast:
		return "Simulcast"
	case AttributeKindSSRC:
		return "Ssrc"
	case AttributeKindSSRCGroup:
		return "Ssrc-Group"
	default:
		return ErrUnknownType.Error()
	}
}
