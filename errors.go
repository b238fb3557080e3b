package sdp

import (
	"errors"
	"fmt"
)

// ErrUnknownType indicates an error with Unknown info.
var ErrUnknownType = errors.New("unknown")

// Types of UnsupportedErrors
var (
	errAttributeNameUnknown      = errors.New("unknown attribute name")
	errCandidateExtensionUnknown = errors.New("unknown candidate extension name")
)

// Types of MalformedErrors
var (
	errCandidateTCPTypeUnknown   = errors.New("unknown tcptype value in candidate line")
	errCandidateTokens           = errors.New("candidate needs to have at least eight tokens")
	errCandidateTransportUnknown = errors.New("unknown candidate transport value")
	errCandidateTypToken         = errors.New("candidate attribute token must be 'typ'")
	errCandidateTypeUnknown      = errors.New("unknown candidate type value")
	errDirectionUnknown          = errors.New("unknown direction")
	errExtMapTokens              = errors.New("extmap needs to have two tokens")
	errFMTPTokens                = errors.New("fmtp needs to have two tokens")
	errFingerprintTokens         = errors.New("fingerprint needs to have two tokens")
	errFlagAttributeValue        = errors.New("attribute is not allowed to have a value")
	errGroupSemanticsMissing     = errors.New("group attribute is missing semantics token")
	errGroupSemanticsUnknown     = errors.New("unknown group semantics")
	errMSIDTokenMissing          = errors.New("msid attribute is missing msid-id token")
	errPortRange                 = errors.New("port can only be a 16bit number")
	errRTCPFeedbackTokens        = errors.New("rtcp-fb needs to have two tokens")
	errRTCPTokens                = errors.New("rtcp needs to have four tokens")
	errRTPMapSubTokens           = errors.New("rtpmap codec token can have at most three subtokens")
	errRTPMapTokens              = errors.New("rtpmap needs to have two tokens")
	errSCTPMapTokens             = errors.New("sctpmap needs to have three tokens")
	errSCTPMapTypeUnknown        = errors.New("unknown sctpmap type token")
	errSSRCIDMissing             = errors.New("ssrc attribute is missing ssrc-id value")
	errSetupUnknown              = errors.New("unknown setup value")
	errSimulcastDirectionMissing = errors.New("simulcast attribute is missing send/recv token")
	errSimulcastDirectionUnknown = errors.New("unknown send/recv token in simulcast attribute")
	errSimulcastIDListMissing    = errors.New("simulcast attribute is missing id list")
)

// MalformedError indicates an attribute value that violates the grammar of
// its attribute name. The line cannot be represented and must be rejected.
type MalformedError struct {
	Err   error
	Value string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("MalformedError: %v `%s`", e.Err, e.Value)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// UnsupportedError indicates a well formed construct this package does not
// know how to represent. Callers doing lenient parsing may log the line and
// continue.
type UnsupportedError struct {
	Err   error
	Value string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("UnsupportedError: %v `%s`", e.Err, e.Value)
}

func (e *UnsupportedError) Unwrap() error {
	return e.Err
}
