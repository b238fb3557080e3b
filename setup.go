package sdp

import "strings"

// Setup indicates the role an endpoint offers to take in the transport
// setup handshake, carried in a setup attribute.
type Setup int

const (
	// SetupActive defines the endpoint will initiate an outgoing connection.
	SetupActive Setup = iota + 1

	// SetupActpass defines the endpoint is willing to accept an incoming
	// connection or to initiate an outgoing connection.
	SetupActpass

	// SetupHoldconn defines the endpoint does not want the connection to be
	// established for the time being.
	SetupHoldconn

	// SetupPassive defines the endpoint will accept an incoming connection.
	SetupPassive
)

// This is done this way because of a linter.
const (
	setupActiveStr   = "active"
	setupActpassStr  = "actpass"
	setupHoldconnStr = "holdconn"
	setupPassiveStr  = "passive"
)

// NewSetup defines a procedure for creating a new Setup from a raw string.
// Matching is case insensitive.
func NewSetup(raw string) (Setup, error) {
	switch strings.ToLower(raw) {
	case setupActiveStr:
		return SetupActive, nil
	case setupActpassStr:
		return SetupActpass, nil
	case setupHoldconnStr:
		return SetupHoldconn, nil
	case setupPassiveStr:
		return SetupPassive, nil
	default:
		return Setup(Unknown), errSetupUnknown
	}
}

func (s Setup) String() string {
	switch s {
	case SetupActive:
		return setupActiveStr
	case SetupActpass:
		return setupActpassStr
	case SetupHoldconn:
		return setupHoldconnStr
	case SetupPassive:
		return setupPassiveStr
	default:
		return ErrUnknownType.Error()
	}
}

func (s Setup) attributeValue() {}

func parseSetup(value string) (AttributeValue, error) {
	setup, err := NewSetup(value)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	return setup, nil
}
