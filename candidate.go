package sdp

import (
	"net"
	"strconv"
	"strings"

	"github.com/nils-ohlmeier/gsdparsa/pkg/network"
)

// CandidateTransport indicates the transport protocol of an ICE candidate.
type CandidateTransport int

const (
	// CandidateTransportUDP indicates the candidate uses UDP.
	CandidateTransportUDP CandidateTransport = iota + 1

	// CandidateTransportTCP indicates the candidate uses TCP.
	CandidateTransportTCP
)

// This is done this way because of a linter.
const (
	candidateTransportUDPStr = "udp"
	candidateTransportTCPStr = "tcp"
)

// NewCandidateTransport defines a procedure for creating a new
// CandidateTransport from a raw string. Matching is case insensitive.
func NewCandidateTransport(raw string) (CandidateTransport, error) {
	switch strings.ToLower(raw) {
	case candidateTransportUDPStr:
		return CandidateTransportUDP, nil
	case candidateTransportTCPStr:
		return CandidateTransportTCP, nil
	default:
		return CandidateTransport(Unknown), errCandidateTransportUnknown
	}
}

func (t CandidateTransport) String() string {
	switch t {
	case CandidateTransportUDP:
		return candidateTransportUDPStr
	case CandidateTransportTCP:
		return candidateTransportTCPStr
	default:
		return ErrUnknownType.Error()
	}
}

// CandidateType represents the type of the ICE candidate used.
type CandidateType int

const (
	// CandidateTypeHost indicates that the candidate is of Host type. A
	// candidate obtained by binding to a specific port from an IP address on
	// the host.
	CandidateTypeHost CandidateType = iota + 1

	// CandidateTypeSrflx indicates that the candidate is of Server Reflexive
	// type. A candidate whose IP address and port are a binding allocated by
	// a NAT after the agent sent a packet to a server, such as a STUN server.
	CandidateTypeSrflx

	// CandidateTypePrflx indicates that the candidate is of Peer Reflexive
	// type. A candidate whose IP address and port are a binding allocated by
	// a NAT after the agent sent a packet to its peer.
	CandidateTypePrflx

	// CandidateTypeRelay indicates that the candidate is of Relay type, an
	// address obtained from a relay server such as a TURN server.
	CandidateTypeRelay
)

// This is done this way because of a linter.
const (
	candidateTypeHostStr  = "host"
	candidateTypeSrflxStr = "srflx"
	candidateTypePrflxStr = "prflx"
	candidateTypeRelayStr = "relay"
)

// NewCandidateType defines a procedure for creating a new CandidateType from
// a raw string. Matching is case insensitive.
func NewCandidateType(raw string) (CandidateType, error) {
	switch strings.ToLower(raw) {
	case candidateTypeHostStr:
		return CandidateTypeHost, nil
	case candidateTypeSrflxStr:
		return CandidateTypeSrflx, nil
	case candidateTypePrflxStr:
		return CandidateTypePrflx, nil
	case candidateTypeRelayStr:
		return CandidateTypeRelay, nil
	default:
		return CandidateType(Unknown), errCandidateTypeUnknown
	}
}

func (t CandidateType) String() string {
	switch t {
	case CandidateTypeHost:
		return candidateTypeHostStr
	case CandidateTypeSrflx:
		return candidateTypeSrflxStr
	case CandidateTypePrflx:
		return candidateTypePrflxStr
	case CandidateTypeRelay:
		return candidateTypeRelayStr
	default:
		return ErrUnknownType.Error()
	}
}

// CandidateTCPType indicates the connection role of a TCP candidate.
type CandidateTCPType int

const (
	// CandidateTCPTypeActive indicates the candidate will initiate an
	// outgoing connection.
	CandidateTCPTypeActive CandidateTCPType = iota + 1

	// CandidateTCPTypePassive indicates the candidate will accept incoming
	// connections.
	CandidateTCPTypePassive

	// CandidateTCPTypeSimultaneous indicates the candidate will attempt a
	// simultaneous open. The wire token is "so".
	CandidateTCPTypeSimultaneous
)

// This is done this way because of a linter.
const (
	candidateTCPTypeActiveStr       = "active"
	candidateTCPTypePassiveStr      = "passive"
	candidateTCPTypeSimultaneousStr = "so"
)

// NewCandidateTCPType defines a procedure for creating a new
// CandidateTCPType from a raw string. Matching is case insensitive.
func NewCandidateTCPType(raw string) (CandidateTCPType, error) {
	switch strings.ToLower(raw) {
	case candidateTCPTypeActiveStr:
		return CandidateTCPTypeActive, nil
	case candidateTCPTypePassiveStr:
		return CandidateTCPTypePassive, nil
	case candidateTCPTypeSimultaneousStr:
		return CandidateTCPTypeSimultaneous, nil
	default:
		return CandidateTCPType(Unknown), errCandidateTCPTypeUnknown
	}
}

func (t CandidateTCPType) String() string {
	switch t {
	case CandidateTCPTypeActive:
		return candidateTCPTypeActiveStr
	case CandidateTCPTypePassive:
		return candidateTCPTypePassiveStr
	case CandidateTCPTypeSimultaneous:
		return candidateTCPTypeSimultaneousStr
	default:
		return ErrUnknownType.Error()
	}
}

// Candidate represents a single ICE candidate carried in a candidate
// attribute. RelatedAddress, RelatedPort and TCPType are only set when the
// corresponding extension was present.
type Candidate struct {
	Foundation     string
	Component      uint32
	Transport      CandidateTransport
	Priority       uint64
	Address        net.IP
	Port           uint32
	Typ            CandidateType
	RelatedAddress net.IP
	RelatedPort    *uint32
	TCPType        CandidateTCPType
}

func (c *Candidate) attributeValue() {}

func parseCandidate(value string) (AttributeValue, error) { //nolint:cyclop
	tokens := strings.Fields(value)
	if len(tokens) < 8 {
		return nil, &MalformedError{Err: errCandidateTokens, Value: value}
	}

	component, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	transport, err := NewCandidateTransport(tokens[2])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	priority, err := strconv.ParseUint(tokens[3], 10, 64)
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	address, err := network.ParseUnicastAddrUnknownType(tokens[4])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	port, err := parsePort(tokens[5])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	if !strings.EqualFold(tokens[6], "typ") {
		return nil, &MalformedError{Err: errCandidateTypToken, Value: value}
	}

	typ, err := NewCandidateType(tokens[7])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	candidate := &Candidate{
		Foundation: tokens[0],
		Component:  uint32(component),
		Transport:  transport,
		Priority:   priority,
		Address:    address,
		Port:       port,
		Typ:        typ,
	}

	// Extensions come in pairs, a dangling last token is ignored.
	for i := 8; i+1 < len(tokens); i += 2 {
		switch strings.ToLower(tokens[i]) {
		case "raddr":
			addr, err := network.ParseUnicastAddrUnknownType(tokens[i+1])
			if err != nil {
				return nil, &MalformedError{Err: err, Value: value}
			}
			candidate.RelatedAddress = addr
		case "rport":
			rport, err := parsePort(tokens[i+1])
			if err != nil {
				return nil, &MalformedError{Err: err, Value: value}
			}
			candidate.RelatedPort = &rport
		case "tcptype":
			tcpType, err := NewCandidateTCPType(tokens[i+1])
			if err != nil {
				return nil, &MalformedError{Err: err, Value: value}
			}
			candidate.TCPType = tcpType
		default:
			return nil, &UnsupportedError{Err: errCandidateExtensionUnknown, Value: value}
		}
	}

	return candidate, nil
}
