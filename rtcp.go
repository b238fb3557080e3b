package sdp

import (
	"net"
	"strings"

	"github.com/nils-ohlmeier/gsdparsa/pkg/network"
)

// RTCP represents an alternative RTCP transport address declared by an rtcp
// attribute.
type RTCP struct {
	Port        uint32
	NetType     network.NetType
	AddrType    network.AddrType
	UnicastAddr net.IP
}

func (r *RTCP) attributeValue() {}

func parseRTCP(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 4 {
		return nil, &MalformedError{Err: errRTCPTokens, Value: value}
	}

	port, err := parsePort(tokens[0])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	netType, err := network.NewNetType(tokens[1])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	addrType, err := network.NewAddrType(tokens[2])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	addr, err := network.ParseUnicastAddr(addrType, tokens[3])
	if err != nil {
		return nil, &MalformedError{Err: err, Value: value}
	}

	return &RTCP{Port: port, NetType: netType, AddrType: addrType, UnicastAddr: addr}, nil
}
