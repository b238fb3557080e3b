package network

import "errors"

var (
	errNetTypeInvalid      = errors.New("nettype needs to be IN")
	errAddrTypeInvalid     = errors.New("address type needs to be IP4 or IP6")
	errAddressInvalid      = errors.New("failed to parse unicast address")
	errAddressTypeMismatch = errors.New("address type does not match address")
)
