package sdp

import (
	"fmt"
	"net"
	"testing"

	"github.com/pion/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidateTransport(t *testing.T) {
	testCases := []struct {
		transportString   string
		shouldFail        bool
		expectedTransport CandidateTransport
	}{
		{unknownStr, true, CandidateTransport(Unknown)},
		{"udp", false, CandidateTransportUDP},
		{"UDP", false, CandidateTransportUDP},
		{"tcp", false, CandidateTransportTCP},
		{"TcP", false, CandidateTransportTCP},
		{"FOO", true, CandidateTransport(Unknown)},
	}

	for i, testCase := range testCases {
		actual, err := NewCandidateTransport(testCase.transportString)
		if (err != nil) != testCase.shouldFail {
			t.Error(err)
		}
		assert.Equal(t,
			testCase.expectedTransport,
			actual,
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestCandidateTransport_String(t *testing.T) {
	testCases := []struct {
		transport      CandidateTransport
		expectedString string
	}{
		{CandidateTransport(Unknown), ErrUnknownType.Error()},
		{CandidateTransportUDP, "udp"},
		{CandidateTransportTCP, "tcp"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.transport.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestNewCandidateType(t *testing.T) {
	testCases := []struct {
		typeString   string
		shouldFail   bool
		expectedType CandidateType
	}{
		{unknownStr, true, CandidateType(Unknown)},
		{"host", false, CandidateTypeHost},
		{"srflx", false, CandidateTypeSrflx},
		{"prflx", false, CandidateTypePrflx},
		{"relay", false, CandidateTypeRelay},
		{"HOST", false, CandidateTypeHost},
		{"fost", true, CandidateType(Unknown)},
	}

	for i, testCase := range testCases {
		actual, err := NewCandidateType(testCase.typeString)
		if (err != nil) != testCase.shouldFail {
			t.Error(err)
		}
		assert.Equal(t,
			testCase.expectedType,
			actual,
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestCandidateType_String(t *testing.T) {
	testCases := []struct {
		candidateType  CandidateType
		expectedString string
	}{
		{CandidateType(Unknown), ErrUnknownType.Error()},
		{CandidateTypeHost, "host"},
		{CandidateTypeSrflx, "srflx"},
		{CandidateTypePrflx, "prflx"},
		{CandidateTypeRelay, "relay"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.candidateType.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestNewCandidateTCPType(t *testing.T) {
	testCases := []struct {
		typeString   string
		shouldFail   bool
		expectedType CandidateTCPType
	}{
		{unknownStr, true, CandidateTCPType(Unknown)},
		{"active", false, CandidateTCPTypeActive},
		{"passive", false, CandidateTCPTypePassive},
		{"so", false, CandidateTCPTypeSimultaneous},
		{"Active", false, CandidateTCPTypeActive},
		{"SO", false, CandidateTCPTypeSimultaneous},
		{"foo", true, CandidateTCPType(Unknown)},
	}

	for i, testCase := range testCases {
		actual, err := NewCandidateTCPType(testCase.typeString)
		if (err != nil) != testCase.shouldFail {
			t.Error(err)
		}
		assert.Equal(t,
			testCase.expectedType,
			actual,
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestCandidateTCPType_String(t *testing.T) {
	testCases := []struct {
		tcpType        CandidateTCPType
		expectedString string
	}{
		{CandidateTCPType(Unknown), ErrUnknownType.Error()},
		{CandidateTCPTypeActive, "active"},
		{CandidateTCPTypePassive, "passive"},
		{CandidateTCPTypeSimultaneous, "so"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.tcpType.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestParseAttributeCandidate(t *testing.T) {
	for _, line := range []string{
		"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ host",
		"candidate:foo 1 UDP 2122252543 172.16.156.106 49760 typ host",
		"candidate:0 1 TCP 2122252543 172.16.156.106 49760 typ host",
		"candidate:0 1 TCP 2122252543 ::1 49760 typ host",
		"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ srflx",
		"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ prflx",
		"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ relay",
		"candidate:0 1 TCP 2122252543 172.16.156.106 49760 typ host tcptype active",
		"candidate:0 1 TCP 2122252543 172.16.156.106 49760 typ host tcptype passive",
		"candidate:0 1 TCP 2122252543 172.16.156.106 49760 typ host tcptype so",
		"candidate:0 1 UDP 2122252543 172.16.156.106 65535 typ host",
		"candidate:1 1 UDP 1685987071 24.23.204.141 54609 typ srflx raddr 192.168.1.4 rport 61665",
		"candidate:1 1 TCP 1685987071 24.23.204.141 54609 typ srflx raddr 192.168.1.4 rport 61665 tcptype passive",
	} {
		attribute, err := ParseAttribute(line)
		require.NoError(t, err, "line: %s", line)
		assert.Equal(t, AttributeKindCandidate, attribute.Kind, "line: %s", line)
	}

	for _, line := range []string{
		"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ",
		"candidate:0 foo UDP 2122252543 172.16.156.106 49760 typ host",
		"candidate:0 1 FOO 2122252543 172.16.156.106 49760 typ host",
		"candidate:0 1 UDP foo 172.16.156.106 49760 typ host",
		"candidate:0 1 UDP 2122252543 172.16.156 49760 typ host",
		"candidate:0 1 UDP 2122252543 172.16.156.106 70000 typ host",
		"candidate:0 1 UDP 2122252543 172.16.156.106 49760 type host",
		"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ fost",
		"candidate:1 1 UDP 1685987071 24.23.204.141 54609 typ srflx raddr 192.168.1 rport 61665",
		"candidate:1 1 UDP 1685987071 24.23.204.141 54609 typ srflx raddr 192.168.1.4 rport 70000",
		"candidate:1 1 TCP 1685987071 24.23.204.141 54609 typ srflx raddr 192.168.1.4 rport 61665 tcptype foo",
	} {
		_, err := ParseAttribute(line)
		assert.Error(t, err, "line: %s", line)

		var malformed *MalformedError
		assert.ErrorAs(t, err, &malformed, "line: %s", line)
	}
}

func TestParseAttributeCandidateFields(t *testing.T) {
	attribute, err := ParseAttribute(
		"candidate:1 1 TCP 1685987071 24.23.204.141 54609 typ srflx raddr 192.168.1.4 rport 61665 tcptype passive",
	)
	require.NoError(t, err)

	candidate, ok := attribute.Value.(*Candidate)
	require.True(t, ok)
	assert.Equal(t, &Candidate{
		Foundation:     "1",
		Component:      1,
		Transport:      CandidateTransportTCP,
		Priority:       1685987071,
		Address:        net.ParseIP("24.23.204.141"),
		Port:           54609,
		Typ:            CandidateTypeSrflx,
		RelatedAddress: net.ParseIP("192.168.1.4"),
		RelatedPort:    RefUint32(61665),
		TCPType:        CandidateTCPTypePassive,
	}, candidate)
}

func TestParseAttributeCandidateSentinels(t *testing.T) {
	testCases := []struct {
		line        string
		expectedErr error
	}{
		{"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ", errCandidateTokens},
		{"candidate:0 1 FOO 2122252543 172.16.156.106 49760 typ host", errCandidateTransportUnknown},
		{"candidate:0 1 UDP 2122252543 172.16.156.106 70000 typ host", errPortRange},
		{"candidate:0 1 UDP 2122252543 172.16.156.106 65536 typ host", errPortRange},
		{"candidate:0 1 UDP 2122252543 172.16.156.106 49760 type host", errCandidateTypToken},
		{"candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ fost", errCandidateTypeUnknown},
		{"candidate:1 1 UDP 1685987071 24.23.204.141 54609 typ srflx raddr 192.168.1.4 rport 70000", errPortRange},
		{"candidate:1 1 TCP 1685987071 24.23.204.141 54609 typ srflx tcptype foo", errCandidateTCPTypeUnknown},
	}

	for i, testCase := range testCases {
		_, err := ParseAttribute(testCase.line)
		assert.ErrorIs(t,
			err,
			testCase.expectedErr,
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestParseAttributeCandidateExtensions(t *testing.T) {
	t.Run("DanglingTokenIgnored", func(t *testing.T) {
		attribute, err := ParseAttribute("candidate:0 1 TCP 2122252543 172.16.156.106 49760 typ host tcptype")
		require.NoError(t, err)

		candidate, ok := attribute.Value.(*Candidate)
		require.True(t, ok)
		assert.Equal(t, CandidateTCPType(Unknown), candidate.TCPType)
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		_, err := ParseAttribute("candidate:0 1 UDP 2122252543 172.16.156.106 49760 typ host generation 0")
		assert.ErrorIs(t, err, errCandidateExtensionUnknown)

		var unsupported *UnsupportedError
		assert.ErrorAs(t, err, &unsupported)
	})
}

func TestParseAttributeCandidateRandomPorts(t *testing.T) {
	generator := randutil.NewMathRandomGenerator()

	for i := 0; i < 20; i++ {
		port := generator.Uint32() % (maxPort + 1)
		line := fmt.Sprintf("candidate:0 1 UDP 2122252543 172.16.156.106 %d typ host", port)

		attribute, err := ParseAttribute(line)
		require.NoError(t, err, "line: %s", line)

		candidate, ok := attribute.Value.(*Candidate)
		require.True(t, ok)
		assert.Equal(t, port, candidate.Port)
	}
}
