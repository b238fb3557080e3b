package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulcastID(t *testing.T) {
	assert.Equal(t, SimulcastID{ID: "foo"}, NewSimulcastID("foo"))
	assert.Equal(t, SimulcastID{ID: "foo", Paused: true}, NewSimulcastID("~foo"))
	assert.Equal(t, SimulcastID{ID: "", Paused: true}, NewSimulcastID("~"))
}

func TestParseAttributeSimulcast(t *testing.T) {
	for _, line := range []string{
		"simulcast:send 1",
		"simulcast:recv test",
		"simulcast:recv ~test",
		"simulcast:recv test;foo",
		"simulcast:recv foo,bar",
		"simulcast:recv foo,bar;test",
		"simulcast:recv 1;4,5 send 6;7",
		"simulcast:send 1,2,3;~4,~5 recv 6;~7,~8",
		// Old draft 03 notation used by Firefox 55.
		"simulcast: send rid=foo;bar",
	} {
		attribute, err := ParseAttribute(line)
		require.NoError(t, err, "line: %s", line)
		assert.Equal(t, AttributeKindSimulcast, attribute.Kind, "line: %s", line)
	}

	for _, line := range []string{
		"simulcast:",
		"simulcast:send",
		"simulcast:foobar 1",
		"simulcast:send 1 foobar 2",
	} {
		_, err := ParseAttribute(line)
		assert.Error(t, err, "line: %s", line)

		var malformed *MalformedError
		assert.ErrorAs(t, err, &malformed, "line: %s", line)
	}
}

func TestParseAttributeSimulcastFields(t *testing.T) {
	attribute, err := ParseAttribute("simulcast:send 1,2,3;~4,~5 recv 6;~7,~8")
	require.NoError(t, err)

	simulcast, ok := attribute.Value.(*Simulcast)
	require.True(t, ok)
	assert.Equal(t, &Simulcast{
		Send: []SimulcastAlternatives{
			{{ID: "1"}, {ID: "2"}, {ID: "3"}},
			{{ID: "4", Paused: true}, {ID: "5", Paused: true}},
		},
		Receive: []SimulcastAlternatives{
			{{ID: "6"}},
			{{ID: "7", Paused: true}, {ID: "8", Paused: true}},
		},
	}, simulcast)
}

func TestParseAttributeSimulcastRepeatedDirection(t *testing.T) {
	attribute, err := ParseAttribute("simulcast:send 1;4,5 send 6;7")
	require.NoError(t, err)

	simulcast, ok := attribute.Value.(*Simulcast)
	require.True(t, ok)
	assert.Equal(t, []SimulcastAlternatives{
		{{ID: "6"}},
		{{ID: "7"}},
	}, simulcast.Send)
	assert.Nil(t, simulcast.Receive)
}

func TestParseAttributeSimulcastSentinels(t *testing.T) {
	_, err := ParseAttribute("simulcast:")
	assert.ErrorIs(t, err, errSimulcastDirectionMissing)

	_, err = ParseAttribute("simulcast:foobar 1")
	assert.ErrorIs(t, err, errSimulcastDirectionUnknown)

	_, err = ParseAttribute("simulcast:send")
	assert.ErrorIs(t, err, errSimulcastIDListMissing)

	_, err = ParseAttribute("simulcast:send 1 recv")
	assert.ErrorIs(t, err, errSimulcastIDListMissing)
}
