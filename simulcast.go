package sdp

import "strings"

// SimulcastID is a single rid inside a simulcast alternatives list. A '~'
// prefix on the wire marks the id as paused.
type SimulcastID struct {
	ID     string
	Paused bool
}

// NewSimulcastID defines a procedure for creating a new SimulcastID from a
// raw id token, honoring the '~' paused prefix.
func NewSimulcastID(raw string) SimulcastID {
	if strings.HasPrefix(raw, "~") {
		return SimulcastID{ID: raw[1:], Paused: true}
	}

	return SimulcastID{ID: raw}
}

// SimulcastAlternatives is one simulcast stream given as an ordered list of
// alternative ids.
type SimulcastAlternatives []SimulcastID

// Simulcast represents the send and receive rid alternatives declared by a
// simulcast attribute. Declaring a direction twice overwrites the earlier
// alternatives of that direction.
type Simulcast struct {
	Send    []SimulcastAlternatives
	Receive []SimulcastAlternatives
}

func (s *Simulcast) attributeValue() {}

func parseSimulcastIDList(idList string) []SimulcastAlternatives {
	var list []SimulcastAlternatives
	for _, alternativesToken := range strings.Split(idList, ";") {
		var alternatives SimulcastAlternatives
		for _, id := range strings.Split(alternativesToken, ",") {
			alternatives = append(alternatives, NewSimulcastID(id))
		}
		list = append(list, alternatives)
	}

	return list
}

func parseSimulcast(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return nil, &MalformedError{Err: errSimulcastDirectionMissing, Value: value}
	}

	simulcast := &Simulcast{}
	for i := 0; i < len(tokens); i += 2 {
		direction := strings.ToLower(tokens[i])
		if direction != "send" && direction != "recv" {
			return nil, &MalformedError{Err: errSimulcastDirectionUnknown, Value: value}
		}

		if i+1 >= len(tokens) {
			return nil, &MalformedError{Err: errSimulcastIDListMissing, Value: value}
		}

		list := parseSimulcastIDList(tokens[i+1])
		if direction == "send" {
			simulcast.Send = list
		} else {
			simulcast.Receive = list
		}
	}

	return simulcast, nil
}
