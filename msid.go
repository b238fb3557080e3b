package sdp

import "strings"

// MSID represents a media stream id declared by an msid attribute. AppData
// is only set when a second token was present, anything after the second
// token is ignored.
type MSID struct {
	ID      string
	AppData *string
}

func (m *MSID) attributeValue() {}

func parseMSID(value string) (AttributeValue, error) {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return nil, &MalformedError{Err: errMSIDTokenMissing, Value: value}
	}

	msid := &MSID{ID: tokens[0]}
	if len(tokens) > 1 {
		msid.AppData = RefString(tokens[1])
	}

	return msid, nil
}
