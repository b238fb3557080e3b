package sdp

import (
	"errors"

	"github.com/pion/logging"
)

// ParseAttributeLines parses a sequence of attribute lines, each given as
// the text after the "a=" prefix. Lines failing with an UnsupportedError
// are logged and skipped, any malformed line aborts parsing.
func ParseAttributeLines(log logging.LeveledLogger, lines []string) ([]*Attribute, error) {
	attributes := make([]*Attribute, 0, len(lines))

	for _, line := range lines {
		attribute, err := ParseAttribute(line)
		if err != nil {
			var unsupported *UnsupportedError
			if errors.As(err, &unsupported) {
				log.Warnf("Skipping unsupported attribute: %v", err)

				continue
			}

			return nil, err
		}

		attributes = append(attributes, attribute)
	}

	return attributes, nil
}
