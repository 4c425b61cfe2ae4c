package innflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an identifier assigned by the remote API. The API is not consistent
// about its type, so both JSON numbers and strings are accepted.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to decode id: %w", err)
		}

		*id = ID(value)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("failed to decode id: %w", err)
	}

	*id = ID(number.String())

	return nil
}

// MarshalJSON writes canonical integer ids as numbers and everything else,
// including "007" or "+17", as strings so the value is sent back unchanged.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}

func (id ID) Int() (int, bool) {
	value, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, false
	}

	return value, true
}

func (id ID) String() string {
	return string(id)
}

func (id ID) Empty() bool {
	return id == ""
}
