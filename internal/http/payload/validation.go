package payload

import (
	"encoding/json"
	"errors"
)

var errNotArray = errors.New("must be an array")

// jsonArray accepts any JSON array; its elements are not inspected.
func jsonArray(value any) error {
	raw, _ := value.(json.RawMessage)

	var elems []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elems) != nil || elems == nil {
		return errNotArray
	}

	return nil
}
