package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// ReadJSON loads a dataset from a top-level JSON array of objects.
// null and absent keys become Missing; numbers and booleans keep their
// kind; strings stay strings (an empty string stays a zero-length String).
// A non-object element is malformed input, not a degenerate case.
// Column order is the sorted union of keys, so iteration is deterministic.
func ReadJSON(r io.Reader) (*Dataset, error) {
	var raw []any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("not a JSON array of objects: %v", err)}
	}

	seen := make(map[string]struct{})
	rows := make([]Row, 0, len(raw))
	for i, element := range raw {
		obj, ok := element.(map[string]any)
		if !ok {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("row %d is not an object", i)}
		}

		row := make(Row, len(obj))
		for key, value := range obj {
			seen[key] = struct{}{}
			row[key] = jsonCell(value)
		}
		rows = append(rows, row)
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	return New(columns, rows), nil
}

// ReadJSONFile loads a dataset from a JSON file on disk.
func ReadJSONFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadJSON(file)
}

func jsonCell(value any) Cell {
	switch v := value.(type) {
	case nil:
		return Missing()
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		// Nested arrays/objects are kept as their JSON text.
		encoded, err := json.Marshal(v)
		if err != nil {
			return Missing()
		}
		return String(string(encoded))
	}
}
