package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a backend entity identifier. The backend emits ids as JSON numbers
// but some child resources quote them; both decode to the same value. A
// missing, null or unparseable id decodes to 0, which means "absent".
type ID int64

// UnmarshalJSON accepts a number, a quoted number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*id = 0
			return nil
		}
		data = []byte(s)
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		*id = 0
		return nil
	}
	*id = ID(n)
	return nil
}

// Valid reports whether the id is present.
func (id ID) Valid() bool {
	return id > 0
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a path or query parameter. Non-positive values are rejected.
func ParseID(s string) (ID, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return ID(n), true
}

// BusinessUnitSet is the acting user's access scope. The zero value is the
// empty scope, which authorizes nothing.
type BusinessUnitSet map[ID]struct{}

// NewBusinessUnitSet collects the valid ids in ids.
func NewBusinessUnitSet(ids ...ID) BusinessUnitSet {
	s := make(BusinessUnitSet, len(ids))
	for _, id := range ids {
		if id.Valid() {
			s[id] = struct{}{}
		}
	}
	return s
}

// Contains reports whether bu is in scope.
func (s BusinessUnitSet) Contains(bu ID) bool {
	_, ok := s[bu]
	return ok
}

// Empty reports whether the scope authorizes nothing.
func (s BusinessUnitSet) Empty() bool {
	return len(s) == 0
}
