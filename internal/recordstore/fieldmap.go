package recordstore

import (
	"fmt"
	"sort"
)

// FieldMap maps application field names to record store field names, e.g. "websiteUrl" -> "website_url_c".
type FieldMap map[string]string

// ReadOnly lists application fields the store maintains itself.
var ReadOnly = map[string]bool{"id": true, "createdAt": true, "updatedAt": true}

// Fields returns the external names of every mapped field in a stable order.
func (m FieldMap) Fields() []string {
	out := make([]string, 0, len(m))
	for _, ext := range m {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// External resolves an application field name.
func (m FieldMap) External(name string) (string, bool) {
	ext, ok := m[name]
	return ext, ok
}

// UnknownFieldError is returned by Translate for keys that are not mapped or not writable.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field %q cannot be written", e.Field)
}

// Translate renames a partial update from application names to store names.
func (m FieldMap) Translate(changes map[string]any) (Record, error) {
	rec := make(Record, len(changes))
	for name, v := range changes {
		ext, ok := m[name]
		if !ok || ReadOnly[name] {
			return nil, &UnknownFieldError{Field: name}
		}
		rec[ext] = v
	}
	return rec, nil
}
