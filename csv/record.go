package csv

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v2"
)

// Record is a set of field values that remembers the order in which
// its fields were first set
type Record struct {
	keys   []string
	values map[string]interface{}
}

// NewRecord creates a record from key/value pairs, eg. NewRecord("name", "Cat Chow", "price", 5.29).
// It panics if a key isn't a string.
func NewRecord(kv ...interface{}) *Record {
	r := &Record{values: map[string]interface{}{}}

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("csv: record key at position %d must be a string, %T given", i, kv[i]))
		}

		var val interface{}
		if i+1 < len(kv) {
			val = kv[i+1]
		}

		r.Set(key, val)
	}

	return r
}

// RecordFromMap creates a record from m with its keys in sorted order
func RecordFromMap(m map[string]interface{}) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := NewRecord()
	for _, k := range keys {
		r.Set(k, m[k])
	}

	return r
}

// RecordFromMapSlice creates a record from an ordered yaml mapping.
// Keys are formatted with fmt when they aren't strings.
func RecordFromMapSlice(ms yaml.MapSlice) *Record {
	r := NewRecord()
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			key = fmt.Sprint(item.Key)
		}

		r.Set(key, item.Value)
	}

	return r
}

// Set sets the value of key, appending key to the record's order when new
func (r *Record) Set(key string, val interface{}) {
	if r.values == nil {
		r.values = map[string]interface{}{}
	}

	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = val
}

// Get returns the value of key. A nil record has no values.
func (r *Record) Get(key string) interface{} {
	if r == nil {
		return nil
	}

	return r.values[key]
}

// Has reports whether key has been set
func (r *Record) Has(key string) bool {
	if r == nil {
		return false
	}

	_, ok := r.values[key]
	return ok
}

// Delete removes key from the record
func (r *Record) Delete(key string) {
	if !r.Has(key) {
		return
	}

	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the record's keys in order
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of fields
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// Map returns a copy of the record's values
func (r *Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, r.Len())
	for _, k := range r.Keys() {
		m[k] = r.values[k]
	}

	return m
}

// MapSlice returns the record as an ordered yaml mapping
func (r *Record) MapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, r.Len())
	for _, k := range r.Keys() {
		ms = append(ms, yaml.MapItem{Key: k, Value: r.values[k]})
	}

	return ms
}

// MarshalYAML writes the record as a mapping that keeps field order
func (r *Record) MarshalYAML() (interface{}, error) {
	return r.MapSlice(), nil
}

// UnmarshalYAML reads a mapping into the record, keeping field order
func (r *Record) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var ms yaml.MapSlice
	if err := unmarshal(&ms); err != nil {
		return err
	}

	*r = *RecordFromMapSlice(ms)
	return nil
}
