package jsonvalue

import "sort"

// Mutators operate on Array and Object values only; calling them on any
// other kind is a silent no-op, not an error. Arguments are converted
// through NewValue, so inserting a *Value stores a deep copy of its state
// at insertion time: adding a container to itself captures a snapshot
// rather than creating a cycle. Every mutation clears the receiver's
// cached encoding.

// Add appends value to an Array.
func (v *Value) Add(value any) {
	if v.Type() != TypeArray {
		return
	}
	v.Insert(value, len(v.arrayValue))
}

// Insert places value into an Array at index, shifting subsequent
// elements. The index is clamped to [0, Size()]; out-of-range indices
// never fail.
func (v *Value) Insert(value any, index int) {
	if v.Type() != TypeArray {
		return
	}
	elem := NewValue(value)
	if index < 0 {
		index = 0
	}
	if index > len(v.arrayValue) {
		index = len(v.arrayValue)
	}
	v.arrayValue = append(v.arrayValue, nil)
	copy(v.arrayValue[index+1:], v.arrayValue[index:])
	v.arrayValue[index] = elem
	v.encoding = ""
}

// Set stores value in an Object under key, replacing any existing member.
func (v *Value) Set(key string, value any) {
	if v.Type() != TypeObject {
		return
	}
	if v.objectValue == nil {
		v.objectValue = make(map[string]*Value)
	}
	v.objectValue[key] = NewValue(value)
	v.encoding = ""
}

// Remove deletes the Object member under key if present.
func (v *Value) Remove(key string) {
	if v.Type() != TypeObject {
		return
	}
	delete(v.objectValue, key)
	v.encoding = ""
}

// RemoveAt deletes the Array element at index if it is in range.
func (v *Value) RemoveAt(index int) {
	if v.Type() != TypeArray {
		return
	}
	if index >= 0 && index < len(v.arrayValue) {
		v.arrayValue = append(v.arrayValue[:index], v.arrayValue[index+1:]...)
	}
	v.encoding = ""
}

// Keys returns the member keys of an Object in sorted order, matching the
// order members are encoded in. It returns nil for every other kind.
func (v *Value) Keys() []string {
	if v.Type() != TypeObject {
		return nil
	}
	keys := make([]string, 0, len(v.objectValue))
	for key := range v.objectValue {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ForEachElement calls fn for each Array element in order until fn
// returns false. Elements are views for reading, as with Index.
func (v *Value) ForEachElement(fn func(index int, element *Value) bool) {
	if v.Type() != TypeArray {
		return
	}
	for i, elem := range v.arrayValue {
		if !fn(i, elem) {
			return
		}
	}
}

// ForEachMember calls fn for each Object member in key order until fn
// returns false.
func (v *Value) ForEachMember(fn func(key string, member *Value) bool) {
	if v.Type() != TypeObject {
		return
	}
	for _, key := range v.Keys() {
		if !fn(key, v.objectValue[key]) {
			return
		}
	}
}
