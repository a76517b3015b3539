// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal decodes a named NBT root from data and binds it onto out,
// which must be a non-nil pointer. Compounds bind onto structs (field
// names or `nbt:"name"` tags select entries; `nbt:"-"` skips a
// field) and onto map[string]T; lists bind onto slices; scalars bind
// onto the matching Go numeric kinds.
//
// Integer binding is strict at the ambiguous widths: an int8 or uint8
// field accepts only a Byte-tagged wire value, int16/uint16 only
// Short, int32/uint32 only Int. A numerically representable value of
// another width is refused with ErrTypeMismatch — this is what keeps
// a round trip through typed structs from silently rewriting wire
// tags. int64, int, and the unsigned equivalents are wide enough to
// be unambiguous and accept any integer kind, as do the float kinds.
//
// Fields typed ByteArray, IntArray, or LongArray (or the slice types
// []int8, []int32, []int64) are gated on the wire's array kind:
// binding an IntArray field against a LongArray payload fails with
// ErrArrayTypeMismatch rather than reinterpreting elements. Fields
// typed Value (or any) capture the decoded subtree as-is.
func Unmarshal(data []byte, out any) error {
	_, v, err := DecodeNamed(data)
	if err != nil {
		return err
	}
	return Bind(v, out)
}

// UnmarshalBorrowed is Unmarshal in zero-copy mode: array-typed
// fields reference data directly and are valid only while data is.
func UnmarshalBorrowed(data []byte, out any) error {
	v, err := DecodeBorrowed(data)
	if err != nil {
		return err
	}
	return Bind(v, out)
}

// Bind binds an already-decoded value onto out, which must be a
// non-nil pointer. See Unmarshal for the binding rules.
func Bind(v Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("nbt: Bind target must be a non-nil pointer, have %T", out)
	}
	b := &binder{}
	return b.bind(v, rv.Elem())
}

// binder tracks the value-tree path for error reporting during
// binding. Binding operates on decoded values, so errors carry a
// path but no byte offset.
type binder struct {
	path []string
}

func (b *binder) errf(kind error, format string, args ...any) error {
	return &DecodeError{
		Kind:   kind,
		Offset: -1,
		Path:   strings.Join(b.path, "/"),
		Detail: fmt.Sprintf(format, args...),
	}
}

var (
	valueType     = reflect.TypeOf((*Value)(nil)).Elem()
	byteArrayType = reflect.TypeOf(ByteArray{})
	intArrayType  = reflect.TypeOf(IntArray{})
	longArrayType = reflect.TypeOf(LongArray{})
)

func (b *binder) bind(v Value, rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return b.bind(v, rv.Elem())
	}

	// Value-typed and any-typed targets capture the subtree without
	// further interpretation.
	if rv.Kind() == reflect.Interface &&
		(rv.Type() == valueType || rv.NumMethod() == 0) {
		rv.Set(reflect.ValueOf(v))
		return nil
	}

	// The dedicated array types go through the element-kind gate.
	switch rv.Type() {
	case byteArrayType, intArrayType, longArrayType:
		return b.bindArray(v, rv)
	}

	// A field typed as one of the variant types directly (Compound,
	// List, Byte, ...) binds only its own kind.
	if reflect.TypeOf(v).AssignableTo(rv.Type()) {
		rv.Set(reflect.ValueOf(v))
		return nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		// NBT has no boolean kind; Byte 0/1 is the convention.
		value, err := AsByte(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetBool(value != 0)
		return nil

	case reflect.Int8:
		value, err := AsByte(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetInt(int64(value))
		return nil

	case reflect.Int16:
		value, err := AsShort(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetInt(int64(value))
		return nil

	case reflect.Int32:
		value, err := AsInt(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetInt(int64(value))
		return nil

	case reflect.Int64, reflect.Int:
		value, ok := anyInt(v)
		if !ok {
			return b.errf(ErrTypeMismatch, "expected an integer kind, have %s", v.Tag())
		}
		rv.SetInt(value)
		return nil

	case reflect.Uint8:
		value, err := AsByte(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetUint(uint64(uint8(value)))
		return nil

	case reflect.Uint16:
		value, err := AsShort(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetUint(uint64(uint16(value)))
		return nil

	case reflect.Uint32:
		value, err := AsInt(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetUint(uint64(uint32(value)))
		return nil

	case reflect.Uint64, reflect.Uint:
		value, ok := anyInt(v)
		if !ok {
			return b.errf(ErrTypeMismatch, "expected an integer kind, have %s", v.Tag())
		}
		rv.SetUint(uint64(value))
		return nil

	case reflect.Float32, reflect.Float64:
		switch value := v.(type) {
		case Float:
			rv.SetFloat(float64(value))
			return nil
		case Double:
			rv.SetFloat(float64(value))
			return nil
		default:
			return b.errf(ErrTypeMismatch, "expected a float kind, have %s", v.Tag())
		}

	case reflect.String:
		value, err := AsString(v)
		if err != nil {
			return b.reanchor(err)
		}
		rv.SetString(value)
		return nil

	case reflect.Slice:
		return b.bindSlice(v, rv)

	case reflect.Map:
		return b.bindMap(v, rv)

	case reflect.Struct:
		return b.bindStruct(v, rv)

	default:
		return fmt.Errorf("nbt: cannot bind %s onto %s", v.Tag(), rv.Type())
	}
}

// bindArray sets a ByteArray/IntArray/LongArray field, enforcing the
// element-kind gate: a payload of another array kind is an
// ErrArrayTypeMismatch, anything else an ErrTypeMismatch.
func (b *binder) bindArray(v Value, rv reflect.Value) error {
	var want Tag
	switch rv.Type() {
	case byteArrayType:
		want = TagByteArray
	case intArrayType:
		want = TagIntArray
	default:
		want = TagLongArray
	}

	got := v.Tag()
	switch got {
	case TagByteArray, TagIntArray, TagLongArray:
		if err := checkElementKind(got, want); err != nil {
			return b.reanchor(err)
		}
		rv.Set(reflect.ValueOf(v))
		return nil
	default:
		return b.errf(ErrTypeMismatch, "expected %s, have %s", want, got)
	}
}

// bindSlice binds a List elementwise, or one of the array kinds onto
// []int8/[]int32/[]int64 (gated like the dedicated array types).
func (b *binder) bindSlice(v Value, rv reflect.Value) error {
	switch elemKind := rv.Type().Elem().Kind(); elemKind {
	case reflect.Int8, reflect.Int32, reflect.Int64:
		arr, err := b.arraySlice(v, elemKind)
		if err != nil {
			return err
		}
		if arr.IsValid() {
			rv.Set(arr.Convert(rv.Type()))
			return nil
		}
	}

	list, ok := v.(List)
	if !ok {
		return b.errf(ErrTypeMismatch, "expected List, have %s", v.Tag())
	}
	out := reflect.MakeSlice(rv.Type(), len(list.Elems), len(list.Elems))
	for i, elem := range list.Elems {
		b.path = append(b.path, fmt.Sprint(i))
		err := b.bind(elem, out.Index(i))
		b.path = b.path[:len(b.path)-1]
		if err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

// arraySlice materializes an array value as a reflect slice when v is
// an array kind matching elemKind. Returns a zero Value (and nil
// error) when v is not an array at all, letting the caller fall back
// to List binding.
func (b *binder) arraySlice(v Value, elemKind reflect.Kind) (reflect.Value, error) {
	want := TagByteArray
	switch elemKind {
	case reflect.Int32:
		want = TagIntArray
	case reflect.Int64:
		want = TagLongArray
	}

	got := v.Tag()
	switch got {
	case TagByteArray, TagIntArray, TagLongArray:
	default:
		return reflect.Value{}, nil
	}
	if err := checkElementKind(got, want); err != nil {
		return reflect.Value{}, b.reanchor(err)
	}

	switch value := v.(type) {
	case ByteArray:
		elems, err := value.Slice()
		if err != nil {
			return reflect.Value{}, b.reanchor(err)
		}
		return reflect.ValueOf(elems), nil
	case IntArray:
		elems, err := value.Slice()
		if err != nil {
			return reflect.Value{}, b.reanchor(err)
		}
		return reflect.ValueOf(elems), nil
	default:
		elems, err := v.(LongArray).Slice()
		if err != nil {
			return reflect.Value{}, b.reanchor(err)
		}
		return reflect.ValueOf(elems), nil
	}
}

func (b *binder) bindMap(v Value, rv reflect.Value) error {
	compound, ok := v.(Compound)
	if !ok {
		return b.errf(ErrTypeMismatch, "expected Compound, have %s", v.Tag())
	}
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("nbt: map target must have string keys, have %s", rv.Type())
	}
	out := reflect.MakeMapWithSize(rv.Type(), len(compound))
	elemType := rv.Type().Elem()
	for name, elem := range compound {
		target := reflect.New(elemType).Elem()
		b.path = append(b.path, name)
		err := b.bind(elem, target)
		b.path = b.path[:len(b.path)-1]
		if err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()), target)
	}
	rv.Set(out)
	return nil
}

func (b *binder) bindStruct(v Value, rv reflect.Value) error {
	compound, ok := v.(Compound)
	if !ok {
		return b.errf(ErrTypeMismatch, "expected Compound, have %s", v.Tag())
	}
	structType := rv.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("nbt"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		elem, present := compound[name]
		if !present {
			// Absent entries leave the field at its zero value,
			// matching how optional compound members behave.
			continue
		}
		b.path = append(b.path, name)
		err := b.bind(elem, rv.Field(i))
		b.path = b.path[:len(b.path)-1]
		if err != nil {
			return err
		}
	}
	return nil
}

// anyInt widens any integer variant to int64. The 64-bit target is
// unambiguous, so no strict gate applies.
func anyInt(v Value) (int64, bool) {
	switch value := v.(type) {
	case Byte:
		return int64(value), true
	case Short:
		return int64(value), true
	case Int:
		return int64(value), true
	case Long:
		return int64(value), true
	default:
		return 0, false
	}
}

// reanchor attaches the binder's current path to an accessor or gate
// error, which carries only kind and detail.
func (b *binder) reanchor(err error) error {
	if de, ok := err.(*DecodeError); ok && de.Path == "" {
		de.Path = strings.Join(b.path, "/")
	}
	return err
}
