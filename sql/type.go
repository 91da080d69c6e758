package sql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Type represents a column or literal type with its canonical SQL spelling.
type Type interface {
	// Name returns the canonical spelling of the type, as it appears in
	// rendered DDL.
	Name() string
	// FormatValue renders a Go value as a SQL literal of this type.
	FormatValue(v interface{}) (string, error)
}

var (
	// Boolean is a boolean type.
	Boolean = booleanType{}
	// Int8 is an 8-bit signed integer type.
	Int8 = numberType{"Int8", false, false}
	// Int16 is a 16-bit signed integer type.
	Int16 = numberType{"Int16", false, false}
	// Int32 is a 32-bit signed integer type.
	Int32 = numberType{"Int32", false, false}
	// Int64 is a 64-bit signed integer type.
	Int64 = numberType{"Int64", false, false}
	// UInt8 is an 8-bit unsigned integer type.
	UInt8 = numberType{"UInt8", true, false}
	// UInt16 is a 16-bit unsigned integer type.
	UInt16 = numberType{"UInt16", true, false}
	// UInt32 is a 32-bit unsigned integer type.
	UInt32 = numberType{"UInt32", true, false}
	// UInt64 is a 64-bit unsigned integer type.
	UInt64 = numberType{"UInt64", true, false}
	// Float32 is a 32-bit floating point type.
	Float32 = numberType{"Float32", false, true}
	// Float64 is a 64-bit floating point type.
	Float64 = numberType{"Float64", false, true}
	// String is a string type.
	String = stringType{}
)

// Array returns a new array type of the given element type.
func Array(elem Type) Type {
	return arrayType{elem}
}

// TupleField is one named field of a tuple type.
type TupleField struct {
	Name string
	Type Type
}

// Tuple returns a new tuple type with the given fields.
func Tuple(fields ...TupleField) Type {
	return tupleType{fields}
}

type booleanType struct{}

func (t booleanType) Name() string { return "BOOLEAN" }

func (t booleanType) FormatValue(v interface{}) (string, error) {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return "", ErrValueNotFormattable.New(v, t.Name())
	}
	return strconv.FormatBool(b), nil
}

type numberType struct {
	name     string
	unsigned bool
	float    bool
}

func (t numberType) Name() string { return t.name }

func (t numberType) FormatValue(v interface{}) (string, error) {
	switch {
	case t.float:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return "", ErrValueNotFormattable.New(v, t.name)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case t.unsigned:
		u, err := cast.ToUint64E(v)
		if err != nil {
			return "", ErrValueNotFormattable.New(v, t.name)
		}
		return strconv.FormatUint(u, 10), nil
	default:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return "", ErrValueNotFormattable.New(v, t.name)
		}
		return strconv.FormatInt(i, 10), nil
	}
}

type stringType struct{}

func (t stringType) Name() string { return "STRING" }

func (t stringType) FormatValue(v interface{}) (string, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", ErrValueNotFormattable.New(v, t.Name())
	}
	return QuoteString(s), nil
}

type arrayType struct {
	elem Type
}

func (t arrayType) Name() string {
	return fmt.Sprintf("ARRAY(%s)", t.elem.Name())
}

func (t arrayType) FormatValue(v interface{}) (string, error) {
	vals, ok := v.([]interface{})
	if !ok {
		return "", ErrValueNotFormattable.New(v, t.Name())
	}

	elems := make([]string, len(vals))
	for i, val := range vals {
		e, err := t.elem.FormatValue(val)
		if err != nil {
			return "", err
		}
		elems[i] = e
	}
	return "[" + strings.Join(elems, ", ") + "]", nil
}

type tupleType struct {
	fields []TupleField
}

func (t tupleType) Name() string {
	fields := make([]string, len(t.fields))
	for i, f := range t.fields {
		fields[i] = f.Name + " " + f.Type.Name()
	}
	return fmt.Sprintf("TUPLE(%s)", strings.Join(fields, ", "))
}

func (t tupleType) FormatValue(v interface{}) (string, error) {
	vals, ok := v.([]interface{})
	if !ok || len(vals) != len(t.fields) {
		return "", ErrValueNotFormattable.New(v, t.Name())
	}

	elems := make([]string, len(vals))
	for i, val := range vals {
		e, err := t.fields[i].Type.FormatValue(val)
		if err != nil {
			return "", err
		}
		elems[i] = e
	}
	return "(" + strings.Join(elems, ", ") + ")", nil
}

// QuoteString renders s as a single-quoted SQL string literal, doubling any
// embedded quote.
func QuoteString(s string) string {
	return "'" + strings.Replace(s, "'", "''", -1) + "'"
}
