package render

import (
	"fmt"
	"strings"
)

// ValueType is a set of primitive value types a term declares through
// has_value_type relationships. Each variant occupies one bit, so a
// term declaring several compatible types combines them with OR and
// each contributing bit remains recoverable by masking.
type ValueType uint16

const (
	NoType             ValueType = 0
	String             ValueType = 0b00000001
	Integer            ValueType = 0b00000010
	Float              ValueType = 0b00000100
	Double             ValueType = 0b00001000
	NonNegativeInteger ValueType = 0b00010000
	PositiveInteger    ValueType = 0b00100000
	DateTime           ValueType = 0b01000000
	Boolean            ValueType = 0b10000000

	// ListOf marks repeated values; no xsd token maps to it, it exists
	// for downstream composition with the scalar bits.
	ListOf ValueType = 0b1000000000000000
)

// xsdToType maps the declared xsd tokens to their ValueType bit.
var xsdToType = map[string]ValueType{
	"xsd:int":                Integer,
	"xsd:integer":            Integer,
	"xsd:string":             String,
	"xsd:float":              Float,
	"xsd:double":             Double,
	"xsd:nonNegativeInteger": NonNegativeInteger,
	"xsd:positiveInteger":    PositiveInteger,
	"xsd:dateTime":           DateTime,
	"xsd:boolean":            Boolean,
}

// UnknownTypeError reports a has_value_type target outside the fixed
// xsd vocabulary. Silently dropping the bit would corrupt downstream
// consumers, so the run aborts instead.
type UnknownTypeError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown value type token: %s", e.Token)
}

// ValueTypeFromXSD maps one declared xsd token to its bit.
func ValueTypeFromXSD(token string) (ValueType, error) {
	vt, ok := xsdToType[token]
	if !ok {
		return NoType, &UnknownTypeError{Token: token}
	}
	return vt, nil
}

// Has reports whether all bits of flag are set in v.
func (v ValueType) Has(flag ValueType) bool {
	return v&flag == flag
}

// String renders the set for diagnostics, e.g. "Integer|PositiveInteger".
func (v ValueType) String() string {
	if v == NoType {
		return "NoType"
	}
	names := []struct {
		bit  ValueType
		name string
	}{
		{String, "String"},
		{Integer, "Integer"},
		{Float, "Float"},
		{Double, "Double"},
		{NonNegativeInteger, "NonNegativeInteger"},
		{PositiveInteger, "PositiveInteger"},
		{DateTime, "DateTime"},
		{Boolean, "Boolean"},
		{ListOf, "ListOf"},
	}
	var parts []string
	for _, n := range names {
		if v.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
