package squill

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValueKind identifies the scalar type a Value carries.
type ValueKind int

// Value kinds.
const (
	KindUnknown ValueKind = iota
	KindBool
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindTinyUnsigned
	KindSmallUnsigned
	KindUnsigned
	KindBigUnsigned
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindTime
	KindUUID
)

// String implements fmt.Stringer.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindTinyInt:
		return "TinyInt"
	case KindSmallInt:
		return "SmallInt"
	case KindInt:
		return "Int"
	case KindBigInt:
		return "BigInt"
	case KindTinyUnsigned:
		return "TinyUnsigned"
	case KindSmallUnsigned:
		return "SmallUnsigned"
	case KindUnsigned:
		return "Unsigned"
	case KindBigUnsigned:
		return "BigUnsigned"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindTime:
		return "Time"
	case KindUUID:
		return "UUID"
	default:
		return "Unknown"
	}
}

// Value is a tagged scalar parameter. Every kind is NULL-capable: a Value
// with a nil payload is the SQL NULL of that kind. Values never appear as
// text in generated SQL; they are appended to a Values sequence and referred
// to by a dialect placeholder.
type Value struct {
	kind ValueKind
	arg  any
}

// Kind returns the scalar kind of the value.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is SQL NULL.
func (v Value) IsNull() bool { return v.arg == nil }

// Arg returns the value as a database/sql argument. NULL values yield a
// typed nil pointer so the driver binds the correct column type.
func (v Value) Arg() any {
	if v.arg != nil {
		return v.arg
	}
	switch v.kind {
	case KindBool:
		return (*bool)(nil)
	case KindTinyInt:
		return (*int8)(nil)
	case KindSmallInt:
		return (*int16)(nil)
	case KindInt:
		return (*int32)(nil)
	case KindBigInt:
		return (*int64)(nil)
	case KindTinyUnsigned:
		return (*uint8)(nil)
	case KindSmallUnsigned:
		return (*uint16)(nil)
	case KindUnsigned:
		return (*uint32)(nil)
	case KindBigUnsigned:
		return (*uint64)(nil)
	case KindFloat:
		return (*float32)(nil)
	case KindDouble:
		return (*float64)(nil)
	case KindString:
		return (*string)(nil)
	case KindBytes:
		return ([]byte)(nil)
	case KindTime:
		return (*time.Time)(nil)
	case KindUUID:
		return (*uuid.UUID)(nil)
	default:
		return nil
	}
}

// BoolValue creates a Bool Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, arg: b} }

// TinyIntValue creates a TinyInt Value.
func TinyIntValue(n int8) Value { return Value{kind: KindTinyInt, arg: n} }

// SmallIntValue creates a SmallInt Value.
func SmallIntValue(n int16) Value { return Value{kind: KindSmallInt, arg: n} }

// IntValue creates an Int Value.
func IntValue(n int32) Value { return Value{kind: KindInt, arg: n} }

// BigIntValue creates a BigInt Value.
func BigIntValue(n int64) Value { return Value{kind: KindBigInt, arg: n} }

// TinyUnsignedValue creates a TinyUnsigned Value.
func TinyUnsignedValue(n uint8) Value { return Value{kind: KindTinyUnsigned, arg: n} }

// SmallUnsignedValue creates a SmallUnsigned Value.
func SmallUnsignedValue(n uint16) Value { return Value{kind: KindSmallUnsigned, arg: n} }

// UnsignedValue creates an Unsigned Value.
func UnsignedValue(n uint32) Value { return Value{kind: KindUnsigned, arg: n} }

// BigUnsignedValue creates a BigUnsigned Value.
func BigUnsignedValue(n uint64) Value { return Value{kind: KindBigUnsigned, arg: n} }

// FloatValue creates a Float Value.
func FloatValue(f float32) Value { return Value{kind: KindFloat, arg: f} }

// DoubleValue creates a Double Value.
func DoubleValue(f float64) Value { return Value{kind: KindDouble, arg: f} }

// StringValue creates a String Value.
func StringValue(s string) Value { return Value{kind: KindString, arg: s} }

// BytesValue creates a Bytes Value.
func BytesValue(b []byte) Value { return Value{kind: KindBytes, arg: b} }

// TimeValue creates a Time Value.
func TimeValue(t time.Time) Value { return Value{kind: KindTime, arg: t} }

// UUIDValue creates a UUID Value.
func UUIDValue(id uuid.UUID) Value { return Value{kind: KindUUID, arg: id} }

// NullValue creates the SQL NULL of the given kind.
func NullValue(kind ValueKind) Value { return Value{kind: kind} }

// ValueOf converts a Go scalar to a Value. A Value passes through unchanged;
// nil becomes an untyped NULL; a nil typed pointer becomes the NULL of its
// kind; everything else maps onto the matching kind. Unsupported types
// panic, since passing one is a programming error, not a runtime condition.
func ValueOf(value any) Value {
	switch v := value.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case bool:
		return BoolValue(v)
	case int8:
		return TinyIntValue(v)
	case int16:
		return SmallIntValue(v)
	case int32:
		return IntValue(v)
	case int:
		return BigIntValue(int64(v))
	case int64:
		return BigIntValue(v)
	case uint8:
		return TinyUnsignedValue(v)
	case uint16:
		return SmallUnsignedValue(v)
	case uint32:
		return UnsignedValue(v)
	case uint:
		return BigUnsignedValue(uint64(v))
	case uint64:
		return BigUnsignedValue(v)
	case float32:
		return FloatValue(v)
	case float64:
		return DoubleValue(v)
	case string:
		return StringValue(v)
	case []byte:
		return BytesValue(v)
	case time.Time:
		return TimeValue(v)
	case uuid.UUID:
		return UUIDValue(v)
	case *bool:
		if v == nil {
			return NullValue(KindBool)
		}
		return BoolValue(*v)
	case *int32:
		if v == nil {
			return NullValue(KindInt)
		}
		return IntValue(*v)
	case *int64:
		if v == nil {
			return NullValue(KindBigInt)
		}
		return BigIntValue(*v)
	case *float64:
		if v == nil {
			return NullValue(KindDouble)
		}
		return DoubleValue(*v)
	case *string:
		if v == nil {
			return NullValue(KindString)
		}
		return StringValue(*v)
	case *time.Time:
		if v == nil {
			return NullValue(KindTime)
		}
		return TimeValue(*v)
	case *uuid.UUID:
		if v == nil {
			return NullValue(KindUUID)
		}
		return UUIDValue(*v)
	default:
		panic(fmt.Sprintf("%T has no Value representation", value))
	}
}

// Values is the ordered parameter sequence produced alongside a SQL string.
// The number of placeholders in the SQL always equals len(Values), in
// emission order.
type Values []Value

// Args converts the values to positional database/sql arguments.
func (vs Values) Args() []any {
	if len(vs) == 0 {
		return nil
	}
	args := make([]any, len(vs))
	for i, v := range vs {
		args[i] = v.Arg()
	}
	return args
}
