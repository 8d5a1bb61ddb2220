package vertex

import (
	"reflect"

	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

// Attribute is implemented by value types that are read as a single vertex
// attribute, such as math.Vec3 or math.Mat4. Builtin integer and float types
// and fixed arrays of them do not need it.
type Attribute interface {
	AttributeType() metadata.AttributeType
}

var attributeInterface = reflect.TypeFor[Attribute]()

// first vector type of each scalar kind, vectors of N components follow at +N-1
var scalarAttributeTypes = map[reflect.Kind]metadata.AttributeType{
	reflect.Int8:    metadata.AttribTypeInt8,
	reflect.Uint8:   metadata.AttribTypeUint8,
	reflect.Int16:   metadata.AttribTypeInt16,
	reflect.Uint16:  metadata.AttribTypeUint16,
	reflect.Int32:   metadata.AttribTypeInt32,
	reflect.Uint32:  metadata.AttribTypeUint32,
	reflect.Int64:   metadata.AttribTypeInt64,
	reflect.Uint64:  metadata.AttribTypeUint64,
	reflect.Float32: metadata.AttribTypeFloat32,
	reflect.Float64: metadata.AttribTypeFloat64,
}

// AttributeTypeOf returns the attribute type a Go type is read as.
//
// Scalars map to their 1-component type, [N]S with N in 1..4 to an N-component
// vector, and [C][R]float32 or [C][R]float64 with C and R in 2..4 to a matrix of
// C columns and R rows.
func AttributeTypeOf(t reflect.Type) (metadata.AttributeType, bool) {
	// pointers are never attributes: their method set includes the value's, and a nil zero would panic
	if t.Kind() == reflect.Pointer {
		return 0, false
	}
	if t.Kind() != reflect.Interface && t.Implements(attributeInterface) {
		return reflect.Zero(t).Interface().(Attribute).AttributeType(), true
	}

	switch t.Kind() {
	case reflect.Array:
		elem := t.Elem()
		if elem.Kind() == reflect.Array {
			return matrixAttributeType(t.Len(), elem.Len(), elem.Elem().Kind())
		}
		base, ok := scalarAttributeTypes[elem.Kind()]
		if !ok || t.Len() < 1 || t.Len() > 4 {
			return 0, false
		}
		return base + metadata.AttributeType(t.Len()-1), true
	default:
		base, ok := scalarAttributeTypes[t.Kind()]
		return base, ok
	}
}

func matrixAttributeType(columns, rows int, kind reflect.Kind) (metadata.AttributeType, bool) {
	if columns < 2 || columns > 4 || rows < 2 || rows > 4 {
		return 0, false
	}
	var base metadata.AttributeType
	switch kind {
	case reflect.Float32:
		base = metadata.AttribTypeFloat32Mat2
	case reflect.Float64:
		base = metadata.AttribTypeFloat64Mat2
	default:
		return 0, false
	}
	return base + metadata.AttributeType((columns-2)*3+(rows-2)), true
}

// AttributeTypeFor is AttributeTypeOf for a type parameter.
func AttributeTypeFor[T any]() (metadata.AttributeType, bool) {
	return AttributeTypeOf(reflect.TypeFor[T]())
}

// IsAttributeSupported reports whether T can be read as an attribute by the
// given context. Types that are not attributes are never supported.
func IsAttributeSupported[T any](caps metadata.CapabilitiesSource) bool {
	t, ok := AttributeTypeFor[T]()
	return ok && t.IsSupported(caps)
}
