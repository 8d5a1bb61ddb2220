package metadata

import "fmt"

/** @brief Scalar kind of the components of an attribute type. */
type ComponentType int

const (
	ComponentInt8 ComponentType = iota
	ComponentUint8
	ComponentInt16
	ComponentUint16
	ComponentInt32
	ComponentUint32
	ComponentInt64
	ComponentUint64
	ComponentFloat16
	ComponentFloat32
	ComponentFloat64
	/** @brief 2_10_10_10 integer components packed in a single 32-bit word. */
	ComponentPacked
	/** @brief 10_11_11 unsigned float components packed in a single 32-bit word. */
	ComponentPackedFloat
)

/**
 * @brief Types of data a GPU can read as a vertex attribute.
 * Vectors use a _N suffix for their component count. Matrices are named
 * MatC (square) or MatCxR with C columns of R rows, as in GLSL.
 */
type AttributeType uint8

const (
	AttribTypeInt8 AttributeType = iota
	AttribTypeInt8_2
	AttribTypeInt8_3
	AttribTypeInt8_4
	AttribTypeUint8
	AttribTypeUint8_2
	AttribTypeUint8_3
	AttribTypeUint8_4
	AttribTypeInt16
	AttribTypeInt16_2
	AttribTypeInt16_3
	AttribTypeInt16_4
	AttribTypeUint16
	AttribTypeUint16_2
	AttribTypeUint16_3
	AttribTypeUint16_4
	AttribTypeInt32
	AttribTypeInt32_2
	AttribTypeInt32_3
	AttribTypeInt32_4
	AttribTypeUint32
	AttribTypeUint32_2
	AttribTypeUint32_3
	AttribTypeUint32_4
	AttribTypeInt64
	AttribTypeInt64_2
	AttribTypeInt64_3
	AttribTypeInt64_4
	AttribTypeUint64
	AttribTypeUint64_2
	AttribTypeUint64_3
	AttribTypeUint64_4
	AttribTypeFloat16
	AttribTypeFloat16_2
	AttribTypeFloat16_3
	AttribTypeFloat16_4
	AttribTypeFloat32
	AttribTypeFloat32_2
	AttribTypeFloat32_3
	AttribTypeFloat32_4
	AttribTypeFloat64
	AttribTypeFloat64_2
	AttribTypeFloat64_3
	AttribTypeFloat64_4
	AttribTypeFloat32Mat2
	AttribTypeFloat32Mat2x3
	AttribTypeFloat32Mat2x4
	AttribTypeFloat32Mat3x2
	AttribTypeFloat32Mat3
	AttribTypeFloat32Mat3x4
	AttribTypeFloat32Mat4x2
	AttribTypeFloat32Mat4x3
	AttribTypeFloat32Mat4
	AttribTypeFloat64Mat2
	AttribTypeFloat64Mat2x3
	AttribTypeFloat64Mat2x4
	AttribTypeFloat64Mat3x2
	AttribTypeFloat64Mat3
	AttribTypeFloat64Mat3x4
	AttribTypeFloat64Mat4x2
	AttribTypeFloat64Mat4x3
	AttribTypeFloat64Mat4
	AttribTypeInt2_10_10_10Rev
	AttribTypeUint2_10_10_10Rev
	AttribTypeFloat10_11_11Rev

	attribTypeCount
)

type attributeInfo struct {
	name      string
	component ComponentType
	rows      uint8
	columns   uint8
	size      uint8
}

var attributeInfos = [attribTypeCount]attributeInfo{
	AttribTypeInt8:              {"int8", ComponentInt8, 1, 1, 1},
	AttribTypeInt8_2:            {"int8_2", ComponentInt8, 2, 1, 2},
	AttribTypeInt8_3:            {"int8_3", ComponentInt8, 3, 1, 3},
	AttribTypeInt8_4:            {"int8_4", ComponentInt8, 4, 1, 4},
	AttribTypeUint8:             {"uint8", ComponentUint8, 1, 1, 1},
	AttribTypeUint8_2:           {"uint8_2", ComponentUint8, 2, 1, 2},
	AttribTypeUint8_3:           {"uint8_3", ComponentUint8, 3, 1, 3},
	AttribTypeUint8_4:           {"uint8_4", ComponentUint8, 4, 1, 4},
	AttribTypeInt16:             {"int16", ComponentInt16, 1, 1, 2},
	AttribTypeInt16_2:           {"int16_2", ComponentInt16, 2, 1, 4},
	AttribTypeInt16_3:           {"int16_3", ComponentInt16, 3, 1, 6},
	AttribTypeInt16_4:           {"int16_4", ComponentInt16, 4, 1, 8},
	AttribTypeUint16:            {"uint16", ComponentUint16, 1, 1, 2},
	AttribTypeUint16_2:          {"uint16_2", ComponentUint16, 2, 1, 4},
	AttribTypeUint16_3:          {"uint16_3", ComponentUint16, 3, 1, 6},
	AttribTypeUint16_4:          {"uint16_4", ComponentUint16, 4, 1, 8},
	AttribTypeInt32:             {"int32", ComponentInt32, 1, 1, 4},
	AttribTypeInt32_2:           {"int32_2", ComponentInt32, 2, 1, 8},
	AttribTypeInt32_3:           {"int32_3", ComponentInt32, 3, 1, 12},
	AttribTypeInt32_4:           {"int32_4", ComponentInt32, 4, 1, 16},
	AttribTypeUint32:            {"uint32", ComponentUint32, 1, 1, 4},
	AttribTypeUint32_2:          {"uint32_2", ComponentUint32, 2, 1, 8},
	AttribTypeUint32_3:          {"uint32_3", ComponentUint32, 3, 1, 12},
	AttribTypeUint32_4:          {"uint32_4", ComponentUint32, 4, 1, 16},
	AttribTypeInt64:             {"int64", ComponentInt64, 1, 1, 8},
	AttribTypeInt64_2:           {"int64_2", ComponentInt64, 2, 1, 16},
	AttribTypeInt64_3:           {"int64_3", ComponentInt64, 3, 1, 24},
	AttribTypeInt64_4:           {"int64_4", ComponentInt64, 4, 1, 32},
	AttribTypeUint64:            {"uint64", ComponentUint64, 1, 1, 8},
	AttribTypeUint64_2:          {"uint64_2", ComponentUint64, 2, 1, 16},
	AttribTypeUint64_3:          {"uint64_3", ComponentUint64, 3, 1, 24},
	AttribTypeUint64_4:          {"uint64_4", ComponentUint64, 4, 1, 32},
	AttribTypeFloat16:           {"float16", ComponentFloat16, 1, 1, 2},
	AttribTypeFloat16_2:         {"float16_2", ComponentFloat16, 2, 1, 4},
	AttribTypeFloat16_3:         {"float16_3", ComponentFloat16, 3, 1, 6},
	AttribTypeFloat16_4:         {"float16_4", ComponentFloat16, 4, 1, 8},
	AttribTypeFloat32:           {"float32", ComponentFloat32, 1, 1, 4},
	AttribTypeFloat32_2:         {"float32_2", ComponentFloat32, 2, 1, 8},
	AttribTypeFloat32_3:         {"float32_3", ComponentFloat32, 3, 1, 12},
	AttribTypeFloat32_4:         {"float32_4", ComponentFloat32, 4, 1, 16},
	AttribTypeFloat64:           {"float64", ComponentFloat64, 1, 1, 8},
	AttribTypeFloat64_2:         {"float64_2", ComponentFloat64, 2, 1, 16},
	AttribTypeFloat64_3:         {"float64_3", ComponentFloat64, 3, 1, 24},
	AttribTypeFloat64_4:         {"float64_4", ComponentFloat64, 4, 1, 32},
	AttribTypeFloat32Mat2:       {"float32_mat2", ComponentFloat32, 2, 2, 16},
	AttribTypeFloat32Mat2x3:     {"float32_mat2x3", ComponentFloat32, 3, 2, 24},
	AttribTypeFloat32Mat2x4:     {"float32_mat2x4", ComponentFloat32, 4, 2, 32},
	AttribTypeFloat32Mat3x2:     {"float32_mat3x2", ComponentFloat32, 2, 3, 24},
	AttribTypeFloat32Mat3:       {"float32_mat3", ComponentFloat32, 3, 3, 36},
	AttribTypeFloat32Mat3x4:     {"float32_mat3x4", ComponentFloat32, 4, 3, 48},
	AttribTypeFloat32Mat4x2:     {"float32_mat4x2", ComponentFloat32, 2, 4, 32},
	AttribTypeFloat32Mat4x3:     {"float32_mat4x3", ComponentFloat32, 3, 4, 48},
	AttribTypeFloat32Mat4:       {"float32_mat4", ComponentFloat32, 4, 4, 64},
	AttribTypeFloat64Mat2:       {"float64_mat2", ComponentFloat64, 2, 2, 32},
	AttribTypeFloat64Mat2x3:     {"float64_mat2x3", ComponentFloat64, 3, 2, 48},
	AttribTypeFloat64Mat2x4:     {"float64_mat2x4", ComponentFloat64, 4, 2, 64},
	AttribTypeFloat64Mat3x2:     {"float64_mat3x2", ComponentFloat64, 2, 3, 48},
	AttribTypeFloat64Mat3:       {"float64_mat3", ComponentFloat64, 3, 3, 72},
	AttribTypeFloat64Mat3x4:     {"float64_mat3x4", ComponentFloat64, 4, 3, 96},
	AttribTypeFloat64Mat4x2:     {"float64_mat4x2", ComponentFloat64, 2, 4, 64},
	AttribTypeFloat64Mat4x3:     {"float64_mat4x3", ComponentFloat64, 3, 4, 96},
	AttribTypeFloat64Mat4:       {"float64_mat4", ComponentFloat64, 4, 4, 128},
	AttribTypeInt2_10_10_10Rev:  {"int_2_10_10_10_rev", ComponentPacked, 4, 1, 4},
	AttribTypeUint2_10_10_10Rev: {"uint_2_10_10_10_rev", ComponentPacked, 4, 1, 4},
	AttribTypeFloat10_11_11Rev:  {"float_10_11_11_rev", ComponentPackedFloat, 3, 1, 4},
}

func (t AttributeType) IsValid() bool {
	return t < attribTypeCount
}

/** @brief Size of one value of this type in bytes. */
func (t AttributeType) Size() uintptr {
	if !t.IsValid() {
		return 0
	}
	return uintptr(attributeInfos[t].size)
}

/** @brief Total number of components (rows * columns). */
func (t AttributeType) Components() int {
	if !t.IsValid() {
		return 0
	}
	return int(attributeInfos[t].rows) * int(attributeInfos[t].columns)
}

/** @brief Number of shader locations the type occupies; one per matrix column. */
func (t AttributeType) Locations() int {
	if !t.IsValid() {
		return 0
	}
	return int(attributeInfos[t].columns)
}

/** @brief Number of rows of a matrix, or components of a vector. */
func (t AttributeType) Rows() int {
	if !t.IsValid() {
		return 0
	}
	return int(attributeInfos[t].rows)
}

func (t AttributeType) Component() ComponentType {
	if !t.IsValid() {
		return -1
	}
	return attributeInfos[t].component
}

func (t AttributeType) IsMatrix() bool {
	return t.IsValid() && attributeInfos[t].columns > 1
}

func (t AttributeType) String() string {
	if !t.IsValid() {
		return "invalid"
	}
	return attributeInfos[t].name
}

/**
 * @brief Returns true if the capability set can consume this type as a vertex attribute.
 * Plain 8/16/32-bit integer and 32-bit float types are always supported.
 */
func (t AttributeType) IsSupported(caps CapabilitiesSource) bool {
	if !t.IsValid() {
		return false
	}
	c := caps.Capabilities()
	switch attributeInfos[t].component {
	case ComponentInt64, ComponentUint64:
		return c.Int64Attributes
	case ComponentFloat64:
		return c.Float64Attributes
	case ComponentFloat16:
		return c.HalfFloatAttributes
	case ComponentPacked:
		return c.PackedAttributes
	case ComponentPackedFloat:
		return c.PackedFloatAttributes
	default:
		return true
	}
}

/** @brief Parses the name returned by String, as used in shader configuration files. */
func AttributeTypeFromString(s string) (AttributeType, error) {
	for t := AttributeType(0); t < attribTypeCount; t++ {
		if attributeInfos[t].name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("string %s is not a valid AttributeType", s)
}
