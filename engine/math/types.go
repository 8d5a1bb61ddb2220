package math

import "github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief a 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements, column major. */
	Data [16]float32
}

func (Vec2) AttributeType() metadata.AttributeType { return metadata.AttribTypeFloat32_2 }
func (Vec3) AttributeType() metadata.AttributeType { return metadata.AttribTypeFloat32_3 }
func (Vec4) AttributeType() metadata.AttributeType { return metadata.AttribTypeFloat32_4 }
func (Mat4) AttributeType() metadata.AttributeType { return metadata.AttribTypeFloat32Mat4 }

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	m := Mat4{}
	m.Data[0] = 1.0
	m.Data[5] = 1.0
	m.Data[10] = 1.0
	m.Data[15] = 1.0
	return m
}

// Mat4Translation returns a matrix translating by position.
func Mat4Translation(position Vec3) Mat4 {
	m := Mat4Identity()
	m.Data[12] = position.X
	m.Data[13] = position.Y
	m.Data[14] = position.Z
	return m
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3 `vertex:"in_position"`
	/** @brief The normal of the vertex. */
	Normal Vec3 `vertex:"in_normal"`
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2 `vertex:"in_texcoord"`
	/** @brief The colour of the vertex. */
	Colour Vec4 `vertex:"in_colour"`
	/** @brief The tangent of the vertex. */
	Tangent Vec3 `vertex:"in_tangent"`
}

/**
 * @brief Represents a single vertex in 2D space.
 */
type Vertex2D struct {
	/** @brief The position of the vertex */
	Position Vec2 `vertex:"in_position"`
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2 `vertex:"in_texcoord"`
}

/**
 * @brief Per-instance data for instanced meshes: one model matrix and a tint.
 */
type InstanceData struct {
	Model  Mat4 `vertex:"in_model"`
	Colour Vec4 `vertex:"in_tint"`
}
