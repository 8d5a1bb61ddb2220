package metadata

import (
	"fmt"

	"github.com/spaghettifunk/anima-vertex/engine/core"
)

/**
 * @brief One attribute of a vertex struct: where it lives and how to read it.
 */
type AttributeBinding struct {
	/** @brief The attribute name, matched against the shader input name. */
	Name string
	/** @brief Byte offset of the attribute from the start of the vertex. */
	Offset uintptr
	/** @brief How the GPU reads the attribute. */
	Type AttributeType
	/**
	 * @brief Number of instances drawn before the attribute advances when the
	 * source is per instance. 0 is treated as 1.
	 */
	Divisor uint32
}

/**
 * @brief The memory layout of a vertex struct. Built once per Go type and
 * shared; must never be mutated after construction.
 */
type VertexFormat struct {
	/** @brief The attributes, in declaration order. */
	Attributes []AttributeBinding
	/** @brief The size of one vertex in bytes. */
	Stride uintptr
}

func (f *VertexFormat) Len() int {
	return len(f.Attributes)
}

// Find returns the attribute with the given name.
func (f *VertexFormat) Find(name string) (AttributeBinding, bool) {
	for _, a := range f.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return AttributeBinding{}, false
}

/** @brief Number of shader locations consumed by all attributes. */
func (f *VertexFormat) Locations() int {
	n := 0
	for _, a := range f.Attributes {
		n += a.Type.Locations()
	}
	return n
}

// Unsupported returns the first attribute the capability set cannot consume.
func (f *VertexFormat) Unsupported(caps CapabilitiesSource) (AttributeBinding, bool) {
	for _, a := range f.Attributes {
		if !a.Type.IsSupported(caps) {
			return a, true
		}
	}
	return AttributeBinding{}, false
}

/** @brief True iff every attribute is supported. */
func (f *VertexFormat) IsSupported(caps CapabilitiesSource) bool {
	_, found := f.Unsupported(caps)
	return !found
}

/**
 * @brief Checks what can be checked without knowing the Go type: unique
 * non-empty names, known types, and every attribute inside the stride.
 * Offsets themselves cannot be verified here.
 */
func (f *VertexFormat) Validate() error {
	if f.Stride == 0 && len(f.Attributes) > 0 {
		return fmt.Errorf("%w: zero stride with %d attributes", core.ErrInvalidLayout, len(f.Attributes))
	}
	seen := make(map[string]struct{}, len(f.Attributes))
	for _, a := range f.Attributes {
		if a.Name == "" {
			return fmt.Errorf("%w: attribute at offset %d has no name", core.ErrInvalidLayout, a.Offset)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: duplicate attribute '%s'", core.ErrInvalidLayout, a.Name)
		}
		seen[a.Name] = struct{}{}
		if !a.Type.IsValid() {
			return fmt.Errorf("%w: attribute '%s' has an unknown type", core.ErrInvalidLayout, a.Name)
		}
		if a.Offset+a.Type.Size() > f.Stride {
			return fmt.Errorf("%w: attribute '%s' (%s at offset %d) overflows stride %d",
				core.ErrInvalidLayout, a.Name, a.Type, a.Offset, f.Stride)
		}
	}
	return nil
}
