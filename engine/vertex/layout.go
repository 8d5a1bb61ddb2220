package vertex

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

// UnsafeLayout lets a type describe its own memory layout instead of having it
// derived from its fields.
//
// This is unsafe: the builder only checks that attributes fit inside the type
// and have unique names. Wrong offsets make the GPU read garbage, or read past
// the end of the buffer. Prefer the derived layout.
type UnsafeLayout interface {
	UnsafeVertexFormat() metadata.VertexFormat
}

var unsafeLayoutInterface = reflect.TypeFor[UnsafeLayout]()

type formatEntry struct {
	format *metadata.VertexFormat
	err    error
}

// layouts caches one *VertexFormat per type for the lifetime of the process.
var layouts sync.Map

// FormatOf returns the layout of the vertex type T, building it on first use.
//
// Exported struct fields become attributes, in declaration order. The `vertex`
// field tag controls them:
//
//	Position math.Vec3 `vertex:"in_position"`   // renamed
//	Scratch  [4]byte   `vertex:"-"`             // skipped
//	Offset   math.Vec2 `vertex:",divisor=2"`    // advances every 2 instances
//
// Untagged fields are named after the field with its first letter lowered.
// Embedded structs that are not attributes themselves are flattened.
func FormatOf[T any]() (*metadata.VertexFormat, error) {
	return FormatOfType(reflect.TypeFor[T]())
}

// FormatOfType is FormatOf for a reflect.Type.
func FormatOfType(t reflect.Type) (*metadata.VertexFormat, error) {
	if cached, ok := layouts.Load(t); ok {
		e := cached.(*formatEntry)
		return e.format, e.err
	}

	format, err := buildFormat(t)
	if err == nil {
		core.LogDebug("vertex layout for %s built: %d attributes, stride %d", t, format.Len(), format.Stride)
	}
	actual, _ := layouts.LoadOrStore(t, &formatEntry{format: format, err: err})
	e := actual.(*formatEntry)
	return e.format, e.err
}

func buildFormat(t reflect.Type) (*metadata.VertexFormat, error) {
	if t.Kind() == reflect.Pointer {
		return nil, fmt.Errorf("%w: %s is a pointer, vertices are stored by value", core.ErrInvalidLayout, t)
	}
	if t.Kind() != reflect.Interface && t.Implements(unsafeLayoutInterface) {
		f := reflect.Zero(t).Interface().(UnsafeLayout).UnsafeVertexFormat()
		if f.Stride != t.Size() {
			return nil, fmt.Errorf("%w: %s declares stride %d, its size is %d", core.ErrInvalidLayout, t, f.Stride, t.Size())
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", t, err)
		}
		if len(f.Attributes) == 0 {
			return nil, fmt.Errorf("%w: %s declares no attributes", core.ErrInvalidLayout, t)
		}
		// copy so the caller cannot mutate the cached layout through its own slice
		f.Attributes = append([]metadata.AttributeBinding(nil), f.Attributes...)
		return &f, nil
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", core.ErrInvalidLayout, t)
	}

	f := &metadata.VertexFormat{Stride: t.Size()}
	if err := appendFields(f, t, 0); err != nil {
		return nil, err
	}
	if len(f.Attributes) == 0 {
		return nil, fmt.Errorf("%w: %s has no attribute fields", core.ErrInvalidLayout, t)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}
	return f, nil
}

func appendFields(f *metadata.VertexFormat, t reflect.Type, base uintptr) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, hasTag := field.Tag.Lookup("vertex")
		if tag == "-" {
			continue
		}

		attrType, isAttr := AttributeTypeOf(field.Type)
		if field.Anonymous && !isAttr && field.Type.Kind() == reflect.Struct {
			if err := appendFields(f, field.Type, base+field.Offset); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() && !hasTag {
			continue
		}
		if !isAttr {
			return fmt.Errorf("%w: field %s.%s of type %s cannot be a vertex attribute",
				core.ErrInvalidLayout, t, field.Name, field.Type)
		}

		name, divisor, err := parseVertexTag(tag)
		if err != nil {
			return fmt.Errorf("%w: field %s.%s: %s", core.ErrInvalidLayout, t, field.Name, err)
		}
		if name == "" {
			name = lowerFirst(field.Name)
		}
		f.Attributes = append(f.Attributes, metadata.AttributeBinding{
			Name:    name,
			Offset:  base + field.Offset,
			Type:    attrType,
			Divisor: divisor,
		})
	}
	return nil
}

func parseVertexTag(tag string) (name string, divisor uint32, err error) {
	name, opts, _ := strings.Cut(tag, ",")
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		key, value, _ := strings.Cut(opt, "=")
		switch key {
		case "divisor":
			d, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return "", 0, fmt.Errorf("invalid divisor '%s'", value)
			}
			divisor = uint32(d)
		default:
			return "", 0, fmt.Errorf("unknown tag option '%s'", key)
		}
	}
	return name, divisor, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// IsSupported reports whether every attribute of T can be read by the given
// context. A type without a valid layout is not supported.
func IsSupported[T any](caps metadata.CapabilitiesSource) bool {
	f, err := FormatOf[T]()
	if err != nil {
		return false
	}
	return f.IsSupported(caps)
}

// Validate checks that T has a valid layout the context can consume. It must
// pass before a buffer of T is created for that context.
func Validate[T any](caps metadata.CapabilitiesSource) error {
	f, err := FormatOf[T]()
	if err != nil {
		return err
	}
	if a, found := f.Unsupported(caps); found {
		return fmt.Errorf("%w: %s.%s is %s", core.ErrUnsupportedAttribute, reflect.TypeFor[T](), a.Name, a.Type)
	}
	if limit := caps.Capabilities().MaxVertexAttributes; limit > 0 && uint32(f.Locations()) > limit {
		return fmt.Errorf("%w: %s uses %d attribute locations, the context allows %d",
			core.ErrUnsupportedAttribute, reflect.TypeFor[T](), f.Locations(), limit)
	}
	return nil
}
