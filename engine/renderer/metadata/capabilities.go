package metadata

import "github.com/spaghettifunk/anima-vertex/engine/core"

/**
 * @brief Describes which vertex-input features the active graphics context supports.
 * Filled by the renderer backend from the device, or from configuration when headless.
 */
type Capabilities struct {
	/** @brief 64-bit float attributes (double, dvecN, dmatN). */
	Float64Attributes bool
	/** @brief 64-bit integer attributes. */
	Int64Attributes bool
	/** @brief 16-bit float attributes. */
	HalfFloatAttributes bool
	/** @brief 2_10_10_10 packed integer attributes. */
	PackedAttributes bool
	/** @brief 10_11_11 packed unsigned float attributes. */
	PackedFloatAttributes bool
	/** @brief Capturing vertex shader output into a buffer. */
	TransformFeedback bool
	/** @brief Maximum number of attribute locations a pipeline may consume, 0 for no limit. */
	MaxVertexAttributes uint32
}

/** @brief Anything able to report the capabilities of a graphics context. */
type CapabilitiesSource interface {
	Capabilities() *Capabilities
}

// Capabilities makes a plain capability set usable wherever a source is expected.
func (c *Capabilities) Capabilities() *Capabilities {
	return c
}

// CapabilitiesFromConfig converts the [capabilities] section of the configuration.
func CapabilitiesFromConfig(cfg core.CapabilitiesConfig) *Capabilities {
	return &Capabilities{
		Float64Attributes:     cfg.Float64Attributes,
		Int64Attributes:       cfg.Int64Attributes,
		HalfFloatAttributes:   cfg.HalfFloatAttributes,
		PackedAttributes:      cfg.PackedAttributes,
		PackedFloatAttributes: cfg.PackedFloatAttributes,
		TransformFeedback:     cfg.TransformFeedback,
		MaxVertexAttributes:   cfg.MaxVertexAttributes,
	}
}
