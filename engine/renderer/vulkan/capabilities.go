package vulkan

import (
	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

const TransformFeedbackExtensionName string = "VK_EXT_transform_feedback"

// sample formats, one per optional attribute family
var capabilitySampleFormats = struct {
	Float64, Int64, Half, Packed, PackedFloat vk.Format
}{
	Float64:     vk.FormatR64Sfloat,
	Int64:       vk.FormatR64Sint,
	Half:        vk.FormatR16Sfloat,
	Packed:      vk.FormatA2b10g10r10SintPack32,
	PackedFloat: vk.FormatB10g11r11UfloatPack32,
}

// QueryCapabilities reads the vertex-input capabilities of a physical device.
func QueryCapabilities(device vk.PhysicalDevice) (*metadata.Capabilities, error) {
	properties := vk.PhysicalDeviceProperties{}
	vk.GetPhysicalDeviceProperties(device, &properties)
	properties.Deref()
	properties.Limits.Deref()

	extensions, err := deviceExtensionNames(device)
	if err != nil {
		return nil, err
	}

	caps := CapabilitiesFromDevice(properties.Limits.MaxVertexInputAttributes, extensions, func(format vk.Format) bool {
		formatProperties := vk.FormatProperties{}
		vk.GetPhysicalDeviceFormatProperties(device, format, &formatProperties)
		formatProperties.Deref()
		return vk.FormatFeatureFlagBits(formatProperties.BufferFeatures)&vk.FormatFeatureVertexBufferBit != 0
	})
	core.LogDebug("device '%s' vertex capabilities: %+v", vk.ToString(properties.DeviceName[:]), *caps)
	return caps, nil
}

// CapabilitiesFromDevice builds the capability set from what the device
// reports. vertexFormatSupported tells whether a format can be read from a
// vertex buffer.
func CapabilitiesFromDevice(maxVertexAttributes uint32, extensions []string, vertexFormatSupported func(vk.Format) bool) *metadata.Capabilities {
	caps := &metadata.Capabilities{
		Float64Attributes:     vertexFormatSupported(capabilitySampleFormats.Float64),
		Int64Attributes:       vertexFormatSupported(capabilitySampleFormats.Int64),
		HalfFloatAttributes:   vertexFormatSupported(capabilitySampleFormats.Half),
		PackedAttributes:      vertexFormatSupported(capabilitySampleFormats.Packed),
		PackedFloatAttributes: vertexFormatSupported(capabilitySampleFormats.PackedFloat),
		MaxVertexAttributes:   maxVertexAttributes,
	}
	for _, name := range extensions {
		if name == TransformFeedbackExtensionName {
			caps.TransformFeedback = true
			break
		}
	}
	return caps
}

func deviceExtensionNames(device vk.PhysicalDevice) ([]string, error) {
	var availableExtensionCount uint32 = 0
	if res := vk.EnumerateDeviceExtensionProperties(device, "", &availableExtensionCount, nil); res != vk.Success {
		return nil, VulkanResultError(res)
	}
	if availableExtensionCount == 0 {
		return nil, nil
	}

	availableExtensions := make([]vk.ExtensionProperties, availableExtensionCount)
	if res := vk.EnumerateDeviceExtensionProperties(device, "", &availableExtensionCount, availableExtensions); res != vk.Success {
		return nil, VulkanResultError(res)
	}
	names := make([]string, 0, availableExtensionCount)
	for i := range availableExtensions {
		availableExtensions[i].Deref()
		names = append(names, vk.ToString(availableExtensions[i].ExtensionName[:]))
	}
	return names, nil
}
