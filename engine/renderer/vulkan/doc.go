/*
Package vulkan translates vertex layouts and device properties between the
engine and Vulkan.

A device-backed renderer calls QueryCapabilities once its physical device is
picked, hands the result to the draw system as its capabilities source, and
builds each pipeline from NewVertexInputState over the sources of the draw:

	caps, err := vulkan.QueryCapabilities(physicalDevice)
	...
	input, err := vulkan.NewVertexInputState(slices.Values(cmd.Sources))
	...
	info, err := input.CreateInfo(divisorState)

The headless testbed backend runs the same translation on every draw it records.
*/
package vulkan
