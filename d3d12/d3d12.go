// Package d3d12 defines Direct3D 12 enumeration values used when driving
// the native API through a separate interop layer. Every value equals the
// corresponding native constant; the String methods exist for diagnostics
// only. The tables compile on every platform since they carry no calls.
package d3d12

import (
	"fmt"
	"strings"
)

// CommandListType identifies the kind of work a command list records
// (D3D12_COMMAND_LIST_TYPE).
type CommandListType int32

const (
	CommandListTypeDirect       CommandListType = 0
	CommandListTypeBundle       CommandListType = 1
	CommandListTypeCompute      CommandListType = 2
	CommandListTypeCopy         CommandListType = 3
	CommandListTypeVideoDecode  CommandListType = 4
	CommandListTypeVideoProcess CommandListType = 5
	CommandListTypeVideoEncode  CommandListType = 6
)

func (t CommandListType) String() string {
	switch t {
	case CommandListTypeDirect:
		return "Direct"
	case CommandListTypeBundle:
		return "Bundle"
	case CommandListTypeCompute:
		return "Compute"
	case CommandListTypeCopy:
		return "Copy"
	case CommandListTypeVideoDecode:
		return "VideoDecode"
	case CommandListTypeVideoProcess:
		return "VideoProcess"
	case CommandListTypeVideoEncode:
		return "VideoEncode"
	}
	return fmt.Sprintf("CommandListType(%d)", int32(t))
}

// HeapType selects the memory pool a resource heap lives in
// (D3D12_HEAP_TYPE).
type HeapType int32

const (
	HeapTypeDefault  HeapType = 1
	HeapTypeUpload   HeapType = 2
	HeapTypeReadback HeapType = 3
	HeapTypeCustom   HeapType = 4
)

func (t HeapType) String() string {
	switch t {
	case HeapTypeDefault:
		return "Default"
	case HeapTypeUpload:
		return "Upload"
	case HeapTypeReadback:
		return "Readback"
	case HeapTypeCustom:
		return "Custom"
	}
	return fmt.Sprintf("HeapType(%d)", int32(t))
}

// ResourceStates is the bit set of states a resource can be transitioned
// into (D3D12_RESOURCE_STATES).
type ResourceStates uint32

const (
	ResourceStateCommon                  ResourceStates = 0
	ResourceStateVertexAndConstantBuffer ResourceStates = 0x1
	ResourceStateIndexBuffer             ResourceStates = 0x2
	ResourceStateRenderTarget            ResourceStates = 0x4
	ResourceStateUnorderedAccess         ResourceStates = 0x8
	ResourceStateDepthWrite              ResourceStates = 0x10
	ResourceStateDepthRead               ResourceStates = 0x20
	ResourceStateNonPixelShaderResource  ResourceStates = 0x40
	ResourceStatePixelShaderResource     ResourceStates = 0x80
	ResourceStateStreamOut               ResourceStates = 0x100
	ResourceStateIndirectArgument        ResourceStates = 0x200
	ResourceStateCopyDest                ResourceStates = 0x400
	ResourceStateCopySource              ResourceStates = 0x800
	ResourceStateResolveDest             ResourceStates = 0x1000
	ResourceStateResolveSource           ResourceStates = 0x2000

	// ResourceStateGenericRead is the combination required for a resource
	// in an upload heap.
	ResourceStateGenericRead = ResourceStateVertexAndConstantBuffer |
		ResourceStateIndexBuffer |
		ResourceStateNonPixelShaderResource |
		ResourceStatePixelShaderResource |
		ResourceStateIndirectArgument |
		ResourceStateCopySource

	// ResourceStatePresent aliases Common for swap-chain backbuffers.
	ResourceStatePresent = ResourceStateCommon
)

var resourceStateNames = []struct {
	bit  ResourceStates
	name string
}{
	{ResourceStateVertexAndConstantBuffer, "VertexAndConstantBuffer"},
	{ResourceStateIndexBuffer, "IndexBuffer"},
	{ResourceStateRenderTarget, "RenderTarget"},
	{ResourceStateUnorderedAccess, "UnorderedAccess"},
	{ResourceStateDepthWrite, "DepthWrite"},
	{ResourceStateDepthRead, "DepthRead"},
	{ResourceStateNonPixelShaderResource, "NonPixelShaderResource"},
	{ResourceStatePixelShaderResource, "PixelShaderResource"},
	{ResourceStateStreamOut, "StreamOut"},
	{ResourceStateIndirectArgument, "IndirectArgument"},
	{ResourceStateCopyDest, "CopyDest"},
	{ResourceStateCopySource, "CopySource"},
	{ResourceStateResolveDest, "ResolveDest"},
	{ResourceStateResolveSource, "ResolveSource"},
}

func (s ResourceStates) String() string {
	if s == ResourceStateCommon {
		return "Common"
	}
	var parts []string
	rest := s
	for _, e := range resourceStateNames {
		if rest&e.bit != 0 {
			parts = append(parts, e.name)
			rest &^= e.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// Format is a DXGI pixel format (DXGI_FORMAT). Only the formats commonly
// used for buffers, render targets and depth are enumerated here.
type Format uint32

const (
	FormatUnknown           Format = 0
	FormatR32G32B32A32Float Format = 2
	FormatR32G32B32A32Uint  Format = 3
	FormatR32G32B32Float    Format = 6
	FormatR16G16B16A16Float Format = 10
	FormatR32G32Float       Format = 16
	FormatR10G10B10A2Unorm  Format = 24
	FormatR8G8B8A8Unorm     Format = 28
	FormatR8G8B8A8UnormSRGB Format = 29
	FormatR16G16Float       Format = 34
	FormatD32Float          Format = 40
	FormatR32Float          Format = 41
	FormatR32Uint           Format = 42
	FormatD24UnormS8Uint    Format = 45
	FormatR16Float          Format = 54
	FormatD16Unorm          Format = 55
	FormatR8Unorm           Format = 61
	FormatBC1Unorm          Format = 71
	FormatBC3Unorm          Format = 77
	FormatB8G8R8A8Unorm     Format = 87
	FormatBC7Unorm          Format = 98
)

var formatNames = map[Format]string{
	FormatUnknown:           "Unknown",
	FormatR32G32B32A32Float: "R32G32B32A32Float",
	FormatR32G32B32A32Uint:  "R32G32B32A32Uint",
	FormatR32G32B32Float:    "R32G32B32Float",
	FormatR16G16B16A16Float: "R16G16B16A16Float",
	FormatR32G32Float:       "R32G32Float",
	FormatR10G10B10A2Unorm:  "R10G10B10A2Unorm",
	FormatR8G8B8A8Unorm:     "R8G8B8A8Unorm",
	FormatR8G8B8A8UnormSRGB: "R8G8B8A8UnormSRGB",
	FormatR16G16Float:       "R16G16Float",
	FormatD32Float:          "D32Float",
	FormatR32Float:          "R32Float",
	FormatR32Uint:           "R32Uint",
	FormatD24UnormS8Uint:    "D24UnormS8Uint",
	FormatR16Float:          "R16Float",
	FormatD16Unorm:          "D16Unorm",
	FormatR8Unorm:           "R8Unorm",
	FormatBC1Unorm:          "BC1Unorm",
	FormatBC3Unorm:          "BC3Unorm",
	FormatB8G8R8A8Unorm:     "B8G8R8A8Unorm",
	FormatBC7Unorm:          "BC7Unorm",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// FeatureLevel identifies a Direct3D hardware feature level
// (D3D_FEATURE_LEVEL).
type FeatureLevel uint32

const (
	FeatureLevel11_0 FeatureLevel = 0xB000
	FeatureLevel11_1 FeatureLevel = 0xB100
	FeatureLevel12_0 FeatureLevel = 0xC000
	FeatureLevel12_1 FeatureLevel = 0xC100
	FeatureLevel12_2 FeatureLevel = 0xC200
)

func (l FeatureLevel) String() string {
	switch l {
	case FeatureLevel11_0:
		return "11.0"
	case FeatureLevel11_1:
		return "11.1"
	case FeatureLevel12_0:
		return "12.0"
	case FeatureLevel12_1:
		return "12.1"
	case FeatureLevel12_2:
		return "12.2"
	}
	return fmt.Sprintf("FeatureLevel(0x%X)", uint32(l))
}

// DescriptorHeapType selects the kind of descriptors a heap stores
// (D3D12_DESCRIPTOR_HEAP_TYPE).
type DescriptorHeapType int32

const (
	DescriptorHeapTypeCBVSRVUAV DescriptorHeapType = 0
	DescriptorHeapTypeSampler   DescriptorHeapType = 1
	DescriptorHeapTypeRTV       DescriptorHeapType = 2
	DescriptorHeapTypeDSV       DescriptorHeapType = 3
)

func (t DescriptorHeapType) String() string {
	switch t {
	case DescriptorHeapTypeCBVSRVUAV:
		return "CBV/SRV/UAV"
	case DescriptorHeapTypeSampler:
		return "Sampler"
	case DescriptorHeapTypeRTV:
		return "RTV"
	case DescriptorHeapTypeDSV:
		return "DSV"
	}
	return fmt.Sprintf("DescriptorHeapType(%d)", int32(t))
}

// CommandQueuePriority sets the scheduling priority of a command queue
// (D3D12_COMMAND_QUEUE_PRIORITY).
type CommandQueuePriority int32

const (
	CommandQueuePriorityNormal         CommandQueuePriority = 0
	CommandQueuePriorityHigh           CommandQueuePriority = 100
	CommandQueuePriorityGlobalRealtime CommandQueuePriority = 10000
)

func (p CommandQueuePriority) String() string {
	switch p {
	case CommandQueuePriorityNormal:
		return "Normal"
	case CommandQueuePriorityHigh:
		return "High"
	case CommandQueuePriorityGlobalRealtime:
		return "GlobalRealtime"
	}
	return fmt.Sprintf("CommandQueuePriority(%d)", int32(p))
}

// FenceFlags control fence sharing (D3D12_FENCE_FLAGS).
type FenceFlags uint32

const (
	FenceFlagNone               FenceFlags = 0
	FenceFlagShared             FenceFlags = 0x1
	FenceFlagSharedCrossAdapter FenceFlags = 0x2
	FenceFlagNonMonitored       FenceFlags = 0x4
)
