package d3d12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandListTypeString(t *testing.T) {
	assert.Equal(t, "Direct", CommandListTypeDirect.String())
	assert.Equal(t, "Compute", CommandListTypeCompute.String())
	assert.Equal(t, "CommandListType(42)", CommandListType(42).String())
}

func TestResourceStatesString(t *testing.T) {
	assert.Equal(t, "Common", ResourceStateCommon.String())
	assert.Equal(t, "RenderTarget", ResourceStateRenderTarget.String())
	assert.Equal(t, "CopyDest|CopySource",
		(ResourceStateCopyDest | ResourceStateCopySource).String())
	assert.Equal(t, "DepthWrite|0x10000", (ResourceStateDepthWrite | 0x10000).String())
}

func TestGenericReadComposition(t *testing.T) {
	// The upload-heap state is a fixed combination in the native headers.
	assert.Equal(t, ResourceStates(0xAC3), ResourceStateGenericRead)
	assert.Equal(t, ResourceStateCommon, ResourceStatePresent)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "R8G8B8A8Unorm", FormatR8G8B8A8Unorm.String())
	assert.Equal(t, "D32Float", FormatD32Float.String())
	assert.Equal(t, "Format(999)", Format(999).String())
}

func TestFeatureLevelString(t *testing.T) {
	assert.Equal(t, "12.1", FeatureLevel12_1.String())
	assert.Equal(t, "FeatureLevel(0x1234)", FeatureLevel(0x1234).String())
}

func TestDescriptorHeapTypeString(t *testing.T) {
	assert.Equal(t, "CBV/SRV/UAV", DescriptorHeapTypeCBVSRVUAV.String())
	assert.Equal(t, "DSV", DescriptorHeapTypeDSV.String())
}

func TestCommandQueuePriorityString(t *testing.T) {
	assert.Equal(t, "Normal", CommandQueuePriorityNormal.String())
	assert.Equal(t, "GlobalRealtime", CommandQueuePriorityGlobalRealtime.String())
}
