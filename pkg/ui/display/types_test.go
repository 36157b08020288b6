package display_test

import (
	"testing"

	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/arthur-debert/wheresmy/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeviceListResult(t *testing.T) {
	list := types.DeviceList{
		{ID: "1", Name: "My iPhone", Icon: types.IconIphone},
		{ID: "2", Name: "AirPods Pro", Icon: types.IconAirpodsPro},
		{ID: "3", Name: "Watch", Icon: "Watch.png"},
	}

	result := display.NewDeviceListResult(list)
	require.Len(t, result.Devices, 3)

	assert.Equal(t, "My iPhone", result.Devices[0].Name)
	assert.Equal(t, "iPhone", result.Devices[0].IconTitle)
	assert.Equal(t, "AirPods Pro", result.Devices[1].IconTitle)

	// unknown icons are kept as stored
	assert.Equal(t, "Watch.png", result.Devices[2].Icon)
	assert.Equal(t, "Watch.png", result.Devices[2].IconTitle)
	assert.NotEmpty(t, result.Devices[2].Glyph)
}

func TestNewDeviceListResult_Empty(t *testing.T) {
	result := display.NewDeviceListResult(nil)
	assert.NotNil(t, result.Devices)
	assert.Empty(t, result.Devices)
}

func TestNewIconListResult(t *testing.T) {
	result := display.NewIconListResult()
	require.Len(t, result.Icons, len(types.Icons()))
	assert.Equal(t, types.IconIphone, result.Icons[0].Token)
	assert.Equal(t, "iphone", result.Icons[0].Alias)
}
