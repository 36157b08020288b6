// Package display holds the view models commands hand to renderers.
package display

import (
	"github.com/arthur-debert/wheresmy/pkg/types"
)

// AddDeviceHint is shown after the device list, as the entry point for add
const AddDeviceHint = "Add Device..."

// DeviceView is a device as shown to the user
type DeviceView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	IconTitle string `json:"iconTitle"`
	Glyph     string `json:"-"`
}

// NewDeviceView resolves the device icon against the catalogue
func NewDeviceView(d types.Device) DeviceView {
	icon := types.IconFor(d.Icon)
	return DeviceView{
		ID:        d.ID,
		Name:      d.Name,
		Icon:      d.Icon,
		IconTitle: icon.Title,
		Glyph:     icon.Glyph,
	}
}

// DeviceListResult is the output of list
type DeviceListResult struct {
	Devices []DeviceView `json:"devices"`
}

// NewDeviceListResult builds the list view in registry order
func NewDeviceListResult(list types.DeviceList) *DeviceListResult {
	views := make([]DeviceView, 0, len(list))
	for _, d := range list {
		views = append(views, NewDeviceView(d))
	}
	return &DeviceListResult{Devices: views}
}

// DeviceResult reports a single device change (add, remove)
type DeviceResult struct {
	Action string     `json:"action"`
	Device DeviceView `json:"device"`
}

// IconListResult is the output of icons
type IconListResult struct {
	Icons []IconView `json:"icons"`
}

// IconView is a catalogue entry as shown to the user
type IconView struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Alias string `json:"alias"`
	Glyph string `json:"-"`
}

// NewIconListResult lists the whole catalogue
func NewIconListResult() *IconListResult {
	catalogue := types.Icons()
	views := make([]IconView, len(catalogue))
	for i, icon := range catalogue {
		views[i] = IconView{Token: icon.Token, Title: icon.Title, Alias: icon.Alias, Glyph: icon.Glyph}
	}
	return &IconListResult{Icons: views}
}

// PingResult reports a finished locate request
type PingResult struct {
	Device   DeviceView `json:"device"`
	Phrase   string     `json:"phrase"`
	Shortcut string     `json:"shortcut"`
}
