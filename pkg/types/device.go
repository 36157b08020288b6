package types

// Device is a user-registered item that can be asked to play a sound.
// Devices are immutable once created; the registry only adds and removes them.
type Device struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DeviceList is the persisted aggregate. It is always rewritten whole.
type DeviceList []Device

// IDs returns the ids of all devices in list order
func (l DeviceList) IDs() []string {
	ids := make([]string, len(l))
	for i, d := range l {
		ids[i] = d.ID
	}
	return ids
}

// Find returns the device with the given id
func (l DeviceList) Find(id string) (Device, bool) {
	for _, d := range l {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// Without returns a copy of the list with the given id filtered out
func (l DeviceList) Without(id string) DeviceList {
	out := make(DeviceList, 0, len(l))
	for _, d := range l {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}
