package registry

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/wheresmy/pkg/datastore"
	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/logging"
	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StorageKey is the datastore key holding the serialized device list
const StorageKey = "devices"

// IDFunc mints a candidate id for a new device
type IDFunc func() string

// Observer is called with the current view after every load and mutation
type Observer func(devices types.DeviceList)

// Option configures a Registry
type Option func(*Registry)

// WithIDFunc replaces the default UUIDv7 id source
func WithIDFunc(f IDFunc) Option {
	return func(r *Registry) {
		r.newID = f
	}
}

// WithObserver registers a callback that receives every refreshed view
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observers = append(r.observers, o)
	}
}

// Registry is the device registry
type Registry struct {
	mu        sync.Mutex
	store     datastore.DataStore
	newID     IDFunc
	observers []Observer
	devices   types.DeviceList
	loaded    bool
	logger    zerolog.Logger
}

// New creates a registry over the given store. Nothing is read until Load
// or the first operation that needs the list.
func New(store datastore.DataStore, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		newID:  newUUID,
		logger: logging.GetLogger("registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// newUUID returns a time-ordered UUIDv7, falling back to a random v4
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load reads the stored list. It never fails: an absent key, a storage
// error or malformed content all yield an empty list.
func (r *Registry) Load() types.DeviceList {
	r.mu.Lock()
	r.devices = r.read()
	r.loaded = true
	devices := r.snapshot()
	view, observers := r.pending()
	r.mu.Unlock()

	notify(view, observers)
	return devices
}

func (r *Registry) read() types.DeviceList {
	raw, ok, err := r.store.Get(StorageKey)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Failed to read stored devices, starting with an empty list")
		return types.DeviceList{}
	}
	if !ok {
		return types.DeviceList{}
	}

	var devices types.DeviceList
	if err := json.Unmarshal([]byte(raw), &devices); err != nil {
		r.logger.Warn().Err(err).Msg("Stored devices are malformed, starting with an empty list")
		return types.DeviceList{}
	}
	if devices == nil {
		devices = types.DeviceList{}
	}

	r.logger.Debug().Int("count", len(devices)).Msg("Devices loaded")
	return devices
}

// Devices returns the current view, loading it on first use
func (r *Registry) Devices() types.DeviceList {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded()
	return r.snapshot()
}

func (r *Registry) ensureLoaded() {
	if !r.loaded {
		r.devices = r.read()
		r.loaded = true
	}
}

func (r *Registry) snapshot() types.DeviceList {
	out := make(types.DeviceList, len(r.devices))
	copy(out, r.devices)
	return out
}

// pending captures the view and observers to notify once r.mu is released.
// Observers may call back into the registry.
func (r *Registry) pending() (types.DeviceList, []Observer) {
	if len(r.observers) == 0 {
		return nil, nil
	}
	observers := make([]Observer, len(r.observers))
	copy(observers, r.observers)
	return r.snapshot(), observers
}

func notify(view types.DeviceList, observers []Observer) {
	for _, o := range observers {
		o(view)
	}
}

// Add creates a device with a fresh id, appends it and persists the list.
// icon may be a token or alias from the icon catalogue; empty selects the
// default icon. The name is stored as given; only blank names are rejected.
func (r *Registry) Add(name, icon string) (types.Device, error) {
	if strings.TrimSpace(name) == "" {
		return types.Device{}, errors.New(errors.ErrInvalidInput, "device name cannot be empty")
	}

	token := types.DefaultIcon
	if strings.TrimSpace(icon) != "" {
		resolved, ok := types.LookupIcon(icon)
		if !ok {
			return types.Device{}, errors.Newf(errors.ErrInvalidInput, "unknown icon %q", icon).
				WithDetail("icon", icon)
		}
		token = resolved.Token
	}

	r.mu.Lock()
	r.ensureLoaded()

	device := types.Device{
		ID:   r.uniqueID(),
		Name: name,
		Icon: token,
	}

	if err := r.persist(append(r.snapshot(), device)); err != nil {
		r.mu.Unlock()
		return types.Device{}, err
	}
	view, observers := r.pending()
	r.mu.Unlock()

	notify(view, observers)
	r.logger.Info().Str("id", device.ID).Str("device", device.Name).Str("icon", device.Icon).Msg("Device added")
	return device, nil
}

// uniqueID mints an id that no current device uses. Colliding candidates
// (a coarse clock, a fixed IDFunc) get a numeric suffix.
func (r *Registry) uniqueID() string {
	taken := make(map[string]bool, len(r.devices))
	for _, id := range r.devices.IDs() {
		taken[id] = true
	}

	candidate := r.newID()
	if candidate == "" {
		candidate = newUUID()
	}
	if !taken[candidate] {
		return candidate
	}
	for n := 2; ; n++ {
		suffixed := fmt.Sprintf("%s-%d", candidate, n)
		if !taken[suffixed] {
			return suffixed
		}
	}
}

// Remove drops the device with the given id and persists the list. An
// unknown id leaves everything untouched and reports removed=false.
func (r *Registry) Remove(id string) (removed bool, err error) {
	r.mu.Lock()
	r.ensureLoaded()

	if _, ok := r.devices.Find(id); !ok {
		r.mu.Unlock()
		r.logger.Debug().Str("id", id).Msg("Remove of unknown device ignored")
		return false, nil
	}

	if err := r.persist(r.devices.Without(id)); err != nil {
		r.mu.Unlock()
		return false, err
	}
	view, observers := r.pending()
	r.mu.Unlock()

	notify(view, observers)
	r.logger.Info().Str("id", id).Msg("Device removed")
	return true, nil
}

// Persist replaces the stored list with devices and refreshes the view
func (r *Registry) Persist(devices types.DeviceList) error {
	r.mu.Lock()
	if err := r.persist(devices); err != nil {
		r.mu.Unlock()
		return err
	}
	view, observers := r.pending()
	r.mu.Unlock()

	notify(view, observers)
	return nil
}

func (r *Registry) persist(devices types.DeviceList) error {
	if devices == nil {
		devices = types.DeviceList{}
	}

	data, err := json.Marshal(devices)
	if err != nil {
		return errors.Wrap(err, errors.ErrStorageWrite, "failed to encode devices")
	}
	if err := r.store.Set(StorageKey, string(data)); err != nil {
		return errors.Wrap(err, errors.ErrStorageWrite, "failed to persist devices")
	}

	r.devices = make(types.DeviceList, len(devices))
	copy(r.devices, devices)
	r.loaded = true
	return nil
}

// Resolve finds a device by exact id, then by case-insensitive name
func (r *Registry) Resolve(ref string) (types.Device, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded()

	if d, ok := r.devices.Find(ref); ok {
		return d, true
	}
	ref = strings.TrimSpace(ref)
	for _, d := range r.devices {
		if strings.EqualFold(strings.TrimSpace(d.Name), ref) {
			return d, true
		}
	}
	return types.Device{}, false
}
