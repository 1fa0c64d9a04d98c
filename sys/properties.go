package sys

// AiPropertyStore is the opaque native container for per-import settings.
type AiPropertyStore struct {
	Sentinel byte
}

// PropertyStore holds importer configuration applied to a single import
// call, such as scale factors or component removal masks.
type PropertyStore struct {
	store *AiPropertyStore
}

// NewPropertyStore allocates a native property store. Release must be
// called when done with it.
func NewPropertyStore() *PropertyStore {
	return &PropertyStore{store: createPropertyStore()}
}

// SetInteger sets an integer-valued import property.
func (ps *PropertyStore) SetInteger(name string, value int32) {
	setImportPropertyInteger(ps.store, name, value)
}

// SetFloat sets a float-valued import property.
func (ps *PropertyStore) SetFloat(name string, value float32) {
	setImportPropertyFloat(ps.store, name, value)
}

// SetString sets a string-valued import property.
func (ps *PropertyStore) SetString(name, value string) {
	s := NewAiString(value)
	setImportPropertyString(ps.store, name, &s)
}

// Release frees the native store. The store must not be used afterwards.
func (ps *PropertyStore) Release() {
	if ps.store != nil {
		releasePropertyStore(ps.store)
		ps.store = nil
	}
}
