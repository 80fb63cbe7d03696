package media

// Well-known MetaData keys. Concrete sources and codecs may define
// additional keys; these cover the format descriptions exchanged between
// the built-in components.
const (
	KeyMIME         = "mime"
	KeyCodecID      = "codec-id"
	KeySampleRate   = "sample-rate"
	KeyChannelCount = "channel-count"
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyFrameRate    = "frame-rate"
	KeyDurationUS   = "duration-us"
	KeyTimeUS       = "time-us"
	KeyIsSyncFrame  = "is-sync-frame"
	KeyBitRate      = "bit-rate"
)

// MetaData is a typed key/value description of a stream or buffer.
//
// It is the format currency of the pipeline: MediaSource.GetFormat returns
// one, codec Configure consumes one, and buffers may carry one for
// per-buffer attributes such as timestamps. MetaData is not safe for
// concurrent mutation.
type MetaData struct {
	items map[string]interface{}
}

// NewMetaData creates an empty MetaData.
func NewMetaData() *MetaData {
	return &MetaData{items: make(map[string]interface{})}
}

// SetInt32 stores an int32 value under key.
func (m *MetaData) SetInt32(key string, value int32) {
	m.items[key] = value
}

// FindInt32 returns the int32 stored under key, if present with that type.
func (m *MetaData) FindInt32(key string) (int32, bool) {
	v, ok := m.items[key].(int32)
	return v, ok
}

// SetInt64 stores an int64 value under key.
func (m *MetaData) SetInt64(key string, value int64) {
	m.items[key] = value
}

// FindInt64 returns the int64 stored under key, if present with that type.
func (m *MetaData) FindInt64(key string) (int64, bool) {
	v, ok := m.items[key].(int64)
	return v, ok
}

// SetFloat64 stores a float64 value under key.
func (m *MetaData) SetFloat64(key string, value float64) {
	m.items[key] = value
}

// FindFloat64 returns the float64 stored under key, if present with that type.
func (m *MetaData) FindFloat64(key string) (float64, bool) {
	v, ok := m.items[key].(float64)
	return v, ok
}

// SetString stores a string value under key.
func (m *MetaData) SetString(key, value string) {
	m.items[key] = value
}

// FindString returns the string stored under key, if present with that type.
func (m *MetaData) FindString(key string) (string, bool) {
	v, ok := m.items[key].(string)
	return v, ok
}

// SetBool stores a bool value under key.
func (m *MetaData) SetBool(key string, value bool) {
	m.items[key] = value
}

// FindBool returns the bool stored under key, if present with that type.
func (m *MetaData) FindBool(key string) (bool, bool) {
	v, ok := m.items[key].(bool)
	return v, ok
}

// Contains reports whether key is present.
func (m *MetaData) Contains(key string) bool {
	_, ok := m.items[key]
	return ok
}

// Remove deletes key, if present.
func (m *MetaData) Remove(key string) {
	delete(m.items, key)
}

// Len returns the number of stored entries.
func (m *MetaData) Len() int {
	return len(m.items)
}

// Clone returns an independent copy. Values are copied shallowly, which is
// sufficient for the scalar types used by the built-in components.
func (m *MetaData) Clone() *MetaData {
	clone := NewMetaData()
	for k, v := range m.items {
		clone.items[k] = v
	}
	return clone
}
