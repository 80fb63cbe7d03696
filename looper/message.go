package looper

// Message is a unit of work posted to a Looper, addressed to a handler id.
//
// A message carries an int32 discriminator ("what"), a typed key/value
// payload, and optionally an embedded ReplyToken for synchronous
// protocols. Messages are immutable by convention once posted: the poster
// hands ownership to the queue, and the queue hands it to the dispatch
// call. Message is not safe for concurrent mutation.
type Message struct {
	what    int32
	target  HandlerID
	payload map[string]interface{}
	reply   *ReplyToken
}

// NewMessage creates a message with the given discriminator, addressed to
// the handler registered under target.
func NewMessage(what int32, target HandlerID) *Message {
	return &Message{
		what:   what,
		target: target,
	}
}

// What returns the message discriminator.
func (m *Message) What() int32 {
	return m.what
}

// Target returns the handler id the message is addressed to.
func (m *Message) Target() HandlerID {
	return m.target
}

// SetTarget re-addresses the message. Only meaningful before posting.
func (m *Message) SetTarget(target HandlerID) {
	m.target = target
}

// SetReplyToken embeds a reply token for a synchronous protocol.
func (m *Message) SetReplyToken(token *ReplyToken) {
	m.reply = token
}

// ReplyToken returns the embedded reply token, if any.
func (m *Message) ReplyToken() (*ReplyToken, bool) {
	return m.reply, m.reply != nil
}

func (m *Message) ensurePayload() {
	if m.payload == nil {
		m.payload = make(map[string]interface{})
	}
}

// SetInt32 stores an int32 payload entry.
func (m *Message) SetInt32(key string, value int32) {
	m.ensurePayload()
	m.payload[key] = value
}

// FindInt32 returns the int32 stored under key, if present with that type.
func (m *Message) FindInt32(key string) (int32, bool) {
	v, ok := m.payload[key].(int32)
	return v, ok
}

// SetInt64 stores an int64 payload entry.
func (m *Message) SetInt64(key string, value int64) {
	m.ensurePayload()
	m.payload[key] = value
}

// FindInt64 returns the int64 stored under key, if present with that type.
func (m *Message) FindInt64(key string) (int64, bool) {
	v, ok := m.payload[key].(int64)
	return v, ok
}

// SetFloat64 stores a float64 payload entry.
func (m *Message) SetFloat64(key string, value float64) {
	m.ensurePayload()
	m.payload[key] = value
}

// FindFloat64 returns the float64 stored under key, if present with that type.
func (m *Message) FindFloat64(key string) (float64, bool) {
	v, ok := m.payload[key].(float64)
	return v, ok
}

// SetString stores a string payload entry.
func (m *Message) SetString(key, value string) {
	m.ensurePayload()
	m.payload[key] = value
}

// FindString returns the string stored under key, if present with that type.
func (m *Message) FindString(key string) (string, bool) {
	v, ok := m.payload[key].(string)
	return v, ok
}

// SetBool stores a bool payload entry.
func (m *Message) SetBool(key string, value bool) {
	m.ensurePayload()
	m.payload[key] = value
}

// FindBool returns the bool stored under key, if present with that type.
func (m *Message) FindBool(key string) (bool, bool) {
	v, ok := m.payload[key].(bool)
	return v, ok
}

// SetObject stores an arbitrary payload entry, used to carry packets,
// buffers, or other pipeline objects through the loop.
func (m *Message) SetObject(key string, value interface{}) {
	m.ensurePayload()
	m.payload[key] = value
}

// FindObject returns the raw value stored under key.
func (m *Message) FindObject(key string) (interface{}, bool) {
	v, ok := m.payload[key]
	return v, ok
}

// Contains reports whether key is present in the payload.
func (m *Message) Contains(key string) bool {
	_, ok := m.payload[key]
	return ok
}

// Clone returns a shallow copy of the message with an independent payload
// map. The reply token, if any, is shared: a token correlates exactly one
// call with one answer regardless of message copies.
func (m *Message) Clone() *Message {
	clone := &Message{
		what:   m.what,
		target: m.target,
		reply:  m.reply,
	}
	if m.payload != nil {
		clone.payload = make(map[string]interface{}, len(m.payload))
		for k, v := range m.payload {
			clone.payload[k] = v
		}
	}
	return clone
}
