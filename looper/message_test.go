package looper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagePayloadAccessors(t *testing.T) {
	msg := NewMessage(7, 3)
	assert.Equal(t, int32(7), msg.What())
	assert.Equal(t, HandlerID(3), msg.Target())

	msg.SetInt32("i32", -5)
	msg.SetInt64("i64", 1<<40)
	msg.SetFloat64("f64", 0.25)
	msg.SetString("str", "hello")
	msg.SetBool("flag", true)
	msg.SetObject("obj", []byte{1, 2})

	v32, ok := msg.FindInt32("i32")
	require.True(t, ok)
	assert.Equal(t, int32(-5), v32)

	v64, ok := msg.FindInt64("i64")
	require.True(t, ok)
	assert.Equal(t, int64(1<<40), v64)

	f, ok := msg.FindFloat64("f64")
	require.True(t, ok)
	assert.Equal(t, 0.25, f)

	s, ok := msg.FindString("str")
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	b, ok := msg.FindBool("flag")
	require.True(t, ok)
	assert.True(t, b)

	obj, ok := msg.FindObject("obj")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2}, obj)

	// Type mismatches and absent keys are misses, not panics.
	_, ok = msg.FindInt32("str")
	assert.False(t, ok)
	_, ok = msg.FindString("missing")
	assert.False(t, ok)
	assert.True(t, msg.Contains("flag"))
	assert.False(t, msg.Contains("missing"))
}

func TestMessageRetarget(t *testing.T) {
	msg := NewMessage(1, 2)
	msg.SetTarget(9)
	assert.Equal(t, HandlerID(9), msg.Target())
}

func TestMessageCloneIndependentPayload(t *testing.T) {
	msg := NewMessage(1, 2)
	msg.SetString("k", "original")

	clone := msg.Clone()
	clone.SetString("k", "modified")

	v, _ := msg.FindString("k")
	assert.Equal(t, "original", v)
	cv, _ := clone.FindString("k")
	assert.Equal(t, "modified", cv)
}

func TestMessageCloneSharesReplyToken(t *testing.T) {
	token := newReplyToken(1)
	msg := NewMessage(1, 2)
	msg.SetReplyToken(token)

	clone := msg.Clone()
	cloneToken, ok := clone.ReplyToken()
	require.True(t, ok)
	assert.Same(t, token, cloneToken)
}

func TestHandlerFuncAdapter(t *testing.T) {
	var received *Message
	h := HandlerFunc(func(msg *Message) { received = msg })

	msg := NewMessage(5, 1)
	h.OnMessageReceived(msg)
	assert.Same(t, msg, received)
}
