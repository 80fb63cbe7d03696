package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/avfoundation/media"
)

// stubCodec records which factory built it.
type stubCodec struct {
	factory string
	id      media.CodecID
}

func (c *stubCodec) Name() string                    { return c.factory }
func (c *stubCodec) ID() media.CodecID               { return c.id }
func (c *stubCodec) Configure(*media.MetaData) error { return nil }
func (c *stubCodec) Close() error                    { return nil }

func (c *stubCodec) Process(in *media.Packet) (*media.Packet, error) {
	return in, nil
}

// stubFactory advertises a fixed codec list at a fixed priority.
type stubFactory struct {
	name     string
	priority int16
	infos    []CodecInfo
}

func (f *stubFactory) SupportedCodecs() []CodecInfo { return f.infos }

func (f *stubFactory) CreateByID(id media.CodecID, encoder bool) (Codec, error) {
	for _, info := range f.infos {
		if info.ID == id && info.Encoder == encoder {
			return &stubCodec{factory: f.name, id: id}, nil
		}
	}
	return nil, fmt.Errorf("codec %v: %w", id, ErrNoFactory)
}

func (f *stubFactory) CreateByName(name string) (Codec, error) {
	for _, info := range f.infos {
		if info.Name == name {
			return &stubCodec{factory: f.name, id: info.ID}, nil
		}
	}
	return nil, fmt.Errorf("codec %q: %w", name, ErrNoFactory)
}

func (f *stubFactory) Name() string    { return f.name }
func (f *stubFactory) Priority() int16 { return f.priority }

func decoderInfo(name string, id media.CodecID) CodecInfo {
	return CodecInfo{Name: name, ID: id, Encoder: false, MimeType: id.MimeType()}
}

func TestRegisterNilFactory(t *testing.T) {
	resetRegistry()
	assert.ErrorIs(t, RegisterFactory(nil), ErrNilFactory)
}

func TestCreateCodecByTypePicksHighestPriority(t *testing.T) {
	resetRegistry()
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "low", priority: 1,
		infos: []CodecInfo{decoderInfo("low.h264", media.CodecH264)},
	}))
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "high", priority: 5,
		infos: []CodecInfo{decoderInfo("high.h264", media.CodecH264)},
	}))

	c, err := CreateCodecByType(media.CodecH264, false)
	require.NoError(t, err)
	assert.Equal(t, "high", c.(*stubCodec).factory)
}

func TestCreateCodecByTypeTieBreaksByRegistrationOrder(t *testing.T) {
	resetRegistry()
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "first", priority: 3,
		infos: []CodecInfo{decoderInfo("first.vp9", media.CodecVP9)},
	}))
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "second", priority: 3,
		infos: []CodecInfo{decoderInfo("second.vp9", media.CodecVP9)},
	}))

	c, err := CreateCodecByType(media.CodecVP9, false)
	require.NoError(t, err)
	assert.Equal(t, "first", c.(*stubCodec).factory)
}

func TestCreateCodecByTypeSkipsIncapableFactories(t *testing.T) {
	resetRegistry()
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "video-only", priority: 9,
		infos: []CodecInfo{decoderInfo("video.av1", media.CodecAV1)},
	}))
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "audio", priority: 1,
		infos: []CodecInfo{decoderInfo("audio.aac", media.CodecAAC)},
	}))

	c, err := CreateCodecByType(media.CodecAAC, false)
	require.NoError(t, err)
	assert.Equal(t, "audio", c.(*stubCodec).factory)
}

func TestCreateCodecByTypeNoFactory(t *testing.T) {
	resetRegistry()
	_, err := CreateCodecByType(media.CodecH265, false)
	assert.ErrorIs(t, err, ErrNoFactory)
}

func TestCreateCodecByTypeDirectionMatters(t *testing.T) {
	resetRegistry()
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "dec-only", priority: 1,
		infos: []CodecInfo{decoderInfo("dec.opus", media.CodecOpus)},
	}))

	_, err := CreateCodecByType(media.CodecOpus, true)
	assert.ErrorIs(t, err, ErrNoFactory)
}

func TestCreateCodecByName(t *testing.T) {
	resetRegistry()
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "f", priority: 1,
		infos: []CodecInfo{decoderInfo("f.vp8", media.CodecVP8)},
	}))

	c, err := CreateCodecByName("f.vp8")
	require.NoError(t, err)
	assert.Equal(t, media.CodecVP8, c.ID())

	_, err = CreateCodecByName("missing")
	assert.ErrorIs(t, err, ErrNoFactory)
}

func TestSupportedCodecsPriorityOrder(t *testing.T) {
	resetRegistry()
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "low", priority: 1,
		infos: []CodecInfo{decoderInfo("low.pcm", media.CodecPCM)},
	}))
	require.NoError(t, RegisterFactory(&stubFactory{
		name: "high", priority: 7,
		infos: []CodecInfo{decoderInfo("high.opus", media.CodecOpus)},
	}))

	infos := SupportedCodecs()
	require.Len(t, infos, 2)
	assert.Equal(t, "high.opus", infos[0].Name)
	assert.Equal(t, "low.pcm", infos[1].Name)
}
