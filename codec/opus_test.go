package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/avfoundation/media"
)

func TestOpusFactoryMetadata(t *testing.T) {
	f := NewOpusFactory()

	assert.Equal(t, "opus-go", f.Name())
	assert.Equal(t, OpusFactoryPriority, f.Priority())

	infos := f.SupportedCodecs()
	require.Len(t, infos, 1)
	assert.Equal(t, media.CodecOpus, infos[0].ID)
	assert.False(t, infos[0].Encoder)
	assert.Equal(t, "audio/opus", infos[0].MimeType)
}

func TestOpusFactoryCreateByID(t *testing.T) {
	f := NewOpusFactory()

	dec, err := f.CreateByID(media.CodecOpus, false)
	require.NoError(t, err)
	assert.Equal(t, media.CodecOpus, dec.ID())
	assert.NoError(t, dec.Configure(nil))
	assert.NoError(t, dec.Close())
}

func TestOpusFactoryRejectsEncoder(t *testing.T) {
	f := NewOpusFactory()
	_, err := f.CreateByID(media.CodecOpus, true)
	assert.ErrorIs(t, err, ErrEncoderUnsupported)
}

func TestOpusFactoryRejectsForeignID(t *testing.T) {
	f := NewOpusFactory()
	_, err := f.CreateByID(media.CodecVP8, false)
	assert.ErrorIs(t, err, ErrNoFactory)

	_, err = f.CreateByName("not-opus")
	assert.ErrorIs(t, err, ErrNoFactory)
}

func TestOpusDecoderEOSPassthrough(t *testing.T) {
	dec, err := NewOpusFactory().CreateByID(media.CodecOpus, false)
	require.NoError(t, err)

	eos := media.NewPacketWithHandle(nil)
	eos.SetEOS(true)
	out, err := dec.Process(eos)
	require.NoError(t, err)
	assert.True(t, out.IsEOS())
}

func TestOpusDecoderClosed(t *testing.T) {
	dec, err := NewOpusFactory().CreateByID(media.CodecOpus, false)
	require.NoError(t, err)
	require.NoError(t, dec.Close())

	pkt, err := media.NewPacket(4)
	require.NoError(t, err)
	_, err = dec.Process(pkt)
	assert.ErrorIs(t, err, ErrClosed)

	assert.ErrorIs(t, dec.Configure(nil), ErrClosed)
}

func TestPCMPassthroughRoundTrip(t *testing.T) {
	f := NewPCMFactory()

	enc, err := f.CreateByID(media.CodecPCM, true)
	require.NoError(t, err)
	dec, err := f.CreateByID(media.CodecPCM, false)
	require.NoError(t, err)
	assert.Equal(t, "pcm.encoder", enc.Name())
	assert.Equal(t, "pcm.decoder", dec.Name())

	in, err := media.NewPacket(8)
	require.NoError(t, err)
	copy(in.Data(), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	in.SetMediaType(media.MediaTypeAudio)
	in.AudioInfo().SampleRateHz = 48000
	in.SetEOS(true)

	out, err := enc.Process(in)
	require.NoError(t, err)
	assert.Equal(t, in.Data(), out.Data())
	assert.True(t, out.IsEOS())
	require.NotNil(t, out.AudioInfo())
	assert.Equal(t, int32(48000), out.AudioInfo().SampleRateHz)
}

func TestPCMFactoryWinsOnlyWithoutCompetition(t *testing.T) {
	resetRegistry()
	require.NoError(t, RegisterFactory(NewPCMFactory()))
	require.NoError(t, RegisterFactory(NewOpusFactory()))

	// Opus requests route to the opus factory despite later registration.
	dec, err := CreateCodecByType(media.CodecOpus, false)
	require.NoError(t, err)
	assert.Equal(t, "opus-go.decoder", dec.Name())

	// PCM requests fall through to the passthrough.
	enc, err := CreateCodecByType(media.CodecPCM, true)
	require.NoError(t, err)
	assert.Equal(t, "pcm.encoder", enc.Name())
}
