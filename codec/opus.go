package codec

import (
	"fmt"

	"github.com/pion/opus"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/avfoundation/media"
)

const (
	opusFactoryName = "opus-go"
	opusDecoderName = "opus-go.decoder"

	// OpusFactoryPriority ranks the pure Go Opus decoder above generic
	// passthrough implementations.
	OpusFactoryPriority = int16(10)

	// opusMaxFrameBytes holds one decoded frame: 1920 samples (40ms at
	// 48kHz) of 16-bit PCM.
	opusMaxFrameBytes = 1920 * 2
)

// OpusFactory builds Opus decoders backed by the pure Go pion/opus
// implementation. Encoding is not available from pion/opus, so encoder
// requests fail with ErrEncoderUnsupported.
type OpusFactory struct{}

// NewOpusFactory creates the factory. Register it with RegisterFactory to
// make the decoder discoverable.
func NewOpusFactory() *OpusFactory {
	return &OpusFactory{}
}

// SupportedCodecs reports the single Opus decoder entry.
func (f *OpusFactory) SupportedCodecs() []CodecInfo {
	return []CodecInfo{
		{
			Name:     opusDecoderName,
			ID:       media.CodecOpus,
			Encoder:  false,
			MimeType: media.CodecOpus.MimeType(),
		},
	}
}

// CreateByID builds an Opus decoder. Encoder requests and foreign ids are
// rejected.
func (f *OpusFactory) CreateByID(id media.CodecID, encoder bool) (Codec, error) {
	if id != media.CodecOpus {
		return nil, fmt.Errorf("codec %v: %w", id, ErrNoFactory)
	}
	if encoder {
		return nil, fmt.Errorf("opus: %w", ErrEncoderUnsupported)
	}
	return newOpusDecoder(), nil
}

// CreateByName builds the decoder registered under opusDecoderName.
func (f *OpusFactory) CreateByName(name string) (Codec, error) {
	if name != opusDecoderName {
		return nil, fmt.Errorf("codec %q: %w", name, ErrNoFactory)
	}
	return newOpusDecoder(), nil
}

// Name returns the factory name.
func (f *OpusFactory) Name() string { return opusFactoryName }

// Priority returns the factory priority.
func (f *OpusFactory) Priority() int16 { return OpusFactoryPriority }

// opusDecoder decodes Opus packets to 16-bit little-endian PCM packets.
type opusDecoder struct {
	decoder opus.Decoder
	closed  bool
}

func newOpusDecoder() *opusDecoder {
	logrus.WithFields(logrus.Fields{
		"function": "newOpusDecoder",
	}).Debug("Creating Opus decoder instance")
	return &opusDecoder{decoder: opus.NewDecoder()}
}

func (d *opusDecoder) Name() string { return opusDecoderName }

func (d *opusDecoder) ID() media.CodecID { return media.CodecOpus }

// Configure accepts a format but needs nothing from it: pion/opus derives
// bandwidth and channel layout from the bitstream itself.
func (d *opusDecoder) Configure(format *media.MetaData) error {
	if d.closed {
		return ErrClosed
	}
	return nil
}

// Process decodes one Opus packet into a PCM packet tagged as audio, with
// sample info filled from the decoded frame. EOS packets pass through.
func (d *opusDecoder) Process(in *media.Packet) (*media.Packet, error) {
	if d.closed {
		return nil, ErrClosed
	}
	if in == nil {
		return nil, fmt.Errorf("opus decode: nil input packet")
	}
	if in.IsEOS() && len(in.Data()) == 0 {
		return in.Clone(), nil
	}

	data := in.Data()
	if len(data) == 0 {
		return nil, fmt.Errorf("opus decode: %w", media.ErrNotBufferBacked)
	}

	// One decoded frame: up to 1920 samples of s16le (40ms at 48kHz).
	output := make([]byte, opusMaxFrameBytes)
	bandwidth, isStereo, err := d.decoder.Decode(data, output)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":  "opusDecoder.Process",
			"data_size": len(data),
			"error":     err.Error(),
		}).Error("Opus decode failed")
		return nil, fmt.Errorf("opus decode failed: %w", err)
	}

	channels := int32(1)
	if isStereo {
		channels = 2
	}

	out, err := media.NewPacket(len(output))
	if err != nil {
		return nil, err
	}
	copy(out.Data(), output)
	out.SetMediaType(media.MediaTypeAudio)
	info := out.AudioInfo()
	info.Codec = media.CodecPCM
	info.SampleRateHz = 48000
	info.ChannelCount = channels
	info.SamplesPerChannel = int32(len(output) / 2 / int(channels))
	out.SetEOS(in.IsEOS())

	logrus.WithFields(logrus.Fields{
		"function":  "opusDecoder.Process",
		"bandwidth": bandwidth.String(),
		"stereo":    isStereo,
		"in_bytes":  len(data),
		"out_bytes": len(output),
	}).Debug("Opus frame decoded")
	return out, nil
}

func (d *opusDecoder) Close() error {
	d.closed = true
	return nil
}
