package codec

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/avfoundation/media"
)

const (
	pcmFactoryName = "pcm"
	pcmEncoderName = "pcm.encoder"
	pcmDecoderName = "pcm.decoder"

	// PCMFactoryPriority is deliberately low so real codec
	// implementations win ties for ids they share with the passthrough.
	PCMFactoryPriority = int16(0)
)

// PCMFactory builds passthrough codecs for uncompressed audio. The
// "encoder" and "decoder" differ only in direction tag; both copy sample
// info and payload through unchanged. The factory exists so pipelines can
// be wired end to end before a real codec is available, and so tests have
// an instantiable codec with no external deps.
type PCMFactory struct{}

// NewPCMFactory creates the factory.
func NewPCMFactory() *PCMFactory {
	return &PCMFactory{}
}

// SupportedCodecs reports the passthrough encoder and decoder entries.
func (f *PCMFactory) SupportedCodecs() []CodecInfo {
	return []CodecInfo{
		{Name: pcmEncoderName, ID: media.CodecPCM, Encoder: true, MimeType: media.CodecPCM.MimeType()},
		{Name: pcmDecoderName, ID: media.CodecPCM, Encoder: false, MimeType: media.CodecPCM.MimeType()},
	}
}

// CreateByID builds a passthrough codec for CodecPCM in either direction.
func (f *PCMFactory) CreateByID(id media.CodecID, encoder bool) (Codec, error) {
	if id != media.CodecPCM {
		return nil, fmt.Errorf("codec %v: %w", id, ErrNoFactory)
	}
	return newPCMCodec(encoder), nil
}

// CreateByName builds the codec registered under name.
func (f *PCMFactory) CreateByName(name string) (Codec, error) {
	switch name {
	case pcmEncoderName:
		return newPCMCodec(true), nil
	case pcmDecoderName:
		return newPCMCodec(false), nil
	default:
		return nil, fmt.Errorf("codec %q: %w", name, ErrNoFactory)
	}
}

// Name returns the factory name.
func (f *PCMFactory) Name() string { return pcmFactoryName }

// Priority returns the factory priority.
func (f *PCMFactory) Priority() int16 { return PCMFactoryPriority }

// pcmCodec passes PCM packets through unchanged.
type pcmCodec struct {
	encoder bool
	closed  bool
}

func newPCMCodec(encoder bool) *pcmCodec {
	logrus.WithFields(logrus.Fields{
		"function": "newPCMCodec",
		"encoder":  encoder,
	}).Debug("Creating PCM passthrough codec")
	return &pcmCodec{encoder: encoder}
}

func (c *pcmCodec) Name() string {
	if c.encoder {
		return pcmEncoderName
	}
	return pcmDecoderName
}

func (c *pcmCodec) ID() media.CodecID { return media.CodecPCM }

func (c *pcmCodec) Configure(format *media.MetaData) error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

// Process clones the input: passthrough with shared payload, copied
// sample info, EOS preserved.
func (c *pcmCodec) Process(in *media.Packet) (*media.Packet, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if in == nil {
		return nil, fmt.Errorf("pcm passthrough: nil input packet")
	}
	return in.Clone(), nil
}

func (c *pcmCodec) Close() error {
	c.closed = true
	return nil
}
