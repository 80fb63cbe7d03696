package codec

import "github.com/opd-ai/avfoundation/media"

// CodecInfo describes one codec an implementation can provide.
type CodecInfo struct {
	// Name is the implementation name, unique per factory entry.
	Name string
	// ID identifies the codec independent of implementation.
	ID media.CodecID
	// Encoder is true for encoders, false for decoders.
	Encoder bool
	// MimeType is the MIME type of the coded format.
	MimeType string
}

// Codec is a single encoder or decoder instance created by a Factory.
//
// Process transforms one input packet into one output packet,
// synchronously on the calling goroutine; handler-driven pipelines
// typically invoke it from code running on a looper. Implementations are
// not required to be safe for concurrent Process calls.
type Codec interface {
	// Name returns the implementation name.
	Name() string

	// ID returns the codec id this instance handles.
	ID() media.CodecID

	// Configure applies a stream format before processing. Passing nil
	// keeps the implementation defaults.
	Configure(format *media.MetaData) error

	// Process transforms one packet. An EOS input packet is passed
	// through with the EOS flag preserved.
	Process(in *media.Packet) (*media.Packet, error)

	// Close releases the instance. Further Process calls fail.
	Close() error
}

// Factory enumerates and instantiates codec implementations. Factories
// register with the process-wide registry via RegisterFactory.
type Factory interface {
	// SupportedCodecs reports every codec this factory can build.
	SupportedCodecs() []CodecInfo

	// CreateByID builds a codec for the given id and direction.
	CreateByID(id media.CodecID, encoder bool) (Codec, error)

	// CreateByName builds the codec registered under name.
	CreateByName(name string) (Codec, error)

	// Name returns the factory name.
	Name() string

	// Priority breaks ties when multiple factories satisfy a request;
	// higher wins.
	Priority() int16
}
