package source

import "github.com/opd-ai/avfoundation/media"

// MediaSource is a pull-based producer of media buffers with seek, pause,
// and stop-time controls.
//
// The contract mirrors the lifecycle of a demuxer track or capture
// device: Start before any other call (GetFormat excepted), Read until
// ErrEndOfStream, Stop to release everything. Read may block the calling
// goroutine until a buffer, ErrEndOfStream, or ErrFormatChanged is
// available.
type MediaSource interface {
	// Start prepares the source. params may carry source-specific
	// configuration and may be nil.
	Start(params *media.MetaData) error

	// Stop halts the source. Any blocking Read returns immediately with
	// ErrNotInitialized, and buffers held by the source are released. It
	// is an error to call anything but Start after Stop.
	Stop() error

	// GetFormat returns the format of the data this source outputs. It
	// is valid before Start.
	GetFormat() *media.MetaData

	// Read returns the next buffer of data. A nil options pointer means
	// defaults: no seek, not late, blocking.
	Read(options *ReadOptions) (*media.Buffer, error)

	// Pause suspends pulling data until a subsequent read-with-seek.
	// Optional; defaults to ErrUnsupported.
	Pause() error

	// SetBuffers requests that the given buffers be returned exclusively
	// from Read calls. Called after Start and before the first Read.
	// Optional; defaults to ErrUnsupported.
	SetBuffers(buffers []*media.Buffer) error

	// SetStopTimeUS requests the source stop producing buffers with
	// timestamps at or after stopTimeUS (same time base as Start).
	// Passing -1 cancels a previous stop time. Optional; defaults to
	// ErrUnsupported.
	SetStopTimeUS(stopTimeUS int64) error
}

// Unimplemented provides the default ErrUnsupported behaviour for the
// optional MediaSource capabilities. Embed it in concrete sources and
// override only what the source actually supports.
type Unimplemented struct{}

// Pause returns ErrUnsupported.
func (Unimplemented) Pause() error { return ErrUnsupported }

// SetBuffers returns ErrUnsupported.
func (Unimplemented) SetBuffers([]*media.Buffer) error { return ErrUnsupported }

// SetStopTimeUS returns ErrUnsupported.
func (Unimplemented) SetStopTimeUS(int64) error { return ErrUnsupported }
