package source

import (
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/avfoundation/media"
)

// Default synthetic source parameters: 48kHz mono s16 PCM in 20ms frames,
// one second total, a sync frame every 10 frames.
const (
	DefaultSampleRateHz       = 48000
	DefaultChannelCount       = 1
	DefaultFrameDurationUS    = 20_000
	DefaultDurationUS         = 1_000_000
	DefaultSyncIntervalFrames = 10

	toneFrequencyHz = 440.0
)

// SyntheticConfig configures a SyntheticSource. Zero fields take the
// package defaults.
type SyntheticConfig struct {
	SampleRateHz       int32
	ChannelCount       int32
	FrameDurationUS    int64
	DurationUS         int64
	SyncIntervalFrames int64
}

func (c *SyntheticConfig) applyDefaults() {
	if c.SampleRateHz == 0 {
		c.SampleRateHz = DefaultSampleRateHz
	}
	if c.ChannelCount == 0 {
		c.ChannelCount = DefaultChannelCount
	}
	if c.FrameDurationUS == 0 {
		c.FrameDurationUS = DefaultFrameDurationUS
	}
	if c.DurationUS == 0 {
		c.DurationUS = DefaultDurationUS
	}
	if c.SyncIntervalFrames == 0 {
		c.SyncIntervalFrames = DefaultSyncIntervalFrames
	}
}

// SyntheticSource is an in-memory PCM tone source implementing the full
// MediaSource contract: all four seek modes (sync samples fall on a
// configurable frame grid), pause until read-with-seek, stop-time
// dropping, lateness-based frame thinning, and end of stream.
//
// Frame content is a pure tone derived from the absolute sample index, so
// a frame read after a seek is byte-identical to the same frame read
// sequentially. Generation is immediate: Read never actually blocks, so
// the non-blocking flag only matters while the source is paused.
type SyntheticSource struct {
	Unimplemented

	cfg         SyntheticConfig
	totalFrames int64

	mu            sync.Mutex
	started       bool
	paused        bool
	frameIndex    int64
	stopTimeUS    int64
	format        *media.MetaData
	formatPending bool
}

// NewSyntheticSource creates an idle synthetic source.
func NewSyntheticSource(cfg SyntheticConfig) *SyntheticSource {
	cfg.applyDefaults()
	s := &SyntheticSource{
		cfg:         cfg,
		totalFrames: cfg.DurationUS / cfg.FrameDurationUS,
		stopTimeUS:  -1,
	}
	s.format = s.buildFormat()
	return s
}

func (s *SyntheticSource) buildFormat() *media.MetaData {
	format := media.NewMetaData()
	format.SetString(media.KeyMIME, media.CodecPCM.MimeType())
	format.SetInt32(media.KeyCodecID, int32(media.CodecPCM))
	format.SetInt32(media.KeySampleRate, s.cfg.SampleRateHz)
	format.SetInt32(media.KeyChannelCount, s.cfg.ChannelCount)
	format.SetInt64(media.KeyDurationUS, s.cfg.DurationUS)
	return format
}

// Start prepares the source for reading from position zero. params is
// accepted for contract parity and ignored.
func (s *SyntheticSource) Start(params *media.MetaData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("synthetic source already started: %w", ErrBadValue)
	}
	s.started = true
	s.paused = false
	s.frameIndex = 0

	logrus.WithFields(logrus.Fields{
		"function":     "SyntheticSource.Start",
		"sample_rate":  s.cfg.SampleRateHz,
		"channels":     s.cfg.ChannelCount,
		"total_frames": s.totalFrames,
	}).Info("Synthetic source started")
	return nil
}

// Stop halts the source. Only Start is valid afterwards.
func (s *SyntheticSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrNotInitialized
	}
	s.started = false
	logrus.WithFields(logrus.Fields{
		"function": "SyntheticSource.Stop",
	}).Info("Synthetic source stopped")
	return nil
}

// GetFormat returns the current output format. Valid before Start.
func (s *SyntheticSource) GetFormat() *media.MetaData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format.Clone()
}

// Pause suspends production until a subsequent read-with-seek. Reads
// while paused return ErrWouldBlock.
func (s *SyntheticSource) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrNotInitialized
	}
	s.paused = true
	return nil
}

// SetStopTimeUS requests dropping of frames with timestamps at or after
// stopTimeUS. -1 cancels a previous request; anything below -1 is
// malformed. May be called at any time, even before Start, and multiple
// times.
func (s *SyntheticSource) SetStopTimeUS(stopTimeUS int64) error {
	if stopTimeUS < -1 {
		return fmt.Errorf("stop time %d: %w", stopTimeUS, ErrBadValue)
	}
	s.mu.Lock()
	s.stopTimeUS = stopTimeUS
	s.mu.Unlock()
	return nil
}

// Reconfigure switches the output sample rate mid-stream. The next Read
// observes ErrFormatChanged once, then buffers of the new configuration.
func (s *SyntheticSource) Reconfigure(sampleRateHz int32) error {
	if sampleRateHz <= 0 {
		return fmt.Errorf("sample rate %d: %w", sampleRateHz, ErrBadValue)
	}
	s.mu.Lock()
	s.cfg.SampleRateHz = sampleRateHz
	s.format = s.buildFormat()
	s.formatPending = true
	s.mu.Unlock()
	return nil
}

// Read returns the next frame of tone data, honouring any seek request,
// the pause state, the stop time, and the lateness hint (frames the
// consumer is late by are skipped, not delivered).
func (s *SyntheticSource) Read(options *ReadOptions) (*media.Buffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil, ErrNotInitialized
	}

	if options != nil {
		if timeUS, mode, ok := options.GetSeekTo(); ok {
			if timeUS < 0 {
				return nil, fmt.Errorf("seek to %dus: %w", timeUS, ErrBadValue)
			}
			s.frameIndex = s.resolveSeek(timeUS, mode)
			s.paused = false
		}
		if late := options.GetLateBy(); late > 0 {
			s.frameIndex += late / s.cfg.FrameDurationUS
		}
	}

	if s.paused {
		return nil, ErrWouldBlock
	}
	if s.formatPending {
		s.formatPending = false
		return nil, ErrFormatChanged
	}
	if s.frameIndex >= s.totalFrames {
		return nil, ErrEndOfStream
	}

	frameTimeUS := s.frameIndex * s.cfg.FrameDurationUS
	if s.stopTimeUS >= 0 && frameTimeUS >= s.stopTimeUS {
		return nil, ErrEndOfStream
	}

	buf := s.generateFrame(s.frameIndex, frameTimeUS)
	s.frameIndex++
	return buf, nil
}

// resolveSeek maps a seek request to a frame index per the requested
// mode. Sync frames fall on the SyncIntervalFrames grid.
func (s *SyntheticSource) resolveSeek(timeUS int64, mode SeekMode) int64 {
	frameDur := s.cfg.FrameDurationUS
	syncDur := frameDur * s.cfg.SyncIntervalFrames

	var frame int64
	switch mode {
	case SeekClosest:
		frame = timeUS / frameDur
	case SeekPreviousSync:
		frame = (timeUS / syncDur) * s.cfg.SyncIntervalFrames
	case SeekNextSync:
		frame = ((timeUS + syncDur - 1) / syncDur) * s.cfg.SyncIntervalFrames
	case SeekClosestSync:
		prev := (timeUS / syncDur) * syncDur
		next := prev + syncDur
		// Ties resolve backwards, matching SeekPreviousSync.
		if timeUS-prev <= next-timeUS {
			frame = prev / frameDur
		} else {
			frame = next / frameDur
		}
	default:
		frame = timeUS / frameDur
	}

	if frame > s.totalFrames {
		frame = s.totalFrames
	}
	return frame
}

// generateFrame renders one frame of s16le tone. Sample values depend
// only on the absolute sample index so seeks are deterministic.
func (s *SyntheticSource) generateFrame(frame, frameTimeUS int64) *media.Buffer {
	samplesPerChannel := int64(s.cfg.SampleRateHz) * s.cfg.FrameDurationUS / 1_000_000
	channels := int64(s.cfg.ChannelCount)
	buf := media.NewBufferWithData(make([]byte, samplesPerChannel*channels*2))

	data := buf.Data()
	base := frame * samplesPerChannel
	for i := int64(0); i < samplesPerChannel; i++ {
		phase := 2 * math.Pi * toneFrequencyHz * float64(base+i) / float64(s.cfg.SampleRateHz)
		sample := int16(math.Sin(phase) * 0.5 * math.MaxInt16)
		for ch := int64(0); ch < channels; ch++ {
			idx := (i*channels + ch) * 2
			data[idx] = byte(sample)
			data[idx+1] = byte(sample >> 8)
		}
	}

	meta := buf.Meta()
	meta.SetInt64(media.KeyTimeUS, frameTimeUS)
	meta.SetBool(media.KeyIsSyncFrame, frame%s.cfg.SyncIntervalFrames == 0)
	return buf
}
