package source

// SeekMode selects which sample a seek request resolves to when the
// requested time does not land exactly on a sync sample.
type SeekMode int32

const (
	// SeekPreviousSync resolves to the closest sync sample at or before
	// the requested time.
	SeekPreviousSync SeekMode = iota
	// SeekNextSync resolves to the closest sync sample at or after the
	// requested time.
	SeekNextSync
	// SeekClosestSync resolves to the nearest sync sample in either
	// direction.
	SeekClosestSync
	// SeekClosest resolves to the sample containing the requested time,
	// sync or not.
	SeekClosest
)

func (m SeekMode) String() string {
	switch m {
	case SeekPreviousSync:
		return "previous-sync"
	case SeekNextSync:
		return "next-sync"
	case SeekClosestSync:
		return "closest-sync"
	case SeekClosest:
		return "closest"
	default:
		return "unknown"
	}
}

// ReadOptions modifies the behaviour of a single Read call. The zero
// value requests no seek, zero lateness, and a blocking read. Seek
// requests are non-persistent: ClearNonPersistent resets them between
// buffer reads while keeping lateness and blocking mode.
type ReadOptions struct {
	seekRequested bool
	seekTimeUS    int64
	seekMode      SeekMode
	latenessUS    int64
	nonBlocking   bool
}

// Reset returns every option to its default.
func (o *ReadOptions) Reset() {
	*o = ReadOptions{}
}

// SetSeekTo requests a seek to timeUS resolved per mode.
func (o *ReadOptions) SetSeekTo(timeUS int64, mode SeekMode) {
	o.seekRequested = true
	o.seekTimeUS = timeUS
	o.seekMode = mode
}

// ClearSeekTo removes a pending seek request.
func (o *ReadOptions) ClearSeekTo() {
	o.seekRequested = false
	o.seekTimeUS = 0
	o.seekMode = SeekPreviousSync
}

// GetSeekTo reports the pending seek request, if any.
func (o *ReadOptions) GetSeekTo() (timeUS int64, mode SeekMode, ok bool) {
	return o.seekTimeUS, o.seekMode, o.seekRequested
}

// SetLateBy records how far behind the consumer is running, a hint a
// source may use to drop or thin output.
func (o *ReadOptions) SetLateBy(latenessUS int64) {
	o.latenessUS = latenessUS
}

// GetLateBy returns the lateness hint.
func (o *ReadOptions) GetLateBy() int64 {
	return o.latenessUS
}

// SetNonBlocking makes Read return ErrWouldBlock instead of waiting.
func (o *ReadOptions) SetNonBlocking() {
	o.nonBlocking = true
}

// ClearNonBlocking restores blocking reads.
func (o *ReadOptions) ClearNonBlocking() {
	o.nonBlocking = false
}

// GetNonBlocking reports whether the read is non-blocking.
func (o *ReadOptions) GetNonBlocking() bool {
	return o.nonBlocking
}

// ClearNonPersistent clears options that apply to a single read (the seek
// request), keeping lateness and blocking mode for reuse across reads.
func (o *ReadOptions) ClearNonPersistent() {
	o.ClearSeekTo()
}
