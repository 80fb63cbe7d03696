package media

import "fmt"

// PacketBufferType tags which storage variant a Packet carries.
type PacketBufferType int32

const (
	// BufferTypeNormal indicates the packet owns an in-memory buffer.
	BufferTypeNormal PacketBufferType = iota
	// BufferTypeNativeHandle indicates the packet references an opaque
	// native handle (for example a hardware surface or shared-memory id).
	BufferTypeNativeHandle
)

func (t PacketBufferType) String() string {
	switch t {
	case BufferTypeNormal:
		return "normal"
	case BufferTypeNativeHandle:
		return "native-handle"
	default:
		return "unknown"
	}
}

// Packet is the unit of encoded or raw media exchanged across pipeline
// boundaries.
//
// A packet carries exactly one of two storage variants: an owned in-memory
// buffer, or an opaque native handle. Cloning a native-handle packet copies
// the handle reference, never buffer bytes. The media type tag selects
// which per-sample metadata variant (audio or video) is active.
type Packet struct {
	size         int
	data         *Buffer
	nativeHandle interface{}
	bufferType   PacketBufferType
	mediaType    MediaType
	eos          bool
	audioInfo    *AudioSampleInfo
	videoInfo    *VideoSampleInfo
}

// NewPacket creates a buffer-backed packet of the given size.
func NewPacket(size int) (*Packet, error) {
	buf, err := NewBuffer(size)
	if err != nil {
		return nil, err
	}
	return &Packet{
		size:       size,
		data:       buf,
		bufferType: BufferTypeNormal,
		mediaType:  MediaTypeUnknown,
	}, nil
}

// NewPacketWithHandle creates a packet referencing an opaque native handle.
// The packet never inspects the handle; it only carries the reference.
func NewPacketWithHandle(handle interface{}) *Packet {
	return &Packet{
		nativeHandle: handle,
		bufferType:   BufferTypeNativeHandle,
		mediaType:    MediaTypeUnknown,
	}
}

// BufferType returns the storage variant tag.
func (p *Packet) BufferType() PacketBufferType {
	return p.bufferType
}

// MediaType returns the media type tag.
func (p *Packet) MediaType() MediaType {
	return p.mediaType
}

// SetMediaType switches the active sample-info variant. Changing the type
// resets the previously active variant.
func (p *Packet) SetMediaType(t MediaType) {
	if p.mediaType == t {
		return
	}
	p.mediaType = t
	p.audioInfo = nil
	p.videoInfo = nil
	switch t {
	case MediaTypeAudio:
		p.audioInfo = &AudioSampleInfo{}
	case MediaTypeVideo:
		p.videoInfo = &VideoSampleInfo{}
	}
}

// AudioInfo returns the audio sample info, or nil when the packet is not
// tagged as audio.
func (p *Packet) AudioInfo() *AudioSampleInfo {
	return p.audioInfo
}

// VideoInfo returns the video sample info, or nil when the packet is not
// tagged as video.
func (p *Packet) VideoInfo() *VideoSampleInfo {
	return p.videoInfo
}

// Size returns the payload size in bytes. For native-handle packets this is
// whatever was recorded by the producer, typically zero.
func (p *Packet) Size() int {
	return p.size
}

// SetEOS marks or clears the end-of-stream flag.
func (p *Packet) SetEOS(eos bool) {
	p.eos = eos
}

// IsEOS reports whether this packet marks end of stream.
func (p *Packet) IsEOS() bool {
	return p.eos
}

// Data returns the valid bytes of a buffer-backed packet, or nil for a
// native-handle packet.
func (p *Packet) Data() []byte {
	if p.bufferType != BufferTypeNormal || p.data == nil {
		return nil
	}
	return p.data.RangeData()
}

// Buffer returns the underlying buffer of a buffer-backed packet, or nil
// for a native-handle packet.
func (p *Packet) Buffer() *Buffer {
	if p.bufferType != BufferTypeNormal {
		return nil
	}
	return p.data
}

// NativeHandle returns the opaque handle of a native-handle packet, or nil
// for a buffer-backed packet.
func (p *Packet) NativeHandle() interface{} {
	if p.bufferType != BufferTypeNativeHandle {
		return nil
	}
	return p.nativeHandle
}

// SetData replaces the packet's payload with a copy-free wrap of data.
// Only valid on buffer-backed packets.
func (p *Packet) SetData(data []byte) error {
	if p.bufferType != BufferTypeNormal {
		return fmt.Errorf("set data on %v packet: %w", p.bufferType, ErrNotBufferBacked)
	}
	p.data = NewBufferWithData(data)
	p.size = len(data)
	return nil
}

// SetSize reallocates the packet's buffer to the given size. Only valid on
// buffer-backed packets.
func (p *Packet) SetSize(size int) error {
	if p.bufferType != BufferTypeNormal {
		return fmt.Errorf("set size on %v packet: %w", p.bufferType, ErrNotBufferBacked)
	}
	buf, err := NewBuffer(size)
	if err != nil {
		return err
	}
	p.data = buf
	p.size = size
	return nil
}

// Clone returns a copy of the packet. Buffer-backed packets share the
// underlying buffer with the clone; native-handle packets copy the handle
// reference, never buffer bytes. Sample info is copied by value.
func (p *Packet) Clone() *Packet {
	clone := &Packet{
		size:       p.size,
		bufferType: p.bufferType,
		mediaType:  p.mediaType,
		eos:        p.eos,
	}
	if p.bufferType == BufferTypeNormal {
		clone.data = p.data
	} else {
		clone.nativeHandle = p.nativeHandle
	}
	if p.audioInfo != nil {
		info := *p.audioInfo
		clone.audioInfo = &info
	}
	if p.videoInfo != nil {
		info := *p.videoInfo
		clone.videoInfo = &info
	}
	return clone
}
