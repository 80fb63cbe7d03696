package media

// MediaType identifies which kind of sample data a packet carries.
type MediaType int32

const (
	// MediaTypeUnknown indicates the media type has not been set.
	MediaTypeUnknown MediaType = iota
	// MediaTypeAudio indicates audio sample data.
	MediaTypeAudio
	// MediaTypeVideo indicates video sample data.
	MediaTypeVideo
)

func (t MediaType) String() string {
	switch t {
	case MediaTypeAudio:
		return "audio"
	case MediaTypeVideo:
		return "video"
	default:
		return "unknown"
	}
}

// CodecID identifies a codec independent of any concrete implementation.
type CodecID int32

const (
	// CodecUnknown indicates an unidentified codec.
	CodecUnknown CodecID = iota
	// CodecH264 is AVC/H.264 video.
	CodecH264
	// CodecH265 is HEVC/H.265 video.
	CodecH265
	// CodecVP8 is VP8 video.
	CodecVP8
	// CodecVP9 is VP9 video.
	CodecVP9
	// CodecAV1 is AV1 video.
	CodecAV1
	// CodecAAC is AAC audio.
	CodecAAC
	// CodecOpus is Opus audio.
	CodecOpus
	// CodecPCM is uncompressed PCM audio.
	CodecPCM
)

func (c CodecID) String() string {
	switch c {
	case CodecH264:
		return "H264"
	case CodecH265:
		return "H265"
	case CodecVP8:
		return "VP8"
	case CodecVP9:
		return "VP9"
	case CodecAV1:
		return "AV1"
	case CodecAAC:
		return "AAC"
	case CodecOpus:
		return "Opus"
	case CodecPCM:
		return "PCM"
	default:
		return "Unknown"
	}
}

// MimeType returns the MIME type for this codec, or the empty string for
// CodecUnknown.
func (c CodecID) MimeType() string {
	switch c {
	case CodecH264:
		return "video/avc"
	case CodecH265:
		return "video/hevc"
	case CodecVP8:
		return "video/x-vnd.on2.vp8"
	case CodecVP9:
		return "video/x-vnd.on2.vp9"
	case CodecAV1:
		return "video/av01"
	case CodecAAC:
		return "audio/mp4a-latm"
	case CodecOpus:
		return "audio/opus"
	case CodecPCM:
		return "audio/raw"
	default:
		return ""
	}
}

// IsAudio reports whether the codec carries audio data.
func (c CodecID) IsAudio() bool {
	switch c {
	case CodecAAC, CodecOpus, CodecPCM:
		return true
	default:
		return false
	}
}

// AudioSampleInfo describes one audio sample's framing within a packet.
type AudioSampleInfo struct {
	Codec             CodecID
	SampleRateHz      int32
	ChannelCount      int32
	SamplesPerChannel int32
	PtsUS             int64
}

// VideoSampleInfo describes one video sample's framing within a packet.
type VideoSampleInfo struct {
	Codec    CodecID
	Width    int32
	Height   int32
	Stride   int32
	KeyFrame bool
	PtsUS    int64
}
