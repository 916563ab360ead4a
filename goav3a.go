package goav3a

import "time"

// CodecParameters defines the interface for codec configuration.
type CodecParameters interface {
	Type() CodecType      // Returns the codec type.
	Tag() string          // Returns the codec identifier string.
	StreamIndex() uint8   // Returns the index of the stream in a container.
	SetStreamIndex(uint8) // Sets the stream index value.
	Bitrate() uint        // Returns the codec's bitrate in bits per second.
	SetBitrate(uint)      // Sets the codec's target bitrate.
}

// AudioCodecParameters extends CodecParameters with audio-specific properties.
type AudioCodecParameters interface {
	CodecParameters             // Inherits all CodecParameters methods.
	SampleRate() uint64         // Returns the audio sampling frequency in Hz.
	SampleFormat() SampleFormat // Returns the format of audio samples.
	Channels() uint8            // Returns the number of audio channels.
}

// CodecParametersPair bundles the codec parameters detected in a stream.
type CodecParametersPair struct {
	URL string // The source URL of the stream.
	AudioCodecParameters
}

// Packet defines the interface for demuxed data containers.
type Packet interface {
	Clone(copyData bool) Packet // Creates a packet copy, optionally copying the underlying data.
	URL() string                // Returns the source URL of the packet.
	SetURL(string)              // Sets the source URL for the packet.
	StreamIndex() uint8         // Returns the stream index this packet belongs to.
	SetStreamIndex(uint8)       // Sets the stream index for this packet.
	Timestamp() time.Duration   // Returns the presentation timestamp.
	SetTimestamp(time.Duration) // Sets the presentation timestamp.
	StartTime() time.Time       // Returns the absolute start time.
	SetStartTime(time.Time)     // Sets the absolute start time.
	Duration() time.Duration    // Returns the duration of the packet content.
	SetDuration(time.Duration)  // Sets the duration of the packet content.
	Data() []byte               // Returns the raw packet data.
}

// AudioPacket extends Packet with audio-specific functionality.
type AudioPacket interface {
	Packet                                 // Inherits all Packet methods.
	CodecParameters() AudioCodecParameters // Returns the associated audio codec configuration.
}

// Demuxer defines the interface for extracting packets from containers or
// elementary streams.
type Demuxer interface {
	Demux() (CodecParametersPair, error) // Initializes and returns detected stream parameters.
	ReadPacket() (pkt Packet, err error) // Reads the next packet from the stream.
	Close()                              // Releases resources used by the demuxer.
}
