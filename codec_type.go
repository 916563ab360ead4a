package goav3a

// CodecType represents the type of a codec.
type CodecType uint32

// avCodecTypeMagic is a magic number used to create unique codec types.
const avCodecTypeMagic = 233333

// makeAudioCodecType creates an audio CodecType based on the provided base.
func makeAudioCodecType(base uint32) (c CodecType) {
	c = CodecType(base)<<codecTypeOtherBits | CodecType(codecTypeAudioBit)
	return
}

// variables representing specific codec types.
var (
	AV3A = makeAudioCodecType(avCodecTypeMagic + 1) //nolint:mnd
)

// Bitwise flags for codec types.
const (
	codecTypeAudioBit  = 0x1
	codecTypeOtherBits = 1
)

// String returns the human-readable string representation of a CodecType.
func (ct CodecType) String() string {
	if ct == AV3A {
		return "AV3A"
	}
	return "UNKNOWN"
}

// IsAudio returns true if the CodecType represents an audio codec.
func (ct CodecType) IsAudio() bool {
	return ct&codecTypeAudioBit != 0
}
