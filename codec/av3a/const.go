// Package av3a implements parsing of AVS3 audio (Audio Vivid) frame headers
// and elementary-stream frames.
package av3a

const (
	// SyncWord is the 12-bit pattern opening every AV3A frame.
	SyncWord = 0xFFF
	// FrameHeaderSize is the number of bytes a caller must buffer before
	// parsing a frame header. No header layout consumes more than 56 bits,
	// 9 bytes cover every branch with margin.
	FrameHeaderSize = 9
	// SamplesPerFrame is the fixed per-channel sample count of an AV3A frame.
	SamplesPerFrame = 1024

	// codecIDGeneralHighRate is the only codec id this package decodes.
	codecIDGeneralHighRate = 2

	syncWordWidth = 12
)

// Coding profiles carried in the 3-bit profile field.
const (
	codingProfileChannel   = 0 // mono/stereo/multichannel beds
	codingProfileObject    = 1 // objects, optionally over a sound bed
	codingProfileAmbisonic = 2 // higher-order ambisonics
)

// Sound bed types of the object coding profile.
const (
	soundBedNone    = 0 // objects only
	soundBedChannel = 1 // multichannel bed plus objects
)

// ChannelConfig identifies one of the fixed channel configurations of the
// AV3A bitstream.
type ChannelConfig uint8

const (
	ChannelConfigMono ChannelConfig = iota
	ChannelConfigStereo
	ChannelConfigMC5P1
	ChannelConfigMC7P1
	ChannelConfigMC10P2
	ChannelConfigMC22P2
	ChannelConfigMC4P0
	ChannelConfigMC5P1P2
	ChannelConfigMC5P1P4
	ChannelConfigMC7P1P2
	ChannelConfigMC7P1P4
	ChannelConfigHOAOrder1
	ChannelConfigHOAOrder2
	ChannelConfigHOAOrder3
	// channelConfigUnknown bounds the valid configuration indices. It is
	// never a valid parse result.
	channelConfigUnknown
)

func (cfg ChannelConfig) String() string {
	switch cfg {
	case ChannelConfigMono:
		return "MONO"
	case ChannelConfigStereo:
		return "STEREO"
	case ChannelConfigMC5P1:
		return "MC_5_1_0"
	case ChannelConfigMC7P1:
		return "MC_7_1_0"
	case ChannelConfigMC10P2:
		return "MC_10_2"
	case ChannelConfigMC22P2:
		return "MC_22_2"
	case ChannelConfigMC4P0:
		return "MC_4_0"
	case ChannelConfigMC5P1P2:
		return "MC_5_1_2"
	case ChannelConfigMC5P1P4:
		return "MC_5_1_4"
	case ChannelConfigMC7P1P2:
		return "MC_7_1_2"
	case ChannelConfigMC7P1P4:
		return "MC_7_1_4"
	case ChannelConfigHOAOrder1:
		return "HOA_ORDER1"
	case ChannelConfigHOAOrder2:
		return "HOA_ORDER2"
	case ChannelConfigHOAOrder3:
		return "HOA_ORDER3"
	default:
		return "UNKNOWN"
	}
}

// ContentType classifies what a decoded frame carries. It determines which
// optional FrameHeader fields are populated.
type ContentType uint8

const (
	// ContentTypeChannel is fixed-speaker channel content.
	ContentTypeChannel ContentType = iota
	// ContentTypeObject is object-only content.
	ContentTypeObject
	// ContentTypeChannelObject is a multichannel sound bed plus objects.
	ContentTypeChannelObject
	// ContentTypeAmbisonic is higher-order ambisonic content.
	ContentTypeAmbisonic
)

func (ct ContentType) String() string {
	switch ct {
	case ContentTypeChannel:
		return "CHANNEL"
	case ContentTypeObject:
		return "OBJECT"
	case ContentTypeChannelObject:
		return "CHANNEL_OBJECT"
	case ContentTypeAmbisonic:
		return "AMBISONIC"
	default:
		return "?"
	}
}
