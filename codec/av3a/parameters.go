package av3a

import (
	"github.com/ugparu/goav3a"
	"github.com/ugparu/goav3a/codec"
)

// CodecParameters describes an AV3A stream. It is built from a parsed frame
// header and implements goav3a.AudioCodecParameters.
type CodecParameters struct {
	codec.BaseParameters
	Header FrameHeader
}

func NewCodecParameters(hdr FrameHeader) *CodecParameters {
	par := &CodecParameters{
		BaseParameters: codec.BaseParameters{
			CodecType: goav3a.AV3A,
		},
		Header: hdr,
	}
	par.BRate = uint(hdr.TotalBitrate) //nolint:gosec // bitrate table values fit uint
	return par
}

func (cd *CodecParameters) SampleRate() uint64 {
	return uint64(cd.Header.SampleRate) //nolint:gosec // table values are positive
}

func (cd *CodecParameters) SampleFormat() goav3a.SampleFormat {
	if cd.Header.SampleFormat == 0 && cd.Header.Resolution == 24 {
		return goav3a.S24
	}
	return cd.Header.SampleFormat
}

// Channels returns the total channel count, objects included.
func (cd *CodecParameters) Channels() uint8 {
	return uint8(cd.Header.TotalChannels) //nolint:gosec // at most 24 channels plus 128 objects
}

func (cd *CodecParameters) ChannelLayout() goav3a.ChannelLayout {
	return cd.Header.ChannelLayout
}

func (cd *CodecParameters) ContentType() ContentType {
	return cd.Header.ContentType
}

func (cd *CodecParameters) Objects() uint16 {
	return cd.Header.Objects
}

func (cd *CodecParameters) AmbisonicOrder() uint8 {
	return cd.Header.AmbisonicOrder
}

func (cd *CodecParameters) Tag() string {
	return "av3a"
}

// Equal reports whether two parameter sets describe the same stream layout.
func (cd *CodecParameters) Equal(other *CodecParameters) bool {
	if cd == nil || other == nil {
		return cd == other
	}
	return cd.Header == other.Header
}
