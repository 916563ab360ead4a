package av3a

import (
	"fmt"
	"time"

	"github.com/ugparu/goav3a"
	"github.com/ugparu/goav3a/utils/bits"
)

// FrameHeader is the decoded description of one AV3A frame. ContentType
// determines which optional fields carry a value; the rest stay zero.
type FrameHeader struct {
	CodecID           uint8
	NNType            uint8
	SamplingRateIndex uint8
	SampleRate        int
	ContentType       ContentType
	ChannelConfig     ChannelConfig        // channel and mixed content only
	Channels          uint16               // bed/direct channels, zero for object-only content
	Objects           uint16               // object and mixed content only, always >= 1 there
	TotalChannels     uint16               // Channels + Objects
	ChannelLayout     goav3a.ChannelLayout // zero when the configuration has no named layout
	AmbisonicOrder    uint8                // ambisonic content only
	ResolutionIndex   uint8
	Resolution        uint8               // bits per sample: 8, 16 or 24
	SampleFormat      goav3a.SampleFormat // unset for the 24-bit resolution class
	TotalBitrate      int64
}

// ParseFrameHeader decodes the frame header found at the start of frame.
// The caller must supply at least FrameHeaderSize bytes; with fewer bytes
// the parse fails with ErrBufferExhausted and the caller should fetch more
// input rather than treat the frame as corrupt. On any failure the returned
// header is zero valued. The parse is pure and never retains frame.
func ParseFrameHeader(frame []byte) (hdr FrameHeader, err error) {
	if len(frame) < FrameHeaderSize {
		err = fmt.Errorf("%w: need %d bytes, got %d", ErrBufferExhausted, FrameHeaderSize, len(frame))
		return
	}

	var (
		cfg        ChannelConfig
		channels   uint16
		objects    uint16
		hoaOrder   uint8
		layout     goav3a.ChannelLayout
		bitrate    int64
		sampleFmt  goav3a.SampleFormat
		resolution uint8
		v          uint
	)

	r := bits.NewReader(frame[:FrameHeaderSize])

	if v, err = r.ReadBits(syncWordWidth); err != nil {
		return
	}
	if v != SyncWord {
		err = fmt.Errorf("%w: %#03x", ErrSyncMismatch, v)
		return
	}

	if v, err = r.ReadBits(4); err != nil {
		return
	}
	if v != codecIDGeneralHighRate {
		err = fmt.Errorf("%w: %d", ErrUnsupportedCodec, v)
		return
	}
	codecID := uint8(v)

	if v, err = r.ReadBits(1); err != nil {
		return
	}
	if v != 0 {
		err = ErrReservedBitViolation
		return
	}

	// neural network postfilter type, passed through unvalidated
	if v, err = r.ReadBits(3); err != nil {
		return
	}
	nnType := uint8(v)

	if v, err = r.ReadBits(3); err != nil {
		return
	}
	profile := uint8(v)

	if v, err = r.ReadBits(4); err != nil {
		return
	}
	if v >= uint(len(samplingRateTable)) {
		err = fmt.Errorf("%w: %d", ErrInvalidSamplingRateIndex, v)
		return
	}
	samplingRateIndex := uint8(v)

	// first CRC byte, checksum verification is out of scope
	if err = r.SkipBits(8); err != nil {
		return
	}

	var contentType ContentType
	switch profile {
	case codingProfileChannel:
		contentType = ContentTypeChannel

		if v, err = r.ReadBits(7); err != nil {
			return
		}
		if v >= uint(channelConfigUnknown) {
			err = fmt.Errorf("%w: index %d", ErrInvalidChannelConfig, v)
			return
		}
		cfg = ChannelConfig(v)
		channels, layout = channelConfigInfo(cfg)

	case codingProfileObject:
		var bedType uint
		if bedType, err = r.ReadBits(2); err != nil {
			return
		}

		switch bedType {
		case soundBedNone:
			contentType = ContentTypeObject

			// objects are stored zero based
			if v, err = r.ReadBits(7); err != nil {
				return
			}
			objects = uint16(v) + 1

			if v, err = r.ReadBits(4); err != nil {
				return
			}
			bitrate = bitrateTableMono[v] * int64(objects)

		case soundBedChannel:
			contentType = ContentTypeChannelObject

			if v, err = r.ReadBits(7); err != nil {
				return
			}
			if v >= uint(channelConfigUnknown) {
				err = fmt.Errorf("%w: bed index %d", ErrInvalidChannelConfig, v)
				return
			}
			cfg = ChannelConfig(v)

			var bedBitrateIndex uint
			if bedBitrateIndex, err = r.ReadBits(4); err != nil {
				return
			}

			if v, err = r.ReadBits(7); err != nil {
				return
			}
			objects = uint16(v) + 1

			if v, err = r.ReadBits(4); err != nil {
				return
			}

			bedTable := bitrateTables[cfg]
			if bedTable == nil {
				err = fmt.Errorf("%w: %v", ErrMissingBitrateTable, cfg)
				return
			}

			channels = bedChannels(cfg)
			_, layout = channelConfigInfo(cfg)
			bitrate = bedTable[bedBitrateIndex] + bitrateTableMono[v]*int64(objects)

		default:
			err = fmt.Errorf("%w: %d", ErrInvalidSoundBedType, bedType)
			return
		}

	case codingProfileAmbisonic:
		contentType = ContentTypeAmbisonic

		if v, err = r.ReadBits(4); err != nil {
			return
		}
		hoaOrder = uint8(v) + 1

		switch hoaOrder {
		case 1:
			channels = 4
			cfg = ChannelConfigHOAOrder1
		case 2:
			channels = 9
			cfg = ChannelConfigHOAOrder2
		case 3:
			channels = 16
			cfg = ChannelConfigHOAOrder3
		default:
			err = fmt.Errorf("%w: %d", ErrInvalidAmbisonicOrder, hoaOrder)
			return
		}

	default:
		err = fmt.Errorf("%w: %d", ErrInvalidCodingProfile, profile)
		return
	}

	if v, err = r.ReadBits(2); err != nil {
		return
	}
	resolutionIndex := uint8(v)
	switch resolutionIndex {
	case 0:
		sampleFmt = goav3a.U8
		resolution = 8
	case 1:
		sampleFmt = goav3a.S16
		resolution = 16
	case 2:
		// 24-bit class carries no sample format tag
		resolution = 24
	default:
		err = fmt.Errorf("%w: %d", ErrInvalidResolutionIndex, resolutionIndex)
		return
	}

	// the object profile computes its bitrate from the per-object and bed
	// fields above and carries no total bitrate index at all
	if profile != codingProfileObject {
		if v, err = r.ReadBits(4); err != nil {
			return
		}
		table := bitrateTables[cfg]
		if table == nil {
			err = fmt.Errorf("%w: %v", ErrMissingBitrateTable, cfg)
			return
		}
		bitrate = table[v]
	}

	// second CRC byte, unvalidated
	if err = r.SkipBits(8); err != nil {
		return
	}

	hdr.CodecID = codecID
	hdr.NNType = nnType
	hdr.SamplingRateIndex = samplingRateIndex
	hdr.SampleRate = samplingRateTable[samplingRateIndex]
	hdr.ContentType = contentType
	hdr.ResolutionIndex = resolutionIndex
	hdr.Resolution = resolution
	hdr.SampleFormat = sampleFmt
	hdr.TotalBitrate = bitrate

	switch contentType {
	case ContentTypeChannel:
		hdr.ChannelConfig = cfg
		hdr.Channels = channels
		hdr.TotalChannels = channels
		hdr.ChannelLayout = layout
	case ContentTypeObject:
		hdr.Objects = objects
		hdr.TotalChannels = objects
	case ContentTypeChannelObject:
		hdr.ChannelConfig = cfg
		hdr.Channels = channels
		hdr.Objects = objects
		hdr.TotalChannels = channels + objects
		hdr.ChannelLayout = layout
	case ContentTypeAmbisonic:
		hdr.AmbisonicOrder = hoaOrder
		hdr.Channels = channels
		hdr.TotalChannels = channels
	}

	return hdr, nil
}

// FrameSize returns the total byte size of the frame the header describes,
// derived from the constant bitrate and the fixed per-channel sample count.
func (hdr FrameHeader) FrameSize() int {
	if hdr.SampleRate == 0 {
		return 0
	}
	return int(hdr.TotalBitrate * SamplesPerFrame / int64(hdr.SampleRate) / 8) //nolint:mnd
}

// Duration returns the play time of one frame.
func (hdr FrameHeader) Duration() time.Duration {
	if hdr.SampleRate == 0 {
		return 0
	}
	return time.Duration(SamplesPerFrame) * time.Second / time.Duration(hdr.SampleRate)
}

func (hdr FrameHeader) String() string {
	return fmt.Sprintf("AV3A_HEADER type=%v rate=%d ch=%d obj=%d brate=%d",
		hdr.ContentType, hdr.SampleRate, hdr.Channels, hdr.Objects, hdr.TotalBitrate)
}
