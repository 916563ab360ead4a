package av3a

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/goav3a"
)

// headerBuilder assembles bit-exact frame headers for tests, MSB first.
type headerBuilder struct {
	buf  []byte
	bits int
}

func (b *headerBuilder) put(v uint, width int) *headerBuilder {
	for i := width - 1; i >= 0; i-- {
		if b.bits%8 == 0 {
			b.buf = append(b.buf, 0)
		}
		if v>>uint(i)&1 == 1 {
			b.buf[b.bits/8] |= 1 << (7 - uint(b.bits%8))
		}
		b.bits++
	}
	return b
}

// bytes pads the assembled header to the 9 byte window decode expects.
func (b *headerBuilder) bytes() []byte {
	out := make([]byte, FrameHeaderSize)
	copy(out, b.buf)
	return out
}

// prefix writes the fields shared by every profile up to and including the
// first CRC byte.
func prefix(profile, samplingRateIndex uint) *headerBuilder {
	b := &headerBuilder{}
	return b.
		put(SyncWord, 12).
		put(codecIDGeneralHighRate, 4).
		put(0, 1). // ancillary data flag
		put(0, 3). // nn type
		put(profile, 3).
		put(samplingRateIndex, 4).
		put(0xAA, 8) // crc1, not validated
}

func TestParseFrameHeader_ChannelContent(t *testing.T) {
	t.Parallel()

	hdr, err := ParseFrameHeader(prefix(codingProfileChannel, 2).
		put(uint(ChannelConfigStereo), 7).
		put(1, 2). // 16-bit resolution
		put(0, 4). // bitrate index
		put(0x55, 8).
		bytes())
	require.NoError(t, err)

	require.Equal(t, ContentTypeChannel, hdr.ContentType)
	require.Equal(t, 48000, hdr.SampleRate)
	require.Equal(t, uint8(2), hdr.SamplingRateIndex)
	require.Equal(t, ChannelConfigStereo, hdr.ChannelConfig)
	require.Equal(t, uint16(2), hdr.Channels)
	require.Equal(t, uint16(0), hdr.Objects)
	require.Equal(t, uint16(2), hdr.TotalChannels)
	require.Equal(t, goav3a.ChStereo, hdr.ChannelLayout)
	require.Equal(t, uint8(16), hdr.Resolution)
	require.Equal(t, goav3a.S16, hdr.SampleFormat)
	require.Equal(t, int64(24000), hdr.TotalBitrate)
}

func TestParseFrameHeader_ChannelConfigurations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		config   ChannelConfig
		channels uint16
		layout   goav3a.ChannelLayout
		bitrate  int64 // table entry at index 0
	}{
		{ChannelConfigMono, 1, goav3a.ChMono, 16000},
		{ChannelConfigStereo, 2, goav3a.ChStereo, 24000},
		{ChannelConfigMC4P0, 4, 0, 48000},
		{ChannelConfigMC5P1, 6, goav3a.Ch5Point1, 192000},
		{ChannelConfigMC7P1, 8, goav3a.Ch7Point1, 192000},
		{ChannelConfigMC5P1P2, 8, 0, 152000},
		{ChannelConfigMC5P1P4, 10, 0, 176000},
		{ChannelConfigMC7P1P2, 10, 0, 216000},
		{ChannelConfigMC7P1P4, 12, 0, 240000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.config.String(), func(t *testing.T) {
			t.Parallel()
			hdr, err := ParseFrameHeader(prefix(codingProfileChannel, 0).
				put(uint(tt.config), 7).
				put(2, 2). // 24-bit resolution
				put(0, 4).
				put(0, 8).
				bytes())
			require.NoError(t, err)
			require.Equal(t, tt.channels, hdr.Channels)
			require.Equal(t, tt.channels, hdr.TotalChannels)
			require.Equal(t, tt.layout, hdr.ChannelLayout)
			require.Equal(t, tt.bitrate, hdr.TotalBitrate)
			require.Equal(t, uint8(24), hdr.Resolution)
			// the 24-bit class carries no sample format tag
			require.Equal(t, goav3a.SampleFormat(0), hdr.SampleFormat)
		})
	}
}

func TestParseFrameHeader_ObjectContent(t *testing.T) {
	t.Parallel()

	hdr, err := ParseFrameHeader(prefix(codingProfileObject, 2).
		put(soundBedNone, 2).
		put(3, 7). // 4 objects, stored zero based
		put(2, 4). // 44000 bps per object
		put(1, 2).
		put(0x55, 8).
		bytes())
	require.NoError(t, err)

	require.Equal(t, ContentTypeObject, hdr.ContentType)
	require.Equal(t, uint16(0), hdr.Channels)
	require.Equal(t, uint16(4), hdr.Objects)
	require.Equal(t, uint16(4), hdr.TotalChannels)
	require.Equal(t, goav3a.ChannelLayout(0), hdr.ChannelLayout)
	require.Equal(t, int64(176000), hdr.TotalBitrate)
}

func TestParseFrameHeader_ObjectCountNeverZero(t *testing.T) {
	t.Parallel()

	for _, field := range []uint{0, 1, 63, 127} {
		hdr, err := ParseFrameHeader(prefix(codingProfileObject, 0).
			put(soundBedNone, 2).
			put(field, 7).
			put(0, 4).
			put(0, 2).
			put(0, 8).
			bytes())
		require.NoError(t, err)
		require.Equal(t, uint16(field)+1, hdr.Objects)
		require.Equal(t, int64(16000)*int64(field+1), hdr.TotalBitrate)
	}
}

func TestParseFrameHeader_ChannelObjectContent(t *testing.T) {
	t.Parallel()

	hdr, err := ParseFrameHeader(prefix(codingProfileObject, 1).
		put(soundBedChannel, 2).
		put(uint(ChannelConfigMC5P1), 7).
		put(0, 4). // bed bitrate 192000
		put(9, 7). // 10 objects
		put(0, 4). // 16000 bps per object
		put(1, 2).
		put(0, 8).
		bytes())
	require.NoError(t, err)

	require.Equal(t, ContentTypeChannelObject, hdr.ContentType)
	require.Equal(t, 96000, hdr.SampleRate)
	require.Equal(t, ChannelConfigMC5P1, hdr.ChannelConfig)
	require.Equal(t, uint16(6), hdr.Channels)
	require.Equal(t, uint16(10), hdr.Objects)
	require.Equal(t, uint16(16), hdr.TotalChannels)
	require.Equal(t, goav3a.Ch5Point1, hdr.ChannelLayout)
	require.Equal(t, int64(192000+10*16000), hdr.TotalBitrate)
}

func TestParseFrameHeader_ChannelObjectBedWithoutRow(t *testing.T) {
	t.Parallel()

	// a mono bed has a bitrate table but no row in the multichannel
	// configuration table, its bed channel count resolves to zero
	hdr, err := ParseFrameHeader(prefix(codingProfileObject, 0).
		put(soundBedChannel, 2).
		put(uint(ChannelConfigMono), 7).
		put(0, 4).
		put(4, 7). // 5 objects
		put(1, 4). // 32000 bps per object
		put(1, 2).
		put(0, 8).
		bytes())
	require.NoError(t, err)
	require.Equal(t, uint16(0), hdr.Channels)
	require.Equal(t, uint16(5), hdr.Objects)
	require.Equal(t, uint16(5), hdr.TotalChannels)
	require.Equal(t, int64(16000+5*32000), hdr.TotalBitrate)
}

func TestParseFrameHeader_AmbisonicContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		orderField uint
		order      uint8
		channels   uint16
		bitrate    int64 // table entry at index 1
	}{
		{0, 1, 4, 96000},
		{1, 2, 9, 256000},
		{2, 3, 16, 320000},
	}

	for _, tt := range tests {
		hdr, err := ParseFrameHeader(prefix(codingProfileAmbisonic, 2).
			put(tt.orderField, 4).
			put(1, 2).
			put(1, 4).
			put(0, 8).
			bytes())
		require.NoError(t, err)
		require.Equal(t, ContentTypeAmbisonic, hdr.ContentType)
		require.Equal(t, tt.order, hdr.AmbisonicOrder)
		require.Equal(t, tt.channels, hdr.Channels)
		require.Equal(t, uint16(0), hdr.Objects)
		require.Equal(t, tt.channels, hdr.TotalChannels)
		require.Equal(t, tt.bitrate, hdr.TotalBitrate)
	}
}

func TestParseFrameHeader_SamplingRates(t *testing.T) {
	t.Parallel()

	rates := []int{192000, 96000, 48000, 44100, 32000, 24000, 22050, 16000, 8000}
	for idx, rate := range rates {
		hdr, err := ParseFrameHeader(prefix(codingProfileChannel, uint(idx)).
			put(uint(ChannelConfigMono), 7).
			put(1, 2).
			put(0, 4).
			put(0, 8).
			bytes())
		require.NoError(t, err)
		require.Equal(t, rate, hdr.SampleRate)
		require.Equal(t, uint8(idx), hdr.SamplingRateIndex)
	}
}

func TestParseFrameHeader_Failures(t *testing.T) {
	t.Parallel()

	valid := func() *headerBuilder {
		return prefix(codingProfileChannel, 2).
			put(uint(ChannelConfigStereo), 7).
			put(1, 2).
			put(0, 4).
			put(0, 8)
	}

	tests := []struct {
		name  string
		frame []byte
		want  error
	}{
		{
			name: "corrupted_sync_word",
			frame: (&headerBuilder{}).
				put(0xFFE, 12).put(codecIDGeneralHighRate, 4).put(0, 1).
				put(0, 3).put(codingProfileChannel, 3).put(2, 4).put(0, 8).
				put(uint(ChannelConfigStereo), 7).put(1, 2).put(0, 4).put(0, 8).
				bytes(),
			want: ErrSyncMismatch,
		},
		{
			name: "unsupported_codec_id",
			frame: (&headerBuilder{}).
				put(SyncWord, 12).put(3, 4).put(0, 1).
				put(0, 3).put(codingProfileChannel, 3).put(2, 4).put(0, 8).
				put(uint(ChannelConfigStereo), 7).put(1, 2).put(0, 4).put(0, 8).
				bytes(),
			want: ErrUnsupportedCodec,
		},
		{
			name: "ancillary_bit_set",
			frame: (&headerBuilder{}).
				put(SyncWord, 12).put(codecIDGeneralHighRate, 4).put(1, 1).
				put(0, 3).put(codingProfileChannel, 3).put(2, 4).put(0, 8).
				put(uint(ChannelConfigStereo), 7).put(1, 2).put(0, 4).put(0, 8).
				bytes(),
			want: ErrReservedBitViolation,
		},
		{
			name:  "sampling_rate_index_out_of_range",
			frame: prefix(codingProfileChannel, 9).put(1, 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidSamplingRateIndex,
		},
		{
			name:  "sampling_rate_index_max",
			frame: prefix(codingProfileChannel, 15).put(1, 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidSamplingRateIndex,
		},
		{
			name:  "coding_profile_reserved",
			frame: prefix(3, 0).put(1, 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidCodingProfile,
		},
		{
			name:  "coding_profile_max",
			frame: prefix(7, 0).put(1, 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidCodingProfile,
		},
		{
			name:  "channel_config_sentinel",
			frame: prefix(codingProfileChannel, 0).put(14, 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidChannelConfig,
		},
		{
			name:  "channel_config_out_of_range",
			frame: prefix(codingProfileChannel, 0).put(127, 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidChannelConfig,
		},
		{
			name:  "resolution_index_reserved",
			frame: prefix(codingProfileChannel, 2).put(uint(ChannelConfigStereo), 7).put(3, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidResolutionIndex,
		},
		{
			name: "resolution_index_reserved_object_profile",
			frame: prefix(codingProfileObject, 2).put(soundBedNone, 2).
				put(3, 7).put(2, 4).put(3, 2).put(0, 8).bytes(),
			want: ErrInvalidResolutionIndex,
		},
		{
			name: "sound_bed_type_reserved",
			frame: prefix(codingProfileObject, 0).put(2, 2).
				put(3, 7).put(2, 4).put(1, 2).put(0, 8).bytes(),
			want: ErrInvalidSoundBedType,
		},
		{
			name: "sound_bed_type_max",
			frame: prefix(codingProfileObject, 0).put(3, 2).
				put(3, 7).put(2, 4).put(1, 2).put(0, 8).bytes(),
			want: ErrInvalidSoundBedType,
		},
		{
			name:  "ambisonic_order_too_high",
			frame: prefix(codingProfileAmbisonic, 0).put(3, 4).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidAmbisonicOrder,
		},
		{
			name:  "ambisonic_order_field_max",
			frame: prefix(codingProfileAmbisonic, 0).put(15, 4).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrInvalidAmbisonicOrder,
		},
		{
			name:  "channel_10_2_has_no_bitrate_table",
			frame: prefix(codingProfileChannel, 0).put(uint(ChannelConfigMC10P2), 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrMissingBitrateTable,
		},
		{
			name:  "channel_22_2_has_no_bitrate_table",
			frame: prefix(codingProfileChannel, 0).put(uint(ChannelConfigMC22P2), 7).put(1, 2).put(0, 4).put(0, 8).bytes(),
			want:  ErrMissingBitrateTable,
		},
		{
			name: "bed_22_2_has_no_bitrate_table",
			frame: prefix(codingProfileObject, 0).put(soundBedChannel, 2).
				put(uint(ChannelConfigMC22P2), 7).put(0, 4).put(0, 7).put(0, 4).
				put(1, 2).put(0, 8).bytes(),
			want: ErrMissingBitrateTable,
		},
		{
			name:  "short_buffer",
			frame: valid().bytes()[:8],
			want:  ErrBufferExhausted,
		},
		{
			name:  "empty_buffer",
			frame: nil,
			want:  ErrBufferExhausted,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hdr, err := ParseFrameHeader(tt.frame)
			require.ErrorIs(t, err, tt.want)
			// failures never leave partial state behind
			require.Equal(t, FrameHeader{}, hdr)
		})
	}
}

func TestParseFrameHeader_Deterministic(t *testing.T) {
	t.Parallel()

	frame := prefix(codingProfileObject, 3).
		put(soundBedChannel, 2).
		put(uint(ChannelConfigMC7P1P4), 7).
		put(1, 4).
		put(15, 7).
		put(3, 4).
		put(2, 2).
		put(0x7E, 8).
		bytes()

	orig := make([]byte, len(frame))
	copy(orig, frame)

	first, err := ParseFrameHeader(frame)
	require.NoError(t, err)
	second, err := ParseFrameHeader(frame)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, orig, frame)
	require.Equal(t, int64(608000+16*56000), first.TotalBitrate)
	require.Equal(t, uint16(12+16), first.TotalChannels)
}

func TestFrameHeader_FrameSize(t *testing.T) {
	t.Parallel()

	hdr, err := ParseFrameHeader(prefix(codingProfileChannel, 2).
		put(uint(ChannelConfigStereo), 7).
		put(1, 2).
		put(0, 4). // 24000 bps at 48 kHz
		put(0, 8).
		bytes())
	require.NoError(t, err)
	require.Equal(t, 64, hdr.FrameSize())
	require.Equal(t, time.Duration(21333333), hdr.Duration())

	require.Equal(t, 0, FrameHeader{}.FrameSize())
	require.Equal(t, time.Duration(0), FrameHeader{}.Duration())
}
