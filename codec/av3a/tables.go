package av3a

import "github.com/ugparu/goav3a"

// samplingRateTable maps the 4-bit sampling rate index to Hz. The index
// must be below len(samplingRateTable); higher values are invalid input.
var samplingRateTable = [...]int{
	192000, 96000, 48000, 44100, 32000, 24000, 22050, 16000, 8000,
}

const bitrateTableSize = 16

// Bitrate tables in bits per second, indexed by the 4-bit bitrate index of
// the header. Trailing zero entries are unused placeholders and are never
// selected by valid input.
var (
	bitrateTableMono = [bitrateTableSize]int64{
		16000, 32000, 44000, 56000, 64000, 72000, 80000, 96000, 128000, 144000, 164000, 192000, 0, 0, 0, 0,
	}

	bitrateTableStereo = [bitrateTableSize]int64{
		24000, 32000, 48000, 64000, 80000, 96000, 128000, 144000, 192000, 256000, 320000, 0, 0, 0, 0, 0,
	}

	bitrateTableMC5P1 = [bitrateTableSize]int64{
		192000, 256000, 320000, 384000, 448000, 512000, 640000, 720000, 144000, 96000, 128000, 160000, 0, 0, 0, 0,
	}

	bitrateTableMC7P1 = [bitrateTableSize]int64{
		192000, 480000, 256000, 384000, 576000, 640000, 128000, 160000, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableMC4P0 = [bitrateTableSize]int64{
		48000, 96000, 128000, 192000, 256000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableMC5P1P2 = [bitrateTableSize]int64{
		152000, 320000, 480000, 576000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableMC5P1P4 = [bitrateTableSize]int64{
		176000, 384000, 576000, 704000, 256000, 448000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableMC7P1P2 = [bitrateTableSize]int64{
		216000, 480000, 576000, 384000, 768000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableMC7P1P4 = [bitrateTableSize]int64{
		240000, 608000, 384000, 512000, 832000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableFOA = [bitrateTableSize]int64{
		48000, 96000, 128000, 192000, 256000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableHOA2 = [bitrateTableSize]int64{
		192000, 256000, 320000, 384000, 480000, 512000, 640000, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bitrateTableHOA3 = [bitrateTableSize]int64{
		256000, 320000, 384000, 512000, 640000, 896000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// bitrateTables indexes the bitrate table of each channel configuration.
// MC_10_2 and MC_22_2 carry no table; a bitrate lookup against them is a
// decode failure.
var bitrateTables = [channelConfigUnknown]*[bitrateTableSize]int64{
	ChannelConfigMono:      &bitrateTableMono,
	ChannelConfigStereo:    &bitrateTableStereo,
	ChannelConfigMC5P1:     &bitrateTableMC5P1,
	ChannelConfigMC7P1:     &bitrateTableMC7P1,
	ChannelConfigMC10P2:    nil,
	ChannelConfigMC22P2:    nil,
	ChannelConfigMC4P0:     &bitrateTableMC4P0,
	ChannelConfigMC5P1P2:   &bitrateTableMC5P1P2,
	ChannelConfigMC5P1P4:   &bitrateTableMC5P1P4,
	ChannelConfigMC7P1P2:   &bitrateTableMC7P1P2,
	ChannelConfigMC7P1P4:   &bitrateTableMC7P1P4,
	ChannelConfigHOAOrder1: &bitrateTableFOA,
	ChannelConfigHOAOrder2: &bitrateTableHOA2,
	ChannelConfigHOAOrder3: &bitrateTableHOA3,
}

type mcChannelConfig struct {
	name     string
	config   ChannelConfig
	channels uint16
}

// mcChannelConfigTable maps the sound bed configurations of mixed content to
// their channel counts. Looked up with a linear scan, first match wins;
// configurations without a row (mono and the HOA orders) resolve to zero bed
// channels.
var mcChannelConfigTable = [...]mcChannelConfig{
	{"STEREO", ChannelConfigStereo, 2},
	{"MC_5_1_0", ChannelConfigMC5P1, 6},
	{"MC_7_1_0", ChannelConfigMC7P1, 8},
	{"MC_10_2", ChannelConfigMC10P2, 12},
	{"MC_22_2", ChannelConfigMC22P2, 24},
	{"MC_4_0", ChannelConfigMC4P0, 4},
	{"MC_5_1_2", ChannelConfigMC5P1P2, 8},
	{"MC_5_1_4", ChannelConfigMC5P1P4, 10},
	{"MC_7_1_2", ChannelConfigMC7P1P2, 10},
	{"MC_7_1_4", ChannelConfigMC7P1P4, 12},
}

func bedChannels(cfg ChannelConfig) (channels uint16) {
	for _, row := range mcChannelConfigTable {
		if row.config == cfg {
			channels = row.channels
			break
		}
	}
	return
}

// channelConfigInfo resolves the channel count and, for the configurations
// that have one, the named speaker layout of a bed configuration. A zero
// layout is legitimate and means the configuration has no named layout.
func channelConfigInfo(cfg ChannelConfig) (channels uint16, layout goav3a.ChannelLayout) {
	switch cfg {
	case ChannelConfigMono:
		return 1, goav3a.ChMono
	case ChannelConfigStereo:
		return 2, goav3a.ChStereo
	case ChannelConfigMC4P0:
		return 4, 0
	case ChannelConfigMC5P1:
		return 6, goav3a.Ch5Point1
	case ChannelConfigMC7P1:
		return 8, goav3a.Ch7Point1
	case ChannelConfigMC5P1P2:
		return 8, 0
	case ChannelConfigMC5P1P4:
		return 10, 0
	case ChannelConfigMC7P1P2:
		return 10, 0
	case ChannelConfigMC7P1P4:
		return 12, 0
	case ChannelConfigMC22P2:
		return 24, goav3a.Ch22Point2
	default:
		return 0, 0
	}
}
