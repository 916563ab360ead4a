package av3a

import (
	"time"

	"github.com/ugparu/goav3a"
	"github.com/ugparu/goav3a/codec"
)

// Packet stores one complete AV3A frame, header bytes included.
type Packet struct {
	codec.AudioPacket[*CodecParameters]
}

func NewPacket(data []byte, ts time.Duration, url string,
	absTime time.Time, codecPar *CodecParameters, dur time.Duration) *Packet {
	return &Packet{
		AudioPacket: codec.AudioPacket[*CodecParameters]{
			BasePacket: codec.NewBasePacket(ts, dur, url, data, absTime, codecPar),
		},
	}
}

func (p *Packet) Clone(copyData bool) goav3a.Packet {
	return &Packet{
		AudioPacket: p.AudioPacket.Clone(copyData),
	}
}
