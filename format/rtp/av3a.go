// Package rtp depacketizes AV3A audio carried in RTP payloads.
package rtp

import (
	"time"

	"github.com/pion/rtp"

	"github.com/ugparu/goav3a/codec/av3a"
	"github.com/ugparu/goav3a/utils"
	"github.com/ugparu/goav3a/utils/logger"
)

// AV3ADepacketizer reassembles AV3A frames from RTP packets. A payload may
// carry several complete frames back to back or a fragment of a larger
// frame; fragments are buffered until the next packets complete them.
// The depacketizer is not safe for concurrent use.
type AV3ADepacketizer struct {
	par       *av3a.CodecParameters
	frag      []byte
	clockRate uint32
	baseTS    uint32
	hasBase   bool
}

// NewAV3ADepacketizer creates a depacketizer for a stream with the given RTP
// clock rate.
func NewAV3ADepacketizer(clockRate uint32) *AV3ADepacketizer {
	return &AV3ADepacketizer{clockRate: clockRate}
}

func (d *AV3ADepacketizer) String() string {
	return "AV3A_DEPACKETIZER"
}

// CodecParameters returns the parameters of the last completed frame, nil
// before the first one.
func (d *AV3ADepacketizer) CodecParameters() *av3a.CodecParameters {
	return d.par
}

// Depacketize consumes one RTP packet and returns the frames it completed.
// With no completed frame and buffered fragment bytes it returns
// utils.TryAgainError to request more packets.
func (d *AV3ADepacketizer) Depacketize(pkt *rtp.Packet) (packets []*av3a.Packet, err error) {
	if !d.hasBase {
		d.baseTS = pkt.Timestamp
		d.hasBase = true
	}

	data := pkt.Payload
	if len(d.frag) > 0 {
		data = append(d.frag, pkt.Payload...)
		d.frag = nil
	}

	ts := time.Duration(pkt.Timestamp-d.baseTS) * time.Second / time.Duration(d.clockRate)

	for len(data) > 0 {
		if len(data) < av3a.FrameHeaderSize {
			d.frag = data
			break
		}

		var hdr av3a.FrameHeader
		if hdr, err = av3a.ParseFrameHeader(data); err != nil {
			logger.Debugf(d, "resynchronizing: %v", err)
			data = data[1:]
			err = nil
			continue
		}

		size := hdr.FrameSize()
		if size < av3a.FrameHeaderSize {
			data = data[1:]
			continue
		}
		if len(data) < size {
			d.frag = data
			break
		}

		if d.par == nil || d.par.Header != hdr {
			d.par = av3a.NewCodecParameters(hdr)
			logger.Infof(d, "stream parameters changed: %v", hdr)
		}

		frame := make([]byte, size)
		copy(frame, data)
		data = data[size:]

		dur := hdr.Duration()
		packets = append(packets, av3a.NewPacket(frame, ts, "", time.Now(), d.par, dur))
		ts += dur
	}

	if len(packets) == 0 && len(d.frag) > 0 {
		err = utils.TryAgainError{}
	}
	return
}
