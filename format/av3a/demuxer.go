// Package av3a demuxes raw AVS3 audio elementary streams into frame packets.
package av3a

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"

	"github.com/ugparu/goav3a"
	"github.com/ugparu/goav3a/codec/av3a"
	"github.com/ugparu/goav3a/utils"
	"github.com/ugparu/goav3a/utils/logger"
)

// Demuxer reads a raw AV3A elementary stream frame by frame. Frames are
// forwarded unmodified, header bytes included; frame boundaries are derived
// from the constant bitrate carried in each header.
type Demuxer struct {
	f     *os.File
	rdr   *bufio.Reader
	url   string
	par   *av3a.CodecParameters
	ts    time.Duration
	start time.Time
}

func NewDemuxer(url string) goav3a.Demuxer {
	return &Demuxer{url: url}
}

func (dmx *Demuxer) String() string {
	return "AV3A_DEMUXER " + dmx.url
}

func (dmx *Demuxer) Demux() (params goav3a.CodecParametersPair, err error) {
	if dmx.f, err = os.Open(dmx.url); err != nil {
		return
	}
	dmx.rdr = bufio.NewReader(dmx.f)
	dmx.start = time.Now()

	var hdr av3a.FrameHeader
	if hdr, err = dmx.sync(); err != nil {
		if errors.Is(err, io.EOF) {
			err = utils.NoCodecDataError{}
		}
		return
	}

	dmx.par = av3a.NewCodecParameters(hdr)
	logger.Infof(dmx, "detected stream: %v", hdr)

	params.URL = dmx.url
	params.AudioCodecParameters = dmx.par
	return
}

// sync advances the reader to the next byte offset where a frame header
// parses, without consuming it. With fewer than FrameHeaderSize bytes left
// the stream is over and io.EOF is returned, never a decode error.
func (dmx *Demuxer) sync() (hdr av3a.FrameHeader, err error) {
	for {
		var window []byte
		if window, err = dmx.rdr.Peek(av3a.FrameHeaderSize); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			return
		}
		if hdr, err = av3a.ParseFrameHeader(window); err == nil {
			return
		}
		logger.Debugf(dmx, "resynchronizing: %v", err)
		if _, err = dmx.rdr.Discard(1); err != nil {
			return
		}
	}
}

func (dmx *Demuxer) ReadPacket() (pkt goav3a.Packet, err error) {
	if dmx.rdr == nil {
		if _, err = dmx.Demux(); err != nil {
			return
		}
	}

	for {
		var hdr av3a.FrameHeader
		if hdr, err = dmx.sync(); err != nil {
			return
		}

		size := hdr.FrameSize()
		if size < av3a.FrameHeaderSize {
			// a placeholder bitrate entry yields a frame too small to
			// hold its own header
			logger.Warnf(dmx, "unusable frame size %d, resynchronizing", size)
			if _, err = dmx.rdr.Discard(1); err != nil {
				return
			}
			continue
		}

		buf := make([]byte, size)
		if _, err = io.ReadFull(dmx.rdr, buf); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			return
		}

		if dmx.par == nil || dmx.par.Header != hdr {
			dmx.par = av3a.NewCodecParameters(hdr)
			logger.Infof(dmx, "stream parameters changed: %v", hdr)
		}

		dur := hdr.Duration()
		pkt = av3a.NewPacket(buf, dmx.ts, dmx.url, dmx.start.Add(dmx.ts), dmx.par, dur)
		dmx.ts += dur
		return
	}
}

// AudioParameters returns the audio codec parameters associated with the demuxer.
func (dmx *Demuxer) AudioParameters() goav3a.AudioCodecParameters {
	return dmx.par
}

func (dmx *Demuxer) Close() {
	if dmx.f != nil {
		dmx.f.Close()
	}
}
