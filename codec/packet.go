package codec

import (
	"fmt"
	"time"

	"github.com/ugparu/goav3a"
)

// BasePacket carries one demuxed frame together with its timing and the
// parameters of the stream it came from.
type BasePacket[T goav3a.CodecParameters] struct {
	Idx          uint8
	RelativeTime time.Duration
	Dur          time.Duration
	InpURL       string
	AbsoluteTime time.Time
	CodecPar     T
	buf          []byte
}

// NewBasePacket creates a new BasePacket owning buf.
func NewBasePacket[T goav3a.CodecParameters](
	relativeTime time.Duration,
	dur time.Duration,
	url string,
	buf []byte,
	absTime time.Time,
	codecPar T,
) BasePacket[T] {
	return BasePacket[T]{
		Idx:          codecPar.StreamIndex(),
		RelativeTime: relativeTime,
		Dur:          dur,
		InpURL:       url,
		AbsoluteTime: absTime,
		CodecPar:     codecPar,
		buf:          buf,
	}
}

func (pkt *BasePacket[T]) Clone(copyData bool) BasePacket[T] {
	newPkt := *pkt
	if copyData {
		newPkt.buf = make([]byte, len(pkt.buf))
		copy(newPkt.buf, pkt.buf)
	}
	return newPkt
}

func (pkt *BasePacket[T]) Data() []byte {
	return pkt.buf
}

func (pkt *BasePacket[T]) Len() int {
	return len(pkt.buf)
}

func (pkt *BasePacket[T]) URL() string {
	return pkt.InpURL
}

func (pkt *BasePacket[T]) SetURL(url string) {
	pkt.InpURL = url
}

func (pkt *BasePacket[T]) StreamIndex() uint8 {
	return pkt.Idx
}

func (pkt *BasePacket[T]) SetStreamIndex(idx uint8) {
	pkt.Idx = idx
}

func (pkt *BasePacket[T]) StartTime() time.Time {
	return pkt.AbsoluteTime
}

func (pkt *BasePacket[T]) SetStartTime(t time.Time) {
	pkt.AbsoluteTime = t
}

func (pkt *BasePacket[T]) Timestamp() time.Duration {
	return pkt.RelativeTime
}

func (pkt *BasePacket[T]) SetTimestamp(ts time.Duration) {
	pkt.RelativeTime = ts
}

func (pkt *BasePacket[T]) Duration() time.Duration {
	return pkt.Dur
}

func (pkt *BasePacket[T]) SetDuration(dur time.Duration) {
	pkt.Dur = dur
}

func (pkt *BasePacket[T]) String() string {
	if pkt == nil {
		return "EMPTY_PACKET"
	}
	return fmt.Sprintf("PACKET sz=%d", len(pkt.buf))
}

// AudioPacket specializes BasePacket for audio streams.
type AudioPacket[T goav3a.AudioCodecParameters] struct {
	BasePacket[T]
}

func (pkt *AudioPacket[T]) Clone(copyData bool) AudioPacket[T] {
	return AudioPacket[T]{
		BasePacket: pkt.BasePacket.Clone(copyData),
	}
}

func (pkt *AudioPacket[T]) CodecParameters() goav3a.AudioCodecParameters {
	return pkt.CodecPar
}
