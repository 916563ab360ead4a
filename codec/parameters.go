package codec

import (
	"fmt"
	"math"

	"github.com/ugparu/goav3a"
)

// BaseParameters carries the codec-independent part of stream parameters.
type BaseParameters struct {
	Index uint8
	BRate uint
	goav3a.CodecType
}

func (par *BaseParameters) SetStreamIndex(idx uint8) {
	par.Index = idx
}

func (par *BaseParameters) StreamIndex() uint8 {
	if par == nil {
		return math.MaxUint8
	}
	return par.Index
}

func (par *BaseParameters) Type() goav3a.CodecType {
	if par == nil {
		return math.MaxUint32
	}
	return par.CodecType
}

func (par *BaseParameters) SetBitrate(br uint) {
	par.BRate = br
}

func (par *BaseParameters) Bitrate() uint {
	if par == nil {
		return 0
	}
	return par.BRate
}

func (par *BaseParameters) String() string {
	if par == nil {
		return "EMPTY_CODEC_PARAMETERS"
	}
	return fmt.Sprintf("CODEC_PARAMETERS codec=%v brate=%d", par.CodecType, par.BRate)
}
