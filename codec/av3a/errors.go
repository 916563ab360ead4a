package av3a

import "errors"

// Parse failures. All of them abort the decode of the candidate header; the
// caller discards it and either resynchronizes or feeds different bytes.
var (
	ErrSyncMismatch             = errors.New("av3a: sync word mismatch")
	ErrUnsupportedCodec         = errors.New("av3a: unsupported codec id")
	ErrReservedBitViolation     = errors.New("av3a: reserved ancillary data bit set")
	ErrInvalidCodingProfile     = errors.New("av3a: invalid coding profile")
	ErrInvalidSamplingRateIndex = errors.New("av3a: invalid sampling rate index")
	ErrInvalidChannelConfig     = errors.New("av3a: invalid channel configuration")
	ErrInvalidSoundBedType      = errors.New("av3a: invalid sound bed type")
	ErrInvalidAmbisonicOrder    = errors.New("av3a: invalid ambisonic order")
	ErrInvalidResolutionIndex   = errors.New("av3a: invalid resolution index")
	ErrMissingBitrateTable      = errors.New("av3a: channel configuration has no bitrate table")
	ErrBufferExhausted          = errors.New("av3a: frame header buffer exhausted")
)
