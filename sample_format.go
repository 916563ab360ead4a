package goav3a

// SampleFormat represents different audio sample formats.
type SampleFormat uint8

// Constants representing various audio sample formats.
const (
	U8  = SampleFormat(iota + 1) // 8-bit unsigned integer
	S16                          // signed 16-bit integer
	S24                          // signed 24-bit integer
	S32                          // signed 32-bit integer
	FLT                          // 32-bit float
)

// BytesPerSample returns the number of bytes per audio sample for the given sample format.
func (sf SampleFormat) BytesPerSample() int {
	switch sf {
	case U8:
		return 1
	case S16:
		return 2 //nolint:mnd
	case S24:
		return 3 //nolint:mnd
	case S32, FLT:
		return 4 //nolint:mnd
	default:
		return 0
	}
}

// String returns a human-readable string representation of the sample format.
func (sf SampleFormat) String() string {
	switch sf {
	case U8:
		return "U8"
	case S16:
		return "S16"
	case S24:
		return "S24"
	case S32:
		return "S32"
	case FLT:
		return "FLT"
	default:
		return "?"
	}
}
