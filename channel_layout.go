package goav3a

import "fmt"

// ChannelLayout represents the audio speaker layout.
type ChannelLayout uint32

// String returns the human-readable string representation of a ChannelLayout.
func (ch ChannelLayout) String() string {
	return fmt.Sprintf("%dch", ch.Count())
}

// Constants representing individual speaker positions.
const (
	ChFrontCenter = ChannelLayout(1 << iota)
	ChFrontLeft
	ChFrontRight
	ChFrontLeftCenter
	ChFrontRightCenter
	ChBackCenter
	ChBackLeft
	ChBackRight
	ChSideLeft
	ChSightRight
	ChLowFreq
	ChLowFreq2
	ChTopFrontLeft
	ChTopFrontCenter
	ChTopFrontRight
	ChTopCenter
	ChTopBackLeft
	ChTopBackCenter
	ChTopBackRight
	ChTopSideLeft
	ChTopSideRight
	ChBottomFrontLeft
	ChBottomFrontCenter
	ChBottomFrontRight
)

// Constants representing named speaker layouts.
const (
	ChMono     = (ChFrontCenter)
	ChStereo   = (ChFrontLeft | ChFrontRight)
	ChSurround = (ChStereo | ChFrontCenter)
	Ch5Point1  = (ChSurround | ChLowFreq | ChBackLeft | ChBackRight)
	Ch7Point1  = (Ch5Point1 | ChSideLeft | ChSightRight)
	Ch22Point2 = (Ch7Point1 |
		ChFrontLeftCenter | ChFrontRightCenter | ChBackCenter | ChLowFreq2 |
		ChTopFrontLeft | ChTopFrontCenter | ChTopFrontRight | ChTopCenter |
		ChTopBackLeft | ChTopBackCenter | ChTopBackRight | ChTopSideLeft | ChTopSideRight |
		ChBottomFrontLeft | ChBottomFrontCenter | ChBottomFrontRight)
)

// Count returns the number of channels in the ChannelLayout.
func (ch ChannelLayout) Count() (n int) {
	for ch != 0 {
		n++
		ch = (ch - 1) & ch
	}
	return
}
