package tables

// Linear gains of the fixed mix levels.
const (
	LevelPlus6dB = float32(2.0)
	LevelPlus3dB = float32(1.4142135623730951)
	Level3dB     = float32(0.7071067811865476)
	Level45dB    = float32(0.5946035575013605)
	Level6dB     = float32(0.5)
)

// CenterMixLevels maps cmixlev to the center downmix gain. Code 3 is
// reserved and decodes as -4.5 dB.
//
// Source: ATSC A/52 Table 5.9
var CenterMixLevels = [4]float32{Level3dB, Level45dB, Level6dB, Level45dB}

// SurroundMixLevels maps surmixlev to the surround downmix gain. Code 2
// mutes the surrounds; code 3 is reserved and decodes as -6 dB.
//
// Source: ATSC A/52 Table 5.10
var SurroundMixLevels = [4]float32{Level3dB, Level6dB, 0, Level6dB}
