package tables

// Audio coding modes (acmod).
// Source: ATSC A/52 Table 5.8
const (
	ACModDualMono = 0 // 1+1, two independent programs
	ACModMono     = 1 // 1/0
	ACModStereo   = 2 // 2/0
	ACMod3F       = 3 // 3/0
	ACMod2F1R     = 4 // 2/1
	ACMod3F1R     = 5 // 3/1
	ACMod2F2R     = 6 // 2/2
	ACMod3F2R     = 7 // 3/2
)

// DSurModDolby is the dsurmod value for a Dolby Surround encoded 2/0 program.
// Source: ATSC A/52 Table 5.11
const DSurModDolby = 2

// lfeMasks locates the lfeon bit inside the seventh frame byte. Its position
// depends on how many of cmixlev, surmixlev and dsurmod precede it for the
// given acmod.
var lfeMasks = [8]uint8{0x10, 0x10, 0x04, 0x04, 0x04, 0x01, 0x04, 0x01}

// LFEMask returns the mask of the lfeon bit in frame byte 6 for acmod.
func LFEMask(acmod uint8) uint8 {
	return lfeMasks[acmod&7]
}

// Channels is the number of full-bandwidth channels for each acmod.
// Source: ATSC A/52 Table 5.8
var Channels = [8]uint8{2, 1, 2, 3, 3, 4, 4, 5}

// HasCenterMixLevel reports whether cmixlev is present for acmod: three
// front channels.
func HasCenterMixLevel(acmod uint8) bool {
	return acmod&1 != 0 && acmod != ACModMono
}

// HasSurroundMixLevel reports whether surmixlev is present for acmod.
func HasSurroundMixLevel(acmod uint8) bool {
	return acmod&4 != 0
}
