// Package tables contains the fixed lookup tables of the A/52 bitstream.
//
// This includes the sample rate and bit rate tables used by syncinfo, the
// channel-mode tables used to locate optional BSI fields, and the mix-level
// tables used by the downmix stage.
//
// Source: ATSC A/52, section 5.4.1 and 5.4.2
package tables
