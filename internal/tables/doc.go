// Package tables contains lookup tables for AAC decoding.
//
// This includes scalefactor band offsets, per-rate band limits for
// prediction and TNS, and the inverse quantization table.
//
// Ported from: ~/dev/faad2/libfaad/common.c, specrec.c, iq_table.h
package tables
