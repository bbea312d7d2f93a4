// Package spectrum holds the spectral domain kernels of AAC decoding:
// dequantization, pulse data, perceptual noise substitution, M/S and
// intensity stereo, MAIN profile prediction, long term prediction, TNS
// and dynamic range control.
//
// All kernels work in place on float32 spectra in window-major order,
// one frameLength block per channel.
//
// Ported from: ~/dev/faad2/libfaad/specrec.c, ms.c, is.c, pns.c, tns.c,
// ic_predict.c, lt_predict.c, drc.c
package spectrum
