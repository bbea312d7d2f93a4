// Package aac decodes the spectral core of MPEG-4 AAC streams to PCM.
//
// A Decoder reads the syntax elements of one frame, reconstructs every
// channel's spectrum (dequantization, noise substitution, stereo
// processing, prediction, TNS, coupling) and synthesizes it through the
// inverse MDCT before interleaving the channels into a SampleBuffer.
//
// # Basic Usage
//
//	dec := aac.NewDecoder(aac.WithCodebooks(cb))
//	defer dec.Close()
//
//	sampleRate, channels, err := dec.SimpleInit(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := aac.NewSampleBuffer(false)
//	for len(data) > 0 {
//	    info, err := dec.Decode(data, out)
//	    if err != nil {
//	        log.Printf("frame: %v (%s)", err, info.Error)
//	        break
//	    }
//	    data = data[info.BytesConsumed:]
//	    // use out.Data()...
//	}
//
// # Pluggable Stages
//
// Huffman decoding and spectral band replication are supplied by the
// caller. WithCodebooks sets the scalefactor and spectral codeword
// decoder; without it only frames whose channels carry no scalefactor
// bands decode. WithSBR sets a factory for per-element SBR decoders;
// without it SBR payloads are skipped and the core signal is emitted at
// the doubled rate.
//
// # Supported Formats
//
// Object types: Main, LC, LTP, ER LC and ER LTP. HE-AAC streams decode
// through their LC core.
// Containers: ADTS, raw blocks (Init defaults or Init2 with an
// AudioSpecificConfig).
// Output: 16, 24 and 32-bit integer or 32-bit float PCM, optionally
// folded from 5.1 to stereo.
//
// # Errors
//
// Decode returns a FrameInfo even on failure. Its Error field holds the
// FAAD2 error code of the failure; GetErrorMessage describes it.
//
// # Thread Safety
//
// Decoder instances are not safe for concurrent use. Use one decoder per
// goroutine.
//
// # Reference
//
// Ported from FAAD2: https://github.com/knik0/faad2
package aac
