package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	aac "github.com/llehouerou/go-aacdec"
	"github.com/llehouerou/go-aacdec/internal/bits"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

var errNoFrames = errors.New("no ADTS frame found")

type stats struct {
	frames   int
	decoded  int
	failed   int
	pcmBytes int
}

// dump walks the ADTS frames of data, decoding each one and writing the
// samples to pcm. Frames that fail to decode are logged and skipped by
// their header length. limit stops the walk after that many frames
// when positive.
func dump(dec *aac.Decoder, data []byte, limit int, pcm io.Writer, log zerolog.Logger) (stats, error) {
	var st stats
	out := aac.NewSampleBuffer(false)

	for off := 0; off < len(data); {
		if limit > 0 && st.frames == limit {
			break
		}
		start, h, err := nextHeader(data[off:])
		if err != nil {
			if st.frames == 0 {
				return st, errNoFrames
			}
			log.Debug().Int("offset", off).Msg("no further syncword")
			break
		}
		off += start
		size := int(h.AACFrameLength)
		if size < h.HeaderSize() || off+size > len(data) {
			log.Warn().Int("offset", off).Int("size", size).Msg("truncated frame")
			break
		}
		frame := data[off : off+size]

		if st.frames == 0 {
			res, err := dec.Init(frame)
			if err != nil {
				return st, fmt.Errorf("init: %w", err)
			}
			log.Info().
				Uint32("sample_rate", res.SampleRate).
				Uint8("channels", res.Channels).
				Uint8("object_type", uint8(dec.ObjectType())).
				Msg("stream")
		}

		ev := log.Debug().
			Int("frame", st.frames).
			Int("offset", off).
			Int("size", size).
			Uint8("profile", h.Profile).
			Uint8("sf_index", h.SFIndex).
			Uint8("channel_config", h.ChannelConfiguration).
			Bool("crc", !h.ProtectionAbsent)

		info, err := dec.Decode(frame, out)
		switch {
		case err != nil:
			st.failed++
			code := aac.ErrNone
			if info != nil {
				code = info.Error
			}
			log.Warn().Err(err).Int("frame", st.frames).Int("code", int(code)).Msg("decode failed")
		default:
			st.decoded++
			n, werr := pcm.Write(out.Data())
			st.pcmBytes += n
			if werr != nil {
				return st, fmt.Errorf("write pcm: %w", werr)
			}
			ev = ev.Uint32("samples", info.Samples).Uint8("out_channels", info.Channels)
		}
		ev.Msg("frame")

		st.frames++
		off += size
	}
	return st, nil
}

// nextHeader finds the next ADTS header in data and returns its offset.
func nextHeader(data []byte) (int, *syntax.ADTSHeader, error) {
	var h syntax.ADTSHeader
	r := bits.NewReader(data)
	if err := syntax.ParseADTSHeader(r, &h, false); err != nil {
		return 0, nil, err
	}
	return r.Position()/8 - h.HeaderSize(), &h, nil
}
