package aac

import (
	"github.com/llehouerou/go-aacdec/internal/bits"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// id3v1Size is the size of an ID3v1 tag, which Decode skips.
const id3v1Size = 128

// Decode decodes one frame into out. For ADTS streams buffer starts
// with the frame header; raw streams pass one raw data block.
//
// The returned FrameInfo is set even on failure, with Error holding the
// FAAD2 code of the returned error. out is only written on success.
//
// Ported from: aac_frame_decode() in ~/dev/faad2/libfaad/decoder.c:848-1255
func (d *Decoder) Decode(buffer []byte, out *SampleBuffer) (*FrameInfo, error) {
	if d == nil {
		return nil, ErrNilDecoder
	}
	if buffer == nil || out == nil {
		return nil, ErrNilBuffer
	}
	if len(buffer) == 0 {
		return nil, ErrBufferTooSmall
	}
	if d.dispatcher == nil {
		return nil, ErrNotInitialized
	}

	info := &FrameInfo{
		HeaderType: d.headerType,
		ObjectType: ObjectType(d.cfg.Profile),
	}
	if len(buffer) >= id3v1Size && string(buffer[:3]) == "TAG" {
		info.BytesConsumed = id3v1Size
		return info, nil
	}

	if d.postSeekReset {
		d.dispatcher.Reset()
		d.processor.Reset()
		d.fb.Reset()
		d.postSeekReset = false
	}

	fail := func(err error) (*FrameInfo, error) {
		info.Error = errorCode(err)
		d.log.Debug().Err(err).Uint32("frame", d.frame).Msg("frame failed")
		return info, err
	}

	r := bits.NewReader(buffer)
	if d.headerType == HeaderTypeADTS {
		var h syntax.ADTSHeader
		if err := syntax.ParseADTSHeader(r, &h, d.config.UseOldADTSFormat); err != nil {
			return fail(err)
		}
	}

	res, err := d.dispatcher.Decode(r)
	if err != nil {
		return fail(err)
	}
	info.BytesConsumed = uint32((r.Position() + 7) / 8)
	info.ObjectType = ObjectType(d.cfg.Profile)

	buffers, err := d.processor.Process(&res)
	if err != nil {
		return fail(err)
	}
	if err := d.emitter.Emit(buffers, &d.cfg, res.SBRPresent, res.BitsRead, out); err != nil {
		return fail(err)
	}

	info.Channels = uint8(out.Channels())
	info.SampleRate = uint32(out.SampleRate())
	info.Samples = uint32(len(buffers[0]) * out.Channels())
	if res.SBRPresent {
		info.SBR = SBRUpsampled
		if d.cfg.SBRDownsampled {
			info.SBR = SBRDownsampled
		}
	}
	if res.PSPresent && len(buffers) == 2 && d.cfg.ChannelCount() == 1 {
		info.PS = 1
	}
	downmixed := d.config.DownMatrix && len(buffers) != out.Channels()
	setChannelLayout(info, uint8(d.cfg.ChannelConfiguration), out.Channels(), downmixed)

	d.log.Debug().
		Uint32("frame", d.frame).
		Int("channels", out.Channels()).
		Int("bits", res.BitsRead).
		Bool("sbr", res.SBRPresent).
		Msg("frame decoded")
	d.frame++
	return info, nil
}
