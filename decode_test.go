package aac

import (
	"errors"
	"testing"

	"github.com/llehouerou/go-aacdec/internal/bits"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

func initDecoder(t *testing.T, data []byte, opts ...Option) *Decoder {
	t.Helper()
	d := NewDecoder(opts...)
	if _, err := d.Init(data); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return d
}

func TestDecode_Stereo(t *testing.T) {
	frame := stereoFrame()
	d := initDecoder(t, frame)
	out := NewSampleBuffer(false)

	info, err := d.Decode(frame, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Error != ErrNone || info.BytesConsumed != uint32(len(frame)) {
		t.Errorf("error %d bytes consumed %d, want 0 and %d", info.Error, info.BytesConsumed, len(frame))
	}
	if info.Channels != 2 || info.SampleRate != 44100 || info.Samples != 2048 {
		t.Errorf("got %d channels %d Hz %d samples", info.Channels, info.SampleRate, info.Samples)
	}
	if info.HeaderType != HeaderTypeADTS || info.ObjectType != ObjectTypeLC || info.SBR != SBRNone {
		t.Errorf("header %d object type %d sbr %d", info.HeaderType, info.ObjectType, info.SBR)
	}
	if info.NumFrontChannels != 2 || info.ChannelPosition[0] != ChannelFrontLeft || info.ChannelPosition[1] != ChannelFrontRight {
		t.Errorf("layout: front %d positions %v", info.NumFrontChannels, info.ChannelPosition[:2])
	}

	if len(out.Data()) != 4096 || out.Channels() != 2 || out.SampleRate() != 44100 || out.BitsPerSample() != 16 {
		t.Errorf("sample buffer: %d bytes %d channels %d Hz %d bits",
			len(out.Data()), out.Channels(), out.SampleRate(), out.BitsPerSample())
	}
	for i, b := range out.Data() {
		if b != 0 {
			t.Fatalf("byte %d: got %d, silent frame should decode to zeros", i, b)
		}
	}
}

func TestDecode_RawMono(t *testing.T) {
	block := rawBlock(func(w *bits.Writer) { putSingle(w, 0) })
	d := initDecoder(t, block, WithConfig(Config{DefObjectType: ObjectTypeLC, DefSampleRate: 32000}))
	out := NewSampleBuffer(false)

	info, err := d.Decode(block, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.HeaderType != HeaderTypeRAW || info.Channels != 1 || info.SampleRate != 32000 {
		t.Errorf("header %d channels %d rate %d", info.HeaderType, info.Channels, info.SampleRate)
	}
	if info.BytesConsumed != uint32(len(block)) {
		t.Errorf("bytes consumed: got %d, want %d", info.BytesConsumed, len(block))
	}
	if len(out.Data()) != 2048 {
		t.Errorf("output: got %d bytes, want 2048", len(out.Data()))
	}
	// configuration 0 has no standard layout
	if info.NumFrontChannels != 0 || info.ChannelPosition[0] != ChannelUnknown {
		t.Errorf("layout: front %d position %d", info.NumFrontChannels, info.ChannelPosition[0])
	}
}

func TestDecode_OutputFormats(t *testing.T) {
	tests := []struct {
		format OutputFormat
		bytes  int
		depth  int
	}{
		{OutputFormat16Bit, 4096, 16},
		{OutputFormat24Bit, 8192, 24},
		{OutputFormat32Bit, 8192, 32},
		{OutputFormatFloat, 8192, 32},
	}
	for _, tt := range tests {
		d := initDecoder(t, stereoFrame())
		cfg := d.Config()
		cfg.OutputFormat = tt.format
		d.SetConfiguration(cfg)

		out := NewSampleBuffer(true)
		if _, err := d.Decode(stereoFrame(), out); err != nil {
			t.Fatalf("format %d: %v", tt.format, err)
		}
		if len(out.Data()) != tt.bytes || out.BitsPerSample() != tt.depth {
			t.Errorf("format %d: got %d bytes %d bits, want %d bytes %d bits",
				tt.format, len(out.Data()), out.BitsPerSample(), tt.bytes, tt.depth)
		}
	}
}

func TestDecode_DownMatrix(t *testing.T) {
	tests := []struct {
		name       string
		downMatrix bool
		channels   uint8
		front      uint8
		back       uint8
		lfe        uint8
	}{
		{"5.1", false, 6, 3, 2, 1},
		{"folded to stereo", true, 2, 2, 0, 0},
	}
	for _, tt := range tests {
		d := initDecoder(t, surroundFrame(), WithConfig(Config{
			DefObjectType: ObjectTypeLC,
			DefSampleRate: 44100,
			OutputFormat:  OutputFormat16Bit,
			DownMatrix:    tt.downMatrix,
		}))
		out := NewSampleBuffer(false)
		info, err := d.Decode(surroundFrame(), out)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if info.Channels != tt.channels || len(out.Data()) != 1024*int(tt.channels)*2 {
			t.Errorf("%s: %d channels %d bytes", tt.name, info.Channels, len(out.Data()))
		}
		if info.SampleRate != 48000 {
			t.Errorf("%s: sample rate %d", tt.name, info.SampleRate)
		}
		if info.NumFrontChannels != tt.front || info.NumBackChannels != tt.back || info.NumLFEChannels != tt.lfe {
			t.Errorf("%s: layout %d/%d/%d", tt.name, info.NumFrontChannels, info.NumBackChannels, info.NumLFEChannels)
		}
	}
}

func TestDecode_FailureKeepsOutput(t *testing.T) {
	d := initDecoder(t, stereoFrame())
	out := NewSampleBuffer(false)
	if _, err := d.Decode(stereoFrame(), out); err != nil {
		t.Fatal(err)
	}
	data := out.Data()

	block := rawBlock(func(w *bits.Writer) {
		for i := 0; i <= syntax.MaxElements; i++ {
			putCoupling(w, uint32(i%16))
		}
	})
	info, err := d.Decode(adtsFrame(1, 4, 2, block), out)
	if !errors.Is(err, ErrTooManyElements) {
		t.Fatalf("got %v, want ErrTooManyElements", err)
	}
	if info == nil || info.Error != ErrMaxBitstreamElements {
		t.Fatalf("FrameInfo: got %+v", info)
	}
	if len(out.Data()) != len(data) || &out.Data()[0] != &data[0] || out.Channels() != 2 {
		t.Error("failed frame modified the sample buffer")
	}
	if d.FrameCount() != 1 {
		t.Errorf("FrameCount: got %d, want 1", d.FrameCount())
	}

	if _, err := d.Decode(stereoFrame(), out); err != nil {
		t.Errorf("decoder did not recover: %v", err)
	}
}

func TestDecode_LostSync(t *testing.T) {
	d := initDecoder(t, stereoFrame())
	info, err := d.Decode(make([]byte, 32), NewSampleBuffer(false))
	if err == nil {
		t.Fatal("expected an error")
	}
	if info.Error != ErrADTSSyncwordNotFound {
		t.Errorf("error code: got %d (%v), want %d", info.Error, info.Error, ErrADTSSyncwordNotFound)
	}
}

func TestDecode_SkipsID3v1(t *testing.T) {
	d := initDecoder(t, stereoFrame())
	tag := make([]byte, 128)
	copy(tag, "TAG")
	out := NewSampleBuffer(false)

	info, err := d.Decode(tag, out)
	if err != nil {
		t.Fatal(err)
	}
	if info.BytesConsumed != 128 || info.Samples != 0 || out.Channels() != 0 {
		t.Errorf("got %d bytes consumed %d samples", info.BytesConsumed, info.Samples)
	}
	if d.FrameCount() != 0 {
		t.Errorf("tag counted as frame")
	}
}

func TestDecode_Errors(t *testing.T) {
	var nilDecoder *Decoder
	if _, err := nilDecoder.Decode(stereoFrame(), NewSampleBuffer(false)); !errors.Is(err, ErrNilDecoder) {
		t.Errorf("nil decoder: got %v", err)
	}
	if _, err := NewDecoder().Decode(stereoFrame(), NewSampleBuffer(false)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("uninitialized: got %v", err)
	}

	d := initDecoder(t, stereoFrame())
	tests := []struct {
		name string
		data []byte
		out  *SampleBuffer
		want error
	}{
		{"nil buffer", nil, NewSampleBuffer(false), ErrNilBuffer},
		{"nil output", stereoFrame(), nil, ErrNilBuffer},
		{"empty buffer", []byte{}, NewSampleBuffer(false), ErrBufferTooSmall},
	}
	for _, tt := range tests {
		if _, err := d.Decode(tt.data, tt.out); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

type fakeSBR struct {
	ps        bool
	payloads  int
	processed int
}

func (s *fakeSBR) Decode([]byte, int, bool) error {
	s.payloads++
	return nil
}

func (s *fakeSBR) Process(_, _ []float32, _ bool) error {
	s.processed++
	return nil
}

func (s *fakeSBR) PSUsed() bool { return s.ps }

func TestDecode_SBRWithParametricStereo(t *testing.T) {
	frame := adtsFrame(1, 4, 1, rawBlock(func(w *bits.Writer) {
		putSingle(w, 0)
		w.PutBits(uint32(syntax.IDFIL), syntax.LenSEID)
		w.PutBits(2, 4) // count
		w.PutBits(uint32(syntax.ExtSBRData), 4)
		w.PutBits(0xABC, 12)
	}))

	var params []SBRParams
	sbr := &fakeSBR{ps: true}
	factory := func(stereo bool, p SBRParams) (SBR, error) {
		if stereo {
			t.Error("factory called with stereo for a single channel element")
		}
		params = append(params, p)
		return sbr, nil
	}

	d := initDecoder(t, frame, WithSBR(factory))
	out := NewSampleBuffer(false)
	info, err := d.Decode(frame, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(params) != 1 || params[0] != (SBRParams{SampleRate: 44100, FrameLength: 1024}) {
		t.Errorf("factory params: got %+v", params)
	}
	if sbr.payloads != 1 || sbr.processed != 1 {
		t.Errorf("payloads %d processed %d, want 1 and 1", sbr.payloads, sbr.processed)
	}
	if info.SBR != SBRUpsampled || info.PS != 1 {
		t.Errorf("SBR %d PS %d", info.SBR, info.PS)
	}
	if info.Channels != 2 || info.SampleRate != 88200 || info.Samples != 4096 {
		t.Errorf("got %d channels %d Hz %d samples", info.Channels, info.SampleRate, info.Samples)
	}
	if len(out.Data()) != 8192 {
		t.Errorf("output: got %d bytes, want 8192", len(out.Data()))
	}
	if info.ChannelPosition[0] != ChannelFrontLeft || info.ChannelPosition[1] != ChannelFrontRight {
		t.Errorf("positions: %v", info.ChannelPosition[:2])
	}
}
