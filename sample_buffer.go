package aac

// SampleBuffer receives the PCM output of Decode. Its byte slice is
// reused from frame to frame while the frame size stays the same.
type SampleBuffer struct {
	data          []byte
	bigEndian     bool
	sampleRate    int
	channels      int
	bitsPerSample int
	bitsRead      int
}

// NewSampleBuffer returns an empty buffer writing samples in the given
// byte order.
func NewSampleBuffer(bigEndian bool) *SampleBuffer {
	return &SampleBuffer{bigEndian: bigEndian}
}

// Data returns the interleaved samples of the last frame.
func (b *SampleBuffer) Data() []byte { return b.data }

// Bytes is Data.
func (b *SampleBuffer) Bytes() []byte { return b.data }

// BigEndian reports the byte order samples are written in.
func (b *SampleBuffer) BigEndian() bool { return b.bigEndian }

// SetBigEndian changes the byte order for the following frames.
func (b *SampleBuffer) SetBigEndian(v bool) { b.bigEndian = v }

// SampleRate returns the output sample rate of the last frame.
func (b *SampleBuffer) SampleRate() int { return b.sampleRate }

// Channels returns the channel count of the last frame.
func (b *SampleBuffer) Channels() int { return b.channels }

// BitsPerSample returns the sample depth of the last frame.
func (b *SampleBuffer) BitsPerSample() int { return b.bitsPerSample }

// BitsRead returns the bits the last frame's raw data block occupied.
func (b *SampleBuffer) BitsRead() int { return b.bitsRead }

// SetData stores a decoded frame.
func (b *SampleBuffer) SetData(data []byte, sampleRate, channels, bitsPerSample, bitsRead int) {
	b.data = data
	b.sampleRate = sampleRate
	b.channels = channels
	b.bitsPerSample = bitsPerSample
	b.bitsRead = bitsRead
}
