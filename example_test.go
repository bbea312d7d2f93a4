package aac

import "fmt"

func ExampleDecoder_Decode() {
	frame := stereoFrame()

	dec := NewDecoder()
	defer dec.Close()

	sampleRate, channels, err := dec.SimpleInit(frame)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sampleRate, channels)

	out := NewSampleBuffer(false)
	info, err := dec.Decode(frame, out)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(info.Samples, len(out.Data()), info.BytesConsumed == uint32(len(frame)))
	// Output:
	// 44100 2
	// 2048 4096 true
}

func ExampleGetErrorMessage() {
	fmt.Println(GetErrorMessage(ErrMaxBitstreamElements))
	// Output: Maximum number of bitstream elements exceeded
}
