package config

import "testing"

func TestObjectTypeClassification(t *testing.T) {
	tests := []struct {
		ot     ObjectType
		er     bool
		ltp    bool
		decode bool
	}{
		{ObjectTypeMain, false, false, true},
		{ObjectTypeLC, false, false, true},
		{ObjectTypeSSR, false, false, false},
		{ObjectTypeLTP, false, true, true},
		{ObjectTypeERLC, true, false, true},
		{ObjectTypeERLTP, true, true, true},
		{ObjectTypeLD, true, true, true},
	}
	for _, tt := range tests {
		if got := tt.ot.IsErrorResilient(); got != tt.er {
			t.Errorf("%d.IsErrorResilient(): got %v, want %v", tt.ot, got, tt.er)
		}
		if got := tt.ot.IsLTP(); got != tt.ltp {
			t.Errorf("%d.IsLTP(): got %v, want %v", tt.ot, got, tt.ltp)
		}
		if got := tt.ot.CanDecode(); got != tt.decode {
			t.Errorf("%d.CanDecode(): got %v, want %v", tt.ot, got, tt.decode)
		}
	}
}

func TestChannelCount(t *testing.T) {
	want := []int{0, 1, 2, 3, 4, 5, 6, 8}
	for i, w := range want {
		if got := ChannelConfiguration(i).ChannelCount(); got != w {
			t.Errorf("config %d: got %d, want %d", i, got, w)
		}
	}
	if got := ChannelConfiguration(9).ChannelCount(); got != 0 {
		t.Errorf("config 9: got %d, want 0", got)
	}
}

func TestChannelConfigurationFor(t *testing.T) {
	if c, ok := ChannelConfigurationFor(8); !ok || c != 7 {
		t.Errorf("8 channels: got (%d, %v), want (7, true)", c, ok)
	}
	if _, ok := ChannelConfigurationFor(7); ok {
		t.Error("7 channels: expected no standard configuration")
	}
}

func TestDecoderConfigChannelCount(t *testing.T) {
	cfg := DecoderConfig{ChannelConfiguration: 0, PCEChannels: 7}
	if got := cfg.ChannelCount(); got != 7 {
		t.Errorf("PCE fallback: got %d, want 7", got)
	}
	cfg.ChannelConfiguration = 6
	if got := cfg.ChannelCount(); got != 6 {
		t.Errorf("standard: got %d, want 6", got)
	}
}

func TestSampleRateIndex(t *testing.T) {
	tests := []struct {
		rate uint32
		want uint8
	}{
		{96000, 0}, {88200, 1}, {64000, 2}, {48000, 3}, {44100, 4},
		{32000, 5}, {24000, 6}, {22050, 7}, {16000, 8}, {12000, 9},
		{11025, 10}, {8000, 11}, {1000, 11},
	}
	for _, tt := range tests {
		if got := SampleRateIndex(tt.rate); got != tt.want {
			t.Errorf("SampleRateIndex(%d): got %d, want %d", tt.rate, got, tt.want)
		}
		if tt.rate != 1000 && SampleRate(tt.want) != tt.rate {
			t.Errorf("SampleRate(%d): got %d, want %d", tt.want, SampleRate(tt.want), tt.rate)
		}
	}
	if SampleRate(13) != 0 {
		t.Error("reserved index should map to 0")
	}
}
