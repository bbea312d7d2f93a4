package aac

import "testing"

func TestSetChannelLayout(t *testing.T) {
	tests := []struct {
		name      string
		chcfg     uint8
		channels  int
		downmixed bool
		front     uint8
		side      uint8
		back      uint8
		lfe       uint8
		first     ChannelPosition
	}{
		{"mono", 1, 1, false, 1, 0, 0, 0, ChannelFrontCenter},
		{"stereo", 2, 2, false, 2, 0, 0, 0, ChannelFrontLeft},
		{"parametric stereo", 1, 2, false, 2, 0, 0, 0, ChannelFrontLeft},
		{"4.0", 4, 4, false, 3, 0, 1, 0, ChannelFrontCenter},
		{"5.1", 6, 6, false, 3, 0, 2, 1, ChannelFrontCenter},
		{"7.1", 7, 8, false, 3, 2, 2, 1, ChannelFrontCenter},
		{"downmixed 5.1", 6, 2, true, 2, 0, 0, 0, ChannelFrontLeft},
		{"program config", 0, 3, false, 0, 0, 0, 0, ChannelUnknown},
		{"count mismatch", 6, 5, false, 0, 0, 0, 0, ChannelUnknown},
	}
	for _, tt := range tests {
		var info FrameInfo
		setChannelLayout(&info, tt.chcfg, tt.channels, tt.downmixed)
		if info.NumFrontChannels != tt.front || info.NumSideChannels != tt.side ||
			info.NumBackChannels != tt.back || info.NumLFEChannels != tt.lfe {
			t.Errorf("%s: got %d/%d/%d/%d", tt.name,
				info.NumFrontChannels, info.NumSideChannels, info.NumBackChannels, info.NumLFEChannels)
		}
		if info.ChannelPosition[0] != tt.first {
			t.Errorf("%s: first position %d, want %d", tt.name, info.ChannelPosition[0], tt.first)
		}
	}
}

func TestChannelLayouts_Last(t *testing.T) {
	want := map[uint8]ChannelPosition{
		3: ChannelFrontRight,
		4: ChannelBackCenter,
		5: ChannelBackRight,
		6: ChannelLFE,
		7: ChannelLFE,
	}
	for chcfg, pos := range want {
		l := layouts[chcfg]
		if got := l.pos[len(l.pos)-1]; got != pos {
			t.Errorf("config %d: last position %d, want %d", chcfg, got, pos)
		}
		if n := int(l.front + l.side + l.back + l.lfe); n != len(l.pos) {
			t.Errorf("config %d: %d speakers for %d positions", chcfg, n, len(l.pos))
		}
	}
}
