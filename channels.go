package aac

// layout is the speaker arrangement of a standard channel configuration.
type layout struct {
	front, side, back, lfe uint8
	pos                    []ChannelPosition
}

// layouts holds channel configurations 1-7 in element order.
//
// Ported from: create_channel_config() in ~/dev/faad2/libfaad/decoder.c:610-845
var layouts = [8]layout{
	1: {front: 1, pos: []ChannelPosition{ChannelFrontCenter}},
	2: {front: 2, pos: []ChannelPosition{ChannelFrontLeft, ChannelFrontRight}},
	3: {front: 3, pos: []ChannelPosition{ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight}},
	4: {front: 3, back: 1, pos: []ChannelPosition{
		ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, ChannelBackCenter,
	}},
	5: {front: 3, back: 2, pos: []ChannelPosition{
		ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, ChannelBackLeft, ChannelBackRight,
	}},
	6: {front: 3, back: 2, lfe: 1, pos: []ChannelPosition{
		ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, ChannelBackLeft, ChannelBackRight,
		ChannelLFE,
	}},
	7: {front: 3, side: 2, back: 2, lfe: 1, pos: []ChannelPosition{
		ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, ChannelSideLeft, ChannelSideRight,
		ChannelBackLeft, ChannelBackRight, ChannelLFE,
	}},
}

var stereo = layouts[2]

// setChannelLayout fills the speaker fields of info for a frame of
// channels outputs. A mono stream expanded by parametric stereo or a
// downmixed frame is reported as plain stereo; layouts a program config
// element describes are left unknown.
func setChannelLayout(info *FrameInfo, chcfg uint8, channels int, downmixed bool) {
	l := layout{}
	switch {
	case downmixed || (chcfg == 1 && channels == 2):
		l = stereo
	case int(chcfg) < len(layouts):
		l = layouts[chcfg]
	}
	if len(l.pos) != channels {
		return
	}
	info.NumFrontChannels = l.front
	info.NumSideChannels = l.side
	info.NumBackChannels = l.back
	info.NumLFEChannels = l.lfe
	copy(info.ChannelPosition[:], l.pos)
}
