package syntax

import "errors"

// ADTSSyncword is the 12-bit sync pattern for ADTS frames.
const ADTSSyncword = 0x0FFF

// MaxSyncSearchBytes is how far FindSyncword looks for a sync pattern.
const MaxSyncSearchBytes = 768

// ErrADTSSyncwordNotFound is returned when no ADTS syncword is found.
var ErrADTSSyncwordNotFound = errors.New("syntax: unable to find ADTS syncword")

// SyncReader is a BitReader that can also peek and skip, as needed to
// search for a syncword. *bits.Reader implements it.
type SyncReader interface {
	BitReader
	ShowBits(n uint) uint32
	FlushBits(n uint)
}

// ADTSHeader is an Audio Data Transport Stream frame header.
//
// Ported from: adts_header in ~/dev/faad2/libfaad/structs.h:146-168
type ADTSHeader struct {
	ID                   uint8 // 0=MPEG-4, 1=MPEG-2
	Layer                uint8
	ProtectionAbsent     bool
	Profile              uint8 // object type minus one
	SFIndex              uint8
	PrivateBit           bool
	ChannelConfiguration uint8
	Original             bool
	Home                 bool
	Emphasis             uint8 // old format MPEG-4 headers only

	CopyrightIDBit         bool
	CopyrightIDStart       bool
	AACFrameLength         uint16 // whole frame, header included
	ADTSBufferFullness     uint16
	CRCCheck               uint16
	NoRawDataBlocksInFrame uint8
}

// ParseADTSHeader finds the next syncword and parses the fixed header,
// the variable header and the CRC when present. oldFormat selects the
// pre-corrigendum layout that carries an emphasis field.
//
// Ported from: adts_frame() in ~/dev/faad2/libfaad/syntax.c:2440-2540
func ParseADTSHeader(r SyncReader, h *ADTSHeader, oldFormat bool) error {
	if err := FindSyncword(r); err != nil {
		return err
	}

	h.ID = uint8(r.GetBits(1))
	h.Layer = uint8(r.GetBits(2))
	h.ProtectionAbsent = r.Get1Bit() != 0
	h.Profile = uint8(r.GetBits(2))
	h.SFIndex = uint8(r.GetBits(4))
	h.PrivateBit = r.Get1Bit() != 0
	h.ChannelConfiguration = uint8(r.GetBits(3))
	h.Original = r.Get1Bit() != 0
	h.Home = r.Get1Bit() != 0
	h.Emphasis = 0
	if oldFormat && h.ID == 0 {
		h.Emphasis = uint8(r.GetBits(2))
	}

	h.CopyrightIDBit = r.Get1Bit() != 0
	h.CopyrightIDStart = r.Get1Bit() != 0
	h.AACFrameLength = uint16(r.GetBits(13))
	h.ADTSBufferFullness = uint16(r.GetBits(11))
	h.NoRawDataBlocksInFrame = uint8(r.GetBits(2))

	h.CRCCheck = 0
	if !h.ProtectionAbsent {
		h.CRCCheck = uint16(r.GetBits(16))
	}
	if r.Error() {
		return ErrBitstreamError
	}
	return nil
}

// FindSyncword skips bytes until the next 12 bits are the ADTS syncword,
// then consumes them.
//
// Ported from: adts_fixed_header() in ~/dev/faad2/libfaad/syntax.c:2466-2482
func FindSyncword(r SyncReader) error {
	for i := 0; i < MaxSyncSearchBytes; i++ {
		if r.ShowBits(12) == ADTSSyncword {
			r.FlushBits(12)
			return nil
		}
		r.FlushBits(8)
		if r.Error() {
			break
		}
	}
	return ErrADTSSyncwordNotFound
}

// HeaderSize returns the header size in bytes: 7, or 9 with a CRC.
func (h *ADTSHeader) HeaderSize() int {
	if h.ProtectionAbsent {
		return 7
	}
	return 9
}

// DataSize returns the raw data size following the header.
func (h *ADTSHeader) DataSize() int {
	return int(h.AACFrameLength) - h.HeaderSize()
}
