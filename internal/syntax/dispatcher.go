package syntax

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/go-aacdec/internal/config"
)

// erSequences lists the fixed element order of error resilient frames
// per channel configuration.
//
// Ported from: raw_data_block() in ~/dev/faad2/libfaad/syntax.c:546-640
var erSequences = [8][]ElementID{
	1: {IDSCE},
	2: {IDCPE},
	3: {IDSCE, IDCPE},
	4: {IDSCE, IDCPE, IDSCE},
	5: {IDSCE, IDCPE, IDCPE},
	6: {IDSCE, IDCPE, IDCPE, IDLFE},
	7: {IDSCE, IDCPE, IDCPE, IDCPE, IDLFE},
}

// DecodeResult describes one decoded frame. Elements points into the
// store and stays valid until the next Decode call.
type DecodeResult struct {
	Elements       []Element
	OutputChannels int
	SBRPresent     bool
	PSPresent      bool
	BitsRead       int

	// DRC is set when the frame carried dynamic range info.
	DRC *DRCInfo
}

// Dispatcher reads the syntax elements of raw data blocks into a
// persistent Store.
type Dispatcher struct {
	cfg       *config.DecoderConfig
	codebooks Codebooks
	sbr       SBRFactory
	log       zerolog.Logger

	store  Store
	cursor FrameCursor
	drc    DRCInfo
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCodebooks sets the Huffman decoder used for scalefactors and
// spectral data.
func WithCodebooks(cb Codebooks) Option {
	return func(d *Dispatcher) { d.codebooks = cb }
}

// WithSBR sets the factory for per-element SBR decoders. Without one,
// SBR payloads are skipped.
func WithSBR(f SBRFactory) Option {
	return func(d *Dispatcher) { d.sbr = f }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// NewDispatcher creates a dispatcher. cfg is shared with the caller and
// updated in place when a program config element is decoded.
func NewDispatcher(cfg *config.DecoderConfig, opts ...Option) *Dispatcher {
	d := &Dispatcher{cfg: cfg, log: zerolog.Nop()}
	for _, o := range opts {
		o(d)
	}
	d.store.log = d.log
	d.drc.ProgRefLevel = DRCRefLevel
	return d
}

// Store returns the element store.
func (d *Dispatcher) Store() *Store { return &d.store }

// ProgramConfig returns the last decoded program config element.
func (d *Dispatcher) ProgramConfig() *ProgramConfig { return &d.store.pce }

// Reset drops all per-slot state, as after a seek.
func (d *Dispatcher) Reset() {
	d.store.Reset()
	d.drc = DRCInfo{ProgRefLevel: DRCRefLevel}
}

// Decode reads one raw data block. The reader is byte aligned afterwards.
//
// Ported from: raw_data_block() in ~/dev/faad2/libfaad/syntax.c:449-648
func (d *Dispatcher) Decode(r BitReader) (DecodeResult, error) {
	d.cursor.Reset()
	d.drc.Present = false
	start := r.Position()

	var err error
	if d.cfg.Profile.IsErrorResilient() {
		err = d.decodeER(r)
	} else {
		err = d.decodeStandard(r)
	}
	if err != nil {
		return DecodeResult{}, err
	}

	r.ByteAlign()
	d.cursor.BitsRead = r.Position() - start

	res := DecodeResult{
		Elements:       d.cursor.Elements,
		OutputChannels: d.cursor.OutputChannels,
		SBRPresent:     d.cursor.SBRPresent,
		PSPresent:      d.cursor.PSPresent,
		BitsRead:       d.cursor.BitsRead,
	}
	if d.drc.Present {
		res.DRC = &d.drc
	}
	return res, nil
}

func (d *Dispatcher) decodeStandard(r BitReader) error {
	var prev Element
	for {
		id := ElementID(r.GetBits(LenSEID))
		if id == IDEND {
			return nil
		}

		var (
			e   Element
			err error
		)
		switch id {
		case IDSCE, IDLFE:
			e, err = d.decodeSingle(r, id == IDLFE)
		case IDCPE:
			e, err = d.decodePair(r)
		case IDCCE:
			e, err = d.decodeCoupling(r)
		case IDDSE:
			e, err = d.decodeDataStream(r)
		case IDPCE:
			e, err = d.decodeProgramConfig(r)
		case IDFIL:
			e, err = d.decodeFill(r, prev)
		}
		if err != nil {
			return fmt.Errorf("%s element: %w", id, err)
		}
		if r.Error() {
			return ErrBitstreamError
		}
		d.add(e, r)
		prev = e
	}
}

func (d *Dispatcher) decodeER(r BitReader) error {
	cc := d.cfg.ChannelConfiguration
	if int(cc) >= len(erSequences) || erSequences[cc] == nil {
		return &UnsupportedChannelConfigurationError{Config: cc}
	}
	for _, id := range erSequences[cc] {
		var (
			e   Element
			err error
		)
		if id == IDCPE {
			e, err = d.decodePair(r)
		} else {
			e, err = d.decodeSingle(r, id == IDLFE)
		}
		if err != nil {
			return fmt.Errorf("%s element: %w", id, err)
		}
		if r.Error() {
			return ErrBitstreamError
		}
		d.add(e, r)
	}
	return nil
}

func (d *Dispatcher) add(e Element, r BitReader) {
	d.cursor.Elements = append(d.cursor.Elements, e)
	d.log.Debug().
		Stringer("element", e.Kind()).
		Int("index", len(d.cursor.Elements)-1).
		Int("bit", r.Position()).
		Msg("decoded element")
}

func (d *Dispatcher) streamConfig() StreamConfig {
	return StreamConfig{
		SFIndex:     d.cfg.SFIndex,
		FrameLength: d.cfg.FrameLength,
		ObjectType:  d.cfg.Profile,
		Codebooks:   d.codebooks,
	}
}

func (d *Dispatcher) channelSlot(id ElementID) (int, error) {
	i := d.cursor.Channels
	if i >= MaxChannelElements {
		return 0, &TooManyElementsError{Kind: id, Capacity: MaxChannelElements}
	}
	d.cursor.Channels++
	return i, nil
}

func (d *Dispatcher) decodeSingle(r BitReader, lfe bool) (Element, error) {
	id := IDSCE
	if lfe {
		id = IDLFE
	}
	i, err := d.channelSlot(id)
	if err != nil {
		return nil, err
	}
	s := d.store.single(i)
	s.LFE = lfe
	sc := d.streamConfig()
	if err := ParseSingle(r, s, &sc); err != nil {
		return nil, err
	}
	d.cursor.OutputChannels++
	return s, nil
}

func (d *Dispatcher) decodePair(r BitReader) (Element, error) {
	i, err := d.channelSlot(IDCPE)
	if err != nil {
		return nil, err
	}
	p := d.store.pair(i)
	sc := d.streamConfig()
	if err := ParsePair(r, p, &sc); err != nil {
		return nil, err
	}
	d.cursor.OutputChannels += 2
	return p, nil
}

func (d *Dispatcher) decodeCoupling(r BitReader) (Element, error) {
	if d.cursor.Couplings >= MaxElements {
		return nil, &TooManyElementsError{Kind: IDCCE, Capacity: MaxElements}
	}
	c := &d.store.couplings[d.cursor.Couplings]
	d.cursor.Couplings++
	sc := d.streamConfig()
	if err := ParseCoupling(r, c, &sc); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *Dispatcher) decodeDataStream(r BitReader) (Element, error) {
	if d.cursor.Streams >= MaxElements {
		return nil, &TooManyElementsError{Kind: IDDSE, Capacity: MaxElements}
	}
	s := &d.store.streams[d.cursor.Streams]
	d.cursor.Streams++
	ParseDataStream(r, s)
	return s, nil
}

// decodeProgramConfig parses a program config element and applies its
// profile, sample rate and layout to the decoder configuration.
func (d *Dispatcher) decodeProgramConfig(r BitReader) (Element, error) {
	p := &d.store.pce
	if err := ParseProgramConfig(r, p); err != nil {
		return nil, err
	}

	d.cfg.Profile = config.ObjectType(p.ObjectType + 1)
	d.cfg.SFIndex = p.SFIndex
	if cc, ok := config.ChannelConfigurationFor(int(p.Channels)); ok {
		d.cfg.ChannelConfiguration = cc
		d.cfg.PCEChannels = 0
	} else {
		d.cfg.ChannelConfiguration = 0
		d.cfg.PCEChannels = int(p.Channels)
	}
	d.log.Debug().
		Uint8("profile", uint8(d.cfg.Profile)).
		Uint8("sf_index", d.cfg.SFIndex).
		Uint8("channels", p.Channels).
		Msg("program config applied")
	return p, nil
}

// decodeFill parses a fill element. SBR payloads go to the SBR decoder
// of prev when prev is a channel element.
//
// Ported from: fill_element() in ~/dev/faad2/libfaad/syntax.c:1110-1200
func (d *Dispatcher) decodeFill(r BitReader, prev Element) (Element, error) {
	if d.cursor.Fills >= MaxElements {
		return nil, &TooManyElementsError{Kind: IDFIL, Capacity: MaxElements}
	}
	f := &d.store.fills[d.cursor.Fills]
	d.cursor.Fills++
	*f = Fill{}

	count := fillCount(r)
	if count <= 0 {
		return f, nil
	}

	typ := ExtensionType(r.GetBits(4))
	if typ == ExtSBRData || typ == ExtSBRDataCRC {
		if err := d.decodeSBR(r, f, prev, typ == ExtSBRDataCRC, count*8-4); err != nil {
			return nil, err
		}
		return f, nil
	}

	parseExtensionPayloads(r, f, typ, count, &d.drc)
	return f, nil
}

func (d *Dispatcher) decodeSBR(r BitReader, f *Fill, prev Element, crc bool, bits int) error {
	var (
		slot   *SBR
		stereo bool
	)
	switch e := prev.(type) {
	case *Single:
		slot = &e.SBR
	case *Pair:
		slot, stereo = &e.SBR, true
	}
	if slot == nil || d.sbr == nil {
		if slot == nil {
			d.log.Warn().Msg("SBR payload without preceding channel element, skipped")
		} else {
			d.log.Debug().Int("bits", bits).Msg("no SBR decoder configured, payload skipped")
		}
		skipBits(r, bits)
		return nil
	}

	if *slot == nil {
		s, err := d.sbr(stereo, d.cfg)
		if err != nil {
			return fmt.Errorf("create SBR decoder: %w", err)
		}
		*slot = s
	}
	payload := r.GetBitBuffer(uint(bits))
	if err := (*slot).Decode(payload, bits, crc); err != nil {
		return err
	}

	f.SBR = true
	d.cursor.SBRPresent = true
	if (*slot).PSUsed() {
		d.cursor.PSPresent = true
	}
	return nil
}
