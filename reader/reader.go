package reader

import (
	"errors"

	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/cache"
	"github.com/go-e57/e57reader/decoder"
	"github.com/go-e57/e57reader/errs"
	"github.com/go-e57/e57reader/internal/options"
	"github.com/go-e57/e57reader/proto"
	"github.com/go-e57/e57reader/section"
)

// errNoMorePackets signals that packet-header scanning reached the end of
// the section without finding another DATA packet. It never escapes the
// package: armNextPacket translates it into the owning channel's
// inputFinished flag.
var errNoMorePackets = errors.New("reader: no more data packets in section")

// wrapContext attaches the image file path, CompressedVector path, and a
// short diagnostic string to a non-nil failure, so every error this
// package surfaces to a caller carries the context a user needs to locate
// it in the file. It returns nil unchanged.
func wrapContext(err error, imageFileName, cvPathName, context string) error {
	if err == nil {
		return nil
	}

	return errs.NewContextError(err, imageFileName, cvPathName, context)
}

// Reader drives one CompressedVector section's decode pipeline: it owns the
// packet cache, one channel per bound field, and the packet-header scan
// position each channel advances independently.
type Reader struct {
	imf   *ImageFile
	proto *proto.Prototype
	cache *cache.Cache

	channels []*channel
	bindings []*binding.Binding

	sectionEndLogicalOffset int64

	isOpen bool
}

// OpenReader opens a CompressedVectorReader over the section whose header
// starts at sectionLogicalOffset, bound to prototype and to bindings.
//
// bindings need not cover every prototype terminal: fields with no bound
// buffer get no channel and are not decoded. Every bound path must
// exist in prototype, and every bound representation must match its
// terminal's native representation unless the binding opts into conversion,
// per proto.Prototype.CheckBuffers.
func OpenReader(imf *ImageFile, sectionLogicalOffset int64, prototype *proto.Prototype, bindings []*binding.Binding, opts ...Option) (*Reader, error) {
	if imf == nil || prototype == nil {
		return nil, wrapContext(errs.ErrBadAPIArgument, "", "", "open reader: nil image file or prototype")
	}

	if err := imf.checkOpen(); err != nil {
		return nil, wrapContext(err, imf.Path(), "", "open reader: image file")
	}

	if err := prototype.CheckBuffers(bindings, true); err != nil {
		return nil, wrapContext(err, imf.Path(), "", "open reader: check buffers")
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, wrapContext(err, imf.Path(), "", "open reader: apply options")
	}

	var hdrBuf [section.SectionHeaderSize]byte
	if err := imf.cursor.ReadLogical(sectionLogicalOffset, hdrBuf[:]); err != nil {
		return nil, wrapContext(err, imf.Path(), "", "open reader: read section header")
	}

	hdr, err := section.ParseCompressedVectorSectionHeader(hdrBuf[:])
	if err != nil {
		return nil, wrapContext(err, imf.Path(), "", "open reader: parse section header")
	}

	if err := hdr.Verify(uint64(imf.cursor.LengthPhysical())); err != nil {
		return nil, wrapContext(err, imf.Path(), "", "open reader: verify section header")
	}

	dataLogicalOffset := imf.cursor.PhysicalToLogical(int64(hdr.DataPhysicalOffset))

	boundBindings := make([]*binding.Binding, len(bindings))
	copy(boundBindings, bindings)

	r := &Reader{
		imf:                     imf,
		proto:                   prototype,
		cache:                   cache.New(imf.cursor, cfg.cacheSlots),
		bindings:                boundBindings,
		sectionEndLogicalOffset: sectionLogicalOffset + int64(hdr.SectionLogicalLength),
		isOpen:                  true,
	}

	for _, b := range boundBindings {
		idx, ok := prototype.FindTerminalPosition(b.Path())
		if !ok {
			return nil, wrapContext(errs.ErrNoBufferForElement, imf.Path(), b.Path(), "open reader: bind unknown path")
		}

		term, err := prototype.Terminal(idx)
		if err != nil {
			return nil, wrapContext(err, imf.Path(), b.Path(), "open reader: terminal lookup")
		}

		dec, err := decoder.New(term, b)
		if err != nil {
			return nil, wrapContext(err, imf.Path(), b.Path(), "open reader: build decoder")
		}

		r.channels = append(r.channels, &channel{
			bytestreamIndex: idx,
			binding:         b,
			decoder:         dec,
			scanOffset:      dataLogicalOffset,
		})
	}

	imf.incrReaderCount()

	return r, nil
}

// Read rewinds every bound buffer and fills it with as many records as fit,
// returning the number of records written. All bound buffers receive the
// same count; a skew between channels fails with errs.ErrInternal, which
// should never happen through the public API.
//
// If bindings is non-empty, it replaces the reader's buffer set for this
// call and every subsequent one: it must be compatible with the set the
// reader was opened with (same count, same path and representation per
// index, in order), per binding.CheckSetCompatible. An incompatible set
// fails with errs.ErrBuffersNotCompatible and leaves the reader's existing
// buffers untouched.
func (r *Reader) Read(bindings ...*binding.Binding) (int, error) {
	if err := r.checkOpen(); err != nil {
		return 0, wrapContext(err, r.imf.Path(), "", "read: reader not open")
	}

	if len(bindings) > 0 {
		if err := binding.CheckSetCompatible(r.bindings, bindings); err != nil {
			return 0, wrapContext(err, r.imf.Path(), "", "read: replacement buffers not compatible")
		}

		for i, b := range bindings {
			if err := r.bindings[i].Rebind(b); err != nil {
				return 0, wrapContext(err, r.imf.Path(), r.bindings[i].Path(), "read: rebind buffer")
			}
		}
	} else {
		for _, b := range r.bindings {
			b.Rewind()
		}
	}

	for _, ch := range r.channels {
		if _, ok := ch.constantDecoder(); ok || ch.inputFinished {
			continue
		}

		if _, err := ch.decoder.InputProcess(nil); err != nil {
			return 0, wrapContext(err, r.imf.Path(), ch.binding.Path(), "read: drain decoder")
		}
	}

	for _, ch := range r.channels {
		if _, ok := ch.constantDecoder(); ok {
			continue
		}

		if err := r.feedChannel(ch); err != nil {
			return 0, wrapContext(err, r.imf.Path(), ch.binding.Path(), "read: feed channel")
		}
	}

	target := r.constantTarget()
	for _, ch := range r.channels {
		cd, ok := ch.constantDecoder()
		if !ok {
			continue
		}

		cd.LimitTo(target)
		if _, err := cd.InputProcess(nil); err != nil {
			return 0, wrapContext(err, r.imf.Path(), ch.binding.Path(), "read: constant decoder")
		}
	}

	return r.outputCount()
}

// constantTarget returns the number of records every constant-valued
// channel should emit this Read call. A constant field's bytestream is
// zero-length in every DATA packet, so it carries no record count of its
// own to learn; instead it must match whatever count the section's
// data-bearing channels actually produced this call, including on a
// final, less-than-capacity batch. When every bound channel is constant
// (no data-bearing field is bound at all), there is nothing to learn the
// count from, so the first constant channel's buffer capacity is used.
func (r *Reader) constantTarget() int {
	for _, ch := range r.channels {
		if _, ok := ch.constantDecoder(); !ok {
			return ch.binding.NextIndex()
		}
	}

	for _, ch := range r.channels {
		if _, ok := ch.constantDecoder(); ok {
			return ch.binding.Capacity()
		}
	}

	return 0
}

// feedChannel drives one channel's decoder until its bound buffer is full
// (IsOutputBlocked) or the section runs out of DATA packets for it.
func (r *Reader) feedChannel(ch *channel) error {
	if ch.inputFinished {
		return nil
	}

	for !ch.decoder.IsOutputBlocked() {
		if ch.exhaustedCurrentPacket() {
			if err := r.armNextPacket(ch); err != nil {
				if errors.Is(err, errNoMorePackets) {
					ch.inputFinished = true
					return nil
				}

				return err
			}
		}

		payload, err := ch.packet.GetBytestream(ch.bytestreamIndex)
		if err != nil {
			return err
		}

		consumed, err := ch.decoder.InputProcess(payload[ch.currentBytestreamBufferIndex:])
		if err != nil {
			return err
		}
		ch.currentBytestreamBufferIndex += consumed

		if consumed == 0 && !ch.decoder.IsOutputBlocked() && !ch.exhaustedCurrentPacket() {
			return errs.ErrBadCVPacket
		}
	}

	return nil
}

// armNextPacket advances ch past INDEX and EMPTY packets, locking and
// arming the next DATA packet it finds. It returns errNoMorePackets once
// scanning reaches the end of the section.
func (r *Reader) armNextPacket(ch *channel) error {
	ch.releasePacket()

	for {
		if ch.scanOffset >= r.sectionEndLogicalOffset {
			return errNoMorePackets
		}

		var hdrBuf [section.PacketHeaderSize]byte
		if err := r.imf.cursor.ReadLogical(ch.scanOffset, hdrBuf[:]); err != nil {
			return err
		}

		hdr, err := section.ParsePacketHeader(hdrBuf[:])
		if err != nil {
			return err
		}

		if hdr.Type != section.PacketTypeData {
			ch.scanOffset += int64(hdr.Length())
			continue
		}

		payload, guard, err := r.cache.Lock(ch.scanOffset)
		if err != nil {
			return err
		}

		dp, err := section.ParseDataPacket(payload, r.proto.TerminalCount())
		if err != nil {
			guard.Release()
			return err
		}

		length, err := dp.GetBytestreamBufferLength(ch.bytestreamIndex)
		if err != nil {
			guard.Release()
			return err
		}

		ch.scanOffset += int64(hdr.Length())
		ch.packet = dp
		ch.guard = guard
		ch.currentBytestreamBufferIndex = 0
		ch.currentBytestreamBufferLength = length

		return nil
	}
}

// outputCount returns the write cursor shared by every bound buffer.
func (r *Reader) outputCount() (int, error) {
	if len(r.bindings) == 0 {
		return 0, nil
	}

	n := r.bindings[0].NextIndex()
	for i, b := range r.bindings[1:] {
		if b.NextIndex() != n {
			ctxErr := errs.NewContextError(errs.ErrInternal, r.imf.Path(), b.Path(), "read: channel output count skew")
			return 0, ctxErr.WithIntContext(i + 1)
		}
	}

	return n, nil
}

// Seek is not implemented: record-indexed seeking within a CompressedVector
// section requires the INDEX packet chain, which this read pipeline does
// not parse.
func (r *Reader) Seek(recordNumber int64) error {
	if err := r.checkOpen(); err != nil {
		return wrapContext(err, r.imf.Path(), "", "seek: reader not open")
	}

	return wrapContext(errs.ErrNotImplemented, r.imf.Path(), "", "seek: record-indexed seeking unsupported")
}

// IsOpen reports whether the reader is still open.
func (r *Reader) IsOpen() bool {
	return r.isOpen
}

// Close releases the reader's hold on its image file and every packet it
// still has locked. Calling Close more than once is a no-op after the
// first: ErrReaderNotOpen is reserved for Read/Seek on a closed reader.
//
// The image file's reader count is decremented before Close checks that
// the image file is still open; if it is not, Close releases its packets
// and fails with errs.ErrImageFileNotOpen.
func (r *Reader) Close() error {
	if !r.isOpen {
		return nil
	}
	r.isOpen = false

	r.imf.decrReaderCount()

	for _, ch := range r.channels {
		ch.releasePacket()
	}

	if err := r.imf.checkOpen(); err != nil {
		return wrapContext(err, r.imf.Path(), "", "close: image file not open")
	}

	return nil
}

func (r *Reader) checkOpen() error {
	if !r.isOpen {
		return errs.ErrReaderNotOpen
	}

	return r.imf.checkOpen()
}
