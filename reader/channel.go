package reader

import (
	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/cache"
	"github.com/go-e57/e57reader/decoder"
	"github.com/go-e57/e57reader/section"
)

// channel bundles one bound field's decoder with the bytestream cursor state
// the drive loop needs to feed it packet by packet.
//
// Each channel tracks its own position independently: because a decoder can
// go output-blocked (its bound buffer fills) before others do, one channel
// may still be drawing from an older DATA packet while another has already
// moved on to the next one. The packet cache, not the channel, is what makes
// that safe — each channel holds its own lock guard on the packet it is
// currently reading from, and packets are only evicted once every guard
// referencing them has released.
type channel struct {
	bytestreamIndex int
	binding         *binding.Binding
	decoder         decoder.Decoder

	// scanOffset is the next logical offset to resume packet-header
	// scanning from once the current packet is exhausted.
	scanOffset int64

	packet *section.DataPacket
	guard  *cache.Guard

	// currentBytestreamBufferIndex is how far into packet's bytestream
	// payload this channel has consumed.
	currentBytestreamBufferIndex int

	// currentBytestreamBufferLength is the total length of packet's
	// payload for this channel's bytestream.
	currentBytestreamBufferLength int

	// inputFinished is set once this channel has scanned past the end of
	// the section without finding another DATA packet.
	inputFinished bool
}

// exhaustedCurrentPacket reports whether this channel has no packet armed,
// or has consumed every byte of its current packet's bytestream payload.
func (ch *channel) exhaustedCurrentPacket() bool {
	return ch.packet == nil || ch.currentBytestreamBufferIndex >= ch.currentBytestreamBufferLength
}

// constantDecoder reports whether this channel's decoder is a
// *decoder.ConstantDecoder, returning it for the reader to drive
// separately from the data-bearing channels.
func (ch *channel) constantDecoder() (*decoder.ConstantDecoder, bool) {
	cd, ok := ch.decoder.(*decoder.ConstantDecoder)
	return cd, ok
}

// releasePacket releases the channel's lock on its current packet, if any.
func (ch *channel) releasePacket() {
	if ch.guard != nil {
		ch.guard.Release()
		ch.guard = nil
	}
	ch.packet = nil
}
