// Package cache implements a fixed-slot, LRU packet cache. Each reader
// channel holds at most one packet locked at a time, so several packets can
// be locked at once; the cache hands back a stable payload slice plus a
// guard that releases the slot when the channel moves on. Locking fails
// once every slot is held.
//
// The cache has no internal synchronization: the reader that owns it is
// used from a single goroutine only.
package cache

import (
	"container/list"

	"github.com/go-e57/e57reader/errs"
	"github.com/go-e57/e57reader/section"
)

// Source is the subset of the file cursor the cache needs: reading a run of
// logical bytes at a logical offset.
type Source interface {
	ReadLogical(offset int64, p []byte) error
}

// DefaultSlotCount is the default number of packets the cache holds
// simultaneously.
const DefaultSlotCount = 32

type slot struct {
	offset  int64
	inUse   int
	payload []byte
	elem    *list.Element // position in lru, valid only while the slot holds a cached packet
}

// Cache is a fixed-slot LRU cache of packet payloads keyed by logical
// offset.
type Cache struct {
	source Source
	slots  []*slot
	lru    *list.List          // front = most recently used
	byOff  map[int64]*list.Element
}

// New creates a Cache with the given slot count backed by source. A slots
// value below 1 selects DefaultSlotCount.
func New(source Source, slots int) *Cache {
	if slots < 1 {
		slots = DefaultSlotCount
	}

	c := &Cache{
		source: source,
		slots:  make([]*slot, 0, slots),
		lru:    list.New(),
		byOff:  make(map[int64]*list.Element, slots),
	}

	for i := 0; i < slots; i++ {
		c.slots = append(c.slots, &slot{})
	}

	return c
}

// Guard releases a packet lock acquired via Lock. Release is idempotent.
type Guard struct {
	s        *slot
	released bool
}

// Release decrements the slot's in-use count, making it eligible for
// eviction once it reaches zero. Calling Release more than once is a no-op.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.s.inUse--
}

// Lock fetches the packet at logicalOffset, reading it from the source if
// it is not already cached, and returns its payload along with a guard that
// must be released once the caller is done with the payload.
//
// The returned payload is stable until the guard releases; it must not be
// retained past that point.
func (c *Cache) Lock(logicalOffset int64) ([]byte, *Guard, error) {
	if elem, ok := c.byOff[logicalOffset]; ok {
		s := elem.Value.(*slot)
		c.lru.MoveToFront(elem)
		s.inUse++
		return s.payload, &Guard{s: s}, nil
	}

	s, err := c.evict()
	if err != nil {
		return nil, nil, err
	}

	var header [section.PacketHeaderSize]byte
	if err := c.source.ReadLogical(logicalOffset, header[:]); err != nil {
		return nil, nil, err
	}

	ph, err := section.ParsePacketHeader(header[:])
	if err != nil {
		return nil, nil, err
	}

	payload := growBuffer(s.payload, ph.Length())
	if err := c.source.ReadLogical(logicalOffset, payload); err != nil {
		return nil, nil, err
	}

	s.offset = logicalOffset
	s.payload = payload
	s.inUse = 1

	elem := c.lru.PushFront(s)
	s.elem = elem
	c.byOff[logicalOffset] = elem

	return s.payload, &Guard{s: s}, nil
}

// evict removes the least-recently-used slot with a zero in-use count and
// returns it for reuse. While the cache still has unused capacity, a fresh
// slot is handed out instead of evicting. It fails with
// errs.ErrCacheExhausted if every slot is currently locked.
func (c *Cache) evict() (*slot, error) {
	if len(c.byOff) < len(c.slots) {
		for _, s := range c.slots {
			if s.elem == nil {
				return s, nil
			}
		}
	}

	for e := c.lru.Back(); e != nil; e = e.Prev() {
		s := e.Value.(*slot)
		if s.inUse == 0 {
			c.lru.Remove(e)
			delete(c.byOff, s.offset)
			s.elem = nil
			return s, nil
		}
	}

	return nil, errs.ErrCacheExhausted
}

func growBuffer(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]byte, n)
}
