package nbt

import (
	"container/list"
	"time"

	"github.com/ubiqx-org/carnaval"
)

const (
	defragMinTimeoutMS = 250
	defragMaxTimeoutMS = 65535
	defragDefaultMS    = 5000
	defragDefaultCheck = 2
)

// fragTuple is one (offset, nextOffset, bytes) piece of a fragment set
// (spec.md §3.3). nextOffset is 0 when the tuple is terminal — it was built
// from a fragment whose More flag was clear, so no further fragment is
// expected to extend it. A fragment set is complete exactly when it reduces
// to a single tuple (0, 0, bytes).
type fragTuple struct {
	offset     int
	nextOffset int
	data       []byte
}

// fragSet accumulates fragTuples for one in-flight fragmented datagram,
// keyed by everything in the header except First/More (fragKey).
//
// key is stored on the entry itself (not recovered from the LRU node) so
// that eviction never has to reach through a node back to a key field that
// doesn't exist — the defect noted in the original Python's checkTimeout,
// which reads a nonexistent node.key (SPEC_FULL.md §12).
type fragSet struct {
	key      string
	tuples   []fragTuple
	srcName  *Name
	dstName  *Name
	lastSeen time.Time
	elem     *list.Element
}

// Defrag reassembles fragmented Datagram Service messages (spec.md §3.3),
// evicting the least-recently-touched in-flight fragment set once it has
// been idle longer than its timeout. Grounded on
// NBT_DatagramService.py's Defrag/dLinkedList, reworked from Python's
// hand-rolled doubly linked list + dict into container/list plus a map of
// *list.Element.
//
// A Defrag is not safe for concurrent use; callers serialize access to it
// themselves.
type Defrag struct {
	timeout  time.Duration
	ckCount  int
	sets     map[string]*list.Element // key -> element whose Value is *fragSet
	lru      *list.List               // front = most recently touched
	log      carnaval.Logger          // nil means no tracing
}

// DefragOption configures a Defrag pool.
type DefragOption func(*Defrag)

// WithTimeout sets the idle timeout (clamped to [250ms, 65535ms], spec.md
// §6.4) after which an incomplete fragment set is evicted.
func WithTimeout(d time.Duration) DefragOption {
	return func(p *Defrag) {
		ms := d.Milliseconds()
		if ms < defragMinTimeoutMS {
			ms = defragMinTimeoutMS
		}
		if ms > defragMaxTimeoutMS {
			ms = defragMaxTimeoutMS
		}
		p.timeout = time.Duration(ms) * time.Millisecond
	}
}

// WithCheckCount sets how many expired fragment sets AddFrag evicts per
// call before giving up early (spec.md §6.4's defrag_check_count).
func WithCheckCount(n int) DefragOption {
	return func(p *Defrag) {
		if n > 0 {
			p.ckCount = n
		}
	}
}

// WithLogger attaches a Logger that traces fragment-set eviction and
// reassembly completion. A nil Logger (the default) disables tracing.
func WithLogger(l carnaval.Logger) DefragOption {
	return func(p *Defrag) { p.log = l }
}

// NewDefrag creates an empty defragmentation pool.
func NewDefrag(opts ...DefragOption) *Defrag {
	p := &Defrag{
		timeout: defragDefaultMS * time.Millisecond,
		ckCount: defragDefaultCheck,
		sets:    make(map[string]*list.Element),
		lru:     list.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddFrag feeds one raw Datagram Service fragment into the pool. It returns
// a completed Datagram when frag was the piece that finished reassembly,
// nil otherwise. now is the caller-supplied current time (kept an explicit
// parameter rather than time.Now(), per this package's no-internal-clock,
// no-internal-synchronization design — spec.md §5).
func (p *Defrag) AddFrag(frag *DSFragment, now time.Time) (*Datagram, error) {
	key := frag.Header.fragKey()
	next := 0
	if frag.Header.More {
		next = int(frag.Offset) + len(frag.Fragment)
	}
	t := fragTuple{offset: int(frag.Offset), nextOffset: next, data: frag.Fragment}

	elem, exists := p.sets[key]
	var set *fragSet
	if exists {
		set = elem.Value.(*fragSet)
	} else {
		set = &fragSet{key: key, srcName: frag.SrcName, dstName: frag.DstName}
	}

	merged, ok := fsAddFrag(set.tuples, t)
	if !ok {
		// Invariant violation (overlap or conflicting fragment): drop the
		// whole fragment set rather than risk assembling corrupt data.
		if exists {
			p.lru.Remove(elem)
			delete(p.sets, key)
		}
		p.expireOldSets(now)
		return nil, errMalformed("overlapping or conflicting datagram fragment", key)
	}

	if len(merged) == 1 && merged[0].offset == 0 && merged[0].nextOffset == 0 {
		if exists {
			p.lru.Remove(elem)
			delete(p.sets, key)
		}
		p.expireOldSets(now)
		if p.log != nil {
			p.log.Debug("datagram reassembled: key=%s bytes=%d", key, len(merged[0].data))
		}
		return &Datagram{
			Header:   frag.Header,
			SrcName:  set.srcName,
			DstName:  set.dstName,
			UserData: merged[0].data,
		}, nil
	}

	set.tuples = merged
	set.lastSeen = now
	if exists {
		p.lru.MoveToFront(elem)
	} else {
		set.elem = p.lru.PushFront(set)
		p.sets[key] = set.elem
	}
	p.expireOldSets(now)
	return nil, nil
}

// expireOldSets evicts up to ckCount idle fragment sets from the LRU tail,
// stopping at the first one that has not yet timed out.
func (p *Defrag) expireOldSets(now time.Time) {
	for i := 0; i < p.ckCount; i++ {
		back := p.lru.Back()
		if back == nil {
			return
		}
		set := back.Value.(*fragSet)
		if now.Sub(set.lastSeen) <= p.timeout {
			return
		}
		p.lru.Remove(back)
		delete(p.sets, set.key)
		if p.log != nil {
			p.log.Warn("evicting idle datagram fragment set: key=%s fragments=%d", set.key, len(set.tuples))
		}
	}
}

// Len reports how many fragment sets are currently in flight.
func (p *Defrag) Len() int { return len(p.sets) }

// fsAddFrag inserts t into tuples (kept sorted by offset), merging it with
// its immediate right and/or left neighbor when the offsets align exactly.
// Grounded on NBT_DatagramService.py's _fsAddFrag: ok is false whenever an
// immediate neighbor is terminal (nextOffset == 0) or the merge would
// overlap it — the original rejects a terminal neighbor unconditionally,
// even when the two tuples' byte ranges don't overlap, because two
// disjoint terminal fragments can never belong to the same datagram.
func fsAddFrag(tuples []fragTuple, t fragTuple) ([]fragTuple, bool) {
	rest := append([]fragTuple(nil), tuples...)
	if len(rest) == 0 {
		return []fragTuple{t}, true
	}

	i := 0
	for i < len(rest) && rest[i].offset < t.offset {
		i++
	}

	// Right neighbor (rest[i], if present): merge on an exact offset match;
	// otherwise reject if it's terminal or the new tuple would overrun it.
	if i < len(rest) {
		right := rest[i]
		switch {
		case t.nextOffset != 0 && t.nextOffset == right.offset:
			t = fragTuple{offset: t.offset, nextOffset: right.nextOffset, data: append(append([]byte{}, t.data...), right.data...)}
			rest = removeAt(rest, i)
		case t.nextOffset == 0 || t.nextOffset > right.offset:
			return nil, false
		}
	}

	// Left neighbor (rest[i-1], if present): same rule, mirrored.
	if i > 0 {
		left := rest[i-1]
		switch {
		case left.nextOffset == t.offset:
			t = fragTuple{offset: left.offset, nextOffset: t.nextOffset, data: append(append([]byte{}, left.data...), t.data...)}
			rest = removeAt(rest, i-1)
		case left.nextOffset == 0 || left.nextOffset > t.offset:
			return nil, false
		}
	}

	out := append(rest, t)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].offset > out[j].offset; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out, true
}

func removeAt(s []fragTuple, i int) []fragTuple {
	return append(s[:i], s[i+1:]...)
}
