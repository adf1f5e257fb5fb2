package gotreesitter

import (
	"sync"
	"unsafe"
)

const (
	// incrementalArenaSlab sizes chunks for trees that mostly reuse nodes,
	// where each edit appends only a small frontier.
	incrementalArenaSlab = 16 * 1024
	// fullParseArenaSlab sizes chunks for fresh parses of whole documents.
	fullParseArenaSlab = 256 * 1024
	minArenaNodeCap    = 64

	// An arena is replaced once it holds arenaCompactRatio times the nodes
	// of the full parse that started it, and at least arenaCompactMin.
	arenaCompactRatio = 4
	arenaCompactMin   = 4096
)

type arenaClass uint8

const (
	arenaClassIncremental arenaClass = iota
	arenaClassFull
)

// NodeID addresses a node inside the arena shared by a lineage of trees.
// The zero ID is never a valid node.
type NodeID uint32

type stateID uint32

// chunkList is an append-only list split into fixed-size chunks. Entries
// never move once written, so a chunkView taken earlier stays readable while
// later entries are appended.
type chunkList[T any] struct {
	chunkLen uint32
	chunks   [][]T
	n        uint32
}

func newChunkList[T any](chunkLen uint32) chunkList[T] {
	if chunkLen < minArenaNodeCap {
		chunkLen = minArenaNodeCap
	}
	return chunkList[T]{chunkLen: chunkLen}
}

func (c *chunkList[T]) add(v T) uint32 {
	ci := c.n / c.chunkLen
	if int(ci) == len(c.chunks) {
		c.chunks = append(c.chunks, make([]T, c.chunkLen))
	}
	c.chunks[ci][c.n%c.chunkLen] = v
	id := c.n
	c.n++
	return id
}

func (c *chunkList[T]) at(i uint32) *T {
	return &c.chunks[i/c.chunkLen][i%c.chunkLen]
}

func (c *chunkList[T]) view() chunkView[T] {
	return chunkView[T]{chunkLen: c.chunkLen, chunks: c.chunks, n: c.n}
}

// chunkView is a read-only snapshot of a chunkList.
type chunkView[T any] struct {
	chunkLen uint32
	chunks   [][]T
	n        uint32
}

func (v chunkView[T]) at(i uint32) *T {
	return &v.chunks[i/v.chunkLen][i%v.chunkLen]
}

func (v chunkView[T]) len() uint32 { return v.n }

// nodeArena is the index-addressed store behind a lineage of trees. A full
// parse creates an arena; edits and incremental parses of the resulting
// trees append to it, so unchanged subtrees are shared by ID instead of
// copied. Scanner states are interned alongside the nodes.
//
// Appends are serialized by mu. Trees read through views captured at
// creation and never take the lock.
type nodeArena struct {
	mu sync.Mutex

	class  arenaClass
	nodes  chunkList[subtree]
	states chunkList[ScannerState]

	stateIDs  map[ScannerState]stateID
	lastState ScannerState
	lastID    stateID
	hasLast   bool

	// baseline is the node count right after the full parse that filled
	// the arena.
	baseline uint32
}

func nodeCapacityForBytes(slabBytes int) uint32 {
	nodeSize := int(unsafe.Sizeof(subtree{}))
	if nodeSize <= 0 {
		return minArenaNodeCap
	}
	capacity := slabBytes / nodeSize
	if capacity < minArenaNodeCap {
		return minArenaNodeCap
	}
	return uint32(capacity)
}

func newNodeArena(class arenaClass) *nodeArena {
	slab := fullParseArenaSlab
	if class == arenaClassIncremental {
		slab = incrementalArenaSlab
	}
	a := &nodeArena{
		class:    class,
		nodes:    newChunkList[subtree](nodeCapacityForBytes(slab)),
		states:   newChunkList[ScannerState](minArenaNodeCap),
		stateIDs: make(map[ScannerState]stateID),
	}
	// Reserve ID 0 for the null node.
	a.nodes.add(subtree{})
	return a
}

// allocNode appends n and returns its ID. Callers hold mu.
func (a *nodeArena) allocNode(n subtree) NodeID {
	return NodeID(a.nodes.add(n))
}

// node returns the writable record for id. Callers hold mu and only touch
// nodes they allocated in the current operation.
func (a *nodeArena) node(id NodeID) *subtree {
	return a.nodes.at(uint32(id))
}

// internState returns the ID of s, adding it if it is new. Callers hold mu.
func (a *nodeArena) internState(s ScannerState) stateID {
	if a.hasLast && a.lastState == s {
		return a.lastID
	}
	id, ok := a.stateIDs[s]
	if !ok {
		id = stateID(a.states.add(s))
		a.stateIDs[s] = id
	}
	a.lastState = s
	a.lastID = id
	a.hasLast = true
	return id
}

// overgrown reports whether edits and reparses have appended enough nodes
// that the next parse should start a fresh arena. The old arena is released
// once no tree refers to it.
func (a *nodeArena) overgrown() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nodes.n > arenaCompactMin && a.nodes.n > arenaCompactRatio*a.baseline
}

// Len reports the number of nodes allocated in the arena.
func (a *nodeArena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int(a.nodes.n)
}
