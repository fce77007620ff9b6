// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"container/heap"

	"github.com/emer/tablesnn/neuron"
	"github.com/goki/ki/kit"
)

// EventKinds are the kinds of events processed by the simulation
type EventKinds int32

//go:generate stringer -type=EventKinds

var KiT_EventKinds = kit.Enums.AddEnum(EventKindsN, kit.NotBitFlag, nil)

func (ev EventKinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EventKinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The event kinds
const (
	// SpikeEvent is a spike predicted by the model of a neuron for itself.
	// It is stale if the neuron state changed since it was predicted.
	SpikeEvent EventKinds = iota

	// InputEvent is an external input spike emitted by a neuron:
	// its outgoing synapses are delivered, its own state is unchanged.
	InputEvent

	// SynapseEvent is the arrival of a spike at the target of a synapse.
	SynapseEvent

	EventKindsN
)

// Item is one entry of the event queue.
type Item struct {
	Kind EventKinds

	// the spike for SpikeEvent and InputEvent, the arrival time for SynapseEvent
	Event neuron.Event

	// synapse delivering the spike, for SynapseEvent
	Syn *neuron.Synapse

	// insertion sequence number, ordering items at the same time
	seq uint64
}

// Time returns the time at which the item is processed.
func (it *Item) Time() float64 { return it.Event.Time }

// Queue is the global event queue: items come out in nondecreasing time
// order, items at the same time in insertion order.
type Queue struct {
	items itemHeap
	seq   uint64
}

// Reset removes all the items.
func (q *Queue) Reset() {
	q.items = q.items[:0]
	q.seq = 0
}

// Len returns the number of pending items.
func (q *Queue) Len() int { return len(q.items) }

// Push inserts an item.
func (q *Queue) Push(it Item) {
	it.seq = q.seq
	q.seq++
	heap.Push(&q.items, it)
}

// Pop removes and returns the earliest item. The queue must not be empty.
func (q *Queue) Pop() Item {
	return heap.Pop(&q.items).(Item)
}

// Peek returns the earliest item without removing it.
func (q *Queue) Peek() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// itemHeap implements heap.Interface
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Event.Time != h[j].Event.Time {
		return h[i].Event.Time < h[j].Event.Time
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(Item)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
