// Copyright 2025 The similar authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package nlargest selects the n largest elements of a slice without sorting
// all of it.
package nlargest

import "container/heap"

// Take returns the n largest elements of items in descending order,
// according to cmp. It keeps a min-heap of at most n elements, so it runs in
// O(len(items) * log n) and never retains more than n items.
func Take[T any](n int, items []T, cmp func(a, b T) int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	h := &minHeap[T]{cmp: cmp}
	for _, it := range items {
		if h.Len() < n {
			heap.Push(h, it)
		} else if cmp(it, h.items[0]) > 0 {
			h.items[0] = it
			heap.Fix(h, 0)
		}
	}
	// Popping the min-heap yields ascending order; fill back to front.
	out := make([]T, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(T)
	}
	return out
}

type minHeap[T any] struct {
	items []T
	cmp   func(a, b T) int
}

func (h *minHeap[T]) Len() int           { return len(h.items) }
func (h *minHeap[T]) Less(i, j int) bool { return h.cmp(h.items[i], h.items[j]) < 0 }
func (h *minHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *minHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *minHeap[T]) Pop() any {
	it := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return it
}
