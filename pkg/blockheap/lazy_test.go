package blockheap

import "testing"

func TestLazyHeapPushAndPopBlock(t *testing.T) {
	h := NewLazyHeap[float64](4)
	h.Push(0, 5.0)
	h.Push(1, 3.0)
	h.Push(2, 4.0)

	block := h.PopBlock(2)
	if len(block) != 2 {
		t.Fatalf("len(block) = %d, want 2", len(block))
	}
	if block[0].Vertex != 1 || block[0].Key != 3.0 {
		t.Fatalf("block[0] = %+v, want vertex 1 key 3.0", block[0])
	}
	if block[1].Vertex != 2 || block[1].Key != 4.0 {
		t.Fatalf("block[1] = %+v, want vertex 2 key 4.0", block[1])
	}
}

func TestLazyHeapDecreaseKeyStale(t *testing.T) {
	h := NewLazyHeap[float64](4)
	h.Push(0, 10.0)
	h.Push(0, 5.0) // decrease-key: stamps a fresh version, old entry goes stale
	h.Push(0, 8.0) // must not apply: 8.0 > current key 5.0

	if _, ok := h.MinKey(); !ok {
		t.Fatal("MinKey: want ok")
	}
	block := h.PopBlock(1)
	if len(block) != 1 || block[0].Key != 5.0 {
		t.Fatalf("block = %+v, want single entry key 5.0", block)
	}
	if !h.IsEmpty() {
		t.Fatal("IsEmpty: want true after draining the only vertex")
	}
}

func TestLazyHeapTieBreakByVertex(t *testing.T) {
	h := NewLazyHeap[float64](4)
	h.Push(5, 1.0)
	h.Push(2, 1.0)
	h.Push(8, 1.0)

	block := h.PopBlock(3)
	want := []uint32{2, 5, 8}
	for i, w := range want {
		if block[i].Vertex != w {
			t.Fatalf("block[%d].Vertex = %d, want %d", i, block[i].Vertex, w)
		}
	}
}

func TestLazyHeapCompactsUnderChurn(t *testing.T) {
	h := NewLazyHeap[float64](4)
	h.Push(0, 100.0)
	for i := 99; i >= 1; i-- {
		h.Push(0, float64(i)) // repeated decrease-key churns staleCount past the rebuild threshold
	}
	block := h.PopBlock(1)
	if len(block) != 1 || block[0].Key != 1.0 {
		t.Fatalf("block = %+v, want single entry key 1.0 (final value)", block)
	}
	if !h.IsEmpty() {
		t.Fatal("IsEmpty: want true")
	}
}

func TestLazyHeapReset(t *testing.T) {
	h := NewLazyHeap[float64](4)
	h.Push(0, 1.0)
	h.Push(1, 2.0)
	h.Reset()
	if !h.IsEmpty() {
		t.Fatal("IsEmpty: want true after Reset")
	}
	h.Push(0, 9.0)
	block := h.PopBlock(1)
	if len(block) != 1 || block[0].Key != 9.0 {
		t.Fatalf("block = %+v, want single entry key 9.0 after reuse", block)
	}
}
