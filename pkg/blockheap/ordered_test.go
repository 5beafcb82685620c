package blockheap

import "testing"

func TestOrderedHeapPushAndPopBlock(t *testing.T) {
	h := NewOrderedHeap[float64](4)
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

func TestOrderedHeapDecreaseKey(t *testing.T) {
	h := NewOrderedHeap[float64](4)
	h.Push(0, 10.0)
	h.Push(0, 5.0)
	h.Push(0, 8.0) // no-op: larger than current key

	block := h.PopBlock(1)
	if len(block) != 1 || block[0].Key != 5.0 {
		t.Fatalf("block = %+v, want single entry key 5.0", block)
	}
}

func TestOrderedHeapTieBreakByVertex(t *testing.T) {
	h := NewOrderedHeap[float64](4)
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

func TestOrderedHeapReset(t *testing.T) {
	h := NewOrderedHeap[float64](4)
	h.Push(0, 1.0)
	h.Reset()
	if !h.IsEmpty() {
		t.Fatal("IsEmpty: want true after Reset")
	}
}
