package pool

import "testing"

func TestBytePoolRecyclesEmpty(t *testing.T) {
	bp := NewBytePool(64, 128)
	buf := bp.GetBuffer()
	if len(*buf) != 0 || cap(*buf) < 64 {
		t.Fatalf("new buffer len=%d cap=%d", len(*buf), cap(*buf))
	}
	*buf = append(*buf, "GET / HTTP/1.1\r\n"...)
	bp.PutBuffer(buf)

	again := bp.GetBuffer()
	if len(*again) != 0 {
		t.Errorf("recycled buffer not reset: len=%d", len(*again))
	}
}

func TestBytePoolDropsOversized(t *testing.T) {
	bp := NewBytePool(8, 8)
	buf := bp.GetBuffer()
	*buf = append(*buf, make([]byte, 100)...)
	bp.PutBuffer(buf) // dropped, must not panic
	bp.PutBuffer(nil)

	if got := cap(*bp.GetBuffer()); got > 8 {
		t.Errorf("oversized buffer was recycled: cap=%d", got)
	}
}

func TestSyncPoolReset(t *testing.T) {
	sp := NewSyncPool(func() []int { return make([]int, 0, 4) }, func(s []int) []int { return s[:0] })
	s := sp.Get()
	s = append(s, 1, 2, 3)
	sp.Put(s)
	if got := sp.Get(); len(got) != 0 {
		t.Errorf("len = %d", len(got))
	}
}
