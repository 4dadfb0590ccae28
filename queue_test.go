package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestPriorityQueue_Order(t *testing.T) {
	q := NewPriorityQueue(0)
	q.Insert(10, 5)
	q.Insert(11, 2)
	q.Insert(12, 2)
	q.Insert(13, 1)

	expectDump := strings.Join([]string{
		"PriorityQueue{\n",
		"\t#3: node 13, freq 1\n",
		"\t#1: node 11, freq 2\n",
		"\t#2: node 12, freq 2\n",
		"\t#0: node 10, freq 5\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = q.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	a, b, err := q.ExtractTwoSmallest()
	if err != nil {
		t.Fatalf("ExtractTwoSmallest failed: %v", err)
	}
	if a != 13 || b != 11 {
		t.Errorf("expected nodes 13, 11, got %d, %d", a, b)
	}

	a, b, err = q.ExtractTwoSmallest()
	if err != nil {
		t.Fatalf("ExtractTwoSmallest failed: %v", err)
	}
	if a != 12 || b != 10 {
		t.Errorf("expected nodes 12, 10, got %d, %d", a, b)
	}

	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d entries", q.Len())
	}
}

func TestPriorityQueue_Underflow(t *testing.T) {
	q := NewPriorityQueue(1)
	q.Insert(0, 7)

	_, _, err := q.ExtractTwoSmallest()
	if !errors.Is(err, ErrQueueUnderflow) {
		t.Errorf("expected ErrQueueUnderflow, got %v", err)
	}
	if q.Len() != 1 {
		t.Errorf("failed extraction changed the queue: %d entries", q.Len())
	}
}

func TestPriorityQueue_RemoveByHandle(t *testing.T) {
	q := NewPriorityQueue(4)

	// Two internal nodes with the same frequency; removal must pick the
	// named one and leave the other in place.
	h0 := q.Insert(20, 4)
	h1 := q.Insert(21, 4)
	h2 := q.Insert(22, 9)

	node, err := q.Remove(h1)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if node != 21 {
		t.Errorf("expected node 21, got %d", node)
	}

	min, ok := q.Min()
	if !ok || min != h0 {
		t.Errorf("expected min handle %d, got %d (ok=%v)", h0, min, ok)
	}

	if _, err := q.Remove(h1); !errors.Is(err, ErrAmbiguousQueueRemoval) {
		t.Errorf("expected ErrAmbiguousQueueRemoval for a removed handle, got %v", err)
	}
	if _, err := q.Remove(Handle(99)); !errors.Is(err, ErrAmbiguousQueueRemoval) {
		t.Errorf("expected ErrAmbiguousQueueRemoval for an unknown handle, got %v", err)
	}

	node, err = q.Remove(h2)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if node != 22 {
		t.Errorf("expected node 22, got %d", node)
	}

	node, err = q.Remove(h0)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if node != 20 {
		t.Errorf("expected node 20, got %d", node)
	}

	if _, ok := q.Min(); ok {
		t.Errorf("expected Min to fail on an empty queue")
	}
}

func TestPriorityQueue_Many(t *testing.T) {
	const n = 100

	q := NewPriorityQueue(0)
	for index := 0; index < n; index++ {
		q.Insert(NodeID(index), uint64((index*37)%n))
	}

	var last uint64
	for q.Len() >= 2 {
		a, b, err := q.ExtractTwoSmallest()
		if err != nil {
			t.Fatalf("ExtractTwoSmallest failed: %v", err)
		}
		freqA := uint64((int(a) * 37) % n)
		freqB := uint64((int(b) * 37) % n)
		if freqA < last || freqB < freqA {
			t.Fatalf("out of order: last %d, then %d, %d", last, freqA, freqB)
		}
		last = freqB
	}
}
