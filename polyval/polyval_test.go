package polyval

import (
	"bytes"
	"math/rand"
	"testing"
)

func randBlock(r *rand.Rand) [16]byte {
	var b [16]byte
	r.Read(b[:])
	return b
}

// TestZeroKeyForcesZeroDigest exercises the multiplier's carry chain with a
// zero hash key: since the pre-multiplied key H' is then zero throughout,
// every masked XOR into the output accumulator is a no-op regardless of the
// (random, nonzero) message, so the digest must stay all-zero no matter how
// many blocks are folded in.
func TestZeroKeyForcesZeroDigest(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var zeroKey [16]byte
	p, err := New(zeroKey[:])
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 16; i++ {
		blk := randBlock(r)
		p.Update(blk[:])
	}
	got := p.Sum(nil)
	if !bytes.Equal(got, make([]byte, 16)) {
		t.Fatalf("expected zero digest under zero key, got %x", got)
	}
}

func TestLinearity(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 200; trial++ {
		h := randBlock(r)
		n := 1 + r.Intn(4)
		var x, y, xorXY []byte
		for i := 0; i < n; i++ {
			bx := randBlock(r)
			by := randBlock(r)
			x = append(x, bx[:]...)
			y = append(y, by[:]...)
			var xored [16]byte
			for j := range xored {
				xored[j] = bx[j] ^ by[j]
			}
			xorXY = append(xorXY, xored[:]...)
		}

		px, _ := New(h[:])
		px.Update(x)
		hx := px.Sum(nil)

		py, _ := New(h[:])
		py.Update(y)
		hy := py.Sum(nil)

		pxy, _ := New(h[:])
		pxy.Update(xorXY)
		hxy := pxy.Sum(nil)

		var xored [16]byte
		for j := range xored {
			xored[j] = hx[j] ^ hy[j]
		}
		if !bytes.Equal(xored[:], hxy) {
			t.Fatalf("trial %d: POLYVAL(H,X^Y)=%x != POLYVAL(H,X)^POLYVAL(H,Y)=%x", trial, hxy, xored)
		}
	}
}

func TestZeroInputZeroDigest(t *testing.T) {
	var h [16]byte
	p, err := New(h[:])
	if err != nil {
		t.Fatal(err)
	}
	p.Update(make([]byte, 16))
	got := p.Sum(nil)
	if !bytes.Equal(got, make([]byte, 16)) {
		t.Fatalf("expected zero digest, got %x", got)
	}
}

func TestPartialBlockIsZeroPadded(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	h := randBlock(r)

	partial := []byte{1, 2, 3, 4, 5}
	var padded [16]byte
	copy(padded[:], partial)

	p1, _ := New(h[:])
	p1.Update(partial)
	got1 := p1.Sum(nil)

	p2, _ := New(h[:])
	p2.Update(padded[:])
	got2 := p2.Sum(nil)

	if !bytes.Equal(got1, got2) {
		t.Fatalf("partial-block padding mismatch: %x vs %x", got1, got2)
	}
}

func TestInvalidKeySize(t *testing.T) {
	if _, err := New(make([]byte, 15)); err == nil {
		t.Fatal("expected error for short key")
	}
	if _, err := New(make([]byte, 17)); err == nil {
		t.Fatal("expected error for long key")
	}
}
