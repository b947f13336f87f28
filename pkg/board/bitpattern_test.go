package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustPattern(hi uint16, lo uint64) BitPattern {
	return NewBitPattern(hi, lo)
}

func TestBitPattern_ValueRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		hi     uint16
		lo     uint64
	}{
		{"zero", 0, 0},
		{"start position", 0x2113, 0x2113_4556_4786_900a},
		{"goal mask", 0x0000, 0x0000_0000_0ff0_0ff0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBitPattern(tt.hi, tt.lo)
			hi, lo := p.Value()
			assert.Equal(t, tt.hi, hi)
			assert.Equal(t, tt.lo, lo)
		})
	}
}

func TestBitPattern_IsEmpty(t *testing.T) {
	assert.True(t, EmptyBitPattern.IsEmpty())
	assert.False(t, EmptyBitPattern.IsNotEmpty())

	p := mustPattern(0, 1)
	assert.False(t, p.IsEmpty())
	assert.True(t, p.IsNotEmpty())
}

func TestBitPattern_Moved(t *testing.T) {
	start := mustPattern(0x2113, 0x2113_4455_6789_6009)

	tests := []struct {
		dir  Direction
		want BitPattern
	}{
		{Up, mustPattern(0x2113, 0x4455_6789_6009_0000)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := start.Moved(tt.dir)
			assert.Equal(t, tt.want, got, "got %v want %v", got, tt.want)
		})
	}
}

func TestBitPattern_Mirrored(t *testing.T) {
	start := mustPattern(0x2113, 0x2113_4455_6789_6009)
	want := mustPattern(0x3112, 0x3112_5544_9876_9006)
	assert.Equal(t, want, start.Mirrored())
}

func TestBitPattern_MaskOf(t *testing.T) {
	start := mustPattern(0x2113, 0x2113_4455_6789_6009)
	want := mustPattern(0x0ff0, 0x0ff0_0000_0000_0000)
	assert.Equal(t, want, start.MaskOf(NewPiece(1)))
}

func TestBitPattern_Symmetrized(t *testing.T) {
	start := mustPattern(0x2113, 0x2113_4556_4786_900a)
	pairs := []PiecePair{
		{A: NewPiece(2), B: NewPiece(3)},
		{A: NewPiece(4), B: NewPiece(6)},
		{A: NewPiece(7), B: NewPiece(8)},
		{A: NewPiece(9), B: NewPiece(10)},
	}
	got := start.Symmetrized(pairs)
	assert.Equal(t, start.Mirrored(), got)
}

func TestBitPattern_BitwiseOps(t *testing.T) {
	a := mustPattern(0x00ff, 0x0000_0000_0000_0000)
	b := mustPattern(0x0f0f, 0x0000_0000_0000_0000)

	assert.Equal(t, mustPattern(0x000f, 0), a.And(b))
	assert.Equal(t, mustPattern(0x0fff, 0), a.Or(b))
	assert.Equal(t, mustPattern(0x0ff0, 0), a.Xor(b))
}

func TestBitPattern_Compare(t *testing.T) {
	small := mustPattern(0, 1)
	big := mustPattern(0, 2)
	assert.Equal(t, -1, small.Compare(big))
	assert.Equal(t, 1, big.Compare(small))
	assert.Equal(t, 0, small.Compare(small))
}

func TestBitPattern_String(t *testing.T) {
	p := mustPattern(0x2113, 0x2113_4556_4786_900a)
	assert.Equal(t, "[2113_2113_4556_4786_900a]", p.String())
}
