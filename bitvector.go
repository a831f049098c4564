package sudokugen

import "math/bits"

// BitVector is a little-endian sequence of literals representing a
// nonnegative integer known to lie within a half-open range. Its bit width
// is always exactly enough to represent range.End-1.
type BitVector struct {
	start, end uint32 // value range [start, end)
	bits       []Literal
}

// Range returns the half-open interval of values the vector may represent.
func (v BitVector) Range() (start, end uint32) {
	return v.start, v.end
}

// Bits returns the vector's little-endian literal sequence.
func (v BitVector) Bits() []Literal {
	return v.bits
}

// Len returns the number of bits in the vector.
func (v BitVector) Len() int {
	return len(v.bits)
}

// BitVectorFromLiteral returns a one-bit vector with range [0, 2)
// representing l as 0 or 1.
func BitVectorFromLiteral(l Literal) BitVector {
	return BitVector{start: 0, end: 2, bits: []Literal{l}}
}

// widthFor returns the number of bits needed to represent every value in
// [0, end), i.e. ceil(log2(end)), computed as next_power_of_two(end)'s
// number of trailing zeros.
func widthFor(end uint32) int {
	return bits.TrailingZeros32(nextPowerOfTwo(end))
}

func nextPowerOfTwo(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len32(n-1)
}

// AddBitVector returns c = a + b, a freshly allocated vector whose range is
// the sum of a's and b's value ranges and whose width is exactly wide
// enough for that sum. It ripple-carries from the least significant bit,
// using a half adder where only two of {a-bit, b-bit, carry-in} are
// present and a full adder where all three are present.
func (f *Builder) AddBitVector(a, b BitVector) BitVector {
	cStart := a.start + b.start
	cEnd := (a.end - 1) + (b.end - 1) + 1
	cLen := widthFor(cEnd)

	aBits := a.bits
	bBits := b.bits
	cBits := make([]Literal, 0, cLen)
	var prevCarry Literal
	havePrevCarry := false

	for len(cBits) < cLen {
		var bitsAtPos []Literal
		if len(aBits) > 0 {
			bitsAtPos = append(bitsAtPos, aBits[0])
			aBits = aBits[1:]
		}
		if len(bBits) > 0 {
			bitsAtPos = append(bitsAtPos, bBits[0])
			bBits = bBits[1:]
		}
		if havePrevCarry {
			bitsAtPos = append(bitsAtPos, prevCarry)
		}

		switch len(bitsAtPos) {
		case 1:
			cBits = append(cBits, bitsAtPos[0])
			havePrevCarry = false
		case 2:
			sum := f.NewVariable().Positive()
			carry := f.NewVariable().Positive()
			f.AddHalfAdder(bitsAtPos[0], bitsAtPos[1], sum, carry)
			cBits = append(cBits, sum)
			prevCarry = carry
			havePrevCarry = true
		case 3:
			sum := f.NewVariable().Positive()
			carry := f.NewVariable().Positive()
			f.AddFullAdder(bitsAtPos[0], bitsAtPos[1], bitsAtPos[2], sum, carry)
			cBits = append(cBits, sum)
			prevCarry = carry
			havePrevCarry = true
		default:
			panic("sudokugen: unreachable: bit vector addition ran out of bits before reaching its computed width")
		}
	}

	return BitVector{start: cStart, end: cEnd, bits: cBits}
}

// AddBitVectorTree reduces vectors to a single BitVector by repeatedly
// popping the front two vectors off a FIFO queue, adding them, and pushing
// the result to the back. This balances the reduction so every input
// participates in at most ceil(log2(n)) addition layers, which bounds width
// growth.
// vectors must be non-empty.
func (f *Builder) AddBitVectorTree(vectors []BitVector) BitVector {
	if len(vectors) == 0 {
		panic("sudokugen: AddBitVectorTree called with no vectors")
	}
	queue := make([]BitVector, len(vectors))
	copy(queue, vectors)
	for len(queue) > 1 {
		a, b := queue[0], queue[1]
		queue = queue[2:]
		queue = append(queue, f.AddBitVector(a, b))
	}
	return queue[0]
}
