package sudokugen

// AddHalfAdder constrains sum and carry to the sum of two input bits:
// sum ↔ a ⊕ b, carry ↔ a ∧ b.
func (f *Builder) AddHalfAdder(a, b, sum, carry Literal) {
	f.AddXor(sum, a, b)
	f.AddAnd(carry, []Literal{a, b})
}

// AddFullAdder constrains sum and carry to the sum of three input bits,
// built from two chained half adders:
//
//	c --------------->[a  HA  s]---------------> sum
//	a -->[a  HA  s]-->[b      c]-->[b  OR  c]--> carry
//	b -->[b      c]--------------->[a       ]
func (f *Builder) AddFullAdder(a, b, c, sum, carry Literal) {
	halfAdder1Sum := f.NewVariable().Positive()
	halfAdder1Carry := f.NewVariable().Positive()
	halfAdder2Carry := f.NewVariable().Positive()
	f.AddHalfAdder(a, b, halfAdder1Sum, halfAdder1Carry)
	f.AddHalfAdder(c, halfAdder1Sum, sum, halfAdder2Carry)
	f.AddOr(carry, []Literal{halfAdder1Carry, halfAdder2Carry})
}
