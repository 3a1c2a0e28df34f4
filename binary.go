package vectorengine

import "time"

// VectorAdd returns the elementwise sum of v and other.
func (v *Vector) VectorAdd(other *Vector) (*Vector, error) {
	return v.elementwise(opAdd, other)
}

// VectorMultiply returns the elementwise product of v and other.
func (v *Vector) VectorMultiply(other *Vector) (*Vector, error) {
	return v.elementwise(opMultiply, other)
}

func (v *Vector) elementwise(op binaryOp, other *Vector) (*Vector, error) {
	began := time.Now()
	n := len(v.elements)
	if len(other.elements) != n {
		err := &ErrLengthMismatch{Expected: n, Actual: len(other.elements)}
		v.e.metrics.RecordTransform(op.String(), time.Since(began), err)
		v.e.logger.LogTransform(op.String(), n, err)
		return nil, err
	}
	defer v.e.observeTransform(op.String(), began)

	// A uniform operand is a scalar.
	if u, w := uniformOperand(v, other); u != nil {
		if op == opAdd {
			return w.addScalar(u.elements[0]), nil
		}
		return w.mulScalar(u.elements[0]), nil
	}

	flags := combineFlags(op, v.shape(), other.shape())
	out := v.e.newVector(make([]int64, n))
	wrapped := false
	switch op {
	case opAdd:
		for i, x := range v.elements {
			y := other.elements[i]
			if addOverflows(x, y) {
				wrapped = true
			}
			out.elements[i] = x + y
		}
		if v.sum.ok && other.sum.ok {
			out.sum = some(v.sum.value + other.sum.value)
		}
	case opMultiply:
		for i, x := range v.elements {
			y := other.elements[i]
			if mulOverflows(x, y) {
				wrapped = true
			}
			out.elements[i] = x * y
		}
	}
	if wrapped {
		flags &^= orderFlags | FlagUniform | FlagRandom
	}
	out.flags = flags

	random := v.flags.Has(FlagRandom) || other.flags.Has(FlagRandom)
	if random && n < v.e.thresholds.Derive {
		return out, nil
	}
	out.deriveOrderStats()
	return out, nil
}

// uniformOperand returns the uniform operand and the other one, preferring
// the receiver as the scalar when both are uniform.
func uniformOperand(a, b *Vector) (uniform, other *Vector) {
	switch {
	case a.flags.Has(FlagUniform):
		return a, b
	case b.flags.Has(FlagUniform):
		return b, a
	}
	return nil, nil
}
