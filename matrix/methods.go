// Package matrix provides the arithmetic on Sparse: element-wise addition
// and subtraction, matrix multiplication, transpose and integer scaling.
// All functions validate fail-fast and return a fresh result; operands are
// read-only and remain valid after an error.
package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// Add returns a new Sparse holding the element-wise sum a + b.
// Time O(nnz(a)+nnz(b)); zero cells of either operand are never visited.
func Add(a, b *Sparse) (*Sparse, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a new Sparse holding the element-wise difference a − b.
// Time O(nnz(a)+nnz(b)).
func Sub(a, b *Sparse) (*Sparse, error) { return addSub(a, b, -1, opSub) }

// addSub is the shared two-pass sweep behind Add (sign=+1) and Sub (sign=-1).
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): pass over a's cells, then b's cells absent from a.
// Stage 3 (Finalize): return result.
func addSub(a, b *Sparse, sign int64, op string) (*Sparse, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Stage 2: cells stored in a; put drops sums that cancel to zero.
	res := newSparse(a.r, a.c, max(len(a.data), len(b.data)))
	for k, av := range a.data {
		res.put(k, av+sign*b.data[k])
	}
	// cells only in b are nonzero by invariant, no re-check needed
	for k, bv := range b.data {
		if _, seen := a.data[k]; !seen {
			res.data[k] = sign * bv
		}
	}

	// Stage 3: Return result
	return res, nil
}

// Mul returns the matrix product a × b with shape a.Rows()×b.Cols().
// Stage 1 (Validate): nil-checks and inner-dimension match.
// Stage 2 (Prepare): index b's cells by row.
// Stage 3 (Execute): for each (i,k)=av in a, accumulate av*b[k,j] into (i,j).
// Stage 4 (Finalize): return result.
// Complexity: O(nnz(b) + Σ_{(i,k)∈a} nnz(b row k)) time, O(nnz(b)+nnz(res)) memory.
func Mul(a, b *Sparse) (*Sparse, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: row index of b replaces a dense scan over b's columns
	rowsB := b.rowIndex()

	// Stage 3: read-modify-write through put keeps cancelled sums out of storage
	res := newSparse(a.r, b.c, 0)
	var dst Coord
	for k, av := range a.data {
		for _, e := range rowsB[k.Col] {
			dst = Coord{Row: k.Row, Col: e.Col}
			res.put(dst, res.data[dst]+av*e.Value)
		}
	}

	// Stage 4: Return result
	return res, nil
}

// rowIndex groups stored cells by row. Order within a row is unspecified;
// integer accumulation makes Mul independent of it.
func (m *Sparse) rowIndex() map[int][]Entry {
	idx := make(map[int][]Entry)
	for k, v := range m.data {
		idx[k.Row] = append(idx[k.Row], Entry{Coord: k, Value: v})
	}

	return idx
}

// Transpose returns a new Sparse where rows and columns of m are swapped.
// Complexity: O(nnz).
func Transpose(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newSparse(m.c, m.r, len(m.data))
	for k, v := range m.data {
		res.data[Coord{Row: k.Col, Col: k.Row}] = v
	}

	return res, nil
}

// Scale returns alpha*m. Scaling by zero yields an empty matrix of the
// same shape.
// Complexity: O(nnz).
func Scale(m *Sparse, alpha int64) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newSparse(m.r, m.c, len(m.data))
	if alpha == 0 {
		return res, nil
	}
	for k, v := range m.data {
		res.put(k, alpha*v) // overflow can wrap to 0; put keeps the invariant
	}

	return res, nil
}

// Add is the method form of Add(m, o).
func (m *Sparse) Add(o *Sparse) (*Sparse, error) { return Add(m, o) }

// Sub is the method form of Sub(m, o).
func (m *Sparse) Sub(o *Sparse) (*Sparse, error) { return Sub(m, o) }

// Mul is the method form of Mul(m, o).
func (m *Sparse) Mul(o *Sparse) (*Sparse, error) { return Mul(m, o) }

// T is the method form of Transpose(m).
func (m *Sparse) T() (*Sparse, error) { return Transpose(m) }

// Scale is the method form of Scale(m, alpha).
func (m *Sparse) Scale(alpha int64) (*Sparse, error) { return Scale(m, alpha) }
