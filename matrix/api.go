// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid logic duplication: each facade delegates to the canonical
//     implementation in sparse.go / methods.go.

package matrix

// ---------- Constructors & Utilities ----------

// Zeros returns an empty rows×cols Sparse. Alias of NewSparse.
func Zeros(rows, cols int) (*Sparse, error) { return NewSparse(rows, cols) }

// ZerosLike returns an empty Sparse with the same shape as m.
// Handy as the additive identity of m.
func ZerosLike(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newSparse(m.r, m.c, 0), nil
}

// Identity returns I_n (ones on the diagonal). Complexity: O(n).
func Identity(n int) (*Sparse, error) {
	id, err := NewSparse(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		id.data[Coord{Row: i, Col: i}] = 1
	}

	return id, nil
}

// CloneMatrix returns a deep copy of m. Thin wrapper over Sparse.Clone.
func CloneMatrix(m *Sparse) *Sparse { return m.Clone() }

// ---------- Linear Algebra aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Sparse) (*Sparse, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Sparse) (*Sparse, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Sparse) (*Sparse, error) { return Mul(a, b) }
