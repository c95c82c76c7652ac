// Package lvsparse is a small sparse integer matrix toolkit.
//
// Everything lives under two trees:
//
//	matrix/          Sparse: coordinate-keyed storage, text format,
//	                 Add / Sub / Mul, gonum interop
//	cmd/sparsecalc/  command-line driver: interactive menu, one-shot
//	                 and watch modes over two matrix files
//
// A matrix file looks like:
//
//	rows=2
//	cols=2
//	(0,0,1)
//	(1,1,2)
//
// and only nonzero cells are ever stored.
//
//	go get github.com/katalvlaran/lvsparse/matrix
package lvsparse
