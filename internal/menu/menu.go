// Package menu implements the interactive Addition / Subtraction /
// Multiplication / Exit loop over two loaded matrices, and the operation
// table shared with the one-shot and watch modes of sparsecalc.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsparse/internal/logger"
	"github.com/katalvlaran/lvsparse/matrix"
)

// Operation is one menu entry.
type Operation struct {
	Choice string // menu key, "1".."3"
	Name   string // "add", "sub", "mul" as accepted by -op
	Title  string // human label
	Apply  func(a, b *matrix.Sparse) (*matrix.Sparse, error)
}

// Operations lists the arithmetic entries in menu order.
var Operations = []Operation{
	{Choice: "1", Name: "add", Title: "Addition", Apply: matrix.Add},
	{Choice: "2", Name: "sub", Title: "Subtraction", Apply: matrix.Sub},
	{Choice: "3", Name: "mul", Title: "Multiplication", Apply: matrix.Mul},
}

const (
	exitChoice = "4"
	// printed on both choice 4 and end of input
	exitMessage = "Exiting..."
)

// Lookup finds an operation by its -op name.
func Lookup(name string) (Operation, bool) {
	for _, op := range Operations {
		if op.Name == name {
			return op, true
		}
	}

	return Operation{}, false
}

// Run applies op to a and b and writes the titled result to out.
// On error nothing but the error is produced; a and b are unchanged.
func Run(op Operation, a, b *matrix.Sparse, out io.Writer) error {
	res, err := op.Apply(a, b)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "\nResult of %s:\n", op.Title); err != nil {
		return err
	}

	return res.Display(out)
}

// Session is one interactive run over a fixed pair of operands.
type Session struct {
	A, B *matrix.Sparse
	In   io.Reader
	Out  io.Writer
	Log  *slog.Logger // nil uses the "menu" component logger
}

// Loop prompts until the user exits or input ends. Invalid choices are
// re-prompted. A failing operation prints "Error: ..." and ends the
// session with that error.
func (s *Session) Loop() error {
	log := s.Log
	if log == nil {
		log = logger.ForComponent("menu")
	}

	sc := bufio.NewScanner(s.In)
	for {
		s.prompt()
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("menu: read choice: %w", err)
			}
			log.Debug("input closed")
			fmt.Fprintln(s.Out, exitMessage)
			return nil
		}

		choice := strings.TrimSpace(sc.Text())
		if choice == exitChoice {
			fmt.Fprintln(s.Out, exitMessage)
			return nil
		}

		op, ok := byChoice(choice)
		if !ok {
			log.Debug("invalid choice", "input", choice)
			fmt.Fprintln(s.Out, "Invalid choice. Please enter a number between 1 and 4.")
			continue
		}

		log.Debug("running operation", "op", op.Name)
		if err := Run(op, s.A, s.B, s.Out); err != nil {
			log.Error("operation failed", "op", op.Name, "error", err)
			fmt.Fprintf(s.Out, "Error: %v\n", err)
			return err
		}
	}
}

func (s *Session) prompt() {
	fmt.Fprint(s.Out, "\nChoose an operation:\n")
	for _, op := range Operations {
		fmt.Fprintf(s.Out, "%s. %s\n", op.Choice, op.Title)
	}
	fmt.Fprintf(s.Out, "%s. Exit\n", exitChoice)
	fmt.Fprint(s.Out, "Enter your choice: ")
}

func byChoice(choice string) (Operation, bool) {
	for _, op := range Operations {
		if op.Choice == choice {
			return op, true
		}
	}

	return Operation{}, false
}
