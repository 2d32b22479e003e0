package console

import (
	"fmt"
	"io"

	apperrors "proto-demo/pkg/errors"
)

// Presenter writes demo output lines to a writer
type Presenter struct{}

// NewPresenter creates a new console presenter
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present writes each line to w terminated by a newline
func (p *Presenter) Present(w io.Writer, lines []string) error {
	for i, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to write output line %d", i+1), err)
		}
	}
	return nil
}
