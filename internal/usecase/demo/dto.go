package demo

import "proto-demo/api/gen/go/pithos/common"

// RunRequest carries the values the demo assigns to the User message.
type RunRequest struct {
	Name string `validate:"required,max=100"`
	ID   int32  `validate:"gt=0"`
}

// RunResponse holds the constructed message and the output it produced.
type RunResponse struct {
	User     *common.User
	Greeting string
	IDLine   string
}

// Lines returns the output lines in the order they are printed.
func (r *RunResponse) Lines() []string {
	return []string{r.Greeting, r.IDLine}
}
