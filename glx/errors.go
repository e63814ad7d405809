package glx

import "fmt"

// CreateError reports that the driver returned the null handle when asked
// for a new object. This usually means the context is gone or the driver
// ran out of resources.
type CreateError struct {
	Resource string
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create %s: driver returned a null handle", e.Resource)
}

// CompileError carries the compiler diagnostics for a shader that failed
// to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the linker diagnostics for a program that failed to
// link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}
