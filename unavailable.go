package envprobe

import "fmt"

// DependencyUnavailable is returned when the interpreter could not import a
// module. Message is the interpreter's own description, for example
// "No module named 'networkx'".
type DependencyUnavailable struct {
	// Module is the dotted module path that was imported.
	Module string

	// Exception is the Python exception class, usually ModuleNotFoundError.
	Exception string

	Message string
}

func (e *DependencyUnavailable) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Exception != "" {
		return fmt.Sprintf("%s while importing %s", e.Exception, e.Module)
	}
	return fmt.Sprintf("cannot import %s", e.Module)
}
