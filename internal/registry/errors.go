package registry

import (
	"fmt"

	"github.com/klauern/plugindex/internal/model"
)

// NotFoundError reports a lookup miss. UnknownToolkit distinguishes
// "toolkit does not exist" from "toolkit has no such document".
type NotFoundError struct {
	Toolkit        string
	Role           model.Role
	Name           string
	UnknownToolkit bool
}

// Error returns a formatted lookup error message.
func (e *NotFoundError) Error() string {
	if e.UnknownToolkit {
		return fmt.Sprintf("toolkit %q not found", e.Toolkit)
	}
	return fmt.Sprintf("no %s named %q in toolkit %q", e.Role, e.Name, e.Toolkit)
}

// BuildError records a single file that failed to parse or validate
// during a registry build. One bad file never aborts the build.
type BuildError struct {
	Path string
	Err  error
}

// Error returns a formatted build error message.
func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// Warning records a non-fatal condition observed during a build, such as
// a duplicate document name being replaced by a later file.
type Warning struct {
	Path    string
	Message string
}

// String returns a formatted warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}
