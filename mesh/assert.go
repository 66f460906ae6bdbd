package mesh

import "fmt"

// precondition panics with an error wrapping sentinel when ok is false and
// assertions are compiled in. Callers must not use it for control flow.
func precondition(ok bool, sentinel error, format string, args ...any) {
	if assertionsEnabled && !ok {
		panic(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel))
	}
}
