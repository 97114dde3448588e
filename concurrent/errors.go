package concurrent

import (
	"fmt"
	"runtime/debug"
)

// ErrSupplierPanic is the error set on the result of a supplier
// that panicked while running as part of a batch
type ErrSupplierPanic struct {
	Value interface{}
	Stack string
}

// Error implementation of error for ErrSupplierPanic
func (e ErrSupplierPanic) Error() string {
	switch x := e.Value.(type) {
	case error:
		return fmt.Sprintf("panic error %s at %s", x.Error(), e.Stack)
	case string:
		return fmt.Sprintf("panic error %s at %s", x, e.Stack)
	default:
		return fmt.Sprintf("unknown panic %+v at %s", x, e.Stack)
	}
}

func errorFromPanic(r interface{}) error {
	return ErrSupplierPanic{Value: r, Stack: string(debug.Stack())}
}
