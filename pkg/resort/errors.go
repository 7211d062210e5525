package resort

import (
	"errors"
	"fmt"

	"github.com/frostline/resortgen/pkg/date"
)

// ExhaustedInventoryError reports that every item of a resource kind was
// already taken on a given day. Callers decide whether to drop the demand
// unit or abort the run; the factories never hand out an occupied resource.
type ExhaustedInventoryError struct {
	Resource string
	Day      date.Date
}

func (e *ExhaustedInventoryError) Error() string {
	return fmt.Sprintf("no %s available on %s", e.Resource, e.Day)
}

// IsExhaustedInventory reports whether err is an ExhaustedInventoryError.
func IsExhaustedInventory(err error) bool {
	var e *ExhaustedInventoryError
	return errors.As(err, &e)
}
