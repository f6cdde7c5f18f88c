package arango

import (
	driver "github.com/arangodb/go-driver"

	pkgerrors "cortex-backend/pkg/errors"
)

// mapError translates driver errors into the application taxonomy.
// Messages stay generic; the driver detail travels as the cause and is
// only ever logged.
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	switch {
	case driver.IsUnauthorized(err), driver.IsForbidden(err):
		return pkgerrors.NewUnauthorizedError("").WithCause(err)
	case driver.IsNotFound(err):
		return pkgerrors.NewNotFoundError(resource).WithCause(err)
	case driver.IsConflict(err):
		return pkgerrors.NewConflictError(resource + " already exists").WithCause(err)
	default:
		return pkgerrors.NewUpstreamError("").WithCause(err)
	}
}
