package testhelper

import (
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
)

// UUIDArg matches a query argument holding id. pgxmock may hand the matcher
// either the uuid.UUID itself or its driver.Valuer form, so both are accepted.
func UUIDArg(id uuid.UUID) pgxmock.Argument {
	return uuidArg(id)
}

type uuidArg uuid.UUID

func (a uuidArg) Match(v any) bool {
	switch got := v.(type) {
	case uuid.UUID:
		return got == uuid.UUID(a)
	case *uuid.UUID:
		return got != nil && *got == uuid.UUID(a)
	case string:
		id, err := uuid.Parse(got)
		return err == nil && id == uuid.UUID(a)
	case []byte:
		id, err := uuid.FromBytes(got)
		return err == nil && id == uuid.UUID(a)
	}
	return false
}

// AnyArgs returns n wildcard arguments, for statements whose argument order
// is decided by the query builder.
func AnyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
