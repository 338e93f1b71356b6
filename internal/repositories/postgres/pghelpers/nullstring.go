package pghelpers

import (
	"database/sql"

	"github.com/google/uuid"
)

func WrapStringPointer(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{
			String: "",
			Valid:  false,
		}
	}

	return sql.NullString{
		String: *s,
		Valid:  true,
	}
}

func WrapUuidPointer(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{
			UUID:  uuid.Nil,
			Valid: false,
		}
	}

	return uuid.NullUUID{
		UUID:  *id,
		Valid: true,
	}
}
