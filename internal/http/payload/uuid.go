package payload

import (
	"errors"

	"github.com/google/uuid"
)

func isUUID(value any) error {
	raw, _ := value.(string)
	if _, err := uuid.Parse(raw); err != nil {
		return errors.New("must be a uuid")
	}
	return nil
}
