package category

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID       uint64
	UUID     = uuid.UUID
	Category struct {
		UUID        UUID
		Name        string
		Description string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Categories []*Category
)
