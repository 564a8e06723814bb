package employee

import (
	"time"
)

type Employee struct {
	ID         string
	TagID      string
	Name       string
	Department *string
	Position   *string
	Email      *string
	Phone      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
