package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrTagIDExists      = errors.New("NFC tag identifier already registered")
	ErrNothingToUpdate  = errors.New("no updatable fields provided")
)
