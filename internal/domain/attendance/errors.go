package attendance

import "errors"

// Attendance domain errors
var (
	ErrEventNotFound  = errors.New("attendance record not found")
	ErrInvalidTagType = errors.New("tag_type must be check_in or check_out")
)
