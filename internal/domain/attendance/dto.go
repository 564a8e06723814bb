package attendance

import (
	"time"

	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// TagRequest is the tagging entrypoint payload. TagType is optional: when
// present it is used verbatim, when absent the kind is inferred from the
// employee's latest event. TaggedAt is accepted for administrative
// seeding; normal scans leave it unset and get the capture time.
type TagRequest struct {
	TagID    string     `json:"nfc_id"`
	TagType  *string    `json:"tag_type,omitempty"`
	TaggedAt *time.Time `json:"tag_time,omitempty"`
}

func (r *TagRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TagID) {
		errs = append(errs, validator.ValidationError{
			Field:   "nfc_id",
			Message: "nfc_id is required",
		})
	}

	if r.TagType != nil && !Kind(*r.TagType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "tag_type",
			Message: "tag_type must be check_in or check_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TagResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	TagID        string    `json:"nfc_id"`
	TagType      Kind      `json:"tag_type"`
	TaggedAt     time.Time `json:"tag_time"`
	Message      string    `json:"message"`
}

// EventFilter is an optional inclusive calendar-date range over the date
// portion of the event timestamp. Either bound may be omitted.
type EventFilter struct {
	StartDate *string
	EndDate   *string
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	TagID      string    `json:"nfc_id"`
	TagType    Kind      `json:"tag_type"`
	TaggedAt   time.Time `json:"tag_time"`
	CreatedAt  time.Time `json:"created_at"`

	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"department,omitempty"`
	EmployeePosition   *string `json:"position,omitempty"`
}

// TodayView summarizes a single employee's events on the current calendar
// date. CheckIn and CheckOut are the first events of their kind found in
// the day's listing.
type TodayView struct {
	Date         string          `json:"date"`
	Records      []EventResponse `json:"records"`
	CheckIn      *EventResponse  `json:"check_in"`
	CheckOut     *EventResponse  `json:"check_out"`
	IsCheckedIn  bool            `json:"is_checked_in"`
	IsCheckedOut bool            `json:"is_checked_out"`
}

// MonthlyStats covers the current calendar month. A check-in counts as
// on-time when its hour is before the workday start hour, late otherwise.
type MonthlyStats struct {
	Month         string `json:"month"`
	DaysPresent   int    `json:"days_present"`
	CheckInCount  int    `json:"check_in_count"`
	CheckOutCount int    `json:"check_out_count"`
	OnTimeCount   int    `json:"on_time_count"`
	LateCount     int    `json:"late_count"`
}

type LastTag struct {
	TagType Kind      `json:"type"`
	Time    time.Time `json:"time"`
}

// InfoResponse is the composite read returned for a tag lookup: profile,
// today's view, monthly statistics, recent events, and the latest event.
type InfoResponse struct {
	Employee      employee.EmployeeResponse `json:"employee"`
	Today         TodayView                 `json:"today"`
	MonthlyStats  MonthlyStats              `json:"monthly_stats"`
	RecentRecords []EventResponse           `json:"recent_records"`
	LastTag       *LastTag                  `json:"last_tag"`
}

type InfoRequest struct {
	TagID string `json:"nfc_id"`
}

func (r *InfoRequest) Validate() error {
	if validator.IsEmpty(r.TagID) {
		return validator.ValidationErrors{{
			Field:   "nfc_id",
			Message: "nfc_id is required",
		}}
	}
	return nil
}
