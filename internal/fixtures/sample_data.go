package fixtures

import (
	"time"

	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
)

func strPtr(s string) *string { return &s }

// SampleEmployees returns the demo directory. Tag identifiers are already
// in normalized form.
func SampleEmployees() []employee.Employee {
	return []employee.Employee{
		{
			TagID:      "04A1B2C3D4E5F6",
			Name:       "Kim Chulsoo",
			Department: strPtr("Engineering"),
			Position:   strPtr("Team Lead"),
			Email:      strPtr("kim@company.com"),
			Phone:      strPtr("010-1234-5678"),
		},
		{
			TagID:      "04B2C3D4E5F6A1",
			Name:       "Lee Younghee",
			Department: strPtr("Planning"),
			Position:   strPtr("Associate"),
			Email:      strPtr("lee@company.com"),
			Phone:      strPtr("010-2345-6789"),
		},
		{
			TagID:      "04C3D4E5F6A1B2",
			Name:       "Park Minsu",
			Department: strPtr("Engineering"),
			Position:   strPtr("Staff"),
			Email:      strPtr("park@company.com"),
			Phone:      strPtr("010-3456-7890"),
		},
	}
}

func at(now time.Time, daysAgo, hour, minute int) time.Time {
	day := now.AddDate(0, 0, -daysAgo)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
}

// SampleEvents builds a week of demo attendance for the seeded employees:
// six full days of check-in/check-out per employee, one late morning for
// Park Minsu two days ago, and a check-in without check-out today.
func SampleEvents(idByTag map[string]string, now time.Time) []attendance.Event {
	var events []attendance.Event

	appendEvent := func(tagID string, kind attendance.Kind, taggedAt time.Time) {
		events = append(events, attendance.Event{
			EmployeeID: idByTag[tagID],
			TagID:      tagID,
			Kind:       kind,
			TaggedAt:   taggedAt,
		})
	}

	for day := 6; day >= 1; day-- {
		appendEvent("04A1B2C3D4E5F6", attendance.KindCheckIn, at(now, day, 8, 47))
		appendEvent("04A1B2C3D4E5F6", attendance.KindCheckOut, at(now, day, 18, 35))

		appendEvent("04B2C3D4E5F6A1", attendance.KindCheckIn, at(now, day, 8, 52))
		appendEvent("04B2C3D4E5F6A1", attendance.KindCheckOut, at(now, day, 18, 10))

		checkInHour, checkInMinute := 8, 55
		if day == 2 {
			// One late morning to make the on-time/late split visible
			checkInHour, checkInMinute = 9, 15
		}
		appendEvent("04C3D4E5F6A1B2", attendance.KindCheckIn, at(now, day, checkInHour, checkInMinute))
		appendEvent("04C3D4E5F6A1B2", attendance.KindCheckOut, at(now, day, 18, 20))
	}

	// Today: checked in, not yet checked out
	appendEvent("04A1B2C3D4E5F6", attendance.KindCheckIn, at(now, 0, 8, 47))
	appendEvent("04B2C3D4E5F6A1", attendance.KindCheckIn, at(now, 0, 8, 52))
	appendEvent("04C3D4E5F6A1B2", attendance.KindCheckIn, at(now, 0, 8, 58))

	return events
}
