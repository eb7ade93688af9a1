package app

import (
	"context"
	"fmt"
	"time"

	"campus-connect-client/model"
	"campus-connect-client/query"
)

func (a *App) TimetableEntries(ctx context.Context) ([]model.TimetableEntry, error) {
	return query.Fetch(ctx, a.Cache, "timetable", a.Client.Timetable.List)
}

// AddTimetableEntry validates the form before it leaves the client: a class
// needs a subject, a task a title, and both need day and time.
func (a *App) AddTimetableEntry(ctx context.Context, req model.CreateTimetableRequest) (*model.TimetableEntry, error) {
	if err := validateTimetableEntry(req); err != nil {
		a.Notifier.Error("Please fill all fields to add the entry.")
		return nil, err
	}

	label := "Class Added"
	if req.Type == model.TimetableTask {
		label = "Task Added"
	}

	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"timetable"},
		label, "Failed to create timetable entry",
		func(ctx context.Context) (*model.TimetableEntry, error) {
			return a.Client.Timetable.Create(ctx, req)
		})
}

func (a *App) UpdateTimetableEntry(ctx context.Context, id string, req model.UpdateTimetableRequest) (*model.TimetableEntry, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"timetable"},
		"Timetable entry updated successfully!", "Failed to update timetable entry",
		func(ctx context.Context) (*model.TimetableEntry, error) {
			return a.Client.Timetable.Update(ctx, id, req)
		})
}

func (a *App) DeleteTimetableEntry(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.Cache, a.Notifier, []string{"timetable"},
		"Timetable entry deleted successfully!", "Failed to delete timetable entry",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.Timetable.Delete(ctx, id)
		})
	return err
}

// ToggleTaskCompleted flips a task's completion flag.
func (a *App) ToggleTaskCompleted(ctx context.Context, entry model.TimetableEntry) (*model.TimetableEntry, error) {
	if entry.Type != model.TimetableTask {
		return nil, fmt.Errorf("%w: only tasks can be completed", model.ErrInvalidInput)
	}

	completed := entry.IsCompleted == nil || !*entry.IsCompleted
	return a.UpdateTimetableEntry(ctx, entry.ID, model.UpdateTimetableRequest{IsCompleted: &completed})
}

func validateTimetableEntry(req model.CreateTimetableRequest) error {
	switch req.Type {
	case model.TimetableClass:
		if req.Subject == "" {
			return fmt.Errorf("%w: subject is required for a class", model.ErrInvalidInput)
		}
	case model.TimetableTask:
		if req.Title == "" {
			return fmt.Errorf("%w: title is required for a task", model.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown entry type %q", model.ErrInvalidInput, req.Type)
	}

	if req.Day == "" || req.Time == "" {
		return fmt.Errorf("%w: day and time are required", model.ErrInvalidInput)
	}

	return nil
}

type Weekday struct {
	Day  string
	Date string
}

// CurrentWeek returns Monday through Sunday of the week containing now.
func CurrentWeek(now time.Time) []Weekday {
	week := make([]Weekday, 0, 7)
	offset := int(now.Weekday())

	for i := 1; i <= 7; i++ {
		date := now.AddDate(0, 0, i-offset)
		week = append(week, Weekday{
			Day:  date.Weekday().String(),
			Date: date.Format("Jan 2"),
		})
	}

	return week
}

// EntriesFor selects the entries of one kind scheduled on the given day.
func EntriesFor(items []model.TimetableEntry, kind string, day string) []model.TimetableEntry {
	out := make([]model.TimetableEntry, 0, len(items))
	for _, item := range items {
		if item.Type == kind && item.Day == day {
			out = append(out, item)
		}
	}

	return out
}
