package app

import (
	"context"
	"time"

	"campus-connect-client/model"
)

// DashboardSummary holds the home page's headline counters. Each section is
// filled independently; a failing backend call leaves its counter at zero
// rather than failing the whole summary.
type DashboardSummary struct {
	UnreadAnnouncements int
	OpenLostFound       int
	PendingComplaints   int
	ClassesToday        int
	TasksDue            int
}

func (a *App) Dashboard(ctx context.Context, now time.Time) DashboardSummary {
	var summary DashboardSummary

	if items, err := a.Announcements(ctx); err == nil {
		for _, item := range items {
			if !a.Reads.IsRead(item) {
				summary.UnreadAnnouncements++
			}
		}
	} else {
		a.logger.Warn("dashboard announcements unavailable", "error", err.Error())
	}

	if items, err := a.LostFoundItems(ctx); err == nil {
		for _, item := range items {
			if item.Status != model.LostFoundResolved {
				summary.OpenLostFound++
			}
		}
	} else {
		a.logger.Warn("dashboard lost and found unavailable", "error", err.Error())
	}

	if items, err := a.Complaints(ctx); err == nil {
		for _, item := range items {
			if item.Status == model.ComplaintPending || item.Status == model.ComplaintInProgress {
				summary.PendingComplaints++
			}
		}
	} else {
		a.logger.Warn("dashboard complaints unavailable", "error", err.Error())
	}

	if items, err := a.TimetableEntries(ctx); err == nil {
		today := now.Weekday().String()
		for _, item := range items {
			switch {
			case item.Type == model.TimetableClass && item.Day == today:
				summary.ClassesToday++
			case item.Type == model.TimetableTask && (item.IsCompleted == nil || !*item.IsCompleted):
				summary.TasksDue++
			}
		}
	} else {
		a.logger.Warn("dashboard timetable unavailable", "error", err.Error())
	}

	return summary
}
