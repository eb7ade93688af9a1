package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/announcements", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"announcements":[
			{"_id":"a-1","channel":"general-announcements","isRead":true},
			{"_id":"a-2","channel":"general-announcements"}
		]}`))
	})
	r.Get("/lost-found", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{"_id":"l-1","status":"active"},
			{"_id":"l-2","status":"resolved"}
		]`))
	})
	r.Get("/complaints", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"complaints":[
			{"_id":"c-1","status":"pending"},
			{"_id":"c-2","status":"in-progress"},
			{"_id":"c-3","status":"resolved"}
		]}`))
	})
	r.Get("/timetable", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{"_id":"e-1","type":"class","day":"Wednesday"},
			{"_id":"e-2","type":"class","day":"Friday"},
			{"_id":"e-3","type":"task","title":"Lab report","day":"Wednesday"},
			{"_id":"e-4","type":"task","title":"Essay","day":"Monday","isCompleted":true}
		]`))
	})

	a := newTestApp(t, r)

	// Wednesday, 2026-01-14.
	now := time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)
	summary := a.Dashboard(context.Background(), now)

	require.Equal(t, 1, summary.UnreadAnnouncements)
	require.Equal(t, 1, summary.OpenLostFound)
	require.Equal(t, 2, summary.PendingComplaints)
	require.Equal(t, 1, summary.ClassesToday)
	require.Equal(t, 1, summary.TasksDue)
}

func TestDashboardToleratesPartialBackendFailure(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/announcements", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/lost-found", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[{"_id":"l-1","status":"active"}]`))
	})
	r.Get("/complaints", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"complaints":[]}`))
	})
	r.Get("/timetable", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[]`))
	})

	a := newTestApp(t, r)

	summary := a.Dashboard(context.Background(), time.Now())
	require.Equal(t, 0, summary.UnreadAnnouncements)
	require.Equal(t, 1, summary.OpenLostFound)
}
