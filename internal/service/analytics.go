package service

import (
	"context"
	"fmt"

	"hospital-service/api"
	"hospital-service/internal/models"
)

const (
	defaultTrendDays    = 7
	recentAppointmentsN = 5
)

// DashboardAnalytics aggregates the admin dashboard counters for "today" in
// the facility's time zone.
func (s *Service) DashboardAnalytics(ctx context.Context) (*api.DashboardResponse, error) {
	const op = "service.DashboardAnalytics"

	today := s.now().In(s.loc).Format(DateLayout)

	totalDoctors, err := s.store.CountActiveDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	totalTests, err := s.store.CountActiveDiagnosticTests(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	todayAppointments, err := s.store.CountAppointmentsOnDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	todayDiagnostics, err := s.store.CountDiagnosticBookingsOnDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byStatus, err := s.store.CountAppointmentsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Every status appears in the breakdown, zero or not.
	stats := make(map[string]int, 5)
	for _, status := range []models.BookingStatus{
		models.BookingNew, models.BookingConfirmed, models.BookingCompleted,
		models.BookingCancelled, models.BookingNoShow,
	} {
		stats[string(status)] = byStatus[status]
	}

	recent, err := s.store.ListRecentAppointments(ctx, recentAppointmentsN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	recentResponses := make([]*api.AppointmentResponse, 0, len(recent))
	for _, appointment := range recent {
		recentResponses = append(recentResponses, appointmentResponse(appointment))
	}

	unread, err := s.store.CountUnreadContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &api.DashboardResponse{
		TotalDoctors:       totalDoctors,
		TotalTests:         totalTests,
		TodayAppointments:  todayAppointments,
		TodayDiagnostics:   todayDiagnostics,
		AppointmentStats:   stats,
		RecentAppointments: recentResponses,
		UnreadMessages:     unread,
	}, nil
}

// BookingTrends returns per-day appointment and diagnostic booking counts
// for the past N days, oldest first, today included.
func (s *Service) BookingTrends(ctx context.Context, days int) ([]*api.BookingTrendPoint, error) {
	const op = "service.BookingTrends"

	if days <= 0 {
		days = defaultTrendDays
	}

	now := s.now().In(s.loc)

	result := make([]*api.BookingTrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(DateLayout)

		appointments, err := s.store.CountAppointmentsOnDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		diagnostics, err := s.store.CountDiagnosticBookingsOnDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, &api.BookingTrendPoint{
			Date:         date,
			Appointments: appointments,
			Diagnostics:  diagnostics,
		})
	}

	return result, nil
}
