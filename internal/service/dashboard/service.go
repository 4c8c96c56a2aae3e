package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/dashboard"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// GetStats implements dashboard.DashboardService.
//
// Metrics run sequentially and fail independently. A failed metric leaves
// its zero value in place and appends an advisory message, so one broken
// query never blanks the whole dashboard.
func (s *DashboardServiceImpl) GetStats(ctx context.Context, filter dashboard.StatsFilter) (dashboard.StatsResponse, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var resp dashboard.StatsResponse
	var messages []string

	collect := func(label string, dst *int64, query func() (int64, error)) {
		n, err := query()
		if err != nil {
			slog.Warn("dashboard metric failed", "metric", label, "error", err)
			messages = append(messages, fmt.Sprintf("%s: %v", label, err))
			return
		}
		*dst = n
	}

	collect("Total Workforce", &resp.TotalUsers, func() (int64, error) {
		return s.DashboardRepository.CountWorkforce(ctx)
	})
	collect("Active Today", &resp.ActiveToday, func() (int64, error) {
		return s.DashboardRepository.CountPresent(ctx, today)
	})
	collect("Office Today", &resp.OfficeToday, func() (int64, error) {
		return s.DashboardRepository.CountPresentByMode(ctx, today, attendance.WorkModeOffice)
	})
	collect("Remote Today", &resp.RemoteToday, func() (int64, error) {
		return s.DashboardRepository.CountPresentByMode(ctx, today, attendance.WorkModeRemote)
	})
	collect("Late Arrivals", &resp.LateToday, func() (int64, error) {
		return s.DashboardRepository.CountLate(ctx, today)
	})
	collect("On Leave", &resp.OnLeaveToday, func() (int64, error) {
		return s.DashboardRepository.CountOnLeave(ctx, today)
	})
	collect("Week Off", &resp.WeekOffToday, func() (int64, error) {
		return s.DashboardRepository.CountWeekOff(ctx, int(today.Weekday()))
	})
	collect("Pending Permissions", &resp.PendingPermissions, func() (int64, error) {
		return s.DashboardRepository.CountPendingPermissions(ctx)
	})

	// Absent is the residual headcount, clamped so partial metric failures
	// never produce a negative number.
	absent := resp.TotalUsers - resp.ActiveToday - resp.OnLeaveToday - resp.WeekOffToday
	if absent < 0 {
		absent = 0
	}
	resp.AbsentToday = absent

	resp.RecentActivity = []attendance.AttendanceResponse{}
	records, total, err := s.DashboardRepository.RecentActivity(ctx, today, limit, skip)
	if err != nil {
		slog.Warn("dashboard metric failed", "metric", "Recent Activity", "error", err)
		messages = append(messages, fmt.Sprintf("Recent Activity: %v", err))
	} else {
		for _, rec := range records {
			resp.RecentActivity = append(resp.RecentActivity, attendance.AttendanceResponse{
				ID:           rec.ID,
				UserID:       rec.UserID,
				Date:         rec.Date.Format("2006-01-02"),
				LoginTime:    rec.LoginTime.Format("2006-01-02 15:04:05"),
				LogoutTime:   timePtrToString(rec.LogoutTime),
				TotalHours:   rec.TotalHours,
				IsLate:       rec.IsLate,
				WorkMode:     string(rec.WorkMode),
				Status:       string(rec.Status),
				UserName:     rec.UserName,
				EmployeeID:   rec.UserEmployeeID,
				Designation:  rec.UserDesignation,
				ProfileImage: rec.UserProfileImg,
			})
		}
		resp.Pagination = &dashboard.Pagination{
			Total:   total,
			Limit:   limit,
			Skip:    skip,
			HasMore: int64(skip+limit) < total,
		}
	}

	resp.Messages = messages
	return resp, nil
}
