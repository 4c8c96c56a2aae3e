package dashboard

import (
	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
)

// Pagination describes the recent-activity window.
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Skip    int   `json:"skip"`
	HasMore bool  `json:"has_more"`
}

// StatsResponse is the admin dashboard aggregate for today. Every metric is
// best-effort: a failed metric keeps its zero value and is reported in the
// advisory Messages list instead of failing the request.
type StatsResponse struct {
	TotalUsers         int64                           `json:"total_users"`
	ActiveToday        int64                           `json:"active_today"`
	OfficeToday        int64                           `json:"office_today"`
	RemoteToday        int64                           `json:"remote_today"`
	LateToday          int64                           `json:"late_today"`
	AbsentToday        int64                           `json:"absent_today"`
	OnLeaveToday       int64                           `json:"on_leave_today"`
	WeekOffToday       int64                           `json:"week_off_today"`
	PendingPermissions int64                           `json:"pending_permissions"`
	RecentActivity     []attendance.AttendanceResponse `json:"recent_activity"`
	Pagination         *Pagination                     `json:"pagination,omitempty"`
	Messages           []string                        `json:"messages,omitempty"`
}

// StatsFilter paginates the recent-activity feed.
type StatsFilter struct {
	Limit int
	Skip  int
}
