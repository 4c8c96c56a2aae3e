package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tyro-hq/tyro-backend-go/internal/config"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/geo"
	"golang.org/x/sync/errgroup"
)

// lateCutoffHour marks the start of late arrivals: any clock-in after
// 09:00 local is flagged.
const lateCutoffHour = 9

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	permission.PermissionRepository
	user.UserRepository
	offices config.OfficeConfig
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	permissionRepo permission.PermissionRepository,
	userRepo user.UserRepository,
	offices config.OfficeConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		PermissionRepository: permissionRepo,
		UserRepository:       userRepo,
		offices:              offices,
	}
}

// DayStart truncates t to local midnight, the canonical attendance date.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsLate reports whether a clock-in instant falls after the 09:00 cutoff.
func IsLate(t time.Time) bool {
	return t.Hour() > lateCutoffHour || (t.Hour() == lateCutoffHour && t.Minute() > 0)
}

// RoundHours converts a duration to hours rounded to 2 decimal places.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// MinOfficeDistance returns the smallest distance in meters from a point to
// any configured office.
func MinOfficeDistance(lat, lng float64, offices []config.OfficeLocation) float64 {
	minDistance := math.Inf(1)
	for _, office := range offices {
		d := geo.Distance(lat, lng, office.Latitude, office.Longitude)
		if d < minDistance {
			minDistance = d
		}
	}
	return minDistance
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		UserID:       att.UserID,
		Date:         att.Date.Format("2006-01-02"),
		LoginTime:    att.LoginTime.Format("2006-01-02 15:04:05"),
		LogoutTime:   timePtrToString(att.LogoutTime),
		TotalHours:   att.TotalHours,
		IsLate:       att.IsLate,
		WorkMode:     string(att.WorkMode),
		Status:       string(att.Status),
		UserName:     att.UserName,
		EmployeeID:   att.UserEmployeeID,
		Designation:  att.UserDesignation,
		ProfileImage: att.UserProfileImg,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := DayStart(now)

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	mode := attendance.WorkMode(req.Mode)

	if mode == attendance.WorkModeOffice {
		if req.Location == nil {
			return attendance.AttendanceResponse{}, attendance.ErrLocationRequired
		}

		minDistance := MinOfficeDistance(req.Location.Latitude, req.Location.Longitude, a.offices.Locations)
		if minDistance > a.offices.RadiusMeters {
			return attendance.AttendanceResponse{}, &attendance.OutsideRadiusError{
				MinDistanceMeters: minDistance,
				MaxAllowedMeters:  a.offices.RadiusMeters,
			}
		}
	}

	data := attendance.Attendance{
		UserID:    req.UserID,
		Date:      today,
		LoginTime: now,
		IsLate:    IsLate(now),
		WorkMode:  mode,
		// Late arrivals stay Present; lateness is only the flag.
		Status: attendance.StatusPresent,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		// A racing clock-in maps to ErrAlreadyClockedIn in the repository.
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := time.Now()
	today := DayStart(now)

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveRecord
	}
	if record.LogoutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	totalHours := RoundHours(now.Sub(record.LoginTime))

	updated, err := a.AttendanceRepository.SetClockOut(ctx, record.ID, now, totalHours)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	today := DayStart(time.Now())

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if record == nil {
		// Not clocked in yet; an absence marker, not an error.
		return attendance.TodayResponse{ClockedIn: false, Attendance: nil}, nil
	}

	resp := mapAttendanceToResponse(*record)
	return attendance.TodayResponse{ClockedIn: true, Attendance: &resp}, nil
}

// Report implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Report(ctx context.Context, filter attendance.ReportFilter) (attendance.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	now := time.Now()
	start := DayStart(now)
	end := start
	if filter.StartDate != nil && *filter.StartDate != "" {
		parsed, _ := time.ParseInLocation("2006-01-02", *filter.StartDate, now.Location())
		start = parsed
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		parsed, _ := time.ParseInLocation("2006-01-02", *filter.EndDate, now.Location())
		end = parsed
	}

	var (
		records []attendance.Attendance
		perms   []permission.Permission
		users   []user.User
	)

	// The three reads are independent; unlike the dashboard, the report is
	// all-or-nothing, so group cancellation is the right fit here.
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = a.AttendanceRepository.ListRange(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list attendances: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		perms, err = a.PermissionRepository.ListApprovedInRange(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list approved permissions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		users, err = a.UserRepository.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.ReportResponse{}, err
	}

	// Per-user counters, keyed by user id, seeded with zeroes.
	stats := make(map[string]*attendance.ReportUserSummary, len(users))
	order := make([]string, 0, len(users))
	for _, u := range users {
		stats[u.ID] = &attendance.ReportUserSummary{
			UserID:     u.ID,
			Name:       u.Name,
			EmployeeID: u.EmployeeID,
			Role:       string(u.Role),
		}
		order = append(order, u.ID)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapAttendanceToResponse(rec))

		s, ok := stats[rec.UserID]
		if !ok {
			continue
		}
		s.Present++
		if rec.TotalHours != nil {
			s.TotalHours += *rec.TotalHours
		}
		if rec.IsLate {
			s.Late++
		}
		if rec.Status == attendance.StatusHalfDay {
			s.HalfDay++
		}
	}

	// An overlapping approved permission counts once per user; day-by-day
	// expansion would need a holiday calendar the system does not have.
	for _, p := range perms {
		if s, ok := stats[p.UserID]; ok {
			s.Permissions++
		}
	}

	summary := make([]attendance.ReportUserSummary, 0, len(order))
	for _, id := range order {
		summary = append(summary, *stats[id])
	}

	return attendance.ReportResponse{
		RangeStart: start.Format("2006-01-02"),
		RangeEnd:   end.Format("2006-01-02"),
		Results:    len(responses),
		Summary:    summary,
		Records:    responses,
	}, nil
}
