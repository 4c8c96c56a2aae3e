package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO announcements (id, sender_id, recipient_id, target, title, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.SenderID,
		a.RecipientID,
		a.Target,
		a.Title,
		a.Message,
	).Scan(&a.CreatedAt)

	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// ListVisibleTo implements announcement.AnnouncementRepository.
func (r *announcementRepository) ListVisibleTo(ctx context.Context, userID string, limit int) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.sender_id, a.recipient_id, a.target, a.title, a.message, a.created_at,
			   u.name AS sender_name
		FROM announcements a
		LEFT JOIN users u ON u.id = a.sender_id
		WHERE a.target = $1 OR a.recipient_id = $2
		ORDER BY a.created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, announcement.TargetAll, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var anns []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(
			&a.ID, &a.SenderID, &a.RecipientID, &a.Target, &a.Title, &a.Message, &a.CreatedAt,
			&a.SenderName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		anns = append(anns, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcements: %w", err)
	}

	return anns, nil
}

// DeleteByUser implements announcement.AnnouncementRepository.
func (r *announcementRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM announcements WHERE sender_id = $1 OR recipient_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete announcements for user: %w", err)
	}

	return nil
}
