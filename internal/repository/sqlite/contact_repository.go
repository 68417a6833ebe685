package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"site-backend/internal/domain"
	"site-backend/internal/repository"
)

const createContactTable = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reference TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createContactTable); err != nil {
		return fmt.Errorf("create contact messages table: %w", err)
	}
	return nil
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (int64, error) {
	msg.CreatedAt = time.Now().UTC()
	if msg.Reference == "" {
		msg.Reference = uuid.NewString()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO contact_messages (reference, name, email, message, created_at)
VALUES (?, ?, ?, ?, ?)`,
		msg.Reference,
		msg.Name,
		msg.Email,
		msg.Message,
		msg.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contact message last insert id: %w", err)
	}
	msg.ID = id
	return id, nil
}
