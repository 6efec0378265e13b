// internal/storage/postgres/messages.go
package postgres

import (
	"context"
	"fmt"
	"log"

	"placement-portal/internal/models"
	"placement-portal/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageColumns = `id, application_id, sender_email, sender_role, receiver_email, receiver_role, content, sent_at`

// MessageRepo implements the storage.MessageRepository interface using
// PostgreSQL. Content is already ciphertext by the time it reaches here.
type MessageRepo struct {
	db Querier
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{db: db}
}

// Compile-time check to ensure MessageRepo implements MessageRepository
var _ storage.MessageRepository = (*MessageRepo)(nil)

// Create appends a message to an application's thread.
func (r *MessageRepo) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query := fmt.Sprintf(`
		INSERT INTO messages (id, application_id, sender_email, sender_role, receiver_email, receiver_role, content, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`, messageColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		msg.ApplicationID,
		msg.SenderEmail,
		msg.SenderRole,
		msg.ReceiverEmail,
		msg.ReceiverRole,
		msg.Content,
	)

	var created models.Message
	err := row.Scan(
		&created.ID,
		&created.ApplicationID,
		&created.SenderEmail,
		&created.SenderRole,
		&created.ReceiverEmail,
		&created.ReceiverRole,
		&created.Content,
		&created.SentAt,
	)

	if err != nil {
		if isPgErrCode(err, "23503") { // foreign_key_violation on application_id
			log.Printf("Error creating message: invalid application ID %s: %v\n", msg.ApplicationID, err)
			return nil, fmt.Errorf("failed to create message: invalid application ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating message: %v\n", err)
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &created, nil
}

// ListByApplication retrieves an application's thread in send order.
func (r *MessageRepo) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]models.Message, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM messages`, messageColumns),
		[]string{"application_id = $1"},
		"sent_at ASC",
	)

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		log.Printf("Error querying messages for application %s: %v\n", applicationID, err)
		return nil, fmt.Errorf("failed to query messages for application: %w", err)
	}
	defer rows.Close()

	msgs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Message])
	if err != nil {
		log.Printf("Error scanning messages for application %s: %v\n", applicationID, err)
		return nil, fmt.Errorf("failed to scan messages for application: %w", err)
	}

	if msgs == nil {
		msgs = []models.Message{} // Return empty slice, not nil
	}

	return msgs, nil
}
