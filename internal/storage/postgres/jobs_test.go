package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"placement-portal/internal/models"
	"placement-portal/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureQuerier records the statement and arguments of the last QueryRow
// call and echoes the insert arguments back through the returned row.
type captureQuerier struct {
	sql  string
	args []any
}

func (q *captureQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *captureQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (q *captureQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return &insertedJobRow{args: args}
}

type insertedJobRow struct {
	args []any
}

func (r *insertedJobRow) Scan(dest ...any) error {
	now := time.Now()
	*dest[0].(*uuid.UUID) = r.args[0].(uuid.UUID)
	*dest[1].(*uuid.UUID) = r.args[1].(uuid.UUID)
	*dest[2].(*string) = r.args[2].(string)
	*dest[3].(*string) = r.args[3].(string)
	*dest[4].(*string) = r.args[4].(string)
	*dest[5].(*string) = r.args[5].(string)
	*dest[6].(*string) = r.args[6].(string)
	*dest[7].(*string) = r.args[7].(string)
	*dest[8].(*string) = r.args[8].(string)
	*dest[9].(*string) = r.args[9].(string)
	*dest[10].(**string) = r.args[10].(*string)
	*dest[11].(*models.ApprovalStatus) = r.args[11].(models.ApprovalStatus)
	*dest[12].(*time.Time) = now
	*dest[13].(*time.Time) = now
	return nil
}

func TestJobRepo_Create_ForcesPendingStatus(t *testing.T) {
	q := &captureQuerier{}
	repo := &JobRepo{db: q}

	req := &dto.CreateJobRequest{
		RecruiterProfileID:  uuid.New(),
		Title:               "Backend Intern",
		AdminApprovalStatus: "APPROVED", // decoder accepts it, the insert must not
	}

	job, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.True(t, strings.Contains(q.sql, "INSERT INTO jobs"))
	assert.Equal(t, models.ApprovalStatusPending, q.args[11])
	assert.Equal(t, models.ApprovalStatusPending, job.AdminApprovalStatus)
}
