package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/srosero/lavarenta/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	equipmentID := 1

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "order exists",
			id:   7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "customer_name", "status", "assigned_equipment_id", "created_at"}).
					AddRow(7, "Marta Rojas", "delivered", &equipmentID, now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			result: &domain.Order{ID: 7, CustomerName: "Marta Rojas", Status: domain.OrderDelivered, AssignedEquipmentID: &equipmentID, CreatedAt: now},
		},
		{
			name: "order does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "database error",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.GetByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, order)
		})
	}
}
