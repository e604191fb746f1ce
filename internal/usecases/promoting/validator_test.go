package promoting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rbfernandes/classificados-api/internal/domain"
)

func TestValidateDateOrder(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:  "Data final posterior à inicial - aceita",
			start: day(1),
			end:   day(10),
		},
		{
			name:    "Datas iguais - rejeita",
			start:   day(5),
			end:     day(5),
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "Data final anterior à inicial - rejeita",
			start:   day(10),
			end:     day(1),
			wantErr: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateOrder(tt.start, tt.end)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateActivationCap(t *testing.T) {
	collection := func(activeIDs []string, inactiveIDs []string) []domain.Promotion {
		out := make([]domain.Promotion, 0, len(activeIDs)+len(inactiveIDs))
		for _, id := range activeIDs {
			out = append(out, domain.Promotion{ID: id, Active: true})
		}
		for _, id := range inactiveIDs {
			out = append(out, domain.Promotion{ID: id, Active: false})
		}
		return out
	}

	tests := []struct {
		name        string
		existing    []domain.Promotion
		excludingID string
		wantErr     error
	}{
		{
			name:     "Quatro ativas de cinco - aceita",
			existing: collection([]string{"a", "b", "c", "d"}, nil),
		},
		{
			name:     "Cinco ativas - rejeita",
			existing: collection([]string{"a", "b", "c", "d", "e"}, nil),
			wantErr:  ErrCapacityExceeded,
		},
		{
			name:        "Cinco ativas mas uma é a própria promoção editada - aceita",
			existing:    collection([]string{"a", "b", "c", "d", "e"}, nil),
			excludingID: "c",
		},
		{
			name:     "Inativas não contam para o limite",
			existing: collection([]string{"a", "b"}, []string{"x", "y", "z", "w"}),
		},
		{
			name:     "Coleção vazia - aceita",
			existing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActivationCap(tt.existing, tt.excludingID, 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNotExpired(t *testing.T) {
	// Momento de referência: 10 de junho de 2024, meio da tarde
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		wantErr error
	}{
		{
			name: "Termina hoje - ainda exibível, aceita",
			end:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Termina amanhã - aceita",
			end:  time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Terminou ontem - rejeita",
			end:     time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
			wantErr: ErrAlreadyExpired,
		},
		{
			name:    "Terminou ontem perto da meia-noite - granularidade é o dia, rejeita",
			end:     time.Date(2024, 6, 9, 23, 50, 0, 0, time.UTC),
			wantErr: ErrAlreadyExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotExpired(tt.end, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
