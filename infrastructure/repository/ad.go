package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/rbfernandes/classificados-api/infrastructure/database/postgres"
	"github.com/rbfernandes/classificados-api/internal/domain"
)

const adsTable = "ads"

//go:generate mockgen -source=ad.go -destination=mocks/ad_repository_mock.go -package=mocks

// AdFilters restringe a listagem de anúncios. O filtro de status recebe os
// valores brutos da coluna (a normalização acontece na camada de usecase).
type AdFilters struct {
	Category    *domain.Category
	RawStatuses []string
	OwnerID     *int
}

// AdRepository lê os anúncios do marketplace. O status retorna como gravado
// na coluna, com os valores históricos mistos em português e inglês.
type AdRepository interface {
	List(ctx context.Context, filters AdFilters) ([]domain.Ad, error)
	CountByRawStatus(ctx context.Context) (map[string]int, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) List(ctx context.Context, filters AdFilters) ([]domain.Ad, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"category",
			"title",
			"price",
			"owner_id",
			"status",
			"created_at",
			"updated_at",
		).
		From(adsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Category != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": string(*filters.Category)})
	}

	if len(filters.RawStatuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filters.RawStatuses})
	}

	if filters.OwnerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"owner_id": *filters.OwnerID})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	ads := make([]domain.Ad, 0)
	for rows.Next() {
		ad, err := r.scanAd(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear anúncio")
		}
		ads = append(ads, *ad)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return ads, nil
}

func (r *adRepository) CountByRawStatus(ctx context.Context) (map[string]int, error) {
	sqlQuery, args, err := squirrel.
		Select("status", "COUNT(*)").
		From(adsTable).
		GroupBy("status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var rawStatus string
		var count int
		if err := rows.Scan(&rawStatus, &count); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear contagem de status")
		}
		counts[rawStatus] = count
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return counts, nil
}

func (r *adRepository) scanAd(rows *sql.Rows) (*domain.Ad, error) {
	ad := &domain.Ad{}
	var category string

	err := rows.Scan(
		&ad.ID,
		&category,
		&ad.Title,
		&ad.Price,
		&ad.OwnerID,
		&ad.RawStatus,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ad.Category = domain.Category(category)
	return ad, nil
}
