// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/rbfernandes/classificados-api/infrastructure/database/postgres"
	"github.com/rbfernandes/classificados-api/internal/domain"
)

const promotionsTable = "promotions"

//go:generate mockgen -source=promotion.go -destination=mocks/promotion_repository_mock.go -package=mocks

// PromotionRepository é a cópia durável das coleções de promoções. A coleção
// em memória do serviço é a fonte de verdade da sessão; aqui ela é gravada
// sempre por inteiro, categoria a categoria.
type PromotionRepository interface {
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Promotion, error)
	ReplaceCollection(ctx context.Context, category domain.Category, collection []domain.Promotion) error
}

type promotionRepository struct {
	conn *postgres.Connection
}

func NewPromotionRepository(conn *postgres.Connection) PromotionRepository {
	return &promotionRepository{
		conn: conn,
	}
}

func (r *promotionRepository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Promotion, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"id",
			"category",
			"title",
			"subtitle",
			"image",
			"link",
			"start_date",
			"end_date",
			"active",
			"order_index",
			"created_at",
			"updated_at",
		).
		From(promotionsTable).
		Where(squirrel.Eq{"category": string(category)}).
		OrderBy("created_at ASC").
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

	collection := make([]domain.Promotion, 0)
	for rows.Next() {
		promotion, err := r.scanPromotion(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear promoção")
		}
		collection = append(collection, *promotion)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return collection, nil
}

// ReplaceCollection substitui a coleção inteira da categoria em uma única
// transação: remove os registros atuais e insere o estado em memória
func (r *promotionRepository) ReplaceCollection(ctx context.Context, category domain.Category, collection []domain.Promotion) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(promotionsTable).
			Where(squirrel.Eq{"category": string(category)}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir query de remoção")
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return errors.Wrap(err, "erro ao limpar coleção da categoria")
		}

		if len(collection) == 0 {
			return nil
		}

		insert := squirrel.
			Insert(promotionsTable).
			Columns(
				"id",
				"category",
				"title",
				"subtitle",
				"image",
				"link",
				"start_date",
				"end_date",
				"active",
				"order_index",
				"created_at",
				"updated_at",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, p := range collection {
			insert = insert.Values(
				p.ID,
				string(p.Category),
				p.Title,
				p.Subtitle,
				p.Image,
				p.Link,
				p.StartDate,
				p.EndDate,
				p.Active,
				p.Order,
				p.CreatedAt,
				p.UpdatedAt,
			)
		}

		insertSQL, insertArgs, err := insert.ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir query de inserção")
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return errors.Wrap(err, "erro ao inserir coleção da categoria")
		}

		return nil
	})
}

func (r *promotionRepository) scanPromotion(rows *sql.Rows) (*domain.Promotion, error) {
	promotion := &domain.Promotion{}
	var category string

	err := rows.Scan(
		&promotion.ID,
		&category,
		&promotion.Title,
		&promotion.Subtitle,
		&promotion.Image,
		&promotion.Link,
		&promotion.StartDate,
		&promotion.EndDate,
		&promotion.Active,
		&promotion.Order,
		&promotion.CreatedAt,
		&promotion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	promotion.Category = domain.Category(category)
	return promotion, nil
}
