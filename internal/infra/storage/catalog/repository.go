package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/campusbook/VenueBookingService/internal/domain"
	"github.com/campusbook/VenueBookingService/pkg/dbmetrics"
	"github.com/campusbook/VenueBookingService/pkg/psqlbuilder"
)

// Repository репозиторий справочника площадок и клубов
// Данные справочника неизменяемы с точки зрения движка бронирования
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetVenuesByIDs получает площадки по списку ID
// Возвращает только найденные строки: проверка полноты - на стороне вызывающего
func (r *Repository) GetVenuesByIDs(ctx context.Context, ids []int64) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "category").
		From("venues").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVenuesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenuesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVenues(rows)
}

// ListVenues получает полный каталог площадок
func (r *Repository) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "category").
		From("venues").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVenues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVenues(rows)
}

// GetClubByID получает клуб по ID
func (r *Repository) GetClubByID(ctx context.Context, id int64) (*domain.Club, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "group_category").
		From("clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClubByID - build select query: %v", ErrBuildQuery, err)
	}

	var club domain.Club
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&club.ID,
		&club.Name,
		&club.GroupCategory,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClubNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClubByID - scan club: %v", ErrScanRow, err)
	}

	return &club, nil
}

// ListClubs получает полный каталог клубов
func (r *Repository) ListClubs(ctx context.Context) ([]*domain.Club, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "group_category").
		From("clubs").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListClubs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClubs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clubs := make([]*domain.Club, 0)
	for rows.Next() {
		var club domain.Club
		if err := rows.Scan(&club.ID, &club.Name, &club.GroupCategory); err != nil {
			return nil, fmt.Errorf("%w: ListClubs - scan row: %v", ErrScanRow, err)
		}
		clubs = append(clubs, &club)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClubs - rows error: %v", ErrScanRow, err)
	}

	return clubs, nil
}

// scanVenues сканирует результаты запроса в слайс площадок
func (r *Repository) scanVenues(rows *sql.Rows) ([]*domain.Venue, error) {
	venues := make([]*domain.Venue, 0)

	for rows.Next() {
		var venue domain.Venue
		if err := rows.Scan(&venue.ID, &venue.Name, &venue.Capacity, &venue.Category); err != nil {
			return nil, fmt.Errorf("%w: scanVenues - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVenues - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}
