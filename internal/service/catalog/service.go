package catalog

import (
	"context"
	"fmt"

	"github.com/campusbook/VenueBookingService/internal/domain"
)

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Category string `json:"category"`
}

// ClubResponse ответ с данными клуба
type ClubResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	GroupCategory string `json:"groupCategory"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// ClubListResponse ответ со списком клубов
type ClubListResponse struct {
	Clubs []ClubResponse `json:"clubs"`
}

// Service сервис чтения справочника площадок и клубов
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListVenues возвращает каталог площадок
func (s *Service) ListVenues(ctx context.Context) (*VenueListResponse, error) {
	venues, err := s.repo.ListVenues(ctx)
	if err != nil {
		s.logger.Error("ListVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVenues - repository error: %v", ErrInternal, err)
	}

	resp := &VenueListResponse{Venues: make([]VenueResponse, 0, len(venues))}
	for _, v := range venues {
		resp.Venues = append(resp.Venues, fromDomainVenue(v))
	}

	return resp, nil
}

// ListClubs возвращает каталог клубов
func (s *Service) ListClubs(ctx context.Context) (*ClubListResponse, error) {
	clubs, err := s.repo.ListClubs(ctx)
	if err != nil {
		s.logger.Error("ListClubs: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClubs - repository error: %v", ErrInternal, err)
	}

	resp := &ClubListResponse{Clubs: make([]ClubResponse, 0, len(clubs))}
	for _, c := range clubs {
		resp.Clubs = append(resp.Clubs, ClubResponse{
			ID:            c.ID,
			Name:          c.Name,
			GroupCategory: c.GroupCategory,
		})
	}

	return resp, nil
}

func fromDomainVenue(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:       v.ID,
		Name:     v.Name,
		Capacity: v.Capacity,
		Category: string(v.Category),
	}
}
