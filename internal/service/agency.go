package service

import (
	"context"

	"edl-backend/internal/domain"
	"edl-backend/internal/repository"
)

type agencyService struct {
	agencies repository.AgencyRepository
}

func NewAgencyService(agencies repository.AgencyRepository) AgencyService {
	return &agencyService{agencies: agencies}
}

func (s *agencyService) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	return s.agencies.List(ctx)
}
