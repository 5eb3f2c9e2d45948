package teams

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CallDashboard/internal/service/teams/models"
)

// Service сервис для работы с командами
type Service struct {
	teamRepo TeamRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса команд
func NewService(teamRepo TeamRepository, logger Logger) *Service {
	return &Service{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

// GetAllActive возвращает активные команды, новые первыми
func (s *Service) GetAllActive(ctx context.Context) ([]models.TeamResponse, error) {
	teams, err := s.teamRepo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("GetAllActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllActive - repository error: %v", ErrInternal, err)
	}

	result := make([]models.TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, models.FromDomainTeam(team))
	}

	s.logger.Info("GetAllActive: found %d active teams", len(result))
	return result, nil
}
