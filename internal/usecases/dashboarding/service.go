package dashboarding

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

var (
	ErrDashboardNotFound = errors.New("dashboard não encontrado")
	ErrInvalidName       = errors.New("nome do dashboard é obrigatório")
)

// Dashboarder mantém as configurações de dashboard salvas pelos usuários,
// incluindo o compartilhamento somente leitura via token.
type Dashboarder interface {
	Create(userID int, name string, config json.RawMessage) (*domain.Dashboard, error)
	List(userID int) ([]*domain.Dashboard, error)
	Get(id, userID int) (*domain.Dashboard, error)
	Update(id, userID int, name string, config json.RawMessage) (*domain.Dashboard, error)
	Delete(id, userID int) error
	Share(id, userID int) (*domain.Dashboard, error)
	GetShared(token string) (*domain.Dashboard, error)
}

type Service struct {
	dashboardRepo repository.DashboardRepository
}

func NewService(dashboardRepo repository.DashboardRepository) Dashboarder {
	return &Service{dashboardRepo: dashboardRepo}
}

func (s *Service) Create(userID int, name string, config json.RawMessage) (*domain.Dashboard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if len(config) == 0 {
		config = json.RawMessage("{}")
	}

	return s.dashboardRepo.Create(&domain.Dashboard{
		UserID: userID,
		Name:   name,
		Config: config,
	})
}

func (s *Service) List(userID int) ([]*domain.Dashboard, error) {
	return s.dashboardRepo.ListByUser(userID)
}

func (s *Service) Get(id, userID int) (*domain.Dashboard, error) {
	dashboard, err := s.dashboardRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}

	return dashboard, nil
}

func (s *Service) Update(id, userID int, name string, config json.RawMessage) (*domain.Dashboard, error) {
	dashboard, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		dashboard.Name = name
	}
	if len(config) > 0 {
		dashboard.Config = config
	}

	if err := s.dashboardRepo.Update(dashboard); err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (s *Service) Delete(id, userID int) error {
	deleted, err := s.dashboardRepo.Delete(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDashboardNotFound
	}

	return nil
}

// Share gera um novo token de compartilhamento para o dashboard. Gerar de
// novo substitui o token anterior, invalidando o link antigo.
func (s *Service) Share(id, userID int) (*domain.Dashboard, error) {
	dashboard, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateShareToken()
	if err != nil {
		return nil, err
	}

	if err := s.dashboardRepo.SetShareToken(id, userID, token); err != nil {
		return nil, err
	}

	dashboard.ShareToken = &token
	return dashboard, nil
}

func (s *Service) GetShared(token string) (*domain.Dashboard, error) {
	if token == "" {
		return nil, ErrDashboardNotFound
	}

	dashboard, err := s.dashboardRepo.GetByShareToken(token)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}

	return dashboard, nil
}
