package services

import (
	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/platform/config"
)

// NewServiceContainer wires every service over the repository container.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryContainer) (*portssvc.ServiceContainer, error) {
	tokenService, err := NewTokenService(cfg)
	if err != nil {
		return nil, err
	}
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.User),
		Token:     tokenService,
		Diagnosis: NewDiagnosisService(repos.Diagnosis),
		Voice:     NewVoiceService(repos.Voice),
		Weather:   NewWeatherService(repos.Weather),
	}, nil
}
