package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-advisor/internal/adapter"
	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
)

type Services struct {
	AuthService           AuthService
	UserService           UserService
	TodoService           TodoService
	LLMService            LLMService
	FinanceAdvisorService FinanceAdvisorService
	AppInfoService        AppInfoService
	HealthService         HealthService
}

// NewServices wires every service. provider may be nil when no LLM API key
// is configured.
func NewServices(ctx context.Context, storages *store.Storages, provider adapter.LLMProvider, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	llm, err := NewLLMService(ctx, provider, cfg.OpenAI, m, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating llm service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, storages.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:           NewAuthService(storages.UserRepository, cfg.Auth, logger),
		UserService:           NewUserService(storages.UserRepository, logger),
		TodoService:           NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, logger)),
		LLMService:            llm,
		FinanceAdvisorService: NewFinanceAdvisorService(llm, logger),
		AppInfoService:        appInfo,
		HealthService:         NewHealthService(storages.Database, logger),
	}, nil
}
