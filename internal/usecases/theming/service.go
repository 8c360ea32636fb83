// Package theming gerencia a preferência de tema do dashboard como um
// objeto de contexto explícito: lida uma vez na inicialização, persistida a
// cada mudança, sem estado global ambiente.
package theming

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-insights-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
)

// ErrInvalidTheme indica um valor de tema desconhecido
var ErrInvalidTheme = errors.New("tema inválido")

// SystemSignal informa a preferência clara/escura do ambiente, consultada
// apenas quando a preferência persistida é "system"
type SystemSignal func() domain.Theme

// ThemeManager é o contrato consumido pela camada de apresentação
type ThemeManager interface {
	Current() domain.Theme
	Effective() domain.Theme
	Set(theme domain.Theme) error
	Toggle() (domain.Theme, error)
}

// Service implementa ThemeManager sobre o repositório de preferências
type Service struct {
	mu      sync.Mutex
	repo    repository.PreferenceRepository
	key     string
	signal  SystemSignal
	current domain.Theme
}

// NewService cria o gerenciador de tema, lendo o valor persistido uma única
// vez. Valor ausente ou desconhecido cai em "system".
func NewService(repo repository.PreferenceRepository, key string, signal SystemSignal) (*Service, error) {
	if signal == nil {
		signal = func() domain.Theme { return domain.ThemeLight }
	}

	service := &Service{
		repo:    repo,
		key:     key,
		signal:  signal,
		current: domain.ThemeSystem,
	}

	value, found, err := repo.Get(key)
	if err != nil {
		return nil, errors.Wrap(err, "lendo preferência de tema")
	}

	if found {
		theme := domain.Theme(value)
		if theme.Valid() {
			service.current = theme
		} else {
			log.L.WithField("value", value).Warn("preferência de tema persistida inválida, usando system")
		}
	}

	return service, nil
}

// Current retorna a preferência corrente (light, dark ou system)
func (s *Service) Current() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Effective resolve a preferência para light ou dark, consultando o sinal
// do sistema quando a preferência é "system"
func (s *Service) Effective() domain.Theme {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current != domain.ThemeSystem {
		return current
	}

	resolved := s.signal()
	if resolved != domain.ThemeDark {
		resolved = domain.ThemeLight
	}
	return resolved
}

// Set valida e persiste a nova preferência; a gravação acontece em toda
// mudança explícita
func (s *Service) Set(theme domain.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(s.key, string(theme)); err != nil {
		return errors.Wrap(err, "persistindo preferência de tema")
	}

	s.current = theme
	return nil
}

// Toggle alterna entre claro e escuro a partir do tema efetivo e persiste
func (s *Service) Toggle() (domain.Theme, error) {
	next := domain.ThemeLight
	if s.Effective() == domain.ThemeLight {
		next = domain.ThemeDark
	}

	if err := s.Set(next); err != nil {
		return "", err
	}

	return next, nil
}
