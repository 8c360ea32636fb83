package theming

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const preferenceKey = "dashboard.theme"

func TestNewService_ReadsPersistedPreferenceOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("dark", true, nil).Times(1)

	service, err := NewService(repo, preferenceKey, nil)
	require.NoError(t, err)

	// Leituras subsequentes vêm da memória, sem tocar o repositório
	assert.Equal(t, domain.ThemeDark, service.Current())
	assert.Equal(t, domain.ThemeDark, service.Current())
	assert.Equal(t, domain.ThemeDark, service.Effective())
}

func TestNewService_AbsentPreferenceFallsBackToSystem(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("", false, nil)

	signal := func() domain.Theme { return domain.ThemeDark }

	service, err := NewService(repo, preferenceKey, signal)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeSystem, service.Current())
	assert.Equal(t, domain.ThemeDark, service.Effective())
}

func TestNewService_InvalidPersistedValueFallsBackToSystem(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("sepia", true, nil)

	service, err := NewService(repo, preferenceKey, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeSystem, service.Current())
	// Sinal nulo resolve "system" para claro
	assert.Equal(t, domain.ThemeLight, service.Effective())
}

func TestNewService_RepositoryFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("", false, errors.New("disco indisponível"))

	service, err := NewService(repo, preferenceKey, nil)

	assert.Nil(t, service)
	assert.Error(t, err)
}

func TestSet_PersistsEveryExplicitChange(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("", false, nil)
	repo.EXPECT().Set(preferenceKey, "dark").Return(nil)

	service, err := NewService(repo, preferenceKey, nil)
	require.NoError(t, err)

	require.NoError(t, service.Set(domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, service.Current())
}

func TestSet_RejectsUnknownTheme(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("light", true, nil)

	service, err := NewService(repo, preferenceKey, nil)
	require.NoError(t, err)

	err = service.Set(domain.Theme("sepia"))

	assert.Equal(t, ErrInvalidTheme, err)
	// Preferência corrente intacta depois da rejeição
	assert.Equal(t, domain.ThemeLight, service.Current())
}

func TestSet_PersistFailureKeepsCurrentTheme(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("light", true, nil)
	repo.EXPECT().Set(preferenceKey, "dark").Return(errors.New("disco indisponível"))

	service, err := NewService(repo, preferenceKey, nil)
	require.NoError(t, err)

	err = service.Set(domain.ThemeDark)

	assert.Error(t, err)
	assert.Equal(t, domain.ThemeLight, service.Current())
}

func TestToggle_AlternatesFromEffectiveTheme(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(preferenceKey).Return("", false, nil)
	repo.EXPECT().Set(preferenceKey, "dark").Return(nil)
	repo.EXPECT().Set(preferenceKey, "light").Return(nil)

	// Sinal claro: "system" resolve para light, toggle vai para dark
	service, err := NewService(repo, preferenceKey, func() domain.Theme { return domain.ThemeLight })
	require.NoError(t, err)

	next, err := service.Toggle()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, next)
	assert.Equal(t, domain.ThemeDark, service.Current())

	next, err = service.Toggle()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, next)
}
