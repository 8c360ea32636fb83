package insighting

import (
	"sync"
	"time"

	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
	"github.com/vfg2006/dashboard-insights-api/pkg/utils"
)

// RefreshResult é o último retrato de recomputação concluído
type RefreshResult struct {
	RequestID   string                 `json:"request_id"`
	Range       domain.RangeSelector   `json:"range"`
	Summaries   []domain.MetricSummary `json:"summaries"`
	CompletedAt time.Time              `json:"completed_at"`
}

// Refresher modela o atraso simulado de busca entre a troca de período e a
// recomputação das visões derivadas. Se um novo pedido chegar antes do
// atraso expirar, o pedido pendente é descartado: vale sempre o último.
// A substituição é decidida por contador de geração, não por cancelamento
// de timer, para que um timer atrasado nunca sobrescreva um resultado
// mais novo.
type Refresher struct {
	mu         sync.Mutex
	generation uint64
	delay      time.Duration
	service    Insighter
	latest     *RefreshResult
}

// NewRefresher cria um Refresher com o atraso simulado configurado
func NewRefresher(service Insighter, delay time.Duration) *Refresher {
	return &Refresher{
		service: service,
		delay:   delay,
	}
}

// Request agenda a recomputação para o período informado e retorna o ID do
// pedido. O resultado fica disponível em Latest depois do atraso, a menos
// que outro pedido o substitua antes.
func (r *Refresher) Request(rng domain.RangeSelector, now time.Time) (string, error) {
	requestID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.generation++
	generation := r.generation
	r.mu.Unlock()

	log.L.WithFields(log.Fields{
		"request_id": requestID,
		"range":      string(rng),
	}).Debug("refresh agendado")

	time.AfterFunc(r.delay, func() {
		summaries := r.service.Summaries(rng, now)

		r.mu.Lock()
		defer r.mu.Unlock()

		// Pedido substituído durante o atraso: descarta sem aplicar
		if generation != r.generation {
			log.L.WithField("request_id", requestID).Debug("refresh superado, resultado descartado")
			return
		}

		r.latest = &RefreshResult{
			RequestID:   requestID,
			Range:       rng,
			Summaries:   summaries,
			CompletedAt: time.Now().UTC(),
		}
	})

	return requestID, nil
}

// Latest retorna o último resultado concluído, ou nil se ainda não há um
func (r *Refresher) Latest() *RefreshResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}
