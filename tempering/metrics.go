package tempering

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/remc/exchange"
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names and labels.
const (
	metricsNamespace = "remc"

	labelKind   = "kind"
	labelResult = "result"
	labelPair   = "pair"
	labelRank   = "rank"

	kindLocal    = "local"
	kindExchange = "exchange"

	resultAccepted = "accepted"
	resultRejected = "rejected"
)

// metrics holds the ensemble's collectors. A nil *metrics records nothing.
type metrics struct {
	steps      *prometheus.CounterVec
	moves      *prometheus.CounterVec
	exchanges  *prometheus.CounterVec
	rankEnergy *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "steps_total",
			Help:      "Ensemble steps taken, by kind (local sweep or exchange).",
		}, []string{labelKind}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "local_moves_total",
			Help:      "Single-spin Metropolis trials, by result.",
		}, []string{labelResult}),
		exchanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "exchange_attempts_total",
			Help:      "Replica-exchange attempts, by lower rank of the pair and result.",
		}, []string{labelPair, labelResult}),
		rankEnergy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "rank_energy",
			Help:      "Current energy of the replica at each temperature rank.",
		}, []string{labelRank}),
	}
	var err error
	if m.steps, err = register(reg, m.steps); err != nil {
		return nil, err
	}
	if m.moves, err = register(reg, m.moves); err != nil {
		return nil, err
	}
	if m.exchanges, err = register(reg, m.exchanges); err != nil {
		return nil, err
	}
	if m.rankEnergy, err = register(reg, m.rankEnergy); err != nil {
		return nil, err
	}
	return m, nil
}

// register registers c, or returns the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observeLocal(accepted, proposed int) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(kindLocal).Inc()
	m.moves.WithLabelValues(resultAccepted).Add(float64(accepted))
	m.moves.WithLabelValues(resultRejected).Add(float64(proposed - accepted))
}

func (m *metrics) observeExchange(res exchange.RoundResult) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(kindExchange).Inc()
	for _, p := range res.Pairs {
		result := resultRejected
		if p.Accepted {
			result = resultAccepted
		}
		m.exchanges.WithLabelValues(strconv.Itoa(int(p.Lower)), result).Inc()
	}
}

func (m *metrics) observeEnergies(byRank []float64) {
	if m == nil {
		return
	}
	for r, e := range byRank {
		m.rankEnergy.WithLabelValues(strconv.Itoa(r)).Set(e)
	}
}
