package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	GamesStarted    *prometheus.CounterVec
	GamesFinished   *prometheus.CounterVec
	GuessesAccepted prometheus.Counter
	GuessesRejected prometheus.Counter
	WordsDrawn      *prometheus.CounterVec
}

// New registers the collectors on reg. Use a fresh prometheus.NewRegistry()
// per server so tests can build several servers in one process.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GamesStarted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordl_games_started_total",
			Help: "Total number of games started, by mode",
		}, []string{"mode"}),
		GamesFinished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordl_games_finished_total",
			Help: "Total number of games finished, by result",
		}, []string{"result"}),
		GuessesAccepted: f.NewCounter(prometheus.CounterOpts{
			Name: "wordl_guesses_accepted_total",
			Help: "Total number of guesses accepted and scored",
		}),
		GuessesRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "wordl_guesses_rejected_total",
			Help: "Total number of submissions rejected (incomplete or unknown word)",
		}),
		WordsDrawn: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordl_words_drawn_total",
			Help: "Total number of target words drawn, by length",
		}, []string{"length"}),
	}
}

func (m *Metrics) IncrementGamesStarted(mode string) {
	m.GamesStarted.WithLabelValues(mode).Inc()
}

func (m *Metrics) IncrementGamesFinished(result string) {
	m.GamesFinished.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementGuessesAccepted() {
	m.GuessesAccepted.Inc()
}

func (m *Metrics) IncrementGuessesRejected() {
	m.GuessesRejected.Inc()
}

func (m *Metrics) IncrementWordsDrawn(length string) {
	m.WordsDrawn.WithLabelValues(length).Inc()
}
