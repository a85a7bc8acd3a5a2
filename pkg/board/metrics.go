package board

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	phaseOver  = "over"
	phaseDrop  = "drop"
	phasePlace = "place"

	kindMove    = "move"
	kindReorder = "reorder"
	kindCheck   = "check"

	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	movesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplist_board_moves_total",
		Help: "Registry relocations applied, by drag phase",
	}, []string{"phase"})

	dragsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplist_board_drags_total",
		Help: "Finished drag sessions, by outcome",
	}, []string{"outcome"})

	commitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplist_board_commits_total",
		Help: "Backend commits issued by the board engine",
	}, []string{"kind", "result"})

	rollbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplist_board_rollbacks_total",
		Help: "Optimistic updates rolled back after a failed commit",
	}, []string{"kind"})
)
