package gas

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes template selections.
	Metrics interface {
		ObserveSelection(selected, deferred, rejected int, gasUsed uint64, started time.Time)
	}
)
