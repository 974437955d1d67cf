package bohelper

import "time"

// Search is one recorded lookup of a needle inside a haystack, both kept as
// the hex text the user supplied.
type Search struct {
	When     time.Time
	Haystack string
	Needle   string
	Offsets  []int
}

type HistoryPort interface {
	Record(s Search) error
	Recent(limit int) ([]Search, error)
}
