package domain

import "time"

type Hit struct {
	ID        int64     `json:"id"`
	App       string    `json:"app"`
	URI       string    `json:"uri"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

type StatsQuery struct {
	Start  time.Time
	End    time.Time
	URIs   []string
	Unique bool
}
