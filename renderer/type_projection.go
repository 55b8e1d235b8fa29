package renderer

import (
	"os"
	"time"

	"github.com/plancast/plancast"
)

// Now is the current time used in reports.
// It reads an env override so that tests can pin it.
func Now() time.Time {
	if v := os.Getenv("PLANCAST_TESTING_NOW"); v != "" {
		t, err := time.Parse("2006-01-02 15:04:05", v)
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Projection is the renderable form of a finished simulation.
type Projection struct {
	Name      string         `json:"name,omitempty"`
	AsOf      string         `json:"asOf"`
	StartDate plancast.Date  `json:"startDate"`
	EndDate   plancast.Date  `json:"endDate"`
	Years     []YearReview   `json:"years"`
	Entities  []EntityReview `json:"entities"`
	Final     plancast.Money `json:"finalNetWorth"`
}

// YearReview is the aggregate position at one year end.
type YearReview struct {
	Date     plancast.Date  `json:"date"`
	Assets   plancast.Money `json:"assets"`
	Debt     plancast.Money `json:"debt"`
	NetWorth plancast.Money `json:"netWorth"`
}

// EntityReview is one entity's projected value at the horizon.
type EntityReview struct {
	Name  string         `json:"name"`
	Type  string         `json:"type"`
	Value plancast.Money `json:"value"`
}
