package renderer

import (
	"slices"

	"github.com/plancast/plancast"
)

// BuildProjection assembles the renderable report from a finished
// simulation. Entity values are taken at the projection horizon; the
// fallback entity appears only when it ended up holding value.
func BuildProjection(name, currency string, entities []plancast.Entity, sim *plancast.Simulation) *Projection {
	p := &Projection{
		Name:      name,
		AsOf:      Now().Format("2006-01-02"),
		StartDate: plancast.DateOfDay(sim.StartDay()),
		EndDate:   plancast.DateOfDay(sim.EndDay()),
		Final:     plancast.M(sim.NetWorth(sim.EndDay()), currency),
	}

	yearly := sim.YearlyDataPoints()
	days := make([]int, 0, len(yearly))
	for day := range yearly {
		days = append(days, day)
	}
	slices.Sort(days)
	for _, day := range days {
		dp := yearly[day]
		p.Years = append(p.Years, YearReview{
			Date:     plancast.DateOfDay(day),
			Assets:   plancast.M(dp.Assets, currency),
			Debt:     plancast.M(dp.Debt, currency),
			NetWorth: plancast.M(dp.NetWorth, currency),
		})
	}

	for _, e := range entities {
		value := sim.EntityValueOn(e.ID(), sim.EndDay())
		if _, ok := e.(*plancast.Fallback); ok && value == 0 {
			continue
		}
		p.Entities = append(p.Entities, EntityReview{
			Name:  e.Name(),
			Type:  entityTypeLabel(e),
			Value: plancast.M(value, currency),
		})
	}
	return p
}

func entityTypeLabel(e plancast.Entity) string {
	if t, ok := plancast.TypeOf(e); ok {
		return string(t)
	}
	return "cash"
}
