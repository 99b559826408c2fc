package routing

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// LegRoute is a resolved leg ready for display
type LegRoute struct {
	Key   string             `json:"key"`
	Leg   itinerary.RouteLeg `json:"leg"`
	Route Route              `json:"route"`
	ETA   string             `json:"eta"`

	// LabelAt is where the ETA label is drawn, absent without a path
	LabelAt *LatLng `json:"label_at,omitempty"`
}

// Warning reports a leg that could not be routed
type Warning struct {
	Key     string             `json:"key"`
	Leg     itinerary.RouteLeg `json:"leg"`
	Message string             `json:"message"`
}

// Plan is the outcome of resolving every leg of a list
type Plan struct {
	Routes   []LegRoute `json:"routes"`
	Warnings []Warning  `json:"warnings"`
}

// Planner resolves legs concurrently. A failing leg becomes a warning and
// never affects the others.
type Planner struct {
	resolver    Resolver
	concurrency int
	timeout     time.Duration
}

// NewPlanner creates a Planner; concurrency < 1 means one leg at a time
func NewPlanner(resolver Resolver, concurrency int, timeout time.Duration) *Planner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Planner{resolver: resolver, concurrency: concurrency, timeout: timeout}
}

// Resolve routes every leg of destinations. Results keep leg order.
func (p *Planner) Resolve(ctx context.Context, destinations []models.Destination) Plan {
	reqs := Requests(destinations)
	routes := make([]*LegRoute, len(reqs))
	warnings := make([]*Warning, len(reqs))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			legCtx := ctx
			if p.timeout > 0 {
				var cancel context.CancelFunc
				legCtx, cancel = context.WithTimeout(ctx, p.timeout)
				defer cancel()
			}
			route, err := p.resolver.Resolve(legCtx, req)
			if err != nil {
				log.Printf("route leg %d->%d (%s) failed: %v", req.Leg.OriginIndex, req.Leg.DestinationIndex, req.Mode, err)
				warnings[i] = &Warning{Key: req.Key(), Leg: req.Leg, Message: err.Error()}
				return nil
			}
			lr := &LegRoute{Key: req.Key(), Leg: req.Leg, Route: route, ETA: FormatDuration(route.DurationSeconds)}
			if mid, ok := route.Midpoint(); ok {
				lr.LabelAt = &mid
			}
			routes[i] = lr
			return nil
		})
	}
	_ = g.Wait()

	plan := Plan{Routes: []LegRoute{}, Warnings: []Warning{}}
	for i := range reqs {
		if routes[i] != nil {
			plan.Routes = append(plan.Routes, *routes[i])
		}
		if warnings[i] != nil {
			plan.Warnings = append(plan.Warnings, *warnings[i])
		}
	}
	return plan
}

// Apply keeps only the parts of plan that still match current. A route whose
// endpoints, coordinates or mode changed since it was requested is dropped,
// and surviving legs are re-indexed against current.
func Apply(current []models.Destination, plan Plan) Plan {
	legs := make(map[string]itinerary.RouteLeg)
	for _, req := range Requests(current) {
		legs[req.Key()] = req.Leg
	}

	out := Plan{Routes: []LegRoute{}, Warnings: []Warning{}}
	for _, r := range plan.Routes {
		if leg, ok := legs[r.Key]; ok {
			r.Leg = leg
			out.Routes = append(out.Routes, r)
		}
	}
	for _, w := range plan.Warnings {
		if leg, ok := legs[w.Key]; ok {
			w.Leg = leg
			out.Warnings = append(out.Warnings, w)
		}
	}
	return out
}
