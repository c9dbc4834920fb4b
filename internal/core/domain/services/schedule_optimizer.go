package services

import (
	"slices"
	"time"

	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/errs"
)

// TravelLeg is the measured travel from one point of the schedule to the
// next.
type TravelLeg struct {
	DistanceKm        float64
	TravelTimeMinutes float64
}

// PickupLeg is the breakdown of an approach that detours through a
// pickup point: the leg into the pickup, plus the combined totals for
// pickup and onward travel to the job site.
type PickupLeg struct {
	PickupDistanceKm        float64
	PickupTravelTimeMinutes float64
	TotalDistanceKm         float64
	TotalTravelTimeMinutes  float64
}

// ScheduleStop is one job visit on a contractor's day. TravelToNext and
// Pickup are annotations filled in by the optimizer: TravelToNext is the
// actual travel from this stop's job site to the next stop (via the next
// stop's pickup point when one applies), Pickup is the detour breakdown
// for the approach into this stop.
type ScheduleStop struct {
	Job           *job.Job
	ScheduledDate time.Time
	TravelToNext  *TravelLeg
	Pickup        *PickupLeg
}

// NewScheduleStop builds a stop from a scheduled job. The job must carry
// a schedule; the stop's date is the job's scheduled calendar date.
func NewScheduleStop(aJob *job.Job) (ScheduleStop, error) {
	if err := aJob.Validate(); err != nil {
		return ScheduleStop{}, err
	}
	if aJob.ScheduledAt() == nil {
		return ScheduleStop{}, errs.NewValueIsRequiredError("scheduledAt")
	}

	return ScheduleStop{Job: aJob, ScheduledDate: *aJob.ScheduledAt()}, nil
}

// ExcludedStop is a stop the optimizer left out of the tour, with the
// reason it could not be routed.
type ExcludedStop struct {
	Stop   ScheduleStop
	Reason string
}

// TravelSummary aggregates the travel of a whole schedule.
type TravelSummary struct {
	TotalDistanceKm        float64
	TotalTravelTimeMinutes float64
	StopCount              int
	PickupCount            int
}

// OptimizedSchedule is the ordered multi-day route: stops grouped by
// calendar date, each day reordered for minimal greedy travel, plus the
// stops that could not be routed and the travel totals from the
// contractor's starting position through the last stop.
type OptimizedSchedule struct {
	Stops    []ScheduleStop
	Excluded []ExcludedStop
	Summary  TravelSummary
}

// ScheduleOptimizer orders a contractor's stops with a greedy
// nearest-neighbor walk. The route is a heuristic, not an exact optimum:
// each step visits the closest remaining stop of the day, which is cheap
// and good enough for the handful of visits a contractor does per day.
type ScheduleOptimizer struct{}

// NewScheduleOptimizer creates a ScheduleOptimizer.
func NewScheduleOptimizer() ScheduleOptimizer {
	return ScheduleOptimizer{}
}

// Optimize orders the stops day by day, starting each walk from where
// the contractor ends up: the current position for the first day's first
// stop, the previous job site after that. Days run in calendar order and
// are never mixed. When pickupMode is set, jobs that require a pickup
// are approached through their pickup point and the detour is recorded
// on the stop.
//
// Stops that cannot be routed are excluded with a reason, never guessed
// at. Ties on distance keep the earlier submitted stop first, so the
// result is deterministic for identical input.
func (o ScheduleOptimizer) Optimize(
	stops []ScheduleStop,
	current kernel.GeoLocation,
	pickupMode bool,
) (OptimizedSchedule, error) {
	if err := current.Validate(); err != nil {
		return OptimizedSchedule{}, errs.NewValueIsInvalidErrorWithCause("current", err)
	}

	routable, excluded := partitionStops(stops, pickupMode)

	days := groupByDate(routable)

	schedule := OptimizedSchedule{Excluded: excluded}
	position := current
	for _, day := range days {
		ordered, endPosition, err := o.orderDay(day, position, pickupMode, &schedule.Summary)
		if err != nil {
			return OptimizedSchedule{}, err
		}

		schedule.Stops = append(schedule.Stops, ordered...)
		position = endPosition
	}

	schedule.Summary.StopCount = len(schedule.Stops)

	return schedule, nil
}

// orderDay runs the nearest-neighbor walk over one day's stops,
// annotating travel legs and accumulating the summary. It returns the
// ordered stops and the position the contractor ends the day at.
func (o ScheduleOptimizer) orderDay(
	stops []ScheduleStop,
	start kernel.GeoLocation,
	pickupMode bool,
	summary *TravelSummary,
) ([]ScheduleStop, kernel.GeoLocation, error) {
	remaining := slices.Clone(stops)
	ordered := make([]ScheduleStop, 0, len(stops))
	position := start

	for len(remaining) > 0 {
		nearest, err := nearestIndex(remaining, position)
		if err != nil {
			return nil, kernel.GeoLocation{}, err
		}

		next := remaining[nearest]
		remaining = slices.Delete(remaining, nearest, nearest+1)

		leg, err := o.approach(&next, position, pickupMode)
		if err != nil {
			return nil, kernel.GeoLocation{}, err
		}

		summary.TotalDistanceKm += leg.DistanceKm
		summary.TotalTravelTimeMinutes += leg.TravelTimeMinutes
		if next.Pickup != nil {
			summary.PickupCount++
		}

		if len(ordered) > 0 {
			ordered[len(ordered)-1].TravelToNext = &leg
		}

		ordered = append(ordered, next)
		position = next.Job.Location()
	}

	return ordered, position, nil
}

// approach measures the travel into a stop from the given position,
// filling the stop's pickup breakdown when the detour applies. The
// returned leg is the full travel cost, detour included.
func (o ScheduleOptimizer) approach(
	stop *ScheduleStop,
	position kernel.GeoLocation,
	pickupMode bool,
) (TravelLeg, error) {
	if pickupMode && stop.Job.PickupRequired() {
		pickup := *stop.Job.PickupLocation()

		toPickup, err := position.DistanceTo(pickup)
		if err != nil {
			return TravelLeg{}, err
		}
		toSite, err := pickup.DistanceTo(stop.Job.Location())
		if err != nil {
			return TravelLeg{}, err
		}

		total := toPickup + toSite
		stop.Pickup = &PickupLeg{
			PickupDistanceKm:        toPickup,
			PickupTravelTimeMinutes: kernel.TravelTimeMinutes(toPickup),
			TotalDistanceKm:         total,
			TotalTravelTimeMinutes:  kernel.TravelTimeMinutes(total),
		}

		return TravelLeg{DistanceKm: total, TravelTimeMinutes: kernel.TravelTimeMinutes(total)}, nil
	}

	distance, err := position.DistanceTo(stop.Job.Location())
	if err != nil {
		return TravelLeg{}, err
	}

	return TravelLeg{DistanceKm: distance, TravelTimeMinutes: kernel.TravelTimeMinutes(distance)}, nil
}

// CalculateDistances annotates the stops, in the order given, with the
// direct travel leg to the following stop. It does not reorder and does
// not detour through pickups.
func (o ScheduleOptimizer) CalculateDistances(stops []ScheduleStop) ([]ScheduleStop, error) {
	annotated := slices.Clone(stops)
	for i := range annotated {
		annotated[i].TravelToNext = nil

		if i == len(annotated)-1 {
			break
		}
		if err := annotated[i].Job.Validate(); err != nil {
			return nil, err
		}
		if err := annotated[i+1].Job.Validate(); err != nil {
			return nil, err
		}

		distance, err := annotated[i].Job.Location().DistanceTo(annotated[i+1].Job.Location())
		if err != nil {
			return nil, err
		}

		annotated[i].TravelToNext = &TravelLeg{
			DistanceKm:        distance,
			TravelTimeMinutes: kernel.TravelTimeMinutes(distance),
		}
	}

	return annotated, nil
}

// TotalTravelInfo sums the travel annotations of an already annotated
// schedule. The approach into the first stop is counted only when it
// carries a pickup breakdown; a plain approach leg from an unknown
// starting position cannot be reconstructed from the stops alone.
func (o ScheduleOptimizer) TotalTravelInfo(stops []ScheduleStop) TravelSummary {
	summary := TravelSummary{StopCount: len(stops)}

	for i, stop := range stops {
		if stop.TravelToNext != nil {
			summary.TotalDistanceKm += stop.TravelToNext.DistanceKm
			summary.TotalTravelTimeMinutes += stop.TravelToNext.TravelTimeMinutes
		}
		if stop.Pickup != nil {
			summary.PickupCount++
			if i == 0 {
				summary.TotalDistanceKm += stop.Pickup.TotalDistanceKm
				summary.TotalTravelTimeMinutes += stop.Pickup.TotalTravelTimeMinutes
			}
		}
	}

	return summary
}

// nearestIndex finds the stop closest to the position. Strict comparison
// keeps the earliest stop on a tie.
func nearestIndex(stops []ScheduleStop, position kernel.GeoLocation) (int, error) {
	best := 0
	bestDistance := -1.0

	for i, stop := range stops {
		distance, err := position.DistanceTo(stop.Job.Location())
		if err != nil {
			return 0, err
		}

		if bestDistance < 0 || distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}

	return best, nil
}

// partitionStops splits stops into routable ones and excluded ones. A
// stop is excluded when its job is missing or not constructed, when it
// has no calendar date, or when pickup mode needs a pickup point the job
// does not carry.
func partitionStops(stops []ScheduleStop, pickupMode bool) ([]ScheduleStop, []ExcludedStop) {
	routable := make([]ScheduleStop, 0, len(stops))
	var excluded []ExcludedStop

	for _, stop := range stops {
		switch {
		case stop.Job == nil || stop.Job.Validate() != nil:
			excluded = append(excluded, ExcludedStop{Stop: stop, Reason: "job is not constructed"})
		case stop.ScheduledDate.IsZero():
			excluded = append(excluded, ExcludedStop{Stop: stop, Reason: "scheduled date is missing"})
		case pickupMode && stop.Job.PickupRequired() && stop.Job.PickupLocation() == nil:
			excluded = append(excluded, ExcludedStop{Stop: stop, Reason: "pickup location is missing"})
		default:
			routable = append(routable, stop)
		}
	}

	return routable, excluded
}

// groupByDate buckets stops by calendar date and returns the buckets in
// chronological order. Within a bucket the submitted order is preserved.
func groupByDate(stops []ScheduleStop) [][]ScheduleStop {
	byDate := make(map[string][]ScheduleStop)
	var keys []string

	for _, stop := range stops {
		key := stop.ScheduledDate.Format(time.DateOnly)
		if _, ok := byDate[key]; !ok {
			keys = append(keys, key)
		}
		byDate[key] = append(byDate[key], stop)
	}

	slices.Sort(keys)

	days := make([][]ScheduleStop, 0, len(keys))
	for _, key := range keys {
		days = append(days, byDate[key])
	}

	return days
}
