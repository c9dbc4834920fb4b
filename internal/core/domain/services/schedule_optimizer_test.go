package services_test

import (
	"testing"
	"time"

	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/core/domain/services"
	"jobmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledStop(t *testing.T, title string, location kernel.GeoLocation, at time.Time) services.ScheduleStop {
	t.Helper()
	aJob := testJob(t, title, []string{"plumbing"}, 0, location)
	require.NoError(t, aJob.Schedule(at, 60))

	stop, err := services.NewScheduleStop(aJob)
	require.NoError(t, err)
	return stop
}

func TestNewScheduleStop(t *testing.T) {
	t.Run("should build stop from scheduled job", func(t *testing.T) {
		aJob := testJob(t, "Morning visit", []string{"plumbing"}, 0, testLocation(t, 40.0, -75.0))
		at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		require.NoError(t, aJob.Schedule(at, 90))

		stop, err := services.NewScheduleStop(aJob)

		require.NoError(t, err)
		assert.True(t, stop.Job.IsEqual(aJob))
		assert.Equal(t, at, stop.ScheduledDate)
	})

	t.Run("should fail for unscheduled job", func(t *testing.T) {
		aJob := testJob(t, "No date yet", []string{"plumbing"}, 0, testLocation(t, 40.0, -75.0))

		_, err := services.NewScheduleStop(aJob)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail for invalid job", func(t *testing.T) {
		var invalid job.Job

		_, err := services.NewScheduleStop(&invalid)

		require.Error(t, err)
		require.ErrorIs(t, err, job.ErrJobIsNotConstructed)
	})
}

func TestScheduleOptimizer_Optimize(t *testing.T) {
	optimizer := services.NewScheduleOptimizer()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// Three sites on a meridian: A at the start, B ~11 km north, C ~22 km north.
	siteA := testLocation(t, 40.0, -75.0)
	siteB := testLocation(t, 40.1, -75.0)
	siteC := testLocation(t, 40.2, -75.0)

	t.Run("should walk a line of stops in geographic order", func(t *testing.T) {
		stopA := scheduledStop(t, "At A", siteA, day)
		stopB := scheduledStop(t, "At B", siteB, day)
		stopC := scheduledStop(t, "At C", siteC, day)

		// Shuffled input, contractor starts at A.
		schedule, err := optimizer.Optimize([]services.ScheduleStop{stopC, stopA, stopB}, siteA, false)

		require.NoError(t, err)
		require.Len(t, schedule.Stops, 3)
		assert.Equal(t, "At A", schedule.Stops[0].Job.Title())
		assert.Equal(t, "At B", schedule.Stops[1].Job.Title())
		assert.Equal(t, "At C", schedule.Stops[2].Job.Title())
		assert.Empty(t, schedule.Excluded)

		distAB, err := siteA.DistanceTo(siteB)
		require.NoError(t, err)
		distBC, err := siteB.DistanceTo(siteC)
		require.NoError(t, err)

		assert.InDelta(t, distAB+distBC, schedule.Summary.TotalDistanceKm, 1e-9)
		assert.InDelta(t, kernel.TravelTimeMinutes(distAB+distBC), schedule.Summary.TotalTravelTimeMinutes, 1e-9)
		assert.Equal(t, 3, schedule.Summary.StopCount)
		assert.Zero(t, schedule.Summary.PickupCount)
	})

	t.Run("should annotate travel legs toward the following stop", func(t *testing.T) {
		stopA := scheduledStop(t, "At A", siteA, day)
		stopB := scheduledStop(t, "At B", siteB, day)

		schedule, err := optimizer.Optimize([]services.ScheduleStop{stopB, stopA}, siteA, false)

		require.NoError(t, err)
		require.Len(t, schedule.Stops, 2)

		distAB, err := siteA.DistanceTo(siteB)
		require.NoError(t, err)

		require.NotNil(t, schedule.Stops[0].TravelToNext)
		assert.InDelta(t, distAB, schedule.Stops[0].TravelToNext.DistanceKm, 1e-9)
		assert.InDelta(t, kernel.TravelTimeMinutes(distAB), schedule.Stops[0].TravelToNext.TravelTimeMinutes, 1e-9)
		assert.Nil(t, schedule.Stops[1].TravelToNext, "last stop has no onward leg")
	})

	t.Run("should never mix calendar days and order them chronologically", func(t *testing.T) {
		tomorrow := day.AddDate(0, 0, 1)

		todayFar := scheduledStop(t, "Today far", siteC, day)
		todayNear := scheduledStop(t, "Today near", siteA, day)
		tomorrowStop := scheduledStop(t, "Tomorrow", siteB, tomorrow)

		schedule, err := optimizer.Optimize(
			[]services.ScheduleStop{tomorrowStop, todayFar, todayNear}, siteA, false)

		require.NoError(t, err)
		require.Len(t, schedule.Stops, 3)
		assert.Equal(t, "Today near", schedule.Stops[0].Job.Title())
		assert.Equal(t, "Today far", schedule.Stops[1].Job.Title())
		assert.Equal(t, "Tomorrow", schedule.Stops[2].Job.Title(),
			"tomorrow's stop stays last even though it is closer to the day's end position")
	})

	t.Run("should keep submitted order on distance ties", func(t *testing.T) {
		first := scheduledStop(t, "First twin", siteB, day)
		second := scheduledStop(t, "Second twin", siteB, day)

		schedule, err := optimizer.Optimize([]services.ScheduleStop{first, second}, siteA, false)

		require.NoError(t, err)
		require.Len(t, schedule.Stops, 2)
		assert.Equal(t, "First twin", schedule.Stops[0].Job.Title())
		assert.Equal(t, "Second twin", schedule.Stops[1].Job.Title())
	})

	t.Run("should route pickup jobs through the pickup point", func(t *testing.T) {
		pickupPoint := testLocation(t, 40.05, -74.9)

		withPickup := scheduledStop(t, "Needs materials", siteB, day)
		require.NoError(t, withPickup.Job.RequirePickup(pickupPoint))

		schedule, err := optimizer.Optimize([]services.ScheduleStop{withPickup}, siteA, true)

		require.NoError(t, err)
		require.Len(t, schedule.Stops, 1)
		require.NotNil(t, schedule.Stops[0].Pickup)

		direct, err := siteA.DistanceTo(siteB)
		require.NoError(t, err)
		toPickup, err := siteA.DistanceTo(pickupPoint)
		require.NoError(t, err)
		pickupToSite, err := pickupPoint.DistanceTo(siteB)
		require.NoError(t, err)

		pickup := schedule.Stops[0].Pickup
		assert.InDelta(t, toPickup, pickup.PickupDistanceKm, 1e-9)
		assert.InDelta(t, toPickup+pickupToSite, pickup.TotalDistanceKm, 1e-9)
		assert.GreaterOrEqual(t, pickup.TotalDistanceKm, direct,
			"detour through pickup can never beat the direct leg")

		assert.Equal(t, 1, schedule.Summary.PickupCount)
		assert.InDelta(t, pickup.TotalDistanceKm, schedule.Summary.TotalDistanceKm, 1e-9)
	})

	t.Run("should ignore pickup points when pickup mode is off", func(t *testing.T) {
		pickupPoint := testLocation(t, 40.05, -74.9)

		withPickup := scheduledStop(t, "Needs materials", siteB, day)
		require.NoError(t, withPickup.Job.RequirePickup(pickupPoint))

		schedule, err := optimizer.Optimize([]services.ScheduleStop{withPickup}, siteA, false)

		require.NoError(t, err)
		require.Len(t, schedule.Stops, 1)
		assert.Nil(t, schedule.Stops[0].Pickup)
		assert.Zero(t, schedule.Summary.PickupCount)

		direct, err := siteA.DistanceTo(siteB)
		require.NoError(t, err)
		assert.InDelta(t, direct, schedule.Summary.TotalDistanceKm, 1e-9)
	})

	t.Run("should exclude unroutable stops with a reason", func(t *testing.T) {
		good := scheduledStop(t, "Good", siteB, day)
		noDate := services.ScheduleStop{Job: good.Job}
		noJob := services.ScheduleStop{ScheduledDate: day}

		schedule, err := optimizer.Optimize([]services.ScheduleStop{good, noDate, noJob}, siteA, false)

		require.NoError(t, err)
		assert.Len(t, schedule.Stops, 1)
		require.Len(t, schedule.Excluded, 2)
		assert.Equal(t, "scheduled date is missing", schedule.Excluded[0].Reason)
		assert.Equal(t, "job is not constructed", schedule.Excluded[1].Reason)
	})

	t.Run("should return empty schedule for no stops", func(t *testing.T) {
		schedule, err := optimizer.Optimize(nil, siteA, false)

		require.NoError(t, err)
		assert.Empty(t, schedule.Stops)
		assert.Empty(t, schedule.Excluded)
		assert.Zero(t, schedule.Summary.TotalDistanceKm)
	})

	t.Run("should fail on invalid current position", func(t *testing.T) {
		_, err := optimizer.Optimize(nil, kernel.GeoLocation{}, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestScheduleOptimizer_CalculateDistances(t *testing.T) {
	optimizer := services.NewScheduleOptimizer()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	siteA := testLocation(t, 40.0, -75.0)
	siteB := testLocation(t, 40.1, -75.0)
	siteC := testLocation(t, 40.2, -75.0)

	t.Run("should annotate consecutive legs without reordering", func(t *testing.T) {
		stops := []services.ScheduleStop{
			scheduledStop(t, "At C", siteC, day),
			scheduledStop(t, "At A", siteA, day),
			scheduledStop(t, "At B", siteB, day),
		}

		annotated, err := optimizer.CalculateDistances(stops)

		require.NoError(t, err)
		require.Len(t, annotated, 3)
		assert.Equal(t, "At C", annotated[0].Job.Title(), "order is preserved")

		distCA, err := siteC.DistanceTo(siteA)
		require.NoError(t, err)

		require.NotNil(t, annotated[0].TravelToNext)
		assert.InDelta(t, distCA, annotated[0].TravelToNext.DistanceKm, 1e-9)
		assert.Nil(t, annotated[2].TravelToNext)
	})

	t.Run("should fail on invalid job in sequence", func(t *testing.T) {
		stops := []services.ScheduleStop{
			scheduledStop(t, "At A", siteA, day),
			{ScheduledDate: day},
		}

		_, err := optimizer.CalculateDistances(stops)

		require.Error(t, err)
	})
}

func TestScheduleOptimizer_TotalTravelInfo(t *testing.T) {
	optimizer := services.NewScheduleOptimizer()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	siteA := testLocation(t, 40.0, -75.0)
	siteB := testLocation(t, 40.1, -75.0)

	t.Run("should sum annotated legs", func(t *testing.T) {
		stops := []services.ScheduleStop{
			scheduledStop(t, "At A", siteA, day),
			scheduledStop(t, "At B", siteB, day),
		}

		annotated, err := optimizer.CalculateDistances(stops)
		require.NoError(t, err)

		summary := optimizer.TotalTravelInfo(annotated)

		distAB, err := siteA.DistanceTo(siteB)
		require.NoError(t, err)

		assert.Equal(t, 2, summary.StopCount)
		assert.InDelta(t, distAB, summary.TotalDistanceKm, 1e-9)
		assert.InDelta(t, kernel.TravelTimeMinutes(distAB), summary.TotalTravelTimeMinutes, 1e-9)
	})

	t.Run("should report zero for unannotated stops", func(t *testing.T) {
		stops := []services.ScheduleStop{scheduledStop(t, "At A", siteA, day)}

		summary := optimizer.TotalTravelInfo(stops)

		assert.Equal(t, 1, summary.StopCount)
		assert.Zero(t, summary.TotalDistanceKm)
	})
}
