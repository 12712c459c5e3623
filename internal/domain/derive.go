package domain

import (
	"math"
	"time"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// maxFeedDays is the widest date range the NEO feed accepts per request.
const maxFeedDays = 7

// HaversineKm computes the great-circle distance in kilometers between two
// points given in degrees. Haversine stays numerically stable near antipodal
// points where the law-of-cosines degrades.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HoursUntilLaunch returns the hours from now until the given RFC3339 liftoff
// timestamp. An unparseable timestamp yields 0 rather than failing the run.
func HoursUntilLaunch(net string) float64 {
	t, err := time.Parse(time.RFC3339, net)
	if err != nil {
		return 0
	}
	return t.Sub(clock.Now()).Hours()
}

// FeedDateRange derives the inclusive [start, end] range for the NEO feed:
// days is floored at 1 and clamped to the upstream 7-day cap, and the end
// date is start + (days − 1) in UTC calendar arithmetic. No observer-timezone
// adjustment is applied.
func FeedDateRange(start time.Time, days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	if days > maxFeedDays {
		days = maxFeedDays
	}
	start = start.UTC()
	return start, start.AddDate(0, 0, days-1)
}

// SummarizeNEOs flattens a date-keyed feed into aggregate statistics.
//
// Only the first close-approach entry of each object feeds the minimum miss
// distance; objects without a usable distance are skipped. When no object has
// one, MinMissKm falls back to 0 — an explicit floor, not "no data".
func SummarizeNEOs(feed NEOFeed) NeoSummary {
	s := NeoSummary{MinMissKm: math.Inf(1)}

	for _, objects := range feed.Objects {
		for _, o := range objects {
			s.TotalCount++
			if o.Hazardous {
				s.HazardousCount++
			}
			if o.DiameterMaxM > s.MaxDiameterM {
				s.MaxDiameterM = o.DiameterMaxM
			}
			if len(o.Approaches) > 0 && o.Approaches[0].MissKm != nil {
				s.ValidMissCount++
				if *o.Approaches[0].MissKm < s.MinMissKm {
					s.MinMissKm = *o.Approaches[0].MissKm
				}
			}

			switch m := syntheticMagnitude(o); {
			case m < 3:
				s.Buckets.Lt3++
			case m < 4:
				s.Buckets.Gte3Lt4++
			default:
				s.Buckets.Gte4++
			}
		}
	}

	if s.ValidMissCount == 0 {
		s.MinMissKm = 0
	}
	return s
}

// syntheticMagnitude is the placeholder bucketing signal: the feed carries no
// absolute-magnitude data, so the hazard flag is mapped to 4.0 (hazardous) or
// 2.9 (not). Do not mistake this for H-magnitude math; the mapping and the
// resulting histogram are part of the output contract.
func syntheticMagnitude(o NearEarthObject) float64 {
	if o.Hazardous {
		return 4.0
	}
	return 2.9
}
