// Package domain models one run of the mission briefing: the entities fetched
// from upstream APIs and the pure functions that derive metrics from them.
//
// # Data Sources
//
// Five public REST APIs feed a run. The city lookup resolves an observer
// location (geocoding search, first candidate wins). The remaining four are
// independent of each other: current ISS position, the soonest upcoming rocket
// launch, the astronomy picture of the day, and a near-earth-object feed for a
// date range. Adapter packages under internal/adapter own the wire formats;
// this package sees only the parsed entities.
//
// # Derived Metrics
//
// Distance between the observer and the ISS uses the spherical haversine
// formula with an Earth radius of 6371 km. Haversine rather than the
// law-of-cosines keeps the result numerically stable near antipodal points.
//
// Time to launch is (scheduled liftoff − now) in hours. An unparseable liftoff
// timestamp yields 0 hours instead of failing the run.
//
// The NEO summary flattens the date-keyed feed into counts, a maximum
// estimated diameter, and a minimum close-approach miss distance. Only the
// first close-approach entry of each object is considered; entries without a
// usable distance are skipped, and when no object has one the minimum falls
// back to an explicit 0 km floor (conflating "no data" with "contact" — kept
// for output parity, see [NeoSummary.ValidMissCount]).
//
// # Magnitude Buckets
//
// The feed carries no absolute-magnitude data, so bucketing uses a synthetic
// placeholder signal: hazardous objects are assigned magnitude 4.0, all others
// 2.9, bucketed at thresholds 3 and 4. This is NOT physically meaningful — it
// stands in for real H-magnitude values until a data source provides them.
// The thresholds and resulting histogram are part of the output contract.
//
// # Threat Score
//
// The composite score is a fixed weighted sum over the summary plus ISS
// proximity and launch imminence, rounded to an integer and classified
// LOW (<10), MEDIUM (>=10), HIGH (>=18). Weights and thresholds are constants
// of the design, not configuration. See [AssessThreat].
package domain
