package domain

import "time"

// DateLayout is the calendar-date format used by the dated upstream APIs.
const DateLayout = "2006-01-02"

// Location is the observer position resolved from a city name.
// Built once per run by the city-lookup adapter, immutable afterward.
type Location struct {
	Query       string  `json:"query"`
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// SatellitePosition is a single ISS observation.
type SatellitePosition struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	ObservedAt int64   `json:"observed_at"` // seconds since epoch
}

// LaunchEvent is the soonest scheduled rocket launch.
type LaunchEvent struct {
	Name     string `json:"name"`
	NET      string `json:"net"` // scheduled liftoff, RFC3339 UTC ("no earlier than")
	MediaURL string `json:"media_url,omitempty"`
}

// SkyImage is the astronomy picture (or video) of the day.
type SkyImage struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	MediaType string `json:"media_type"` // "image" or "video"
	URL       string `json:"url"`
}

// CloseApproach is one close-approach event of a near-earth object.
// MissKm is nil when the upstream distance was missing or unparseable.
type CloseApproach struct {
	Date   string   `json:"date"`
	MissKm *float64 `json:"miss_km,omitempty"`
}

// NearEarthObject is a single object record from the feed.
type NearEarthObject struct {
	Name         string          `json:"name"`
	Hazardous    bool            `json:"hazardous"`
	DiameterMinM float64         `json:"diameter_min_m"`
	DiameterMaxM float64         `json:"diameter_max_m"`
	Approaches   []CloseApproach `json:"approaches,omitempty"`
}

// NEOFeed maps calendar dates to the objects approaching on that date.
type NEOFeed struct {
	ElementCount int                          `json:"element_count"`
	Objects      map[string][]NearEarthObject `json:"objects"`
}

// MagnitudeBuckets is the three-bucket histogram over the synthetic
// magnitude placeholder (see the package documentation).
type MagnitudeBuckets struct {
	Lt3     int `json:"lt3"`
	Gte3Lt4 int `json:"gte3lt4"`
	Gte4    int `json:"gte4"`
}

// NeoSummary is the aggregate over all objects in a feed.
type NeoSummary struct {
	TotalCount     int              `json:"total_count"`
	HazardousCount int              `json:"hazardous_count"`
	MaxDiameterM   float64          `json:"max_diameter_m"`
	MinMissKm      float64          `json:"min_miss_km"`
	ValidMissCount int              `json:"valid_miss_count"` // objects contributing to MinMissKm
	Buckets        MagnitudeBuckets `json:"magnitude_buckets"`
}

// ThreatLevel classifies a threat score.
type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "LOW"
	ThreatMedium ThreatLevel = "MEDIUM"
	ThreatHigh   ThreatLevel = "HIGH"
)

// ThreatAssessment is the composite heuristic score and its classification.
type ThreatAssessment struct {
	Score int         `json:"score"`
	Level ThreatLevel `json:"level"`
}

// RunInput echoes the validated CLI arguments into the briefing.
type RunInput struct {
	City string `json:"city"`
	Days int    `json:"days"`
	Mode string `json:"mode"`
	Date string `json:"date"`
}

// Briefing is the single persisted output record of a run. Assembled once,
// never mutated.
type Briefing struct {
	GeneratedAt         time.Time         `json:"generated_at"`
	Input               RunInput          `json:"input"`
	Location            Location          `json:"location"`
	Satellite           SatellitePosition `json:"satellite"`
	SatelliteDistanceKm float64           `json:"satellite_distance_km"`
	NextLaunch          LaunchEvent       `json:"next_launch"`
	HoursToLaunch       float64           `json:"hours_to_launch"`
	SkyImage            SkyImage          `json:"sky_image"`
	NeoSummary          NeoSummary        `json:"neo_summary"`
	Threat              ThreatAssessment  `json:"threat"`
}
