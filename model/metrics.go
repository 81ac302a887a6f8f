package model

// GroupStats holds the per-group numbers for one metrics row.
//
// Count is a float64 so that segment rows can be averaged across files
// without a parallel type; whole-session values are always integral.
// Stdevs are population stdevs and are 0 whenever Count < 2.
type GroupStats struct {
	Count         float64
	VelocityMean  float64
	VelocityStdev float64
	AsyncMean     float64
	AsyncStdev    float64
}

// MetricsRecord is one computed row: stats for every event (Total) and for
// each anatomical group. Unclassified strikes count toward Total only.
type MetricsRecord struct {
	Label string
	Total GroupStats
	UE    GroupStats
	LF    GroupStats
	RF    GroupStats
}

// Segment is one time window of a session, 0-indexed. The interval is
// half-open [Start, End) except the final segment, which also includes End.
type Segment struct {
	Index int
	Start float64
	End   float64
}
