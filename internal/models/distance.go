package models

// PairDistance represents one unordered pair of distinct points and the
// great-circle distance between them.
type PairDistance struct {
	A          Point
	B          Point
	DistanceKm float64
}

// Summary is the aggregated result of a run.
type Summary struct {
	Pairs         []PairDistance // Pairs ascending by distance.
	MeanKm        float64        // MeanKm is the arithmetic mean of all distances.
	ClosestToMean PairDistance   // ClosestToMean minimizes |distance - mean|.
}
