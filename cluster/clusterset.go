package cluster

// Set maps a transformation hash to the list of clusters that happen
// to collide on it (hash collisions are kept as separate clusters,
// never merged). Every element added to a Set ends up in exactly one
// cluster.
//
// Adding is never fatal: an element that cannot join any existing
// cluster in its bucket simply starts a new one.
type Set struct {
	buckets map[uint64][]*Cluster
	order   []uint64 // first-seen order of bucket keys, for deterministic Snapshot
}

// NewSet constructs an empty cluster set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]*Cluster)}
}

// Add inserts elem into the set: it joins the first cluster in its
// hash bucket that accepts it (per Cluster.canAdd), or starts a new
// cluster in that bucket if none do.
func (s *Set) Add(elem *TrainingElement) {
	key := elem.Hash()
	bucket, ok := s.buckets[key]
	if !ok {
		s.buckets[key] = []*Cluster{newCluster(elem)}
		s.order = append(s.order, key)
		return
	}
	for _, c := range bucket {
		if c.add(elem) {
			return
		}
	}
	s.buckets[key] = append(bucket, newCluster(elem))
}

// Snapshot returns an immutable view of the current partition.
// Cluster order is deterministic: buckets in first-seen order, and
// within a bucket, clusters in first-seen order. Member order within
// each cluster is insertion order. The returned snapshot does not
// observe later mutation of the set.
func (s *Set) Snapshot() []Snapshot {
	var result []Snapshot
	for _, key := range s.order {
		for _, c := range s.buckets[key] {
			result = append(result, freeze(c))
		}
	}
	return result
}

// Len returns the total number of clusters across all buckets.
func (s *Set) Len() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}
