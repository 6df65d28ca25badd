package cluster

import (
	"fmt"

	"github.com/fulmenhq/wordrules/transform"
)

// Cluster is an equivalence class of training elements whose
// transformations are pairwise joinable and whose current, joined
// transformation still correctly reproduces every member's B from its
// A (invariants C1/C2 of the clustering core).
type Cluster struct {
	transformation transform.Transformation
	members        []*TrainingElement
}

// newCluster seeds a fresh cluster with first.
func newCluster(first *TrainingElement) *Cluster {
	return &Cluster{
		transformation: first.Transformation(),
		members:        []*TrainingElement{first},
	}
}

// Transformation returns the cluster's current, joined transformation.
func (c *Cluster) Transformation() transform.Transformation { return c.transformation }

// Members returns the cluster's members, in insertion order.
func (c *Cluster) Members() []*TrainingElement {
	cp := make([]*TrainingElement, len(c.members))
	copy(cp, c.members)
	return cp
}

// canAdd reports whether elem may join the cluster: its
// transformation must be joinable with the cluster's current one, and
// the resulting joined transformation must still correctly reproduce
// every existing member's B from its A, as well as elem's own B from
// its A. apply failures are treated as "cannot join", never as
// programmer errors.
func (c *Cluster) canAdd(elem *TrainingElement) (transform.Transformation, bool) {
	if !c.transformation.MaybeJoinable(elem.Transformation()) {
		return nil, false
	}
	joined := c.transformation.Join(elem.Transformation())
	for _, m := range c.members {
		got, err := joined.Apply(m.WordA())
		if err != nil || got != m.WordB() {
			return nil, false
		}
	}
	got, err := joined.Apply(elem.WordA())
	if err != nil || got != elem.WordB() {
		return nil, false
	}
	return joined, true
}

// add appends elem and replaces the current transformation with the
// joined one, if elem is admissible. Reports whether it was added.
func (c *Cluster) add(elem *TrainingElement) bool {
	joined, ok := c.canAdd(elem)
	if !ok {
		return false
	}
	c.transformation = joined
	c.members = append(c.members, elem)
	return true
}

func (c *Cluster) String() string {
	return fmt.Sprintf("<Cluster %s, %d elements>", c.transformation, len(c.members))
}

// Snapshot is an immutable, read-only view of a Cluster returned by
// Set.Snapshot. It shares no mutable state with the live
// cluster: later mutation of the Set does not change a
// Snapshot already taken.
type Snapshot struct {
	transformation transform.Transformation
	members        []*TrainingElement
}

// Transformation returns the cluster's transformation as of the
// snapshot.
func (s Snapshot) Transformation() transform.Transformation { return s.transformation }

// Members returns the cluster's members as of the snapshot, in
// insertion order.
func (s Snapshot) Members() []*TrainingElement {
	cp := make([]*TrainingElement, len(s.members))
	copy(cp, s.members)
	return cp
}

func (s Snapshot) String() string {
	return fmt.Sprintf("<Cluster %s, %d elements>", s.transformation, len(s.members))
}

func freeze(c *Cluster) Snapshot {
	return Snapshot{
		transformation: c.transformation,
		members:        c.Members(),
	}
}
