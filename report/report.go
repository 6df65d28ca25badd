// Package report renders a cluster.Set snapshot as a run report: a
// run identifier, one row per cluster with its shared transformation
// and member count, and a similarity annotation pointing at the
// nearest other cluster, for spotting rules that should probably have
// merged but didn't.
package report

import (
	"github.com/google/uuid"

	"github.com/fulmenhq/wordrules/cluster"
)

// ClusterRow is one row of a rendered report.
type ClusterRow struct {
	Index             int      `json:"index" yaml:"index"`
	Transformation    string   `json:"transformation" yaml:"transformation"`
	MemberCount       int      `json:"memberCount" yaml:"memberCount"`
	Examples          []string `json:"examples" yaml:"examples"`
	NearestIndex      int      `json:"nearestIndex" yaml:"nearestIndex"`
	NearestSimilarity float64  `json:"nearestSimilarity" yaml:"nearestSimilarity"`
}

// Report is a fully rendered run report.
type Report struct {
	RunID        string       `json:"runId" yaml:"runId"`
	ClusterCount int          `json:"clusterCount" yaml:"clusterCount"`
	Rows         []ClusterRow `json:"rows" yaml:"rows"`
}

// maxExamples bounds how many member word pairs are echoed per row.
const maxExamples = 3

// Build renders snapshots into a Report, annotating each cluster with
// its nearest neighbour by Jaro-Winkler similarity of transformation
// strings.
func Build(snapshots []cluster.Snapshot) Report {
	rows := make([]ClusterRow, len(snapshots))
	for i, snap := range snapshots {
		rows[i] = ClusterRow{
			Index:          i,
			Transformation: snap.Transformation().String(),
			MemberCount:    len(snap.Members()),
			Examples:       examples(snap),
		}
	}

	for i := range rows {
		nearest, score := nearestOther(rows, i)
		rows[i].NearestIndex = nearest
		rows[i].NearestSimilarity = score
	}

	return Report{
		RunID:        uuid.Must(uuid.NewV7()).String(),
		ClusterCount: len(rows),
		Rows:         rows,
	}
}

func examples(snap cluster.Snapshot) []string {
	members := snap.Members()
	n := len(members)
	if n > maxExamples {
		n = maxExamples
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = members[i].WordA() + " -> " + members[i].WordB()
	}
	return out
}

func nearestOther(rows []ClusterRow, i int) (int, float64) {
	best := -1
	bestScore := -1.0
	for j, row := range rows {
		if j == i {
			continue
		}
		score := jaroWinkler(rows[i].Transformation, row.Transformation)
		if score > bestScore {
			bestScore = score
			best = j
		}
	}
	if best == -1 {
		return -1, 0
	}
	return best, bestScore
}
