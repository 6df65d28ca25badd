package report

import "github.com/antzucaro/matchr"

// jaroWinkler scores the similarity of two transformation strings,
// used to flag clusters whose rules are suspiciously close to another
// cluster's and might belong together.
func jaroWinkler(a, b string) float64 {
	return matchr.JaroWinkler(a, b, false)
}
