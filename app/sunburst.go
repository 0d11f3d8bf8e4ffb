package app

import (
	"sort"

	"github.com/nowakemc/reporting-project/models"
)

// SunburstPayload is the parallel-array shape hierarchical chart libraries
// consume: every node has an id, a display label, its parent's id ("" for top
// level) and a value. Values roll up, so a parent equals the sum of its
// subtree plus anything sitting directly in it.
type SunburstPayload struct {
	IDs     []string `json:"ids"`
	Labels  []string `json:"labels"`
	Parents []string `json:"parents"`
	Values  []int64  `json:"values"`
}

// rootLabel names the synthetic node for documents with no parent path.
const rootLabel = "(no folder)"

// BuildSunburst expands folder aggregates into the full ancestor tree. The
// byCount flag switches the node value from total bytes to document count.
func BuildSunburst(aggs []models.FolderAggregate, byCount bool) *SunburstPayload {
	type node struct {
		label  string
		parent string
		value  int64
	}
	nodes := make(map[string]*node)

	for _, agg := range aggs {
		value := agg.TotalSize
		if byCount {
			value = agg.FileCount
		}

		segments := SplitFolderPath(agg.FullPath)
		if len(segments) == 0 {
			n, ok := nodes[rootLabel]
			if !ok {
				n = &node{label: rootLabel}
				nodes[rootLabel] = n
			}
			n.value += value
			continue
		}

		// Credit the aggregate to its own node and every ancestor.
		for i := 1; i <= len(segments); i++ {
			id := JoinSegments(segments[:i])
			n, ok := nodes[id]
			if !ok {
				parent := ""
				if i > 1 {
					parent = JoinSegments(segments[:i-1])
				}
				n = &node{label: segments[i-1], parent: parent}
				nodes[id] = n
			}
			n.value += value
		}
	}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	payload := &SunburstPayload{}
	for _, id := range ids {
		n := nodes[id]
		payload.IDs = append(payload.IDs, id)
		payload.Labels = append(payload.Labels, n.label)
		payload.Parents = append(payload.Parents, n.parent)
		payload.Values = append(payload.Values, n.value)
	}
	return payload
}
