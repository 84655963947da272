package plan

import "fmt"

// Renumber rewrites sub-task ids to the zero-padded sequence "001", "002",
// ... in first-occurrence order and maps every dependency reference through
// the same table. The "none" marker is preserved. Renumbering twice is a
// no-op because the sequence maps onto itself.
func (p *Plan) Renumber() {
	if len(p.SubTasks) == 0 {
		return
	}
	mapping := make(map[string]string, len(p.SubTasks))
	for i := range p.SubTasks {
		mapping[p.SubTasks[i].ID] = fmt.Sprintf("%03d", i+1)
	}
	for i := range p.SubTasks {
		t := &p.SubTasks[i]
		t.ID = mapping[t.ID]
		for j, dep := range t.Dependencies {
			if mapped, ok := mapping[dep]; ok {
				t.Dependencies[j] = mapped
			}
		}
	}
}
