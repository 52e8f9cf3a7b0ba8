package sim

import (
	"sort"

	"github.com/automoto/ashgrove/components"
	"github.com/yohamta/donburi"
)

func sortByID(entries []*donburi.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return components.Identity.Get(entries[i]).ID < components.Identity.Get(entries[j]).ID
	})
}
