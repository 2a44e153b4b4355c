// file: internals/features/sync/processor/lists.go
package processor

import "gorm.io/datatypes"

// toJSONList: []string → kolom JSON text; kosong tetap [], bukan NULL.
func toJSONList(items []string) datatypes.JSONSlice[string] {
	if items == nil {
		items = []string{}
	}
	return datatypes.NewJSONSlice(items)
}
