package settings

// mergeJSON deep-merges an incoming partial value into the existing one.
// Maps merge key-by-key; anything else (including arrays) is replaced.
func mergeJSON(oldVal, newVal interface{}) interface{} {
	oldMap, oldIsMap := oldVal.(map[string]interface{})
	newMap, newIsMap := newVal.(map[string]interface{})
	if oldIsMap && newIsMap {
		out := make(map[string]interface{}, len(oldMap))
		for k, v := range oldMap {
			out[k] = v
		}
		for k, v := range newMap {
			if existing, ok := out[k]; ok {
				out[k] = mergeJSON(existing, v)
				continue
			}
			out[k] = v
		}
		return out
	}
	return newVal
}
