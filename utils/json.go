package utils

// JsonMergePatch applies patch to base following RFC 7396 and returns base.
func JsonMergePatch(base map[string]any, patch map[string]any) map[string]any {
	for k, v := range patch {
		if v == nil {
			delete(base, k)
			continue
		}

		if pv, ok := v.(map[string]any); ok {
			bv, ok := base[k].(map[string]any)
			if !ok {
				bv = make(map[string]any)
			}
			base[k] = JsonMergePatch(bv, pv)
			continue
		}

		base[k] = v
	}
	return base
}
