package entity

// Record is one generated row as returned by the LLM: an open mapping from
// field name to scalar value. The field set is determined by the prompt and is
// only resolved at validation time.
type Record map[string]any

// HasKeys reports whether the record contains every key in keys.
func (r Record) HasKeys(keys []string) bool {
	for _, k := range keys {
		if _, ok := r[k]; !ok {
			return false
		}
	}
	return true
}
