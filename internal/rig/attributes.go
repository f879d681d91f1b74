package rig

// Attributes is the published attribute dictionary of a module instance.
// It always contains at least "name". Writes are schemaless: any key/value
// pair is accepted and unknown keys are added rather than rejected, keeping
// module types open-ended.
type Attributes map[string]any

// DeepCopy returns a copy that shares no mutable containers with the
// original. Snapshots handed to blueprints and callers are always deep
// copies so a live, still-editable instance never aliases a saved document.
func (a Attributes) DeepCopy() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = copyValue(v)
	}
	return out
}

// copyValue copies the container types that appear in published attributes.
// Scalars are returned as-is.
func copyValue(v any) any {
	switch t := v.(type) {
	case Attributes:
		return t.DeepCopy()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = copyValue(t[i])
		}
		return out
	case [][]float64:
		out := make([][]float64, len(t))
		for i := range t {
			out[i] = append([]float64(nil), t[i]...)
		}
		return out
	case []float64:
		return append([]float64(nil), t...)
	case []string:
		return append([]string(nil), t...)
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, e := range t {
			out[k] = e
		}
		return out
	default:
		return v
	}
}
