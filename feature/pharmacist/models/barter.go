package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BarterScheme maps offer ID to the requirements for that offer.
type BarterScheme map[string]*BarterEntry

// BarterEntry holds the requirement structure attached to one offer. Three
// layouts appear in trader data: an array of alternative fulfillment groups
// (each an array of requirement objects), an array of bare requirement
// objects, or a mapping from arbitrary keys to requirement objects. The
// entry records which layout it was parsed from so a save reproduces it.
type BarterEntry struct {
	// Elems is set for the array layouts; each element is either a group or
	// a single requirement.
	Elems []BarterElem
	// Keyed is set for the mapping layout.
	Keyed map[string]*BarterRequirement
}

// BarterElem is one element of an array-shaped barter entry.
type BarterElem struct {
	// Group is non-nil when the element is itself an array of requirements.
	Group []*BarterRequirement
	// Single is non-nil when the element is a bare requirement object.
	Single *BarterRequirement
}

// UnmarshalJSON parses any of the three barter entry layouts.
func (e *BarterEntry) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("empty barter entry")
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(b, &elems); err != nil {
			return err
		}
		e.Elems = make([]BarterElem, 0, len(elems))
		for _, raw := range elems {
			inner := bytes.TrimLeft(raw, " \t\r\n")
			if len(inner) > 0 && inner[0] == '[' {
				var group []*BarterRequirement
				if err := json.Unmarshal(raw, &group); err != nil {
					return err
				}
				e.Elems = append(e.Elems, BarterElem{Group: group})
				continue
			}
			var req BarterRequirement
			if err := json.Unmarshal(raw, &req); err != nil {
				return err
			}
			e.Elems = append(e.Elems, BarterElem{Single: &req})
		}
		return nil
	case '{':
		keyed := make(map[string]*BarterRequirement)
		if err := json.Unmarshal(b, &keyed); err != nil {
			return err
		}
		e.Keyed = keyed
		return nil
	default:
		return fmt.Errorf("unexpected barter entry shape: %s", string(trimmed[:1]))
	}
}

// MarshalJSON writes the entry back in the layout it was parsed from.
func (e BarterEntry) MarshalJSON() ([]byte, error) {
	if e.Keyed != nil {
		return json.Marshal(e.Keyed)
	}
	out := make([]any, 0, len(e.Elems))
	for _, el := range e.Elems {
		if el.Group != nil {
			out = append(out, el.Group)
		} else if el.Single != nil {
			out = append(out, el.Single)
		}
	}
	return json.Marshal(out)
}

// BarterRequirement is one requirement object: what template is required and
// how many units. Unknown fields are carried through untouched so a scaled
// scheme still round-trips.
type BarterRequirement struct {
	Tpl   string
	Count float64
	// HasCount reports whether the source object carried a numeric count.
	HasCount bool

	raw map[string]json.RawMessage
}

// SetCount overwrites the requirement count.
func (r *BarterRequirement) SetCount(v float64) {
	r.Count = v
	r.HasCount = true
}

// UnmarshalJSON decodes the typed fields and keeps everything else raw.
func (r *BarterRequirement) UnmarshalJSON(b []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.raw = raw
	if v, ok := raw["_tpl"]; ok {
		if err := json.Unmarshal(v, &r.Tpl); err != nil {
			return err
		}
	}
	if v, ok := raw["count"]; ok {
		var f float64
		if err := json.Unmarshal(v, &f); err == nil {
			r.Count = f
			r.HasCount = true
		}
	}
	return nil
}

// MarshalJSON re-emits the original fields with the typed ones overlaid.
func (r *BarterRequirement) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.raw)+2)
	for k, v := range r.raw {
		out[k] = v
	}
	if r.Tpl != "" {
		tpl, err := json.Marshal(r.Tpl)
		if err != nil {
			return nil, err
		}
		out["_tpl"] = tpl
	}
	if r.HasCount {
		c, err := json.Marshal(r.Count)
		if err != nil {
			return nil, err
		}
		out["count"] = c
	}
	return json.Marshal(out)
}
