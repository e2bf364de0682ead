package models

import (
	"bytes"
	"encoding/json"
)

// Production holds the hideout crafting recipes. The file form differs
// between data sets: either a bare array of recipes or an object with a
// "recipes" key (plus sibling keys carried through opaquely).
type Production struct {
	Recipes []*Recipe

	wrapped bool
	raw     map[string]json.RawMessage
}

// UnmarshalJSON accepts both production file forms.
func (p *Production) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(b, &p.Recipes)
	}

	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.wrapped = true
	p.raw = raw
	if v, ok := raw["recipes"]; ok {
		if err := json.Unmarshal(v, &p.Recipes); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON writes the recipes back in the form they were read in.
func (p *Production) MarshalJSON() ([]byte, error) {
	if !p.wrapped {
		return json.Marshal(p.Recipes)
	}
	out := make(map[string]json.RawMessage, len(p.raw)+1)
	for k, v := range p.raw {
		out[k] = v
	}
	recipes, err := json.Marshal(p.Recipes)
	if err != nil {
		return nil, err
	}
	out["recipes"] = recipes
	return json.Marshal(out)
}

// Recipe is one hideout crafting recipe. Only the fields the pass reads or
// rewrites are typed; the rest round-trips untouched.
type Recipe struct {
	ID           string
	EndProduct   string
	Requirements []*RecipeRequirement

	raw map[string]json.RawMessage
}

// UnmarshalJSON decodes the typed fields and keeps everything else raw.
func (r *Recipe) UnmarshalJSON(b []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.raw = raw
	if v, ok := raw["_id"]; ok {
		if err := json.Unmarshal(v, &r.ID); err != nil {
			return err
		}
	}
	if v, ok := raw["endProduct"]; ok {
		if err := json.Unmarshal(v, &r.EndProduct); err != nil {
			return err
		}
	}
	if v, ok := raw["requirements"]; ok {
		if err := json.Unmarshal(v, &r.Requirements); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON re-emits the original fields with the typed ones overlaid.
func (r *Recipe) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.raw)+3)
	for k, v := range r.raw {
		out[k] = v
	}
	var err error
	if r.ID != "" {
		if out["_id"], err = json.Marshal(r.ID); err != nil {
			return nil, err
		}
	}
	if r.EndProduct != "" {
		if out["endProduct"], err = json.Marshal(r.EndProduct); err != nil {
			return nil, err
		}
	}
	if r.Requirements != nil {
		if out["requirements"], err = json.Marshal(r.Requirements); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// RecipeRequirement is one input of a crafting recipe.
type RecipeRequirement struct {
	Type  string
	Tpl   string
	Count float64
	// HasCount reports whether the source object carried a numeric count.
	HasCount bool

	raw map[string]json.RawMessage
}

// SetCount overwrites the requirement count.
func (r *RecipeRequirement) SetCount(v float64) {
	r.Count = v
	r.HasCount = true
}

// UnmarshalJSON decodes the typed fields and keeps everything else raw.
func (r *RecipeRequirement) UnmarshalJSON(b []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.raw = raw
	if v, ok := raw["type"]; ok {
		if err := json.Unmarshal(v, &r.Type); err != nil {
			return err
		}
	}
	if v, ok := raw["templateId"]; ok {
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
func (r *RecipeRequirement) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.raw)+3)
	for k, v := range r.raw {
		out[k] = v
	}
	var err error
	if r.Type != "" {
		if out["type"], err = json.Marshal(r.Type); err != nil {
			return nil, err
		}
	}
	if r.Tpl != "" {
		if out["templateId"], err = json.Marshal(r.Tpl); err != nil {
			return nil, err
		}
	}
	if r.HasCount {
		if out["count"], err = json.Marshal(r.Count); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}
