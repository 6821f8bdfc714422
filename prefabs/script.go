package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

// ComboRule evaluates the stone pairing script. The script sees the picked
// indices as `first` and `second` and must assign the bool `crafted`.
type ComboRule struct {
	name     string
	compiled *tengo.Compiled
}

// LoadComboRule compiles the named script from scripts/.
func LoadComboRule(name string) (*ComboRule, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("first", 0)
	_ = script.Add("second", 0)
	_ = script.Add("crafted", false)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", name, err)
	}
	return &ComboRule{name: name, compiled: compiled}, nil
}

// Crafted reports whether picking first then second completes the recipe.
func (r *ComboRule) Crafted(first, second int) (bool, error) {
	if r == nil || r.compiled == nil {
		return false, fmt.Errorf("prefabs: combo rule not loaded")
	}
	c := r.compiled.Clone()
	if err := c.Set("first", first); err != nil {
		return false, err
	}
	if err := c.Set("second", second); err != nil {
		return false, err
	}
	if err := c.Run(); err != nil {
		return false, fmt.Errorf("prefabs: run script %s: %w", r.name, err)
	}
	return c.Get("crafted").Bool(), nil
}
