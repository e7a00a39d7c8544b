package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/catalog"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms mission Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: reaction-wheel -> reaction_wheel
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps a design.ShapeData so it can be returned from shape
// constructors and consumed by `component`.
type sexpShape struct {
	shape design.ShapeData
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(shape %s)", s.shape.Kind())
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpComponentRef wraps a component ID so scripts can refer to
// previously declared components.
type sexpComponentRef struct {
	id   design.ComponentID
	name string
}

func (c *sexpComponentRef) SexpString(ps *zygo.PrintState) string {
	if c.name != "" {
		return fmt.Sprintf("(component %q)", c.name)
	}
	return fmt.Sprintf("(component %s)", c.id)
}
func (c *sexpComponentRef) Type() *zygo.RegisteredType { return nil }

// sexpInterval wraps a design.Interval so it can be passed to `panel`.
type sexpInterval struct {
	iv design.Interval
}

func (v *sexpInterval) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(interval %g %g)", v.iv[0], v.iv[1])
}
func (v *sexpInterval) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toShape extracts a ShapeData from a sexpShape.
func toShape(s zygo.Sexp) (design.ShapeData, error) {
	if sh, ok := s.(*sexpShape); ok {
		return sh.shape, nil
	}
	return nil, fmt.Errorf("expected shape expression, got %T (%s)", s, s.SexpString(nil))
}

// toInterval extracts an Interval from a sexpInterval.
func toInterval(s zygo.Sexp) (design.Interval, error) {
	if v, ok := s.(*sexpInterval); ok {
		return v.iv, nil
	}
	return design.Interval{}, fmt.Errorf("expected interval expression, got %T (%s)", s, s.SexpString(nil))
}

// kwFloat reads an optional numeric keyword argument into dst.
func kwFloat(pa kwArgs, key, builtin string, dst *float64) error {
	v, ok := pa.kw[key]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", builtin, key, err)
	}
	*dst = f
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the mission DSL builtins into a zygomys
// environment. The builtins append to the provided Mission during
// evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, m *Mission) {

	// -----------------------------------------------------------------------
	// (rectangle :height 0.1 :width 0.23 :length 0.3)
	// -----------------------------------------------------------------------
	env.AddFunction("rectangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := design.RectangleData{}
		if err := kwFloat(pa, "height", "rectangle", &d.Height); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "width", "rectangle", &d.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "length", "rectangle", &d.Length); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape: d}, nil
	})

	// -----------------------------------------------------------------------
	// (sphere :radius 0.17)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := design.SphereData{}
		if err := kwFloat(pa, "radius", "sphere", &d.Radius); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape: d}, nil
	})

	// -----------------------------------------------------------------------
	// (cone :height 0.12 :base-radius 0.06 :top-radius 0.02)
	// -----------------------------------------------------------------------
	env.AddFunction("cone", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := design.ConeData{}
		if err := kwFloat(pa, "height", "cone", &d.Height); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "base-radius", "cone", &d.BaseRadius); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "top-radius", "cone", &d.TopRadius); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape: d}, nil
	})

	// -----------------------------------------------------------------------
	// (cylinder :height 0.2 :radius 0.09)
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := design.CylinderData{}
		if err := kwFloat(pa, "height", "cylinder", &d.Height); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "radius", "cylinder", &d.Radius); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape: d}, nil
	})

	// -----------------------------------------------------------------------
	// (interval 0 0.8)
	// -----------------------------------------------------------------------
	env.AddFunction("interval", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("interval requires exactly 2 arguments, got %d", len(args))
		}
		lo, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interval: start: %w", err)
		}
		hi, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interval: end: %w", err)
		}
		return &sexpInterval{iv: design.Interval{lo, hi}}, nil
	})

	// -----------------------------------------------------------------------
	// (component "battery" (cylinder :height 0.2 :radius 0.09)
	//            :mass 8.5 :power 0 :cost 50)
	// -----------------------------------------------------------------------
	env.AddFunction("component", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("component requires a name and a shape expression")
		}

		compName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("component: name: %w", err)
		}
		shape, err := toShape(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("component: shape: %w", err)
		}

		c := design.Component{
			ID:    design.NewComponentID(),
			Name:  compName,
			Shape: shape,
		}
		if err := kwFloat(pa, "mass", "component", &c.Mass); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "power", "component", &c.Power); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "cost", "component", &c.Cost); err != nil {
			return zygo.SexpNull, err
		}

		m.Components = append(m.Components, c)
		return &sexpComponentRef{id: c.ID, name: compName}, nil
	})

	// -----------------------------------------------------------------------
	// (preset "reaction-wheel")
	// -----------------------------------------------------------------------
	env.AddFunction("preset", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("preset requires a name argument")
		}
		presetName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("preset: name: %w", err)
		}
		c, err := catalog.Instantiate(presetName)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("preset: %w", err)
		}
		m.Components = append(m.Components, c)
		return &sexpComponentRef{id: c.ID, name: c.Name}, nil
	})

	// -----------------------------------------------------------------------
	// (panel "base" :plane "XZ" :normal "+Y"
	//        :x (interval 0 0.8) :y (interval 0 0.4) :z (interval 0 0.6))
	// -----------------------------------------------------------------------
	env.AddFunction("panel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p := design.PanelSurface{}

		if len(pa.positional) >= 1 {
			n, err := toString(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("panel: name: %w", err)
			}
			p.Name = n
		}

		v, ok := pa.kw["plane"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("panel: missing :plane")
		}
		planeStr, err := toString(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: plane: %w", err)
		}
		p.Plane, err = design.ParseBuildPlane(planeStr)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: %w", err)
		}

		v, ok = pa.kw["normal"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("panel: missing :normal")
		}
		faceStr, err := toString(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: normal: %w", err)
		}
		p.Normal, err = design.ParseFace(faceStr)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: %w", err)
		}

		intervals := []struct {
			key string
			dst *design.Interval
		}{
			{"x", &p.AvailableX},
			{"y", &p.AvailableY},
			{"z", &p.AvailableZ},
		}
		for _, entry := range intervals {
			v, ok := pa.kw[entry.key]
			if !ok {
				continue
			}
			iv, err := toInterval(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("panel: %s: %w", entry.key, err)
			}
			*entry.dst = iv
		}

		m.Panels = append(m.Panels, p)
		return zygo.SexpNull, nil
	})
}
