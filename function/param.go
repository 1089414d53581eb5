// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package function

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gogpu/parametric/expr"
	"github.com/gogpu/parametric/internal/logging"
)

// ParamKind tells how a Param resolves.
type ParamKind uint8

const (
	// ParamNumber is a literal number.
	ParamNumber ParamKind = iota
	// ParamText is a string. Resolved as a number it is an expression.
	ParamText
	// ParamInvalid is a configuration value of any other type.
	ParamInvalid
)

// Param is a parameter value: a number, or text evaluated as an
// expression each time it is resolved. Params are never cached across
// evaluations, so expressions that reference time stay live.
type Param struct {
	kind ParamKind
	num  float64
	text string
}

// Number returns a literal number parameter.
func Number(v float64) Param { return Param{kind: ParamNumber, num: v} }

// Text returns a text parameter.
func Text(s string) Param { return Param{kind: ParamText, text: s} }

// Kind reports how p resolves.
func (p Param) Kind() ParamKind { return p.kind }

// String returns the text of a text parameter, or the configuration
// source of any other kind.
func (p Param) String() string {
	if p.kind == ParamNumber {
		return strconv.FormatFloat(p.num, 'g', -1, 64)
	}
	return p.text
}

// Resolve returns the numeric value of p in ctx. Text is evaluated as an
// expression; an invalid value resolves to 0 with a diagnostic.
func (p Param) Resolve(ctx Context) float64 {
	switch p.kind {
	case ParamNumber:
		return p.num
	case ParamText:
		return expr.Evaluate(p.text, ctx)
	default:
		logging.Logger().Warn("parameter is neither a number nor an expression", "value", p.text)
		return 0
	}
}

// UnmarshalJSON decodes a number or a string. Any other JSON value
// becomes an invalid parameter rather than a decoding error.
func (p *Param) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Param{kind: ParamInvalid, text: "null"}
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = Number(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Text(s)
		return nil
	}
	*p = Param{kind: ParamInvalid, text: string(data)}
	return nil
}

// MarshalJSON encodes numbers as numbers and everything else as its text.
func (p Param) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case ParamNumber:
		return json.Marshal(p.num)
	case ParamText:
		return json.Marshal(p.text)
	default:
		return []byte(p.text), nil
	}
}

// Config is one node of a point-function tree. Func names the function;
// Params holds its scalar parameters. Composites keep their nested
// configs in Functions (sum, multiply, morph) or From and To
// (directed_line).
type Config struct {
	Func      string
	Params    map[string]Param
	Functions []Config
	From, To  *Config
}

// Param returns the named parameter.
func (c *Config) Param(name string) (Param, bool) {
	p, ok := c.Params[name]
	return p, ok
}

// Set sets a parameter, allocating Params if needed, and returns c.
func (c *Config) Set(name string, p Param) *Config {
	if c.Params == nil {
		c.Params = make(map[string]Param)
	}
	c.Params[name] = p
	return c
}

// Name returns Func, or def when Func is empty.
func (c *Config) Name(def string) string {
	if c.Func == "" {
		return def
	}
	return c.Func
}

// UnmarshalJSON decodes {"func": name, ...params}. Malformed values are
// logged and replaced by their defaults; decoding itself never fails, so
// one broken entry cannot reject a whole document.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Config{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logging.Logger().Warn("point config is not an object, using defaults", "config", string(data))
		return nil
	}

	for key, val := range raw {
		switch key {
		case "func":
			if err := json.Unmarshal(val, &c.Func); err != nil {
				logging.Logger().Warn("func is not a string, using default", "value", string(val))
			}
		case "functions":
			if err := json.Unmarshal(val, &c.Functions); err != nil {
				logging.Logger().Warn("functions is not a list, ignoring", "value", string(val))
				c.Functions = nil
			}
		case "from", "to":
			if string(bytes.TrimSpace(val)) == "null" {
				continue
			}
			sub := new(Config)
			_ = sub.UnmarshalJSON(val)
			if key == "from" {
				c.From = sub
			} else {
				c.To = sub
			}
		default:
			var p Param
			_ = p.UnmarshalJSON(val)
			c.Set(key, p)
		}
	}
	return nil
}

// MarshalJSON encodes c in the form UnmarshalJSON reads.
func (c Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Params)+4)
	if c.Func != "" {
		out["func"] = c.Func
	}
	for k, p := range c.Params {
		out[k] = p
	}
	if c.Functions != nil {
		out["functions"] = c.Functions
	}
	if c.From != nil {
		out["from"] = c.From
	}
	if c.To != nil {
		out["to"] = c.To
	}
	return json.Marshal(out)
}
