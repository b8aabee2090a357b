package algoconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshlens/params"
)

// File is the on-disk form of a Registry.
//
//	mask: 0b00111              # absolute activation bitfield, optional
//	enable: [predicted_state]  # switched on after mask, optional
//	params:
//	  diffusion_centrality: {T: 3, q: 0.4}
type File struct {
	Mask   *uint8                    `yaml:"mask,omitempty" json:"mask,omitempty" validate:"omitempty,lte=31"`
	Enable []string                  `yaml:"enable,omitempty" json:"enable,omitempty" validate:"dive,kind"`
	Params map[string]map[string]any `yaml:"params,omitempty" json:"params,omitempty" validate:"dive,keys,kind,endkeys"`
}

var fileValidate *validator.Validate

func init() {
	fileValidate = validator.New()
	_ = fileValidate.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
		_, err := ParseKind(fl.Field().String())
		return err == nil
	})
}

// ErrInvalidConfig wraps every validation failure of a config file.
var ErrInvalidConfig = errors.New("algoconf: invalid config")

// LoadFile reads a YAML or JSON registry file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Load(data, filepath.Ext(path))
}

// Load parses a registry file from bytes. ext is a format hint (".yaml",
// ".yml", ".json"); empty means detect from content.
func Load(data []byte, ext string) (*File, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}

	var f File
	switch ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	for kind, bag := range f.Params {
		for k, v := range bag {
			bag[k] = normalize(v)
		}
		f.Params[kind] = bag
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the mask range and that every kind name is known.
func (f *File) Validate() error {
	if err := fileValidate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Registry builds a fresh Registry: mask first, then enable, then params.
func (f *File) Registry() (*Registry, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	r := New()
	if f.Mask != nil {
		r.SetAlgorithms(*f.Mask)
	}
	for _, name := range f.Enable {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		r.Set(k, true)
	}
	for name, values := range f.Params {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		r.SetParams(k, params.Of(values))
	}

	return r, nil
}

// FileOf is the inverse of Registry for values that survive YAML/JSON.
func FileOf(r *Registry) *File {
	mask := r.Mask()
	f := &File{Mask: &mask}
	for _, k := range Kinds() {
		b := r.Params(k)
		if b.Len() == 0 {
			continue
		}
		if f.Params == nil {
			f.Params = make(map[string]map[string]any)
		}
		m := make(map[string]any, b.Len())
		for _, key := range b.Keys() {
			m[key], _ = b.Raw(key)
		}
		f.Params[k.String()] = m
	}

	return f
}

// normalize maps decoder-specific scalar types onto the ones algorithms read:
// integral numbers become int, other numbers float64.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int64:
		return int(t)
	case uint64:
		return int(t)
	case []any:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalize(t[k])
		}
		return t
	}

	return v
}
