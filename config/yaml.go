package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modpoet/topology"
)

// yamlFile mirrors File with untyped topology values; YAML and JSON authors
// write numbers unquoted ("center: 0").
type yamlFile struct {
	ProjectName    string                   `yaml:"projectName"`
	Root           string                   `yaml:"root"`
	NumModules     int                      `yaml:"numModules"`
	AndroidModules int                      `yaml:"androidModules"`
	Topologies     []map[string]interface{} `yaml:"topologies"`
	Dependencies   []Dependency             `yaml:"dependencies"`
}

// ParseYAML decodes a YAML document. JSON input is accepted as well.
// Unknown top-level fields are rejected.
func ParseYAML(data []byte) (*File, error) {
	var raw yamlFile
	if err := yamlDecode(data, &raw); err != nil {
		return nil, err
	}

	f := &File{
		ProjectName:    raw.ProjectName,
		Root:           raw.Root,
		NumModules:     raw.NumModules,
		AndroidModules: raw.AndroidModules,
		Dependencies:   raw.Dependencies,
	}
	for i, m := range raw.Topologies {
		p := make(topology.Params, len(m))
		for k, v := range m {
			s, err := scalarString(v)
			if err != nil {
				return nil, fmt.Errorf("topologies[%d].%s: %w", i, k, err)
			}
			p[k] = s
		}
		f.Topologies = append(f.Topologies, p)
	}

	return f, nil
}

func yamlDecode(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// scalarString renders a decoded YAML scalar as a descriptor value.
func scalarString(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("value of type %T is not a scalar: %w", v, ErrInvalidConfig)
	}
}
