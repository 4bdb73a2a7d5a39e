package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pixelacme/uniparse/tree"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats returns every supported output format.
func Formats() []Format {
	return []Format{JSON, YAML, TOML}
}

// ParseFormat returns the format with the given name. "yml" is accepted as
// an alias for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("convert: unknown format %q", name)
}

// Write encodes t to w in format f.
func Write(w io.Writer, f Format, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		t = tree.New()
	}
	switch f {
	case JSON:
		return writeJSON(w, t.Root)
	case YAML:
		return writeYAML(w, t.Root)
	case TOML:
		return writeTOML(w, t.Root)
	}
	return fmt.Errorf("convert: unknown format %q", string(f))
}

func writeJSON(w io.Writer, root *tree.Block) error {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, root *tree.Block) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Node(root)); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	return enc.Close()
}

func writeTOML(w io.Writer, root *tree.Block) error {
	m, _ := tree.Interface(root).(map[string]any)
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	return nil
}

// Node returns n as a YAML node. Blocks and named arguments become mappings
// in insertion order, calls and arrays become sequences, and assignments
// become plain strings.
func Node(n tree.Node) *yaml.Node {
	switch x := n.(type) {
	case tree.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(x)}
	case tree.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(bool(x))}
	case tree.Assignment:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x.Text()}
	case tree.Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, s := range x {
			seq.Content = append(seq.Content, Node(tree.String(s)))
		}
		return seq
	case tree.Call:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, arg := range x {
			seq.Content = append(seq.Content, Node(arg))
		}
		return seq
	case *tree.Block:
		return mapping(x.All())
	case *tree.MultiArgs:
		return mapping(x.All())
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func mapping(entries iter.Seq2[string, tree.Node]) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range entries {
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, Node(v))
	}
	return m
}
