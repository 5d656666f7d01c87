// Package manifest reads the Cargo manifest at the project root.
//
// The orchestrator only needs the package name and the declared feature set.
// Feature names are returned in declaration order, which the matrix resolver
// depends on, so the document is walked with the low-level TOML parser in
// addition to the struct unmarshal: a map-typed unmarshal alone would lose
// the ordering.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// FileName of the manifest, relative to the project root.
const FileName = "Cargo.toml"

// The parts of the Cargo manifest the orchestrator reads.
type Manifest struct {
	Name     string   // Package name.
	Features []string // Declared feature names, in declaration order.
}

// Reads and parses the manifest at the project root.
//
// Returns [ErrMissing] when no manifest exists and [ErrUnparseable] when the
// file is not valid TOML.
func Load(root string) (*Manifest, error) {
	path := filepath.Join(root, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var raw struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
		Features map[string][]string `toml:"features"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnparseable, path, err)
	}

	features, err := featureOrder(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnparseable, path, err)
	}

	return &Manifest{
		Name:     raw.Package.Name,
		Features: features,
	}, nil
}

// Walks the TOML document and returns the [features] keys in declaration
// order.
func featureOrder(data []byte) ([]string, error) {
	var (
		parser     unstable.Parser
		inFeatures bool
		names      []string
	)

	parser.Reset(data)
	for parser.NextExpression() {
		expr := parser.Expression()

		switch expr.Kind {
		case unstable.Table:
			inFeatures = isFeaturesHeader(expr)
		case unstable.KeyValue:
			if !inFeatures {
				continue
			}
			if name, ok := simpleKey(expr); ok {
				names = append(names, name)
			}
		}
	}
	if err := parser.Error(); err != nil {
		return nil, err
	}

	return names, nil
}

// Whether a table expression is exactly the [features] header.
func isFeaturesHeader(expr *unstable.Node) bool {
	it := expr.Key()
	if !it.Next() {
		return false
	}
	name := string(it.Node().Data)
	return name == "features" && !it.Next()
}

// Returns the key of a key-value expression when it is a single,
// non-dotted key. Feature declarations never use dotted keys.
func simpleKey(expr *unstable.Node) (string, bool) {
	it := expr.Key()
	if !it.Next() {
		return "", false
	}
	name := string(it.Node().Data)
	if it.Next() {
		return "", false
	}
	return name, true
}
