package search

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the two record variants.
type Kind int

const (
	KindPortfolio Kind = iota // managed portfolio, found by name or manager
	KindSecurity              // listed security, found by symbol or name
)

func (k Kind) String() string {
	if k == KindSecurity {
		return "security"
	}
	return "portfolio"
}

// Record is a searchable item: either a listed security or a managed
// portfolio. The kind is fixed when the record is built.
type Record struct {
	kind    Kind
	symbol  string
	name    string
	manager string
}

// NewSecurity builds a security record. A blank symbol cannot identify a
// security, so the record falls back to a portfolio named name.
func NewSecurity(symbol, name string) Record {
	if blank(symbol) {
		return NewPortfolio(name, "")
	}
	return Record{kind: KindSecurity, symbol: symbol, name: name}
}

// NewPortfolio builds a portfolio record. manager may be empty.
func NewPortfolio(name, manager string) Record {
	return Record{kind: KindPortfolio, name: name, manager: manager}
}

// NewRecord builds a record from loosely shaped data: it is a security iff
// symbol is not blank.
func NewRecord(symbol, name, manager string) Record {
	if !blank(symbol) {
		return Record{kind: KindSecurity, symbol: symbol, name: name, manager: manager}
	}
	return NewPortfolio(name, manager)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Kind reports which variant r is.
func (r Record) Kind() Kind { return r.kind }

// Symbol is the ticker of a security, empty for a portfolio.
func (r Record) Symbol() string { return r.symbol }

// Name is the full name of the security or portfolio.
func (r Record) Name() string { return r.name }

// Manager is the portfolio manager, if known.
func (r Record) Manager() string { return r.manager }

// IsSecurity reports whether r is a listed security.
func (r Record) IsSecurity() bool { return r.kind == KindSecurity }

// IsPortfolio reports whether r is a managed portfolio.
func (r Record) IsPortfolio() bool { return r.kind == KindPortfolio }

// PrimaryLabel is the text put in the search box when the record is
// chosen: the symbol of a security, the name of a portfolio.
func (r Record) PrimaryLabel() string {
	if r.kind == KindSecurity {
		return r.symbol
	}
	return r.name
}

// SecondaryLabel is the hint shown under the primary label.
func (r Record) SecondaryLabel() string {
	if r.kind == KindSecurity {
		return r.name
	}
	if r.manager == "" {
		return ""
	}
	return "مدیر: " + r.manager
}

func (r Record) String() string {
	return fmt.Sprintf("%s(%s)", r.kind, r.PrimaryLabel())
}

type recordFields struct {
	Symbol  string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Manager string `json:"manager,omitempty" yaml:"manager,omitempty"`
}

func (r Record) fields() recordFields {
	return recordFields{Symbol: r.symbol, Name: r.name, Manager: r.manager}
}

func (r Record) MarshalJSON() ([]byte, error) { return json.Marshal(r.fields()) }

func (r *Record) UnmarshalJSON(data []byte) error {
	var f recordFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = NewRecord(f.Symbol, f.Name, f.Manager)
	return nil
}

func (r Record) MarshalYAML() (interface{}, error) { return r.fields(), nil }

func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var f recordFields
	if err := value.Decode(&f); err != nil {
		return err
	}
	*r = NewRecord(f.Symbol, f.Name, f.Manager)
	return nil
}

// LoadRecords reads a list of records from a JSON or YAML file, picked by
// extension.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	var out []Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}
	return out, nil
}
