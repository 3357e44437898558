package creditline

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// snapshot is the on-disk layout of a network:
//
//	creditlines:
//	  - id: ab
//	    owner: A
//	    partner: B
//	    limit: 100      # omit or null for unlimited
//	    balance: -20.5
type snapshot struct {
	CreditLines []lineRecord `yaml:"creditlines"`
}

type lineRecord struct {
	ID      string  `yaml:"id"`
	Owner   string  `yaml:"owner"`
	Partner string  `yaml:"partner"`
	Limit   *string `yaml:"limit"`
	Balance string  `yaml:"balance"`
}

func (r lineRecord) toCreditLine() (CreditLine, error) {
	l := CreditLine{ID: r.ID, Owner: r.Owner, Partner: r.Partner}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if r.Limit != nil {
		d, err := decimal.NewFromString(*r.Limit)
		if err != nil {
			return CreditLine{}, fmt.Errorf("%w: %s: limit %q: %v", ErrInvalidCreditLine, l.ID, *r.Limit, err)
		}
		l.Limit = decimal.NewNullDecimal(d)
	}
	if r.Balance != "" {
		d, err := decimal.NewFromString(r.Balance)
		if err != nil {
			return CreditLine{}, fmt.Errorf("%w: %s: balance %q: %v", ErrInvalidCreditLine, l.ID, r.Balance, err)
		}
		l.Balance = d
	}

	return l, l.Validate()
}

// LoadYAML decodes a network snapshot. Lines without an id get a random UUID.
func LoadYAML(r io.Reader) ([]CreditLine, error) {
	var snap snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil && err != io.EOF {
		return nil, fmt.Errorf("creditline: decode snapshot: %w", err)
	}

	lines := make([]CreditLine, 0, len(snap.CreditLines))
	for _, rec := range snap.CreditLines {
		l, err := rec.toCreditLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, nil
}

// LoadFile reads the snapshot at path into a new MemoryStore.
func LoadFile(path string, opts ...MemoryOption) (*MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("creditline: open snapshot: %w", err)
	}
	defer f.Close()

	lines, err := LoadYAML(f)
	if err != nil {
		return nil, err
	}
	s := NewMemoryStore(opts...)
	if err := s.Add(lines...); err != nil {
		return nil, err
	}

	return s, nil
}
