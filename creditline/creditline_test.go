package creditline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/creditflow/creditline"
)

func line(id, owner, partner string, limit string, balance int64) creditline.CreditLine {
	l := creditline.CreditLine{ID: id, Owner: owner, Partner: partner, Balance: decimal.NewFromInt(balance)}
	if limit != "" {
		l.Limit = decimal.NewNullDecimal(decimal.RequireFromString(limit))
	}

	return l
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		line creditline.CreditLine
		ok   bool
	}{
		{"finite", line("ab", "A", "B", "100", -20), true},
		{"unlimited", line("ab", "A", "B", "", 0), true},
		{"zero limit", line("ab", "A", "B", "0", 0), true},
		{"no id", line("", "A", "B", "1", 0), false},
		{"no owner", line("ab", "", "B", "1", 0), false},
		{"no partner", line("ab", "A", "", "1", 0), false},
		{"negative limit", line("ab", "A", "B", "-1", 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.line.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, creditline.ErrInvalidCreditLine)
		})
	}
}

func TestCreditLine_String(t *testing.T) {
	assert.Equal(t, "ab A->B limit=100 balance=-20", line("ab", "A", "B", "100", -20).String())
	assert.Equal(t, "ab A->B limit=unlimited balance=0", line("ab", "A", "B", "", 0).String())
	assert.True(t, line("ab", "A", "B", "", 0).IsUnlimited())
}

func TestMemoryStore_OutgoingSortedByID(t *testing.T) {
	s := creditline.NewMemoryStore()
	require.NoError(t, s.Add(
		line("z", "A", "B", "1", 0),
		line("m", "A", "C", "1", 0),
		line("a", "A", "B", "1", 0),
		line("x", "B", "C", "1", 0),
	))

	got, err := s.OutgoingCreditLines(context.Background(), "A")
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, l := range got {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"a", "m", "z"}, ids)
	assert.Equal(t, 4, s.Len())

	// Returned slice is a copy.
	got[0].ID = "mutated"
	again, _ := s.OutgoingCreditLines(context.Background(), "A")
	assert.Equal(t, "a", again[0].ID)

	none, err := s.OutgoingCreditLines(context.Background(), "C")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_AddRejectsBatch(t *testing.T) {
	s := creditline.NewMemoryStore()
	require.NoError(t, s.Add(line("ab", "A", "B", "1", 0)))

	err := s.Add(line("bc", "B", "C", "1", 0), line("ab", "A", "C", "1", 0))
	require.ErrorIs(t, err, creditline.ErrInvalidCreditLine)
	err = s.Add(line("cd", "C", "D", "1", 0), line("cd", "C", "E", "1", 0))
	require.ErrorIs(t, err, creditline.ErrInvalidCreditLine)
	err = s.Add(line("bad", "C", "D", "-5", 0))
	require.ErrorIs(t, err, creditline.ErrInvalidCreditLine)

	assert.Equal(t, 1, s.Len(), "rejected batches leave the store unchanged")
}

func TestMemoryStore_Strict(t *testing.T) {
	s := creditline.NewMemoryStore(creditline.WithStrict())
	require.NoError(t, s.Add(line("ab", "A", "B", "1", 0)))

	_, err := s.OutgoingCreditLines(context.Background(), "B")
	require.NoError(t, err, "partners are known accounts")
	_, err = s.OutgoingCreditLines(context.Background(), "Z")
	require.ErrorIs(t, err, creditline.ErrAccountNotFound)
}

func TestMemoryStore_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := creditline.NewMemoryStore().OutgoingCreditLines(ctx, "A")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_ConcurrentReads(t *testing.T) {
	s := creditline.NewMemoryStore()
	require.NoError(t, s.Add(line("ab", "A", "B", "1", 0), line("ac", "A", "C", "1", 0)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.OutgoingCreditLines(context.Background(), "A")
			assert.NoError(t, err)
			assert.Len(t, got, 2)
		}()
	}
	wg.Wait()
}
