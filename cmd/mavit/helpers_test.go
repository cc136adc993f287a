package main

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavit/mavit-cash/internal/model"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain decimal", input: "42.50", want: "42.5"},
		{name: "integer", input: "100", want: "100"},
		{name: "surrounding whitespace", input: " 19.90 ", want: "19.9"},
		{name: "negative", input: "-5", want: "-5"},
		{name: "currency symbol", input: "R$ 10", wantErr: true},
		{name: "comma separator", input: "1,5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMoney(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDate("28/08/2026")
	require.Error(t, err)

	_, err = parseDate("2026-13-01")
	require.Error(t, err)
}

func TestValidateMonth(t *testing.T) {
	m, err := validateMonth(8)
	require.NoError(t, err)
	assert.Equal(t, time.August, m)

	_, err = validateMonth(0)
	assert.Error(t, err)

	_, err = validateMonth(13)
	assert.Error(t, err)
}

func TestResolveID(t *testing.T) {
	ids := []string{
		"9f86d081-884c-4d63-a1b2-0c44298fc1c1",
		"9f86aaaa-1111-2222-3333-444455556666",
		"c1d2e3f4-0000-1111-2222-333344445555",
	}

	t.Run("abbreviated id from a list view resolves", func(t *testing.T) {
		got, err := resolveID("c1d2e3f4", ids, "expense")
		require.NoError(t, err)
		assert.Equal(t, "c1d2e3f4-0000-1111-2222-333344445555", got)
	})

	t.Run("full id resolves", func(t *testing.T) {
		got, err := resolveID(ids[0], ids, "expense")
		require.NoError(t, err)
		assert.Equal(t, ids[0], got)
	})

	t.Run("exact match beats prefix matches", func(t *testing.T) {
		exact := []string{"abc", "abcdef"}
		got, err := resolveID("abc", exact, "goal")
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	})

	t.Run("ambiguous prefix is rejected", func(t *testing.T) {
		_, err := resolveID("9f86", ids, "expense")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
	})

	t.Run("unknown id is reported, not swallowed", func(t *testing.T) {
		_, err := resolveID("deadbeef", ids, "expense")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no expense matches")
	})

	t.Run("empty collection", func(t *testing.T) {
		_, err := resolveID("anything", nil, "debt")
		require.Error(t, err)
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "9f86d081", shortID("9f86d081-884c-4d63-a1b2-0c44298fc1c1"))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "verylong", shortID("verylongid"))
}

func TestLiveCategoryName(t *testing.T) {
	categories := []model.Category{{ID: "1", Name: "Transporte"}}

	live := model.Expense{CategoryID: "1", CategorySnapshot: model.Category{Name: "Antigo"}}
	assert.Equal(t, "Transporte", liveCategoryName(categories, live))

	dangling := model.Expense{CategoryID: "gone", CategorySnapshot: model.Category{Name: "Antigo"}}
	assert.Equal(t, "Antigo", liveCategoryName(categories, dangling))

	bare := model.Expense{}
	assert.Equal(t, "(none)", liveCategoryName(categories, bare))
}

func TestFormatMoneyUsesConfiguredCurrency(t *testing.T) {
	settings := model.AppSettings{Currency: "BRL"}
	assert.Equal(t, "R$ 42.50", formatMoney(decimal.RequireFromString("42.5"), settings))
}
