package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManeshNarayan/vcf-validator/internal/vcf"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecords() []vcf.Record {
	return []vcf.Record{
		{
			Chrom:   "12",
			Pos:     25245351,
			IDs:     []string{"rs121913530"},
			Ref:     "C",
			Alts:    []string{"A", "T"},
			Qual:    50,
			Filters: []string{"PASS"},
			Info:    map[string]string{"DP": "10", "DB": ""},
			Format:  []string{"GT", "DP"},
			Samples: []string{"0|1:10", "1|1:7"},
		},
		{
			Chrom:   "7",
			Pos:     140753336,
			IDs:     []string{"."},
			Ref:     "A",
			Alts:    []string{"T"},
			Qual:    0,
			Filters: []string{"q10"},
			Info:    map[string]string{"AF": "0.5"},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLookupRecords(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteRecords(sampleRecords()))

	n, err := s.CountRecords()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows, err := s.LookupPosition("12", 25245351)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "12", r.Chrom)
	assert.Equal(t, int64(25245351), r.Pos)
	assert.Equal(t, "rs121913530", r.IDs)
	assert.Equal(t, "A,T", r.Alts)
	assert.Equal(t, 50.0, r.Qual)
	assert.Equal(t, "PASS", r.Filters)
	assert.Equal(t, "DB;DP=10", r.Info)
	assert.Equal(t, "GT:DP", r.Format)
	assert.Equal(t, "0|1:10\t1|1:7", r.Samples)
}

func TestLookupPosition_NoMatch(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRecords(sampleRecords()))

	rows, err := s.LookupPosition("1", 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteRecords_Empty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRecords(nil))

	n, err := s.CountRecords()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClearRecords(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRecords(sampleRecords()))
	require.NoError(t, s.ClearRecords())

	n, err := s.CountRecords()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFlattenInfo(t *testing.T) {
	tests := []struct {
		name string
		info map[string]string
		want string
	}{
		{"values and flags", map[string]string{"DP": "10", "DB": ""}, "DB;DP=10"},
		{"single flag", map[string]string{"DB": ""}, "DB"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenInfo(tt.info))
		})
	}
}
