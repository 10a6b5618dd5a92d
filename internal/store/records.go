package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/ManeshNarayan/vcf-validator/internal/vcf"
)

// WriteRecords batch-inserts parsed records using the Appender API.
// List-valued fields are flattened back to their VCF sub-delimiters;
// the INFO map is rendered as semicolon-separated key=value pairs with
// keys sorted for stable output.
func (s *Store) WriteRecords(records []vcf.Record) error {
	if len(records) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "vcf_records")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range records {
		if err := appender.AppendRow(
			r.Chrom, r.Pos,
			strings.Join(r.IDs, ";"),
			r.Ref,
			strings.Join(r.Alts, ","),
			r.Qual,
			strings.Join(r.Filters, ";"),
			flattenInfo(r.Info),
			strings.Join(r.Format, ":"),
			strings.Join(r.Samples, "\t"),
		); err != nil {
			return fmt.Errorf("append record: %w", err)
		}
	}

	return appender.Flush()
}

// flattenInfo renders an INFO map as "k1=v1;k2;k3=v3" with sorted keys.
// Flag keys (empty value) are rendered bare.
func flattenInfo(info map[string]string) string {
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := info[k]; v != "" {
			parts = append(parts, k+"="+v)
		} else {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, ";")
}

// CountRecords returns the number of stored records.
func (s *Store) CountRecords() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM vcf_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// StoredRecord is one row of the vcf_records table, with list-valued
// fields kept in their flattened text form.
type StoredRecord struct {
	Chrom   string
	Pos     int64
	IDs     string
	Ref     string
	Alts    string
	Qual    float64
	Filters string
	Info    string
	Format  string
	Samples string
}

// LookupPosition queries stored records at a chromosome position.
func (s *Store) LookupPosition(chrom string, pos int64) ([]StoredRecord, error) {
	rows, err := s.db.Query(`SELECT
		chrom, pos, ids, ref, alts, qual, filters, info, format, samples
		FROM vcf_records
		WHERE chrom=? AND pos=?`, chrom, pos)
	if err != nil {
		return nil, fmt.Errorf("query position: %w", err)
	}
	defer rows.Close()

	var results []StoredRecord
	for rows.Next() {
		var r StoredRecord
		if err := rows.Scan(
			&r.Chrom, &r.Pos, &r.IDs, &r.Ref, &r.Alts,
			&r.Qual, &r.Filters, &r.Info, &r.Format, &r.Samples,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return results, nil
}

// ClearRecords removes all stored records.
func (s *Store) ClearRecords() error {
	_, err := s.db.Exec("DELETE FROM vcf_records")
	return err
}
