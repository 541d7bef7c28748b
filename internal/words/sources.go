// internal/words/sources.go
//
// Word list sources for the dictionary loader.
//
//   - ReadFile: a .csv file with a "word" column, or a plain text file with one word per line.
//   - Embedded: the default list compiled into the binary (assets/words.txt).
//   - FromDB / SaveToDB: the SQLite "words" table, ordered by position.
//
// A text list is taken as written: every entry reaches Load, which rejects bad ones.
// A CSV is treated as a general dictionary and only its 5-letter a–z words are kept.

package words

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/game"
)

// ReadFile loads a word list from path, choosing the format by extension.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(f)
	}
	return ReadLines(f)
}

// ReadLines reads one word per line, lowercased; blank lines and '#' comments are skipped.
// Entries are not validated here.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.ToLower(line))
	}
	return out, sc.Err()
}

// ReadCSV reads the "word" column (header match is case-insensitive).
func ReadCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "word") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.New(`words: csv has no "word" column`)
	}

	var out []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if col >= len(rec) {
			continue
		}
		if w, ok := normalize(rec[col]); ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// Embedded returns the default list shipped in the binary.
func Embedded() ([]string, error) {
	list, err := assets.DefaultWords()
	if err != nil {
		return nil, err
	}
	out := list[:0]
	for _, s := range list {
		if w, ok := normalize(s); ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// FromDB reads the words table in position order. An empty table yields an empty list.
func FromDB(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM words ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		if w, ok := normalize(s); ok {
			out = append(out, w)
		}
	}
	return out, rows.Err()
}

// SaveToDB replaces the words table with the dictionary contents.
func SaveToDB(ctx context.Context, db *sql.DB, d *Dictionary) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (position, word) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, w := range d.list {
		if _, err := stmt.ExecContext(ctx, i, w); err != nil {
			return fmt.Errorf("insert %s: %w", w, err)
		}
	}
	return tx.Commit()
}

// normalize lowercases and trims s, keeping it only if it is a 5-letter a–z word.
func normalize(s string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(s))
	return w, game.IsWord(w)
}
