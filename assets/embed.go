// assets/embed.go
//
// Embedded data shipped with the binary:
//   - words.txt: default five-letter dictionary (one word per line, '#' comments).
//   - sql/*.sql: SQLite migrations applied at startup.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt
var FS embed.FS

//go:embed sql/*.sql
var migrations embed.FS

// Migrations returns the migration files rooted at the sql directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		// sql/ is embedded at compile time; fs.Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// DefaultWords returns the embedded default dictionary in file order.
func DefaultWords() ([]string, error) {
	return readLines("words.txt")
}
