// assets/embed.go
//
// Embedded resources shipped inside the binary:
//   - words.txt: default word list used when no --words file is configured.
//   - sql/*.sql: sqlite migrations for the session history store.

package assets

import (
	"embed"
	"io"
	"io/fs"
	"sort"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// DefaultWords opens the embedded default word list.
func DefaultWords() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}

// Migration is a single embedded sql file.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded migrations in lexical order.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(FS, "sql")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, n := range names {
		b, err := fs.ReadFile(FS, "sql/"+n)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: n, SQL: string(b)})
	}
	return out, nil
}
