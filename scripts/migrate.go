// Command migrate applies the SQL migrations in ./migrations in order.
// It runs out of process so the API server itself carries no schema logic.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		dir         = flag.String("dir", "migrations", "Directory containing migration files")
		down        = flag.Bool("down", false, "Apply down migrations in reverse order instead")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetConnMaxLifetime(time.Minute)
	if err := db.Ping(); err != nil {
		fmt.Fprintln(os.Stderr, "ping database:", err)
		os.Exit(1)
	}

	files, err := migrationFiles(*dir, *down)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	for _, file := range files {
		contents, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read migration:", err)
			os.Exit(1)
		}

		if _, err := db.Exec(string(contents)); err != nil {
			fmt.Fprintf(os.Stderr, "apply %s: %v\n", filepath.Base(file), err)
			os.Exit(1)
		}

		fmt.Println("applied", filepath.Base(file))
	}
}

// migrationFiles lists the up or down migrations in application order.
// Up migrations run ascending, down migrations descending.
func migrationFiles(dir string, down bool) ([]string, error) {
	suffix := ".up.sql"
	if down {
		suffix = ".down.sql"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(files)
	if down {
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}

	return files, nil
}
