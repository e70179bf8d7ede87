// db_init writes a fresh seed snapshot so a deployment starts from the
// launch directory instead of an empty file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wisdomconnect/wisdom-connect/internal/store"
)

func main() {
	path := flag.String("path", "database.json", "snapshot file to create")
	force := flag.Bool("force", false, "overwrite an existing snapshot")
	flag.Parse()

	if _, err := os.Stat(*path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "%s already exists; use -force to overwrite\n", *path)
		os.Exit(1)
	}
	_ = os.Remove(*path)

	st := store.New(context.Background(), store.Options{SnapshotPath: *path})
	st.Flush()
	if err := st.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Init error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed snapshot written to %s\n", *path)
}
