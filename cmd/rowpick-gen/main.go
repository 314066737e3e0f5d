package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"rowpick/internal/datasource"
)

func main() {
	var (
		rows int
		seed int64
	)
	flag.IntVar(&rows, "rows", 10, "Number of rows to print")
	flag.Int64Var(&seed, "seed", 1, "Seed for the row generator")
	flag.Parse()

	if rows < 0 {
		fmt.Fprintf(os.Stderr, "Error: -rows must not be negative\n")
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, row := range datasource.Generate(seed, rows) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", row.ID, row.FirstName, row.LastName, row.Email)
	}
}
