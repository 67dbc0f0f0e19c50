// Package main generates CLI reference documentation for dap and the
// dealer-appraisal server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	dap "github.com/donaldgifford/dealer-appraisal/cmd/dap/cmd"
	server "github.com/donaldgifford/dealer-appraisal/cmd/dealer-appraisal/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	manpages := flag.Bool("man", false, "also generate man pages under <output>/man")
	flag.Parse()

	roots := map[string]*cobra.Command{
		"dap":              dap.Root(),
		"dealer-appraisal": server.Root(),
	}

	for name, root := range roots {
		if err := generate(root, filepath.Join(*output, name), *manpages); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(root *cobra.Command, dir string, manpages bool) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root.DisableAutoGenTag = true
	if err := doc.GenMarkdownTree(root, dir); err != nil {
		return err
	}
	if !manpages {
		return nil
	}

	manDir := filepath.Join(dir, "man")
	if err := os.MkdirAll(manDir, 0o750); err != nil {
		return fmt.Errorf("creating man directory: %w", err)
	}
	return doc.GenManTree(root, &doc.GenManHeader{Title: root.Name(), Section: "1"}, manDir)
}
