package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/faqstrip"
	"github.com/fwojciec/faqstrip/jsonld"
)

// Run executes the check command. Files are never modified.
func (c *CheckCmd) Run(deps *Dependencies) error {
	dir := deps.dir(c.Dir)

	paths, err := deps.Files.ListFiles(deps.Ctx, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqstrip.ErrorMessage(err))
		return err
	}

	var affected, failed int
	for _, path := range paths {
		name := filepath.Base(path)

		content, err := deps.Files.ReadFile(deps.Ctx, path)
		if err != nil {
			fmt.Fprintf(deps.Stdout, "✗ %s: %s\n", name, faqstrip.ErrorMessage(err))
			failed++
			continue
		}

		blocks := deps.Detector.Detect(content)
		if len(blocks) == 0 {
			fmt.Fprintf(deps.Stdout, "- %s\n", name)
		} else {
			affected++
			fmt.Fprintf(deps.Stdout, "✓ %s\n", name)
			for _, b := range blocks {
				fmt.Fprintf(deps.Stdout, "    lines %d-%d  %-8s  %s\n", b.StartLine, b.EndLine, b.Source, describeBlock(b))
			}
		}

		if schemas, err := deps.Inspector.Inspect(content); err == nil && len(schemas) > 0 {
			fmt.Fprintf(deps.Stdout, "    structured data: %s\n", schemaTypes(schemas))
		}
	}

	fmt.Fprintf(deps.Stdout, "\n%d/%d files have blocks to remove\n", affected, len(paths))

	if failed > 0 {
		return errFilesFailed
	}
	return nil
}

func describeBlock(b faqstrip.Block) string {
	s, err := jsonld.Parse(b.Text)
	if err != nil || s.Type == "" {
		return "(undecoded)"
	}
	if s.Questions == 0 {
		return s.Type
	}
	return fmt.Sprintf("%s (%d questions)", s.Type, s.Questions)
}

func schemaTypes(schemas []*faqstrip.Schema) string {
	types := make([]string, 0, len(schemas))
	for _, s := range schemas {
		if s.Type == "" {
			types = append(types, "?")
			continue
		}
		types = append(types, s.Type)
	}
	return strings.Join(types, ", ")
}
