// schema generates JSON schema of newsnet configuration, used by config verification
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/umputun/newsnet/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}
	if err := generate(outputPath, os.Stdout); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

// generate writes config schema to path, "-" means out
func generate(path string, out io.Writer) error {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	fmt.Fprintf(out, "schema for %d config sections written to %s\n", sectionsCount(data), path)
	return nil
}

// sectionsCount returns number of top-level config properties in the generated schema
func sectionsCount(data []byte) int {
	var s struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return 0
	}
	return len(s.Defs["Config"].Properties)
}
