package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/locadora-web/endpoints"
)

/* validate-endpoints - Standalone CLI tool to validate endpoints.yaml
 * Usage: go run cmd/validate-endpoints/main.go [endpoints.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	endpointsFile := "endpoints.yaml"
	if len(os.Args) > 1 {
		endpointsFile = os.Args[1]
	}

	fmt.Printf("Validating endpoints file: %s\n", endpointsFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := endpoints.NewLoader()
	if err := loader.Load(endpointsFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if missing := missingEntities(loader); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Missing entities: %s\n", strings.Join(missing, ", "))
		os.Exit(1)
	}

	loaded := loader.List()
	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d endpoint(s):\n", len(loaded))

	for i, ep := range loaded {
		fmt.Printf("\n%d. Entity: %s (%s)\n", i+1, ep.Entity, ep.Label)
		fmt.Printf("   List:   %s\n", ep.ListPath())
		fmt.Printf("   Create: %s\n", ep.CreatePath())
		fmt.Printf("   Update: %s\n", ep.UpdatePath(":id"))
		fmt.Printf("   Delete: %s\n", ep.DeletePath(":id"))
		if ep.HasRelation() {
			fmt.Printf("   Select: %s\n", ep.SelectPath(":id"))
		}
	}

	fmt.Printf("\n✓ All endpoints are valid!\n")
	os.Exit(0)
}

// missingEntities lists the entities the web front needs and the file lacks
func missingEntities(loader *endpoints.Loader) []string {
	var missing []string
	for _, entity := range []string{"cliente", "ator", "classe", "locacao"} {
		if !loader.Exists(entity) {
			missing = append(missing, entity)
		}
	}
	return missing
}
