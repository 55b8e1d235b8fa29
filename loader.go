package plancast

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindPlans scans a directory for plan files (.jsonl) and returns their
// full paths. The query filters by plan name, which is the relative
// path without the extension; an empty query matches every plan.
func FindPlans(path, query string) ([]string, error) {
	var plans []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".jsonl") {
			return nil
		}
		relPath, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(relPath, ".jsonl")
		if query == "" || name == query {
			plans = append(plans, p)
		}
		return nil
	})
	return plans, err
}

// FindPlan returns the entities of the unique plan matching the query.
// An empty query with no plan on disk yields an empty plan; any other
// miss, or more than one match, is an error.
func FindPlan(path, query string) ([]Entity, error) {
	plans, err := FindPlans(path, query)
	if err != nil {
		return nil, err
	}
	switch len(plans) {
	case 0:
		if query == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("could not find plan %q", query)
	case 1:
		return LoadPlan(plans[0])
	default:
		return nil, fmt.Errorf("multiple plans found for %q", query)
	}
}

// LoadPlan reads and decodes one plan file.
func LoadPlan(fullPath string) ([]Entity, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open plan file %q: %w", fullPath, err)
	}
	defer f.Close()

	entities, err := DecodePlan(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode plan file %q: %w", fullPath, err)
	}
	return entities, nil
}

// SavePlan writes the entities to "<path>/<name>.jsonl", creating
// parent directories as needed. The fallback entity is never written.
func SavePlan(path, name string, entities []Entity) error {
	if name == "" {
		return fmt.Errorf("cannot save plan with an empty name")
	}
	filePath := filepath.Join(path, name+".jsonl")

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for plan %q: %w", filePath, err)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening plan file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodePlan(file, entities)
}
