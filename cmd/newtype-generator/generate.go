package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"newtype-generator/internal/analyze"
	"newtype-generator/internal/gen"
	"newtype-generator/internal/manifest"
	"newtype-generator/internal/plan"
)

// result is one file touched by a run.
type result struct {
	path    string
	removed bool
}

// loadPlans builds one plan per package: from directives in the packages
// matching patterns, or from the manifest at manifestPath if it is set.
func loadPlans(wd, output, manifestPath string, patterns []string) ([]*plan.Plan, error) {
	if manifestPath != "" {
		if len(patterns) > 0 {
			return nil, errors.New("-f does not take package patterns")
		}

		if !filepath.IsAbs(manifestPath) {
			manifestPath = filepath.Join(wd, manifestPath)
		}

		p, err := planManifest(manifestPath)
		if err != nil {
			return nil, err
		}

		return []*plan.Plan{p}, nil
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	loader := &analyze.Loader{Dir: wd, Output: output}

	pkgs, err := loader.Load(patterns...)
	if err != nil {
		return nil, err
	}

	plans := make([]*plan.Plan, 0, len(pkgs))
	for _, pkg := range pkgs {
		plans = append(plans, pkg.Plan())
	}

	return plans, nil
}

// planManifest plans the invocations of a manifest. The output is written
// next to the manifest unless it names a path of its own.
func planManifest(path string) (*plan.Plan, error) {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}

	invs, diags := manifest.Validate(m)

	out := m.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(filepath.Dir(path), out)
	}

	p := plan.NewResolver(plan.Config{
		PackageName: m.Package,
		Dir:         filepath.Dir(out),
		Output:      filepath.Base(out),
		Imports:     plan.StaticImports(m.ImportMap()),
	}).Resolve(invs)
	p.Diagnostics.Merge(diags)

	return p, nil
}

// generate renders every plan and writes the results. Nothing is written
// unless all plans are free of errors. A package without invocations has its
// previously generated file removed.
func generate(plans []*plan.Plan) ([]result, error) {
	var errs []error

	for _, p := range plans {
		if p.Diagnostics.HasErrors() {
			errs = append(errs, p.Diagnostics.Error())
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	g := gen.NewGenerator(gen.DefaultGeneratorConfig())

	files := make([]*gen.GeneratedFile, len(plans))

	for i, p := range plans {
		file, err := g.Generate(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("package %s: %w", p.PackageName, err))
			continue
		}

		files[i] = file
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var results []result

	for i, file := range files {
		if file == nil {
			path := filepath.Join(plans[i].Dir, plans[i].Output)

			removed, err := gen.RemoveStale(path)
			if err != nil {
				return results, err
			}

			if removed {
				results = append(results, result{path: path, removed: true})
			}

			continue
		}

		if err := gen.WriteFile(file); err != nil {
			return results, err
		}

		results = append(results, result{path: file.Path()})
	}

	return results, nil
}
