package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/genealogy/internal/ctxlog"
	"github.com/specialistvlad/genealogy/internal/fsutil"
)

// ErrNoStem is returned when none of the loaded files declares the stem.
var ErrNoStem = errors.New("no stem declared")

// Loader reads lineage scripts from disk or memory.
type Loader struct{}

// NewLoader creates a new lineage script loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every path, expanding directories to the .hcl files they
// contain, and merges them into one Script.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Script, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Script loader started.", "path_count", len(paths))

	files, err := l.findAllScriptFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered script files.", "count", len(files))

	sources := make([]Source, 0, len(files))
	for _, file := range files {
		body, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read script file %s: %w", file, err)
		}
		sources = append(sources, Source{Name: file, Body: body})
	}
	return l.Decode(ctx, sources...)
}

// Decode parses in-memory sources, in order, into one Script.
func (l *Loader) Decode(ctx context.Context, sources ...Source) (*Script, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()

	contents := make([]*hcl.BodyContent, 0, len(sources))
	script := &Script{}
	var stemAttr *hcl.Attribute

	for _, src := range sources {
		file, diags := parser.ParseHCL(src.Body, src.Name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse script file %s: %w", src.Name, diags)
		}
		content, diags := file.Body.Content(rootSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode script file %s: %w", src.Name, diags)
		}
		contents = append(contents, content)
		script.Files = append(script.Files, src.Name)

		attr, ok := content.Attributes["stem"]
		if !ok {
			continue
		}
		if stemAttr != nil {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Duplicate stem",
				Detail:   fmt.Sprintf("The stem was already declared at %s.", stemAttr.Range),
				Subject:  attr.Range.Ptr(),
			}}
		}
		stemAttr = attr
	}

	if stemAttr == nil {
		return nil, fmt.Errorf("%w in %d script file(s)", ErrNoStem, len(sources))
	}
	stem, diags := identifier(stemAttr.Expr, evalContext(""), "stem")
	if diags.HasErrors() {
		return nil, diags
	}
	script.Stem = stem

	evalCtx := evalContext(stem)
	for _, content := range contents {
		for _, block := range content.Blocks {
			op, diags := decodeBlock(block, evalCtx)
			if diags.HasErrors() {
				return nil, diags
			}
			script.Ops = append(script.Ops, op)
		}
	}

	logger.Debug("Script loading complete.", "stem", script.Stem, "ops", len(script.Ops), "files", len(script.Files))
	return script, nil
}

func decodeBlock(block *hcl.Block, ctx *hcl.EvalContext) (Op, hcl.Diagnostics) {
	id := block.Labels[0]
	diags := checkIdentifier(id, block.LabelRanges[0])
	if diags.HasErrors() {
		return Op{}, diags
	}
	op := Op{ID: id, Range: block.DefRange}

	switch block.Type {
	case OpCreate.String():
		content, diags := block.Body.Content(virusSchema)
		if diags.HasErrors() {
			return Op{}, diags
		}
		parents, diags := identifierList(content.Attributes["parents"].Expr, ctx, "parents")
		if diags.HasErrors() {
			return Op{}, diags
		}
		op.Kind, op.Parents = OpCreate, parents

	case OpConnect.String():
		content, diags := block.Body.Content(connectSchema)
		if diags.HasErrors() {
			return Op{}, diags
		}
		parent, diags := identifier(content.Attributes["parent"].Expr, ctx, "parent")
		if diags.HasErrors() {
			return Op{}, diags
		}
		op.Kind, op.Parents = OpConnect, []string{parent}

	case OpRemove.String():
		var body removeBlock
		if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
			return Op{}, diags
		}
		op.Kind = OpRemove
	}
	return op, nil
}

// findAllScriptFiles resolves paths in the given order, expanding
// directories to their .hcl files.
func (l *Loader) findAllScriptFiles(paths []string) ([]string, error) {
	files, err := fsutil.ResolvePaths(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no script files found in %v", paths)
	}
	return files, nil
}
