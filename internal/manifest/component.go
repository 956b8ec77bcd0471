// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Component manifest model and its HCL parser.
//
// Why decode with an explicit body schema?
//
// A `component` block has a small fixed shape (a description plus `method`
// blocks), but its method blocks repeat with labels. Decoding the root with
// gohcl and then walking the body content with an explicit hcl.BodySchema
// gives precise diagnostics with source ranges for every malformed block,
// instead of one opaque decode error for the whole file.
package manifest

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/wirekit/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Component is the parsed manifest of one compiled component.
type Component struct {
	// Name is the declaration name of the component, taken from the HCL
	// block label. It must match the name the component registers under.
	Name string

	// Description is an optional human-readable summary.
	Description string

	// SourcePath is the manifest file this component was parsed from.
	SourcePath string

	// Methods maps method name to its declared metadata.
	Methods map[string]*Method
}

// Method is the declared metadata for a single method.
type Method struct {
	// Name is the Go method name, taken from the HCL block label.
	Name string

	// Params are the parameter names in call order.
	Params []string

	// Annotations are static named values attached to the method.
	Annotations map[string]cty.Value
}

// componentRootSchema defines the top-level structure of a manifest file,
// expecting one or more 'component' blocks.
type componentRootSchema struct {
	Components []*hclComponent `hcl:"component,block"`
}

// hclComponent represents a single 'component' block for decoding purposes.
type hclComponent struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// componentBodySchema is the HCL schema for the body of a 'component' block.
var componentBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "method", LabelNames: []string{"name"}},
	},
}

// methodBodySchema is the HCL schema for the body of a 'method' block.
var methodBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "params"},
		{Name: "annotations"},
	},
}

// ParseComponentFile decodes an HCL file that contains one or more
// 'component' blocks.
func ParseComponentFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Component, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing component manifests from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	schema := &componentRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, schema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	components := make([]*Component, 0, len(schema.Components))
	for _, parsed := range schema.Components {
		bodyContent, contentDiags := parsed.Body.Content(componentBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue // Skip this component but continue parsing others
		}

		component := &Component{
			Name:       parsed.Name,
			SourcePath: filePath,
			Methods:    make(map[string]*Method),
		}

		if attr, exists := bodyContent.Attributes["description"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &component.Description)
			allDiags = append(allDiags, exprDiags...)
		}

		var methodDiags hcl.Diagnostics
		component.Methods, methodDiags = parseMethods(bodyContent.Blocks)
		allDiags = append(allDiags, methodDiags...)

		components = append(components, component)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed component manifests", "count", len(components))
	return components, nil
}

// parseMethods finds and decodes all 'method' blocks from a component's body.
func parseMethods(blocks hcl.Blocks) (map[string]*Method, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	methods := make(map[string]*Method)

	for _, block := range blocks.OfType("method") {
		// The schema guarantees us one label.
		methodName := block.Labels[0]
		if _, exists := methods[methodName]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate method block",
				Detail:   "A method named '" + methodName + "' is declared more than once for this component.",
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}

		bodyContent, contentDiags := block.Body.Content(methodBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		method := &Method{Name: methodName}

		if attr, exists := bodyContent.Attributes["params"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &method.Params)
			diags = append(diags, exprDiags...)
		}

		if attr, exists := bodyContent.Attributes["annotations"]; exists {
			var annDiags hcl.Diagnostics
			method.Annotations, annDiags = parseAnnotations(attr)
			diags = append(diags, annDiags...)
		}

		methods[methodName] = method
	}

	return methods, diags
}

// parseAnnotations evaluates the 'annotations' attribute into a map of
// static cty values. Manifests carry no expressions, so evaluation happens
// without a context; anything that needs one is rejected.
func parseAnnotations(attr *hcl.Attribute) (map[string]cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return nil, diags
	}

	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid annotations value",
			Detail:   "The 'annotations' attribute must be an object of static values.",
			Subject:  attr.Expr.Range().Ptr(),
		})
		return nil, diags
	}

	return val.AsValueMap(), diags
}
