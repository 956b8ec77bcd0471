// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file loads all component manifests found under a directory root.
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/wirekit/internal/ctxlog"
	"github.com/specialistvlad/wirekit/internal/fsutil"
)

// LoadDir parses every .hcl manifest found under manifestsPath, recursively.
// Any parse diagnostic is fatal for the whole load.
func LoadDir(ctx context.Context, manifestsPath string) ([]*Component, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading component manifests...", "path", manifestsPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestsPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory", "path", manifestsPath, "error", err)
		return nil, err
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", manifestsPath)
		return nil, nil
	}

	parser := hclparse.NewParser()
	var components []*Component

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		parsed, diags := ParseComponentFile(ctx, hclFile, filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to process component manifests in %s: %w", filePath, diags)
		}
		components = append(components, parsed...)
		logger.Debug("Successfully loaded manifests from file", "file", filePath, "components", len(parsed))
	}

	logger.Debug("Component manifests loaded.", "count", len(components))
	return components, nil
}
