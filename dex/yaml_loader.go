// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dex

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openbattle/engine/rpgerr"
)

// YAMLLoader loads one record per canonical id from a directory of
// "<canonical-id>.yaml" fixture files, the on-disk format SPEC_FULL names
// as the data dex's concrete loader alongside the in-memory one tests use.
type YAMLLoader[T Record] struct {
	dir string
}

// NewYAMLLoader creates a loader rooted at dir.
func NewYAMLLoader[T Record](dir string) *YAMLLoader[T] {
	return &YAMLLoader[T]{dir: dir}
}

// Load implements Loader.
func (l *YAMLLoader[T]) Load(canonicalID string) (T, error) {
	var rec T
	path := filepath.Join(l.dir, canonicalID+".yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rec, rpgerr.New(rpgerr.CodeNotFound,
				fmt.Sprintf("dex: no fixture for %q", canonicalID),
				rpgerr.WithMeta("path", path))
		}
		return rec, rpgerr.Wrap(err, fmt.Sprintf("dex: reading fixture %q", path))
	}
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return rec, rpgerr.New(rpgerr.CodeInternal,
			fmt.Sprintf("dex: malformed fixture %q", path),
			rpgerr.WithMeta("cause", err.Error()))
	}
	return rec, nil
}
