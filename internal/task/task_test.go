// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package task

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiesnim9/CSSFinder/internal/mmarket"
)

const qubitMatrix = `%%MatrixMarket matrix array complex general
2 2
0.5 0
0 0
0 0
0.5 0
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTaskRunPersistsState(t *testing.T) {
	dir := t.TempDir()
	matrixPath := writeFile(t, dir, "state.mtx", qubitMatrix)
	projectPath := writeFile(t, dir, "project.yaml", sprintfProject(matrixPath))

	out := filepath.Join(dir, "out")
	tk, err := Load("demo", projectPath, out)
	require.NoError(t, err)

	err = tk.Run(context.Background())
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(out, stateFileName))
	require.NoError(t, err)
	defer f.Close()
	m, err := mmarket.NewReader(f).Read()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 2, m.Cols)

	_, err = os.Stat(filepath.Join(out, correctionsFileName))
	require.NoError(t, err)
}

func TestLoadRejectsMissingProject(t *testing.T) {
	_, err := Load("demo", filepath.Join(t.TempDir(), "missing.yaml"), t.TempDir())
	assert.Error(t, err)
}

func sprintfProject(matrixPath string) string {
	return "mode: FSnQd\nprecision: double\nbackend: default\ninput: " + matrixPath +
		"\ndepth: 2\nquantity: 1\nvisibility: 1.0\nmax_epochs: 3\niters_per_epoch: 4\nmax_corrections: -1\nresources:\n  max_parallel: 1\n"
}
