// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/l3montree-dev/auditguard/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRodPDFRenderer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a shell script as browser binary")
	}

	t.Run("should give up on a browser that never starts listening", func(t *testing.T) {
		bin := filepath.Join(t.TempDir(), "chromium")
		require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nsleep 30\n"), 0o755))

		renderer := NewRodPDFRenderer(config.Config{Report: config.ReportConfig{BrowserBin: bin}})

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := renderer.RenderPDF(ctx, []byte("<html><body>report</body></html>"))
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("should not render with a cancelled context", func(t *testing.T) {
		renderer := NewRodPDFRenderer(config.Config{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := renderer.RenderPDF(ctx, []byte("<html></html>"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
