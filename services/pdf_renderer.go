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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/l3montree-dev/auditguard/config"
	"golang.org/x/time/rate"
)

// RodPDFRenderer prints html with a headless chromium.
// It either connects to a running browser or launches one per render.
type RodPDFRenderer struct {
	cfg config.ReportConfig
	// throttles browser starts
	limiter *rate.Limiter
}

func NewRodPDFRenderer(cfg config.Config) *RodPDFRenderer {
	return &RodPDFRenderer{
		cfg:     cfg.Report,
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

func (r *RodPDFRenderer) connect(ctx context.Context) (*rod.Browser, func(), error) {
	if r.cfg.BrowserURL != "" {
		browser := rod.New().ControlURL(r.cfg.BrowserURL).Context(ctx)
		if err := browser.Connect(); err != nil {
			return nil, nil, fmt.Errorf("could not connect to browser at %s: %w", r.cfg.BrowserURL, err)
		}
		// a shared browser stays alive, only the page is closed
		return browser, func() {}, nil
	}

	// a hanging launch is aborted by the render timeout
	l := launcher.New().Context(ctx).Headless(true)
	if r.cfg.BrowserBin != "" {
		l = l.Bin(r.cfg.BrowserBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("could not launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("could not connect to launched browser: %w", err)
	}
	return browser, func() {
		if err := browser.Close(); err != nil {
			slog.Debug("could not close browser", "err", err)
		}
		l.Kill()
		l.Cleanup()
	}, nil
}

func (r *RodPDFRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not acquire render slot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, reportRenderTimeout)
	defer cancel()

	browser, release, err := r.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("could not open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("could not set document content: %w", err)
	}

	// render whatever arrived within the wait, slow images must not block the report
	if err := page.Timeout(reportResourceWait).WaitLoad(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("could not wait for page load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not print pdf: %w", err)
	}
	return io.ReadAll(stream)
}
