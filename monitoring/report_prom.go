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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReportRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "auditguard_report_render_duration_seconds",
	Help:    "Duration of report rendering in seconds",
	Buckets: []float64{0.1, 0.5, 1, 2, 3, 5, 8, 10, 15},
}, []string{"format"})

var ReportRenderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auditguard_report_render_total",
	Help: "Total number of rendered reports",
}, []string{"format", "result"})
