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

var TestCasePageCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "auditguard_test_case_page_created_total",
	Help: "Total number of created test case page results",
})

var TestCasePageRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auditguard_test_case_page_rejected_total",
	Help: "Total number of rejected test case page results",
}, []string{"reason"})

var SystemSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "auditguard_system_sync_duration_seconds",
	Help:    "Duration of the system table synchronization in seconds",
	Buckets: prometheus.DefBuckets,
})
