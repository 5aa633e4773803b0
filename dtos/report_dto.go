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

package dtos

import (
	"encoding/json"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportTypeAudit ReportType = "audit"
	ReportTypeTest  ReportType = "test"
)

type ReportFormat string

const (
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatJSON ReportFormat = "json"
)

// ReportRequest selects the audit or environment test to render.
type ReportRequest struct {
	ID        uuid.UUID    `json:"id" validate:"required"`
	Type      ReportType   `json:"type" validate:"required,oneof=audit test"`
	IsPreview bool         `json:"is_preview"`
	Format    ReportFormat `json:"format" validate:"required,oneof=pdf html json"`
}

type Report struct {
	Filename    string
	ContentType string
	Body        []byte
	// previews are shown inline instead of downloaded
	Inline bool
}

type SettingRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}
