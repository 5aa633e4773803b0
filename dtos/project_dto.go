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
	"time"

	"github.com/google/uuid"
)

type ProjectCreateRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Description   string   `json:"description"`
	TechnologyIDs []string `json:"technologyIds"`
}

type ProjectPatchRequest struct {
	Name          *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string   `json:"description"`
	TechnologyIDs *[]string `json:"technologyIds"`
}

type EnvironmentCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
}

type EnvironmentPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Description *string `json:"description"`
}

type EnvironmentPageCreateRequest struct {
	Name     string     `json:"name" validate:"required"`
	URL      string     `json:"url" validate:"required,url"`
	ParentID *uuid.UUID `json:"parentId"`
}

type EnvironmentPageMoveRequest struct {
	// nil moves the page to the root
	ParentID *uuid.UUID `json:"parentId"`
}

type EnvironmentPageTreeDTO struct {
	ID        uuid.UUID                `json:"id"`
	Name      string                   `json:"name"`
	URL       string                   `json:"url"`
	ParentID  *uuid.UUID               `json:"parentId"`
	CreatedAt time.Time                `json:"createdAt"`
	Children  []EnvironmentPageTreeDTO `json:"children"`
}
