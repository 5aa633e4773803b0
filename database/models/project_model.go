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

package models

import "github.com/google/uuid"

type Project struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	Environments []Environment      `json:"environments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
	Technologies []SystemTechnology `json:"technologies,omitempty" gorm:"many2many:project_technologies;constraint:OnDelete:CASCADE;"`
}

func (m Project) TableName() string {
	return "projects"
}

type Environment struct {
	Model
	Name        string    `json:"name" gorm:"type:text;not null"`
	URL         string    `json:"url" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project     *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`

	Pages []EnvironmentPage `json:"pages,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE;"`
	Tests []EnvironmentTest `json:"tests,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE;"`
}

func (m Environment) TableName() string {
	return "environments"
}

type EnvironmentPage struct {
	Model
	Name          string    `json:"name" gorm:"type:text;not null"`
	URL           string    `json:"url" gorm:"type:text;not null"`
	EnvironmentID uuid.UUID `json:"environmentId" gorm:"type:uuid;not null;index"`

	// pages form a tree (sitemap)
	ParentID *uuid.UUID        `json:"parentId" gorm:"type:uuid;index"`
	Parent   *EnvironmentPage  `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
	Children []EnvironmentPage `json:"children,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`

	Tests []EnvironmentTest `json:"tests,omitempty" gorm:"many2many:environment_test_pages;constraint:OnDelete:CASCADE;"`
}

func (m EnvironmentPage) TableName() string {
	return "environment_pages"
}
