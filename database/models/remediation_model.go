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

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var DefaultRemediationSelectors = []string{"body"}

type RemediationExample struct {
	Description string `json:"description"`
	Code        string `json:"code"`
}

type Remediation struct {
	ID          string `json:"id" gorm:"primaryKey;type:text"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	Selectors datatypes.JSONSlice[string]             `json:"selectors" gorm:"type:text;not null"`
	Examples  datatypes.JSONSlice[RemediationExample] `json:"examples" gorm:"type:text"`

	SystemCategoryID *string         `json:"systemCategoryId" gorm:"type:text"`
	SystemCategory   *SystemCategory `json:"systemCategory,omitempty" gorm:"foreignKey:SystemCategoryID;constraint:OnDelete:SET NULL;"`

	TestCases []TestCase               `json:"testCases,omitempty" gorm:"many2many:remediation_test_cases;constraint:OnDelete:CASCADE;"`
	Criteria  []SystemStandardCriteria `json:"criteria,omitempty" gorm:"many2many:remediation_criteria;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Remediation) TableName() string {
	return "remediations"
}

func (m *Remediation) BeforeSave(tx *gorm.DB) error {
	if len(m.Selectors) == 0 {
		m.Selectors = append(datatypes.JSONSlice[string]{}, DefaultRemediationSelectors...)
	}
	if m.Examples == nil {
		m.Examples = datatypes.JSONSlice[RemediationExample]{}
	}
	return nil
}
