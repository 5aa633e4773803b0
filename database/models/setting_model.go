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

import "time"

// Setting is a key value pair. The value is json encoded.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;type:text"`
	Val       string    `json:"val" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Setting) TableName() string {
	return "settings"
}
