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
	"encoding/json"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/shared"
)

type SettingsService struct {
	settingRepository shared.SettingRepository
}

func NewSettingsService(settingRepository shared.SettingRepository) *SettingsService {
	return &SettingsService{settingRepository: settingRepository}
}

func (s *SettingsService) All() (map[string]json.RawMessage, error) {
	settings, err := s.settingRepository.All()
	if err != nil {
		return nil, httpError(err, "settings")
	}
	res := make(map[string]json.RawMessage, len(settings))
	for _, setting := range settings {
		res[setting.Key] = json.RawMessage(setting.Val)
	}
	return res, nil
}

func (s *SettingsService) Get(key string) (json.RawMessage, error) {
	setting, err := s.settingRepository.Read(key)
	if err != nil {
		return nil, httpError(err, "setting")
	}
	return json.RawMessage(setting.Val), nil
}

func (s *SettingsService) Set(key string, value json.RawMessage) error {
	if key == "" {
		return badRequest("setting key is required")
	}
	if !json.Valid(value) {
		return badRequest("setting value has to be valid json")
	}
	return httpError(s.settingRepository.Upsert(nil, &models.Setting{Key: key, Val: string(value)}), "setting")
}

func (s *SettingsService) Delete(key string) error {
	return httpError(s.settingRepository.Delete(nil, key), "setting")
}
