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
	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/transformer"
)

// ProfileService manages the evaluator profiles printed on reports. At most one profile is the default.
type ProfileService struct {
	profileRepository shared.ProfileRepository
}

func NewProfileService(profileRepository shared.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepository: profileRepository}
}

func (s *ProfileService) save(profile *models.Profile, create bool) error {
	return s.profileRepository.Transaction(func(tx shared.DB) error {
		var err error
		if create {
			err = s.profileRepository.Create(tx, profile)
		} else {
			err = s.profileRepository.Save(tx, profile)
		}
		if err != nil || !profile.IsDefault {
			return err
		}
		return s.profileRepository.ClearDefault(tx, profile.ID)
	})
}

func (s *ProfileService) Create(req dtos.ProfileRequest) (models.Profile, error) {
	profile := transformer.ProfileRequestToModel(req)
	if err := s.save(&profile, true); err != nil {
		return models.Profile{}, httpError(err, "profile")
	}
	return profile, nil
}

func (s *ProfileService) Update(id uuid.UUID, req dtos.ProfileRequest) (models.Profile, error) {
	profile, err := s.profileRepository.Read(id)
	if err != nil {
		return models.Profile{}, httpError(err, "profile")
	}
	transformer.ApplyProfileRequestToModel(req, &profile)
	if err := s.save(&profile, false); err != nil {
		return models.Profile{}, httpError(err, "profile")
	}
	return profile, nil
}

func (s *ProfileService) Delete(id uuid.UUID) error {
	return httpError(s.profileRepository.Delete(nil, id), "profile")
}

func (s *ProfileService) List() ([]models.Profile, error) {
	profiles, err := s.profileRepository.All()
	if err != nil {
		return nil, httpError(err, "profiles")
	}
	return profiles, nil
}
