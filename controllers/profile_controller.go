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

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
)

type ProfileController struct {
	profileService shared.ProfileService
}

func NewProfileController(profileService shared.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

func (c *ProfileController) List(ctx shared.Context) error {
	profiles, err := c.profileService.List()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profiles)
}

func (c *ProfileController) Create(ctx shared.Context) error {
	var req dtos.ProfileRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	profile, err := c.profileService.Create(req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profile)
}

func (c *ProfileController) Update(ctx shared.Context) error {
	id, err := uuidParam(ctx, "profileID")
	if err != nil {
		return err
	}

	var req dtos.ProfileRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	profile, err := c.profileService.Update(id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profile)
}

func (c *ProfileController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "profileID")
	if err != nil {
		return err
	}
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.profileService.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("profile deleted"))
}
