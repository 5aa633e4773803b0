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

type SystemController struct {
	systemService   shared.SystemService
	settingsService shared.SettingsService
}

func NewSystemController(systemService shared.SystemService, settingsService shared.SettingsService) *SystemController {
	return &SystemController{
		systemService:   systemService,
		settingsService: settingsService,
	}
}

// @Summary List a reference table
// @Param table path string true "standards, audit-types, item-types, categories, countries, technologies or landmarks"
// @Success 200 {array} object
// @Router /system/{table} [get]
func (c *SystemController) List(ctx shared.Context) error {
	table, err := stringParam(ctx, "table")
	if err != nil {
		return err
	}

	rows, err := c.systemService.List(table)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (c *SystemController) Sync(ctx shared.Context) error {
	if err := c.systemService.Sync(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("system tables synchronized"))
}

func (c *SystemController) Settings(ctx shared.Context) error {
	settings, err := c.settingsService.All()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, settings)
}

func (c *SystemController) ReadSetting(ctx shared.Context) error {
	key, err := stringParam(ctx, "key")
	if err != nil {
		return err
	}

	value, err := c.settingsService.Get(key)
	if err != nil {
		return err
	}
	return ctx.JSONBlob(http.StatusOK, value)
}

func (c *SystemController) SetSetting(ctx shared.Context) error {
	key, err := stringParam(ctx, "key")
	if err != nil {
		return err
	}

	var req dtos.SettingRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.settingsService.Set(key, req.Value); err != nil {
		return err
	}
	return ctx.JSONBlob(http.StatusOK, req.Value)
}

func (c *SystemController) DeleteSetting(ctx shared.Context) error {
	key, err := stringParam(ctx, "key")
	if err != nil {
		return err
	}

	if err := c.settingsService.Delete(key); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("setting deleted"))
}
