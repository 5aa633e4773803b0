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

type TestCaseController struct {
	testCaseService    shared.TestCaseService
	remediationService shared.RemediationService
}

func NewTestCaseController(testCaseService shared.TestCaseService, remediationService shared.RemediationService) *TestCaseController {
	return &TestCaseController{
		testCaseService:    testCaseService,
		remediationService: remediationService,
	}
}

// @Summary List test cases
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search in id and name"
// @Param filterQuery query string false "e.g. filterQuery[type][is]=MANUAL"
// @Param sort query string false "e.g. sort[name]=asc"
// @Success 200 {object} shared.Paged[models.TestCase]
// @Router /test-cases [get]
func (c *TestCaseController) List(ctx shared.Context) error {
	paged, err := c.testCaseService.ListPaged(shared.GetPageInfo(ctx), shared.GetSearchQuery(ctx), shared.GetFilterQuery(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, paged)
}

func (c *TestCaseController) Create(ctx shared.Context) error {
	var req dtos.TestCaseCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	testCase, err := c.testCaseService.Create(req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, testCase)
}

func (c *TestCaseController) Read(ctx shared.Context) error {
	id, err := stringParam(ctx, "testCaseID")
	if err != nil {
		return err
	}

	testCase, err := c.testCaseService.Read(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, testCase)
}

func (c *TestCaseController) Update(ctx shared.Context) error {
	id, err := stringParam(ctx, "testCaseID")
	if err != nil {
		return err
	}

	var req dtos.TestCasePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	testCase, err := c.testCaseService.Update(id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, testCase)
}

func (c *TestCaseController) Delete(ctx shared.Context) error {
	id, err := stringParam(ctx, "testCaseID")
	if err != nil {
		return err
	}
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.testCaseService.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("test case deleted"))
}

func (c *TestCaseController) Remediations(ctx shared.Context) error {
	id, err := stringParam(ctx, "testCaseID")
	if err != nil {
		return err
	}

	remediations, err := c.remediationService.ListByTestCase(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, remediations)
}

// test case results of an environment test

func (c *TestCaseController) ListPages(ctx shared.Context) error {
	pages, err := c.testCaseService.ListTestCasePages(shared.GetEnvironmentTest(ctx).ID, shared.GetFilterQuery(ctx), shared.GetSortQuery(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pages)
}

// @Summary Create a test case result
// @Description the page has to be part of the environment test
// @Param testID path string true "Environment test ID"
// @Param body body dtos.TestCasePageCreateRequest true "Request body"
// @Success 200 {object} models.TestCaseEnvironmentTestPage
// @Router /tests/{testID}/test-case-pages [post]
func (c *TestCaseController) CreatePage(ctx shared.Context) error {
	var req dtos.TestCasePageCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	page, err := c.testCaseService.CreateTestCasePage(shared.GetEnvironmentTest(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

// @Summary Create test case results in bulk
// @Description either all rows are stored or none
// @Param testID path string true "Environment test ID"
// @Param body body dtos.TestCasePageBulkCreateRequest true "Request body"
// @Success 200 {array} models.TestCaseEnvironmentTestPage
// @Router /tests/{testID}/test-case-pages/bulk [post]
func (c *TestCaseController) BulkCreatePages(ctx shared.Context) error {
	var req dtos.TestCasePageBulkCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	pages, err := c.testCaseService.BulkCreateTestCasePages(shared.GetEnvironmentTest(ctx), req.Rows)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pages)
}

func (c *TestCaseController) Statistics(ctx shared.Context) error {
	stats, err := c.testCaseService.Statistics(shared.GetEnvironmentTest(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (c *TestCaseController) ReadPage(ctx shared.Context) error {
	id, err := uuidParam(ctx, "pageID")
	if err != nil {
		return err
	}

	page, err := c.testCaseService.ReadTestCasePage(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (c *TestCaseController) UpdatePageStatus(ctx shared.Context) error {
	id, err := uuidParam(ctx, "pageID")
	if err != nil {
		return err
	}

	var req dtos.TestCasePageStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	page, err := c.testCaseService.UpdateTestCasePageStatus(id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (c *TestCaseController) DeletePage(ctx shared.Context) error {
	id, err := uuidParam(ctx, "pageID")
	if err != nil {
		return err
	}
	if err := confirmDeletion(ctx); err != nil {
		return err
	}

	if err := c.testCaseService.DeleteTestCasePage(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.Success("test case result deleted"))
}
