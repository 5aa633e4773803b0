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

package shared

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/utils"
)

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	ReadWithEnvironments(id uuid.UUID) (models.Project, error)
	ListPaged(pageInfo PageInfo, search string) (Paged[models.Project], error)
	ReplaceTechnologies(tx DB, project *models.Project, technologyIDs []string) error
}

type EnvironmentRepository interface {
	utils.Repository[uuid.UUID, models.Environment, DB]
	ListByProject(projectID uuid.UUID) ([]models.Environment, error)
}

type EnvironmentPageRepository interface {
	utils.Repository[uuid.UUID, models.EnvironmentPage, DB]
	ListByEnvironment(tx DB, environmentID uuid.UUID) ([]models.EnvironmentPage, error)
}

type EnvironmentTestRepository interface {
	utils.Repository[uuid.UUID, models.EnvironmentTest, DB]
	ListByEnvironment(environmentID uuid.UUID) ([]models.EnvironmentTest, error)
	ReadWithPages(id uuid.UUID) (models.EnvironmentTest, error)
	LinkPages(tx DB, testID uuid.UUID, pageIDs []uuid.UUID) error
	UnlinkPages(tx DB, testID uuid.UUID, pageIDs []uuid.UUID) error
}

type TestCaseRepository interface {
	utils.Repository[string, models.TestCase, DB]
	ListPaged(pageInfo PageInfo, search string, filter []FilterQuery, sort []SortQuery) (Paged[models.TestCase], error)
	ReadWithRelations(id string) (models.TestCase, error)
	ReplaceCriteria(tx DB, testCase *models.TestCase, criteriaIDs []string) error
}

type TestCaseEnvironmentTestPageRepository interface {
	utils.Repository[uuid.UUID, models.TestCaseEnvironmentTestPage, DB]
	// CreateBatchStrict inserts all rows or none. Conflicts are errors.
	CreateBatchStrict(tx DB, rows []models.TestCaseEnvironmentTestPage) error
	IsPageInTest(tx DB, pageID, testID uuid.UUID) (bool, error)
	ListByTest(testID uuid.UUID, filter []FilterQuery, sort []SortQuery) ([]models.TestCaseEnvironmentTestPage, error)
	ReadWithTargets(id uuid.UUID) (models.TestCaseEnvironmentTestPage, error)
	UpdateTargetCount(tx DB, id uuid.UUID) error
	CountByStatus(testID uuid.UUID) (map[models.TestCaseStatus]int64, error)
}

type TargetRepository interface {
	utils.Repository[uuid.UUID, models.TestCaseEnvironmentTestPageTarget, DB]
	ListByTestCasePage(testCasePageID uuid.UUID) ([]models.TestCaseEnvironmentTestPageTarget, error)
	ReadWithRelated(id uuid.UUID) (models.TestCaseEnvironmentTestPageTarget, error)
	Relate(tx DB, targetID, relatedTargetID uuid.UUID) error
	Unrelate(tx DB, targetID, relatedTargetID uuid.UUID) error
	RelatedIDs(tx DB, targetID uuid.UUID) ([]uuid.UUID, error)
	IDsByTestCases(tx DB, testCaseIDs []string) ([]uuid.UUID, error)
	RecomputeCounters(tx DB, targetIDs []uuid.UUID) error
}

type AuditRepository interface {
	utils.Repository[uuid.UUID, models.Audit, DB]
	ListPaged(pageInfo PageInfo, projectID *uuid.UUID, search string) (Paged[models.Audit], error)
	ReadWithRelations(id uuid.UUID) (models.Audit, error)
	ReplaceChapters(tx DB, audit *models.Audit, chapterIDs []string) error
	UpsertItems(tx DB, items []models.AuditItem) error
	ListItems(auditID uuid.UUID) ([]models.AuditItem, error)
}

type ProfileRepository interface {
	utils.Repository[uuid.UUID, models.Profile, DB]
	ClearDefault(tx DB, exceptID uuid.UUID) error
}

type RemediationRepository interface {
	utils.Repository[string, models.Remediation, DB]
	ListPaged(pageInfo PageInfo, search string) (Paged[models.Remediation], error)
	ListByTestCase(testCaseID string) ([]models.Remediation, error)
	ReadWithRelations(id string) (models.Remediation, error)
	LinkTestCases(tx DB, remediationID string, testCaseIDs []string) error
	UnlinkTestCases(tx DB, remediationID string, testCaseIDs []string) error
	LinkCriteria(tx DB, remediationID string, criteriaIDs []string) error
	UnlinkCriteria(tx DB, remediationID string, criteriaIDs []string) error
	TestCaseIDs(tx DB, remediationID string) ([]string, error)
}

type SystemRepository interface {
	Standards() ([]models.SystemStandard, error)
	AuditTypes() ([]models.SystemAuditType, error)
	ReadAuditTypeVersion(tx DB, id string) (models.SystemAuditTypeVersion, error)
	ChaptersWithItems(chapterIDs []string) ([]models.SystemAuditChapter, error)
	ItemsByChapters(tx DB, chapterIDs []string) ([]models.SystemAuditChapterSectionItem, error)
	ItemTypes() ([]models.SystemAuditChapterSectionItemType, error)
	Categories() ([]models.SystemCategory, error)
	Countries() ([]models.SystemCountry, error)
	Technologies() ([]models.SystemTechnology, error)
	Landmarks() ([]models.SystemLandmark, error)
	Sync() error
}

type SettingRepository interface {
	Read(key string) (models.Setting, error)
	All() ([]models.Setting, error)
	Upsert(tx DB, setting *models.Setting) error
	Delete(tx DB, key string) error
}

type ProjectService interface {
	Create(req dtos.ProjectCreateRequest) (models.Project, error)
	Update(project models.Project, req dtos.ProjectPatchRequest) (models.Project, error)
	Delete(projectID uuid.UUID) error
	Read(projectID uuid.UUID) (models.Project, error)
	ListPaged(pageInfo PageInfo, search string) (Paged[models.Project], error)
}

type EnvironmentService interface {
	Create(project models.Project, req dtos.EnvironmentCreateRequest) (models.Environment, error)
	Update(environment models.Environment, req dtos.EnvironmentPatchRequest) (models.Environment, error)
	Delete(environmentID uuid.UUID) error
	ListByProject(projectID uuid.UUID) ([]models.Environment, error)

	CreatePage(environment models.Environment, req dtos.EnvironmentPageCreateRequest) (models.EnvironmentPage, error)
	MovePage(environment models.Environment, pageID uuid.UUID, parentID *uuid.UUID) (models.EnvironmentPage, error)
	DeletePage(environment models.Environment, pageID uuid.UUID) error
	PageTree(environment models.Environment) ([]dtos.EnvironmentPageTreeDTO, error)

	CreateTest(environment models.Environment, req dtos.EnvironmentTestCreateRequest) (models.EnvironmentTest, error)
	ListTests(environment models.Environment) ([]models.EnvironmentTest, error)
	ReadTest(testID uuid.UUID) (models.EnvironmentTest, error)
	LinkPages(test models.EnvironmentTest, pageIDs []uuid.UUID) error
	UnlinkPages(test models.EnvironmentTest, pageIDs []uuid.UUID) error
	FinishTest(test models.EnvironmentTest, status models.EnvironmentTestStatus) (models.EnvironmentTest, error)
	DeleteTest(testID uuid.UUID) error
}

type TestCaseService interface {
	Create(req dtos.TestCaseCreateRequest) (models.TestCase, error)
	Update(id string, req dtos.TestCasePatchRequest) (models.TestCase, error)
	Delete(id string) error
	Read(id string) (models.TestCase, error)
	ListPaged(pageInfo PageInfo, search string, filter []FilterQuery, sort []SortQuery) (Paged[models.TestCase], error)

	CreateTestCasePage(test models.EnvironmentTest, req dtos.TestCasePageCreateRequest) (models.TestCaseEnvironmentTestPage, error)
	BulkCreateTestCasePages(test models.EnvironmentTest, reqs []dtos.TestCasePageCreateRequest) ([]models.TestCaseEnvironmentTestPage, error)
	UpdateTestCasePageStatus(id uuid.UUID, req dtos.TestCasePageStatusRequest) (models.TestCaseEnvironmentTestPage, error)
	ListTestCasePages(testID uuid.UUID, filter []FilterQuery, sort []SortQuery) ([]models.TestCaseEnvironmentTestPage, error)
	ReadTestCasePage(id uuid.UUID) (models.TestCaseEnvironmentTestPage, error)
	DeleteTestCasePage(id uuid.UUID) error
	Statistics(testID uuid.UUID) (dtos.TestCasePageStatisticsDTO, error)
}

type TargetService interface {
	AddTargets(testCasePageID uuid.UUID, reqs []dtos.TargetCreateRequest) ([]models.TestCaseEnvironmentTestPageTarget, error)
	ListTargets(testCasePageID uuid.UUID) ([]models.TestCaseEnvironmentTestPageTarget, error)
	ReadTarget(id uuid.UUID) (models.TestCaseEnvironmentTestPageTarget, error)
	DeleteTarget(id uuid.UUID) error
	Relate(targetID, relatedTargetID uuid.UUID) error
	Unrelate(targetID, relatedTargetID uuid.UUID) error
	// RecomputeForTestCases refreshes the remediation counters of all targets of the given test cases.
	RecomputeForTestCases(tx DB, testCaseIDs []string) error
}

type AuditService interface {
	Create(req dtos.AuditCreateRequest) (models.Audit, error)
	Update(audit models.Audit, req dtos.AuditPatchRequest) (models.Audit, error)
	TransitionStatus(audit models.Audit, status models.AuditStatus) (models.Audit, error)
	Delete(auditID uuid.UUID) error
	Read(auditID uuid.UUID) (models.Audit, error)
	ListPaged(pageInfo PageInfo, projectID *uuid.UUID, search string) (Paged[models.Audit], error)
	UpsertItems(audit models.Audit, items []dtos.AuditItemUpsert) error
	Summary(audit models.Audit) (dtos.AuditSummaryDTO, error)
}

type ProfileService interface {
	Create(req dtos.ProfileRequest) (models.Profile, error)
	Update(id uuid.UUID, req dtos.ProfileRequest) (models.Profile, error)
	Delete(id uuid.UUID) error
	List() ([]models.Profile, error)
}

type RemediationService interface {
	Create(req dtos.RemediationCreateRequest) (models.Remediation, error)
	Update(id string, req dtos.RemediationPatchRequest) (models.Remediation, error)
	Delete(id string) error
	Read(id string) (models.Remediation, error)
	ListPaged(pageInfo PageInfo, search string) (Paged[models.Remediation], error)
	ListByTestCase(testCaseID string) ([]models.Remediation, error)
	Link(id string, req dtos.RemediationLinkRequest) error
	Unlink(id string, req dtos.RemediationLinkRequest) error
}

type SystemService interface {
	List(table string) (any, error)
	Sync() error
}

type SettingsService interface {
	All() (map[string]json.RawMessage, error)
	Get(key string) (json.RawMessage, error)
	Set(key string, value json.RawMessage) error
	Delete(key string) error
}

type ReportService interface {
	Generate(ctx context.Context, req dtos.ReportRequest) (dtos.Report, error)
}

// PDFRenderer prints a html document to pdf.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}
