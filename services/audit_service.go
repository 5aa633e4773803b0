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
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/dtos"
	"github.com/l3montree-dev/auditguard/shared"
	"github.com/l3montree-dev/auditguard/statemachine"
	"github.com/l3montree-dev/auditguard/transformer"
	"github.com/l3montree-dev/auditguard/utils"
	"github.com/labstack/echo/v4"
)

type AuditService struct {
	auditRepository  shared.AuditRepository
	systemRepository shared.SystemRepository
}

func NewAuditService(auditRepository shared.AuditRepository, systemRepository shared.SystemRepository) *AuditService {
	return &AuditService{
		auditRepository:  auditRepository,
		systemRepository: systemRepository,
	}
}

var errAuditClosed = echo.NewHTTPError(http.StatusConflict, "the audit is closed, reopen it first")

func (s *AuditService) Create(req dtos.AuditCreateRequest) (models.Audit, error) {
	audit := transformer.AuditCreateRequestToModel(req)

	err := s.auditRepository.Transaction(func(tx shared.DB) error {
		version, err := s.systemRepository.ReadAuditTypeVersion(tx, req.SystemAuditTypeVersionID)
		if err != nil || version.SystemAuditTypeID != req.SystemAuditTypeID {
			return badRequest("the audit type version does not belong to the audit type")
		}

		chapterIDs := req.ChapterIDs
		if len(chapterIDs) == 0 {
			chapterIDs = version.ChapterIDs
		}

		if err := s.auditRepository.Create(tx, &audit); err != nil {
			return err
		}
		return s.auditRepository.ReplaceChapters(tx, &audit, chapterIDs)
	})
	if err != nil {
		return models.Audit{}, httpError(err, "audit")
	}

	slog.Info("audit created", "auditID", audit.ID, "projectID", audit.ProjectID, "version", audit.SystemAuditTypeVersionID)
	return s.Read(audit.ID)
}

func (s *AuditService) Update(audit models.Audit, req dtos.AuditPatchRequest) (models.Audit, error) {
	if audit.Status == models.AuditStatusClosed {
		return models.Audit{}, errAuditClosed
	}
	updated := transformer.ApplyAuditPatchRequestToModel(req, &audit)

	err := s.auditRepository.Transaction(func(tx shared.DB) error {
		if updated {
			if err := s.auditRepository.Save(tx, &audit); err != nil {
				return err
			}
		}
		if req.ChapterIDs != nil {
			return s.auditRepository.ReplaceChapters(tx, &audit, *req.ChapterIDs)
		}
		return nil
	})
	if err != nil {
		return models.Audit{}, httpError(err, "audit")
	}
	return s.Read(audit.ID)
}

func (s *AuditService) TransitionStatus(audit models.Audit, status models.AuditStatus) (models.Audit, error) {
	changed, err := statemachine.ApplyAuditStatus(&audit, status)
	if err != nil {
		return models.Audit{}, httpError(err, "audit")
	}
	if !changed {
		return audit, nil
	}
	if err := s.auditRepository.Save(nil, &audit); err != nil {
		return models.Audit{}, httpError(err, "audit")
	}
	slog.Info("audit status changed", "auditID", audit.ID, "status", status)
	return audit, nil
}

func (s *AuditService) Delete(auditID uuid.UUID) error {
	return httpError(s.auditRepository.Delete(nil, auditID), "audit")
}

func (s *AuditService) Read(auditID uuid.UUID) (models.Audit, error) {
	audit, err := s.auditRepository.ReadWithRelations(auditID)
	if err != nil {
		return models.Audit{}, httpError(err, "audit")
	}
	return audit, nil
}

func (s *AuditService) ListPaged(pageInfo shared.PageInfo, projectID *uuid.UUID, search string) (shared.Paged[models.Audit], error) {
	paged, err := s.auditRepository.ListPaged(pageInfo, projectID, search)
	if err != nil {
		return paged, httpError(err, "audits")
	}
	return paged, nil
}

func chapterIDs(audit models.Audit) []string {
	return utils.Map(audit.Chapters, func(c models.SystemAuditChapter) string { return c.ID })
}

// UpsertItems writes the levels of the given items in one transaction.
// Every item has to be part of a chapter of the audit and has to support the item type.
func (s *AuditService) UpsertItems(audit models.Audit, items []dtos.AuditItemUpsert) error {
	if audit.Status == models.AuditStatusClosed {
		return errAuditClosed
	}

	err := s.auditRepository.Transaction(func(tx shared.DB) error {
		known, err := s.systemRepository.ItemsByChapters(tx, chapterIDs(audit))
		if err != nil {
			return err
		}
		types := make(map[string][]string, len(known))
		for _, item := range known {
			types[item.ID] = utils.Map(item.Types, func(t models.SystemAuditChapterSectionItemType) string { return t.ID })
		}

		rows := make([]models.AuditItem, 0, len(items))
		for _, item := range items {
			itemTypes, ok := types[item.ItemID]
			if !ok || !utils.Contains(itemTypes, item.ItemTypeID) {
				return fmt.Errorf("item %s (%s) is not part of the audit: %w", item.ItemID, item.ItemTypeID, shared.ErrUnknownReference)
			}
			rows = append(rows, transformer.AuditItemUpsertToModel(audit.ID, item))
		}
		return s.auditRepository.UpsertItems(tx, rows)
	})
	return httpError(err, "audit items")
}

// Summary counts the levels per chapter. Items without a stored level count as not evaluated.
// Items of criteria above the conformance target are left out.
func (s *AuditService) Summary(audit models.Audit) (dtos.AuditSummaryDTO, error) {
	chapters, err := s.systemRepository.ChaptersWithItems(chapterIDs(audit))
	if err != nil {
		return dtos.AuditSummaryDTO{}, httpError(err, "chapters")
	}
	items, err := s.auditRepository.ListItems(audit.ID)
	if err != nil {
		return dtos.AuditSummaryDTO{}, httpError(err, "audit items")
	}

	return summarize(audit, chapters, items), nil
}

func itemKey(itemID, typeID string) string {
	return itemID + "/" + typeID
}

func inScope(audit models.Audit, item models.SystemAuditChapterSectionItem) bool {
	return item.SystemStandardCriteria == nil || audit.ConformanceTarget.Includes(item.SystemStandardCriteria.Level)
}

func summarize(audit models.Audit, chapters []models.SystemAuditChapter, items []models.AuditItem) dtos.AuditSummaryDTO {
	levels := make(map[string]models.AuditItemLevel, len(items))
	for _, item := range items {
		levels[itemKey(item.SystemAuditChapterSectionItemID, item.SystemAuditChapterSectionItemTypeID)] = item.Level
	}

	summary := dtos.AuditSummaryDTO{
		AuditID:  audit.ID,
		Levels:   make(map[models.AuditItemLevel]int),
		Chapters: make([]dtos.AuditChapterSummaryDTO, 0, len(chapters)),
	}
	for _, chapter := range chapters {
		chapterSummary := dtos.AuditChapterSummaryDTO{
			ChapterID: chapter.ID,
			Num:       chapter.Num,
			Name:      chapter.Name,
			Levels:    make(map[models.AuditItemLevel]int),
		}
		for _, section := range chapter.Sections {
			for _, item := range section.Items {
				if !inScope(audit, item) {
					continue
				}
				for _, t := range item.Types {
					level, ok := levels[itemKey(item.ID, t.ID)]
					if !ok {
						level = models.AuditItemLevelNotEvaluated
					}
					chapterSummary.Levels[level]++
					chapterSummary.Total++
				}
			}
		}
		for level, count := range chapterSummary.Levels {
			summary.Levels[level] += count
		}
		summary.Total += chapterSummary.Total
		summary.Chapters = append(summary.Chapters, chapterSummary)
	}
	return summary
}
