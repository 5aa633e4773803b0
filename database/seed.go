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

package database

import (
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/auditguard/database/models"
	"github.com/l3montree-dev/auditguard/monitoring"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed seed/system.yaml
var systemSeed []byte

type seedCriteria struct {
	Num   string `yaml:"num"`
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type seedGuideline struct {
	Num      string         `yaml:"num"`
	Name     string         `yaml:"name"`
	Criteria []seedCriteria `yaml:"criteria"`
}

type seedPrinciple struct {
	Num        string          `yaml:"num"`
	Name       string          `yaml:"name"`
	Guidelines []seedGuideline `yaml:"guidelines"`
}

type seedStandard struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Version    string          `yaml:"version"`
	URL        string          `yaml:"url"`
	Principles []seedPrinciple `yaml:"principles"`
}

type seedItem struct {
	Num  string `yaml:"num"`
	Name string `yaml:"name"`
}

type seedSection struct {
	ID   string `yaml:"id"`
	Num  string `yaml:"num"`
	Name string `yaml:"name"`
	// either explicit items or all criteria of a standard with the given level
	Items     []seedItem `yaml:"items"`
	Standard  string     `yaml:"standard"`
	Level     string     `yaml:"level"`
	ItemTypes []string   `yaml:"item_types"`
}

type seedChapter struct {
	ID       string        `yaml:"id"`
	Num      string        `yaml:"num"`
	Name     string        `yaml:"name"`
	Sections []seedSection `yaml:"sections"`
}

type seedVersion struct {
	ID       string   `yaml:"id"`
	Version  string   `yaml:"version"`
	Chapters []string `yaml:"chapters"`
}

type seedAuditType struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Versions []seedVersion `yaml:"versions"`
	Chapters []seedChapter `yaml:"chapters"`
}

type seedNamed struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type systemSeedFile struct {
	Standards    []seedStandard  `yaml:"standards"`
	ItemTypes    []seedNamed     `yaml:"item_types"`
	AuditTypes   []seedAuditType `yaml:"audit_types"`
	Categories   []seedNamed     `yaml:"categories"`
	Countries    []seedNamed     `yaml:"countries"`
	Technologies []seedNamed     `yaml:"technologies"`
	Landmarks    []seedNamed     `yaml:"landmarks"`
}

type itemTypeLink struct {
	SystemAuditChapterSectionItemID     string `gorm:"primaryKey"`
	SystemAuditChapterSectionItemTypeID string `gorm:"primaryKey"`
}

func (itemTypeLink) TableName() string {
	return "system_audit_chapter_section_item_type_links"
}

// SystemRows is the flattened content of the seed file, ready to be upserted.
type SystemRows struct {
	Standards     []models.SystemStandard
	Principles    []models.SystemStandardPrinciple
	Guidelines    []models.SystemStandardGuideline
	Criteria      []models.SystemStandardCriteria
	ItemTypes     []models.SystemAuditChapterSectionItemType
	AuditTypes    []models.SystemAuditType
	Versions      []models.SystemAuditTypeVersion
	Chapters      []models.SystemAuditChapter
	Sections      []models.SystemAuditChapterSection
	Items         []models.SystemAuditChapterSectionItem
	ItemTypeLinks []itemTypeLink
	Categories    []models.SystemCategory
	Countries     []models.SystemCountry
	Technologies  []models.SystemTechnology
	Landmarks     []models.SystemLandmark
}

func CriteriaID(standardID, num string) string {
	return fmt.Sprintf("%s-%s", standardID, num)
}

// ParseSystemSeed flattens a seed file into rows and checks its references.
func ParseSystemSeed(raw []byte) (SystemRows, error) {
	var file systemSeedFile
	var rows SystemRows
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return rows, fmt.Errorf("could not parse system seed: %w", err)
	}

	// criteria by standard and level, in file order
	criteriaByLevel := make(map[string][]models.SystemStandardCriteria)
	for _, s := range file.Standards {
		rows.Standards = append(rows.Standards, models.SystemStandard{ID: s.ID, Name: s.Name, Version: s.Version, URL: s.URL})
		for _, p := range s.Principles {
			principleID := CriteriaID(s.ID, p.Num)
			rows.Principles = append(rows.Principles, models.SystemStandardPrinciple{ID: principleID, SystemStandardID: s.ID, Num: p.Num, Name: p.Name})
			for _, g := range p.Guidelines {
				guidelineID := CriteriaID(s.ID, g.Num)
				rows.Guidelines = append(rows.Guidelines, models.SystemStandardGuideline{ID: guidelineID, SystemStandardPrincipleID: principleID, Num: g.Num, Name: g.Name})
				for _, c := range g.Criteria {
					if !models.ConformanceTarget("AAA").Includes(c.Level) {
						return rows, fmt.Errorf("criteria %s has invalid level %q", c.Num, c.Level)
					}
					criteria := models.SystemStandardCriteria{ID: CriteriaID(s.ID, c.Num), SystemStandardGuidelineID: guidelineID, Num: c.Num, Name: c.Name, Level: c.Level}
					rows.Criteria = append(rows.Criteria, criteria)
					key := s.ID + "/" + c.Level
					criteriaByLevel[key] = append(criteriaByLevel[key], criteria)
				}
			}
		}
	}

	itemTypes := make(map[string]bool)
	for _, t := range file.ItemTypes {
		itemTypes[t.ID] = true
		rows.ItemTypes = append(rows.ItemTypes, models.SystemAuditChapterSectionItemType{ID: t.ID, Name: t.Name})
	}

	for _, at := range file.AuditTypes {
		rows.AuditTypes = append(rows.AuditTypes, models.SystemAuditType{ID: at.ID, Name: at.Name})

		chapterIDs := make(map[string]bool)
		for _, ch := range at.Chapters {
			chapterIDs[ch.ID] = true
			rows.Chapters = append(rows.Chapters, models.SystemAuditChapter{ID: ch.ID, SystemAuditTypeID: at.ID, Num: ch.Num, Name: ch.Name})

			for _, sec := range ch.Sections {
				rows.Sections = append(rows.Sections, models.SystemAuditChapterSection{ID: sec.ID, SystemAuditChapterID: ch.ID, Num: sec.Num, Name: sec.Name})

				for _, t := range sec.ItemTypes {
					if !itemTypes[t] {
						return rows, fmt.Errorf("section %s references unknown item type %q", sec.ID, t)
					}
				}

				var items []models.SystemAuditChapterSectionItem
				if sec.Standard != "" {
					criteria, ok := criteriaByLevel[sec.Standard+"/"+sec.Level]
					if !ok {
						return rows, fmt.Errorf("section %s references unknown criteria %s/%s", sec.ID, sec.Standard, sec.Level)
					}
					for _, c := range criteria {
						items = append(items, models.SystemAuditChapterSectionItem{
							ID:                          sec.ID + "-" + c.Num,
							SystemAuditChapterSectionID: sec.ID,
							Num:                         c.Num,
							Name:                        c.Name,
							SystemStandardCriteriaID:    &c.ID,
						})
					}
				}
				for _, it := range sec.Items {
					items = append(items, models.SystemAuditChapterSectionItem{
						ID:                          sec.ID + "-" + it.Num,
						SystemAuditChapterSectionID: sec.ID,
						Num:                         it.Num,
						Name:                        it.Name,
					})
				}

				for _, item := range items {
					for _, t := range sec.ItemTypes {
						rows.ItemTypeLinks = append(rows.ItemTypeLinks, itemTypeLink{SystemAuditChapterSectionItemID: item.ID, SystemAuditChapterSectionItemTypeID: t})
					}
				}
				rows.Items = append(rows.Items, items...)
			}
		}

		for _, v := range at.Versions {
			for _, id := range v.Chapters {
				if !chapterIDs[id] {
					return rows, fmt.Errorf("version %s references unknown chapter %q", v.ID, id)
				}
			}
			rows.Versions = append(rows.Versions, models.SystemAuditTypeVersion{ID: v.ID, SystemAuditTypeID: at.ID, Version: v.Version, ChapterIDs: v.Chapters})
		}
	}

	for _, c := range file.Categories {
		rows.Categories = append(rows.Categories, models.SystemCategory{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	for _, c := range file.Countries {
		rows.Countries = append(rows.Countries, models.SystemCountry{ID: c.ID, Name: c.Name})
	}
	for _, t := range file.Technologies {
		rows.Technologies = append(rows.Technologies, models.SystemTechnology{ID: t.ID, Name: t.Name})
	}
	for _, l := range file.Landmarks {
		rows.Landmarks = append(rows.Landmarks, models.SystemLandmark{ID: l.ID, Name: l.Name})
	}

	return rows, nil
}

func upsertAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, 200).Error
}

// SyncSystemTables upserts the embedded reference data. Running it again changes nothing.
func SyncSystemTables(db *gorm.DB) error {
	start := time.Now()
	defer func() {
		monitoring.SystemSyncDuration.Observe(time.Since(start).Seconds())
	}()

	rows, err := ParseSystemSeed(systemSeed)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		steps := []func() error{
			func() error { return upsertAll(tx, rows.Standards) },
			func() error { return upsertAll(tx, rows.Principles) },
			func() error { return upsertAll(tx, rows.Guidelines) },
			func() error { return upsertAll(tx, rows.Criteria) },
			func() error { return upsertAll(tx, rows.ItemTypes) },
			func() error { return upsertAll(tx, rows.AuditTypes) },
			func() error { return upsertAll(tx, rows.Chapters) },
			func() error { return upsertAll(tx, rows.Versions) },
			func() error { return upsertAll(tx, rows.Sections) },
			func() error { return upsertAll(tx, rows.Items) },
			func() error {
				if len(rows.ItemTypeLinks) == 0 {
					return nil
				}
				return tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows.ItemTypeLinks, 200).Error
			},
			func() error { return upsertAll(tx, rows.Categories) },
			func() error { return upsertAll(tx, rows.Countries) },
			func() error { return upsertAll(tx, rows.Technologies) },
			func() error { return upsertAll(tx, rows.Landmarks) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not sync system tables: %w", err)
	}

	slog.Info("system tables synced", "criteria", len(rows.Criteria), "items", len(rows.Items), "duration", time.Since(start))
	return nil
}
