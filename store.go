package main

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type recordStore struct {
	db *gorm.DB
}

func newRecordStore(db *gorm.DB) *recordStore {
	return &recordStore{db: db}
}

// create inserts a record and returns its assigned id. For A records the
// duplicate-IP check and the insert run in one transaction so two concurrent
// adds cannot both claim the same address.
func (s *recordStore) create(rec record) (uint64, error) {
	model := modelFromRecord(rec)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if rec.Type == typeA {
			if err := checkDuplicateIP(tx, rec.Value, 0); err != nil {
				return err
			}
		}
		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return model.ID, nil
}

// update replaces every field of an existing record, including ResolvedIP.
func (s *recordStore) update(rec record) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing recordModel
		if err := tx.First(&existing, rec.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRecordNotFound
			}
			return fmt.Errorf("lookup record: %w", err)
		}

		if rec.Type == typeA {
			if err := checkDuplicateIP(tx, rec.Value, rec.ID); err != nil {
				return err
			}
		}

		model := modelFromRecord(rec)
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("save record: %w", err)
		}
		return nil
	})
}

// delete is idempotent: removing an id that no longer exists is not an error.
func (s *recordStore) delete(id uint64) error {
	if err := s.db.Delete(&recordModel{}, id).Error; err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (s *recordStore) setResolvedIP(id uint64, ip string) error {
	err := s.db.Model(&recordModel{}).Where("id = ?", id).
		Update("resolved_ip", nullString(ip)).Error
	if err != nil {
		return fmt.Errorf("update resolved ip: %w", err)
	}
	return nil
}

func (s *recordStore) get(id uint64) (record, error) {
	var model recordModel
	if err := s.db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return record{}, errRecordNotFound
		}
		return record{}, fmt.Errorf("lookup record: %w", err)
	}
	return recordFromModel(model), nil
}

// list returns all records in insertion order.
func (s *recordStore) list() ([]record, error) {
	var models []recordModel
	if err := s.db.Order("id asc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	out := make([]record, 0, len(models))
	for _, m := range models {
		out = append(out, recordFromModel(m))
	}
	return out, nil
}

func (s *recordStore) listCNAMEs() ([]record, error) {
	var models []recordModel
	err := s.db.Where("type = ?", typeCNAME).Order("id asc").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list CNAME records: %w", err)
	}

	out := make([]record, 0, len(models))
	for _, m := range models {
		out = append(out, recordFromModel(m))
	}
	return out, nil
}

func checkDuplicateIP(tx *gorm.DB, ip string, excludeID uint64) error {
	var count int64
	err := tx.Model(&recordModel{}).
		Where("type = ? AND value = ? AND id <> ?", typeA, ip, excludeID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("duplicate IP check: %w", err)
	}
	if count > 0 {
		return errDuplicateIP
	}
	return nil
}

func modelFromRecord(rec record) recordModel {
	return recordModel{
		ID:         rec.ID,
		Domain:     rec.Domain,
		Type:       rec.Type,
		Value:      rec.Value,
		TTL:        rec.TTL,
		ResolvedIP: nullString(rec.ResolvedIP),
	}
}

func recordFromModel(m recordModel) record {
	return record{
		ID:         m.ID,
		Domain:     m.Domain,
		Type:       m.Type,
		Value:      m.Value,
		TTL:        m.TTL,
		ResolvedIP: m.ResolvedIP.String,
	}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
