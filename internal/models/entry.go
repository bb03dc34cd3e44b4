package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultMunicipality is the region every entry belongs to in the
// current single-region deployment.
const DefaultMunicipality = "Glyfada"

// BinTypeList stores the ordered bin-type tags of an entry as a single
// JSON-encoded text column, so the same model works on Postgres and on
// the SQLite database used in tests.
type BinTypeList []string

// Value implements driver.Valuer.
func (l BinTypeList) Value() (driver.Value, error) {
	if l == nil {
		l = BinTypeList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *BinTypeList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into BinTypeList", value)
	}
}

// BinSurveyEntry is one submitted waste-bin observation.
// PhotoURI and Comments are pointers so that "absent" is distinguishable
// from an empty string.
type BinSurveyEntry struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Datetime     time.Time   `json:"datetime" gorm:"not null"`
	Municipality string      `json:"municipality" gorm:"not null;default:Glyfada"`
	Street       string      `json:"street" gorm:"not null"`
	Latitude     float64     `json:"latitude" gorm:"not null"`
	Longitude    float64     `json:"longitude" gorm:"not null"`
	BinTypes     BinTypeList `json:"binTypes" gorm:"column:bin_types;type:text;not null"`
	Quantity     int         `json:"quantity" gorm:"not null"`
	PhotoURI     *string     `json:"photoUri" gorm:"column:photo_uri"`
	Comments     *string     `json:"comments"`
	Synced       bool        `json:"synced" gorm:"not null;default:false"`
}

func (BinSurveyEntry) TableName() string {
	return "bin_survey_entries"
}

// InsertEntry carries the caller-supplied fields of a new entry.
// ID, Datetime and Synced are assigned by the store. Latitude and
// Longitude are pointers so an absent coordinate is distinguishable from
// a legitimate zero (the equator and the prime meridian are real places).
type InsertEntry struct {
	Municipality string      `json:"municipality"`
	Street       string      `json:"street"`
	Latitude     *float64    `json:"latitude"`
	Longitude    *float64    `json:"longitude"`
	BinTypes     BinTypeList `json:"binTypes"`
	Quantity     int         `json:"quantity"`
	PhotoURI     *string     `json:"photoUri"`
	Comments     *string     `json:"comments"`
}

// UpdateEntry is a partial patch. Nil fields are left untouched.
// ID and Datetime are never patched; Synced changes only through the
// mark-synced operation.
type UpdateEntry struct {
	Municipality *string     `json:"municipality"`
	Street       *string     `json:"street"`
	Latitude     *float64    `json:"latitude"`
	Longitude    *float64    `json:"longitude"`
	BinTypes     BinTypeList `json:"binTypes"`
	Quantity     *int        `json:"quantity"`
	PhotoURI     *string     `json:"photoUri"`
	Comments     *string     `json:"comments"`
}
