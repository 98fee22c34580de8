package main

import (
	"database/sql"
	"errors"
	"html/template"
	"time"
)

const (
	typeA     = "A"
	typeCNAME = "CNAME"
)

var (
	errDuplicateIP      = errors.New("an A record with this IP already exists")
	errRecordNotFound   = errors.New("record not found")
	errUnresolvable     = errors.New("could not resolve")
	errValidationFailed = errors.New("unbound configuration check failed")
	errRestartFailed    = errors.New("unbound restart failed")
)

// record is the persisted local-data override. ResolvedIP is only meaningful
// for CNAME records; empty means the last resolution attempt failed or has
// not run yet.
type record struct {
	ID         uint64
	Domain     string
	Type       string
	Value      string
	TTL        uint32
	ResolvedIP string
}

// aliasedARecord is an A record together with the CNAME domains whose
// resolved IP currently equals its address.
type aliasedARecord struct {
	record
	Aliases []string
}

type recordModel struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement"`
	Domain     string         `gorm:"size:255;not null"`
	Type       string         `gorm:"size:10;not null"`
	Value      string         `gorm:"size:255;not null"`
	TTL        uint32         `gorm:"not null"`
	ResolvedIP sql.NullString `gorm:"size:45"`
}

func (recordModel) TableName() string {
	return "records"
}

type server struct {
	cfg    config
	store  *recordStore
	syncer *syncer
	index  *template.Template
	edit   *template.Template
	start  time.Time
}
