package application

import (
	"fmt"
	"regexp"
	"time"

	"gorm.io/gorm"
)

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)
	namePattern   = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	originPattern = regexp.MustCompile(`^(http|https)://[a-zA-Z0-9-_.]+(:[0-9]+)?(/.*)?$`)
)

// Application is one registered client. FileCount tracks live resources
// owned by it and is only ever changed through atomic deltas.
type Application struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	DeveloperEmail  string    `gorm:"column:developer_email" json:"developerEmail"`
	ApplicationName string    `gorm:"column:application_name;uniqueIndex" json:"applicationName"`
	Origin          string    `gorm:"column:origin" json:"origin"`
	FileCount       int64     `gorm:"column:file_count;default:0" json:"fileCount"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Application) TableName() string { return "applications" }

// BeforeCreate enforces the schema-level field constraints. A failure here
// aborts the insert and surfaces as an internal error, not a 400.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if !emailPattern.MatchString(a.DeveloperEmail) {
		return fmt.Errorf("%s is not a valid email address", a.DeveloperEmail)
	}
	if !namePattern.MatchString(a.ApplicationName) {
		return fmt.Errorf("%s is not a valid application name", a.ApplicationName)
	}
	if !originPattern.MatchString(a.Origin) {
		return fmt.Errorf("%s is not a valid origin url", a.Origin)
	}
	return nil
}
