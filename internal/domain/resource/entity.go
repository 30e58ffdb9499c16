package resource

import "time"

// Resource is one uploaded file's metadata record. ApplicationName is a
// non-owning reference: removing an application leaves its resources in
// place, so orphaned references are an accepted state.
type Resource struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ApplicationName string    `gorm:"column:application_name" json:"applicationName"`
	FileName        string    `gorm:"column:file_name" json:"fileName"`
	Size            string    `gorm:"column:size" json:"size"`
	Type            Category  `gorm:"column:type" json:"type"`
	Path            string    `gorm:"column:path" json:"path"`
	URL             string    `gorm:"column:url" json:"url"`
	UUID            string    `gorm:"column:uuid;uniqueIndex" json:"uuid"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Resource) TableName() string { return "resources" }
