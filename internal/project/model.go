package project

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the identity and timestamps of every persisted row
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;column:id;not null;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID, err = uuid.NewRandom()
		if err != nil {
			return
		}
	}
	now := time.Now().UTC()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
	return
}

func (base *BaseModel) BeforeUpdate(tx *gorm.DB) (err error) {
	base.UpdatedAt = time.Now().UTC()
	return
}

// StringList is stored as a JSON array in a text column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList value: %v", value)
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Project is a video project created from an uploaded presentation
type Project struct {
	BaseModel
	Title          string     `gorm:"type:varchar(100);column:title;not null" json:"title"`
	Description    string     `gorm:"type:text;column:description" json:"description"`
	Template       string     `gorm:"type:varchar(32);column:template;not null" json:"template"`
	Tags           StringList `gorm:"type:text;column:tags;not null" json:"tags"`
	Status         Status     `gorm:"type:varchar(16);column:status;not null;default:'draft';index" json:"status"`
	SlideCount     int        `gorm:"column:slide_count;not null" json:"slideCount"`
	Thumbnail      string     `gorm:"type:varchar(512);column:thumbnail" json:"thumbnail,omitempty"`
	SourceFileName string     `gorm:"type:varchar(255);column:source_file_name;not null" json:"sourceFileName"`
	SourceFileKey  string     `gorm:"type:varchar(255);column:source_file_key;not null" json:"-"`
	SourceFileURL  string     `gorm:"type:varchar(1024);column:source_file_url" json:"sourceFileUrl"`
}

func (p *Project) TableName() string {
	return "projects"
}

// ListResult is one page of projects
type ListResult struct {
	TotalCount int64     `json:"totalCount"`
	Items      []Project `json:"items"`
	Offset     int64     `json:"offset"`
	Limit      int64     `json:"limit"`
}

// DownloadResponse points at the source presentation of a project
type DownloadResponse struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}
