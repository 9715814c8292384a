// Package persistence provides database storage implementations.
package persistence

import "time"

// IDs are stored as 36-char UUID strings so the same schema works on both
// SQLite and PostgreSQL.

// GPModel is the GORM model for GP firms.
type GPModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OrgID     string    `gorm:"column:org_id;index"`
	Name      string    `gorm:"column:name;index"`
	FirmType  string    `gorm:"column:firm_type"`
	Website   string    `gorm:"column:website"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GPModel.
func (GPModel) TableName() string { return "gps" }

// LPModel is the GORM model for LP institutions.
type LPModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OrgID     string    `gorm:"column:org_id;index"`
	Name      string    `gorm:"column:name;index"`
	LPType    string    `gorm:"column:lp_type"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for LPModel.
func (LPModel) TableName() string { return "lps" }

// FundModel is the GORM model for funds.
type FundModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OrgID     string    `gorm:"column:org_id;index"`
	Name      string    `gorm:"column:name;index"`
	FundType  string    `gorm:"column:fund_type"`
	ManagerID *string   `gorm:"column:manager_id;index"`
	Vintage   int       `gorm:"column:vintage"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for FundModel.
func (FundModel) TableName() string { return "funds" }

// PortfolioCompanyModel is the GORM model for portfolio companies.
type PortfolioCompanyModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OrgID     string    `gorm:"column:org_id;index"`
	Name      string    `gorm:"column:name;index"`
	Sector    string    `gorm:"column:sector"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for PortfolioCompanyModel.
func (PortfolioCompanyModel) TableName() string { return "portfolio_companies" }

// ServiceProviderModel is the GORM model for service providers.
type ServiceProviderModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	OrgID       string    `gorm:"column:org_id;index"`
	Name        string    `gorm:"column:name;index"`
	ServiceType string    `gorm:"column:service_type"`
	CreatedBy   string    `gorm:"column:created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for ServiceProviderModel.
func (ServiceProviderModel) TableName() string { return "service_providers" }

// ContactModel is the GORM model for contacts.
type ContactModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	OrgID       string    `gorm:"column:org_id;index"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	CompanyName string    `gorm:"column:company_name"`
	Email       string    `gorm:"column:email"`
	CreatedBy   string    `gorm:"column:created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for ContactModel.
func (ContactModel) TableName() string { return "contacts" }

// NewsModel is the GORM model for canonical news records.
type NewsModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	OrgID       string     `gorm:"column:org_id;index"`
	Headline    string     `gorm:"column:headline"`
	SourceName  string     `gorm:"column:source_name"`
	PublishDate *time.Time `gorm:"column:publish_date"`
	URL         string     `gorm:"column:url"`
	RawText     string     `gorm:"column:raw_text;type:text"`
	CleanedText string     `gorm:"column:cleaned_text;type:text"`
	Status      string     `gorm:"column:status;index"`
	Attempts    int        `gorm:"column:attempts"`
	CreatedBy   string     `gorm:"column:created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for NewsModel.
func (NewsModel) TableName() string { return "news" }

// LinkModel is the GORM model for news-entity links.
type LinkModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	NewsID     string    `gorm:"column:news_id;index"`
	EntityKind string    `gorm:"column:entity_kind"`
	EntityID   string    `gorm:"column:entity_id;index"`
	CreatedBy  string    `gorm:"column:created_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for LinkModel.
func (LinkModel) TableName() string { return "news_entity_links" }

// ResearchTaskModel is the GORM model for research tasks. Metadata is the
// task's JSON payload serialized as text.
type ResearchTaskModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OrgID     string    `gorm:"column:org_id;index"`
	Title     string    `gorm:"column:title"`
	Metadata  string    `gorm:"column:metadata;type:text"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for ResearchTaskModel.
func (ResearchTaskModel) TableName() string { return "research_tasks" }

// OutputModel is the GORM model for AI generation outputs. Candidates is
// the extracted entity list serialized as JSON text.
type OutputModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	NewsID     string    `gorm:"column:news_id;index"`
	OrgID      string    `gorm:"column:org_id;index"`
	Summary    string    `gorm:"column:summary;type:text"`
	Sentiment  string    `gorm:"column:sentiment"`
	Candidates string    `gorm:"column:candidates;type:text"`
	Model      string    `gorm:"column:model"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for OutputModel.
func (OutputModel) TableName() string { return "ai_outputs" }
