package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nameRow is the projection used by name search.
type nameRow struct {
	ID   string
	Name string
}

// searchByName runs a tenant-scoped, case-insensitive substring match on a
// name column. db must already be scoped to a model. LOWER(...) LIKE is
// used instead of ILIKE so the same query works on SQLite and PostgreSQL.
func searchByName(db *gorm.DB, orgID uuid.UUID, query string, limit int, kind entity.Kind) ([]entity.SearchResult, error) {
	var rows []nameRow
	err := db.
		Select("id, name").
		Where("org_id = ?", orgID.String()).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search %s by name: %w", kind, err)
	}

	results := make([]entity.SearchResult, len(rows))
	for i, row := range rows {
		results[i] = entity.NewSearchResult(parseUUID(row.ID), row.Name, kind)
	}
	return results, nil
}

// findByName runs a tenant-scoped, case-insensitive equality match on a
// name column. Unlike searchByName it carries no row cap: exact matching
// must see the whole table or a hit can be shadowed by substring
// neighbours that sort earlier.
func findByName(db *gorm.DB, orgID uuid.UUID, name string, kind entity.Kind) ([]entity.SearchResult, error) {
	var rows []nameRow
	err := db.
		Select("id, name").
		Where("org_id = ?", orgID.String()).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find %s by name: %w", kind, err)
	}

	results := make([]entity.SearchResult, len(rows))
	for i, row := range rows {
		results[i] = entity.NewSearchResult(parseUUID(row.ID), row.Name, kind)
	}
	return results, nil
}

// upsert writes a model by primary key, inserting or replacing.
func upsert(db *gorm.DB, model any, label string) error {
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
		return fmt.Errorf("save %s: %w", label, err)
	}
	return nil
}

// GPStore implements entity.GPStore using GORM.
type GPStore struct {
	database.Repository[entity.GP, GPModel]
}

// NewGPStore creates a new GPStore.
func NewGPStore(db database.Database) GPStore {
	return GPStore{
		Repository: database.NewRepository[entity.GP, GPModel](db, GPMapper{}, "gp"),
	}
}

// Save creates or updates a GP firm.
func (s GPStore) Save(ctx context.Context, g entity.GP) (entity.GP, error) {
	model := s.Mapper().ToModel(g)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return entity.GP{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a GP firm.
func (s GPStore) Delete(ctx context.Context, g entity.GP) error {
	model := s.Mapper().ToModel(g)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete gp: %w", err)
	}
	return nil
}

// SearchByName matches GP firms by name substring within a tenant.
func (s GPStore) SearchByName(ctx context.Context, orgID uuid.UUID, query string, limit int) ([]entity.SearchResult, error) {
	return searchByName(s.DB(ctx).Model(&GPModel{}), orgID, query, limit, entity.KindGP)
}

// FindByName matches GP firms by exact name within a tenant.
func (s GPStore) FindByName(ctx context.Context, orgID uuid.UUID, name string) ([]entity.SearchResult, error) {
	return findByName(s.DB(ctx).Model(&GPModel{}), orgID, name, entity.KindGP)
}

// LPStore implements entity.LPStore using GORM.
type LPStore struct {
	database.Repository[entity.LP, LPModel]
}

// NewLPStore creates a new LPStore.
func NewLPStore(db database.Database) LPStore {
	return LPStore{
		Repository: database.NewRepository[entity.LP, LPModel](db, LPMapper{}, "lp"),
	}
}

// Save creates or updates an LP institution.
func (s LPStore) Save(ctx context.Context, l entity.LP) (entity.LP, error) {
	model := s.Mapper().ToModel(l)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return entity.LP{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes an LP institution.
func (s LPStore) Delete(ctx context.Context, l entity.LP) error {
	model := s.Mapper().ToModel(l)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete lp: %w", err)
	}
	return nil
}

// SearchByName matches LP institutions by name substring within a tenant.
func (s LPStore) SearchByName(ctx context.Context, orgID uuid.UUID, query string, limit int) ([]entity.SearchResult, error) {
	return searchByName(s.DB(ctx).Model(&LPModel{}), orgID, query, limit, entity.KindLP)
}

// FindByName matches LP institutions by exact name within a tenant.
func (s LPStore) FindByName(ctx context.Context, orgID uuid.UUID, name string) ([]entity.SearchResult, error) {
	return findByName(s.DB(ctx).Model(&LPModel{}), orgID, name, entity.KindLP)
}

// FundStore implements entity.FundStore using GORM.
type FundStore struct {
	database.Repository[entity.Fund, FundModel]
}

// NewFundStore creates a new FundStore.
func NewFundStore(db database.Database) FundStore {
	return FundStore{
		Repository: database.NewRepository[entity.Fund, FundModel](db, FundMapper{}, "fund"),
	}
}

// Save creates or updates a fund.
func (s FundStore) Save(ctx context.Context, f entity.Fund) (entity.Fund, error) {
	model := s.Mapper().ToModel(f)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return entity.Fund{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a fund.
func (s FundStore) Delete(ctx context.Context, f entity.Fund) error {
	model := s.Mapper().ToModel(f)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete fund: %w", err)
	}
	return nil
}

// SearchByName matches funds by name substring within a tenant.
func (s FundStore) SearchByName(ctx context.Context, orgID uuid.UUID, query string, limit int) ([]entity.SearchResult, error) {
	return searchByName(s.DB(ctx).Model(&FundModel{}), orgID, query, limit, entity.KindFund)
}

// FindByName matches funds by exact name within a tenant.
func (s FundStore) FindByName(ctx context.Context, orgID uuid.UUID, name string) ([]entity.SearchResult, error) {
	return findByName(s.DB(ctx).Model(&FundModel{}), orgID, name, entity.KindFund)
}

// PortfolioCompanyStore implements entity.PortfolioCompanyStore using GORM.
type PortfolioCompanyStore struct {
	database.Repository[entity.PortfolioCompany, PortfolioCompanyModel]
}

// NewPortfolioCompanyStore creates a new PortfolioCompanyStore.
func NewPortfolioCompanyStore(db database.Database) PortfolioCompanyStore {
	return PortfolioCompanyStore{
		Repository: database.NewRepository[entity.PortfolioCompany, PortfolioCompanyModel](db, PortfolioCompanyMapper{}, "portfolio company"),
	}
}

// Save creates or updates a portfolio company.
func (s PortfolioCompanyStore) Save(ctx context.Context, c entity.PortfolioCompany) (entity.PortfolioCompany, error) {
	model := s.Mapper().ToModel(c)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return entity.PortfolioCompany{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a portfolio company.
func (s PortfolioCompanyStore) Delete(ctx context.Context, c entity.PortfolioCompany) error {
	model := s.Mapper().ToModel(c)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete portfolio company: %w", err)
	}
	return nil
}

// SearchByName matches portfolio companies by name substring within a tenant.
func (s PortfolioCompanyStore) SearchByName(ctx context.Context, orgID uuid.UUID, query string, limit int) ([]entity.SearchResult, error) {
	return searchByName(s.DB(ctx).Model(&PortfolioCompanyModel{}), orgID, query, limit, entity.KindPortfolioCompany)
}

// FindByName matches portfolio companies by exact name within a tenant.
func (s PortfolioCompanyStore) FindByName(ctx context.Context, orgID uuid.UUID, name string) ([]entity.SearchResult, error) {
	return findByName(s.DB(ctx).Model(&PortfolioCompanyModel{}), orgID, name, entity.KindPortfolioCompany)
}

// ServiceProviderStore implements entity.ServiceProviderStore using GORM.
type ServiceProviderStore struct {
	database.Repository[entity.ServiceProvider, ServiceProviderModel]
}

// NewServiceProviderStore creates a new ServiceProviderStore.
func NewServiceProviderStore(db database.Database) ServiceProviderStore {
	return ServiceProviderStore{
		Repository: database.NewRepository[entity.ServiceProvider, ServiceProviderModel](db, ServiceProviderMapper{}, "service provider"),
	}
}

// Save creates or updates a service provider.
func (s ServiceProviderStore) Save(ctx context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	model := s.Mapper().ToModel(p)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return entity.ServiceProvider{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a service provider.
func (s ServiceProviderStore) Delete(ctx context.Context, p entity.ServiceProvider) error {
	model := s.Mapper().ToModel(p)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete service provider: %w", err)
	}
	return nil
}

// SearchByName matches service providers by name substring within a tenant.
func (s ServiceProviderStore) SearchByName(ctx context.Context, orgID uuid.UUID, query string, limit int) ([]entity.SearchResult, error) {
	return searchByName(s.DB(ctx).Model(&ServiceProviderModel{}), orgID, query, limit, entity.KindServiceProvider)
}

// FindByName matches service providers by exact name within a tenant.
func (s ServiceProviderStore) FindByName(ctx context.Context, orgID uuid.UUID, name string) ([]entity.SearchResult, error) {
	return findByName(s.DB(ctx).Model(&ServiceProviderModel{}), orgID, name, entity.KindServiceProvider)
}

// ContactStore implements entity.ContactStore using GORM.
type ContactStore struct {
	database.Repository[entity.Contact, ContactModel]
}

// NewContactStore creates a new ContactStore.
func NewContactStore(db database.Database) ContactStore {
	return ContactStore{
		Repository: database.NewRepository[entity.Contact, ContactModel](db, ContactMapper{}, "contact"),
	}
}

// Save creates or updates a contact.
func (s ContactStore) Save(ctx context.Context, c entity.Contact) (entity.Contact, error) {
	model := s.Mapper().ToModel(c)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return entity.Contact{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a contact.
func (s ContactStore) Delete(ctx context.Context, c entity.Contact) error {
	model := s.Mapper().ToModel(c)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// SearchByName matches contacts within a tenant. Contacts have no single
// name column, so the match runs over first name, last name, and company
// name, and the result carries the derived display name.
func (s ContactStore) SearchByName(ctx context.Context, orgID uuid.UUID, query string, limit int) ([]entity.SearchResult, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var models []ContactModel
	err := s.DB(ctx).Model(&ContactModel{}).
		Where("org_id = ?", orgID.String()).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(company_name) LIKE ?",
			pattern, pattern, pattern).
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("search contact by name: %w", err)
	}

	results := make([]entity.SearchResult, len(models))
	for i, model := range models {
		contact := s.Mapper().ToDomain(model)
		results[i] = entity.NewSearchResult(contact.ID(), contact.DisplayName(), entity.KindContact)
	}
	return results, nil
}

// FindByName matches contacts whose full name equals the given name,
// ignoring case. TRIM handles contacts without a last name.
func (s ContactStore) FindByName(ctx context.Context, orgID uuid.UUID, name string) ([]entity.SearchResult, error) {
	var models []ContactModel
	err := s.DB(ctx).Model(&ContactModel{}).
		Where("org_id = ?", orgID.String()).
		Where("LOWER(TRIM(first_name || ' ' || last_name)) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("last_name ASC, first_name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("find contact by name: %w", err)
	}

	results := make([]entity.SearchResult, len(models))
	for i, model := range models {
		contact := s.Mapper().ToDomain(model)
		results[i] = entity.NewSearchResult(contact.ID(), contact.DisplayName(), entity.KindContact)
	}
	return results, nil
}

// NewEntityStores wires one store per entity kind over a shared database.
func NewEntityStores(db database.Database) entity.Stores {
	return entity.Stores{
		GPs:              NewGPStore(db),
		LPs:              NewLPStore(db),
		Funds:            NewFundStore(db),
		Companies:        NewPortfolioCompanyStore(db),
		Contacts:         NewContactStore(db),
		ServiceProviders: NewServiceProviderStore(db),
	}
}
