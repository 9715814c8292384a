package persistence

import (
	"encoding/json"
	"time"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/google/uuid"
)

// parseUUID parses a stored UUID string, yielding uuid.Nil for anything
// unparseable. Malformed rows should not take down a whole listing.
func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func uuidPtr(id uuid.UUID) *string {
	if id == uuid.Nil {
		return nil
	}
	s := id.String()
	return &s
}

func uuidFromPtr(s *string) uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return parseUUID(*s)
}

// GPMapper maps between domain GP and GPModel.
type GPMapper struct{}

// ToDomain converts a GPModel to a domain GP.
func (GPMapper) ToDomain(m GPModel) entity.GP {
	return entity.ReconstructGP(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.Name, m.FirmType, m.Website,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain GP to a GPModel.
func (GPMapper) ToModel(g entity.GP) GPModel {
	return GPModel{
		ID:        g.ID().String(),
		OrgID:     g.OrgID().String(),
		Name:      g.Name(),
		FirmType:  g.FirmType(),
		Website:   g.Website(),
		CreatedBy: g.CreatedBy().String(),
		CreatedAt: g.CreatedAt(),
		UpdatedAt: g.UpdatedAt(),
	}
}

// LPMapper maps between domain LP and LPModel.
type LPMapper struct{}

// ToDomain converts an LPModel to a domain LP.
func (LPMapper) ToDomain(m LPModel) entity.LP {
	return entity.ReconstructLP(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.Name, m.LPType,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain LP to an LPModel.
func (LPMapper) ToModel(l entity.LP) LPModel {
	return LPModel{
		ID:        l.ID().String(),
		OrgID:     l.OrgID().String(),
		Name:      l.Name(),
		LPType:    l.LPType(),
		CreatedBy: l.CreatedBy().String(),
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
	}
}

// FundMapper maps between domain Fund and FundModel.
type FundMapper struct{}

// ToDomain converts a FundModel to a domain Fund.
func (FundMapper) ToDomain(m FundModel) entity.Fund {
	return entity.ReconstructFund(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.Name, m.FundType,
		uuidFromPtr(m.ManagerID),
		m.Vintage,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain Fund to a FundModel.
func (FundMapper) ToModel(f entity.Fund) FundModel {
	return FundModel{
		ID:        f.ID().String(),
		OrgID:     f.OrgID().String(),
		Name:      f.Name(),
		FundType:  f.FundType(),
		ManagerID: uuidPtr(f.ManagerID()),
		Vintage:   f.Vintage(),
		CreatedBy: f.CreatedBy().String(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

// PortfolioCompanyMapper maps between domain PortfolioCompany and
// PortfolioCompanyModel.
type PortfolioCompanyMapper struct{}

// ToDomain converts a PortfolioCompanyModel to a domain PortfolioCompany.
func (PortfolioCompanyMapper) ToDomain(m PortfolioCompanyModel) entity.PortfolioCompany {
	return entity.ReconstructPortfolioCompany(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.Name, m.Sector,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain PortfolioCompany to a PortfolioCompanyModel.
func (PortfolioCompanyMapper) ToModel(c entity.PortfolioCompany) PortfolioCompanyModel {
	return PortfolioCompanyModel{
		ID:        c.ID().String(),
		OrgID:     c.OrgID().String(),
		Name:      c.Name(),
		Sector:    c.Sector(),
		CreatedBy: c.CreatedBy().String(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

// ServiceProviderMapper maps between domain ServiceProvider and
// ServiceProviderModel.
type ServiceProviderMapper struct{}

// ToDomain converts a ServiceProviderModel to a domain ServiceProvider.
func (ServiceProviderMapper) ToDomain(m ServiceProviderModel) entity.ServiceProvider {
	return entity.ReconstructServiceProvider(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.Name, m.ServiceType,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain ServiceProvider to a ServiceProviderModel.
func (ServiceProviderMapper) ToModel(s entity.ServiceProvider) ServiceProviderModel {
	return ServiceProviderModel{
		ID:          s.ID().String(),
		OrgID:       s.OrgID().String(),
		Name:        s.Name(),
		ServiceType: s.ServiceType(),
		CreatedBy:   s.CreatedBy().String(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

// ContactMapper maps between domain Contact and ContactModel.
type ContactMapper struct{}

// ToDomain converts a ContactModel to a domain Contact.
func (ContactMapper) ToDomain(m ContactModel) entity.Contact {
	return entity.ReconstructContact(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.FirstName, m.LastName, m.CompanyName, m.Email,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain Contact to a ContactModel.
func (ContactMapper) ToModel(c entity.Contact) ContactModel {
	return ContactModel{
		ID:          c.ID().String(),
		OrgID:       c.OrgID().String(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		CompanyName: c.CompanyName(),
		Email:       c.Email(),
		CreatedBy:   c.CreatedBy().String(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// NewsMapper maps between domain News and NewsModel.
type NewsMapper struct{}

// ToDomain converts a NewsModel to a domain News.
func (NewsMapper) ToDomain(m NewsModel) news.News {
	var publishDate time.Time
	if m.PublishDate != nil {
		publishDate = *m.PublishDate
	}
	return news.ReconstructNews(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.Headline, m.SourceName,
		publishDate,
		m.URL, m.RawText, m.CleanedText,
		news.Status(m.Status),
		m.Attempts,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain News to a NewsModel.
func (NewsMapper) ToModel(n news.News) NewsModel {
	var publishDate *time.Time
	if !n.PublishDate().IsZero() {
		pd := n.PublishDate()
		publishDate = &pd
	}
	return NewsModel{
		ID:          n.ID().String(),
		OrgID:       n.OrgID().String(),
		Headline:    n.Headline(),
		SourceName:  n.SourceName(),
		PublishDate: publishDate,
		URL:         n.URL(),
		RawText:     n.RawText(),
		CleanedText: n.CleanedText(),
		Status:      string(n.Status()),
		Attempts:    n.Attempts(),
		CreatedBy:   n.CreatedBy().String(),
		CreatedAt:   n.CreatedAt(),
		UpdatedAt:   n.UpdatedAt(),
	}
}

// LinkMapper maps between domain Link and LinkModel.
type LinkMapper struct{}

// ToDomain converts a LinkModel to a domain Link.
func (LinkMapper) ToDomain(m LinkModel) news.Link {
	return news.ReconstructLink(
		parseUUID(m.ID), parseUUID(m.NewsID),
		entity.Kind(m.EntityKind),
		parseUUID(m.EntityID),
		parseUUID(m.CreatedBy),
		m.CreatedAt,
	)
}

// ToModel converts a domain Link to a LinkModel.
func (LinkMapper) ToModel(l news.Link) LinkModel {
	return LinkModel{
		ID:         l.ID().String(),
		NewsID:     l.NewsID().String(),
		EntityKind: string(l.EntityKind()),
		EntityID:   l.EntityID().String(),
		CreatedBy:  l.CreatedBy().String(),
		CreatedAt:  l.CreatedAt(),
	}
}

// ResearchTaskMapper maps between domain ResearchTask and ResearchTaskModel.
type ResearchTaskMapper struct{}

// ToDomain converts a ResearchTaskModel to a domain ResearchTask.
// Unparseable metadata yields an empty payload rather than an error so a
// single corrupt row cannot break task listings.
func (ResearchTaskMapper) ToDomain(m ResearchTaskModel) news.ResearchTask {
	var metadata news.TaskMetadata
	if m.Metadata != "" {
		_ = json.Unmarshal([]byte(m.Metadata), &metadata)
	}
	return news.ReconstructResearchTask(
		parseUUID(m.ID), parseUUID(m.OrgID),
		m.Title, metadata,
		parseUUID(m.CreatedBy),
		m.CreatedAt, m.UpdatedAt,
	)
}

// ToModel converts a domain ResearchTask to a ResearchTaskModel.
func (ResearchTaskMapper) ToModel(t news.ResearchTask) ResearchTaskModel {
	return ResearchTaskModel{
		ID:        t.ID().String(),
		OrgID:     t.OrgID().String(),
		Title:     t.Title(),
		Metadata:  marshalMetadata(t.Metadata()),
		CreatedBy: t.CreatedBy().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func marshalMetadata(metadata news.TaskMetadata) string {
	data, err := json.Marshal(metadata)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// OutputMapper maps between domain Output and OutputModel.
type OutputMapper struct{}

// ToDomain converts an OutputModel to a domain Output.
func (OutputMapper) ToDomain(m OutputModel) news.Output {
	var candidates []news.Candidate
	if m.Candidates != "" {
		_ = json.Unmarshal([]byte(m.Candidates), &candidates)
	}
	return news.ReconstructOutput(
		parseUUID(m.ID), parseUUID(m.NewsID), parseUUID(m.OrgID),
		m.Summary, m.Sentiment,
		candidates,
		m.Model,
		m.CreatedAt,
	)
}

// ToModel converts a domain Output to an OutputModel.
func (OutputMapper) ToModel(o news.Output) OutputModel {
	candidates := "[]"
	if data, err := json.Marshal(o.Candidates()); err == nil {
		candidates = string(data)
	}
	return OutputModel{
		ID:         o.ID().String(),
		NewsID:     o.NewsID().String(),
		OrgID:      o.OrgID().String(),
		Summary:    o.Summary(),
		Sentiment:  o.Sentiment(),
		Candidates: candidates,
		Model:      o.Model(),
		CreatedAt:  o.CreatedAt(),
	}
}
