package httpserver

import (
	"time"

	"estate_web/internal/domain"
	"estate_web/internal/locale"
	"estate_web/internal/staticdata"
)

// Views project domain records onto a single locale for the front end.

type listingView struct {
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	CategoryLabel string     `json:"categoryLabel"`
	Location      string     `json:"location"`
	PriceCZK      int64      `json:"priceCZK"`
	Beds          int        `json:"beds"`
	Baths         int        `json:"baths"`
	AreaM2        int        `json:"areaM2,omitempty"`
	PostalCode    string     `json:"postalCode"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"statusLabel"`
	Features      []string   `json:"features,omitempty"`
	Images        []string   `json:"images,omitempty"`
	Agent         *agentView `json:"agent,omitempty"`
}

type agentView struct {
	Slug      string      `json:"slug"`
	Name      string      `json:"name"`
	Role      string      `json:"role"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Photo     string      `json:"photo,omitempty"`
	Languages []string    `json:"languages,omitempty"`
	Office    *officeView `json:"office,omitempty"`
}

type officeView struct {
	Slug    string      `json:"slug"`
	Name    string      `json:"name"`
	City    string      `json:"city"`
	Address string      `json:"address"`
	Phone   string      `json:"phone"`
	Email   string      `json:"email"`
	Agents  []agentView `json:"agents,omitempty"`
}

type articleView struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body,omitempty"`
	Author      *agentView `json:"author,omitempty"`
	PublishedAt time.Time  `json:"publishedAt"`
	Tags        []string   `json:"tags,omitempty"`
}

type viewer struct {
	l  locale.Locale
	tr *locale.Translator
}

func (v viewer) listing(l domain.Listing, withAgent bool) listingView {
	lang := string(v.l)
	out := listingView{
		Slug:          l.Slug,
		Title:         l.Title.In(lang),
		Description:   l.Description.In(lang),
		Category:      string(l.Category),
		CategoryLabel: v.tr.T(v.l, "category_"+string(l.Category)),
		Location:      l.LocationValue,
		PriceCZK:      l.PriceCZK,
		Beds:          l.Beds,
		Baths:         l.Baths,
		AreaM2:        l.AreaM2,
		PostalCode:    l.PostalCode,
		Status:        string(l.Status),
		StatusLabel:   v.tr.T(v.l, "status_"+string(l.Status)),
		Features:      l.Features,
		Images:        l.Images,
	}
	if withAgent && l.AgentSlug != "" {
		if a, ok := staticdata.Agent(l.AgentSlug); ok {
			av := v.agent(a, true)
			out.Agent = &av
		}
	}
	return out
}

func (v viewer) listings(ls []domain.Listing) []listingView {
	out := make([]listingView, 0, len(ls))
	for _, l := range ls {
		out = append(out, v.listing(l, false))
	}
	return out
}

func (v viewer) agent(a domain.Agent, withOffice bool) agentView {
	out := agentView{
		Slug:      a.Slug,
		Name:      a.Name,
		Role:      a.Role.In(string(v.l)),
		Email:     a.Email,
		Phone:     a.Phone,
		Photo:     a.Photo,
		Languages: a.Languages,
	}
	if withOffice {
		if o, ok := staticdata.Office(a.OfficeSlug); ok {
			ov := office(o)
			out.Office = &ov
		}
	}
	return out
}

func office(o domain.Office) officeView {
	return officeView{Slug: o.Slug, Name: o.Name, City: o.City, Address: o.Address, Phone: o.Phone, Email: o.Email}
}

func (v viewer) article(a domain.Article, full bool) articleView {
	lang := string(v.l)
	out := articleView{
		Slug:        a.Slug,
		Title:       a.Title.In(lang),
		Excerpt:     a.Excerpt.In(lang),
		PublishedAt: a.PublishedAt,
		Tags:        a.Tags,
	}
	if full {
		out.Body = a.Body.In(lang)
		if ag, ok := staticdata.Agent(a.Author); ok {
			av := v.agent(ag, false)
			out.Author = &av
		}
	}
	return out
}
