package staticdata

import (
	"slices"
	"time"

	"estate_web/internal/domain"
)

var agents = []domain.Agent{
	{
		Slug:       "jana-novakova",
		Name:       "Jana Nováková",
		Role:       domain.Text{En: "Senior broker", Cs: "Senior makléřka"},
		Email:      "jana.novakova@example.cz",
		Phone:      "+420 601 111 222",
		OfficeSlug: "brno",
		Photo:      "/static/agents/jana-novakova.jpg",
		Languages:  []string{"cs", "en", "de"},
	},
	{
		Slug:       "petr-svoboda",
		Name:       "Petr Svoboda",
		Role:       domain.Text{En: "Luxury property specialist", Cs: "Specialista na luxusní nemovitosti"},
		Email:      "petr.svoboda@example.cz",
		Phone:      "+420 602 333 444",
		OfficeSlug: "praha",
		Photo:      "/static/agents/petr-svoboda.jpg",
		Languages:  []string{"cs", "en"},
	},
	{
		Slug:       "tomas-dvorak",
		Name:       "Tomáš Dvořák",
		Role:       domain.Text{En: "Rentals and land", Cs: "Pronájmy a pozemky"},
		Email:      "tomas.dvorak@example.cz",
		Phone:      "+420 603 555 666",
		OfficeSlug: "praha",
		Photo:      "/static/agents/tomas-dvorak.jpg",
		Languages:  []string{"cs", "en", "sk"},
	},
}

var offices = []domain.Office{
	{Slug: "praha", Name: "Praha – Vinohrady", City: "Praha", Address: "Vinohradská 12, 120 00 Praha 2", Phone: "+420 222 000 111", Email: "praha@example.cz"},
	{Slug: "brno", Name: "Brno – Centrum", City: "Brno", Address: "Masarykova 5, 602 00 Brno", Phone: "+420 542 000 222", Email: "brno@example.cz"},
}

var articles = []domain.Article{
	{
		Slug:        "mortgage-rates-2025",
		Title:       domain.Text{En: "Where mortgage rates are heading", Cs: "Kam míří úrokové sazby hypoték"},
		Excerpt:     domain.Text{En: "What the latest central bank decisions mean for buyers.", Cs: "Co poslední rozhodnutí ČNB znamenají pro kupující."},
		Body:        domain.Text{En: "Rates have eased from their peak...", Cs: "Sazby klesly ze svého maxima..."},
		Author:      "petr-svoboda",
		PublishedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"mortgage", "market"},
	},
	{
		Slug:        "preparing-home-for-sale",
		Title:       domain.Text{En: "Preparing your home for sale", Cs: "Jak připravit nemovitost na prodej"},
		Excerpt:     domain.Text{En: "Small fixes that raise the final price.", Cs: "Drobné úpravy, které zvýší výslednou cenu."},
		Body:        domain.Text{En: "Start with decluttering...", Cs: "Začněte úklidem..."},
		Author:      "jana-novakova",
		PublishedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"selling", "tips"},
	},
	{
		Slug:        "renting-in-prague",
		Title:       domain.Text{En: "A renter's guide to Prague", Cs: "Průvodce nájemním bydlením v Praze"},
		Excerpt:     domain.Text{En: "Deposits, contracts and neighbourhoods.", Cs: "Kauce, smlouvy a čtvrti."},
		Body:        domain.Text{En: "Most leases run for one year...", Cs: "Většina nájemních smluv se uzavírá na rok..."},
		Author:      "tomas-dvorak",
		PublishedAt: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"renting", "praha"},
	},
}

func Agents() []domain.Agent {
	out := make([]domain.Agent, len(agents))
	for i, a := range agents {
		a.Languages = slices.Clone(a.Languages)
		out[i] = a
	}
	return out
}

func Agent(slug string) (domain.Agent, bool) {
	for _, a := range agents {
		if a.Slug == slug {
			a.Languages = slices.Clone(a.Languages)
			return a, true
		}
	}
	return domain.Agent{}, false
}

func Offices() []domain.Office { return slices.Clone(offices) }

func Office(slug string) (domain.Office, bool) {
	for _, o := range offices {
		if o.Slug == slug {
			return o, true
		}
	}
	return domain.Office{}, false
}

// Articles are kept newest first.
func Articles() []domain.Article {
	out := make([]domain.Article, len(articles))
	for i, a := range articles {
		a.Tags = slices.Clone(a.Tags)
		out[i] = a
	}
	return out
}

func Article(slug string) (domain.Article, bool) {
	for _, a := range articles {
		if a.Slug == slug {
			a.Tags = slices.Clone(a.Tags)
			return a, true
		}
	}
	return domain.Article{}, false
}
