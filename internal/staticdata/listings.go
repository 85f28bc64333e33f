// Package staticdata holds the bundled, read-only site dataset used when no
// remote listings backend is configured or reachable.
package staticdata

import "estate_web/internal/domain"

var listings = []domain.Listing{
	{
		Slug:          "family-villa-brno-zabovresky",
		Title:         domain.Text{En: "Family villa with garden in Žabovřesky", Cs: "Rodinná vila se zahradou v Žabovřeskách"},
		Description:   domain.Text{En: "Detached villa on a quiet street, renovated 2021, south-facing garden.", Cs: "Samostatně stojící vila v klidné ulici, rekonstrukce 2021, jižní zahrada."},
		Category:      domain.CategoryHomesSale,
		LocationValue: "brno",
		PriceCZK:      14_900_000,
		Beds:          5,
		Baths:         3,
		AreaM2:        240,
		PostalCode:    "61600",
		Status:        domain.StatusFeatured,
		Features:      []string{"garden", "garage", "fireplace"},
		Images:        []string{"/static/listings/brno-villa-1.jpg", "/static/listings/brno-villa-2.jpg"},
		AgentSlug:     "jana-novakova",
	},
	{
		Slug:          "penthouse-prague-vinohrady",
		Title:         domain.Text{En: "Penthouse with terrace in Vinohrady", Cs: "Penthouse s terasou na Vinohradech"},
		Description:   domain.Text{En: "Top-floor 4+kk with a 60 m² terrace and city views.", Cs: "Byt 4+kk v posledním patře s terasou 60 m² a výhledem na město."},
		Category:      domain.CategoryApartmentsSale,
		LocationValue: "praha",
		PriceCZK:      22_500_000,
		Beds:          3,
		Baths:         2,
		AreaM2:        145,
		PostalCode:    "12000",
		Status:        domain.StatusFeatured,
		Features:      []string{"terrace", "elevator", "air-conditioning"},
		Images:        []string{"/static/listings/vinohrady-penthouse-1.jpg"},
		AgentSlug:     "petr-svoboda",
	},
	{
		Slug:          "studio-rent-prague-karlin",
		Title:         domain.Text{En: "Furnished studio in Karlín", Cs: "Zařízený ateliér v Karlíně"},
		Description:   domain.Text{En: "Modern 1+kk in a new building, close to the metro.", Cs: "Moderní 1+kk v novostavbě, blízko metra."},
		Category:      domain.CategoryApartmentsRent,
		LocationValue: "praha",
		PriceCZK:      19_500,
		Beds:          1,
		Baths:         1,
		AreaM2:        34,
		PostalCode:    "18600",
		Status:        domain.StatusActive,
		Features:      []string{"furnished", "elevator"},
		Images:        []string{"/static/listings/karlin-studio-1.jpg"},
		AgentSlug:     "petr-svoboda",
	},
	{
		Slug:          "cottage-krkonose",
		Title:         domain.Text{En: "Mountain cottage in the Krkonoše", Cs: "Horská chalupa v Krkonoších"},
		Description:   domain.Text{En: "Traditional timber cottage near the ski slopes.", Cs: "Tradiční roubená chalupa nedaleko sjezdovek."},
		Category:      domain.CategoryHomesSale,
		LocationValue: "krkonose",
		PriceCZK:      6_200_000,
		Beds:          4,
		Baths:         1,
		AreaM2:        130,
		PostalCode:    "54351",
		Status:        domain.StatusActive,
		Features:      []string{"garden", "fireplace", "sauna"},
		Images:        []string{"/static/listings/krkonose-cottage-1.jpg"},
		AgentSlug:     "jana-novakova",
	},
	{
		Slug:          "family-house-rent-olomouc",
		Title:         domain.Text{En: "Family house for rent in Olomouc", Cs: "Rodinný dům k pronájmu v Olomouci"},
		Description:   domain.Text{En: "Semi-detached house with a small garden, available immediately.", Cs: "Řadový dům s malou zahradou, k dispozici ihned."},
		Category:      domain.CategoryHomesRent,
		LocationValue: "olomouc",
		PriceCZK:      32_000,
		Beds:          3,
		Baths:         2,
		AreaM2:        120,
		PostalCode:    "77900",
		Status:        domain.StatusActive,
		Features:      []string{"garden", "parking"},
		Images:        []string{"/static/listings/olomouc-house-1.jpg"},
		AgentSlug:     "tomas-dvorak",
	},
	{
		Slug:          "building-plot-cernosice",
		Title:         domain.Text{En: "Building plot in Černošice", Cs: "Stavební pozemek v Černošicích"},
		Description:   domain.Text{En: "1,100 m² plot with utilities at the boundary.", Cs: "Pozemek 1 100 m² se sítěmi na hranici."},
		Category:      domain.CategoryLand,
		LocationValue: "praha-zapad",
		PriceCZK:      7_800_000,
		Beds:          0,
		Baths:         0,
		AreaM2:        1100,
		PostalCode:    "25228",
		Status:        domain.StatusFeatured,
		Features:      []string{"utilities"},
		Images:        []string{"/static/listings/cernosice-plot-1.jpg"},
		AgentSlug:     "tomas-dvorak",
	},
	{
		Slug:          "office-space-brno-centre",
		Title:         domain.Text{En: "Office space in Brno city centre", Cs: "Kancelářské prostory v centru Brna"},
		Description:   domain.Text{En: "Open-plan office floor with meeting rooms.", Cs: "Otevřené kancelářské patro se zasedačkami."},
		Category:      domain.CategoryCommercial,
		LocationValue: "brno",
		PriceCZK:      11_000_000,
		Beds:          0,
		Baths:         2,
		AreaM2:        310,
		PostalCode:    "60200",
		Status:        domain.StatusReserved,
		Features:      []string{"elevator", "air-conditioning", "parking"},
		Images:        []string{"/static/listings/brno-office-1.jpg"},
		AgentSlug:     "jana-novakova",
	},
	{
		Slug:          "apartment-sale-ostrava-poruba",
		Title:         domain.Text{En: "Three-room apartment in Poruba", Cs: "Byt 3+1 v Porubě"},
		Description:   domain.Text{En: "Renovated brick apartment with a balcony.", Cs: "Zrekonstruovaný cihlový byt s balkonem."},
		Category:      domain.CategoryApartmentsSale,
		LocationValue: "ostrava",
		PriceCZK:      3_950_000,
		Beds:          2,
		Baths:         1,
		AreaM2:        72,
		PostalCode:    "70800",
		Status:        domain.StatusActive,
		Features:      []string{"balcony", "cellar"},
		Images:        []string{"/static/listings/poruba-apartment-1.jpg"},
		AgentSlug:     "tomas-dvorak",
	},
	{
		Slug:          "riverside-villa-prague-troja",
		Title:         domain.Text{En: "Riverside villa in Troja", Cs: "Vila u řeky v Troji"},
		Description:   domain.Text{En: "Architect-designed villa with pool and direct river access.", Cs: "Architektonická vila s bazénem a přímým přístupem k řece."},
		Category:      domain.CategoryHomesSale,
		LocationValue: "praha",
		PriceCZK:      48_000_000,
		Beds:          6,
		Baths:         4,
		AreaM2:        410,
		PostalCode:    "17100",
		Status:        domain.StatusFeatured,
		Features:      []string{"pool", "garden", "garage", "air-conditioning"},
		Images:        []string{"/static/listings/troja-villa-1.jpg", "/static/listings/troja-villa-2.jpg"},
		AgentSlug:     "petr-svoboda",
	},
	{
		Slug:          "loft-sold-prague-holesovice",
		Title:         domain.Text{En: "Industrial loft in Holešovice", Cs: "Industriální loft v Holešovicích"},
		Description:   domain.Text{En: "Converted factory loft with high ceilings.", Cs: "Loft v přestavěné továrně s vysokými stropy."},
		Category:      domain.CategoryApartmentsSale,
		LocationValue: "praha",
		PriceCZK:      12_400_000,
		Beds:          2,
		Baths:         1,
		AreaM2:        98,
		PostalCode:    "17000",
		Status:        domain.StatusSold,
		Features:      []string{"elevator"},
		Images:        []string{"/static/listings/holesovice-loft-1.jpg"},
		AgentSlug:     "petr-svoboda",
	},
}

// Listings returns the dataset entries matching f, in dataset order.
func Listings(f domain.ListingFilters) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) {
			out = append(out, l.Clone())
		}
	}
	return out
}

// Listing returns the first entry whose slug equals slug.
func Listing(slug string) (domain.Listing, bool) {
	for _, l := range listings {
		if l.Slug == slug {
			return l.Clone(), true
		}
	}
	return domain.Listing{}, false
}

// Featured returns featured entries in dataset order, truncated to limit when limit > 0.
func Featured(limit int) []domain.Listing {
	out := Listings(domain.ListingFilters{Featured: true})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
