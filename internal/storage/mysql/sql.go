package mysql

const listingColumns = `
  slug, category, location_value, price_czk, beds, baths, area_m2, postal_code, status,
  features, images, agent_slug, title_en, title_cs, description_en, description_cs`

const upsertListingSQL = `
INSERT INTO listings
  (slug, position, category, location_value, price_czk, beds, baths, area_m2, postal_code, status,
   features, images, agent_slug, title_en, title_cs, description_en, description_cs)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position       = VALUES(position),
  category       = VALUES(category),
  location_value = VALUES(location_value),
  price_czk      = VALUES(price_czk),
  beds           = VALUES(beds),
  baths          = VALUES(baths),
  area_m2        = VALUES(area_m2),
  postal_code    = VALUES(postal_code),
  status         = VALUES(status),
  features       = VALUES(features),
  images         = VALUES(images),
  agent_slug     = VALUES(agent_slug),
  title_en       = VALUES(title_en),
  title_cs       = VALUES(title_cs),
  description_en = VALUES(description_en),
  description_cs = VALUES(description_cs)
`

const getListingSQL = `SELECT` + listingColumns + `
FROM listings
WHERE slug = ?
ORDER BY position
LIMIT 1
`

const insertEnquirySQL = `
INSERT INTO enquiries
  (id, kind, name, email, phone, message, listing_slug, locale, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const recentEnquiriesSQL = `
SELECT id, kind, name, email, phone, message, listing_slug, locale, created_at
FROM enquiries
ORDER BY created_at DESC, id DESC
LIMIT ?
`
