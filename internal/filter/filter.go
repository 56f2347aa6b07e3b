// Package filter is the in-memory criteria engine shared by every listing
// endpoint. Repositories yield rows in storage order; this package narrows
// them without re-sorting, so callers see the store's natural order.
package filter

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"marketplace-admin-api/internal/domain/admin"
	"marketplace-admin-api/internal/domain/auction"
	"marketplace-admin-api/internal/domain/order"
	"marketplace-admin-api/internal/domain/product"
	"marketplace-admin-api/internal/domain/user"
)

// kmPerDegree is a flat-earth approximation, usable only at city scale.
const kmPerDegree = 111.0

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldString(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matchQuery reports whether q is a case-insensitive, diacritic-folded
// substring of at least one of the fields (OR semantics).
func matchQuery(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	needle := foldString(q)
	for _, f := range fields {
		if strings.Contains(foldString(f), needle) {
			return true
		}
	}
	return false
}

func matchExact(want, have string) bool {
	return want == "" || want == have
}

func matchBool(want *bool, have bool) bool {
	return want == nil || *want == have
}

// matchRange applies an inclusive bound for whichever of min/max is present.
func matchRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func matchDate(ts time.Time, after, before *time.Time) bool {
	if after != nil && ts.Before(*after) {
		return false
	}
	if before != nil && ts.After(*before) {
		return false
	}
	return true
}

// GeoCircle is an approximate radius filter around a coordinate pair.
type GeoCircle struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
}

func (g *GeoCircle) contains(lat, lng float64) bool {
	dLat := (lat - g.Lat) * kmPerDegree
	dLng := (lng - g.Lng) * kmPerDegree
	return dLat*dLat+dLng*dLng <= g.RadiusKm*g.RadiusKm
}

type UserCriteria struct {
	Query         string // matches full name OR email
	Role          string
	IsBanned      *bool
	IsDeleted     *bool
	IsSeller      *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func Users(us user.Users, c UserCriteria) user.Users {
	out := make(user.Users, 0, len(us))
	for _, u := range us {
		if !matchQuery(c.Query, u.FullName, u.Email) {
			continue
		}
		if !matchExact(c.Role, u.Role) {
			continue
		}
		if !matchBool(c.IsBanned, u.IsBanned) || !matchBool(c.IsDeleted, u.IsDeleted) || !matchBool(c.IsSeller, u.IsSeller) {
			continue
		}
		if !matchDate(u.CreatedAt, c.CreatedAfter, c.CreatedBefore) {
			continue
		}
		out = append(out, u)
	}
	return out
}

type AdminCriteria struct {
	Query         string
	IsBanned      *bool
	IsDeleted     *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func Admins(as admin.Admins, c AdminCriteria) admin.Admins {
	out := make(admin.Admins, 0, len(as))
	for _, a := range as {
		if !matchQuery(c.Query, a.FullName, a.Email) {
			continue
		}
		if !matchBool(c.IsBanned, a.IsBanned) || !matchBool(c.IsDeleted, a.IsDeleted) {
			continue
		}
		if !matchDate(a.CreatedAt, c.CreatedAfter, c.CreatedBefore) {
			continue
		}
		out = append(out, a)
	}
	return out
}

type ProductCriteria struct {
	Query            string // matches name OR description
	CategoryID       string
	DeliveryType     string
	MinPrice         *float64
	MaxPrice         *float64
	MinQuantity      *float64
	MaxQuantity      *float64
	MinRating        *float64
	MaxRating        *float64
	MinDeliveryPrice *float64
	MaxDeliveryPrice *float64
	Near             *GeoCircle
	IsDeleted        *bool
}

func Products(ps product.Products, c ProductCriteria) product.Products {
	out := make(product.Products, 0, len(ps))
	for _, p := range ps {
		if !matchQuery(c.Query, p.Name, p.Description) {
			continue
		}
		if c.CategoryID != "" && (p.CategoryID == nil || p.CategoryID.String() != c.CategoryID) {
			continue
		}
		if !matchExact(c.DeliveryType, p.DeliveryType) {
			continue
		}
		if !matchRange(p.Price, c.MinPrice, c.MaxPrice) ||
			!matchRange(float64(p.Quantity), c.MinQuantity, c.MaxQuantity) ||
			!matchRange(p.Rating, c.MinRating, c.MaxRating) ||
			!matchRange(p.DeliveryPrice, c.MinDeliveryPrice, c.MaxDeliveryPrice) {
			continue
		}
		if c.Near != nil && !c.Near.contains(p.Lat, p.Lng) {
			continue
		}
		if !matchBool(c.IsDeleted, p.IsDeleted) {
			continue
		}
		out = append(out, p)
	}
	return out
}

type AuctionCriteria struct {
	Query      string // matches title OR description
	Status     string
	MinPrice   *float64
	MaxPrice   *float64
	EndsAfter  *time.Time
	EndsBefore *time.Time
}

func Auctions(as auction.Auctions, c AuctionCriteria) auction.Auctions {
	out := make(auction.Auctions, 0, len(as))
	for _, a := range as {
		if !matchQuery(c.Query, a.Title, a.Description) {
			continue
		}
		if !matchExact(c.Status, a.Status) {
			continue
		}
		if !matchRange(a.StartingPrice, c.MinPrice, c.MaxPrice) {
			continue
		}
		if !matchDate(a.EndsAt, c.EndsAfter, c.EndsBefore) {
			continue
		}
		out = append(out, a)
	}
	return out
}

type OrderCriteria struct {
	PaymentStatus string
	DeliveryType  string
	MinTotal      *float64
	MaxTotal      *float64
	From          *time.Time
	To            *time.Time
}

func Orders(os order.Orders, c OrderCriteria) order.Orders {
	out := make(order.Orders, 0, len(os))
	for _, o := range os {
		if !matchExact(c.PaymentStatus, o.PaymentStatus) {
			continue
		}
		if !matchExact(c.DeliveryType, o.DeliveryType) {
			continue
		}
		if !matchRange(o.TotalPrice, c.MinTotal, c.MaxTotal) {
			continue
		}
		if !matchDate(o.CreatedAt, c.From, c.To) {
			continue
		}
		out = append(out, o)
	}
	return out
}
