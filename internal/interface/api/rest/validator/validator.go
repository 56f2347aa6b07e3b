package validator

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	adminDTO "marketplace-admin-api/internal/interface/api/rest/dto/admin"
	auctionDTO "marketplace-admin-api/internal/interface/api/rest/dto/auction"
	"marketplace-admin-api/internal/interface/api/rest/dto/auth"
	categoryDTO "marketplace-admin-api/internal/interface/api/rest/dto/category"
	productDTO "marketplace-admin-api/internal/interface/api/rest/dto/product"
	userDTO "marketplace-admin-api/internal/interface/api/rest/dto/user"

	"marketplace-admin-api/internal/domain/auction"
	"marketplace-admin-api/internal/domain/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ValidatePage parses a 1-indexed page number, defaulting to the first page.
func ValidatePage(page string) int {
	if page == "" {
		return 1
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 1
	}
	return p
}

func ValidateLimit(limit string) int {
	if limit == "" {
		return defaultPageLimit
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 {
		return defaultPageLimit
	}
	if l > maxPageLimit {
		return maxPageLimit
	}
	return l
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func checkEmail(errs map[string]string, email string) {
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}
}

func checkFullName(errs map[string]string, name string) {
	if name == "" {
		errs["full_name"] = "full_name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["full_name"] = "full_name length must be 2-64 characters"
	} else if !isHumanName(name) {
		errs["full_name"] = "allowed characters: letters, space, '-', '''"
	}
}

func checkPassword(errs map[string]string, password string) {
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	checkEmail(errs, strings.ToLower(strings.TrimSpace(r.Email)))
	checkPassword(errs, r.Password)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUser(r userDTO.Request) map[string]string {
	errs := make(map[string]string)

	checkEmail(errs, strings.ToLower(strings.TrimSpace(r.Email)))
	checkFullName(errs, strings.TrimSpace(r.FullName))

	switch r.Role {
	case user.RoleCustomer:
	case user.RoleMerchant:
		if strings.TrimSpace(r.TinNumber) == "" {
			errs["tin_number"] = "tin_number is required for merchants"
		}
		if strings.TrimSpace(r.NationalID) == "" {
			errs["national_id"] = "national_id is required for merchants"
		}
	default:
		errs["role"] = "role must be customer or merchant"
	}

	if r.Password != "" {
		checkPassword(errs, r.Password)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateAdmin(r adminDTO.Request, requirePassword bool) map[string]string {
	errs := make(map[string]string)

	checkEmail(errs, strings.ToLower(strings.TrimSpace(r.Email)))
	checkFullName(errs, strings.TrimSpace(r.FullName))
	if requirePassword || r.Password != "" {
		checkPassword(errs, r.Password)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateProduct(r productDTO.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if r.Price < 0 {
		errs["price"] = "price must not be negative"
	}
	if r.Quantity < 0 {
		errs["quantity"] = "quantity must not be negative"
	}
	if r.Rating < 0 || r.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	if r.DeliveryPrice < 0 {
		errs["delivery_price"] = "delivery_price must not be negative"
	}
	if r.Lat < -90 || r.Lat > 90 {
		errs["lat"] = "lat must be between -90 and 90"
	}
	if r.Lng < -180 || r.Lng > 180 {
		errs["lng"] = "lng must be between -180 and 180"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateCategory(r categoryDTO.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateAuction(r auctionDTO.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "title is required"
	}
	if r.StartingPrice < 0 {
		errs["starting_price"] = "starting_price must not be negative"
	}
	switch r.Status {
	case "", auction.StatusScheduled, auction.StatusLive, auction.StatusClosed:
	default:
		errs["status"] = "status must be scheduled, live or closed"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
