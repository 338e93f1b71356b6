package repositories

import (
	"Listline/internal/authentication/roles"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Profile struct {
	ModelBase

	email    string
	fullName *string
	role     roles.Role
}

// NewProfile creates a profile whose id is the identity provider subject.
func NewProfile(id uuid.UUID, email string, fullName *string, role roles.Role) *Profile {
	profile := &Profile{
		ModelBase: NewModelBase(),
		email:     email,
		fullName:  fullName,
		role:      role,
	}
	profile.id = id
	return profile
}

func (p *Profile) GetScanPointers() []any {
	return []any{
		&p.id,
		&p.auditCreatedAt,
		&p.auditUpdatedAt,
		&p.version,
		&p.email,
		&p.fullName,
		&p.role,
	}
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) SetEmail(email string) {
	p.TrackChange("email", email)
	p.email = email
}

func (p *Profile) FullName() *string {
	return p.fullName
}

func (p *Profile) SetFullName(fullName *string) {
	p.TrackChange("full_name", fullName)
	p.fullName = fullName
}

func (p *Profile) Role() roles.Role {
	return p.role
}

func (p *Profile) SetRole(role roles.Role) {
	p.TrackChange("role", role)
	p.role = role
}

type ProfileFilter struct {
	PagingInfo
	OrderInfo
	id    *uuid.UUID
	email *string
	role  *roles.Role
}

func NewProfileFilter() ProfileFilter {
	return ProfileFilter{}
}

func (f ProfileFilter) Clone() ProfileFilter {
	return f
}

func (f ProfileFilter) Id(id uuid.UUID) ProfileFilter {
	filter := f.Clone()
	filter.id = &id
	return filter
}

func (f ProfileFilter) HasId() bool {
	return f.id != nil
}

func (f ProfileFilter) GetId() uuid.UUID {
	return utils.ZeroIfNil(f.id)
}

func (f ProfileFilter) Email(email string) ProfileFilter {
	filter := f.Clone()
	filter.email = &email
	return filter
}

func (f ProfileFilter) HasEmail() bool {
	return f.email != nil
}

func (f ProfileFilter) GetEmail() string {
	return utils.ZeroIfNil(f.email)
}

func (f ProfileFilter) Role(role roles.Role) ProfileFilter {
	filter := f.Clone()
	filter.role = &role
	return filter
}

func (f ProfileFilter) HasRole() bool {
	return f.role != nil
}

func (f ProfileFilter) GetRole() roles.Role {
	return utils.ZeroIfNil(f.role)
}

func (f ProfileFilter) Pagination(page int, size int) ProfileFilter {
	filter := f.Clone()
	filter.PagingInfo = PagingInfo{
		page: page,
		size: size,
	}
	return filter
}

func (f ProfileFilter) HasPagination() bool {
	return !f.PagingInfo.IsZero()
}

func (f ProfileFilter) GetPagingInfo() PagingInfo {
	return f.PagingInfo
}

func (f ProfileFilter) Order(by string, direction string) ProfileFilter {
	filter := f.Clone()
	filter.OrderInfo = OrderInfo{
		orderBy:  by,
		orderDir: direction,
	}
	return filter
}

func (f ProfileFilter) HasOrder() bool {
	return !f.OrderInfo.IsZero()
}

func (f ProfileFilter) GetOrderInfo() OrderInfo {
	return f.OrderInfo
}

//go:generate mockgen -destination=./mocks/profile_repository.go -package=mocks Listline/internal/repositories ProfileRepository
// ErrProfileExists is returned by Insert when a profile with the same id or email is already stored.
var ErrProfileExists = fmt.Errorf("profile already exists: %w", utils.ErrHttpConflict)

type ProfileRepository interface {
	List(ctx context.Context, filter ProfileFilter) ([]*Profile, int, error)
	Single(ctx context.Context, filter ProfileFilter) (*Profile, error)
	First(ctx context.Context, filter ProfileFilter) (*Profile, error)
	Insert(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}
