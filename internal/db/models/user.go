package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	UserRole   string
	Permission string
)

const (
	UserRoleGuest     UserRole = "guest"
	UserRoleMember    UserRole = "member"
	UserRoleModerator UserRole = "moderator"
	UserRoleLead      UserRole = "lead"
)

// Permissions mirror the actions the guard gates on. Roles carry a
// default permission set but users may hold extra grants.
const (
	PermPolicyReview     Permission = "policy_can_review"
	PermPolicyValidate   Permission = "policy_can_validate"
	PermPolicyInvalidate Permission = "policy_can_invalidate"
	PermPolicyReject     Permission = "policy_can_reject"
	PermPolicyOverride   Permission = "policy_can_override"
	PermPolicyClose      Permission = "policy_can_close"
	PermPolicyDelete     Permission = "policy_can_delete"
	PermPolicyUnhide     Permission = "policy_can_unhide"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) CapitalizedString() string {
	return cases.Title(language.English).String(r.String())
}

type User struct {
	ID               int          `json:"id" pg:",pk"`
	Name             string       `json:"name" pg:",notnull"`
	TelegramID       int64        `json:"telegram_id" pg:",unique"`
	TelegramNickname string       `json:"telegram_nickname" pg:",unique"`
	Role             UserRole     `json:"role" pg:"type:UserRole,notnull,default:'guest'"`
	Permissions      []Permission `json:"permissions" pg:",array"`
	IsSuperuser      bool         `json:"is_superuser" pg:",notnull,default:false,use_zero"`
	IsActive         bool         `json:"is_active" pg:",notnull,default:true,use_zero"`

	// moderation team diversity flags
	IsFemaleModerator  bool `json:"is_female_moderator" pg:",use_zero"`
	IsDiverseModerator bool `json:"is_diverse_moderator" pg:",use_zero"`
}

func (u *User) HasPermission(permission Permission) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (u *User) IsModerator() bool {
	return u.HasPermission(PermPolicyReview) || u.Role == UserRoleModerator
}
