package roles

import (
	"Listline/internal/authentication/permissions"
	"slices"
)

type Role string

const (
	SystemUser Role = "system_user"
	Admin      Role = "admin"
	User       Role = "user"
)

// IsAssignable reports whether the role can be stored on a profile.
func (r Role) IsAssignable() bool {
	return r == Admin || r == User
}

var SystemUserPermissions = []permissions.Permission{
	permissions.SystemUser,
}

var UserPermissions = []permissions.Permission{
	permissions.TemplateView,
	permissions.CampaignView,

	permissions.CustomizationManageOwn,

	permissions.ProfileView,

	permissions.AiUse,
	permissions.RenderUse,
	permissions.UploadUse,
}

var AdminPermissions = slices.Concat(UserPermissions, []permissions.Permission{
	permissions.TemplateManage,
	permissions.CampaignManage,

	permissions.CustomizationViewAny,

	permissions.SettingsManage,
	permissions.UserManage,
	permissions.DashboardView,
})

var AllRoles = map[Role][]permissions.Permission{
	SystemUser: SystemUserPermissions,
	Admin:      AdminPermissions,
	User:       UserPermissions,
}
