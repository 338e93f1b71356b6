package permissions

type Permission string

const (
	SystemUser Permission = "system_user"

	TemplateView   Permission = "template:view"
	TemplateManage Permission = "template:manage"

	CampaignView   Permission = "campaign:view"
	CampaignManage Permission = "campaign:manage"

	CustomizationManageOwn Permission = "customization:manage_own"
	CustomizationViewAny   Permission = "customization:view_any"

	SettingsManage Permission = "settings:manage"

	UserManage Permission = "user:manage"

	DashboardView Permission = "dashboard:view"

	ProfileView Permission = "profile:view"

	AiUse     Permission = "ai:use"
	RenderUse Permission = "render:use"
	UploadUse Permission = "upload:use"
)
