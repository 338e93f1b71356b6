package integration

import (
	"Listline/internal/authentication/roles"
	"Listline/internal/commands"
	"Listline/internal/config"
	"Listline/internal/jsonTypes"
	"Listline/internal/mediator"
	"Listline/internal/queries"
	"Listline/internal/settings"
	"Listline/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
)

var _ = Describe("Admin flow", Ordered, func() {
	var h *harness

	BeforeAll(func() {
		h = newIntegrationTestHarness()
	})

	AfterAll(func() {
		h.Close()
	})

	It("should seed the ai settings once", func() {
		Expect(settings.EnsureAiSettings(h.SystemCtx(), config.AiProviderOpenAi)).To(Succeed())
		Expect(settings.EnsureAiSettings(h.SystemCtx(), config.AiProviderAnthropic)).To(Succeed())

		response, err := mediator.Send[*queries.GetSettingResponse](h.AdminCtx(), h.Mediator(), queries.GetSetting{
			Key: jsonTypes.AiSettingsKey,
		})
		Expect(err).ToNot(HaveOccurred())

		var aiSettings jsonTypes.AiSettings
		Expect(response.Value.Decode(&aiSettings)).To(Succeed())
		Expect(aiSettings.Provider).To(Equal("openai"))
	})

	It("should merge a patch into the ai settings", func() {
		response, err := mediator.Send[*commands.PatchSettingResponse](h.AdminCtx(), h.Mediator(), commands.PatchSetting{
			Key:   jsonTypes.AiSettingsKey,
			Patch: jsonTypes.JsonDocument(`{"systemPrompt":"Keep it short"}`),
		})
		Expect(err).ToNot(HaveOccurred())

		var aiSettings jsonTypes.AiSettings
		Expect(response.Value.Decode(&aiSettings)).To(Succeed())
		Expect(aiSettings).To(Equal(jsonTypes.AiSettings{
			Provider:     "openai",
			SystemPrompt: "Keep it short",
		}))
	})

	It("should upsert other settings", func() {
		_, err := mediator.Send[*commands.UpsertSettingResponse](h.AdminCtx(), h.Mediator(), commands.UpsertSetting{
			Key:   "branding",
			Value: jsonTypes.JsonDocument(`{"color":"#000000"}`),
		})
		Expect(err).ToNot(HaveOccurred())

		response, err := mediator.Send[*queries.GetSettingResponse](h.AdminCtx(), h.Mediator(), queries.GetSetting{
			Key: "branding",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(string(response.Value)).To(MatchJSON(`{"color":"#000000"}`))
	})

	It("should keep settings away from regular users", func() {
		_, err := mediator.Send[*commands.UpsertSettingResponse](h.UserCtx(), h.Mediator(), commands.UpsertSetting{
			Key:   "branding",
			Value: jsonTypes.JsonDocument(`{}`),
		})
		Expect(err).To(MatchError(utils.ErrHttpForbidden))
	})

	It("should list users by role", func() {
		response, err := mediator.Send[*queries.ListUsersResponse](h.AdminCtx(), h.Mediator(), queries.ListUsers{
			Role: utils.Ptr(roles.User),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.TotalCount).To(Equal(2))
		Expect(response.Items).To(HaveEach(gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
			"Role": Equal(roles.User),
		})))
	})

	It("should promote a user to admin", func() {
		profile, err := mediator.Send[*queries.GetProfileResponse](h.OtherCtx(), h.Mediator(), queries.GetProfile{})
		Expect(err).ToNot(HaveOccurred())

		response, err := mediator.Send[*commands.UpdateUserRoleResponse](h.AdminCtx(), h.Mediator(), commands.UpdateUserRole{
			UserId: profile.Id,
			Role:   roles.Admin,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Role).To(Equal(roles.Admin))

		stats, err := mediator.Send[*queries.GetAdminStatsResponse](h.AdminCtx(), h.Mediator(), queries.GetAdminStats{})
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.Users).To(Equal(3))
	})
})
