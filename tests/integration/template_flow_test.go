package integration

import (
	"Listline/internal/commands"
	"Listline/internal/mediator"
	"Listline/internal/queries"
	"Listline/internal/repositories"
	"Listline/utils"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
)

var _ = Describe("Template flow", Ordered, func() {
	var h *harness

	var campaignId uuid.UUID
	var templateId uuid.UUID
	var hiddenTemplateId uuid.UUID

	BeforeAll(func() {
		h = newIntegrationTestHarness()
	})

	AfterAll(func() {
		h.Close()
	})

	It("should create a campaign", func() {
		response, err := mediator.Send[*commands.CreateCampaignResponse](h.AdminCtx(), h.Mediator(), commands.CreateCampaign{
			Name:  "Spring listings",
			Color: "#3b82f6",
		})
		Expect(err).ToNot(HaveOccurred())
		campaignId = response.Id
	})

	It("should create a template with fields", func() {
		response, err := mediator.Send[*commands.CreateTemplateResponse](h.AdminCtx(), h.Mediator(), commands.CreateTemplate{
			Name:        "Open house flyer",
			Description: utils.Ptr("Single page flyer"),
			HtmlContent: "<h1>{{address}}</h1><p>{{price}}</p>",
			IsActive:    true,
			CampaignId:  &campaignId,
			TemplateFields: []commands.TemplateFieldInput{
				{FieldKey: "address", Label: "Address", FieldType: repositories.TemplateFieldTypeText, IsRequired: true},
				{FieldKey: "price", Label: "Price", FieldType: repositories.TemplateFieldTypeNumber},
			},
		})
		Expect(err).ToNot(HaveOccurred())
		templateId = response.Id
	})

	It("should reject a template from a regular user", func() {
		_, err := mediator.Send[*commands.CreateTemplateResponse](h.UserCtx(), h.Mediator(), commands.CreateTemplate{
			Name:        "Sneaky",
			HtmlContent: "<p>x</p>",
			IsActive:    true,
		})
		Expect(err).To(MatchError(utils.ErrHttpForbidden))
	})

	It("should get the template with ordered fields", func() {
		response, err := mediator.Send[*queries.GetTemplateResponse](h.UserCtx(), h.Mediator(), queries.GetTemplate{
			TemplateId: templateId,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Name).To(Equal("Open house flyer"))
		Expect(response.CampaignId).To(Equal(&campaignId))
		Expect(response.Fields).To(HaveExactElements(
			gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
				"FieldKey":  Equal("address"),
				"SortOrder": Equal(0),
			}),
			gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
				"FieldKey":  Equal("price"),
				"SortOrder": Equal(1),
			}),
		))
	})

	It("should replace the fields on update", func() {
		_, err := mediator.Send[*commands.UpdateTemplateResponse](h.AdminCtx(), h.Mediator(), commands.UpdateTemplate{
			TemplateId:  templateId,
			Name:        "Open house flyer v2",
			HtmlContent: "<h1>{{address}}</h1>",
			IsActive:    true,
			CampaignId:  &campaignId,
			TemplateFields: &[]commands.TemplateFieldInput{
				{FieldKey: "address", Label: "Address", FieldType: repositories.TemplateFieldTypeText, IsRequired: true},
			},
		})
		Expect(err).ToNot(HaveOccurred())

		response, err := mediator.Send[*queries.GetTemplateResponse](h.AdminCtx(), h.Mediator(), queries.GetTemplate{
			TemplateId: templateId,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Name).To(Equal("Open house flyer v2"))
		Expect(response.Fields).To(HaveLen(1))
	})

	It("should hide inactive templates from regular users", func() {
		response, err := mediator.Send[*commands.CreateTemplateResponse](h.AdminCtx(), h.Mediator(), commands.CreateTemplate{
			Name:        "Archived flyer",
			HtmlContent: "<p>old</p>",
			IsActive:    false,
		})
		Expect(err).ToNot(HaveOccurred())
		hiddenTemplateId = response.Id

		_, err = mediator.Send[*queries.GetTemplateResponse](h.UserCtx(), h.Mediator(), queries.GetTemplate{
			TemplateId: hiddenTemplateId,
		})
		Expect(err).To(MatchError(utils.ErrResourceNotFound))

		list, err := mediator.Send[*queries.ListTemplatesResponse](h.UserCtx(), h.Mediator(), queries.ListTemplates{
			IncludeInactive: true,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(list.Items).To(HaveLen(1))
		Expect(list.Items[0].Id).To(Equal(templateId))
	})

	It("should list inactive templates for admins", func() {
		list, err := mediator.Send[*queries.ListTemplatesResponse](h.AdminCtx(), h.Mediator(), queries.ListTemplates{
			IncludeInactive: true,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(list.TotalCount).To(Equal(2))
	})

	It("should keep the total on a page past the end", func() {
		list, err := mediator.Send[*queries.ListTemplatesResponse](h.AdminCtx(), h.Mediator(), queries.ListTemplates{
			PagedQuery:      queries.PagedQuery{Page: 5, PageSize: 1},
			IncludeInactive: true,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(list.Items).To(BeEmpty())
		Expect(list.TotalCount).To(Equal(2))
	})

	It("should filter templates by campaign and search text", func() {
		list, err := mediator.Send[*queries.ListTemplatesResponse](h.AdminCtx(), h.Mediator(), queries.ListTemplates{
			IncludeInactive: true,
			CampaignId:      &campaignId,
			SearchText:      "open house",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(list.Items).To(ContainElement(gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
			"Id": Equal(templateId),
		})))
		Expect(list.Items).ToNot(ContainElement(gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
			"Id": Equal(hiddenTemplateId),
		})))
	})

	It("should unlink templates when their campaign is deleted", func() {
		_, err := mediator.Send[*commands.DeleteCampaignResponse](h.AdminCtx(), h.Mediator(), commands.DeleteCampaign{
			CampaignId: campaignId,
		})
		Expect(err).ToNot(HaveOccurred())

		response, err := mediator.Send[*queries.GetTemplateResponse](h.AdminCtx(), h.Mediator(), queries.GetTemplate{
			TemplateId: templateId,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.CampaignId).To(BeNil())
	})

	It("should delete templates", func() {
		_, err := mediator.Send[*commands.DeleteTemplateResponse](h.AdminCtx(), h.Mediator(), commands.DeleteTemplate{
			TemplateId: hiddenTemplateId,
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = mediator.Send[*queries.GetTemplateResponse](h.AdminCtx(), h.Mediator(), queries.GetTemplate{
			TemplateId: hiddenTemplateId,
		})
		Expect(err).To(MatchError(utils.ErrResourceNotFound))
	})
})
