package integration

import (
	"Listline/internal/commands"
	"Listline/internal/jsonTypes"
	"Listline/internal/mediator"
	"Listline/internal/queries"
	"Listline/internal/repositories"
	"Listline/utils"
	"os"
	"path/filepath"
	"strings"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Customization flow", Ordered, func() {
	var h *harness

	var templateId uuid.UUID
	var customizationId uuid.UUID

	BeforeAll(func() {
		h = newIntegrationTestHarness()

		response, err := mediator.Send[*commands.CreateTemplateResponse](h.AdminCtx(), h.Mediator(), commands.CreateTemplate{
			Name:        "Just listed",
			HtmlContent: "<h1>{{address}}</h1><p>{{agent}}</p>",
			IsActive:    true,
			TemplateFields: []commands.TemplateFieldInput{
				{FieldKey: "address", Label: "Address", FieldType: repositories.TemplateFieldTypeText, IsRequired: true},
				{FieldKey: "agent", Label: "Agent", FieldType: repositories.TemplateFieldTypeText, DefaultValue: utils.Ptr("Your agent")},
			},
		})
		Expect(err).ToNot(HaveOccurred())
		templateId = response.Id
	})

	AfterAll(func() {
		h.Close()
	})

	It("should create a draft customization", func() {
		response, err := mediator.Send[*commands.CreateCustomizationResponse](h.UserCtx(), h.Mediator(), commands.CreateCustomization{
			TemplateId: templateId,
			Name:       "12 Elm Street",
			Values:     jsonTypes.FieldValues{"address": "12 Elm Street"},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Status).To(Equal(repositories.CustomizationStatusDraft))
		Expect(response.PublishedUrl).To(BeNil())
		customizationId = response.Id
	})

	It("should list only own customizations", func() {
		own, err := mediator.Send[*queries.ListOwnCustomizationsResponse](h.UserCtx(), h.Mediator(), queries.ListOwnCustomizations{})
		Expect(err).ToNot(HaveOccurred())
		Expect(own.Items).To(HaveLen(1))
		Expect(own.Items[0].Template).ToNot(BeNil())
		Expect(own.Items[0].Template.Name).To(Equal("Just listed"))

		other, err := mediator.Send[*queries.ListOwnCustomizationsResponse](h.OtherCtx(), h.Mediator(), queries.ListOwnCustomizations{})
		Expect(err).ToNot(HaveOccurred())
		Expect(other.Items).To(BeEmpty())
	})

	It("should not expose the customization to other users", func() {
		_, err := mediator.Send[*commands.UpdateCustomizationResponse](h.OtherCtx(), h.Mediator(), commands.UpdateCustomization{
			CustomizationId: customizationId,
			Name:            utils.Ptr("Stolen"),
		})
		Expect(err).To(MatchError(utils.ErrResourceNotFound))
	})

	It("should let admins view any customization", func() {
		response, err := mediator.Send[*queries.GetCustomizationResponse](h.AdminCtx(), h.Mediator(), queries.GetCustomization{
			CustomizationId: customizationId,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Name).To(Equal("12 Elm Street"))
	})

	It("should update the values", func() {
		response, err := mediator.Send[*commands.UpdateCustomizationResponse](h.UserCtx(), h.Mediator(), commands.UpdateCustomization{
			CustomizationId: customizationId,
			Values:          &jsonTypes.FieldValues{"address": "14 Elm Street"},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Values).To(HaveKeyWithValue("address", "14 Elm Street"))
		Expect(response.Name).To(Equal("12 Elm Street"))
	})

	It("should publish the filled template and queue a mail", func() {
		response, err := mediator.Send[*commands.PublishCustomizationResponse](h.UserCtx(), h.Mediator(), commands.PublishCustomization{
			CustomizationId: customizationId,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Status).To(Equal(repositories.CustomizationStatusPublished))
		Expect(response.PublishedUrl).ToNot(BeNil())
		Expect(*response.PublishedUrl).To(HavePrefix(storageBaseUrl + "/published/"))

		key := strings.TrimPrefix(*response.PublishedUrl, storageBaseUrl+"/")
		content, err := os.ReadFile(filepath.Join(h.StorageDir(), filepath.FromSlash(key)))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(Equal("<h1>14 Elm Street</h1><p>Your agent</p>"))

		outboxMessageRepository := ioc.GetDependency[repositories.OutboxMessageRepository](h.Scope())
		outboxMessages, err := outboxMessageRepository.List(h.SystemCtx(), repositories.NewOutboxMessageFilter())
		Expect(err).ToNot(HaveOccurred())
		Expect(outboxMessages).To(HaveLen(1))
	})

	It("should delete the customization", func() {
		_, err := mediator.Send[*commands.DeleteCustomizationResponse](h.UserCtx(), h.Mediator(), commands.DeleteCustomization{
			CustomizationId: customizationId,
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = mediator.Send[*queries.GetCustomizationResponse](h.UserCtx(), h.Mediator(), queries.GetCustomization{
			CustomizationId: customizationId,
		})
		Expect(err).To(MatchError(utils.ErrResourceNotFound))
	})
})
