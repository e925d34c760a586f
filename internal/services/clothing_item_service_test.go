package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/services"
)

var _ = Describe("ClothingItemService", func() {
	var (
		e     *env
		user  *entities.Profile
		admin *entities.Profile
	)

	BeforeEach(func() {
		e = newEnv()
		user = e.createProfile("collector", entities.RoleUser)
		admin = e.createProfile("curator", entities.RoleAdmin)
	})

	It("creates a pending item linked to a brand", func() {
		brand := e.createBrand("Lee", true)

		item, err := e.itemSvc.CreateItem(e.ctx, user.ID, services.CreateItemInput{
			Name:     "Lee 101 Riders",
			BrandID:  &brand.ID,
			Category: "jeans",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(item.Slug).To(Equal("lee-101-riders"))
		Expect(item.Status).To(Equal(entities.ItemStatusPending))
		Expect(*item.BrandID).To(Equal(brand.ID))

		found, err := e.itemSvc.GetItem(e.ctx, "lee-101-riders")
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(item.ID))
	})

	It("rejects duplicate slugs", func() {
		_, err := e.itemSvc.CreateItem(e.ctx, user.ID, services.CreateItemInput{Name: "Chore Coat", Category: "jacket"})
		Expect(err).NotTo(HaveOccurred())

		_, err = e.itemSvc.CreateItem(e.ctx, user.ID, services.CreateItemInput{Name: "chore  coat", Category: "jacket"})
		Expect(err).To(MatchError(errors.ErrItemAlreadyExists))
	})

	It("rejects unknown brands", func() {
		id := "6f1c1c33-3f7e-4d59-9d7b-0d2b4f3e9a11"
		_, err := e.itemSvc.CreateItem(e.ctx, user.ID, services.CreateItemInput{Name: "Chore Coat", Category: "jacket", BrandID: &id})
		Expect(err).To(MatchError(errors.ErrBrandNotFound))
	})

	It("requires a category", func() {
		_, err := e.itemSvc.CreateItem(e.ctx, user.ID, services.CreateItemInput{Name: "Chore Coat"})
		Expect(err).To(MatchError(errors.ErrInvalidCategory))
	})

	It("requires an authenticated caller", func() {
		_, err := e.itemSvc.CreateItem(e.ctx, "", services.CreateItemInput{Name: "Chore Coat", Category: "jacket"})
		Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
	})

	Describe("review", func() {
		var item *entities.ClothingItem

		BeforeEach(func() {
			var err error
			item, err = e.itemSvc.CreateItem(e.ctx, user.ID, services.CreateItemInput{Name: "Chore Coat", Category: "jacket"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("lets an admin approve and reject", func() {
			Expect(e.itemSvc.Approve(e.ctx, admin.ID, item.ID)).To(Succeed())

			approved := entities.ItemStatusApproved
			list, err := e.itemSvc.ListItems(e.ctx, repositories.ItemFilters{Status: &approved})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))

			Expect(e.itemSvc.Reject(e.ctx, admin.ID, item.ID)).To(Succeed())
			stored, _ := e.itemSvc.GetItem(e.ctx, item.Slug)
			Expect(stored.Status).To(Equal(entities.ItemStatusRejected))
		})

		It("denies non-admins", func() {
			Expect(e.itemSvc.Approve(e.ctx, user.ID, item.ID)).To(MatchError(errors.ErrAdminRequired))

			stored, _ := e.itemSvc.GetItem(e.ctx, item.Slug)
			Expect(stored.Status).To(Equal(entities.ItemStatusPending))
		})

		It("reports unknown items as not found", func() {
			Expect(e.itemSvc.Approve(e.ctx, admin.ID, "42")).To(MatchError(errors.ErrItemNotFound))
		})
	})
})
