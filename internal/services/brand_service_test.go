package services_test

import (
	stderrors "errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/services"
)

var _ = Describe("BrandService", func() {
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

	Describe("CreateBrand", func() {
		It("trims the name, derives the slug and starts unverified", func() {
			brand, err := e.brandSvc.CreateBrand(e.ctx, user.ID, services.CreateBrandInput{Name: "  Levi's  "})

			Expect(err).NotTo(HaveOccurred())
			Expect(brand.Name).To(Equal("Levi's"))
			Expect(brand.Slug).To(Equal("levis"))
			Expect(brand.Verified).To(BeFalse())
			Expect(brand.VerificationStatus).To(Equal(entities.VerificationPending))
			Expect(brand.CreatedBy).To(Equal(user.ID))
		})

		It("rejects a second brand colliding on the slug and echoes the existing one", func() {
			existing := e.createBrand("Levi's", true)

			_, err := e.brandSvc.CreateBrand(e.ctx, user.ID, services.CreateBrandInput{Name: "LEVIS"})

			Expect(err).To(MatchError(errors.ErrBrandAlreadyExists))
			var exists *errors.BrandExistsError
			Expect(stderrors.As(err, &exists)).To(BeTrue())
			Expect(exists.Name).To(Equal(existing.Name))
			Expect(exists.Status).To(Equal("verified"))
		})

		It("requires an authenticated caller", func() {
			_, err := e.brandSvc.CreateBrand(e.ctx, "", services.CreateBrandInput{Name: "Wrangler"})
			Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
		})

		DescribeTable("rejects invalid names",
			func(name string, expected error) {
				_, err := e.brandSvc.CreateBrand(e.ctx, user.ID, services.CreateBrandInput{Name: name})
				Expect(err).To(MatchError(expected))
			},
			Entry("too short", " L ", errors.ErrInvalidName),
			Entry("too long", strings.Repeat("a", 101), errors.ErrInvalidName),
			Entry("no alphanumerics", "!!!", errors.ErrInvalidSlug),
		)

		It("rejects a founded year in the future", func() {
			year := 3000
			_, err := e.brandSvc.CreateBrand(e.ctx, user.ID, services.CreateBrandInput{Name: "Wrangler", FoundedYear: &year})
			Expect(err).To(MatchError(errors.ErrInvalidYearRange))
		})
	})

	Describe("Verify and Reject", func() {
		var brand *entities.Brand

		BeforeEach(func() {
			brand = e.createBrand("Pendleton", false)
		})

		It("lets an admin verify a brand", func() {
			Expect(e.brandSvc.Verify(e.ctx, admin.ID, brand.ID)).To(Succeed())

			stored, err := e.brandSvc.GetBrand(e.ctx, brand.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Verified).To(BeTrue())
			Expect(stored.VerificationStatus).To(Equal(entities.VerificationVerified))
		})

		It("allows a rejected brand to be verified again", func() {
			Expect(e.brandSvc.Reject(e.ctx, admin.ID, brand.ID)).To(Succeed())

			stored, _ := e.brandSvc.GetBrand(e.ctx, brand.ID)
			Expect(stored.Verified).To(BeFalse())
			Expect(stored.VerificationStatus).To(Equal(entities.VerificationRejected))

			Expect(e.brandSvc.Verify(e.ctx, admin.ID, brand.ID)).To(Succeed())
			stored, _ = e.brandSvc.GetBrand(e.ctx, brand.ID)
			Expect(stored.VerificationStatus).To(Equal(entities.VerificationVerified))
		})

		It("denies non-admins and leaves the brand unchanged", func() {
			err := e.brandSvc.Verify(e.ctx, user.ID, brand.ID)
			Expect(err).To(MatchError(errors.ErrAdminRequired))

			stored, _ := e.brandSvc.GetBrand(e.ctx, brand.ID)
			Expect(stored.Verified).To(BeFalse())
			Expect(stored.VerificationStatus).To(Equal(entities.VerificationPending))
		})

		It("checks the role before looking at the brand id", func() {
			Expect(e.brandSvc.Verify(e.ctx, user.ID, "42")).To(MatchError(errors.ErrAdminRequired))
		})

		It("reports unknown brands as not found", func() {
			Expect(e.brandSvc.Reject(e.ctx, admin.ID, "42")).To(MatchError(errors.ErrBrandNotFound))
		})

		It("re-reads the role on every call", func() {
			admin.Role = entities.RoleUser
			Expect(e.profiles.Update(e.ctx, admin)).To(Succeed())

			Expect(e.brandSvc.Verify(e.ctx, admin.ID, brand.ID)).To(MatchError(errors.ErrAdminRequired))
		})
	})

	Describe("SearchBrands", func() {
		BeforeEach(func() {
			e.createBrand("Wrangler", true)
			e.createBrand("Lee", true)
			e.createBrand("Pendleton", true)
			e.createBrand("Le Tigre", false)
			e.createBrand("Lesney", false)
			e.createBrand("Filson", false)
			e.createBrand("Carhartt", true)
		})

		It("returns verified matches first, alphabetical within each group", func() {
			brands, err := e.brandSvc.SearchBrands(e.ctx, user.ID, "le", 5)
			Expect(err).NotTo(HaveOccurred())

			names := make([]string, 0, len(brands))
			for _, b := range brands {
				names = append(names, b.Name)
			}
			Expect(names).To(Equal([]string{"Lee", "Pendleton", "Wrangler", "Le Tigre", "Lesney"}))
		})

		It("applies the limit", func() {
			brands, err := e.brandSvc.SearchBrands(e.ctx, user.ID, "e", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(brands).To(HaveLen(1))
		})

		It("rejects an empty query", func() {
			_, err := e.brandSvc.SearchBrands(e.ctx, user.ID, "   ", 5)
			Expect(err).To(MatchError(errors.ErrInvalidSearchQuery))
		})

		It("requires an authenticated caller", func() {
			_, err := e.brandSvc.SearchBrands(e.ctx, "", "le", 5)
			Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
		})
	})

	Describe("VerifiedSlugs", func() {
		It("lists only verified brands", func() {
			e.createBrand("Lee", true)
			e.createBrand("Le Tigre", false)

			slugs, err := e.brandSvc.VerifiedSlugs(e.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(slugs).To(ConsistOf("lee"))
		})
	})

	Describe("GetBrandBySlug", func() {
		It("returns not found for unknown slugs", func() {
			_, err := e.brandSvc.GetBrandBySlug(e.ctx, "nope")
			Expect(err).To(MatchError(errors.ErrBrandNotFound))
		})
	})
})
