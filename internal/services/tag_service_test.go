package services_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
	"github.com/rafabene/threaddate-backend/internal/services"
	"github.com/rafabene/threaddate-backend/internal/testutil"
)

// afterTallyVoteRepo roda afterTally uma vez, depois da contagem e antes de devolvê-la
type afterTallyVoteRepo struct {
	repositories.VoteRepository
	afterTally func()
}

func (r *afterTallyVoteRepo) Tally(ctx context.Context, tagID string) (entities.VoteTally, error) {
	tally, err := r.VoteRepository.Tally(ctx, tagID)
	if hook := r.afterTally; hook != nil {
		r.afterTally = nil
		hook()
	}
	return tally, err
}

var _ = Describe("TagService", func() {
	var (
		e     *env
		user  *entities.Profile
		brand *entities.Brand
	)

	BeforeEach(func() {
		e = newEnv()
		user = e.createProfile("collector", entities.RoleUser)
		brand = e.createBrand("Wrangler", true)
	})

	validInput := func() services.SubmitTagInput {
		return services.SubmitTagInput{
			BrandID:     brand.ID,
			Category:    "care_label",
			Era:         "1980s",
			ImageBase64: pngBase64,
		}
	}

	countTags := func() int {
		tags, err := e.tags.ListByBrand(e.ctx, brand.ID, 1, 100)
		Expect(err).NotTo(HaveOccurred())
		return len(tags)
	}

	Describe("SubmitTag", func() {
		It("stores the image and inserts a pending tag with score zero", func() {
			start, end := 1982, 1986
			input := validInput()
			input.YearStart = &start
			input.YearEnd = &end

			tag, err := e.tagSvc.SubmitTag(e.ctx, user.ID, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(tag.Status).To(Equal(entities.TagStatusPending))
			Expect(tag.VerificationScore).To(BeZero())
			Expect(tag.SubmittedBy).To(Equal(user.ID))
			Expect(tag.ImageKey).To(HavePrefix("tags/" + user.ID + "/"))
			Expect(tag.ImageKey).To(HaveSuffix(".png"))
			Expect(tag.ImageURL).To(Equal("http://localhost:8080/uploads/" + tag.ImageKey))
			Expect(filepath.Join(e.uploadDir, filepath.FromSlash(tag.ImageKey))).To(BeAnExistingFile())

			stored, err := e.tags.FindByID(e.ctx, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*stored.YearStart).To(Equal(1982))
			Expect(*stored.YearEnd).To(Equal(1986))
		})

		It("accepts data URLs", func() {
			input := validInput()
			input.ImageBase64 = "data:image/png;base64," + pngBase64

			_, err := e.tagSvc.SubmitTag(e.ctx, user.ID, input)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects unauthenticated callers without storing anything", func() {
			_, err := e.tagSvc.SubmitTag(e.ctx, "", validInput())

			Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
			Expect(countTags()).To(BeZero())
			entries, _ := os.ReadDir(e.uploadDir)
			Expect(entries).To(BeEmpty())
		})

		It("requires an existing brand", func() {
			input := validInput()
			input.BrandID = "6f1c1c33-3f7e-4d59-9d7b-0d2b4f3e9a11"

			_, err := e.tagSvc.SubmitTag(e.ctx, user.ID, input)
			Expect(err).To(MatchError(errors.ErrBrandNotFound))
		})

		DescribeTable("validates the submission",
			func(mutate func(*services.SubmitTagInput), expected error) {
				input := validInput()
				mutate(&input)

				_, err := e.tagSvc.SubmitTag(e.ctx, user.ID, input)
				Expect(err).To(MatchError(expected))
				Expect(countTags()).To(BeZero())
			},
			Entry("unknown category", func(in *services.SubmitTagInput) { in.Category = "hangtag" }, errors.ErrInvalidCategory),
			Entry("unknown era", func(in *services.SubmitTagInput) { in.Era = "1890s" }, errors.ErrInvalidEra),
			Entry("start after end", func(in *services.SubmitTagInput) {
				start, end := 1990, 1980
				in.YearStart, in.YearEnd = &start, &end
			}, errors.ErrInvalidYearRange),
			Entry("year before 1800", func(in *services.SubmitTagInput) {
				start := valueobjects.MinYear - 1
				in.YearStart = &start
			}, errors.ErrInvalidYearRange),
			Entry("not base64", func(in *services.SubmitTagInput) { in.ImageBase64 = "%%%" }, errors.ErrInvalidImage),
			Entry("not an image", func(in *services.SubmitTagInput) {
				in.ImageBase64 = base64.StdEncoding.EncodeToString([]byte("hello, world"))
			}, errors.ErrInvalidImage),
			Entry("image too large", func(in *services.SubmitTagInput) {
				in.ImageBase64 = base64.StdEncoding.EncodeToString(make([]byte, maxImageBytes+1))
			}, errors.ErrImageTooLarge),
			Entry("description too long", func(in *services.SubmitTagInput) {
				d := strings.Repeat("x", services.MaxTextLength+1)
				in.Description = &d
			}, errors.ErrTextTooLong),
		)
	})

	Describe("GetTag", func() {
		It("returns the tag with brand and tally", func() {
			tag := e.createTag(brand, user)

			detail, err := e.tagSvc.GetTag(e.ctx, tag.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Tag.ID).To(Equal(tag.ID))
			Expect(detail.BrandName).To(Equal("Wrangler"))
			Expect(detail.BrandSlug).To(Equal("wrangler"))
			Expect(detail.Tally).To(Equal(entities.VoteTally{}))
		})

		It("returns not found for unknown ids", func() {
			_, err := e.tagSvc.GetTag(e.ctx, "42")
			Expect(err).To(MatchError(errors.ErrTagNotFound))
		})

		It("does not cache a detail read before a concurrent vote", func() {
			tag := e.createTag(brand, user)
			voter := e.createProfile("voter", entities.RoleUser)

			votes := &afterTallyVoteRepo{VoteRepository: e.votes}
			votes.afterTally = func() {
				_, err := e.voteSvc.Cast(e.ctx, voter.ID, tag.ID, 1)
				Expect(err).NotTo(HaveOccurred())
			}
			tagSvc := services.NewTagService(e.tags, e.brands, e.items, e.evidence, votes, e.profiles,
				e.storage, e.cache, testutil.NopLogger{}, maxImageBytes)

			stale, err := tagSvc.GetTag(e.ctx, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stale.Tally.Upvotes).To(Equal(0))

			detail, err := tagSvc.GetTag(e.ctx, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Tally.Upvotes).To(Equal(1))
			Expect(detail.Tag.VerificationScore).To(Equal(1))
		})
	})

	Describe("ListTagsByBrand", func() {
		It("lists the brand tags", func() {
			e.createTag(brand, user)
			e.createTag(brand, user)

			tags, err := e.tagSvc.ListTagsByBrand(e.ctx, "wrangler", 1, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(tags).To(HaveLen(2))
		})

		It("returns not found for unknown brands", func() {
			_, err := e.tagSvc.ListTagsByBrand(e.ctx, "nope", 1, 20)
			Expect(err).To(MatchError(errors.ErrBrandNotFound))
		})
	})

	Describe("evidence", func() {
		It("attaches and lists supporting photos", func() {
			tag := e.createTag(brand, user)
			note := "  union bug on the inner seam "

			ev, err := e.tagSvc.AddEvidence(e.ctx, user.ID, tag.ID, services.AddEvidenceInput{
				ImageBase64: pngBase64,
				Note:        &note,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.ImageKey).To(HavePrefix("evidence/" + user.ID + "/"))
			Expect(*ev.Note).To(Equal("union bug on the inner seam"))

			list, err := e.tagSvc.ListEvidence(e.ctx, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
		})

		It("requires an authenticated caller", func() {
			tag := e.createTag(brand, user)
			_, err := e.tagSvc.AddEvidence(e.ctx, "", tag.ID, services.AddEvidenceInput{ImageBase64: pngBase64})
			Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
		})
	})

	Describe("DeleteImage", func() {
		var tag *entities.Tag

		BeforeEach(func() {
			tag = e.createTag(brand, user)
		})

		It("lets the owner remove the object", func() {
			Expect(e.tagSvc.DeleteImage(e.ctx, user.ID, tag.ImageKey)).To(Succeed())
			Expect(filepath.Join(e.uploadDir, filepath.FromSlash(tag.ImageKey))).NotTo(BeAnExistingFile())
		})

		It("lets an admin remove any object", func() {
			admin := e.createProfile("curator", entities.RoleAdmin)
			Expect(e.tagSvc.DeleteImage(e.ctx, admin.ID, tag.ImageKey)).To(Succeed())
		})

		It("forbids other users", func() {
			other := e.createProfile("someone", entities.RoleUser)
			Expect(e.tagSvc.DeleteImage(e.ctx, other.ID, tag.ImageKey)).To(MatchError(errors.ErrForbidden))
			Expect(filepath.Join(e.uploadDir, filepath.FromSlash(tag.ImageKey))).To(BeAnExistingFile())
		})

		DescribeTable("rejects malformed keys",
			func(key string) {
				Expect(e.tagSvc.DeleteImage(e.ctx, user.ID, key)).To(MatchError(errors.ErrInvalidStorageKey))
			},
			Entry("empty", ""),
			Entry("traversal", "tags/../../etc/passwd"),
			Entry("unknown prefix", "avatars/u/1.png"),
			Entry("too deep", "tags/u/x/1.png"),
		)
	})
})
