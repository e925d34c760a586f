package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
)

var _ = Describe("VoteService", func() {
	var (
		e     *env
		alice *entities.Profile
		bob   *entities.Profile
		tag   *entities.Tag
	)

	BeforeEach(func() {
		e = newEnv()
		alice = e.createProfile("alice", entities.RoleUser)
		bob = e.createProfile("bob", entities.RoleUser)
		tag = e.createTag(e.createBrand("Lee", true), alice)
	})

	storedScore := func() int {
		GinkgoHelper()
		stored, err := e.tags.FindByID(e.ctx, tag.ID)
		Expect(err).NotTo(HaveOccurred())
		return stored.VerificationScore
	}

	Describe("Cast", func() {
		It("keeps a single row holding the latest value", func() {
			_, err := e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, -1)
			Expect(err).NotTo(HaveOccurred())

			vote, err := e.votes.Find(e.ctx, alice.ID, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(vote.Value.Int()).To(Equal(-1))

			tally, err := e.votes.Tally(e.ctx, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tally).To(Equal(entities.VoteTally{Upvotes: 0, Downvotes: 1}))
		})

		It("keeps verification_score equal to the sum of votes", func() {
			_, err := e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(storedScore()).To(Equal(1))

			tally, err := e.voteSvc.Cast(e.ctx, bob.ID, tag.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(tally.Score()).To(Equal(2))
			Expect(storedScore()).To(Equal(2))

			_, err = e.voteSvc.Cast(e.ctx, bob.ID, tag.ID, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(storedScore()).To(Equal(0))
		})

		It("publishes the new score", func() {
			_, err := e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(e.notifier.Events()).To(ConsistOf(scoreEvent{
				TagID: tag.ID,
				Score: 1,
				Tally: entities.VoteTally{Upvotes: 1},
			}))
		})

		It("invalidates the cached detail", func() {
			_, err := e.tagSvc.GetTag(e.ctx, tag.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, 1)
			Expect(err).NotTo(HaveOccurred())

			detail, err := e.tagSvc.GetTag(e.ctx, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Tally.Upvotes).To(Equal(1))
		})

		It("rejects values other than +1 and -1", func() {
			for _, v := range []int{0, 2, -2} {
				_, err := e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, v)
				Expect(err).To(MatchError(errors.ErrInvalidVoteValue))
			}
			Expect(e.notifier.Events()).To(BeEmpty())
		})

		It("requires an authenticated caller", func() {
			_, err := e.voteSvc.Cast(e.ctx, "", tag.ID, 1)
			Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
		})

		It("requires an existing tag", func() {
			_, err := e.voteSvc.Cast(e.ctx, alice.ID, "6f1c1c33-3f7e-4d59-9d7b-0d2b4f3e9a11", 1)
			Expect(err).To(MatchError(errors.ErrTagNotFound))
		})
	})

	Describe("Remove", func() {
		It("deletes the vote and recomputes the score", func() {
			_, err := e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, 1)
			Expect(err).NotTo(HaveOccurred())

			tally, err := e.voteSvc.Remove(e.ctx, alice.ID, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tally.Score()).To(BeZero())
			Expect(storedScore()).To(BeZero())

			vote, err := e.votes.Find(e.ctx, alice.ID, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(vote).To(BeNil())
		})

		It("succeeds when there is no vote", func() {
			_, err := e.voteSvc.Remove(e.ctx, bob.ID, tag.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("requires an authenticated caller", func() {
			_, err := e.voteSvc.Remove(e.ctx, "", tag.ID)
			Expect(err).To(MatchError(errors.ErrAuthenticationRequired))
		})
	})

	Describe("MyVote", func() {
		It("returns zero before voting and the value afterwards", func() {
			v, err := e.voteSvc.MyVote(e.ctx, alice.ID, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeZero())

			_, err = e.voteSvc.Cast(e.ctx, alice.ID, tag.ID, -1)
			Expect(err).NotTo(HaveOccurred())

			v, err = e.voteSvc.MyVote(e.ctx, alice.ID, tag.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(-1))
		})
	})
})
