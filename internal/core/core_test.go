package core_test

import (
	"context"
	"errors"

	"crm/internal/core"
	"crm/internal/core/fake"
	"crm/internal/repository"
	"crm/pkg/password"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("CRM", func() {
	var (
		fakeRepo   *fake.Repository
		fakeHasher *fake.PasswordHasher
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		crm *core.CRM

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeHasher = new(fake.PasswordHasher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		crm = core.NewCRM(fakeLogger, fakeRepo, fakeHasher)

		fakeErr = errors.New("fake error")
	})

	Describe("EnsureSchema", func() {
		It("should ensure the users table", func() {
			Expect(crm.EnsureSchema(ctx, core.UsersTable)).To(Succeed())
			Expect(fakeRepo.EnsureUserTableCallCount()).To(Equal(1))
			Expect(fakeRepo.EnsureContactTableCallCount()).To(Equal(0))
		})

		It("should ensure the contacts table", func() {
			Expect(crm.EnsureSchema(ctx, core.ContactsTable)).To(Succeed())
			Expect(fakeRepo.EnsureContactTableCallCount()).To(Equal(1))
		})

		It("should reject unknown tables", func() {
			Expect(crm.EnsureSchema(ctx, core.Table("orders"))).To(MatchError(ContainSubstring("unknown table")))
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.EnsureContactTableReturns(fakeErr)
			})

			It("should return a StorageError", func() {
				err := crm.EnsureSchema(ctx, core.ContactsTable)

				var sErr *core.StorageError
				Expect(errors.As(err, &sErr)).To(BeTrue())
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Register", func() {
		var (
			creds core.Credentials
			id    int64
			err   error
		)

		BeforeEach(func() {
			creds = core.Credentials{Username: "alice", Password: "password"}
			fakeHasher.HashReturns("digest", nil)
		})

		JustBeforeEach(func() {
			id, err = crm.Register(ctx, creds)
		})

		When("username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{ID: 1, Username: "alice", PasswordHash: "digest"}, nil)
			})

			It("should store the digest, not the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(int64(1)))

				Expect(fakeHasher.HashArgsForCall(0)).To(Equal("password"))
				_, username, digest := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(digest).To(Equal("digest"))
			})
		})

		When("username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUsernameTaken)
			})

			It("should return a ConstraintViolation", func() {
				var cErr *core.ConstraintViolation
				Expect(errors.As(err, &cErr)).To(BeTrue())
				Expect(cErr.Constraint).To(Equal(core.ConstraintUniqueUsername))
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("the password is too long to hash", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("", password.ErrTooLong)
			})

			It("should return a ValidationError and not touch storage", func() {
				var vErr *core.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(vErr.Field).To(Equal("password"))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return a StorageError", func() {
				var sErr *core.StorageError
				Expect(errors.As(err, &sErr)).To(BeTrue())
				Expect(sErr.Op).To(Equal("create user"))
			})
		})
	})

	Describe("Login", func() {
		var (
			id  int64
			err error
		)

		JustBeforeEach(func() {
			id, err = crm.Login(ctx, core.Credentials{Username: "alice", Password: "password"})
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{ID: 4, Username: "alice", PasswordHash: "digest"}, nil)
			})

			It("should return the user id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(int64(4)))

				digest, plain := fakeHasher.CompareArgsForCall(0)
				Expect(digest).To(Equal("digest"))
				Expect(plain).To(Equal("password"))
			})
		})

		When("password doesn't match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{ID: 4, PasswordHash: "digest"}, nil)
				fakeHasher.CompareReturns(password.ErrMismatch)
			})

			It("should return ErrIncorrectPassword", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(id).To(BeZero())
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeHasher.CompareCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return a StorageError", func() {
				var sErr *core.StorageError
				Expect(errors.As(err, &sErr)).To(BeTrue())
			})
		})
	})

	Describe("AddContact", func() {
		var (
			msg core.ContactMessage
			id  int64
			err error
		)

		BeforeEach(func() {
			msg = core.ContactMessage{UserID: 1, Name: "Bob", Email: "a@b.com", Phone: "9123456789"}
		})

		JustBeforeEach(func() {
			id, err = crm.AddContact(ctx, msg)
		})

		When("fields are valid", func() {
			BeforeEach(func() {
				fakeRepo.CreateContactReturns(repository.Contact{ID: 10, UserID: 1}, nil)
			})

			It("should store the contact for the given user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(int64(10)))

				_, contact := fakeRepo.CreateContactArgsForCall(0)
				Expect(contact).To(Equal(repository.Contact{UserID: 1, Name: "Bob", Email: "a@b.com", Phone: "9123456789"}))
			})
		})

		When("email is invalid", func() {
			BeforeEach(func() {
				msg.Email = "abc"
			})

			It("should reject without touching storage", func() {
				var vErr *core.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(vErr.Field).To(Equal("email"))
				Expect(fakeRepo.CreateContactCallCount()).To(Equal(0))
			})
		})

		When("phone is invalid", func() {
			BeforeEach(func() {
				msg.Phone = "6123456789"
			})

			It("should reject without touching storage", func() {
				var vErr *core.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(vErr.Field).To(Equal("phone"))
				Expect(fakeRepo.CreateContactCallCount()).To(Equal(0))
			})
		})

		When("the owner is rejected by the database", func() {
			BeforeEach(func() {
				fakeRepo.CreateContactReturns(repository.Contact{}, repository.ErrUnknownUser)
			})

			It("should return a ConstraintViolation", func() {
				var cErr *core.ConstraintViolation
				Expect(errors.As(err, &cErr)).To(BeTrue())
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateContactReturns(repository.Contact{}, fakeErr)
			})

			It("should return a StorageError", func() {
				var sErr *core.StorageError
				Expect(errors.As(err, &sErr)).To(BeTrue())
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ViewContacts", func() {
		var (
			records []core.ContactRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = crm.ViewContacts(ctx, 1)
		})

		When("user has contacts", func() {
			BeforeEach(func() {
				fakeRepo.GetContactsByUserReturns([]repository.Contact{
					{ID: 1, UserID: 1, Name: "Bob", Email: "a@b.com", Phone: "9123456789"},
					{ID: 2, UserID: 1, Name: "Eve", Email: "e@b.com", Phone: "8123456789"},
				}, nil)
			})

			It("should project them into records in order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.ContactRecord{
					{UserID: 1, Name: "Bob", Email: "a@b.com", Phone: "9123456789"},
					{UserID: 1, Name: "Eve", Email: "e@b.com", Phone: "8123456789"},
				}))
			})
		})

		When("user has no contacts", func() {
			BeforeEach(func() {
				fakeRepo.GetContactsByUserReturns([]repository.Contact{}, nil)
			})

			It("should return an empty sequence", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).NotTo(BeNil())
				Expect(records).To(BeEmpty())
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeRepo.GetContactsByUserReturns(nil, fakeErr)
			})

			It("should return a StorageError", func() {
				var sErr *core.StorageError
				Expect(errors.As(err, &sErr)).To(BeTrue())
				Expect(records).To(BeNil())
			})
		})
	})

	Describe("UpdateContact", func() {
		var (
			upd core.ContactUpdate
			err error
		)

		BeforeEach(func() {
			upd = core.ContactUpdate{ContactID: 3, Name: "Robert", Email: "r@b.com", Phone: "7123456789"}
		})

		JustBeforeEach(func() {
			err = crm.UpdateContact(ctx, upd)
		})

		When("contact exists", func() {
			It("should overwrite the three fields", func() {
				Expect(err).NotTo(HaveOccurred())
				_, contact := fakeRepo.UpdateContactArgsForCall(0)
				Expect(contact).To(Equal(repository.Contact{ID: 3, Name: "Robert", Email: "r@b.com", Phone: "7123456789"}))
			})
		})

		When("contact doesn't exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateContactReturns(repository.ErrContactNotFound)
			})

			It("should return a NotFoundError", func() {
				var nfErr *core.NotFoundError
				Expect(errors.As(err, &nfErr)).To(BeTrue())
				Expect(nfErr.ID).To(Equal(int64(3)))
				Expect(err).To(MatchError("contact 3 not found"))
			})
		})

		When("phone is invalid", func() {
			BeforeEach(func() {
				upd.Phone = "123"
			})

			It("should reject without touching storage", func() {
				var vErr *core.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(fakeRepo.UpdateContactCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateContactReturns(fakeErr)
			})

			It("should return a StorageError", func() {
				var sErr *core.StorageError
				Expect(errors.As(err, &sErr)).To(BeTrue())
			})
		})
	})

	Describe("DeleteContact", func() {
		var err error

		JustBeforeEach(func() {
			err = crm.DeleteContact(ctx, 8)
		})

		When("contact exists", func() {
			It("should delete it by id", func() {
				Expect(err).NotTo(HaveOccurred())
				_, id := fakeRepo.DeleteContactArgsForCall(0)
				Expect(id).To(Equal(int64(8)))
			})
		})

		When("contact doesn't exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteContactReturns(repository.ErrContactNotFound)
			})

			It("should return a NotFoundError", func() {
				var nfErr *core.NotFoundError
				Expect(errors.As(err, &nfErr)).To(BeTrue())
				Expect(nfErr.Entity).To(Equal("contact"))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteContactReturns(fakeErr)
			})

			It("should return a StorageError", func() {
				var sErr *core.StorageError
				Expect(errors.As(err, &sErr)).To(BeTrue())
			})
		})
	})
})
