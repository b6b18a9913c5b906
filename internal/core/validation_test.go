package core_test

import (
	"crm/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validators", func() {
	DescribeTable("IsValidPhone",
		func(phone string, valid bool) {
			Expect(core.IsValidPhone(phone)).To(Equal(valid))
		},
		Entry("starts with 9", "9123456789", true),
		Entry("starts with 7", "7000000000", true),
		Entry("starts with 8", "8999999999", true),
		Entry("starts with 6", "6123456789", false),
		Entry("nine digits", "912345678", false),
		Entry("eleven digits", "91234567890", false),
		Entry("dashed", "912-345-6789", false),
		Entry("letters", "9abcdefghi", false),
		Entry("trailing space", "9123456789 ", false),
		Entry("empty", "", false),
	)

	DescribeTable("IsValidEmail",
		func(email string, valid bool) {
			Expect(core.IsValidEmail(email)).To(Equal(valid))
		},
		Entry("plain", "a@b.com", true),
		Entry("subdomain", "john.doe@mail.example.org", true),
		Entry("no at", "abc", false),
		Entry("no dot after at", "a@b", false),
		Entry("whitespace", "a b@c.com", false),
		Entry("vertical tab", "a\vb@c.com", false),
		Entry("no-break space", "a\u00a0b@c.com", false),
		Entry("file separator", "a@b\x1c.com", false),
		Entry("trailing word", "a@b.com extra", false),
		Entry("trailing newline", "a@b.com\n", false),
		Entry("non ascii letters", "josé@b.com", true),
		Entry("empty", "", false),
	)

	Describe("ValidateEmail", func() {
		It("should return a ValidationError naming the field", func() {
			err := core.ValidateEmail("abc")

			var vErr *core.ValidationError
			Expect(err).To(BeAssignableToTypeOf(vErr))
			Expect(err).To(MatchError(ContainSubstring("invalid email")))
		})

		It("should accept a valid email", func() {
			Expect(core.ValidateEmail("a@b.com")).To(Succeed())
		})
	})

	Describe("ValidatePhone", func() {
		It("should return a ValidationError naming the field", func() {
			err := core.ValidatePhone("123")

			vErr := &core.ValidationError{}
			Expect(err).To(BeAssignableToTypeOf(vErr))
			Expect(err.(*core.ValidationError).Field).To(Equal("phone"))
		})
	})

	Describe("ContactMessage.Validate", func() {
		It("should report both bad fields", func() {
			err := core.ContactMessage{Email: "abc", Phone: "1"}.Validate()
			Expect(err).To(MatchError(ContainSubstring("invalid email")))
			Expect(err).To(MatchError(ContainSubstring("invalid phone")))
		})

		It("should pass when both fields are valid", func() {
			Expect(core.ContactMessage{Email: "a@b.com", Phone: "9123456789"}.Validate()).To(Succeed())
		})
	})
})
