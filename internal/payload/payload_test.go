package payload_test

import (
	"errors"

	"crm/internal/core"
	"crm/internal/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	Describe("ParseID", func() {
		It("should parse a number surrounded by whitespace", func() {
			id, err := payload.ParseID("user id", " 42\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(42)))
		})

		DescribeTable("should reject non numeric input",
			func(raw string) {
				_, err := payload.ParseID("contact id", raw)

				var vErr *core.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(vErr.Field).To(Equal("contact id"))
			},
			Entry("letters", "abc"),
			Entry("empty", ""),
			Entry("blank", "   "),
			Entry("decimal", "1.5"),
		)
	})

	Describe("AuthRequest", func() {
		It("should convert to core credentials", func() {
			req := payload.AuthRequest{Username: "alice", Password: "secret"}
			Expect(req.ToCoreCredentials()).To(Equal(core.Credentials{Username: "alice", Password: "secret"}))
		})

		It("should pass empty credentials through unchanged", func() {
			Expect(payload.AuthRequest{}.ToCoreCredentials()).To(Equal(core.Credentials{}))
		})
	})
})
