package terminal_test

import (
	"github.com/tinymachines/wopr/pkg/protocol"
	"github.com/tinymachines/wopr/pkg/terminal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transcript", func() {
	It("should append without mutating the original", func() {
		base := terminal.NewTranscript().Append(protocol.NewSystemMessage("LOGON"))
		grown := base.Append(protocol.NewWoprMessage("GREETINGS"))

		Expect(base.Messages).To(HaveLen(1))
		Expect(grown.Messages).To(HaveLen(2))
		Expect(grown.Messages[1].Text).To(Equal("GREETINGS"))
	})

	It("should split multi-line messages into typed lines", func() {
		tr := terminal.NewTranscript().
			Append(protocol.NewSystemMessage("LOGON:\n\nIDENT")).
			Append(protocol.NewErrorMessage("CONNECTION TERMINATED"))

		lines := tr.Lines()
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(Equal(terminal.Line{Text: "LOGON:", Type: protocol.TypeSystem}))
		Expect(lines[1]).To(Equal(terminal.Line{Text: "", Type: protocol.TypeSystem}))
		Expect(lines[2]).To(Equal(terminal.Line{Text: "IDENT", Type: protocol.TypeSystem}))
		Expect(lines[3]).To(Equal(terminal.Line{Text: "CONNECTION TERMINATED", Type: protocol.TypeError}))
	})
})

var _ = Describe("Cursor", func() {
	It("should start visible and alternate on toggle", func() {
		c := terminal.NewCursor()
		Expect(c.Visible).To(BeTrue())
		Expect(c.Glyph()).To(Equal("█"))

		c = c.Toggle()
		Expect(c.Visible).To(BeFalse())
		Expect(c.Glyph()).To(Equal(" "))

		c = c.Toggle()
		Expect(c.Visible).To(BeTrue())
	})
})

var _ = Describe("InputField", func() {
	It("should insert runes at the cursor", func() {
		inf := terminal.NewInputField().
			InsertRune('h').
			InsertRune('i')

		Expect(inf.Content).To(Equal("hi"))
		Expect(inf.IsEmpty()).To(BeFalse())
	})

	It("should delete whole runes, not bytes", func() {
		inf := terminal.NewInputField().
			InsertRune('h').
			InsertRune('é')

		inf = inf.DeleteBackward()
		Expect(inf.Content).To(Equal("h"))
	})

	It("should treat backspace on empty input as a no-op", func() {
		inf := terminal.NewInputField().DeleteBackward()
		Expect(inf.Content).To(Equal(""))
	})

	It("should clear back to empty", func() {
		inf := terminal.NewInputField().InsertRune('x').Clear()
		Expect(inf.IsEmpty()).To(BeTrue())
	})
})
