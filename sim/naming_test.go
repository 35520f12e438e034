package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Naming", func() {
	It("should accept hierarchical names", func() {
		Expect(func() { NameMustBeValid("Agent[0].Controller") }).NotTo(Panic())
		Expect(func() { NameMustBeValid("Floor.Soiler") }).NotTo(Panic())
	})

	It("should panic if the name is empty", func() {
		Expect(func() { NameMustBeValid("") }).To(Panic())
	})

	It("should panic if name include underscore", func() {
		Expect(func() { NameMustBeValid("Agent_0") }).To(Panic())
	})

	It("should panic if name is not capitalized CamelCase", func() {
		Expect(func() { NameMustBeValid("agent") }).To(Panic())
	})

	It("should panic on empty elements", func() {
		Expect(func() { NameMustBeValid("Agent..Body") }).To(Panic())
	})

	It("should build names", func() {
		Expect(BuildName("", "Floor")).To(Equal("Floor"))
		Expect(BuildName("Agent[1]", "Body")).To(Equal("Agent[1].Body"))
		Expect(BuildNameWithIndex("", "Agent", 3)).To(Equal("Agent[3]"))
	})
})
