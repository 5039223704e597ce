package main

import (
	"github.com/aws/aws-sdk-go/aws"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func tagPairs(tags []*codebuild.Tag) [][2]string {
	pairs := [][2]string{}
	for _, t := range tags {
		pairs = append(pairs, [2]string{aws.StringValue(t.Key), aws.StringValue(t.Value)})
	}
	return pairs
}

var _ = Describe("Parse tags", func() {

	Context("with normal input", func() {

		It("returns no tags when input is missing", func() {
			Expect(parseTags("")).To(BeEmpty())
		})

		It("returns tags in the order they are given", func() {
			tags := parseTags("Key=team,Value=ci Key=env,Value=prod")
			Expect(tagPairs(tags)).To(Equal([][2]string{{"team", "ci"}, {"env", "prod"}}))
		})

		It("keeps repeated keys", func() {
			tags := parseTags("Key=env,Value=prod Key=env,Value=test")
			Expect(tagPairs(tags)).To(Equal([][2]string{{"env", "prod"}, {"env", "test"}}))
		})

		It("returns partial values when input is malformed", func() {
			tags := parseTags("Key=team,Value=ci Ke")
			Expect(tagPairs(tags)).To(Equal([][2]string{{"team", "ci"}}))
		})
	})

	Context("with escaped input", func() {

		It("returns expected values when keys or values are quoted", func() {
			tags := parseTags(`Key="team",Value="c i " Key=env,Value=pr\ o\ d`)
			Expect(tagPairs(tags)).To(Equal([][2]string{{"team", "c i "}, {"env", "pr o d"}}))
		})

		It("handles wrong quotings", func() {
			tags := parseTags(`Key="team,Value="ci" Key=env,Value=pr\ od`)
			Expect(tagPairs(tags)).To(Equal([][2]string{{"env", "pr od"}}))
		})

	})
})
