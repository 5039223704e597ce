package main

import (
	"github.com/aws/aws-sdk-go/aws"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Configuration", func() {

	It("loads a configuration file", func() {
		c, err := loadConfig("testdata/config.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.LogLevel).To(Equal("debug"))
		Expect(c.Output).To(Equal("yaml"))
		Expect(c.Region).To(Equal("eu-west-1"))
		Expect(c.Defaults.StartBuild).To(Equal(StartBuildDefaults{
			ComputeType:      "BUILD_GENERAL1_SMALL",
			Image:            "aws/codebuild/standard:4.0",
			TimeoutInMinutes: 45,
			PrivilegedMode:   true,
		}))
		Expect(tagPairs(c.Defaults.tags())).To(Equal([][2]string{{"owner", "platform"}, {"team", "builds"}}))
	})

	It("returns an empty configuration when the file does not exist", func() {
		c, err := loadConfig("testdata/missing.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(&Config{}))
	})

	It("returns an empty configuration without a file name", func() {
		c, err := loadConfig("")
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(&Config{}))
	})

	It("accepts numbers written as strings", func() {
		c, err := parseConfig([]byte("defaults:\n  start_build:\n    timeout_in_minutes: \"30\"\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Defaults.StartBuild.TimeoutInMinutes).To(BeEquivalentTo(30))
	})

	It("rejects unknown settings", func() {
		_, err := parseConfig([]byte("log_levle: debug\n"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects malformed YAML", func() {
		_, err := parseConfig([]byte("log_level: [debug\n"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects values outside their range", func() {
		_, err := parseConfig([]byte("output: xml\n"))
		Expect(err).To(HaveOccurred())

		_, err = parseConfig([]byte("defaults:\n  start_build:\n    compute_type: BUILD_GENERAL1_HUGE\n"))
		Expect(err).To(HaveOccurred())

		_, err = parseConfig([]byte("defaults:\n  start_build:\n    timeout_in_minutes: 2\n"))
		Expect(err).To(HaveOccurred())
	})

	It("turns start build defaults into a request", func() {
		in := StartBuildDefaults{ComputeType: "BUILD_GENERAL1_SMALL", TimeoutInMinutes: 45}.Input()
		Expect(aws.StringValue(in.ComputeTypeOverride)).To(Equal("BUILD_GENERAL1_SMALL"))
		Expect(aws.Int64Value(in.TimeoutInMinutesOverride)).To(BeEquivalentTo(45))
		Expect(in.ImageOverride).To(BeNil())
		Expect(in.QueuedTimeoutInMinutesOverride).To(BeNil())
		Expect(in.PrivilegedModeOverride).To(BeNil())
	})

})
