package main

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var _ = Describe("forkpool", func() {
	Context("run", func() {
		It("should run fib and print the value", func() {
			out, err := execute("run", "--workers", "2", "--depth", "10", "--log-level", "error")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("fib(10) = 55"))
		})

		It("should repeat runs", func() {
			out, err := execute("run", "--workers", "2", "--workload", "spray", "--tasks", "100", "--runs", "2", "--log-level", "error")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("run 1"))
			Expect(out).To(ContainSubstring("run 2"))
			Expect(out).To(ContainSubstring("spray(100) = 100"))
		})

		It("should reject an unknown workload", func() {
			_, err := execute("run", "--workload", "matmul", "--log-level", "error")
			Expect(err).To(HaveOccurred())
		})

		It("should reject an invalid configuration", func() {
			_, err := execute("run", "--log-format", "xml")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("configuration sources", func() {
		It("should read FORKPOOL_ environment variables", func() {
			GinkgoT().Setenv("FORKPOOL_DEPTH", "7")

			out, err := execute("run", "--workers", "1", "--log-level", "error")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("fib(7) = 13"))
		})

		It("should read a config file below flags", func() {
			path := filepath.Join(GinkgoT().TempDir(), "forkpool.yaml")
			Expect(os.WriteFile(path, []byte("depth: 6\nworkers: 1\nlog-level: error\n"), 0o600)).To(Succeed())

			out, err := execute("run", "--config", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("fib(6) = 8"))

			out, err = execute("run", "--config", path, "--depth", "9")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("fib(9) = 34"))
		})
	})

	Context("history", func() {
		// Given two recorded runs in a data folder
		// When history is listed
		// Then both runs are shown
		It("should list recorded runs", func() {
			dir := GinkgoT().TempDir()

			_, err := execute("run", "--workers", "2", "--depth", "8", "--record", "--data-folder", dir, "--log-level", "error")
			Expect(err).NotTo(HaveOccurred())
			_, err = execute("run", "--workers", "2", "--workload", "spray", "--tasks", "50", "--record", "--data-folder", dir, "--log-level", "error")
			Expect(err).NotTo(HaveOccurred())

			out, err := execute("history", "--data-folder", dir, "--log-level", "error")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("2 of 2 runs"))

			out, err = execute("history", "--data-folder", dir, "--workload", "spray", "--log-level", "error")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("1 of 1 runs"))
		})

		It("should require a data folder", func() {
			_, err := execute("history", "--log-level", "error")
			Expect(err).To(HaveOccurred())
		})
	})
})
